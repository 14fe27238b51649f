package controllers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/Mayuushi/freedom-wall-music/dto"
	"github.com/Mayuushi/freedom-wall-music/internal/cursor"
	"github.com/Mayuushi/freedom-wall-music/internal/repository"
	"github.com/Mayuushi/freedom-wall-music/internal/services"
	"github.com/Mayuushi/freedom-wall-music/internal/validation"
)

// respondError maps domain errors onto the JSON error envelope.
func respondError(c *fiber.Ctx, err error) error {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Validation failed", Details: verr})
	case errors.Is(err, validation.ErrInvalidJSON):
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid JSON body"})
	case errors.Is(err, services.ErrInvalidPostID):
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid post ID format"})
	case errors.Is(err, cursor.ErrInvalidCursor):
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid cursor"})
	case errors.Is(err, repository.ErrPostNotFound):
		return c.Status(http.StatusNotFound).JSON(dto.ErrorResponse{Error: "Post not found"})
	}

	log.Errorw("request failed", "method", c.Method(), "path", c.Path(), "error", err)
	return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Server error", Message: err.Error()})
}

// ErrorHandler is the app-level fallback for errors returned by handlers,
// middleware and the router itself.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		msg := fe.Message
		switch fe.Code {
		case fiber.StatusMethodNotAllowed:
			msg = "Method not allowed"
		case fiber.StatusNotFound:
			msg = "Not found"
		case fiber.StatusRequestEntityTooLarge:
			msg = "Request body too large"
		}
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Error: msg})
	}
	return respondError(c, err)
}

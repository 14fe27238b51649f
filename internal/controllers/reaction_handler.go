package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Mayuushi/freedom-wall-music/dto"
	"github.com/Mayuushi/freedom-wall-music/internal/middleware"
	"github.com/Mayuushi/freedom-wall-music/internal/services"
	"github.com/Mayuushi/freedom-wall-music/internal/validation"
)

type ReactionHandler struct {
	Service *services.ReactionService
}

func NewReactionHandler(s *services.ReactionService) *ReactionHandler {
	return &ReactionHandler{Service: s}
}

// POST /reactions

// @Summary      Toggle a reaction
// @Description  Adds the caller's reaction, or removes it when already present
// @Tags         reactions
// @Accept       json
// @Produce      json
// @Param        body  body     dto.CreateReactionReq  true  "Reaction payload"
// @Success      200   {object} dto.ToggleReactionResp
// @Failure      400   {object} dto.ErrorResponse
// @Failure      404   {object} dto.ErrorResponse
// @Failure      500   {object} dto.ErrorResponse
// @Router       /reactions [post]
func (h *ReactionHandler) Toggle(c *fiber.Ctx) error {
	var req dto.CreateReactionReq
	if err := validation.Bind(c.Body(), &req); err != nil {
		return respondError(c, err)
	}

	action, count, err := h.Service.Toggle(c.UserContext(), req, middleware.ClientIDFromLocals(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToggleReactionResp{
		Success:       true,
		Action:        action,
		ReactionCount: count,
	})
}

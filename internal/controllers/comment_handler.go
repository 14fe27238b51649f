package controllers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Mayuushi/freedom-wall-music/dto"
	"github.com/Mayuushi/freedom-wall-music/internal/services"
	"github.com/Mayuushi/freedom-wall-music/internal/validation"
)

type CommentHandler struct {
	Service *services.CommentService
}

func NewCommentHandler(s *services.CommentService) *CommentHandler {
	return &CommentHandler{Service: s}
}

// GET /comments?postId=...

// @Summary      List comments of a post
// @Tags         comments
// @Produce      json
// @Param        postId  query    string  true  "Post ID (hex ObjectID)"
// @Success      200     {object} dto.ListCommentsResp
// @Failure      400     {object} dto.ErrorResponse
// @Failure      404     {object} dto.ErrorResponse
// @Failure      500     {object} dto.ErrorResponse
// @Router       /comments [get]
func (h *CommentHandler) List(c *fiber.Ctx) error {
	postID := c.Query("postId")
	if _, err := services.ParsePostID(postID); err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Valid post ID is required"})
	}

	comments, err := h.Service.List(c.UserContext(), postID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ListCommentsResp{Comments: comments})
}

// POST /comments

// @Summary      Create a comment
// @Description  Append a comment to a post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        body  body     dto.CreateCommentReq  true  "Comment payload"
// @Success      201   {object} dto.CreateCommentResp
// @Failure      400   {object} dto.ErrorResponse
// @Failure      404   {object} dto.ErrorResponse
// @Failure      500   {object} dto.ErrorResponse
// @Router       /comments [post]
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCommentReq
	if err := validation.Bind(c.Body(), &req); err != nil {
		return respondError(c, err)
	}

	comment, count, err := h.Service.Create(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(dto.CreateCommentResp{
		Success:      true,
		Comment:      comment,
		CommentCount: count,
	})
}

package controllers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Mayuushi/freedom-wall-music/config"
	"github.com/Mayuushi/freedom-wall-music/dto"
	"github.com/Mayuushi/freedom-wall-music/internal/middleware"
	"github.com/Mayuushi/freedom-wall-music/internal/services"
	"github.com/Mayuushi/freedom-wall-music/internal/validation"
)

type PostHandler struct {
	Service *services.PostService
}

func NewPostHandler(s *services.PostService) *PostHandler {
	return &PostHandler{Service: s}
}

// GET /posts?limit=20&cursor=...

// @Summary      List posts
// @Description  Public feed, newest first, with cursor pagination
// @Tags         posts
// @Produce      json
// @Param        limit   query  int     false  "Max items per page" minimum(1) maximum(50) default(20)
// @Param        cursor  query  string  false  "nextCursor of the previous page"
// @Success      200     {object} dto.ListPostsResp
// @Failure      400     {object} dto.ErrorResponse
// @Failure      500     {object} dto.ErrorResponse
// @Router       /posts [get]
func (h *PostHandler) List(c *fiber.Ctx) error {
	limit := int64(c.QueryInt("limit", config.DefaultLimitPosts))
	if limit <= 0 {
		limit = config.DefaultLimitPosts
	}
	if limit > config.MaxLimitPosts {
		limit = config.MaxLimitPosts
	}

	resp, err := h.Service.List(c.UserContext(), limit, c.Query("cursor"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// POST /posts

// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body     dto.CreatePostReq  true  "Post payload"
// @Success      201   {object} dto.PostItemResp
// @Failure      400   {object} dto.ErrorResponse
// @Failure      413   {object} dto.ErrorResponse
// @Failure      500   {object} dto.ErrorResponse
// @Router       /posts [post]
func (h *PostHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePostReq
	if err := validation.Bind(c.Body(), &req); err != nil {
		return respondError(c, err)
	}

	post, err := h.Service.Create(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(dto.PostItemResp{Item: *post})
}

// GET /posts/:id

// @Summary      Get a post
// @Description  Full post with comments, reactions and whether the caller reacted
// @Tags         posts
// @Produce      json
// @Param        id   path     string  true  "Post ID (hex ObjectID)"
// @Success      200  {object} dto.PostDetailResp
// @Failure      400  {object} dto.ErrorResponse
// @Failure      404  {object} dto.ErrorResponse
// @Failure      500  {object} dto.ErrorResponse
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c *fiber.Ctx) error {
	detail, err := h.Service.Get(c.UserContext(), c.Params("id"), middleware.ClientIDFromLocals(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.PostDetailResp{Item: detail})
}

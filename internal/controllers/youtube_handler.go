package controllers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/Mayuushi/freedom-wall-music/dto"
	"github.com/Mayuushi/freedom-wall-music/internal/services"
)

type YouTubeHandler struct {
	Service *services.SearchService
}

func NewYouTubeHandler(s *services.SearchService) *YouTubeHandler {
	return &YouTubeHandler{Service: s}
}

// GET /youtube-search?q=...

// @Summary      Search YouTube videos
// @Description  Server-side proxy; queries shorter than 2 characters return no items
// @Tags         youtube
// @Produce      json
// @Param        q    query    string  false  "Search text, truncated to 80 characters"
// @Success      200  {object} dto.VideoSearchResp
// @Failure      500  {object} dto.ErrorResponse
// @Router       /youtube-search [get]
func (h *YouTubeHandler) Search(c *fiber.Ctx) error {
	items, err := h.Service.Search(c.UserContext(), c.Query("q"))
	if err != nil {
		log.Warnw("youtube search failed", "error", err)
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error:   "YouTube search failed",
			Message: err.Error(),
		})
	}
	return c.JSON(dto.VideoSearchResp{Items: items})
}

package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Mayuushi/freedom-wall-music/internal/controllers"
	"github.com/Mayuushi/freedom-wall-music/internal/services"
)

func YouTubeRoutes(app *fiber.App, videos services.VideoSearcher) {
	handler := controllers.NewYouTubeHandler(services.NewSearchService(videos))

	app.Get("/youtube-search", handler.Search)
	app.Get("/youtube/search", handler.Search)
}

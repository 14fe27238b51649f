package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Mayuushi/freedom-wall-music/internal/controllers"
	"github.com/Mayuushi/freedom-wall-music/internal/repository"
	"github.com/Mayuushi/freedom-wall-music/internal/services"
)

func CommentRoutes(app *fiber.App, repo repository.PostRepository) {
	handler := controllers.NewCommentHandler(services.NewCommentService(repo))

	app.Get("/comments", handler.List)
	app.Post("/comments", handler.Create)
}

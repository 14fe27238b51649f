package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Mayuushi/freedom-wall-music/internal/controllers"
	"github.com/Mayuushi/freedom-wall-music/internal/repository"
	"github.com/Mayuushi/freedom-wall-music/internal/services"
)

func ReactionRoutes(app *fiber.App, repo repository.PostRepository) {
	handler := controllers.NewReactionHandler(services.NewReactionService(repo))

	app.Post("/reactions", handler.Toggle)
}

package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Mayuushi/freedom-wall-music/internal/controllers"
	"github.com/Mayuushi/freedom-wall-music/internal/repository"
	"github.com/Mayuushi/freedom-wall-music/internal/services"
)

func SetupRoutesPost(app *fiber.App, repo repository.PostRepository) {
	postService := services.NewPostService(repo)
	handler := controllers.NewPostHandler(postService)

	posts := app.Group("/posts")
	posts.Get("/", handler.List)
	posts.Post("/", handler.Create)
	posts.Get("/:id", handler.Get)
}

package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"

	"github.com/Mayuushi/freedom-wall-music/config"
	"github.com/Mayuushi/freedom-wall-music/internal/controllers"
	"github.com/Mayuushi/freedom-wall-music/internal/middleware"
	"github.com/Mayuushi/freedom-wall-music/internal/repository"
	"github.com/Mayuushi/freedom-wall-music/internal/services"
)

type Deps struct {
	Posts  repository.PostRepository
	Videos services.VideoSearcher
}

// NewApp builds the HTTP surface. It is shared by the serve command and the
// handler tests.
func NewApp(cfg config.Config, deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "freedom-wall",
		BodyLimit:    config.BodyLimit,
		ErrorHandler: controllers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AppOrigin,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Content-Type",
	}))
	// preflights cors does not recognise still get an empty 204
	app.Use(func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.Next()
	})
	app.Use(middleware.ClientIdentity())

	// Swagger API document
	app.Get("/docs/*", swagger.HandlerDefault)

	// Health
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	SetupRoutesPost(app, deps.Posts)
	CommentRoutes(app, deps.Posts)
	ReactionRoutes(app, deps.Posts)
	YouTubeRoutes(app, deps.Videos)

	return app
}

package fiberapp

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupFiber builds the HTTP app with the shared middleware stack.
func SetupFiber() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "achievement-portal",
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	return app
}

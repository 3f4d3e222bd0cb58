// Package app assembles the fiber application from its services.
package app

import (
	fiber "github.com/gofiber/fiber/v2"

	"github.com/healthindex/healthindex/internal/api/v1/handlers"
	"github.com/healthindex/healthindex/internal/api/v1/middleware"
	v1 "github.com/healthindex/healthindex/internal/api/v1/routes"
	"github.com/healthindex/healthindex/internal/services"
	"github.com/healthindex/healthindex/internal/types"
)

// New builds the fiber application with all routes registered
func New(query *services.Query, refresh *services.Refresh) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(middleware.Logger())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	// API v1 routes
	v1.Register(app, handlers.NewAPIHandler(query, refresh))

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(types.ErrorResponse{
		Error: err.Error(),
	})
}

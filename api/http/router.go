package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/edutechinnovations/proyect/api/http/handlers"
)

// BasePath is the prefix of every API route.
const BasePath = "/edutechinnovations/api/v1"

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, health *handlers.HealthHandler, profesor *handlers.ProfesorHandler) {
	v1 := app.Group(BasePath)

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	pg := v1.Group("/profesor")
	pg.Get("/", profesor.List)
	pg.Post("/", profesor.Create)
	pg.Get("/:id", profesor.GetByID)
	pg.Put("/:id", profesor.Update)
}

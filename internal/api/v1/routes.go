package v1

import (
	"github.com/gofiber/fiber/v2"

	"precrastine-se/internal/api/v1/handlers"
	"precrastine-se/internal/middleware"
)

func RegisterRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api")
	requireAuth := middleware.RequireAuth(h.Secret)

	api.Get("/health", h.HealthCheck)

	// Auth
	authRoutes := api.Group("/auth")
	authRoutes.Post("/register", h.Register)
	authRoutes.Post("/login", h.Login)
	authRoutes.Get("/me", requireAuth, h.Me)

	// User
	api.Put("/users/profile", requireAuth, h.UpdateProfile)

	// Task
	taskRoutes := api.Group("/tasks", requireAuth)
	taskRoutes.Get("/", h.ListTasks)
	taskRoutes.Post("/", h.CreateTask)
	taskRoutes.Put("/:id", h.UpdateTask)
	taskRoutes.Delete("/:id", h.DeleteTask)

	// Life areas
	areaRoutes := api.Group("/life-areas", requireAuth)
	areaRoutes.Get("/", h.ListLifeAreas)
	areaRoutes.Put("/:id", h.UpdateLifeArea)

	// Stats
	api.Get("/stats", requireAuth, h.GetStats)

	// Anything else is an unknown endpoint.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Endpoint not found"})
	})
}

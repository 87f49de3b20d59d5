package handlers

import (
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"precrastine-se/internal/middleware"
	"precrastine-se/pkg/logger"
)

// GetStats derives the dashboard counters on the fly; nothing is stored.
// "Today" is the server's local calendar date.
func (h *Handler) GetStats(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	taskStats, err := h.Tasks.Stats(c.Context(), userID, dayStart, dayEnd)
	if err != nil {
		logger.ErrorLogger.Error("Error computing task stats", zap.Error(err))
		return errorJSON(c, fiber.StatusInternalServerError, "Error computing stats")
	}

	areas, err := h.LifeAreas.ListByUser(c.Context(), userID)
	if err != nil {
		logger.ErrorLogger.Error("Error fetching life areas for stats", zap.Error(err))
		return errorJSON(c, fiber.StatusInternalServerError, "Error computing stats")
	}

	completionRate := 0
	if taskStats.TotalTasks > 0 {
		completionRate = int(math.Round(float64(taskStats.CompletedTasks) / float64(taskStats.TotalTasks) * 100))
	}

	averageLifeScore := 0.0
	if len(areas) > 0 {
		sum := 0
		for _, a := range areas {
			sum += a.Score
		}
		averageLifeScore = math.Round(float64(sum)/float64(len(areas))*10) / 10
	}

	return c.JSON(fiber.Map{
		"stats": fiber.Map{
			"totalTasks":        taskStats.TotalTasks,
			"completedTasks":    taskStats.CompletedTasks,
			"completionRate":    completionRate,
			"todayTasks":        taskStats.TodayTasks,
			"highPriorityTasks": taskStats.HighPriorityTasks,
			"averageLifeScore":  averageLifeScore,
		},
	})
}

func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   "1.0.0",
	})
}

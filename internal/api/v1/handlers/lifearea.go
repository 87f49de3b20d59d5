package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"precrastine-se/internal/middleware"
	"precrastine-se/internal/repository"
	"precrastine-se/pkg/logger"
)

func (h *Handler) ListLifeAreas(c *fiber.Ctx) error {
	areas, err := h.LifeAreas.ListByUser(c.Context(), middleware.UserID(c))
	if err != nil {
		logger.ErrorLogger.Error("Error fetching life areas", zap.Error(err))
		return errorJSON(c, fiber.StatusInternalServerError, "Error fetching life areas")
	}
	return c.JSON(fiber.Map{"lifeAreas": areas})
}

type UpdateLifeAreaRequest struct {
	Score *int `json:"score"`
}

// UpdateLifeArea sets the score of one area. Only the score is mutable;
// areas are never created or deleted individually.
func (h *Handler) UpdateLifeArea(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	areaID := c.Params("id")

	var req UpdateLifeAreaRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in update life area", zap.Error(err))
		return errorJSON(c, fiber.StatusBadRequest, "Bad request")
	}
	if req.Score == nil {
		return errorJSON(c, fiber.StatusBadRequest, "Score is required")
	}
	if *req.Score < 1 || *req.Score > 10 {
		return errorJSON(c, fiber.StatusBadRequest, "Score must be between 1 and 10")
	}

	area, err := h.LifeAreas.UpdateScore(c.Context(), userID, areaID, *req.Score)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "Life area not found")
		}
		logger.ErrorLogger.Error("Error updating life area", zap.Error(err))
		return errorJSON(c, fiber.StatusInternalServerError, "Error updating life area")
	}

	logger.AuditLogger.Info("Life area updated", zap.String("areaID", areaID), zap.Int("score", *req.Score))
	return c.JSON(fiber.Map{
		"success":  true,
		"lifeArea": area,
	})
}

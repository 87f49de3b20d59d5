package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"precrastine-se/internal/middleware"
	"precrastine-se/internal/repository"
	"precrastine-se/pkg/images"
	"precrastine-se/pkg/logger"
)

type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" validate:"omitempty,email"`
	Photo *string `json:"photo"`
}

// UpdateProfile applies the profile fields present in the body. The photo is
// run through the resize pipeline first; if that fails the stored photo is
// kept and the rest of the update still goes through.
func (h *Handler) UpdateProfile(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in update profile", zap.Error(err))
		return errorJSON(c, fiber.StatusBadRequest, "Bad request")
	}
	if err := h.Validate.Struct(req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, validationMessage(err))
	}

	var upd repository.UserUpdate
	if req.Name != nil && *req.Name != "" {
		upd.Name = req.Name
	}
	if req.Email != nil && *req.Email != "" {
		upd.Email = req.Email
	}
	if req.Photo != nil && *req.Photo != "" {
		processed, err := images.ProcessImage(*req.Photo, images.MaxWidth, images.MaxHeight, images.JPEGQuality)
		if err != nil {
			// Recoverable: keep the existing photo.
			logger.ErrorLogger.Error("Error processing profile photo", zap.Error(err))
		} else {
			upd.Photo = &processed
		}
	}

	user, err := h.Users.Update(c.Context(), userID, upd)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEmailTaken):
			return errorJSON(c, fiber.StatusBadRequest, "Email already in use")
		case errors.Is(err, repository.ErrNotFound):
			return errorJSON(c, fiber.StatusNotFound, "User not found")
		}
		logger.ErrorLogger.Error("Error updating profile", zap.Error(err))
		return errorJSON(c, fiber.StatusInternalServerError, "Error updating profile")
	}

	logger.AuditLogger.Info("Profile updated", zap.String("userID", userID))
	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

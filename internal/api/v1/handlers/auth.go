package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"precrastine-se/internal/middleware"
	"precrastine-se/internal/models"
	"precrastine-se/internal/repository"
	"precrastine-se/pkg/auth"
	"precrastine-se/pkg/logger"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required,max=100"`
}

// Register creates the user and their 8 default life areas in a single
// transaction and returns a token usable right away.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in register", zap.Error(err))
		return errorJSON(c, fiber.StatusBadRequest, "Bad request")
	}
	if err := h.Validate.Struct(req); err != nil {
		logger.AuditLogger.Warn("Validation error during register", zap.Error(err))
		return errorJSON(c, fiber.StatusBadRequest, validationMessage(err))
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		logger.ErrorLogger.Error("Error hashing password", zap.Error(err))
		return errorJSON(c, fiber.StatusInternalServerError, "Error creating user")
	}

	user := models.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
	}
	areas := models.DefaultLifeAreas("", time.Now().UTC())

	if err := h.Users.Create(c.Context(), &user, areas); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			logger.SecurityLogger.Warn("Duplicate email", zap.String("email", req.Email))
			return errorJSON(c, fiber.StatusBadRequest, "Email already in use")
		}
		logger.ErrorLogger.Error("Error creating user", zap.Error(err))
		return errorJSON(c, fiber.StatusInternalServerError, "Error creating user")
	}

	token, err := auth.GenerateToken(user.ID, h.Secret, h.TokenTTL)
	if err != nil {
		logger.ErrorLogger.Error("Error generating token", zap.Error(err))
		return errorJSON(c, fiber.StatusInternalServerError, "Error generating token")
	}

	logger.AuditLogger.Info("User registered", zap.String("userID", user.ID))
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"user":    user,
		"token":   token,
	})
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in login", zap.Error(err))
		return errorJSON(c, fiber.StatusBadRequest, "Bad request")
	}
	if err := h.Validate.Struct(req); err != nil {
		logger.AuditLogger.Warn("Validation error during login", zap.Error(err))
		return errorJSON(c, fiber.StatusBadRequest, validationMessage(err))
	}

	user, err := h.Users.GetByEmail(c.Context(), req.Email)
	if err != nil || !auth.CheckPassword(req.Password, user.PasswordHash) {
		logger.SecurityLogger.Warn("Invalid credentials", zap.String("email", req.Email))
		return errorJSON(c, fiber.StatusUnauthorized, "Incorrect email or password")
	}

	token, err := auth.GenerateToken(user.ID, h.Secret, h.TokenTTL)
	if err != nil {
		logger.ErrorLogger.Error("Error generating token", zap.Error(err))
		return errorJSON(c, fiber.StatusInternalServerError, "Error generating token")
	}

	logger.AuditLogger.Info("Login success", zap.String("userID", user.ID))
	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
		"token":   token,
	})
}

// Me returns the profile behind the presented token. A valid token whose
// user has since been deleted yields 404.
func (h *Handler) Me(c *fiber.Ctx) error {
	user, err := h.Users.GetByID(c.Context(), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "User not found")
		}
		logger.ErrorLogger.Error("Error fetching user", zap.Error(err))
		return errorJSON(c, fiber.StatusInternalServerError, "Error fetching user")
	}
	return c.JSON(fiber.Map{"user": user})
}

package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"precrastine-se/pkg/auth"
	"precrastine-se/pkg/logger"
)

// RequireAuth verifies the bearer token and stores the resolved user id in
// c.Locals("userID"). Missing, invalid and expired tokens each get their own
// 401 body so clients can tell them apart.
func RequireAuth(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var token string
		if header := c.Get("Authorization"); header != "" {
			parts := strings.SplitN(header, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				token = parts[1]
			} else {
				logger.SecurityLogger.Warn("Malformed authorization header")
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
			}
		}

		userID, err := auth.VerifyToken(token, secret)
		if err != nil {
			logger.SecurityLogger.Warn("Token rejected", zap.Error(err))
			msg := "Invalid token"
			switch {
			case errors.Is(err, auth.ErrTokenMissing):
				msg = "Access token required"
			case errors.Is(err, auth.ErrTokenExpired):
				msg = "Token expired"
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": msg})
		}

		c.Locals("userID", userID)
		return c.Next()
	}
}

// UserID returns the authenticated user id set by RequireAuth.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals("userID").(string)
	return id
}

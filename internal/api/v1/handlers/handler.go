package handlers

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"

	"precrastine-se/internal/repository"
)

// Handler owns every dependency the endpoints need. Nothing is reached
// through package globals; tests wire in-memory repositories here.
type Handler struct {
	Users     repository.UserRepository
	Tasks     repository.TaskRepository
	LifeAreas repository.LifeAreaRepository
	Validate  *validator.Validate
	Cache     *redis.Client // optional, nil disables the task cache
	Secret    []byte
	TokenTTL  time.Duration
}

func New(users repository.UserRepository, tasks repository.TaskRepository, areas repository.LifeAreaRepository, secret []byte, tokenTTL time.Duration, cache *redis.Client) *Handler {
	return &Handler{
		Users:     users,
		Tasks:     tasks,
		LifeAreas: areas,
		Validate:  validator.New(),
		Cache:     cache,
		Secret:    secret,
		TokenTTL:  tokenTTL,
	}
}

func errorJSON(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// validationMessage turns the first validator failure into a readable
// message for the 400 body.
func validationMessage(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return "Validation error"
	}
	fe := errs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Invalid email format"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

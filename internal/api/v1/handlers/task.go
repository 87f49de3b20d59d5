package handlers

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"precrastine-se/internal/middleware"
	"precrastine-se/internal/models"
	"precrastine-se/internal/repository"
	"precrastine-se/pkg/logger"
)

const taskCacheTTL = time.Hour

func taskCacheKey(userID string) string { return "tasks:" + userID }

func (h *Handler) invalidateTaskCache(c *fiber.Ctx, userID string) {
	if h.Cache != nil {
		h.Cache.Del(c.Context(), taskCacheKey(userID))
	}
}

type CreateTaskRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description string  `json:"description"`
	Priority    string  `json:"priority" validate:"omitempty,oneof=low medium high"`
	Category    string  `json:"category"`
	DueDate     *string `json:"dueDate"`
}

func (h *Handler) CreateTask(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in create task", zap.Error(err))
		return errorJSON(c, fiber.StatusBadRequest, "Bad request")
	}
	if err := h.Validate.Struct(req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, validationMessage(err))
	}

	task := models.Task{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Category:    req.Category,
		UserID:      userID,
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if task.Category == "" {
		task.Category = models.DefaultCategory
	}
	if req.DueDate != nil && *req.DueDate != "" {
		due, err := models.ParseDate(*req.DueDate)
		if err != nil {
			return errorJSON(c, fiber.StatusBadRequest, "Invalid due date")
		}
		task.DueDate = &due
	}

	if err := h.Tasks.Create(c.Context(), &task); err != nil {
		logger.ErrorLogger.Error("Error creating task", zap.Error(err))
		return errorJSON(c, fiber.StatusInternalServerError, "Error creating task")
	}
	h.invalidateTaskCache(c, userID)

	logger.AuditLogger.Info("Task created", zap.String("taskID", task.ID))
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"task":    task,
	})
}

// ListTasks returns the caller's tasks newest-first, served from the redis
// cache when one is configured.
func (h *Handler) ListTasks(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	if h.Cache != nil {
		if cached, err := h.Cache.Get(c.Context(), taskCacheKey(userID)).Result(); err == nil {
			return c.JSON(fiber.Map{"tasks": json.RawMessage(cached)})
		}
	}

	tasks, err := h.Tasks.ListByUser(c.Context(), userID)
	if err != nil {
		logger.ErrorLogger.Error("Error fetching tasks", zap.Error(err))
		return errorJSON(c, fiber.StatusInternalServerError, "Error fetching tasks")
	}

	if h.Cache != nil {
		if encoded, err := json.Marshal(tasks); err == nil {
			h.Cache.SetEX(c.Context(), taskCacheKey(userID), encoded, taskCacheTTL)
		}
	}

	return c.JSON(fiber.Map{"tasks": tasks})
}

type UpdateTaskRequest struct {
	Title       *string             `json:"title" validate:"omitempty,max=200"`
	Description *string             `json:"description"`
	Completed   *bool               `json:"completed"`
	Priority    *string             `json:"priority" validate:"omitempty,oneof=low medium high"`
	Category    *string             `json:"category"`
	DueDate     models.OptionalTime `json:"dueDate"`
}

// UpdateTask applies only the keys present in the body. A null dueDate
// clears the due date; an absent one leaves it alone. updatedAt is refreshed
// even when no recognized field is sent.
func (h *Handler) UpdateTask(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	taskID := c.Params("id")

	var req UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in update task", zap.Error(err))
		return errorJSON(c, fiber.StatusBadRequest, "Bad request")
	}
	if err := h.Validate.Struct(req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, validationMessage(err))
	}

	task, err := h.Tasks.Update(c.Context(), userID, taskID, repository.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		Priority:    req.Priority,
		Category:    req.Category,
		DueDate:     req.DueDate,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "Task not found")
		}
		logger.ErrorLogger.Error("Error updating task", zap.Error(err))
		return errorJSON(c, fiber.StatusInternalServerError, "Error updating task")
	}
	h.invalidateTaskCache(c, userID)

	logger.AuditLogger.Info("Task updated", zap.String("taskID", taskID))
	return c.JSON(fiber.Map{
		"success": true,
		"task":    task,
	})
}

func (h *Handler) DeleteTask(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	taskID := c.Params("id")

	if err := h.Tasks.Delete(c.Context(), userID, taskID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "Task not found")
		}
		logger.ErrorLogger.Error("Error deleting task", zap.Error(err))
		return errorJSON(c, fiber.StatusInternalServerError, "Error deleting task")
	}
	h.invalidateTaskCache(c, userID)

	logger.AuditLogger.Info("Task deleted", zap.String("taskID", taskID))
	return c.JSON(fiber.Map{"success": true})
}

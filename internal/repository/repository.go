package repository

import (
	"context"
	"time"

	"precrastine-se/internal/models"
)

// UserUpdate carries the profile fields present in a request. Nil means the
// key was absent and the stored value is kept.
type UserUpdate struct {
	Name  *string
	Email *string
	Photo *string
}

// TaskUpdate carries a partial task mutation. Nil pointers leave the stored
// value unchanged; DueDate.Set with a nil time clears the due date.
type TaskUpdate struct {
	Title       *string
	Description *string
	Completed   *bool
	Priority    *string
	Category    *string
	DueDate     models.OptionalTime
}

// TaskStats are the per-user counters behind GET /stats.
type TaskStats struct {
	TotalTasks        int
	CompletedTasks    int
	TodayTasks        int
	HighPriorityTasks int
}

type UserRepository interface {
	// Create inserts the user and their default life areas in one
	// transaction. Returns ErrEmailTaken on a duplicate email.
	Create(ctx context.Context, user *models.User, areas []models.LifeArea) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, id string, upd UserUpdate) (*models.User, error)
	// Delete removes the user and all owned tasks and life areas in one
	// transaction.
	Delete(ctx context.Context, id string) error
}

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	// ListByUser returns the user's tasks newest-first.
	ListByUser(ctx context.Context, userID string) ([]models.Task, error)
	Update(ctx context.Context, userID, id string, upd TaskUpdate) (*models.Task, error)
	Delete(ctx context.Context, userID, id string) error
	// Stats counts tasks; dayStart/dayEnd bound the server-local "today"
	// window for the due-date counter.
	Stats(ctx context.Context, userID string, dayStart, dayEnd time.Time) (TaskStats, error)
}

type LifeAreaRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.LifeArea, error)
	// UpdateScore sets the score and touches lastUpdated. The score must
	// already be validated to [1,10].
	UpdateScore(ctx context.Context, userID, id string, score int) (*models.LifeArea, error)
}

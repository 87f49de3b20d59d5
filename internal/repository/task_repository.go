package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"precrastine-se/internal/models"
)

const taskColumns = "id, title, description, completed, priority, category, due_date, created_at, updated_at, user_id"

type PostgresTaskRepository struct {
	db *sql.DB
}

func NewPostgresTaskRepository(db *sql.DB) *PostgresTaskRepository {
	return &PostgresTaskRepository{db: db}
}

func (r *PostgresTaskRepository) Create(ctx context.Context, task *models.Task) error {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO tasks (id, title, description, completed, priority, category, due_date, created_at, updated_at, user_id) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)",
		task.ID, task.Title, task.Description, task.Completed, task.Priority, task.Category, task.DueDate, task.CreatedAt, task.UpdatedAt, task.UserID,
	)
	return err
}

func (r *PostgresTaskRepository) ListByUser(ctx context.Context, userID string) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE user_id = $1 ORDER BY created_at DESC",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

func (r *PostgresTaskRepository) Update(ctx context.Context, userID, id string, upd TaskUpdate) (*models.Task, error) {
	set := []string{"updated_at = $1"}
	args := []any{time.Now().UTC()}

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if upd.Title != nil {
		add("title", *upd.Title)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.Completed != nil {
		add("completed", *upd.Completed)
	}
	if upd.Priority != nil {
		add("priority", *upd.Priority)
	}
	if upd.Category != nil {
		add("category", *upd.Category)
	}
	if upd.DueDate.Set {
		add("due_date", upd.DueDate.Time)
	}

	args = append(args, id, userID)
	query := fmt.Sprintf("UPDATE tasks SET %s WHERE id = $%d AND user_id = $%d RETURNING %s",
		strings.Join(set, ", "), len(args)-1, len(args), taskColumns)

	task, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return task, nil
}

func (r *PostgresTaskRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresTaskRepository) Stats(ctx context.Context, userID string, dayStart, dayEnd time.Time) (TaskStats, error) {
	var stats TaskStats
	err := r.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE completed),
			COUNT(*) FILTER (WHERE due_date >= $2 AND due_date < $3),
			COUNT(*) FILTER (WHERE priority = 'high' AND NOT completed)
		FROM tasks WHERE user_id = $1`,
		userID, dayStart, dayEnd,
	).Scan(&stats.TotalTasks, &stats.CompletedTasks, &stats.TodayTasks, &stats.HighPriorityTasks)
	return stats, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*models.Task, error) {
	var task models.Task
	var dueDate sql.NullTime
	err := row.Scan(
		&task.ID, &task.Title, &task.Description, &task.Completed, &task.Priority,
		&task.Category, &dueDate, &task.CreatedAt, &task.UpdatedAt, &task.UserID,
	)
	if err != nil {
		return nil, err
	}
	if dueDate.Valid {
		task.DueDate = &dueDate.Time
	}
	return &task, nil
}

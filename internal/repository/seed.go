package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"precrastine-se/internal/models"
	"precrastine-se/pkg/auth"
)

const (
	DemoEmail    = "demo@precrastine.com"
	demoPassword = "demo123"
	demoName     = "Usuário Demo"
)

// SeedDemoData creates the demo user with default life areas and three
// sample tasks. Keyed on the demo email: if it already exists nothing is
// written, so startup can run this unconditionally.
func SeedDemoData(ctx context.Context, db *sql.DB) error {
	var exists int
	err := db.QueryRowContext(ctx, "SELECT 1 FROM users WHERE email = $1", DemoEmail).Scan(&exists)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	hash, err := auth.HashPassword(demoPassword)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	userID := uuid.NewString()
	tomorrow := now.Add(24 * time.Hour)

	sampleTasks := []models.Task{
		{
			Title:       "Estudar Go",
			Description: "Revisar conceitos de Fiber e database/sql",
			Priority:    models.PriorityHigh,
			Category:    "estudos",
		},
		{
			Title:       "Exercitar-se",
			Description: "Caminhada de 30 minutos no parque",
			Priority:    models.PriorityMedium,
			Category:    "saude",
		},
		{
			Title:       "Reunião de equipe",
			Description: "Discussão sobre o projeto Precrastine-se",
			Priority:    models.PriorityHigh,
			Category:    "trabalho",
			DueDate:     &tomorrow,
		},
	}

	return WithTx(ctx, db, func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO users (id, email, name, password_hash, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)",
			userID, DemoEmail, demoName, hash, now, now,
		)
		if err != nil {
			return err
		}

		for _, a := range models.DefaultLifeAreas(userID, now) {
			_, err := tx.ExecContext(ctx,
				"INSERT INTO life_areas (id, name, score, color, icon, last_updated, user_id) VALUES ($1, $2, $3, $4, $5, $6, $7)",
				a.ID, a.Name, a.Score, a.Color, a.Icon, a.LastUpdated, a.UserID,
			)
			if err != nil {
				return err
			}
		}

		for _, t := range sampleTasks {
			_, err := tx.ExecContext(ctx,
				"INSERT INTO tasks (id, title, description, completed, priority, category, due_date, created_at, updated_at, user_id) VALUES ($1, $2, $3, FALSE, $4, $5, $6, $7, $8, $9)",
				uuid.NewString(), t.Title, t.Description, t.Priority, t.Category, t.DueDate, now, now, userID,
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

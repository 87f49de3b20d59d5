package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"precrastine-se/internal/models"
)

const lifeAreaColumns = "id, name, score, color, icon, last_updated, user_id"

type PostgresLifeAreaRepository struct {
	db *sql.DB
}

func NewPostgresLifeAreaRepository(db *sql.DB) *PostgresLifeAreaRepository {
	return &PostgresLifeAreaRepository{db: db}
}

func (r *PostgresLifeAreaRepository) ListByUser(ctx context.Context, userID string) ([]models.LifeArea, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+lifeAreaColumns+" FROM life_areas WHERE user_id = $1 ORDER BY id",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	areas := []models.LifeArea{}
	for rows.Next() {
		var a models.LifeArea
		err := rows.Scan(&a.ID, &a.Name, &a.Score, &a.Color, &a.Icon, &a.LastUpdated, &a.UserID)
		if err != nil {
			return nil, err
		}
		areas = append(areas, a)
	}
	return areas, rows.Err()
}

func (r *PostgresLifeAreaRepository) UpdateScore(ctx context.Context, userID, id string, score int) (*models.LifeArea, error) {
	var a models.LifeArea
	err := r.db.QueryRowContext(ctx,
		"UPDATE life_areas SET score = $1, last_updated = $2 WHERE id = $3 AND user_id = $4 RETURNING "+lifeAreaColumns,
		score, time.Now().UTC(), id, userID,
	).Scan(&a.ID, &a.Name, &a.Score, &a.Color, &a.Icon, &a.LastUpdated, &a.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

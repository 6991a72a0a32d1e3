package repository

import (
	"context"
	"database/sql"
	"fmt"

	models "achievement-portal/app/models/postgresql"

	"github.com/google/uuid"
)

type AchievementTypeRepository interface {
	GetAll(ctx context.Context) ([]models.AchievementType, error)
	Create(ctx context.Context, name string) (uuid.UUID, error)
}

type achievementTypeRepository struct {
	db *sql.DB
}

func NewAchievementTypeRepository(db *sql.DB) AchievementTypeRepository {
	return &achievementTypeRepository{db: db}
}

// GetAll returns the full type list in creation order, the canonical bucket
// order for the teacher dashboard charts.
func (r *achievementTypeRepository) GetAll(ctx context.Context) ([]models.AchievementType, error) {
	query := `SELECT id, name, created_at FROM achievement_types ORDER BY created_at ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list achievement types: %w", err)
	}
	defer rows.Close()

	var types []models.AchievementType
	for rows.Next() {
		var t models.AchievementType
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("list achievement types: scan: %w", err)
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (r *achievementTypeRepository) Create(ctx context.Context, name string) (uuid.UUID, error) {
	query := `INSERT INTO achievement_types (name, created_at) VALUES ($1, NOW()) RETURNING id`
	var newID uuid.UUID
	err := r.db.QueryRowContext(ctx, query, name).Scan(&newID)
	return newID, err
}

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	models "achievement-portal/app/models/postgresql"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type AchievementRepository interface {
	Create(ctx context.Context, ref models.AchievementReference) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.AchievementReference, error)
	GetAll(ctx context.Context, filter map[string]interface{}, limit, offset int, sort string) ([]models.AchievementReference, int64, error)
	Submit(ctx context.Context, id uuid.UUID) error
	Approve(ctx context.Context, id, reviewerID uuid.UUID, score float64) error
	Reject(ctx context.Context, id, reviewerID uuid.UUID, note string) error
}

type achievementRepository struct {
	db *sql.DB
}

func NewAchievementRepository(db *sql.DB) AchievementRepository {
	return &achievementRepository{db: db}
}

// statusForms returns both encodings of a status. The status column predates
// the numeric codes and legacy rows still hold string tags, so every status
// predicate has to match either form.
func statusForms(statuses ...models.Status) []string {
	forms := make([]string, 0, len(statuses)*2)
	for _, s := range statuses {
		forms = append(forms, strconv.Itoa(int(s)), s.String())
	}
	return forms
}

func (r *achievementRepository) Create(ctx context.Context, ref models.AchievementReference) (uuid.UUID, error) {
	query := `
        INSERT INTO achievements (
            title, publisher_id, instructor_id, type_id, mongo_detail_id, status, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
        RETURNING id
    `
	var newID uuid.UUID
	err := r.db.QueryRowContext(ctx, query,
		ref.Title,
		ref.PublisherID,
		ref.InstructorID,
		ref.TypeID,
		ref.MongoDetailID,
		strconv.Itoa(int(ref.Status)),
	).Scan(&newID)
	return newID, err
}

func (r *achievementRepository) GetByID(ctx context.Context, id uuid.UUID) (models.AchievementReference, error) {
	query := `
        SELECT
            id, title, publisher_id, instructor_id, type_id, mongo_detail_id,
            status, score, rejection_note, submitted_at, reviewed_at, reviewed_by, created_at
        FROM achievements
        WHERE id = $1
    `

	var ref models.AchievementReference
	var rawStatus string
	var score sql.NullFloat64
	var note sql.NullString
	var submittedAt, reviewedAt sql.NullTime
	var reviewedBy uuid.NullUUID

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&ref.ID,
		&ref.Title,
		&ref.PublisherID,
		&ref.InstructorID,
		&ref.TypeID,
		&ref.MongoDetailID,
		&rawStatus,
		&score,
		&note,
		&submittedAt,
		&reviewedAt,
		&reviewedBy,
		&ref.CreatedAt,
	)
	if err != nil {
		return ref, err
	}

	ref.Status, _ = models.ParseStatus(rawStatus)
	if score.Valid {
		ref.Score = &score.Float64
	}
	if note.Valid {
		ref.RejectionNote = &note.String
	}
	if submittedAt.Valid {
		ref.SubmittedAt = &submittedAt.Time
	}
	if reviewedAt.Valid {
		ref.ReviewedAt = &reviewedAt.Time
	}
	if reviewedBy.Valid {
		ref.ReviewedBy = &reviewedBy.UUID
	}
	return ref, nil
}

func (r *achievementRepository) GetAll(ctx context.Context, filter map[string]interface{}, limit, offset int, sort string) ([]models.AchievementReference, int64, error) {
	whereClause := " WHERE 1=1"
	var args []interface{}
	argCount := 1

	if val, ok := filter["publisher_id"]; ok {
		whereClause += fmt.Sprintf(" AND publisher_id = $%d", argCount)
		args = append(args, val)
		argCount++
	}

	if val, ok := filter["instructor_id"]; ok {
		whereClause += fmt.Sprintf(" AND instructor_id = $%d", argCount)
		args = append(args, val)
		argCount++
	}

	if val, ok := filter["status"]; ok {
		var forms []string
		if statuses, isSlice := val.([]models.Status); isSlice {
			forms = statusForms(statuses...)
		} else if s, isStatus := val.(models.Status); isStatus {
			forms = statusForms(s)
		}
		if len(forms) > 0 {
			whereClause += fmt.Sprintf(" AND status = ANY($%d)", argCount)
			args = append(args, pq.Array(forms))
			argCount++
		}
	}

	var totalCount int64
	countQuery := `SELECT COUNT(*) FROM achievements` + whereClause
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	query := `
        SELECT id, title, publisher_id, instructor_id, type_id, mongo_detail_id, status, score, submitted_at, created_at
        FROM achievements
    ` + whereClause

	if sort == "oldest" {
		query += ` ORDER BY created_at ASC`
	} else {
		query += ` ORDER BY created_at DESC`
	}

	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argCount, argCount+1)
		args = append(args, limit, offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var results []models.AchievementReference
	for rows.Next() {
		var ref models.AchievementReference
		var rawStatus string
		var score sql.NullFloat64
		var submittedAt sql.NullTime

		err := rows.Scan(
			&ref.ID,
			&ref.Title,
			&ref.PublisherID,
			&ref.InstructorID,
			&ref.TypeID,
			&ref.MongoDetailID,
			&rawStatus,
			&score,
			&submittedAt,
			&ref.CreatedAt,
		)
		if err != nil {
			return nil, 0, err
		}

		ref.Status, _ = models.ParseStatus(rawStatus)
		if score.Valid {
			ref.Score = &score.Float64
		}
		if submittedAt.Valid {
			ref.SubmittedAt = &submittedAt.Time
		}
		results = append(results, ref)
	}

	return results, totalCount, rows.Err()
}

func (r *achievementRepository) Submit(ctx context.Context, id uuid.UUID) error {
	query := `
        UPDATE achievements
        SET status = $1, submitted_at = NOW(), updated_at = NOW()
        WHERE id = $2
    `
	_, err := r.db.ExecContext(ctx, query, strconv.Itoa(int(models.StatusPending)), id)
	return err
}

func (r *achievementRepository) Approve(ctx context.Context, id, reviewerID uuid.UUID, score float64) error {
	query := `
        UPDATE achievements
        SET status = $1, score = $2, reviewed_by = $3, reviewed_at = $4, updated_at = NOW()
        WHERE id = $5
    `
	_, err := r.db.ExecContext(ctx, query,
		strconv.Itoa(int(models.StatusApproved)), score, reviewerID, time.Now(), id)
	return err
}

func (r *achievementRepository) Reject(ctx context.Context, id, reviewerID uuid.UUID, note string) error {
	query := `
        UPDATE achievements
        SET status = $1, rejection_note = $2, reviewed_by = $3, reviewed_at = $4, updated_at = NOW()
        WHERE id = $5
    `
	_, err := r.db.ExecContext(ctx, query,
		strconv.Itoa(int(models.StatusRejected)), note, reviewerID, time.Now(), id)
	return err
}

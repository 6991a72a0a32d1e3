package models

import (
	"time"

	"github.com/google/uuid"
)

// AchievementReference is the workflow row kept in Postgres. The rich detail
// document (description, tags, attachments) lives in MongoDB and is linked
// through MongoDetailID.
type AchievementReference struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	PublisherID   uuid.UUID  `json:"publisherId"`  // student who filed it
	InstructorID  uuid.UUID  `json:"instructorId"` // supervising teacher
	TypeID        uuid.UUID  `json:"typeId"`
	MongoDetailID string     `json:"-"`
	Status        Status     `json:"status"`
	Score         *float64   `json:"score"` // 0-100, set on approval
	RejectionNote *string    `json:"rejectionNote,omitempty"`
	SubmittedAt   *time.Time `json:"submittedAt,omitempty"`
	ReviewedAt    *time.Time `json:"reviewedAt,omitempty"`
	ReviewedBy    *uuid.UUID `json:"reviewedBy,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// AchievementType is static reference data used for labeling and grouping.
type AchievementType struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

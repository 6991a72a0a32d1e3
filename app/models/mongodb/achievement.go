package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AchievementDetail is the rich document behind a workflow row: everything
// the review and detail pages show beyond status and score.
type AchievementDetail struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PublisherID string             `bson:"publisherId" json:"publisherId"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Tags        []string           `bson:"tags" json:"tags"`
	Attachments []Attachment       `bson:"attachments" json:"attachments"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Attachment struct {
	FileName   string    `bson:"fileName" json:"fileName"`
	FileURL    string    `bson:"fileUrl" json:"fileUrl"`
	FileType   string    `bson:"fileType" json:"fileType"`
	UploadedAt time.Time `bson:"uploadedAt" json:"uploadedAt"`
}

package repository

import (
	"context"
	"fmt"
	"time"

	models "achievement-portal/app/models/mongodb"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AchievementDetailRepository interface {
	InsertOne(ctx context.Context, detail models.AchievementDetail) (string, error)
	FindOne(ctx context.Context, hexID string) (*models.AchievementDetail, error)
	FindAll(ctx context.Context, hexIDs []string) ([]models.AchievementDetail, error)
	UpdateOne(ctx context.Context, hexID string, detail models.AchievementDetail) error
	Delete(ctx context.Context, hexID string) error
	AddAttachment(ctx context.Context, hexID string, att models.Attachment) error
}

type achievementDetailRepository struct {
	col *mongo.Collection
}

func NewAchievementDetailRepository(db *mongo.Database) AchievementDetailRepository {
	return &achievementDetailRepository{col: db.Collection("achievement_details")}
}

func (r *achievementDetailRepository) InsertOne(ctx context.Context, detail models.AchievementDetail) (string, error) {
	res, err := r.col.InsertOne(ctx, detail)
	if err != nil {
		return "", fmt.Errorf("insert achievement detail: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert achievement detail: unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *achievementDetailRepository) FindOne(ctx context.Context, hexID string) (*models.AchievementDetail, error) {
	oid, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, fmt.Errorf("find achievement detail: %w", err)
	}

	var detail models.AchievementDetail
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&detail); err != nil {
		return nil, fmt.Errorf("find achievement detail: %w", err)
	}
	return &detail, nil
}

func (r *achievementDetailRepository) FindAll(ctx context.Context, hexIDs []string) ([]models.AchievementDetail, error) {
	oids := make([]primitive.ObjectID, 0, len(hexIDs))
	for _, id := range hexIDs {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue // skip dangling references
		}
		oids = append(oids, oid)
	}

	cursor, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("find achievement details: %w", err)
	}
	defer cursor.Close(ctx)

	var details []models.AchievementDetail
	if err := cursor.All(ctx, &details); err != nil {
		return nil, fmt.Errorf("find achievement details: %w", err)
	}
	return details, nil
}

func (r *achievementDetailRepository) UpdateOne(ctx context.Context, hexID string, detail models.AchievementDetail) error {
	oid, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return fmt.Errorf("update achievement detail: %w", err)
	}

	update := bson.M{"$set": bson.M{
		"title":       detail.Title,
		"description": detail.Description,
		"tags":        detail.Tags,
		"updatedAt":   time.Now(),
	}}
	_, err = r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update achievement detail: %w", err)
	}
	return nil
}

func (r *achievementDetailRepository) Delete(ctx context.Context, hexID string) error {
	oid, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return fmt.Errorf("delete achievement detail: %w", err)
	}
	_, err = r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete achievement detail: %w", err)
	}
	return nil
}

func (r *achievementDetailRepository) AddAttachment(ctx context.Context, hexID string, att models.Attachment) error {
	oid, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return fmt.Errorf("add attachment: %w", err)
	}

	update := bson.M{
		"$push": bson.M{"attachments": att},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	_, err = r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("add attachment: %w", err)
	}
	return nil
}

package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/odiaaudiogen/server/domain/entities"
	"github.com/odiaaudiogen/server/domain/repositories"
)

type FeedbackRepository struct {
	collection *mongo.Collection
}

// NewFeedbackRepository creates a new MongoDB feedback repository
func NewFeedbackRepository(db *mongo.Database) repositories.FeedbackRepository {
	return &FeedbackRepository{
		collection: db.Collection("feedback"),
	}
}

// Create implements repositories.FeedbackRepository
func (r *FeedbackRepository) Create(ctx context.Context, feedback *entities.Feedback) error {
	if feedback == nil {
		return errors.New("feedback cannot be nil")
	}
	if err := feedback.Validate(); err != nil {
		return err
	}

	if feedback.CreatedAt.IsZero() {
		feedback.CreatedAt = time.Now()
	}

	doc := bson.M{
		"name":       feedback.Name,
		"email":      feedback.Email,
		"rating":     feedback.Rating,
		"message":    feedback.Message,
		"created_at": feedback.CreatedAt,
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		feedback.ID = oid.Hex()
	}

	return nil
}

// List implements repositories.FeedbackRepository
func (r *FeedbackRepository) List(ctx context.Context) ([]*entities.Feedback, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	defer cursor.Close(ctx)

	var feedbacks []*entities.Feedback
	for cursor.Next(ctx) {
		var feedback entities.Feedback
		if err := cursor.Decode(&feedback); err != nil {
			return nil, fmt.Errorf("failed to decode feedback: %w", err)
		}
		feedbacks = append(feedbacks, &feedback)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("feedback cursor failed: %w", err)
	}

	return feedbacks, nil
}

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

type ContactRepository struct {
	collection *mongo.Collection
}

// NewContactRepository creates a new MongoDB contact repository
func NewContactRepository(db *mongo.Database) repositories.ContactRepository {
	return &ContactRepository{
		collection: db.Collection("contacts"),
	}
}

// Create implements repositories.ContactRepository
func (r *ContactRepository) Create(ctx context.Context, contact *entities.Contact) error {
	if contact == nil {
		return errors.New("contact cannot be nil")
	}
	if err := contact.Validate(); err != nil {
		return err
	}

	if contact.CreatedAt.IsZero() {
		contact.CreatedAt = time.Now()
	}

	doc := bson.M{
		"name":       contact.Name,
		"email":      contact.Email,
		"subject":    contact.Subject,
		"message":    contact.Message,
		"created_at": contact.CreatedAt,
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		contact.ID = oid.Hex()
	}

	return nil
}

// List implements repositories.ContactRepository
func (r *ContactRepository) List(ctx context.Context) ([]*entities.Contact, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer cursor.Close(ctx)

	var contacts []*entities.Contact
	for cursor.Next(ctx) {
		var contact entities.Contact
		if err := cursor.Decode(&contact); err != nil {
			return nil, fmt.Errorf("failed to decode contact: %w", err)
		}
		contacts = append(contacts, &contact)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("contact cursor failed: %w", err)
	}

	return contacts, nil
}

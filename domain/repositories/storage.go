package repositories

import (
	"context"

	"github.com/odiaaudiogen/server/domain/entities"
)

// UserRepository defines data access methods for users.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id string) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
}

// FeedbackRepository defines data access methods for feedback records.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entities.Feedback) error
	List(ctx context.Context) ([]*entities.Feedback, error)
}

// ContactRepository defines data access methods for contact submissions.
type ContactRepository interface {
	Create(ctx context.Context, contact *entities.Contact) error
	List(ctx context.Context) ([]*entities.Contact, error)
}

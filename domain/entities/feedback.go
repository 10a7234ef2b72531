package entities

import (
	"errors"
	"time"
)

// Feedback is one rating submitted by a user.
type Feedback struct {
	ID        string    `json:"_id,omitempty" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Rating    int       `json:"rating" bson:"rating"`
	Message   string    `json:"message" bson:"message"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}

func (f *Feedback) Validate() error {
	if f.Rating < 1 || f.Rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	if f.Message == "" {
		return errors.New("message is required")
	}
	return nil
}

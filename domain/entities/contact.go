package entities

import (
	"errors"
	"time"
)

// Contact is one contact-us submission.
type Contact struct {
	ID        string    `json:"_id,omitempty" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Subject   string    `json:"subject" bson:"subject"`
	Message   string    `json:"message" bson:"message"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}

func (c *Contact) Validate() error {
	if c.Message == "" {
		return errors.New("message is required")
	}
	return nil
}

package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// FeedbackStore defines persistence operations for platform feedback.
type FeedbackStore interface {
	Create(ctx context.Context, feedback Feedback) (Feedback, error)
	ListLatest(ctx context.Context, limit int) ([]Feedback, error)
}

// Feedback represents a platform review left by a user.
type Feedback struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Fullname  string
	Username  string
	Email     string
	Role      Role
	AvatarURL string
	Body      string
	Rating    int
	CreatedAt time.Time
}

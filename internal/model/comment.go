package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CommentStore defines persistence operations for video comments.
type CommentStore interface {
	Create(ctx context.Context, comment Comment) (Comment, error)
	ListByVideo(ctx context.Context, videoID uuid.UUID) ([]Comment, error)
}

// Comment represents a comment left under a course video. Author username
// and avatar are denormalized at write time for cheap listing.
type Comment struct {
	ID         uuid.UUID
	VideoID    uuid.UUID
	UserID     uuid.UUID
	Username   string
	UserAvatar string
	Body       string
	CreatedAt  time.Time
}

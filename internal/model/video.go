package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// VideoUpdate describes a partial video update. Nil fields are left untouched.
type VideoUpdate struct {
	Title        *string
	Description  *string
	VideoURL     *string
	ThumbnailURL *string
}

// VideoStore defines persistence operations for course videos.
type VideoStore interface {
	Create(ctx context.Context, video Video) (Video, error)
	GetByID(ctx context.Context, id uuid.UUID) (Video, error)
	Update(ctx context.Context, id uuid.UUID, update VideoUpdate) (Video, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Video, error)
	ListAll(ctx context.Context) ([]Video, error)
	ListTop(ctx context.Context, limit int) ([]Video, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// Video represents an uploaded course video.
type Video struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Title        string
	Description  string
	VideoURL     string
	ThumbnailURL string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

package model

import (
	"context"
	"io"
)

// FileUpload is an incoming media file handed to a service for storage.
type FileUpload struct {
	Reader      io.Reader
	Size        int64
	ContentType string
}

// Storage stores uploaded media (avatars, videos, thumbnails) and resolves
// public URLs for stored objects.
type Storage interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (url string, err error)
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

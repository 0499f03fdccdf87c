package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/coursehub/coursehub-server/internal/logger"
	"github.com/coursehub/coursehub-server/internal/model"
)

// Course owns course video metadata and the media objects behind it.
type Course struct {
	videos  model.VideoStore
	users   model.UserStore
	storage model.Storage
	logger  *logger.Logger
}

func NewCourse(
	videos model.VideoStore,
	users model.UserStore,
	storage model.Storage,
	logger *logger.Logger,
) *Course {
	return &Course{
		videos:  videos,
		users:   users,
		storage: storage,
		logger:  logger,
	}
}

// UploadParams carries a new course upload. Both media files are required.
type UploadParams struct {
	OwnerID     uuid.UUID
	Title       string
	Description string
	Video       model.FileUpload
	Thumbnail   model.FileUpload
}

// Upload stores the video and thumbnail objects and creates the course row.
func (s *Course) Upload(ctx context.Context, params UploadParams) (model.Video, error) {
	title := strings.TrimSpace(params.Title)
	description := strings.TrimSpace(params.Description)
	if title == "" || description == "" {
		return model.Video{}, fmt.Errorf("%w: title and description are required", model.ErrValidation)
	}

	if _, err := s.users.GetByID(ctx, params.OwnerID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Video{}, model.ErrNotFound
		}
		return model.Video{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	videoID := uuid.New()

	videoURL, err := s.storage.Upload(ctx, videoKey(videoID), params.Video.Reader, params.Video.Size, params.Video.ContentType)
	if err != nil {
		return model.Video{}, fmt.Errorf("failed to upload video: %w", err)
	}

	thumbnailURL, err := s.storage.Upload(ctx, thumbnailKey(videoID), params.Thumbnail.Reader, params.Thumbnail.Size, params.Thumbnail.ContentType)
	if err != nil {
		return model.Video{}, fmt.Errorf("failed to upload thumbnail: %w", err)
	}

	video := model.Video{
		ID:           videoID,
		OwnerID:      params.OwnerID,
		Title:        title,
		Description:  description,
		VideoURL:     videoURL,
		ThumbnailURL: thumbnailURL,
	}

	created, err := s.videos.Create(ctx, video)
	if err != nil {
		return model.Video{}, fmt.Errorf("failed to create video: %w", err)
	}

	s.logger.Info("Course service: video uploaded",
		"video_id", created.ID,
		"owner_id", params.OwnerID)

	return created, nil
}

// UpdateParams carries a partial course update. Nil fields are left untouched.
type UpdateParams struct {
	VideoID     uuid.UUID
	Title       *string
	Description *string
	Video       *model.FileUpload
	Thumbnail   *model.FileUpload
}

// Update replaces the provided fields and media objects of a course video.
func (s *Course) Update(ctx context.Context, params UpdateParams) (model.Video, error) {
	if params.VideoID == uuid.Nil {
		return model.Video{}, fmt.Errorf("%w: video id is required", model.ErrValidation)
	}

	update := model.VideoUpdate{}

	if params.Title != nil {
		title := strings.TrimSpace(*params.Title)
		if title != "" {
			update.Title = &title
		}
	}
	if params.Description != nil {
		description := strings.TrimSpace(*params.Description)
		if description != "" {
			update.Description = &description
		}
	}

	if params.Video != nil {
		url, err := s.storage.Upload(ctx, videoKey(params.VideoID), params.Video.Reader, params.Video.Size, params.Video.ContentType)
		if err != nil {
			return model.Video{}, fmt.Errorf("failed to upload video: %w", err)
		}
		update.VideoURL = &url
	}
	if params.Thumbnail != nil {
		url, err := s.storage.Upload(ctx, thumbnailKey(params.VideoID), params.Thumbnail.Reader, params.Thumbnail.Size, params.Thumbnail.ContentType)
		if err != nil {
			return model.Video{}, fmt.Errorf("failed to upload thumbnail: %w", err)
		}
		update.ThumbnailURL = &url
	}

	video, err := s.videos.Update(ctx, params.VideoID, update)
	if err != nil {
		return model.Video{}, fmt.Errorf("failed to update video: %w", err)
	}

	return video, nil
}

// MyCourses lists the courses owned by the given user.
func (s *Course) MyCourses(ctx context.Context, ownerID uuid.UUID) ([]model.Video, error) {
	videos, err := s.videos.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos by owner: %w", err)
	}
	return videos, nil
}

// AllCourses lists every course on the platform.
func (s *Course) AllCourses(ctx context.Context) ([]model.Video, error) {
	videos, err := s.videos.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	return videos, nil
}

// TopCourses lists the featured courses shown on the landing page.
func (s *Course) TopCourses(ctx context.Context) ([]model.Video, error) {
	videos, err := s.videos.ListTop(ctx, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to list top videos: %w", err)
	}
	return videos, nil
}

// OwnerInfo returns the public profile of a course owner.
func (s *Course) OwnerInfo(ctx context.Context, ownerID uuid.UUID) (model.User, error) {
	user, err := s.users.GetByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user.Sanitized(), nil
}

// Delete removes a course row and its media objects. Object removal is best
// effort; a dangling object is preferable to a dangling row.
func (s *Course) Delete(ctx context.Context, videoID uuid.UUID) error {
	if err := s.videos.Delete(ctx, videoID); err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}

	for _, key := range []string{videoKey(videoID), thumbnailKey(videoID)} {
		if err := s.storage.Delete(ctx, key); err != nil {
			s.logger.Warn("Course service: failed to delete media object",
				"key", key,
				"error", err.Error())
		}
	}

	return nil
}

// DeleteByOwner removes every course owned by the given user.
func (s *Course) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	videos, err := s.videos.ListByOwner(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("failed to list videos by owner: %w", err)
	}

	for _, video := range videos {
		if err := s.Delete(ctx, video.ID); err != nil {
			return err
		}
	}

	return nil
}

// Count returns the number of courses on the platform.
func (s *Course) Count(ctx context.Context) (int64, error) {
	count, err := s.videos.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count videos: %w", err)
	}
	return count, nil
}

func videoKey(id uuid.UUID) string     { return fmt.Sprintf("videos/%s", id) }
func thumbnailKey(id uuid.UUID) string { return fmt.Sprintf("thumbnails/%s", id) }

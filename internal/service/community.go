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

// Community owns course comments and platform feedback.
type Community struct {
	comments model.CommentStore
	feedback model.FeedbackStore
	users    model.UserStore
	logger   *logger.Logger
}

func NewCommunity(
	comments model.CommentStore,
	feedback model.FeedbackStore,
	users model.UserStore,
	logger *logger.Logger,
) *Community {
	return &Community{
		comments: comments,
		feedback: feedback,
		users:    users,
		logger:   logger,
	}
}

// AddComment posts a comment under a course video on behalf of the given user.
// The author's display name and avatar are denormalized onto the comment so a
// comment feed never fans out into per-author lookups.
func (s *Community) AddComment(ctx context.Context, userID, videoID uuid.UUID, text string) (model.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Comment{}, fmt.Errorf("%w: comment text is required", model.ErrValidation)
	}
	if videoID == uuid.Nil {
		return model.Comment{}, fmt.Errorf("%w: video id is required", model.ErrValidation)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Comment{}, model.ErrNotFound
		}
		return model.Comment{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	comment := model.Comment{
		ID:         uuid.New(),
		VideoID:    videoID,
		UserID:     user.ID,
		Username:   user.Username,
		UserAvatar: user.AvatarURL,
		Body:       text,
	}

	created, err := s.comments.Create(ctx, comment)
	if err != nil {
		return model.Comment{}, fmt.Errorf("failed to create comment: %w", err)
	}

	return created, nil
}

// Comments lists the comments under a course video, newest first.
func (s *Community) Comments(ctx context.Context, videoID uuid.UUID) ([]model.Comment, error) {
	comments, err := s.comments.ListByVideo(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// AddFeedback records a platform rating and review from the given user.
func (s *Community) AddFeedback(ctx context.Context, userID uuid.UUID, rating int, text string) (model.Feedback, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Feedback{}, fmt.Errorf("%w: feedback text is required", model.ErrValidation)
	}
	if rating < 1 || rating > 5 {
		return model.Feedback{}, fmt.Errorf("%w: rating must be between 1 and 5", model.ErrValidation)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Feedback{}, model.ErrNotFound
		}
		return model.Feedback{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	feedback := model.Feedback{
		ID:        uuid.New(),
		UserID:    user.ID,
		Fullname:  user.Fullname,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		AvatarURL: user.AvatarURL,
		Body:      text,
		Rating:    rating,
	}

	created, err := s.feedback.Create(ctx, feedback)
	if err != nil {
		return model.Feedback{}, fmt.Errorf("failed to create feedback: %w", err)
	}

	s.logger.Info("Community service: feedback recorded",
		"user_id", user.ID,
		"rating", rating)

	return created, nil
}

// AllFeedback lists the most recent platform feedback entries.
func (s *Community) AllFeedback(ctx context.Context) ([]model.Feedback, error) {
	entries, err := s.feedback.ListLatest(ctx, 5)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return entries, nil
}

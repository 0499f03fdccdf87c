package postgres

import (
	"context"
	"fmt"

	"github.com/coursehub/coursehub-server/internal/model"
)

var _ model.FeedbackStore = (*FeedbackRepository)(nil)

type FeedbackRepository struct {
	db *Connection
}

func NewFeedbackRepository(db *Connection) *FeedbackRepository {
	return &FeedbackRepository{
		db: db,
	}
}

func (r *FeedbackRepository) Create(ctx context.Context, feedback model.Feedback) (model.Feedback, error) {
	query := `INSERT INTO feedback (id, user_id, fullname, username, email, role, avatar_url, body, rating)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING id, user_id, fullname, username, email, role, avatar_url, body, rating, created_at`

	var saved model.Feedback
	err := r.db.QueryRow(ctx, query,
		feedback.ID, feedback.UserID, feedback.Fullname, feedback.Username, feedback.Email,
		feedback.Role, feedback.AvatarURL, feedback.Body, feedback.Rating,
	).Scan(
		&saved.ID, &saved.UserID, &saved.Fullname, &saved.Username, &saved.Email,
		&saved.Role, &saved.AvatarURL, &saved.Body, &saved.Rating, &saved.CreatedAt,
	)
	if err != nil {
		return model.Feedback{}, fmt.Errorf("failed to create feedback: %w", err)
	}

	return saved, nil
}

func (r *FeedbackRepository) ListLatest(ctx context.Context, limit int) ([]model.Feedback, error) {
	query := `SELECT id, user_id, fullname, username, email, role, avatar_url, body, rating, created_at
			  FROM feedback ORDER BY created_at DESC LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	defer rows.Close()

	var entries []model.Feedback
	for rows.Next() {
		var entry model.Feedback
		if err := rows.Scan(
			&entry.ID, &entry.UserID, &entry.Fullname, &entry.Username, &entry.Email,
			&entry.Role, &entry.AvatarURL, &entry.Body, &entry.Rating, &entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate feedback: %w", err)
	}

	return entries, nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/coursehub/coursehub-server/internal/model"
)

var _ model.CommentStore = (*CommentRepository)(nil)

type CommentRepository struct {
	db *Connection
}

func NewCommentRepository(db *Connection) *CommentRepository {
	return &CommentRepository{
		db: db,
	}
}

func (r *CommentRepository) Create(ctx context.Context, comment model.Comment) (model.Comment, error) {
	query := `INSERT INTO comments (id, video_id, user_id, username, user_avatar, body)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, video_id, user_id, username, user_avatar, body, created_at`

	var saved model.Comment
	err := r.db.QueryRow(ctx, query,
		comment.ID, comment.VideoID, comment.UserID, comment.Username, comment.UserAvatar, comment.Body,
	).Scan(
		&saved.ID, &saved.VideoID, &saved.UserID, &saved.Username, &saved.UserAvatar,
		&saved.Body, &saved.CreatedAt,
	)
	if err != nil {
		return model.Comment{}, fmt.Errorf("failed to create comment: %w", err)
	}

	return saved, nil
}

func (r *CommentRepository) ListByVideo(ctx context.Context, videoID uuid.UUID) ([]model.Comment, error) {
	query := `SELECT id, video_id, user_id, username, user_avatar, body, created_at
			  FROM comments WHERE video_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		var comment model.Comment
		if err := rows.Scan(
			&comment.ID, &comment.VideoID, &comment.UserID, &comment.Username,
			&comment.UserAvatar, &comment.Body, &comment.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comments: %w", err)
	}

	return comments, nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/coursehub/coursehub-server/internal/model"
)

var _ model.VideoStore = (*VideoRepository)(nil)

const videoColumns = `id, owner_id, title, description, video_url, thumbnail_url, created_at, updated_at`

type VideoRepository struct {
	db *Connection
}

func NewVideoRepository(db *Connection) *VideoRepository {
	return &VideoRepository{
		db: db,
	}
}

func scanVideo(row pgx.Row) (model.Video, error) {
	var video model.Video
	err := row.Scan(
		&video.ID, &video.OwnerID, &video.Title, &video.Description,
		&video.VideoURL, &video.ThumbnailURL, &video.CreatedAt, &video.UpdatedAt,
	)
	return video, err
}

func (r *VideoRepository) Create(ctx context.Context, video model.Video) (model.Video, error) {
	query := `INSERT INTO videos (id, owner_id, title, description, video_url, thumbnail_url)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING ` + videoColumns

	savedVideo, err := scanVideo(r.db.QueryRow(ctx, query,
		video.ID, video.OwnerID, video.Title, video.Description,
		video.VideoURL, video.ThumbnailURL,
	))
	if err != nil {
		return model.Video{}, fmt.Errorf("failed to create video: %w", err)
	}

	return savedVideo, nil
}

func (r *VideoRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE id = $1`

	video, err := scanVideo(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Video{}, model.ErrNotFound
		}
		return model.Video{}, fmt.Errorf("failed to get video by id: %w", err)
	}

	return video, nil
}

func (r *VideoRepository) Update(ctx context.Context, id uuid.UUID, update model.VideoUpdate) (model.Video, error) {
	query := `UPDATE videos SET
				title = COALESCE($2, title),
				description = COALESCE($3, description),
				video_url = COALESCE($4, video_url),
				thumbnail_url = COALESCE($5, thumbnail_url),
				updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + videoColumns

	video, err := scanVideo(r.db.QueryRow(ctx, query,
		id, update.Title, update.Description, update.VideoURL, update.ThumbnailURL,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Video{}, model.ErrNotFound
		}
		return model.Video{}, fmt.Errorf("failed to update video: %w", err)
	}

	return video, nil
}

func (r *VideoRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE owner_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos by owner: %w", err)
	}
	defer rows.Close()

	return collectVideos(rows)
}

func (r *VideoRepository) ListAll(ctx context.Context) ([]model.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	defer rows.Close()

	return collectVideos(rows)
}

func (r *VideoRepository) ListTop(ctx context.Context, limit int) ([]model.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos ORDER BY created_at ASC LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list top videos: %w", err)
	}
	defer rows.Close()

	return collectVideos(rows)
}

func (r *VideoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM videos WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *VideoRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	query := `DELETE FROM videos WHERE owner_id = $1`

	if _, err := r.db.Exec(ctx, query, ownerID); err != nil {
		return fmt.Errorf("failed to delete videos by owner: %w", err)
	}

	return nil
}

func (r *VideoRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM videos`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count videos: %w", err)
	}

	return count, nil
}

func collectVideos(rows pgx.Rows) ([]model.Video, error) {
	var videos []model.Video
	for rows.Next() {
		video, err := scanVideo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan video: %w", err)
		}
		videos = append(videos, video)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate videos: %w", err)
	}

	return videos, nil
}

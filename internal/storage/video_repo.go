package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// VideoStore defines the interface for processed video storage operations.
type VideoStore interface {
	// Upsert inserts a processed video or replaces the stored content for its video ID.
	Upsert(ctx context.Context, video *VideoRecord) error
	// GetByVideoID gets a processed video. Returns ErrNotFound if not found.
	GetByVideoID(ctx context.Context, videoID string) (*VideoRecord, error)
	// ListRecent returns the most recently updated videos, newest first.
	ListRecent(ctx context.Context, limit int) ([]VideoRecord, error)
}

// VideoRepo provides methods for processed video operations.
// It implements the VideoStore interface.
type VideoRepo struct {
	db *sql.DB
}

// NewVideoRepo creates a new VideoRepo.
func NewVideoRepo(db *sql.DB) *VideoRepo {
	return &VideoRepo{db: db}
}

// Upsert inserts a processed video or replaces the stored content for its video ID.
// created_at is preserved on update.
func (r *VideoRepo) Upsert(ctx context.Context, video *VideoRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO videos (video_id, title, transcript, summary_json, questions_json, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		 ON CONFLICT (video_id) DO UPDATE SET
		 title = excluded.title, transcript = excluded.transcript,
		 summary_json = excluded.summary_json, questions_json = excluded.questions_json,
		 updated_at = CURRENT_TIMESTAMP`,
		video.VideoID, video.Title, video.Transcript, video.SummaryJSON, video.QuestionsJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert video: %w", err)
	}
	return nil
}

// GetByVideoID gets a processed video. Returns ErrNotFound if not found.
func (r *VideoRepo) GetByVideoID(ctx context.Context, videoID string) (*VideoRecord, error) {
	var video VideoRecord
	err := r.db.QueryRowContext(ctx,
		`SELECT video_id, title, transcript, summary_json, questions_json, created_at, updated_at
		 FROM videos WHERE video_id = ?`,
		videoID,
	).Scan(&video.VideoID, &video.Title, &video.Transcript, &video.SummaryJSON, &video.QuestionsJSON, &video.CreatedAt, &video.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query video: %w", err)
	}

	return &video, nil
}

// ListRecent returns the most recently updated videos, newest first.
// Returns an empty slice if no videos exist (not an error).
func (r *VideoRepo) ListRecent(ctx context.Context, limit int) ([]VideoRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT video_id, title, transcript, summary_json, questions_json, created_at, updated_at
		 FROM videos ORDER BY updated_at DESC, rowid DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query videos: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	videos := make([]VideoRecord, 0)
	for rows.Next() {
		var video VideoRecord
		if err := rows.Scan(&video.VideoID, &video.Title, &video.Transcript, &video.SummaryJSON, &video.QuestionsJSON, &video.CreatedAt, &video.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan video: %w", err)
		}
		videos = append(videos, video)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return videos, nil
}

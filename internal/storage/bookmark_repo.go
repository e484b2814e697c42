package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
)

// BookmarkStore defines the interface for bookmark storage operations.
type BookmarkStore interface {
	// List returns all bookmarks, newest first.
	List(ctx context.Context) ([]BookmarkRecord, error)
	// Add stores a bookmark. Returns ErrDuplicate if the video is already bookmarked.
	Add(ctx context.Context, bookmark *BookmarkRecord) error
	// Remove deletes the bookmark for a video. Removing a missing bookmark is not an error.
	Remove(ctx context.Context, videoID string) error
	// IsBookmarked reports whether a video is bookmarked.
	IsBookmarked(ctx context.Context, videoID string) (bool, error)
}

// BookmarkRepo provides methods for bookmark operations.
// It implements the BookmarkStore interface.
type BookmarkRepo struct {
	db *sql.DB
}

// NewBookmarkRepo creates a new BookmarkRepo.
func NewBookmarkRepo(db *sql.DB) *BookmarkRepo {
	return &BookmarkRepo{db: db}
}

// List returns all bookmarks, newest first.
func (r *BookmarkRepo) List(ctx context.Context) ([]BookmarkRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, video_id, title, channel, duration, thumbnail, created_at
		 FROM bookmarks ORDER BY created_at DESC, rowid DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookmarks: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	bookmarks := make([]BookmarkRecord, 0)
	for rows.Next() {
		var b BookmarkRecord
		if err := rows.Scan(&b.ID, &b.VideoID, &b.Title, &b.Channel, &b.Duration, &b.Thumbnail, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bookmark: %w", err)
		}
		bookmarks = append(bookmarks, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return bookmarks, nil
}

// Add stores a bookmark, assigning a UUID and creation time.
// Returns ErrDuplicate if the video is already bookmarked.
func (r *BookmarkRepo) Add(ctx context.Context, bookmark *BookmarkRecord) error {
	if bookmark.ID == "" {
		bookmark.ID = uuid.New().String()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO bookmarks (id, video_id, title, channel, duration, thumbnail, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`,
		bookmark.ID, bookmark.VideoID, bookmark.Title, bookmark.Channel, bookmark.Duration, bookmark.Thumbnail,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to insert bookmark: %w", err)
	}

	return r.db.QueryRowContext(ctx,
		"SELECT created_at FROM bookmarks WHERE id = ?", bookmark.ID,
	).Scan(&bookmark.CreatedAt)
}

// Remove deletes the bookmark for a video.
func (r *BookmarkRepo) Remove(ctx context.Context, videoID string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM bookmarks WHERE video_id = ?", videoID); err != nil {
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}
	return nil
}

// IsBookmarked reports whether a video is bookmarked.
func (r *BookmarkRepo) IsBookmarked(ctx context.Context, videoID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM bookmarks WHERE video_id = ?)", videoID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check bookmark: %w", err)
	}
	return exists, nil
}

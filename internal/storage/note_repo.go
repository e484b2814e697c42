package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// NoteStore defines the interface for note storage operations.
type NoteStore interface {
	// List returns all notes, newest first.
	List(ctx context.Context) ([]NoteRecord, error)
	// Add stores a note.
	Add(ctx context.Context, note *NoteRecord) error
}

// NoteRepo provides methods for note operations.
// It implements the NoteStore interface.
type NoteRepo struct {
	db *sql.DB
}

// NewNoteRepo creates a new NoteRepo.
func NewNoteRepo(db *sql.DB) *NoteRepo {
	return &NoteRepo{db: db}
}

// List returns all notes, newest first.
func (r *NoteRepo) List(ctx context.Context) ([]NoteRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, content, subject, created_at, updated_at
		 FROM notes ORDER BY created_at DESC, rowid DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	notes := make([]NoteRecord, 0)
	for rows.Next() {
		var n NoteRecord
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.Subject, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return notes, nil
}

// Add stores a note, assigning a UUID and timestamps.
func (r *NoteRepo) Add(ctx context.Context, note *NoteRecord) error {
	if note.ID == "" {
		note.ID = uuid.New().String()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO notes (id, title, content, subject, created_at, updated_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`,
		note.ID, note.Title, note.Content, note.Subject,
	)
	if err != nil {
		return fmt.Errorf("failed to insert note: %w", err)
	}

	return r.db.QueryRowContext(ctx,
		"SELECT created_at, updated_at FROM notes WHERE id = ?", note.ID,
	).Scan(&note.CreatedAt, &note.UpdatedAt)
}

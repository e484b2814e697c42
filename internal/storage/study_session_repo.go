package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// StudySessionStore defines the interface for study session storage operations.
type StudySessionStore interface {
	// List returns all study sessions, newest first.
	List(ctx context.Context) ([]StudySessionRecord, error)
	// Add records a study session.
	Add(ctx context.Context, session *StudySessionRecord) error
	// TotalMinutes returns the sum of all session durations.
	TotalMinutes(ctx context.Context) (int, error)
}

// StudySessionRepo provides methods for study session operations.
// It implements the StudySessionStore interface.
type StudySessionRepo struct {
	db *sql.DB
}

// NewStudySessionRepo creates a new StudySessionRepo.
func NewStudySessionRepo(db *sql.DB) *StudySessionRepo {
	return &StudySessionRepo{db: db}
}

// List returns all study sessions, newest first.
func (r *StudySessionRepo) List(ctx context.Context) ([]StudySessionRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, duration_minutes, date FROM study_sessions ORDER BY date DESC, rowid DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query study sessions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	sessions := make([]StudySessionRecord, 0)
	for rows.Next() {
		var s StudySessionRecord
		if err := rows.Scan(&s.ID, &s.DurationMinutes, &s.Date); err != nil {
			return nil, fmt.Errorf("failed to scan study session: %w", err)
		}
		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return sessions, nil
}

// Add records a study session, assigning a UUID and the current date.
func (r *StudySessionRepo) Add(ctx context.Context, session *StudySessionRecord) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO study_sessions (id, duration_minutes, date) VALUES (?, ?, CURRENT_TIMESTAMP)",
		session.ID, session.DurationMinutes,
	)
	if err != nil {
		return fmt.Errorf("failed to insert study session: %w", err)
	}

	return r.db.QueryRowContext(ctx,
		"SELECT date FROM study_sessions WHERE id = ?", session.ID,
	).Scan(&session.Date)
}

// TotalMinutes returns the sum of all session durations.
func (r *StudySessionRepo) TotalMinutes(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(duration_minutes), 0) FROM study_sessions",
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum study time: %w", err)
	}
	return total, nil
}

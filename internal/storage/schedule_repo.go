package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// ScheduleStore defines the interface for schedule storage operations.
type ScheduleStore interface {
	// List returns the weekly schedule ordered by day and start time.
	List(ctx context.Context) ([]ScheduleRecord, error)
	// Add stores a schedule slot.
	Add(ctx context.Context, schedule *ScheduleRecord) error
}

// ScheduleRepo provides methods for schedule operations.
// It implements the ScheduleStore interface.
type ScheduleRepo struct {
	db *sql.DB
}

// NewScheduleRepo creates a new ScheduleRepo.
func NewScheduleRepo(db *sql.DB) *ScheduleRepo {
	return &ScheduleRepo{db: db}
}

// List returns the weekly schedule, Sunday first.
// start_time is zero-padded HH:MM, so text order is time order.
func (r *ScheduleRepo) List(ctx context.Context) ([]ScheduleRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, subject, start_time, end_time, day_of_week, color, created_at
		 FROM schedules ORDER BY day_of_week, start_time, rowid`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedules: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	schedules := make([]ScheduleRecord, 0)
	for rows.Next() {
		var s ScheduleRecord
		if err := rows.Scan(&s.ID, &s.Title, &s.Subject, &s.StartTime, &s.EndTime, &s.DayOfWeek, &s.Color, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		schedules = append(schedules, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return schedules, nil
}

// Add stores a schedule slot, assigning a UUID and creation time.
func (r *ScheduleRepo) Add(ctx context.Context, schedule *ScheduleRecord) error {
	if schedule.ID == "" {
		schedule.ID = uuid.New().String()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO schedules (id, title, subject, start_time, end_time, day_of_week, color, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`,
		schedule.ID, schedule.Title, schedule.Subject, schedule.StartTime, schedule.EndTime, schedule.DayOfWeek, schedule.Color,
	)
	if err != nil {
		return fmt.Errorf("failed to insert schedule: %w", err)
	}

	return r.db.QueryRowContext(ctx,
		"SELECT created_at FROM schedules WHERE id = ?", schedule.ID,
	).Scan(&schedule.CreatedAt)
}

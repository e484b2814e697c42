package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// TaskStore defines the interface for task storage operations.
type TaskStore interface {
	// List returns all tasks, newest first.
	List(ctx context.Context) ([]TaskRecord, error)
	// Add stores a task.
	Add(ctx context.Context, task *TaskRecord) error
}

// TaskRepo provides methods for task operations.
// It implements the TaskStore interface.
type TaskRepo struct {
	db *sql.DB
}

// NewTaskRepo creates a new TaskRepo.
func NewTaskRepo(db *sql.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

// List returns all tasks, newest first.
func (r *TaskRepo) List(ctx context.Context) ([]TaskRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, description, subject, priority, status, due_date, created_at
		 FROM tasks ORDER BY created_at DESC, rowid DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	tasks := make([]TaskRecord, 0)
	for rows.Next() {
		var (
			t   TaskRecord
			due sql.NullTime
		)
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Subject, &t.Priority, &t.Status, &due, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		if due.Valid {
			t.DueDate = &due.Time
		}
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return tasks, nil
}

// Add stores a task, assigning a UUID and creation time.
func (r *TaskRepo) Add(ctx context.Context, task *TaskRecord) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}

	var due any
	if task.DueDate != nil {
		due = task.DueDate.UTC()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (id, title, description, subject, priority, status, due_date, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`,
		task.ID, task.Title, task.Description, task.Subject, task.Priority, task.Status, due,
	)
	if err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}

	return r.db.QueryRowContext(ctx,
		"SELECT created_at FROM tasks WHERE id = ?", task.ID,
	).Scan(&task.CreatedAt)
}

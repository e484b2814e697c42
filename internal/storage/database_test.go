package storage

import (
	"database/sql"
	"path/filepath"
	"testing"
)

// newTestDB opens a migrated database in a temporary directory.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	return db
}

func TestNew(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{
			name:    "valid path",
			path:    dbPath,
			wantErr: false,
		},
		{
			name:    "invalid path",
			path:    "/invalid/path/to/db.db",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, err := New(tt.path)

			if tt.wantErr {
				if err == nil {
					t.Errorf("New() expected error, got nil")
				}
				if db != nil {
					_ = db.Close()
				}
				return
			}

			if err != nil {
				t.Errorf("New() unexpected error: %v", err)
				return
			}

			if db == nil {
				t.Fatal("New() returned nil database")
			}

			if db.Stats().MaxOpenConnections != 25 {
				t.Errorf("New() MaxOpenConnections = %v, want 25", db.Stats().MaxOpenConnections)
			}

			_ = db.Close()
		})
	}
}

func TestNew_EnablesForeignKeys(t *testing.T) {
	db, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	var fkEnabled int
	if err := db.QueryRow("PRAGMA foreign_keys").Scan(&fkEnabled); err != nil {
		t.Fatalf("Failed to check foreign keys: %v", err)
	}

	if fkEnabled != 1 {
		t.Error("New() should enable foreign keys")
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	db := newTestDB(t)

	// Second run on an already migrated database
	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() second run error = %v", err)
	}

	tables := []string{"videos", "bookmarks", "study_sessions", "notes", "flashcards", "tasks", "schedules"}
	for _, table := range tables {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		if err != nil {
			t.Fatalf("Failed to check table %s: %v", table, err)
		}
		if count != 1 {
			t.Errorf("Migrate() table %s not found", table)
		}
	}
}

func TestMigrate_RejectsNonPositiveDuration(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Exec("INSERT INTO study_sessions (id, duration_minutes) VALUES ('s1', 0)")
	if err == nil {
		t.Error("study_sessions should reject a zero duration")
	}
}

func TestMigrate_CheckConstraints(t *testing.T) {
	db := newTestDB(t)

	tests := []struct {
		name string
		stmt string
	}{
		{
			name: "unknown flashcard difficulty",
			stmt: "INSERT INTO flashcards (id, front, back, difficulty) VALUES ('f1', 'q', 'a', 'trivial')",
		},
		{
			name: "unknown task priority",
			stmt: "INSERT INTO tasks (id, title, priority, status) VALUES ('t1', 'x', 'someday', 'pending')",
		},
		{
			name: "unknown task status",
			stmt: "INSERT INTO tasks (id, title, priority, status) VALUES ('t2', 'x', 'low', 'blocked')",
		},
		{
			name: "day of week out of range",
			stmt: "INSERT INTO schedules (id, title, start_time, end_time, day_of_week, color) VALUES ('s1', 'x', '09:00', '10:00', 7, '#3B82F6')",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := db.Exec(tt.stmt); err == nil {
				t.Error("insert should violate a CHECK constraint")
			}
		})
	}
}

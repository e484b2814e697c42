package storage

import (
	"context"
	"testing"
)

func TestStudySessionRepo(t *testing.T) {
	repo := NewStudySessionRepo(newTestDB(t))
	ctx := context.Background()

	total, err := repo.TotalMinutes(ctx)
	if err != nil {
		t.Fatalf("TotalMinutes() error = %v", err)
	}
	if total != 0 {
		t.Errorf("TotalMinutes() on empty store = %d, want 0", total)
	}

	for _, minutes := range []int{25, 50, 10} {
		session := &StudySessionRecord{DurationMinutes: minutes}
		if err := repo.Add(ctx, session); err != nil {
			t.Fatalf("Add(%d) error = %v", minutes, err)
		}
		if session.ID == "" {
			t.Error("Add() should assign an ID")
		}
		if session.Date.IsZero() {
			t.Error("Add() should set Date")
		}
	}

	sessions, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("List() returned %d sessions, want 3", len(sessions))
	}
	if sessions[0].DurationMinutes != 10 {
		t.Errorf("List()[0].DurationMinutes = %d, want newest session (10)", sessions[0].DurationMinutes)
	}

	total, err = repo.TotalMinutes(ctx)
	if err != nil {
		t.Fatalf("TotalMinutes() error = %v", err)
	}
	if total != 85 {
		t.Errorf("TotalMinutes() = %d, want 85", total)
	}
}

func TestStudySessionRepo_Add_RejectsNonPositive(t *testing.T) {
	repo := NewStudySessionRepo(newTestDB(t))

	if err := repo.Add(context.Background(), &StudySessionRecord{DurationMinutes: -5}); err == nil {
		t.Error("Add() with negative duration should return error")
	}
}

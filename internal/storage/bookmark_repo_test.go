package storage

import (
	"context"
	"errors"
	"testing"
)

func TestBookmarkRepo_AddListRemove(t *testing.T) {
	repo := NewBookmarkRepo(newTestDB(t))
	ctx := context.Background()

	bookmark := &BookmarkRecord{
		VideoID:   "dQw4w9WgXcQ",
		Title:     "Intro to Go",
		Channel:   "Gophers",
		Duration:  "PT12M3S",
		Thumbnail: "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg",
	}
	if err := repo.Add(ctx, bookmark); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if bookmark.ID == "" {
		t.Error("Add() should assign an ID")
	}
	if bookmark.CreatedAt.IsZero() {
		t.Error("Add() should set CreatedAt")
	}

	bookmarked, err := repo.IsBookmarked(ctx, "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("IsBookmarked() error = %v", err)
	}
	if !bookmarked {
		t.Error("IsBookmarked() = false, want true")
	}

	bookmarks, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(bookmarks) != 1 || bookmarks[0].Channel != "Gophers" {
		t.Errorf("List() = %+v, want one bookmark from Gophers", bookmarks)
	}

	if err := repo.Remove(ctx, "dQw4w9WgXcQ"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	bookmarked, err = repo.IsBookmarked(ctx, "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("IsBookmarked() error = %v", err)
	}
	if bookmarked {
		t.Error("IsBookmarked() after Remove = true, want false")
	}
}

func TestBookmarkRepo_Add_Duplicate(t *testing.T) {
	repo := NewBookmarkRepo(newTestDB(t))
	ctx := context.Background()

	first := &BookmarkRecord{VideoID: "dQw4w9WgXcQ", Title: "a", Channel: "c", Duration: "PT1M", Thumbnail: "t"}
	if err := repo.Add(ctx, first); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	second := &BookmarkRecord{VideoID: "dQw4w9WgXcQ", Title: "b", Channel: "c", Duration: "PT1M", Thumbnail: "t"}
	if err := repo.Add(ctx, second); !errors.Is(err, ErrDuplicate) {
		t.Errorf("Add() duplicate error = %v, want ErrDuplicate", err)
	}
}

func TestBookmarkRepo_Remove_Missing(t *testing.T) {
	repo := NewBookmarkRepo(newTestDB(t))

	if err := repo.Remove(context.Background(), "missing"); err != nil {
		t.Errorf("Remove() missing bookmark error = %v, want nil", err)
	}
}

func TestBookmarkRepo_List_Empty(t *testing.T) {
	repo := NewBookmarkRepo(newTestDB(t))

	bookmarks, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if bookmarks == nil || len(bookmarks) != 0 {
		t.Errorf("List() = %v, want empty non-nil slice", bookmarks)
	}
}

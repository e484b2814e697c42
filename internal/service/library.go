package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_library_service.go -package=mocks -mock_names=LibraryService=MockLibraryService transcript-tutor/internal/service LibraryService

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"transcript-tutor/internal/contextutil"
	"transcript-tutor/internal/storage"
	"transcript-tutor/internal/video"
)

// Bookmark is a saved video.
type Bookmark struct {
	ID        string
	VideoID   string
	Title     string
	Channel   string
	Duration  string
	Thumbnail string
	CreatedAt time.Time
}

// StudySession is a completed study session.
type StudySession struct {
	ID              string
	DurationMinutes int
	Date            time.Time
}

// LibraryService manages bookmarks and study time.
type LibraryService interface {
	ListBookmarks(ctx context.Context) ([]Bookmark, error)
	// AddBookmark saves a video. Returns ErrConflict if it is already bookmarked.
	AddBookmark(ctx context.Context, b Bookmark) (Bookmark, error)
	// RemoveBookmark and IsBookmarked accept a bare ID or a video URL, like AddBookmark.
	RemoveBookmark(ctx context.Context, ref string) error
	IsBookmarked(ctx context.Context, ref string) (bool, error)
	ListStudySessions(ctx context.Context) ([]StudySession, error)
	// AddStudySession records a session of durationMinutes, which must be positive.
	AddStudySession(ctx context.Context, durationMinutes int) (StudySession, error)
	// TotalStudyTime returns the total study time in minutes.
	TotalStudyTime(ctx context.Context) (int, error)
}

// libraryService implements LibraryService.
type libraryService struct {
	bookmarks storage.BookmarkStore
	sessions  storage.StudySessionStore
}

// NewLibraryService creates a new LibraryService.
func NewLibraryService(bookmarks storage.BookmarkStore, sessions storage.StudySessionStore) LibraryService {
	return &libraryService{
		bookmarks: bookmarks,
		sessions:  sessions,
	}
}

func (s *libraryService) ListBookmarks(ctx context.Context) ([]Bookmark, error) {
	records, err := s.bookmarks.List(ctx)
	if err != nil {
		return nil, WrapError(err, "failed to list bookmarks")
	}

	bookmarks := make([]Bookmark, 0, len(records))
	for _, r := range records {
		bookmarks = append(bookmarks, Bookmark(r))
	}
	return bookmarks, nil
}

func (s *libraryService) AddBookmark(ctx context.Context, b Bookmark) (Bookmark, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if strings.TrimSpace(b.VideoID) == "" {
		return Bookmark{}, &ValidationError{Field: "video_id", Message: "Video ID is required"}
	}
	if strings.TrimSpace(b.Title) == "" {
		return Bookmark{}, &ValidationError{Field: "title", Message: "Title is required"}
	}

	videoID, err := bookmarkVideoID(b.VideoID)
	if err != nil {
		return Bookmark{}, err
	}

	record := storage.BookmarkRecord{
		VideoID:   videoID,
		Title:     b.Title,
		Channel:   b.Channel,
		Duration:  b.Duration,
		Thumbnail: b.Thumbnail,
	}
	if err := s.bookmarks.Add(ctx, &record); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return Bookmark{}, fmt.Errorf("bookmark for %s: %w", videoID, ErrConflict)
		}
		return Bookmark{}, WrapError(err, "failed to add bookmark")
	}

	logger.InfoContext(ctx, "bookmark added", "video_id", videoID)
	return Bookmark(record), nil
}

func (s *libraryService) RemoveBookmark(ctx context.Context, ref string) error {
	if strings.TrimSpace(ref) == "" {
		return &ValidationError{Field: "video_id", Message: "Video ID is required"}
	}
	videoID, err := bookmarkVideoID(ref)
	if err != nil {
		return err
	}
	if err := s.bookmarks.Remove(ctx, videoID); err != nil {
		return WrapError(err, "failed to remove bookmark")
	}
	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "bookmark removed", "video_id", videoID)
	return nil
}

func (s *libraryService) IsBookmarked(ctx context.Context, ref string) (bool, error) {
	videoID, err := bookmarkVideoID(ref)
	if err != nil {
		return false, err
	}
	ok, err := s.bookmarks.IsBookmarked(ctx, videoID)
	if err != nil {
		return false, WrapError(err, "failed to check bookmark status")
	}
	return ok, nil
}

// bookmarkVideoID accepts either a bare ID or any supported video URL, so every
// bookmark operation keys on the same canonical ID.
func bookmarkVideoID(ref string) (string, error) {
	videoID, err := video.ExtractID(strings.TrimSpace(ref))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return videoID, nil
}

func (s *libraryService) ListStudySessions(ctx context.Context) ([]StudySession, error) {
	records, err := s.sessions.List(ctx)
	if err != nil {
		return nil, WrapError(err, "failed to list study sessions")
	}

	sessions := make([]StudySession, 0, len(records))
	for _, r := range records {
		sessions = append(sessions, StudySession(r))
	}
	return sessions, nil
}

func (s *libraryService) AddStudySession(ctx context.Context, durationMinutes int) (StudySession, error) {
	if durationMinutes <= 0 {
		return StudySession{}, &ValidationError{Field: "duration", Message: "Duration must be a positive number of minutes"}
	}

	record := storage.StudySessionRecord{DurationMinutes: durationMinutes}
	if err := s.sessions.Add(ctx, &record); err != nil {
		return StudySession{}, WrapError(err, "failed to add study session")
	}

	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "study session recorded", "duration_minutes", durationMinutes)
	return StudySession(record), nil
}

func (s *libraryService) TotalStudyTime(ctx context.Context) (int, error) {
	total, err := s.sessions.TotalMinutes(ctx)
	if err != nil {
		return 0, WrapError(err, "failed to get total study time")
	}
	return total, nil
}

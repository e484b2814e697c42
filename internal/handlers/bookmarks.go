package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"transcript-tutor/internal/contextutil"
	"transcript-tutor/internal/service"
)

// BookmarkHandler handles HTTP requests for bookmarked videos.
type BookmarkHandler struct {
	library service.LibraryService
}

// NewBookmarkHandler creates a new BookmarkHandler.
func NewBookmarkHandler(library service.LibraryService) *BookmarkHandler {
	return &BookmarkHandler{
		library: library,
	}
}

// BookmarkRequest represents the HTTP request payload for adding a bookmark.
//
// swagger:model BookmarkRequest
type BookmarkRequest struct {
	// Video ID or URL
	VideoID   string `json:"video_id"`
	Title     string `json:"title"`
	Channel   string `json:"channel"`
	Duration  string `json:"duration"`
	Thumbnail string `json:"thumbnail"`
}

// BookmarkResponse is a stored bookmark.
//
// swagger:model BookmarkResponse
type BookmarkResponse struct {
	ID        string    `json:"id"`
	VideoID   string    `json:"video_id"`
	Title     string    `json:"title"`
	Channel   string    `json:"channel"`
	Duration  string    `json:"duration"`
	Thumbnail string    `json:"thumbnail"`
	CreatedAt time.Time `json:"created_at"`
}

// BookmarkStatusResponse reports whether a video is bookmarked.
type BookmarkStatusResponse struct {
	IsBookmarked bool `json:"is_bookmarked"`
}

func toBookmarkResponse(b service.Bookmark) BookmarkResponse {
	return BookmarkResponse{
		ID:        b.ID,
		VideoID:   b.VideoID,
		Title:     b.Title,
		Channel:   b.Channel,
		Duration:  b.Duration,
		Thumbnail: b.Thumbnail,
		CreatedAt: b.CreatedAt,
	}
}

// List handles GET /api/bookmarks.
func (h *BookmarkHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	bookmarks, err := h.library.ListBookmarks(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to fetch bookmarks")
		return
	}

	resp := make([]BookmarkResponse, 0, len(bookmarks))
	for _, b := range bookmarks {
		resp = append(resp, toBookmarkResponse(b))
	}
	writeJSON(w, ctx, http.StatusOK, resp)
}

// Add handles POST /api/bookmarks.
func (h *BookmarkHandler) Add(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req BookmarkRequest
	if err := decodeJSON(w, r, &req); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "invalid bookmark body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid bookmark data")
		return
	}

	bookmark, err := h.library.AddBookmark(ctx, service.Bookmark{
		VideoID:   req.VideoID,
		Title:     req.Title,
		Channel:   req.Channel,
		Duration:  req.Duration,
		Thumbnail: req.Thumbnail,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to add bookmark")
		return
	}

	writeJSON(w, ctx, http.StatusCreated, toBookmarkResponse(bookmark))
}

// Remove handles DELETE /api/bookmarks/{videoID}.
func (h *BookmarkHandler) Remove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.library.RemoveBookmark(ctx, chi.URLParam(r, "videoID")); err != nil {
		handleServiceError(w, ctx, err, "Failed to remove bookmark")
		return
	}

	writeJSON(w, ctx, http.StatusOK, SuccessResponse{Success: true})
}

// Status handles GET /api/bookmarks/{videoID}/status.
func (h *BookmarkHandler) Status(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ok, err := h.library.IsBookmarked(ctx, chi.URLParam(r, "videoID"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to check bookmark status")
		return
	}

	writeJSON(w, ctx, http.StatusOK, BookmarkStatusResponse{IsBookmarked: ok})
}

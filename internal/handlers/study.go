package handlers

import (
	"net/http"
	"time"

	"transcript-tutor/internal/contextutil"
	"transcript-tutor/internal/service"
)

// StudyHandler handles HTTP requests for study sessions and study time.
type StudyHandler struct {
	library service.LibraryService
}

// NewStudyHandler creates a new StudyHandler.
func NewStudyHandler(library service.LibraryService) *StudyHandler {
	return &StudyHandler{
		library: library,
	}
}

// StudySessionRequest represents the HTTP request payload for recording a session.
type StudySessionRequest struct {
	// Minutes studied
	Duration int `json:"duration"`
}

// StudySessionResponse is a recorded study session.
type StudySessionResponse struct {
	ID       string    `json:"id"`
	Duration int       `json:"duration"`
	Date     time.Time `json:"date"`
}

// StudyTimeResponse is the total study time in minutes.
type StudyTimeResponse struct {
	TotalTime int `json:"total_time"`
}

// ListSessions handles GET /api/study-sessions.
func (h *StudyHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessions, err := h.library.ListStudySessions(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to fetch study sessions")
		return
	}

	resp := make([]StudySessionResponse, 0, len(sessions))
	for _, s := range sessions {
		resp = append(resp, StudySessionResponse{ID: s.ID, Duration: s.DurationMinutes, Date: s.Date})
	}
	writeJSON(w, ctx, http.StatusOK, resp)
}

// AddSession handles POST /api/study-sessions.
func (h *StudyHandler) AddSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req StudySessionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "invalid study session body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid study session data")
		return
	}

	session, err := h.library.AddStudySession(ctx, req.Duration)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to add study session")
		return
	}

	writeJSON(w, ctx, http.StatusCreated, StudySessionResponse{
		ID:       session.ID,
		Duration: session.DurationMinutes,
		Date:     session.Date,
	})
}

// TotalTime handles GET /api/study-time/total.
func (h *StudyHandler) TotalTime(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	total, err := h.library.TotalStudyTime(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to fetch total study time")
		return
	}

	writeJSON(w, ctx, http.StatusOK, StudyTimeResponse{TotalTime: total})
}

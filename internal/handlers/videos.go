package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"transcript-tutor/internal/contextutil"
	"transcript-tutor/internal/llm"
	"transcript-tutor/internal/service"
)

// VideosHandler handles HTTP requests for previously processed videos.
type VideosHandler struct {
	transcriptService service.TranscriptService
}

// NewVideosHandler creates a new VideosHandler.
func NewVideosHandler(transcriptService service.TranscriptService) *VideosHandler {
	return &VideosHandler{
		transcriptService: transcriptService,
	}
}

// VideoListItem is one entry of the processed video listing.
//
// swagger:model VideoListItem
type VideoListItem struct {
	VideoID          string    `json:"video_id"`
	Title            string    `json:"title"`
	TranscriptLength int       `json:"transcript_length"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// VideoResponse is a processed video with its study material.
//
// swagger:model VideoResponse
type VideoResponse struct {
	VideoID    string         `json:"video_id"`
	Title      string         `json:"title"`
	Transcript string         `json:"transcript"`
	Summary    llm.Summary    `json:"summary"`
	Questions  []llm.Question `json:"questions"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// List handles GET /api/videos.
//
// swagger:route GET /api/videos listVideos
//
// List recently processed videos, newest first.
func (h *VideosHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	videos, err := h.transcriptService.ListVideos(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list videos")
		return
	}

	items := make([]VideoListItem, 0, len(videos))
	for _, v := range videos {
		items = append(items, VideoListItem{
			VideoID:          v.VideoID,
			Title:            v.Title,
			TranscriptLength: v.TranscriptLength,
			UpdatedAt:        v.UpdatedAt,
		})
	}

	writeJSON(w, ctx, http.StatusOK, items)
}

// Get handles GET /api/videos/{videoID}.
//
// swagger:route GET /api/videos/{videoID} getVideo
//
// Get a processed video with its summary and questions.
//
// responses:
//
//	'200':
//	  schema:
//	    "$ref": "#/definitions/VideoResponse"
//	'404':
//	  description: Video has not been processed
func (h *VideosHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	videoID := chi.URLParam(r, "videoID")

	v, err := h.transcriptService.GetVideo(ctx, videoID)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to get video")
		return
	}

	contextutil.LoggerFromContext(ctx).DebugContext(ctx, "video retrieved", "video_id", videoID)

	questions := v.Questions
	if questions == nil {
		questions = []llm.Question{}
	}

	writeJSON(w, ctx, http.StatusOK, VideoResponse{
		VideoID:    v.VideoID,
		Title:      v.Title,
		Transcript: v.Transcript,
		Summary:    v.Summary,
		Questions:  questions,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	})
}

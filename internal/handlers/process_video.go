package handlers

import (
	"net/http"

	"transcript-tutor/internal/contextutil"
	"transcript-tutor/internal/llm"
	"transcript-tutor/internal/service"
)

// ProcessVideoHandler handles HTTP requests for turning a video into study material.
type ProcessVideoHandler struct {
	transcriptService service.TranscriptService
}

// NewProcessVideoHandler creates a new ProcessVideoHandler.
func NewProcessVideoHandler(transcriptService service.TranscriptService) *ProcessVideoHandler {
	return &ProcessVideoHandler{
		transcriptService: transcriptService,
	}
}

// ProcessVideoRequest represents the HTTP request payload for video processing.
//
// swagger:model ProcessVideoRequest
type ProcessVideoRequest struct {
	// A watch, short, embed or legacy YouTube URL, or a bare 11-character video ID
	VideoURL   string `json:"video_url"`
	VideoTitle string `json:"video_title,omitempty"`
	// Regenerate content even if the video was processed before
	Refresh bool `json:"refresh,omitempty"`
}

// ProcessVideoResponse represents the HTTP response payload for video processing.
//
// swagger:model ProcessVideoResponse
type ProcessVideoResponse struct {
	Success          bool           `json:"success"`
	VideoID          string         `json:"video_id"`
	Title            string         `json:"title"`
	Transcript       string         `json:"transcript"`
	Summary          llm.Summary    `json:"summary"`
	Questions        []llm.Question `json:"questions"`
	TranscriptLength int            `json:"transcript_length"`
	Cached           bool           `json:"cached"`
}

// ServeHTTP handles HTTP requests for video processing.
//
// swagger:route POST /api/process_video processVideo
//
// Fetch a video's transcript and generate a summary and quiz questions.
//
// responses:
//
//	'200':
//	  description: Study material generated
//	  schema:
//	    "$ref": "#/definitions/ProcessVideoResponse"
//	'400':
//	  description: Missing or invalid URL, or transcript too short
//	'502':
//	  description: Transcript source or generative service failed
func (h *ProcessVideoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req ProcessVideoRequest
	if err := decodeJSON(w, r, &req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	svcResp, err := h.transcriptService.ProcessVideo(ctx, service.ProcessVideoRequest{
		VideoURL:   req.VideoURL,
		VideoTitle: req.VideoTitle,
		Refresh:    req.Refresh,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to process video")
		return
	}

	questions := svcResp.Questions
	if questions == nil {
		questions = []llm.Question{}
	}

	writeJSON(w, ctx, http.StatusOK, ProcessVideoResponse{
		Success:          true,
		VideoID:          svcResp.VideoID,
		Title:            svcResp.Title,
		Transcript:       svcResp.Transcript,
		Summary:          svcResp.Summary,
		Questions:        questions,
		TranscriptLength: svcResp.TranscriptLength,
		Cached:           svcResp.Cached,
	})
}

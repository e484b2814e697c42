package handlers

import (
	"net/http"

	"transcript-tutor/internal/contextutil"
	"transcript-tutor/internal/search"
	"transcript-tutor/internal/service"
)

// SearchTranscriptHandler handles HTTP requests for keyword search over a transcript.
type SearchTranscriptHandler struct {
	transcriptService service.TranscriptService
}

// NewSearchTranscriptHandler creates a new SearchTranscriptHandler.
func NewSearchTranscriptHandler(transcriptService service.TranscriptService) *SearchTranscriptHandler {
	return &SearchTranscriptHandler{
		transcriptService: transcriptService,
	}
}

// SearchTranscriptRequest represents the HTTP request payload for transcript search.
//
// swagger:model SearchTranscriptRequest
type SearchTranscriptRequest struct {
	Query      string `json:"query"`
	Transcript string `json:"transcript"`
}

// SearchTranscriptResponse represents the HTTP response payload for transcript search.
//
// swagger:model SearchTranscriptResponse
type SearchTranscriptResponse struct {
	Success bool `json:"success"`
	// The lower-cased query
	Query string `json:"query"`
	// At most five matches, highest relevance first
	Results []search.Match `json:"results"`
	// Number of matching sentences before truncation
	TotalMatches int `json:"total_matches"`
}

// ServeHTTP handles HTTP requests for transcript search.
//
// swagger:route POST /api/search_transcript searchTranscript
//
// Find the sentences of a transcript that contain a query.
//
// responses:
//
//	'200':
//	  description: Search completed
//	  schema:
//	    "$ref": "#/definitions/SearchTranscriptResponse"
//	'400':
//	  description: Missing query or transcript
func (h *SearchTranscriptHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req SearchTranscriptRequest
	if err := decodeJSON(w, r, &req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	svcResp, err := h.transcriptService.SearchTranscript(ctx, service.SearchRequest{
		Query:      req.Query,
		Transcript: req.Transcript,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to search transcript")
		return
	}

	results := svcResp.Results
	if results == nil {
		results = []search.Match{}
	}

	writeJSON(w, ctx, http.StatusOK, SearchTranscriptResponse{
		Success:      true,
		Query:        svcResp.Query,
		Results:      results,
		TotalMatches: svcResp.TotalMatches,
	})
}

package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"transcript-tutor/internal/contextutil"
	"transcript-tutor/internal/service"
)

// AskQuestionHandler handles HTTP requests for tutor questions about a transcript.
type AskQuestionHandler struct {
	transcriptService service.TranscriptService
}

// NewAskQuestionHandler creates a new AskQuestionHandler.
func NewAskQuestionHandler(transcriptService service.TranscriptService) *AskQuestionHandler {
	return &AskQuestionHandler{
		transcriptService: transcriptService,
	}
}

// AskQuestionRequest represents the HTTP request payload for a tutor question.
//
// swagger:model AskQuestionRequest
type AskQuestionRequest struct {
	Question   string `json:"question"`
	Transcript string `json:"transcript"`
	VideoTitle string `json:"video_title,omitempty"`
}

// AskQuestionResponse represents the HTTP response payload for a tutor question.
//
// swagger:model AskQuestionResponse
type AskQuestionResponse struct {
	Success  bool   `json:"success"`
	Question string `json:"question"`
	// Answer in Markdown
	Answer string `json:"answer"`
	// Answer rendered to HTML
	AnswerHTML string `json:"answer_html"`
}

// ServeHTTP handles HTTP requests for tutor questions.
//
// swagger:route POST /api/ask_question askQuestion
//
// Answer a question about a transcript. With ?stream=true the answer is sent as Server-Sent Events.
//
// responses:
//
//	'200':
//	  description: Answer generated
//	  schema:
//	    "$ref": "#/definitions/AskQuestionResponse"
//	'400':
//	  description: Missing question or transcript
//	'502':
//	  description: Generative service failed
func (h *AskQuestionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req AskQuestionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	svcReq := service.AskQuestionRequest{
		Question:   req.Question,
		Transcript: req.Transcript,
		VideoTitle: req.VideoTitle,
	}

	if r.URL.Query().Get("stream") == "true" {
		h.handleStreamingAnswer(w, ctx, svcReq)
		return
	}

	svcResp, err := h.transcriptService.AskQuestion(ctx, svcReq)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to answer question")
		return
	}

	writeJSON(w, ctx, http.StatusOK, AskQuestionResponse{
		Success:    true,
		Question:   svcResp.Question,
		Answer:     svcResp.Answer,
		AnswerHTML: svcResp.AnswerHTML,
	})
}

// handleStreamingAnswer streams the answer using Server-Sent Events.
func (h *AskQuestionHandler) handleStreamingAnswer(w http.ResponseWriter, ctx context.Context, req service.AskQuestionRequest) {
	logger := contextutil.LoggerFromContext(ctx)

	flusher, ok := w.(http.Flusher)
	if !ok {
		logger.ErrorContext(ctx, "streaming not supported by response writer")
		writeError(w, http.StatusInternalServerError, "Streaming not supported")
		return
	}

	// Headers are committed with the first chunk, so validation errors that
	// happen before it can still be reported with a proper status code.
	started := false
	start := func() {
		if started {
			return
		}
		started = true
		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
	}

	err := h.transcriptService.StreamAnswer(ctx, req, func(chunk string) error {
		start()
		if err := writeEvent(w, chunk); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	})

	if err != nil && !started {
		handleServiceError(w, ctx, err, "Failed to answer question")
		return
	}

	start()
	if err != nil {
		logger.ErrorContext(ctx, "error streaming answer", "error", err)
		payload, _ := json.Marshal(ErrorResponse{Error: service.ExternalCause(err)})
		_ = writeEvent(w, string(payload))
		flusher.Flush()
		return
	}

	_ = writeEvent(w, "[DONE]")
	flusher.Flush()
}

// writeEvent writes data as a single SSE event, one data line per line of input.
func writeEvent(w io.Writer, data string) error {
	var b strings.Builder
	for _, line := range strings.Split(data, "\n") {
		b.WriteString("data: ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	_, err := fmt.Fprint(w, b.String())
	return err
}

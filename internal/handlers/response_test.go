package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"transcript-tutor/internal/service"
	"transcript-tutor/internal/video"
)

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "validation error",
			err:        &service.ValidationError{Field: "transcript", Message: "Transcript too short or unavailable"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Transcript too short or unavailable",
		},
		{
			name:       "invalid video url",
			err:        fmt.Errorf("%w: %w", service.ErrInvalidInput, video.ErrInvalidID),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid YouTube URL",
		},
		{
			name:       "invalid input",
			err:        service.ErrInvalidInput,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid input",
		},
		{
			name:       "not found",
			err:        fmt.Errorf("video x: %w", service.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantMsg:    "Resource not found",
		},
		{
			name:       "conflict",
			err:        service.ErrConflict,
			wantStatus: http.StatusConflict,
			wantMsg:    "Resource already exists",
		},
		{
			name:       "external service surfaces cause",
			err:        fmt.Errorf("%w: %w", service.ErrExternalService, errors.New("transcript unavailable")),
			wantStatus: http.StatusBadGateway,
			wantMsg:    "transcript unavailable",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "default message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handleServiceError(w, context.Background(), tt.err, "default message")

			if w.Code != tt.wantStatus {
				t.Errorf("handleServiceError() status = %v, want %v", w.Code, tt.wantStatus)
			}

			var resp ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("handleServiceError() invalid JSON: %v", err)
			}
			if resp.Error != tt.wantMsg {
				t.Errorf("handleServiceError() error = %q, want %q", resp.Error, tt.wantMsg)
			}
		})
	}
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	writeError(w, http.StatusBadRequest, "test error")

	if w.Code != http.StatusBadRequest {
		t.Errorf("writeError() status = %v, want %v", w.Code, http.StatusBadRequest)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("writeError() Content-Type = %q", ct)
	}

	var resp ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("writeError() invalid JSON: %v", err)
	}
	if resp.Error != "test error" {
		t.Errorf("writeError() error = %v, want test error", resp.Error)
	}
}

func TestWriteEvent(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{name: "single line", data: "Hello", want: "data: Hello\n\n"},
		{name: "multi line", data: "a\nb", want: "data: a\ndata: b\n\n"},
		{name: "done marker", data: "[DONE]", want: "data: [DONE]\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := writeEvent(&buf, tt.data); err != nil {
				t.Fatalf("writeEvent() error = %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("writeEvent() = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

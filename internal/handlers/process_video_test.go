package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"transcript-tutor/internal/llm"
	"transcript-tutor/internal/service"
	"transcript-tutor/internal/service/mocks"

	"go.uber.org/mock/gomock"
)

func TestProcessVideoHandler_ServeHTTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		method        string
		body          interface{}
		mockSetup     func(*mocks.MockTranscriptService)
		wantStatus    int
		checkResponse func(*httptest.ResponseRecorder) bool
	}{
		{
			name:   "successful POST request",
			method: http.MethodPost,
			body: ProcessVideoRequest{
				VideoURL:   "https://youtu.be/dQw4w9WgXcQ",
				VideoTitle: "Go",
			},
			mockSetup: func(m *mocks.MockTranscriptService) {
				m.EXPECT().
					ProcessVideo(gomock.Any(), service.ProcessVideoRequest{VideoURL: "https://youtu.be/dQw4w9WgXcQ", VideoTitle: "Go"}).
					Return(service.ProcessVideoResponse{
						VideoID:          "dQw4w9WgXcQ",
						Title:            "Go",
						Transcript:       "Go is fun.",
						Summary:          llm.Summary{MainPoints: []string{"Go"}},
						Questions:        []llm.Question{{Question: "Q?", Options: []string{"a", "b"}}},
						TranscriptLength: 10,
					}, nil)
			},
			wantStatus: http.StatusOK,
			checkResponse: func(w *httptest.ResponseRecorder) bool {
				var resp ProcessVideoResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					return false
				}
				return resp.Success && resp.VideoID == "dQw4w9WgXcQ" && resp.TranscriptLength == 10 &&
					len(resp.Questions) == 1 && !resp.Cached
			},
		},
		{
			name:   "questions never null",
			method: http.MethodPost,
			body:   ProcessVideoRequest{VideoURL: "dQw4w9WgXcQ"},
			mockSetup: func(m *mocks.MockTranscriptService) {
				m.EXPECT().
					ProcessVideo(gomock.Any(), gomock.Any()).
					Return(service.ProcessVideoResponse{VideoID: "dQw4w9WgXcQ", Cached: true}, nil)
			},
			wantStatus: http.StatusOK,
			checkResponse: func(w *httptest.ResponseRecorder) bool {
				return bytes.Contains(w.Body.Bytes(), []byte(`"questions":[]`)) &&
					bytes.Contains(w.Body.Bytes(), []byte(`"cached":true`))
			},
		},
		{
			name:       "method not allowed",
			method:     http.MethodGet,
			mockSetup:  func(m *mocks.MockTranscriptService) {},
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "invalid JSON body",
			method:     http.MethodPost,
			body:       "invalid json",
			mockSetup:  func(m *mocks.MockTranscriptService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "missing url",
			method: http.MethodPost,
			body:   ProcessVideoRequest{},
			mockSetup: func(m *mocks.MockTranscriptService) {
				m.EXPECT().
					ProcessVideo(gomock.Any(), service.ProcessVideoRequest{}).
					Return(service.ProcessVideoResponse{}, &service.ValidationError{Field: "video_url", Message: "Video URL is required"})
			},
			wantStatus: http.StatusBadRequest,
			checkResponse: func(w *httptest.ResponseRecorder) bool {
				var resp ErrorResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					return false
				}
				return resp.Error == "Video URL is required"
			},
		},
		{
			name:   "transcript source failure",
			method: http.MethodPost,
			body:   ProcessVideoRequest{VideoURL: "dQw4w9WgXcQ"},
			mockSetup: func(m *mocks.MockTranscriptService) {
				m.EXPECT().
					ProcessVideo(gomock.Any(), gomock.Any()).
					Return(service.ProcessVideoResponse{}, fmt.Errorf("%w: %w", service.ErrExternalService, errors.New("no captions")))
			},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:   "unexpected failure",
			method: http.MethodPost,
			body:   ProcessVideoRequest{VideoURL: "dQw4w9WgXcQ"},
			mockSetup: func(m *mocks.MockTranscriptService) {
				m.EXPECT().
					ProcessVideo(gomock.Any(), gomock.Any()).
					Return(service.ProcessVideoResponse{}, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := mocks.NewMockTranscriptService(ctrl)
			tt.mockSetup(mockService)

			handler := NewProcessVideoHandler(mockService)

			var bodyBytes []byte
			if s, ok := tt.body.(string); ok {
				bodyBytes = []byte(s)
			} else if tt.body != nil {
				bodyBytes, _ = json.Marshal(tt.body)
			}

			req := httptest.NewRequest(tt.method, "/api/process_video", bytes.NewBuffer(bodyBytes))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("ServeHTTP() status = %v, want %v", w.Code, tt.wantStatus)
			}

			if tt.checkResponse != nil && !tt.checkResponse(w) {
				t.Errorf("ServeHTTP() response validation failed: %s", w.Body.String())
			}
		})
	}
}

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"transcript-tutor/internal/search"
	"transcript-tutor/internal/service"
	"transcript-tutor/internal/service/mocks"

	"go.uber.org/mock/gomock"
)

func TestSearchTranscriptHandler_ServeHTTP(t *testing.T) {
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
			name:   "matches returned",
			method: http.MethodPost,
			body:   SearchTranscriptRequest{Query: "Cats", Transcript: "Cats are great. Dogs are great too."},
			mockSetup: func(m *mocks.MockTranscriptService) {
				m.EXPECT().
					SearchTranscript(gomock.Any(), service.SearchRequest{Query: "Cats", Transcript: "Cats are great. Dogs are great too."}).
					Return(service.SearchResponse{
						Query:        "cats",
						Results:      []search.Match{{Text: "Cats are great.  Dogs are great too", RelevanceScore: 1}},
						TotalMatches: 1,
					}, nil)
			},
			wantStatus: http.StatusOK,
			checkResponse: func(w *httptest.ResponseRecorder) bool {
				var resp SearchTranscriptResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					return false
				}
				return resp.Success && resp.Query == "cats" && resp.TotalMatches == 1 &&
					len(resp.Results) == 1 && resp.Results[0].RelevanceScore == 1
			},
		},
		{
			name:   "no matches yields empty array",
			method: http.MethodPost,
			body:   SearchTranscriptRequest{Query: "zebra", Transcript: "Cats are great."},
			mockSetup: func(m *mocks.MockTranscriptService) {
				m.EXPECT().
					SearchTranscript(gomock.Any(), gomock.Any()).
					Return(service.SearchResponse{Query: "zebra"}, nil)
			},
			wantStatus: http.StatusOK,
			checkResponse: func(w *httptest.ResponseRecorder) bool {
				return bytes.Contains(w.Body.Bytes(), []byte(`"results":[]`)) &&
					bytes.Contains(w.Body.Bytes(), []byte(`"total_matches":0`))
			},
		},
		{
			name:   "empty query",
			method: http.MethodPost,
			body:   SearchTranscriptRequest{Transcript: "Cats are great."},
			mockSetup: func(m *mocks.MockTranscriptService) {
				m.EXPECT().
					SearchTranscript(gomock.Any(), gomock.Any()).
					Return(service.SearchResponse{}, &service.ValidationError{Field: "query", Message: "Query is required"})
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "method not allowed",
			method:     http.MethodPut,
			mockSetup:  func(m *mocks.MockTranscriptService) {},
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "invalid JSON body",
			method:     http.MethodPost,
			body:       "not json",
			mockSetup:  func(m *mocks.MockTranscriptService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := mocks.NewMockTranscriptService(ctrl)
			tt.mockSetup(mockService)

			handler := NewSearchTranscriptHandler(mockService)

			var bodyBytes []byte
			if s, ok := tt.body.(string); ok {
				bodyBytes = []byte(s)
			} else if tt.body != nil {
				bodyBytes, _ = json.Marshal(tt.body)
			}

			req := httptest.NewRequest(tt.method, "/api/search_transcript", bytes.NewBuffer(bodyBytes))
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

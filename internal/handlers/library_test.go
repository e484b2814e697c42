package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"transcript-tutor/internal/llm"
	"transcript-tutor/internal/service"
	"transcript-tutor/internal/service/mocks"
)

// newLibraryRouter mounts the library and video handlers on their production paths.
func newLibraryRouter(transcripts service.TranscriptService, library service.LibraryService) http.Handler {
	r := chi.NewRouter()

	videos := NewVideosHandler(transcripts)
	r.Get("/api/videos", videos.List)
	r.Get("/api/videos/{videoID}", videos.Get)

	bookmarks := NewBookmarkHandler(library)
	r.Get("/api/bookmarks", bookmarks.List)
	r.Post("/api/bookmarks", bookmarks.Add)
	r.Delete("/api/bookmarks/{videoID}", bookmarks.Remove)
	r.Get("/api/bookmarks/{videoID}/status", bookmarks.Status)

	study := NewStudyHandler(library)
	r.Get("/api/study-sessions", study.ListSessions)
	r.Post("/api/study-sessions", study.AddSession)
	r.Get("/api/study-time/total", study.TotalTime)

	return r
}

func TestLibraryRoutes(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		mockSetup  func(ts *mocks.MockTranscriptService, ls *mocks.MockLibraryService)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "list videos",
			method: http.MethodGet,
			path:   "/api/videos",
			mockSetup: func(ts *mocks.MockTranscriptService, ls *mocks.MockLibraryService) {
				ts.EXPECT().ListVideos(gomock.Any()).Return([]service.VideoSummary{
					{VideoID: "dQw4w9WgXcQ", Title: "Go", TranscriptLength: 120, UpdatedAt: created},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"transcript_length":120`,
		},
		{
			name:   "get video",
			method: http.MethodGet,
			path:   "/api/videos/dQw4w9WgXcQ",
			mockSetup: func(ts *mocks.MockTranscriptService, ls *mocks.MockLibraryService) {
				ts.EXPECT().GetVideo(gomock.Any(), "dQw4w9WgXcQ").Return(service.Video{
					VideoID: "dQw4w9WgXcQ",
					Summary: llm.Summary{MainPoints: []string{"Channels"}},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"main_points":["Channels"]`,
		},
		{
			name:   "get unknown video",
			method: http.MethodGet,
			path:   "/api/videos/missing",
			mockSetup: func(ts *mocks.MockTranscriptService, ls *mocks.MockLibraryService) {
				ts.EXPECT().GetVideo(gomock.Any(), "missing").Return(service.Video{}, fmt.Errorf("video missing: %w", service.ErrNotFound))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "list bookmarks",
			method: http.MethodGet,
			path:   "/api/bookmarks",
			mockSetup: func(ts *mocks.MockTranscriptService, ls *mocks.MockLibraryService) {
				ls.EXPECT().ListBookmarks(gomock.Any()).Return(nil, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:   "add bookmark",
			method: http.MethodPost,
			path:   "/api/bookmarks",
			body:   `{"video_id":"dQw4w9WgXcQ","title":"Go","channel":"Gophers"}`,
			mockSetup: func(ts *mocks.MockTranscriptService, ls *mocks.MockLibraryService) {
				ls.EXPECT().
					AddBookmark(gomock.Any(), service.Bookmark{VideoID: "dQw4w9WgXcQ", Title: "Go", Channel: "Gophers"}).
					Return(service.Bookmark{ID: "b1", VideoID: "dQw4w9WgXcQ", Title: "Go", Channel: "Gophers", CreatedAt: created}, nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"id":"b1"`,
		},
		{
			name:   "add duplicate bookmark",
			method: http.MethodPost,
			path:   "/api/bookmarks",
			body:   `{"video_id":"dQw4w9WgXcQ","title":"Go"}`,
			mockSetup: func(ts *mocks.MockTranscriptService, ls *mocks.MockLibraryService) {
				ls.EXPECT().AddBookmark(gomock.Any(), gomock.Any()).Return(service.Bookmark{}, service.ErrConflict)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "add bookmark invalid body",
			method:     http.MethodPost,
			path:       "/api/bookmarks",
			body:       `[`,
			mockSetup:  func(ts *mocks.MockTranscriptService, ls *mocks.MockLibraryService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"error":"Invalid bookmark data"`,
		},
		{
			name:   "remove bookmark",
			method: http.MethodDelete,
			path:   "/api/bookmarks/dQw4w9WgXcQ",
			mockSetup: func(ts *mocks.MockTranscriptService, ls *mocks.MockLibraryService) {
				ls.EXPECT().RemoveBookmark(gomock.Any(), "dQw4w9WgXcQ").Return(nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"success":true}`,
		},
		{
			name:   "bookmark status",
			method: http.MethodGet,
			path:   "/api/bookmarks/dQw4w9WgXcQ/status",
			mockSetup: func(ts *mocks.MockTranscriptService, ls *mocks.MockLibraryService) {
				ls.EXPECT().IsBookmarked(gomock.Any(), "dQw4w9WgXcQ").Return(true, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"is_bookmarked":true}`,
		},
		{
			name:   "bookmark status failure",
			method: http.MethodGet,
			path:   "/api/bookmarks/dQw4w9WgXcQ/status",
			mockSetup: func(ts *mocks.MockTranscriptService, ls *mocks.MockLibraryService) {
				ls.EXPECT().IsBookmarked(gomock.Any(), "dQw4w9WgXcQ").Return(false, errors.New("database is locked"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"error":"Failed to check bookmark status"`,
		},
		{
			name:   "list study sessions",
			method: http.MethodGet,
			path:   "/api/study-sessions",
			mockSetup: func(ts *mocks.MockTranscriptService, ls *mocks.MockLibraryService) {
				ls.EXPECT().ListStudySessions(gomock.Any()).Return([]service.StudySession{
					{ID: "s1", DurationMinutes: 25, Date: created},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"duration":25`,
		},
		{
			name:   "add study session",
			method: http.MethodPost,
			path:   "/api/study-sessions",
			body:   `{"duration":45}`,
			mockSetup: func(ts *mocks.MockTranscriptService, ls *mocks.MockLibraryService) {
				ls.EXPECT().AddStudySession(gomock.Any(), 45).Return(service.StudySession{ID: "s2", DurationMinutes: 45, Date: created}, nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"id":"s2"`,
		},
		{
			name:   "add study session with invalid duration",
			method: http.MethodPost,
			path:   "/api/study-sessions",
			body:   `{"duration":0}`,
			mockSetup: func(ts *mocks.MockTranscriptService, ls *mocks.MockLibraryService) {
				ls.EXPECT().AddStudySession(gomock.Any(), 0).
					Return(service.StudySession{}, &service.ValidationError{Field: "duration", Message: "Duration must be a positive number of minutes"})
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "total study time",
			method: http.MethodGet,
			path:   "/api/study-time/total",
			mockSetup: func(ts *mocks.MockTranscriptService, ls *mocks.MockLibraryService) {
				ls.EXPECT().TotalStudyTime(gomock.Any()).Return(70, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"total_time":70}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			ts := mocks.NewMockTranscriptService(ctrl)
			ls := mocks.NewMockLibraryService(ctrl)
			tt.mockSetup(ts, ls)

			router := newLibraryRouter(ts, ls)

			req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("%s %s status = %v, want %v (body %s)", tt.method, tt.path, w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantBody != "" && !bytes.Contains(w.Body.Bytes(), []byte(tt.wantBody)) {
				t.Errorf("%s %s body = %s, want it to contain %s", tt.method, tt.path, w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestToBookmarkResponse(t *testing.T) {
	resp := toBookmarkResponse(service.Bookmark{ID: "b1", VideoID: "v", Thumbnail: "thumb"})

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if !bytes.Contains(data, []byte(`"thumbnail":"thumb"`)) {
		t.Errorf("toBookmarkResponse() JSON = %s", data)
	}
}

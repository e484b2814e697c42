package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_content_generator.go -package=mocks transcript-tutor/internal/service ContentGenerator
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_transcript_fetcher.go -package=mocks transcript-tutor/internal/service TranscriptFetcher
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_video_store.go -package=mocks transcript-tutor/internal/service VideoStore
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_transcript_service.go -package=mocks -mock_names=TranscriptService=MockTranscriptService transcript-tutor/internal/service TranscriptService

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"transcript-tutor/internal/contextutil"
	"transcript-tutor/internal/llm"
	"transcript-tutor/internal/markdown"
	"transcript-tutor/internal/search"
	"transcript-tutor/internal/storage"
	"transcript-tutor/internal/video"
)

const (
	// DefaultMinTranscriptLength is the shortest transcript, in bytes, worth generating content for.
	DefaultMinTranscriptLength = 50
	defaultVideoTitle          = "Educational Video"
	recentVideosLimit          = 20
)

// ContentGenerator produces educational content and answers from a transcript.
// This interface is defined from the service layer's perspective (consumer-first).
type ContentGenerator interface {
	// GenerateEducationalContent returns a summary and quiz questions for a transcript.
	GenerateEducationalContent(ctx context.Context, transcript, title string) (llm.EducationalContent, error)
	// AnswerQuestion answers a question about a transcript.
	AnswerQuestion(ctx context.Context, question, transcript, title string) (string, error)
	// StreamAnswer answers a question about a transcript and streams the reply via callback.
	StreamAnswer(ctx context.Context, question, transcript, title string, callback func(chunk string) error) error
}

// TranscriptFetcher retrieves the transcript of a video.
type TranscriptFetcher interface {
	Fetch(ctx context.Context, videoID string) (string, error)
}

// VideoStore persists processed videos.
type VideoStore interface {
	Upsert(ctx context.Context, video *storage.VideoRecord) error
	GetByVideoID(ctx context.Context, videoID string) (*storage.VideoRecord, error)
	ListRecent(ctx context.Context, limit int) ([]storage.VideoRecord, error)
}

// ProcessVideoRequest asks for a video to be transcribed and turned into study material.
type ProcessVideoRequest struct {
	VideoURL   string
	VideoTitle string
	// Refresh skips the stored result and regenerates content.
	Refresh bool
}

// ProcessVideoResponse is the study material produced for a video.
type ProcessVideoResponse struct {
	VideoID          string
	Title            string
	Transcript       string
	Summary          llm.Summary
	Questions        []llm.Question
	TranscriptLength int
	// Cached reports whether the result came from storage instead of the generator.
	Cached bool
}

// AskQuestionRequest is a follow-up question about a transcript.
type AskQuestionRequest struct {
	Question   string
	Transcript string
	VideoTitle string
}

// AskQuestionResponse is the tutor's answer.
type AskQuestionResponse struct {
	Question   string
	Answer     string
	AnswerHTML string
}

// SearchRequest is a keyword search over a transcript.
type SearchRequest struct {
	Query      string
	Transcript string
}

// SearchResponse holds the ranked matches of a transcript search.
type SearchResponse struct {
	// Query is the lower-cased query.
	Query        string
	Results      []search.Match
	TotalMatches int
}

// Video is a previously processed video.
type Video struct {
	VideoID    string
	Title      string
	Transcript string
	Summary    llm.Summary
	Questions  []llm.Question
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// VideoSummary is a short listing entry for a processed video.
type VideoSummary struct {
	VideoID          string
	Title            string
	TranscriptLength int
	UpdatedAt        time.Time
}

// TranscriptService turns video transcripts into study material.
type TranscriptService interface {
	// ProcessVideo fetches a transcript and generates a summary and quiz for it.
	ProcessVideo(ctx context.Context, req ProcessVideoRequest) (ProcessVideoResponse, error)
	// AskQuestion answers a question about a transcript.
	AskQuestion(ctx context.Context, req AskQuestionRequest) (AskQuestionResponse, error)
	// StreamAnswer answers a question about a transcript and streams the reply via callback.
	StreamAnswer(ctx context.Context, req AskQuestionRequest, callback func(chunk string) error) error
	// SearchTranscript finds the sentences of a transcript containing a query.
	SearchTranscript(ctx context.Context, req SearchRequest) (SearchResponse, error)
	// GetVideo returns a previously processed video.
	GetVideo(ctx context.Context, videoID string) (Video, error)
	// ListVideos returns recently processed videos, newest first.
	ListVideos(ctx context.Context) ([]VideoSummary, error)
}

// TranscriptServiceConfig holds the tunables of TranscriptService.
type TranscriptServiceConfig struct {
	// MinTranscriptLength rejects transcripts shorter than this many bytes.
	// If 0, DefaultMinTranscriptLength is used.
	MinTranscriptLength int
	// SearchLimit caps the number of search results returned.
	// If 0, search.MaxResults is used.
	SearchLimit int
}

// transcriptService implements TranscriptService.
type transcriptService struct {
	fetcher   TranscriptFetcher
	generator ContentGenerator
	store     VideoStore
	engine    *search.Engine
	minLength int
}

// NewTranscriptService creates a new TranscriptService.
func NewTranscriptService(fetcher TranscriptFetcher, generator ContentGenerator, store VideoStore, cfg TranscriptServiceConfig) TranscriptService {
	minLength := cfg.MinTranscriptLength
	if minLength <= 0 {
		minLength = DefaultMinTranscriptLength
	}
	return &transcriptService{
		fetcher:   fetcher,
		generator: generator,
		store:     store,
		engine:    search.NewEngine(cfg.SearchLimit),
		minLength: minLength,
	}
}

// ProcessVideo fetches a transcript and generates a summary and quiz for it.
func (s *transcriptService) ProcessVideo(ctx context.Context, req ProcessVideoRequest) (ProcessVideoResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if strings.TrimSpace(req.VideoURL) == "" {
		logger.WarnContext(ctx, "empty video url in process request")
		return ProcessVideoResponse{}, &ValidationError{
			Field:   "video_url",
			Message: "Video URL is required",
		}
	}

	videoID, err := video.ExtractID(strings.TrimSpace(req.VideoURL))
	if err != nil {
		logger.WarnContext(ctx, "invalid video reference", "video_url", req.VideoURL)
		return ProcessVideoResponse{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	logger = logger.With("video_id", videoID)

	if !req.Refresh {
		if resp, ok := s.cached(ctx, videoID); ok {
			logger.InfoContext(ctx, "serving stored video content")
			return resp, nil
		}
	}

	title := req.VideoTitle
	if title == "" {
		title = defaultVideoTitle
	}

	logger.InfoContext(ctx, "fetching transcript")
	text, err := s.fetcher.Fetch(ctx, videoID)
	if err != nil {
		logger.ErrorContext(ctx, "failed to fetch transcript", "error", err)
		return ProcessVideoResponse{}, fmt.Errorf("%w: %w", ErrExternalService, err)
	}

	if len(text) < s.minLength {
		logger.WarnContext(ctx, "transcript too short", "transcript_length", len(text), "min_length", s.minLength)
		return ProcessVideoResponse{}, &ValidationError{
			Field:   "transcript",
			Message: "Transcript too short or unavailable",
		}
	}

	logger.InfoContext(ctx, "generating educational content", "transcript_length", len(text))
	content, err := s.generator.GenerateEducationalContent(ctx, text, title)
	if err != nil {
		logger.ErrorContext(ctx, "failed to generate educational content", "error", err)
		return ProcessVideoResponse{}, fmt.Errorf("%w: %w", ErrExternalService, err)
	}

	s.persist(ctx, videoID, title, text, content)

	logger.InfoContext(ctx, "video processed successfully", "questions", len(content.Questions))
	return ProcessVideoResponse{
		VideoID:          videoID,
		Title:            title,
		Transcript:       text,
		Summary:          content.Summary,
		Questions:        content.Questions,
		TranscriptLength: len(text),
	}, nil
}

// cached returns the stored result for a video, if any usable one exists.
func (s *transcriptService) cached(ctx context.Context, videoID string) (ProcessVideoResponse, bool) {
	logger := contextutil.LoggerFromContext(ctx)

	record, err := s.store.GetByVideoID(ctx, videoID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.WarnContext(ctx, "failed to read stored video", "video_id", videoID, "error", err)
		}
		return ProcessVideoResponse{}, false
	}

	v, err := decodeVideo(record)
	if err != nil {
		logger.WarnContext(ctx, "discarding unreadable stored video", "video_id", videoID, "error", err)
		return ProcessVideoResponse{}, false
	}

	return ProcessVideoResponse{
		VideoID:          v.VideoID,
		Title:            v.Title,
		Transcript:       v.Transcript,
		Summary:          v.Summary,
		Questions:        v.Questions,
		TranscriptLength: len(v.Transcript),
		Cached:           true,
	}, true
}

// persist stores generated content. Failures are logged and do not fail the request.
func (s *transcriptService) persist(ctx context.Context, videoID, title, text string, content llm.EducationalContent) {
	logger := contextutil.LoggerFromContext(ctx)

	summaryJSON, err := json.Marshal(content.Summary)
	if err != nil {
		logger.ErrorContext(ctx, "failed to encode summary", "video_id", videoID, "error", err)
		return
	}
	questionsJSON, err := json.Marshal(content.Questions)
	if err != nil {
		logger.ErrorContext(ctx, "failed to encode questions", "video_id", videoID, "error", err)
		return
	}

	record := &storage.VideoRecord{
		VideoID:       videoID,
		Title:         title,
		Transcript:    text,
		SummaryJSON:   string(summaryJSON),
		QuestionsJSON: string(questionsJSON),
	}
	if err := s.store.Upsert(ctx, record); err != nil {
		logger.ErrorContext(ctx, "failed to store video", "video_id", videoID, "error", err)
	}
}

// AskQuestion answers a question about a transcript.
func (s *transcriptService) AskQuestion(ctx context.Context, req AskQuestionRequest) (AskQuestionResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := validateQuestion(req); err != nil {
		logger.WarnContext(ctx, "invalid question request", "error", err)
		return AskQuestionResponse{}, err
	}

	answer, err := s.generator.AnswerQuestion(ctx, req.Question, req.Transcript, titleOrDefault(req.VideoTitle))
	if err != nil {
		logger.ErrorContext(ctx, "failed to answer question", "error", err)
		return AskQuestionResponse{}, fmt.Errorf("%w: %w", ErrExternalService, err)
	}

	answerHTML, err := markdown.ToHTML(answer)
	if err != nil {
		logger.WarnContext(ctx, "failed to render answer", "error", err)
	}

	logger.InfoContext(ctx, "question answered successfully", "question_length", len(req.Question), "answer_length", len(answer))
	return AskQuestionResponse{
		Question:   req.Question,
		Answer:     answer,
		AnswerHTML: answerHTML,
	}, nil
}

// StreamAnswer answers a question about a transcript and streams the reply via callback.
func (s *transcriptService) StreamAnswer(ctx context.Context, req AskQuestionRequest, callback func(chunk string) error) error {
	logger := contextutil.LoggerFromContext(ctx)

	if err := validateQuestion(req); err != nil {
		logger.WarnContext(ctx, "invalid streaming question request", "error", err)
		return err
	}

	err := s.generator.StreamAnswer(ctx, req.Question, req.Transcript, titleOrDefault(req.VideoTitle), callback)
	if err != nil {
		logger.ErrorContext(ctx, "failed to stream answer", "error", err)
		return fmt.Errorf("%w: %w", ErrExternalService, err)
	}

	logger.InfoContext(ctx, "streaming answer completed", "question_length", len(req.Question))
	return nil
}

// SearchTranscript finds the sentences of a transcript containing a query.
func (s *transcriptService) SearchTranscript(ctx context.Context, req SearchRequest) (SearchResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	// Whitespace is a valid substring to search for; only an absent query is rejected.
	if req.Query == "" {
		logger.WarnContext(ctx, "empty search query")
		return SearchResponse{}, &ValidationError{
			Field:   "query",
			Message: "Query is required",
		}
	}
	if req.Transcript == "" {
		logger.WarnContext(ctx, "empty transcript in search request")
		return SearchResponse{}, &ValidationError{
			Field:   "transcript",
			Message: "Transcript is required",
		}
	}

	result := s.engine.Search(req.Transcript, req.Query)

	logger.DebugContext(ctx, "transcript searched", "query", req.Query, "total_matches", result.TotalMatches)
	return SearchResponse{
		Query:        strings.ToLower(req.Query),
		Results:      result.Results,
		TotalMatches: result.TotalMatches,
	}, nil
}

// GetVideo returns a previously processed video.
func (s *transcriptService) GetVideo(ctx context.Context, videoID string) (Video, error) {
	if videoID == "" {
		return Video{}, &ValidationError{Field: "video_id", Message: "cannot be empty"}
	}

	record, err := s.store.GetByVideoID(ctx, videoID)
	if errors.Is(err, storage.ErrNotFound) {
		return Video{}, fmt.Errorf("video %s: %w", videoID, ErrNotFound)
	}
	if err != nil {
		return Video{}, WrapError(err, "failed to get video")
	}

	v, err := decodeVideo(record)
	if err != nil {
		return Video{}, WrapError(err, "failed to decode stored video")
	}
	return v, nil
}

// ListVideos returns recently processed videos, newest first.
func (s *transcriptService) ListVideos(ctx context.Context) ([]VideoSummary, error) {
	records, err := s.store.ListRecent(ctx, recentVideosLimit)
	if err != nil {
		return nil, WrapError(err, "failed to list videos")
	}

	videos := make([]VideoSummary, 0, len(records))
	for _, r := range records {
		videos = append(videos, VideoSummary{
			VideoID:          r.VideoID,
			Title:            r.Title,
			TranscriptLength: len(r.Transcript),
			UpdatedAt:        r.UpdatedAt,
		})
	}
	return videos, nil
}

func validateQuestion(req AskQuestionRequest) error {
	if strings.TrimSpace(req.Question) == "" {
		return &ValidationError{Field: "question", Message: "Question is required"}
	}
	if strings.TrimSpace(req.Transcript) == "" {
		return &ValidationError{Field: "transcript", Message: "Transcript is required"}
	}
	return nil
}

func titleOrDefault(title string) string {
	if title == "" {
		return defaultVideoTitle
	}
	return title
}

func decodeVideo(record *storage.VideoRecord) (Video, error) {
	v := Video{
		VideoID:    record.VideoID,
		Title:      record.Title,
		Transcript: record.Transcript,
		CreatedAt:  record.CreatedAt,
		UpdatedAt:  record.UpdatedAt,
	}
	if err := json.Unmarshal([]byte(record.SummaryJSON), &v.Summary); err != nil {
		return Video{}, fmt.Errorf("summary: %w", err)
	}
	if err := json.Unmarshal([]byte(record.QuestionsJSON), &v.Questions); err != nil {
		return Video{}, fmt.Errorf("questions: %w", err)
	}
	return v, nil
}

package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"transcript-tutor/internal/config"
	"transcript-tutor/internal/http"
	"transcript-tutor/internal/llm"
	"transcript-tutor/internal/service"
	"transcript-tutor/internal/storage"
	"transcript-tutor/internal/transcript"
)

//go:generate swagger generate spec -o swagger.json

// General API information
//
// This API turns YouTube video transcripts into study material: a structured
// summary, quiz questions, tutor answers and keyword search.
//
// swagger:meta
//
// ---
// swagger: '2.0'
// info:
//   title: Transcript Tutor API
//   description: |
//     Fetches a video's transcript, generates an educational summary and quiz through an
//     OpenAI-compatible chat completions service, answers follow-up questions and searches
//     transcripts by keyword. Bookmarks and study time are stored locally.
//   version: 1.0.0
// schemes:
//   - http
//   - https
// consumes:
//   - application/json
// produces:
//   - application/json

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	videoRepo := storage.NewVideoRepo(db)
	bookmarkRepo := storage.NewBookmarkRepo(db)
	studySessionRepo := storage.NewStudySessionRepo(db)
	noteRepo := storage.NewNoteRepo(db)
	flashcardRepo := storage.NewFlashcardRepo(db)
	taskRepo := storage.NewTaskRepo(db)
	scheduleRepo := storage.NewScheduleRepo(db)

	// Outbound clients
	fetcher := transcript.NewYouTubeFetcher(transcript.Options{
		BaseURL:   cfg.TranscriptBaseURL,
		Languages: cfg.TranscriptLanguages,
		Timeout:   cfg.TranscriptTimeout,
		Limiter:   rate.NewLimiter(rate.Limit(cfg.TranscriptRequestsPerSecond), 1),
	})

	llmClient := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel,
		llm.WithMaxTokens(cfg.LLMSummaryMaxTokens, cfg.LLMAnswerMaxTokens),
		llm.WithTemperature(cfg.LLMTemperature),
		llm.WithLimiter(rate.NewLimiter(rate.Limit(cfg.LLMRequestsPerSecond), 1)),
		llm.WithTimeout(cfg.LLMTimeout),
	)
	slog.Debug("LLM configuration", "base_url", cfg.LLMBaseURL, "model", cfg.LLMModel)

	transcriptService := service.NewTranscriptService(fetcher, llmClient, videoRepo, service.TranscriptServiceConfig{
		MinTranscriptLength: cfg.MinTranscriptLength,
	})
	libraryService := service.NewLibraryService(bookmarkRepo, studySessionRepo)
	notebookService := service.NewNotebookService(noteRepo, flashcardRepo)
	plannerService := service.NewPlannerService(taskRepo, scheduleRepo)

	router := http.NewRouter(&http.Deps{
		TranscriptService: transcriptService,
		LibraryService:    libraryService,
		NotebookService:   notebookService,
		PlannerService:    plannerService,
		DB:                db,
		CORSOrigins:       cfg.CORSOrigins,
	})

	server := &nethttp.Server{
		Addr:              ":" + cfg.APIPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Starting API server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatalf("API server failed to start: %v", err)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down API server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"transcript-tutor/internal/handlers"
	"transcript-tutor/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	TranscriptService service.TranscriptService
	LibraryService    service.LibraryService
	NotebookService   service.NotebookService
	PlannerService    service.PlannerService
	// DB is checked by the health endpoint.
	DB          handlers.Pinger
	CORSOrigins []string
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(CORSOptions(deps.CORSOrigins)))

	healthHandler := handlers.NewHealthHandler(deps.DB)
	processHandler := handlers.NewProcessVideoHandler(deps.TranscriptService)
	askHandler := handlers.NewAskQuestionHandler(deps.TranscriptService)
	searchHandler := handlers.NewSearchTranscriptHandler(deps.TranscriptService)
	videosHandler := handlers.NewVideosHandler(deps.TranscriptService)
	bookmarkHandler := handlers.NewBookmarkHandler(deps.LibraryService)
	studyHandler := handlers.NewStudyHandler(deps.LibraryService)
	notebookHandler := handlers.NewNotebookHandler(deps.NotebookService)
	plannerHandler := handlers.NewPlannerHandler(deps.PlannerService)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", healthHandler)

		r.Method(http.MethodPost, "/process_video", processHandler)
		r.Method(http.MethodPost, "/ask_question", askHandler)
		r.Method(http.MethodPost, "/search_transcript", searchHandler)

		r.Get("/videos", videosHandler.List)
		r.Get("/videos/{videoID}", videosHandler.Get)

		r.Route("/bookmarks", func(r chi.Router) {
			r.Get("/", bookmarkHandler.List)
			r.Post("/", bookmarkHandler.Add)
			r.Delete("/{videoID}", bookmarkHandler.Remove)
			r.Get("/{videoID}/status", bookmarkHandler.Status)
		})

		r.Get("/study-sessions", studyHandler.ListSessions)
		r.Post("/study-sessions", studyHandler.AddSession)
		r.Get("/study-time/total", studyHandler.TotalTime)

		r.Get("/notes", notebookHandler.ListNotes)
		r.Post("/notes", notebookHandler.CreateNote)
		r.Get("/flashcards", notebookHandler.ListFlashcards)
		r.Post("/flashcards", notebookHandler.CreateFlashcard)

		r.Get("/tasks", plannerHandler.ListTasks)
		r.Post("/tasks", plannerHandler.CreateTask)
		r.Get("/schedules", plannerHandler.ListSchedules)
		r.Post("/schedules", plannerHandler.CreateSchedule)
	})

	return r
}

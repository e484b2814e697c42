package handlers

import (
	"net/http"
	"time"

	"transcript-tutor/internal/contextutil"
	"transcript-tutor/internal/service"
)

// NotebookHandler handles HTTP requests for notes and flashcards.
type NotebookHandler struct {
	notebook service.NotebookService
}

// NewNotebookHandler creates a new NotebookHandler.
func NewNotebookHandler(notebook service.NotebookService) *NotebookHandler {
	return &NotebookHandler{
		notebook: notebook,
	}
}

// NoteRequest is the payload for creating a note.
type NoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Subject string `json:"subject"`
}

// NoteResponse is a stored note.
type NoteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FlashcardRequest is the payload for creating a flashcard.
type FlashcardRequest struct {
	Front      string `json:"front"`
	Back       string `json:"back"`
	Subject    string `json:"subject"`
	Difficulty string `json:"difficulty"`
}

// FlashcardResponse is a stored flashcard.
type FlashcardResponse struct {
	ID         string    `json:"id"`
	Front      string    `json:"front"`
	Back       string    `json:"back"`
	Subject    string    `json:"subject"`
	Difficulty string    `json:"difficulty"`
	NextReview time.Time `json:"next_review"`
	CreatedAt  time.Time `json:"created_at"`
}

func toNoteResponse(n service.Note) NoteResponse {
	return NoteResponse(n)
}

func toFlashcardResponse(c service.Flashcard) FlashcardResponse {
	return FlashcardResponse(c)
}

// ListNotes handles GET /api/notes.
func (h *NotebookHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	notes, err := h.notebook.ListNotes(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to fetch notes")
		return
	}

	resp := make([]NoteResponse, 0, len(notes))
	for _, n := range notes {
		resp = append(resp, toNoteResponse(n))
	}
	writeJSON(w, ctx, http.StatusOK, resp)
}

// CreateNote handles POST /api/notes.
func (h *NotebookHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req NoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "invalid note body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid note data")
		return
	}

	note, err := h.notebook.CreateNote(ctx, service.Note{
		Title:   req.Title,
		Content: req.Content,
		Subject: req.Subject,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to create note")
		return
	}

	writeJSON(w, ctx, http.StatusCreated, toNoteResponse(note))
}

// ListFlashcards handles GET /api/flashcards.
func (h *NotebookHandler) ListFlashcards(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cards, err := h.notebook.ListFlashcards(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to fetch flashcards")
		return
	}

	resp := make([]FlashcardResponse, 0, len(cards))
	for _, c := range cards {
		resp = append(resp, toFlashcardResponse(c))
	}
	writeJSON(w, ctx, http.StatusOK, resp)
}

// CreateFlashcard handles POST /api/flashcards.
func (h *NotebookHandler) CreateFlashcard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req FlashcardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "invalid flashcard body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid flashcard data")
		return
	}

	card, err := h.notebook.CreateFlashcard(ctx, service.Flashcard{
		Front:      req.Front,
		Back:       req.Back,
		Subject:    req.Subject,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to create flashcard")
		return
	}

	writeJSON(w, ctx, http.StatusCreated, toFlashcardResponse(card))
}

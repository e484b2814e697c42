package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_notebook_service.go -package=mocks -mock_names=NotebookService=MockNotebookService transcript-tutor/internal/service NotebookService

import (
	"context"
	"strings"
	"time"

	"transcript-tutor/internal/contextutil"
	"transcript-tutor/internal/storage"
)

// Flashcard difficulties.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Note is a free-form study note.
type Note struct {
	ID        string
	Title     string
	Content   string
	Subject   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Flashcard is a question/answer card.
type Flashcard struct {
	ID         string
	Front      string
	Back       string
	Subject    string
	Difficulty string
	NextReview time.Time
	CreatedAt  time.Time
}

// NotebookService manages notes and flashcards.
type NotebookService interface {
	ListNotes(ctx context.Context) ([]Note, error)
	// CreateNote stores a note. Title and content are required.
	CreateNote(ctx context.Context, n Note) (Note, error)
	ListFlashcards(ctx context.Context) ([]Flashcard, error)
	// CreateFlashcard stores a card. Front and back are required; difficulty defaults to medium.
	CreateFlashcard(ctx context.Context, c Flashcard) (Flashcard, error)
}

// notebookService implements NotebookService.
type notebookService struct {
	notes      storage.NoteStore
	flashcards storage.FlashcardStore
}

// NewNotebookService creates a new NotebookService.
func NewNotebookService(notes storage.NoteStore, flashcards storage.FlashcardStore) NotebookService {
	return &notebookService{
		notes:      notes,
		flashcards: flashcards,
	}
}

func (s *notebookService) ListNotes(ctx context.Context) ([]Note, error) {
	records, err := s.notes.List(ctx)
	if err != nil {
		return nil, WrapError(err, "failed to list notes")
	}

	notes := make([]Note, 0, len(records))
	for _, r := range records {
		notes = append(notes, Note(r))
	}
	return notes, nil
}

func (s *notebookService) CreateNote(ctx context.Context, n Note) (Note, error) {
	if strings.TrimSpace(n.Title) == "" {
		return Note{}, &ValidationError{Field: "title", Message: "Title is required"}
	}
	if strings.TrimSpace(n.Content) == "" {
		return Note{}, &ValidationError{Field: "content", Message: "Content is required"}
	}

	record := storage.NoteRecord{
		Title:   strings.TrimSpace(n.Title),
		Content: n.Content,
		Subject: strings.TrimSpace(n.Subject),
	}
	if err := s.notes.Add(ctx, &record); err != nil {
		return Note{}, WrapError(err, "failed to create note")
	}

	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "note created", "note_id", record.ID)
	return Note(record), nil
}

func (s *notebookService) ListFlashcards(ctx context.Context) ([]Flashcard, error) {
	records, err := s.flashcards.List(ctx)
	if err != nil {
		return nil, WrapError(err, "failed to list flashcards")
	}

	cards := make([]Flashcard, 0, len(records))
	for _, r := range records {
		cards = append(cards, Flashcard(r))
	}
	return cards, nil
}

func (s *notebookService) CreateFlashcard(ctx context.Context, c Flashcard) (Flashcard, error) {
	if strings.TrimSpace(c.Front) == "" {
		return Flashcard{}, &ValidationError{Field: "front", Message: "Front is required"}
	}
	if strings.TrimSpace(c.Back) == "" {
		return Flashcard{}, &ValidationError{Field: "back", Message: "Back is required"}
	}

	difficulty := strings.ToLower(strings.TrimSpace(c.Difficulty))
	switch difficulty {
	case "":
		difficulty = DifficultyMedium
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		return Flashcard{}, &ValidationError{Field: "difficulty", Message: "Difficulty must be easy, medium or hard"}
	}

	record := storage.FlashcardRecord{
		Front:      c.Front,
		Back:       c.Back,
		Subject:    strings.TrimSpace(c.Subject),
		Difficulty: difficulty,
	}
	if err := s.flashcards.Add(ctx, &record); err != nil {
		return Flashcard{}, WrapError(err, "failed to create flashcard")
	}

	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "flashcard created", "flashcard_id", record.ID, "difficulty", difficulty)
	return Flashcard(record), nil
}

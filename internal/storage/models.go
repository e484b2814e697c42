package storage

import "time"

// VideoRecord is a processed video with its transcript and generated content.
type VideoRecord struct {
	VideoID    string
	Title      string
	Transcript string
	// SummaryJSON and QuestionsJSON hold the generated content as JSON documents.
	SummaryJSON   string
	QuestionsJSON string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BookmarkRecord is a saved video.
type BookmarkRecord struct {
	ID        string // UUID
	VideoID   string
	Title     string
	Channel   string
	Duration  string // ISO 8601 duration as reported by YouTube, e.g. PT12M3S
	Thumbnail string
	CreatedAt time.Time
}

// StudySessionRecord is a completed study session.
type StudySessionRecord struct {
	ID              string // UUID
	DurationMinutes int
	Date            time.Time
}

// NoteRecord is a free-form study note.
type NoteRecord struct {
	ID        string // UUID
	Title     string
	Content   string
	Subject   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FlashcardRecord is a question/answer card.
type FlashcardRecord struct {
	ID         string // UUID
	Front      string
	Back       string
	Subject    string
	Difficulty string // easy, medium or hard
	NextReview time.Time
	CreatedAt  time.Time
}

// TaskRecord is a study task.
type TaskRecord struct {
	ID          string // UUID
	Title       string
	Description string
	Subject     string
	Priority    string // low, medium, high or urgent
	Status      string // pending, in_progress or completed
	DueDate     *time.Time
	CreatedAt   time.Time
}

// ScheduleRecord is a recurring weekly study slot.
type ScheduleRecord struct {
	ID        string // UUID
	Title     string
	Subject   string
	StartTime string // HH:MM
	EndTime   string // HH:MM
	DayOfWeek int    // 0 is Sunday
	Color     string
	CreatedAt time.Time
}

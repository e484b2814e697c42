package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// FlashcardStore defines the interface for flashcard storage operations.
type FlashcardStore interface {
	// List returns all flashcards, earliest review first.
	List(ctx context.Context) ([]FlashcardRecord, error)
	// Add stores a flashcard.
	Add(ctx context.Context, card *FlashcardRecord) error
}

// FlashcardRepo provides methods for flashcard operations.
// It implements the FlashcardStore interface.
type FlashcardRepo struct {
	db *sql.DB
}

// NewFlashcardRepo creates a new FlashcardRepo.
func NewFlashcardRepo(db *sql.DB) *FlashcardRepo {
	return &FlashcardRepo{db: db}
}

// List returns all flashcards ordered by next review, then creation order.
func (r *FlashcardRepo) List(ctx context.Context) ([]FlashcardRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, front, back, subject, difficulty, next_review, created_at
		 FROM flashcards ORDER BY next_review ASC, rowid ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query flashcards: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	cards := make([]FlashcardRecord, 0)
	for rows.Next() {
		var c FlashcardRecord
		if err := rows.Scan(&c.ID, &c.Front, &c.Back, &c.Subject, &c.Difficulty, &c.NextReview, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan flashcard: %w", err)
		}
		cards = append(cards, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return cards, nil
}

// Add stores a flashcard, assigning a UUID. A new card is due for review immediately.
func (r *FlashcardRepo) Add(ctx context.Context, card *FlashcardRecord) error {
	if card.ID == "" {
		card.ID = uuid.New().String()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO flashcards (id, front, back, subject, difficulty, next_review, created_at)
		 VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`,
		card.ID, card.Front, card.Back, card.Subject, card.Difficulty,
	)
	if err != nil {
		return fmt.Errorf("failed to insert flashcard: %w", err)
	}

	return r.db.QueryRowContext(ctx,
		"SELECT next_review, created_at FROM flashcards WHERE id = ?", card.ID,
	).Scan(&card.NextReview, &card.CreatedAt)
}

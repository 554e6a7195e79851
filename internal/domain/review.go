package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Review difficulty bounds. New entries start in the middle so a single
// correct answer can already shorten the next interval.
const (
	MinDifficultyLevel     = 1
	MaxDifficultyLevel     = 5
	InitialDifficultyLevel = 2
)

// Validation errors for ReviewQueueEntry.
var (
	ErrEmptyReviewUserID = errors.New("review entry user ID cannot be empty")
	ErrEmptyReviewWordID = errors.New("review entry word ID cannot be empty")
	ErrNegativeMistakes  = errors.New("mistake count cannot be negative")
)

// ReviewQueueEntry tracks one struggling word for one learner. An entry
// is created on the first mistake and removed once the word is answered
// correctly with no accumulated mistakes since the last removal.
type ReviewQueueEntry struct {
	UserID           uuid.UUID     `json:"user_id"`
	WordID           string        `json:"word_id"`
	NextReviewDate   time.Time     `json:"next_review_date"`
	DifficultyLevel  int           `json:"difficulty_level"` // 1..5
	MistakeCount     int           `json:"mistake_count"`
	LastMistakeTypes []MistakeKind `json:"last_mistake_types"` // Ordered, oldest first
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// NewReviewQueueEntry creates an entry for a word's first mistake.
// The next review date must still be set by the scheduling policy.
func NewReviewQueueEntry(userID uuid.UUID, wordID string, kind MistakeKind) (*ReviewQueueEntry, error) {
	now := time.Now().UTC()
	entry := &ReviewQueueEntry{
		UserID:           userID,
		WordID:           wordID,
		DifficultyLevel:  InitialDifficultyLevel,
		MistakeCount:     1,
		LastMistakeTypes: []MistakeKind{kind},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	return entry, nil
}

// Clone returns a deep copy of the entry.
func (e *ReviewQueueEntry) Clone() *ReviewQueueEntry {
	cp := *e
	cp.LastMistakeTypes = append([]MistakeKind(nil), e.LastMistakeTypes...)
	return &cp
}

// Validate checks if the ReviewQueueEntry has valid data.
func (e *ReviewQueueEntry) Validate() error {
	if e.UserID == uuid.Nil {
		return ErrEmptyReviewUserID
	}
	if e.WordID == "" {
		return ErrEmptyReviewWordID
	}
	if e.DifficultyLevel < MinDifficultyLevel || e.DifficultyLevel > MaxDifficultyLevel {
		return ErrInvalidDifficultyLevel
	}
	if e.MistakeCount < 0 {
		return ErrNegativeMistakes
	}
	return nil
}

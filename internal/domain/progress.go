package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// MasteryLevel is the discrete mastery tier for a learner/word pair.
type MasteryLevel int

// Mastery tiers, ordered from none to full mastery.
const (
	MasteryNone   MasteryLevel = 0
	MasteryBronze MasteryLevel = 1
	MasterySilver MasteryLevel = 2
	MasteryGold   MasteryLevel = 3
)

// String returns the human-readable tier name.
func (l MasteryLevel) String() string {
	switch l {
	case MasteryBronze:
		return "bronze"
	case MasterySilver:
		return "silver"
	case MasteryGold:
		return "gold"
	default:
		return "none"
	}
}

// Validation errors for ProgressRecord.
var (
	ErrEmptyProgressUserID = errors.New("progress record user ID cannot be empty")
	ErrEmptyProgressWordID = errors.New("progress record word ID cannot be empty")
	ErrInvalidAttemptCount = errors.New("correct answers cannot exceed total attempts")
)

// Attempt-count gate below which no accuracy-dependent branch runs. This
// also guards the accuracy division against a zero denominator.
const minAttemptsForMastery = 3

// ProgressRecord tracks a learner's raw attempt history for one word.
//
// Invariants: MasteryLevel is a pure function of (CorrectAnswers,
// TotalAttempts), and IsLearned holds exactly when MasteryLevel > 0.
// Use RecordAttempt to keep both in sync.
type ProgressRecord struct {
	UserID         uuid.UUID    `json:"user_id"`
	WordID         string       `json:"word_id"`
	CorrectAnswers int          `json:"correct_answers"`
	TotalAttempts  int          `json:"total_attempts"`
	MasteryLevel   MasteryLevel `json:"mastery_level"`
	IsLearned      bool         `json:"is_learned"`
	LastReviewed   time.Time    `json:"last_reviewed"`
	NextReview     time.Time    `json:"next_review"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// NewProgressRecord creates a fresh record with zero counters. Records
// are created lazily on a learner's first attempt at a word.
func NewProgressRecord(userID uuid.UUID, wordID string) (*ProgressRecord, error) {
	now := time.Now().UTC()
	rec := &ProgressRecord{
		UserID:    userID,
		WordID:    wordID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}

// Validate checks if the ProgressRecord has valid data.
func (r *ProgressRecord) Validate() error {
	if r.UserID == uuid.Nil {
		return ErrEmptyProgressUserID
	}
	if r.WordID == "" {
		return ErrEmptyProgressWordID
	}
	if r.CorrectAnswers > r.TotalAttempts {
		return ErrInvalidAttemptCount
	}
	return nil
}

// RecordAttempt applies one attempt outcome to the counters and
// recomputes the derived mastery fields.
func (r *ProgressRecord) RecordAttempt(isCorrect bool, now time.Time) {
	r.TotalAttempts++
	if isCorrect {
		r.CorrectAnswers++
	}
	r.MasteryLevel = CalculateMasteryLevel(r.CorrectAnswers, r.TotalAttempts)
	r.IsLearned = r.MasteryLevel > MasteryNone
	r.LastReviewed = now
	r.UpdatedAt = now
}

// CalculateMasteryLevel derives the mastery tier from raw counters.
// Accuracy is only consulted once the learner has at least three
// attempts; before that the tier is always None.
func CalculateMasteryLevel(correctAnswers, totalAttempts int) MasteryLevel {
	if totalAttempts < minAttemptsForMastery {
		return MasteryNone
	}
	accuracy := float64(correctAnswers) / float64(totalAttempts)
	switch {
	case accuracy >= 0.9 && correctAnswers >= 5:
		return MasteryGold
	case accuracy >= 0.7 && correctAnswers >= 3:
		return MasterySilver
	case accuracy >= 0.5:
		return MasteryBronze
	default:
		return MasteryNone
	}
}

// AttemptXP returns the XP awarded for one attempt: a correct answer
// earns a base of 10 plus 5 per mastery tier, a wrong answer earns none.
// The level passed in is the tier after the attempt was applied.
func AttemptXP(level MasteryLevel, isCorrect bool) int {
	if !isCorrect {
		return 0
	}
	return 10 + int(level)*5
}

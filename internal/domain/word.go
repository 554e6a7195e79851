package domain

import (
	"errors"
	"fmt"
)

// Validation errors for catalog entities.
var (
	ErrEmptyWordID      = errors.New("word ID cannot be empty")
	ErrEmptyWordMeaning = errors.New("word meaning cannot be empty")
	ErrInvalidFrequency = errors.New("word frequency cannot be negative")
	ErrInvalidPhaseID   = errors.New("phase ID must be positive")
	ErrInvalidDailyCap  = errors.New("phase max daily words must be positive")
)

// Word is a single vocabulary item from the content catalog. The catalog
// is a read-only collaborator: the engine consumes words but never
// creates or mutates them.
type Word struct {
	ID         string   `json:"id"`
	ArabicText string   `json:"arabic_text"`
	Meaning    string   `json:"meaning"`
	Category   string   `json:"category"`
	Frequency  int      `json:"frequency"` // Corpus frequency rank; lower means rarer
	Examples   []string `json:"examples"`
}

// Validate checks if the Word has valid data.
// Returns an error if any field fails validation.
func (w *Word) Validate() error {
	if w.ID == "" {
		return ErrEmptyWordID
	}
	if w.Meaning == "" {
		return ErrEmptyWordMeaning
	}
	if w.Frequency < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFrequency, w.Frequency)
	}
	return nil
}

// Phase is an ordered curriculum stage gating which vocabulary subset is
// presented. Phases come from the content catalog and are read-only.
type Phase struct {
	ID               int      `json:"id"`
	Name             string   `json:"name"`
	MinWordsToUnlock int      `json:"min_words_to_unlock"`
	MaxDailyWords    int      `json:"max_daily_words"`
	VocabularyIDs    []string `json:"vocabulary_ids"`
}

// Validate checks if the Phase has valid data.
func (p *Phase) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPhaseID, p.ID)
	}
	if p.MaxDailyWords <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDailyCap, p.MaxDailyWords)
	}
	if p.MinWordsToUnlock < 0 {
		return fmt.Errorf("%w: min words to unlock cannot be negative", ErrValidation)
	}
	return nil
}

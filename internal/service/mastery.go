package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aldirar/mufradat-api/internal/domain"
	"github.com/aldirar/mufradat-api/internal/store"
)

// MasteryResult is the outcome of recording one attempt.
type MasteryResult struct {
	MasteryLevel domain.MasteryLevel `json:"mastery_level"`
	IsLearned    bool                `json:"is_learned"`
	XPGain       int                 `json:"xp_gain"`
}

// MasteryTracker converts raw attempt history into mastery levels.
// Unknown learner/word pairs get a fresh record rather than an error;
// the tracker has no invalid-input surface.
type MasteryTracker struct {
	progress store.ProgressStore
	logger   *slog.Logger
}

// NewMasteryTracker creates a MasteryTracker.
func NewMasteryTracker(progress store.ProgressStore, logger *slog.Logger) *MasteryTracker {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for MasteryTracker")
	}
	return &MasteryTracker{
		progress: progress,
		logger:   logger.With(slog.String("component", "mastery_tracker")),
	}
}

// RecordAttempt applies one attempt to the learner's progress record
// for the word, creating the record lazily if absent, and returns the
// resulting mastery tier and XP gain.
func (t *MasteryTracker) RecordAttempt(
	ctx context.Context,
	userID uuid.UUID,
	wordID string,
	isCorrect bool,
	now time.Time,
) (*MasteryResult, error) {
	record, err := t.progress.Get(ctx, userID, wordID)
	if store.IsNotFoundError(err) {
		record, err = domain.NewProgressRecord(userID, wordID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load progress record: %w", err)
	}

	record.RecordAttempt(isCorrect, now)

	if err := t.progress.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save progress record: %w", err)
	}

	t.logger.Debug("attempt recorded",
		"user_id", userID,
		"word_id", wordID,
		"correct", isCorrect,
		"mastery_level", record.MasteryLevel.String(),
		"total_attempts", record.TotalAttempts)

	return &MasteryResult{
		MasteryLevel: record.MasteryLevel,
		IsLearned:    record.IsLearned,
		XPGain:       domain.AttemptXP(record.MasteryLevel, isCorrect),
	}, nil
}

package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/aldirar/mufradat-api/internal/domain"
	"github.com/aldirar/mufradat-api/internal/domain/srs"
	"github.com/aldirar/mufradat-api/internal/store"
)

// ReviewScheduler maintains each learner's due-for-review queue using
// the spaced-repetition interval policy from domain/srs.
type ReviewScheduler struct {
	reviews store.ReviewStore
	params  *srs.Params
	logger  *slog.Logger
}

// NewReviewScheduler creates a ReviewScheduler. A nil params uses the
// default interval table.
func NewReviewScheduler(reviews store.ReviewStore, params *srs.Params, logger *slog.Logger) *ReviewScheduler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ReviewScheduler")
	}
	if params == nil {
		params = srs.NewDefaultParams()
	}
	return &ReviewScheduler{
		reviews: reviews,
		params:  params,
		logger:  logger.With(slog.String("component", "review_scheduler")),
	}
}

// OnMistake records a mistake for a word. The first mistake creates a
// queue entry at the initial difficulty; later mistakes escalate it.
// Either way the next review lands after the interval for the entry's
// (possibly new) difficulty level.
func (s *ReviewScheduler) OnMistake(
	ctx context.Context,
	userID uuid.UUID,
	wordID string,
	kind domain.MistakeKind,
	now time.Time,
) (*domain.ReviewQueueEntry, error) {
	entry, err := s.reviews.Get(ctx, userID, wordID)
	switch {
	case store.IsNotFoundError(err):
		entry, err = domain.NewReviewQueueEntry(userID, wordID, kind)
		if err != nil {
			return nil, fmt.Errorf("failed to create review entry: %w", err)
		}
		entry.NextReviewDate = srs.NextReviewAt(s.params, entry.DifficultyLevel, now)
		entry.UpdatedAt = now
	case err != nil:
		return nil, fmt.Errorf("failed to load review entry: %w", err)
	default:
		srs.ApplyMistake(s.params, entry, kind, now)
	}

	if err := s.reviews.Save(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to save review entry: %w", err)
	}

	s.logger.Debug("mistake scheduled for review",
		"user_id", userID,
		"word_id", wordID,
		"mistake_type", string(kind),
		"difficulty_level", entry.DifficultyLevel,
		"next_review", entry.NextReviewDate)

	return entry, nil
}

// OnCorrect records a correct answer for a word. If the word is in the
// review queue with no accumulated mistakes left, the entry is removed
// and true is returned as an informational mastered signal. Otherwise
// the entry de-escalates and is rescheduled. Words not in the queue are
// a no-op.
func (s *ReviewScheduler) OnCorrect(
	ctx context.Context,
	userID uuid.UUID,
	wordID string,
	now time.Time,
) (bool, error) {
	entry, err := s.reviews.Get(ctx, userID, wordID)
	if store.IsNotFoundError(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load review entry: %w", err)
	}

	if entry.MistakeCount == 0 {
		if err := s.reviews.Delete(ctx, userID, wordID); err != nil {
			return false, fmt.Errorf("failed to remove review entry: %w", err)
		}
		s.logger.Debug("word exited review queue",
			"user_id", userID,
			"word_id", wordID)
		return true, nil
	}

	srs.ApplyCorrect(s.params, entry, now)
	if err := s.reviews.Save(ctx, entry); err != nil {
		return false, fmt.Errorf("failed to save review entry: %w", err)
	}

	s.logger.Debug("correct answer de-escalated review entry",
		"user_id", userID,
		"word_id", wordID,
		"difficulty_level", entry.DifficultyLevel,
		"mistake_count", entry.MistakeCount)

	return false, nil
}

// GetDue returns entries whose next review date has arrived, ordered
// ascending by difficulty level with deterministic tie-breaking, and
// truncated to limit (the configured batch cap when limit is not
// positive). Entries scheduled in the future are never returned.
func (s *ReviewScheduler) GetDue(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
	limit int,
) ([]*domain.ReviewQueueEntry, error) {
	due, err := s.reviews.ListDue(ctx, userID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list due reviews: %w", err)
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].DifficultyLevel != due[j].DifficultyLevel {
			return due[i].DifficultyLevel < due[j].DifficultyLevel
		}
		if !due[i].NextReviewDate.Equal(due[j].NextReviewDate) {
			return due[i].NextReviewDate.Before(due[j].NextReviewDate)
		}
		return due[i].WordID < due[j].WordID
	})

	if limit <= 0 {
		limit = s.params.MaxDueBatch
	}
	if limit < len(due) {
		due = due[:limit]
	}
	return due, nil
}

package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aldirar/mufradat-api/internal/domain"
	"github.com/aldirar/mufradat-api/internal/domain/difficulty"
	"github.com/aldirar/mufradat-api/internal/store"
)

// AttemptObservation is one attempt's contribution to a learner's
// statistical pattern.
type AttemptObservation struct {
	WordCategory string
	IsCorrect    bool
	MistakeType  domain.MistakeKind // Empty for correct answers
	SessionHour  int                // 0..23
}

// DifficultyPredictor maintains per-learner learning patterns and
// scores candidate words against them. Scoring is a deterministic
// heuristic, not a model: every contribution is explainable.
type DifficultyPredictor struct {
	patterns store.PatternStore
	logger   *slog.Logger
}

// NewDifficultyPredictor creates a DifficultyPredictor.
func NewDifficultyPredictor(patterns store.PatternStore, logger *slog.Logger) *DifficultyPredictor {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for DifficultyPredictor")
	}
	return &DifficultyPredictor{
		patterns: patterns,
		logger:   logger.With(slog.String("component", "difficulty_predictor")),
	}
}

// UpdatePattern folds one attempt into the learner's pattern: the
// session-hour histogram grows, new mistake kinds join the set, and the
// word category's rolling success rate moves toward the outcome.
// Patterns are created lazily and never deleted.
func (p *DifficultyPredictor) UpdatePattern(
	ctx context.Context,
	userID uuid.UUID,
	obs AttemptObservation,
	now time.Time,
) error {
	if obs.SessionHour < 0 || obs.SessionHour >= domain.HoursPerDay {
		return fmt.Errorf("%w: %d", domain.ErrInvalidSessionHour, obs.SessionHour)
	}

	pattern, err := p.patterns.Get(ctx, userID)
	if store.IsNotFoundError(err) {
		pattern, err = domain.NewLearningPattern(userID)
	}
	if err != nil {
		return fmt.Errorf("failed to load learning pattern: %w", err)
	}

	pattern.TimePatterns[obs.SessionHour]++

	if !obs.IsCorrect && obs.MistakeType != "" && obs.MistakeType.IsValid() {
		pattern.MistakeTypes[obs.MistakeType] = true
	}

	if obs.WordCategory != "" {
		// Unseen categories read as the zero seed.
		old := pattern.SuccessRates[obs.WordCategory]
		pattern.SuccessRates[obs.WordCategory] = difficulty.NextSuccessRate(old, obs.IsCorrect)
	}

	pattern.UpdatedAt = now

	if err := p.patterns.Save(ctx, pattern); err != nil {
		return fmt.Errorf("failed to save learning pattern: %w", err)
	}
	return nil
}

// Predict scores a word's likely difficulty for a learner. A learner
// with no pattern yet gets the neutral prediction: prediction is total
// and never fails on unknown learners.
func (p *DifficultyPredictor) Predict(
	ctx context.Context,
	userID uuid.UUID,
	word *domain.Word,
) (difficulty.Prediction, error) {
	pattern, err := p.patterns.Get(ctx, userID)
	if store.IsNotFoundError(err) {
		pattern, err = domain.NewLearningPattern(userID)
	}
	if err != nil {
		return difficulty.Prediction{}, fmt.Errorf("failed to load learning pattern: %w", err)
	}
	return difficulty.Predict(word, pattern), nil
}

// SelectAdaptiveQuestions picks the n pool words the learner most needs
// to practice, weighted by the learner's weak categories and mistake
// history.
func (p *DifficultyPredictor) SelectAdaptiveQuestions(
	ctx context.Context,
	userID uuid.UUID,
	pool []*domain.Word,
	n int,
) ([]*domain.Word, error) {
	pattern, err := p.patterns.Get(ctx, userID)
	if store.IsNotFoundError(err) {
		pattern, err = domain.NewLearningPattern(userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load learning pattern: %w", err)
	}
	return difficulty.SelectAdaptive(pool, pattern, n), nil
}

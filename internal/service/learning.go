package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aldirar/mufradat-api/internal/catalog"
	"github.com/aldirar/mufradat-api/internal/domain"
	"github.com/aldirar/mufradat-api/internal/domain/difficulty"
	"github.com/aldirar/mufradat-api/internal/store"
)

// Locker serializes mutating operations per learner. Operations on
// different learners proceed in parallel.
type Locker interface {
	// Lock acquires the learner's lock and returns the release func.
	Lock(userID uuid.UUID) func()
}

// AttemptRequest describes one answer attempt coming from a client.
type AttemptRequest struct {
	WordID      string
	IsCorrect   bool
	UserAnswer  string
	MistakeType domain.MistakeKind // Optional; classified from UserAnswer when empty
	SessionHour int                // Negative means "use the server clock"
}

// AttemptResult is the combined outcome of one attempt across all
// engine components.
type AttemptResult struct {
	MasteryLevel   domain.MasteryLevel `json:"mastery_level"`
	IsLearned      bool                `json:"is_learned"`
	XPGain         int                 `json:"xp_gain"`
	MistakeType    domain.MistakeKind  `json:"mistake_type,omitempty"`
	ReviewMastered bool                `json:"review_mastered"`
	CurrentStreak  int                 `json:"current_streak"`
}

// LearningService orchestrates the full attempt pipeline: mastery
// tracking, review scheduling, pattern learning, XP and streaks. There
// is no transaction spanning the components; the mastery update is the
// only hard failure, every later step logs and continues so one broken
// collaborator cannot swallow a learner's attempt.
type LearningService struct {
	mastery   *MasteryTracker
	reviews   *ReviewScheduler
	predictor *DifficultyPredictor
	streaks   *StreakEngine
	profiles  store.ProfileStore
	words     catalog.WordCatalog
	locks     Locker
	nowFn     func() time.Time
	logger    *slog.Logger
}

// NewLearningService creates the orchestrating service. nowFn may be
// nil, in which case the UTC wall clock is used.
func NewLearningService(
	mastery *MasteryTracker,
	reviews *ReviewScheduler,
	predictor *DifficultyPredictor,
	streaks *StreakEngine,
	profiles store.ProfileStore,
	words catalog.WordCatalog,
	locks Locker,
	logger *slog.Logger,
	nowFn func() time.Time,
) *LearningService {
	if mastery == nil || reviews == nil || predictor == nil || streaks == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("all engine components are required for LearningService")
	}
	if locks == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("locker cannot be nil for LearningService")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for LearningService")
	}
	if nowFn == nil {
		nowFn = func() time.Time { return time.Now().UTC() }
	}
	return &LearningService{
		mastery:   mastery,
		reviews:   reviews,
		predictor: predictor,
		streaks:   streaks,
		profiles:  profiles,
		words:     words,
		locks:     locks,
		nowFn:     nowFn,
		logger:    logger.With(slog.String("component", "learning_service")),
	}
}

// RecordAttempt runs one attempt through the whole engine under the
// learner's lock and returns the combined result.
func (s *LearningService) RecordAttempt(
	ctx context.Context,
	userID uuid.UUID,
	req AttemptRequest,
) (*AttemptResult, error) {
	now := s.nowFn()
	log := s.logger.With(
		slog.String("user_id", userID.String()),
		slog.String("word_id", req.WordID),
	)

	// Words outside the catalog still get progress tracked. Only the
	// category/phonetics-dependent steps need the word itself.
	word, err := s.words.Word(req.WordID)
	if err != nil {
		log.Debug("attempt on word outside the catalog")
		word = nil
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	masteryResult, err := s.mastery.RecordAttempt(ctx, userID, req.WordID, req.IsCorrect, now)
	if err != nil {
		return nil, fmt.Errorf("failed to record attempt: %w", err)
	}

	result := &AttemptResult{
		MasteryLevel: masteryResult.MasteryLevel,
		IsLearned:    masteryResult.IsLearned,
		XPGain:       masteryResult.XPGain,
	}

	mistakeType := req.MistakeType
	if !req.IsCorrect {
		if mistakeType == "" && word != nil {
			mistakeType = difficulty.Classify(req.UserAnswer, word.Meaning, word)
		}
		if mistakeType == "" {
			mistakeType = domain.MistakeUnknown
		}
		result.MistakeType = mistakeType

		if _, err := s.reviews.OnMistake(ctx, userID, req.WordID, mistakeType, now); err != nil {
			log.Error("failed to schedule review after mistake", "error", err)
		}
	} else {
		mastered, err := s.reviews.OnCorrect(ctx, userID, req.WordID, now)
		if err != nil {
			log.Error("failed to update review queue after correct answer", "error", err)
		}
		result.ReviewMastered = mastered
	}

	obs := AttemptObservation{
		IsCorrect:   req.IsCorrect,
		MistakeType: result.MistakeType,
		SessionHour: req.SessionHour,
	}
	if obs.SessionHour < 0 {
		obs.SessionHour = now.Hour()
	}
	if word != nil {
		obs.WordCategory = word.Category
	}
	if err := s.predictor.UpdatePattern(ctx, userID, obs, now); err != nil {
		log.Error("failed to update learning pattern", "error", err)
	}

	if result.XPGain > 0 {
		if err := s.applyXP(ctx, userID, result.XPGain, now); err != nil {
			log.Error("failed to apply XP gain", "error", err)
		}
	}

	streakStats, err := s.streaks.UpdateStreak(ctx, userID, now)
	if err != nil {
		log.Error("failed to update streak", "error", err)
	} else {
		result.CurrentStreak = streakStats.CurrentStreak
	}

	log.Debug("attempt pipeline completed",
		"correct", req.IsCorrect,
		"mastery_level", result.MasteryLevel.String(),
		"xp_gain", result.XPGain)

	return result, nil
}

// applyXP credits attempt XP to the learner profile, creating the
// profile on first contact.
func (s *LearningService) applyXP(ctx context.Context, userID uuid.UUID, amount int, now time.Time) error {
	profile, err := s.profiles.Get(ctx, userID)
	if store.IsNotFoundError(err) {
		profile, err = domain.NewLearnerProfile(userID)
	}
	if err != nil {
		return fmt.Errorf("failed to load learner profile: %w", err)
	}
	profile.AddXP(amount, now)
	if err := s.profiles.Save(ctx, profile); err != nil {
		return fmt.Errorf("failed to save learner profile: %w", err)
	}
	return nil
}

// GetDueReviews returns the word ids due for review, easiest first.
func (s *LearningService) GetDueReviews(ctx context.Context, userID uuid.UUID, limit int) ([]string, error) {
	entries, err := s.reviews.GetDue(ctx, userID, s.nowFn(), limit)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.WordID
	}
	return out, nil
}

// PredictDifficulty scores a catalog word against the learner's
// pattern.
func (s *LearningService) PredictDifficulty(ctx context.Context, userID uuid.UUID, wordID string) (difficulty.Prediction, error) {
	word, err := s.words.Word(wordID)
	if err != nil {
		return difficulty.Prediction{}, err
	}
	return s.predictor.Predict(ctx, userID, word)
}

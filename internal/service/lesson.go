package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/aldirar/mufradat-api/internal/catalog"
	"github.com/aldirar/mufradat-api/internal/domain"
	"github.com/aldirar/mufradat-api/internal/store"
)

// Up to this many struggling words lead each daily lesson. The rest of
// the lesson is filled with new material.
const maxStrugglingPerLesson = 3

// Lesson item priorities. Struggling words outrank new material.
const (
	PriorityNewWord    = 0
	PriorityStruggling = 1
)

// LessonItem is one entry in a composed daily lesson.
type LessonItem struct {
	Word           *domain.Word `json:"word"`
	Context        string       `json:"context,omitempty"`
	ReviewPriority int          `json:"review_priority"`
}

// LessonComposer assembles daily lessons by blending struggling words
// from the review queue with new vocabulary from the learner's phase.
type LessonComposer struct {
	progress store.ProgressStore
	reviews  store.ReviewStore
	words    catalog.WordCatalog
	phases   catalog.PhaseCatalog
	logger   *slog.Logger
}

// NewLessonComposer creates a LessonComposer with its collaborators.
func NewLessonComposer(
	progress store.ProgressStore,
	reviews store.ReviewStore,
	words catalog.WordCatalog,
	phases catalog.PhaseCatalog,
	logger *slog.Logger,
) *LessonComposer {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for LessonComposer")
	}
	return &LessonComposer{
		progress: progress,
		reviews:  reviews,
		words:    words,
		phases:   phases,
		logger:   logger.With(slog.String("component", "lesson_composer")),
	}
}

// GetDailyLesson composes an ordered lesson for the learner in the given
// phase, bounded by the phase's daily word cap. Struggling words (active
// review entries with accumulated mistakes) come first, up to three;
// remaining slots are filled from the phase vocabulary in catalog order,
// skipping mastered words. If fewer words are available than the cap,
// the lesson is simply shorter.
func (c *LessonComposer) GetDailyLesson(ctx context.Context, userID uuid.UUID, phaseID int) ([]*LessonItem, error) {
	phase, err := c.phases.Phase(phaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve phase: %w", err)
	}

	lesson := make([]*LessonItem, 0, phase.MaxDailyWords)
	seen := make(map[string]bool)

	for _, wordID := range c.strugglingWordIDs(ctx, userID) {
		if len(lesson) >= phase.MaxDailyWords || len(seen) >= maxStrugglingPerLesson {
			break
		}
		word, err := c.words.Word(wordID)
		if err != nil {
			// The review queue can reference words removed from the
			// catalog; skip them rather than failing the lesson.
			c.logger.Warn("review entry references unknown word",
				"user_id", userID,
				"word_id", wordID)
			continue
		}
		seen[wordID] = true
		lesson = append(lesson, newLessonItem(word, PriorityStruggling))
	}

	if len(lesson) >= phase.MaxDailyWords {
		return lesson, nil
	}

	mastered, err := c.masteredWordIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, wordID := range phase.VocabularyIDs {
		if len(lesson) >= phase.MaxDailyWords {
			break
		}
		if seen[wordID] || mastered[wordID] {
			continue
		}
		word, err := c.words.Word(wordID)
		if err != nil {
			c.logger.Warn("phase references unknown word",
				"phase_id", phaseID,
				"word_id", wordID)
			continue
		}
		seen[wordID] = true
		lesson = append(lesson, newLessonItem(word, PriorityNewWord))
	}

	return lesson, nil
}

// RecommendedPhase returns the first phase (ascending id) the learner has
// not yet unlocked enough mastered words for, or the last phase once all
// unlock thresholds are met.
func (c *LessonComposer) RecommendedPhase(ctx context.Context, userID uuid.UUID) (*domain.Phase, error) {
	phases := c.phases.Phases()
	if len(phases) == 0 {
		return nil, catalog.ErrPhaseNotFound
	}

	masteredCount, err := c.progress.CountMastered(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count mastered words: %w", err)
	}

	phase, found := lo.Find(phases, func(p *domain.Phase) bool {
		return masteredCount < p.MinWordsToUnlock
	})
	if !found {
		phase = phases[len(phases)-1]
	}
	return phase, nil
}

// strugglingWordIDs returns word ids with an active review entry and
// accumulated mistakes, hardest first. Read failures degrade to an
// all-new-words lesson rather than an error.
func (c *LessonComposer) strugglingWordIDs(ctx context.Context, userID uuid.UUID) []string {
	entries, err := c.reviews.ListByUser(ctx, userID)
	if err != nil {
		c.logger.Warn("failed to read review queue, composing lesson without it",
			"user_id", userID,
			"error", err)
		return nil
	}

	struggling := lo.Filter(entries, func(e *domain.ReviewQueueEntry, _ int) bool {
		return e.MistakeCount > 0
	})
	sort.SliceStable(struggling, func(i, j int) bool {
		if struggling[i].DifficultyLevel != struggling[j].DifficultyLevel {
			return struggling[i].DifficultyLevel > struggling[j].DifficultyLevel
		}
		return struggling[i].WordID < struggling[j].WordID
	})

	return lo.Map(struggling, func(e *domain.ReviewQueueEntry, _ int) string {
		return e.WordID
	})
}

func (c *LessonComposer) masteredWordIDs(ctx context.Context, userID uuid.UUID) (map[string]bool, error) {
	records, err := c.progress.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress records: %w", err)
	}
	mastered := make(map[string]bool, len(records))
	for _, rec := range records {
		if rec.IsLearned {
			mastered[rec.WordID] = true
		}
	}
	return mastered, nil
}

func newLessonItem(word *domain.Word, priority int) *LessonItem {
	item := &LessonItem{
		Word:           word,
		ReviewPriority: priority,
	}
	if len(word.Examples) > 0 {
		item.Context = word.Examples[0]
	}
	return item
}

package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aldirar/mufradat-api/internal/domain"
)

// ReviewStore persists the per-learner review queue of struggling words.
type ReviewStore interface {
	// Get retrieves the entry for a learner/word pair.
	// Returns ErrReviewEntryNotFound if none exists.
	Get(ctx context.Context, userID uuid.UUID, wordID string) (*domain.ReviewQueueEntry, error)

	// Save creates or replaces the entry for its learner/word pair.
	Save(ctx context.Context, entry *domain.ReviewQueueEntry) error

	// Delete removes the entry for a learner/word pair.
	// Returns ErrReviewEntryNotFound if none exists.
	Delete(ctx context.Context, userID uuid.UUID, wordID string) error

	// ListDue returns all entries for a learner whose NextReviewDate is
	// at or before now. Ordering is up to the caller.
	ListDue(ctx context.Context, userID uuid.UUID, now time.Time) ([]*domain.ReviewQueueEntry, error)

	// ListByUser returns all entries for a learner.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.ReviewQueueEntry, error)
}

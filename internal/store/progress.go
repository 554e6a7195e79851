package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/aldirar/mufradat-api/internal/domain"
)

// ProgressStore persists per-learner, per-word attempt history.
type ProgressStore interface {
	// Get retrieves the progress record for a learner/word pair.
	// Returns ErrProgressNotFound if none exists; callers create
	// records lazily rather than treating this as a failure.
	Get(ctx context.Context, userID uuid.UUID, wordID string) (*domain.ProgressRecord, error)

	// Save creates or replaces the record for its learner/word pair.
	Save(ctx context.Context, record *domain.ProgressRecord) error

	// ListByUser returns all progress records for a learner, in
	// unspecified order.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.ProgressRecord, error)

	// CountMastered returns how many of the learner's words have
	// reached any mastery tier (IsLearned).
	CountMastered(ctx context.Context, userID uuid.UUID) (int, error)
}

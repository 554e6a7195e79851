package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/aldirar/mufradat-api/internal/domain"
)

// PatternStore persists one learning pattern per learner.
type PatternStore interface {
	// Get retrieves the learner's pattern.
	// Returns ErrPatternNotFound if none exists.
	Get(ctx context.Context, userID uuid.UUID) (*domain.LearningPattern, error)

	// Save creates or replaces the learner's pattern.
	Save(ctx context.Context, pattern *domain.LearningPattern) error
}

// StreakStore persists one streak record per learner.
type StreakStore interface {
	// Get retrieves the learner's streak record.
	// Returns ErrStreakNotFound if none exists.
	Get(ctx context.Context, userID uuid.UUID) (*domain.StreakRecord, error)

	// Save creates or replaces the learner's streak record.
	Save(ctx context.Context, record *domain.StreakRecord) error

	// List returns all streak records. The daily sweep iterates every
	// learner exactly once per run.
	List(ctx context.Context) ([]*domain.StreakRecord, error)
}

// ProfileStore persists one gamification profile per learner.
type ProfileStore interface {
	// Get retrieves the learner's profile.
	// Returns ErrProfileNotFound if none exists.
	Get(ctx context.Context, userID uuid.UUID) (*domain.LearnerProfile, error)

	// Save creates or replaces the learner's profile.
	Save(ctx context.Context, profile *domain.LearnerProfile) error
}

// NotificationStore holds transient user-facing notifications until the
// client clears them.
type NotificationStore interface {
	// Append adds a notification to the learner's list.
	Append(ctx context.Context, notification *domain.Notification) error

	// ListByUser returns the learner's notifications in insertion order.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Notification, error)

	// Clear removes all of the learner's notifications.
	Clear(ctx context.Context, userID uuid.UUID) error
}

// SnapshotStore persists whole learner-state bundles for best-effort
// durability. The in-memory stores stay authoritative; snapshots only
// seed them at startup.
type SnapshotStore interface {
	// Save upserts one learner's bundle.
	Save(ctx context.Context, state *domain.LearnerState) error

	// LoadAll returns every stored bundle. Implementations should skip
	// and log corrupted rows rather than failing the whole load: learner
	// progress is best-effort and recomputable from scratch.
	LoadAll(ctx context.Context) ([]*domain.LearnerState, error)
}

// UserIDLister is implemented by stores that can enumerate the learners
// they hold state for; the snapshot flusher uses it to know what to save.
type UserIDLister interface {
	UserIDs(ctx context.Context) ([]uuid.UUID, error)
}

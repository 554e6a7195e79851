package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aldirar/mufradat-api/internal/domain"
)

// Stores aggregates all in-memory stores so the snapshot machinery can
// export and import whole learner-state bundles in one place.
type Stores struct {
	Progress      *ProgressStore
	Review        *ReviewStore
	Patterns      *PatternStore
	Streaks       *StreakStore
	Profiles      *ProfileStore
	Notifications *NotificationStore
	Locks         *LearnerLocks
}

// NewStores creates the full set of empty in-memory stores.
func NewStores() *Stores {
	return &Stores{
		Progress:      NewProgressStore(),
		Review:        NewReviewStore(),
		Patterns:      NewPatternStore(),
		Streaks:       NewStreakStore(),
		Profiles:      NewProfileStore(),
		Notifications: NewNotificationStore(),
		Locks:         NewLearnerLocks(),
	}
}

// UserIDs returns the union of learner ids across all stores.
func (s *Stores) UserIDs(ctx context.Context) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]bool)
	var out []uuid.UUID
	add := func(id uuid.UUID) {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}

	progressIDs, err := s.Progress.UserIDs(ctx)
	if err != nil {
		return nil, err
	}
	for _, id := range progressIDs {
		add(id)
	}

	streaks, err := s.Streaks.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, record := range streaks {
		add(record.UserID)
	}

	s.Profiles.mu.RLock()
	for id := range s.Profiles.profiles {
		add(id)
	}
	s.Profiles.mu.RUnlock()

	s.Patterns.mu.RLock()
	for id := range s.Patterns.patterns {
		add(id)
	}
	s.Patterns.mu.RUnlock()

	return out, nil
}

// ExportLearner assembles one learner's full state bundle under the
// learner's lock so the snapshot is internally consistent.
func (s *Stores) ExportLearner(ctx context.Context, userID uuid.UUID, now time.Time) (*domain.LearnerState, error) {
	unlock := s.Locks.Lock(userID)
	defer unlock()

	state := &domain.LearnerState{UserID: userID, SnapshotAt: now}

	var err error
	if state.Progress, err = s.Progress.ListByUser(ctx, userID); err != nil {
		return nil, err
	}
	if state.ReviewQueue, err = s.Review.ListByUser(ctx, userID); err != nil {
		return nil, err
	}
	if state.Notifications, err = s.Notifications.ListByUser(ctx, userID); err != nil {
		return nil, err
	}
	if pattern, err := s.Patterns.Get(ctx, userID); err == nil {
		state.Pattern = pattern
	}
	if streak, err := s.Streaks.Get(ctx, userID); err == nil {
		state.Streak = streak
	}
	if profile, err := s.Profiles.Get(ctx, userID); err == nil {
		state.Profile = profile
	}
	return state, nil
}

// ImportLearner loads one learner's bundle into the stores, replacing
// whatever was there. Used to seed memory from snapshots at startup.
func (s *Stores) ImportLearner(ctx context.Context, state *domain.LearnerState) error {
	unlock := s.Locks.Lock(state.UserID)
	defer unlock()

	for _, record := range state.Progress {
		if err := s.Progress.Save(ctx, record); err != nil {
			return err
		}
	}
	for _, entry := range state.ReviewQueue {
		if err := s.Review.Save(ctx, entry); err != nil {
			return err
		}
	}
	for _, notification := range state.Notifications {
		if err := s.Notifications.Append(ctx, notification); err != nil {
			return err
		}
	}
	if state.Pattern != nil {
		if err := s.Patterns.Save(ctx, state.Pattern); err != nil {
			return err
		}
	}
	if state.Streak != nil {
		if err := s.Streaks.Save(ctx, state.Streak); err != nil {
			return err
		}
	}
	if state.Profile != nil {
		if err := s.Profiles.Save(ctx, state.Profile); err != nil {
			return err
		}
	}
	return nil
}

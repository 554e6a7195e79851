package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/aldirar/mufradat-api/internal/domain"
	"github.com/aldirar/mufradat-api/internal/store"
)

// PatternStore is the in-memory implementation of store.PatternStore.
type PatternStore struct {
	mu       sync.RWMutex
	patterns map[uuid.UUID]*domain.LearningPattern
}

// NewPatternStore creates an empty pattern store.
func NewPatternStore() *PatternStore {
	return &PatternStore{patterns: make(map[uuid.UUID]*domain.LearningPattern)}
}

var _ store.PatternStore = (*PatternStore)(nil)

// Get implements store.PatternStore.Get.
func (s *PatternStore) Get(ctx context.Context, userID uuid.UUID) (*domain.LearningPattern, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pattern, ok := s.patterns[userID]
	if !ok {
		return nil, store.ErrPatternNotFound
	}
	return pattern.Clone(), nil
}

// Save implements store.PatternStore.Save.
func (s *PatternStore) Save(ctx context.Context, pattern *domain.LearningPattern) error {
	if pattern.UserID == uuid.Nil {
		return store.NewStoreError("pattern", "save", "validation failed", domain.ErrEmptyPatternUserID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.patterns[pattern.UserID] = pattern.Clone()
	return nil
}

// StreakStore is the in-memory implementation of store.StreakStore.
type StreakStore struct {
	mu      sync.RWMutex
	streaks map[uuid.UUID]*domain.StreakRecord
}

// NewStreakStore creates an empty streak store.
func NewStreakStore() *StreakStore {
	return &StreakStore{streaks: make(map[uuid.UUID]*domain.StreakRecord)}
}

var _ store.StreakStore = (*StreakStore)(nil)

// Get implements store.StreakStore.Get.
func (s *StreakStore) Get(ctx context.Context, userID uuid.UUID) (*domain.StreakRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.streaks[userID]
	if !ok {
		return nil, store.ErrStreakNotFound
	}
	return record.Clone(), nil
}

// Save implements store.StreakStore.Save.
func (s *StreakStore) Save(ctx context.Context, record *domain.StreakRecord) error {
	if err := record.Validate(); err != nil {
		return store.NewStoreError("streak", "save", "validation failed", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.streaks[record.UserID] = record.Clone()
	return nil
}

// List implements store.StreakStore.List.
func (s *StreakStore) List(ctx context.Context) ([]*domain.StreakRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.StreakRecord, 0, len(s.streaks))
	for _, record := range s.streaks {
		out = append(out, record.Clone())
	}
	return out, nil
}

// ProfileStore is the in-memory implementation of store.ProfileStore.
type ProfileStore struct {
	mu       sync.RWMutex
	profiles map[uuid.UUID]*domain.LearnerProfile
}

// NewProfileStore creates an empty profile store.
func NewProfileStore() *ProfileStore {
	return &ProfileStore{profiles: make(map[uuid.UUID]*domain.LearnerProfile)}
}

var _ store.ProfileStore = (*ProfileStore)(nil)

// Get implements store.ProfileStore.Get.
func (s *ProfileStore) Get(ctx context.Context, userID uuid.UUID) (*domain.LearnerProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[userID]
	if !ok {
		return nil, store.ErrProfileNotFound
	}
	return profile.Clone(), nil
}

// Save implements store.ProfileStore.Save.
func (s *ProfileStore) Save(ctx context.Context, profile *domain.LearnerProfile) error {
	if profile.UserID == uuid.Nil {
		return store.NewStoreError("profile", "save", "validation failed", domain.ErrEmptyProfileUserID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.profiles[profile.UserID] = profile.Clone()
	return nil
}

// NotificationStore is the in-memory implementation of
// store.NotificationStore.
type NotificationStore struct {
	mu            sync.RWMutex
	notifications map[uuid.UUID][]*domain.Notification
}

// NewNotificationStore creates an empty notification store.
func NewNotificationStore() *NotificationStore {
	return &NotificationStore{notifications: make(map[uuid.UUID][]*domain.Notification)}
}

var _ store.NotificationStore = (*NotificationStore)(nil)

// Append implements store.NotificationStore.Append.
func (s *NotificationStore) Append(ctx context.Context, notification *domain.Notification) error {
	if err := notification.Validate(); err != nil {
		return store.NewStoreError("notification", "append", "validation failed", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *notification
	s.notifications[notification.UserID] = append(s.notifications[notification.UserID], &cp)
	return nil
}

// ListByUser implements store.NotificationStore.ListByUser.
func (s *NotificationStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.notifications[userID]
	out := make([]*domain.Notification, 0, len(stored))
	for _, n := range stored {
		cp := *n
		out = append(out, &cp)
	}
	return out, nil
}

// Clear implements store.NotificationStore.Clear.
func (s *NotificationStore) Clear(ctx context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.notifications, userID)
	return nil
}

package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aldirar/mufradat-api/internal/domain"
	"github.com/aldirar/mufradat-api/internal/store"
)

// ReviewStore is the in-memory implementation of store.ReviewStore.
type ReviewStore struct {
	mu      sync.RWMutex
	entries map[learnerWordKey]*domain.ReviewQueueEntry
}

// NewReviewStore creates an empty review store.
func NewReviewStore() *ReviewStore {
	return &ReviewStore{entries: make(map[learnerWordKey]*domain.ReviewQueueEntry)}
}

var _ store.ReviewStore = (*ReviewStore)(nil)

// Get implements store.ReviewStore.Get.
func (s *ReviewStore) Get(ctx context.Context, userID uuid.UUID, wordID string) (*domain.ReviewQueueEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[learnerWordKey{userID: userID, wordID: wordID}]
	if !ok {
		return nil, store.ErrReviewEntryNotFound
	}
	return entry.Clone(), nil
}

// Save implements store.ReviewStore.Save.
func (s *ReviewStore) Save(ctx context.Context, entry *domain.ReviewQueueEntry) error {
	if err := entry.Validate(); err != nil {
		return store.NewStoreError("review", "save", "validation failed", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[learnerWordKey{userID: entry.UserID, wordID: entry.WordID}] = entry.Clone()
	return nil
}

// Delete implements store.ReviewStore.Delete.
func (s *ReviewStore) Delete(ctx context.Context, userID uuid.UUID, wordID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := learnerWordKey{userID: userID, wordID: wordID}
	if _, ok := s.entries[key]; !ok {
		return store.ErrReviewEntryNotFound
	}
	delete(s.entries, key)
	return nil
}

// ListDue implements store.ReviewStore.ListDue.
func (s *ReviewStore) ListDue(ctx context.Context, userID uuid.UUID, now time.Time) ([]*domain.ReviewQueueEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.ReviewQueueEntry
	for key, entry := range s.entries {
		if key.userID == userID && !entry.NextReviewDate.After(now) {
			out = append(out, entry.Clone())
		}
	}
	return out, nil
}

// ListByUser implements store.ReviewStore.ListByUser.
func (s *ReviewStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.ReviewQueueEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.ReviewQueueEntry
	for key, entry := range s.entries {
		if key.userID == userID {
			out = append(out, entry.Clone())
		}
	}
	return out, nil
}

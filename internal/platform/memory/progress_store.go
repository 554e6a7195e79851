package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/aldirar/mufradat-api/internal/domain"
	"github.com/aldirar/mufradat-api/internal/store"
)

// learnerWordKey identifies a learner/word pair.
type learnerWordKey struct {
	userID uuid.UUID
	wordID string
}

// ProgressStore is the in-memory implementation of store.ProgressStore.
type ProgressStore struct {
	mu      sync.RWMutex
	records map[learnerWordKey]*domain.ProgressRecord
}

// NewProgressStore creates an empty progress store.
func NewProgressStore() *ProgressStore {
	return &ProgressStore{records: make(map[learnerWordKey]*domain.ProgressRecord)}
}

var _ store.ProgressStore = (*ProgressStore)(nil)

// Get implements store.ProgressStore.Get.
func (s *ProgressStore) Get(ctx context.Context, userID uuid.UUID, wordID string) (*domain.ProgressRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[learnerWordKey{userID: userID, wordID: wordID}]
	if !ok {
		return nil, store.ErrProgressNotFound
	}
	cp := *rec
	return &cp, nil
}

// Save implements store.ProgressStore.Save.
func (s *ProgressStore) Save(ctx context.Context, record *domain.ProgressRecord) error {
	if err := record.Validate(); err != nil {
		return store.NewStoreError("progress", "save", "validation failed", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *record
	s.records[learnerWordKey{userID: record.UserID, wordID: record.WordID}] = &cp
	return nil
}

// ListByUser implements store.ProgressStore.ListByUser.
func (s *ProgressStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.ProgressRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.ProgressRecord
	for key, rec := range s.records {
		if key.userID == userID {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

// CountMastered implements store.ProgressStore.CountMastered.
func (s *ProgressStore) CountMastered(ctx context.Context, userID uuid.UUID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for key, rec := range s.records {
		if key.userID == userID && rec.IsLearned {
			count++
		}
	}
	return count, nil
}

// UserIDs implements store.UserIDLister.
func (s *ProgressStore) UserIDs(ctx context.Context) ([]uuid.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[uuid.UUID]bool)
	var out []uuid.UUID
	for key := range s.records {
		if !seen[key.userID] {
			seen[key.userID] = true
			out = append(out, key.userID)
		}
	}
	return out, nil
}

package memory

import (
	"sync"

	"github.com/google/uuid"
)

// LearnerLocks hands out one mutex per learner so all mutating
// operations on a learner's state bundle are serialized while work for
// different learners runs fully in parallel. Locks are created lazily
// and never collected; the population of learners is small and stable.
type LearnerLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

// NewLearnerLocks creates an empty lock registry.
func NewLearnerLocks() *LearnerLocks {
	return &LearnerLocks{locks: make(map[uuid.UUID]*sync.Mutex)}
}

// Lock acquires the learner's mutex, creating it on first use, and
// returns the unlock function.
func (l *LearnerLocks) Lock(userID uuid.UUID) func() {
	l.mu.Lock()
	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// LearnerState bundles everything the engine knows about one learner.
// It is the unit of snapshot persistence: the in-memory stores are
// authoritative, and the whole bundle is flushed and reloaded together
// so a snapshot is always internally consistent for its learner.
type LearnerState struct {
	UserID        uuid.UUID           `json:"user_id"`
	Profile       *LearnerProfile     `json:"profile,omitempty"`
	Progress      []*ProgressRecord   `json:"progress,omitempty"`
	ReviewQueue   []*ReviewQueueEntry `json:"review_queue,omitempty"`
	Pattern       *LearningPattern    `json:"pattern,omitempty"`
	Streak        *StreakRecord       `json:"streak,omitempty"`
	Notifications []*Notification     `json:"notifications,omitempty"`
	SnapshotAt    time.Time           `json:"snapshot_at"`
}

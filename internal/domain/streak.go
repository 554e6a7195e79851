package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Validation errors for StreakRecord.
var (
	ErrEmptyStreakUserID = errors.New("streak record user ID cannot be empty")
	ErrStreakInvariant   = errors.New("longest streak cannot be less than current streak")
)

// StreakRecord tracks a learner's run of consecutive active calendar
// days. The invariant LongestStreak >= CurrentStreak holds at all times.
type StreakRecord struct {
	UserID          uuid.UUID    `json:"user_id"`
	CurrentStreak   int          `json:"current_streak"`
	LongestStreak   int          `json:"longest_streak"`
	LastStreakDate  time.Time    `json:"last_streak_date"`  // Day granularity
	LastWarnedDate  time.Time    `json:"last_warned_date"`  // Day the last inactivity warning went out
	RewardedLengths map[int]bool `json:"rewarded_lengths"`  // Streak thresholds already rewarded
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// NewStreakRecord creates a streak record for a learner's first active
// day. The caller supplies the day so tests can drive the calendar.
func NewStreakRecord(userID uuid.UUID, day time.Time) (*StreakRecord, error) {
	if userID == uuid.Nil {
		return nil, ErrEmptyStreakUserID
	}
	now := time.Now().UTC()
	return &StreakRecord{
		UserID:          userID,
		CurrentStreak:   1,
		LongestStreak:   1,
		LastStreakDate:  TruncateToDay(day),
		RewardedLengths: make(map[int]bool),
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// Validate checks if the StreakRecord has valid data.
func (s *StreakRecord) Validate() error {
	if s.UserID == uuid.Nil {
		return ErrEmptyStreakUserID
	}
	if s.LongestStreak < s.CurrentStreak {
		return ErrStreakInvariant
	}
	return nil
}

// Clone returns a deep copy of the streak record.
func (s *StreakRecord) Clone() *StreakRecord {
	cp := *s
	cp.RewardedLengths = make(map[int]bool, len(s.RewardedLengths))
	for k, v := range s.RewardedLengths {
		cp.RewardedLengths[k] = v
	}
	return &cp
}

// TruncateToDay drops the time-of-day component, keeping UTC day
// granularity for all streak math.
func TruncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole calendar days from a to b, both
// truncated to day granularity.
func DaysBetween(a, b time.Time) int {
	a = TruncateToDay(a)
	b = TruncateToDay(b)
	return int(b.Sub(a).Hours() / HoursPerDay)
}

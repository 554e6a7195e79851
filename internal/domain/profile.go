package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// XPPerLevel is the XP span of one learner level.
const XPPerLevel = 1000

// ErrEmptyProfileUserID is returned when a learner profile has no owner.
var ErrEmptyProfileUserID = errors.New("learner profile user ID cannot be empty")

// LearnerProfile holds a learner's gamification totals: accumulated XP,
// the level derived from it, and achievements earned from streak
// rewards (keyed by the streak length that triggered them).
type LearnerProfile struct {
	UserID       uuid.UUID      `json:"user_id"`
	XP           int            `json:"xp"`
	Level        int            `json:"level"`
	Achievements map[int]string `json:"achievements"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// NewLearnerProfile creates an empty profile at level one.
func NewLearnerProfile(userID uuid.UUID) (*LearnerProfile, error) {
	if userID == uuid.Nil {
		return nil, ErrEmptyProfileUserID
	}
	now := time.Now().UTC()
	return &LearnerProfile{
		UserID:       userID,
		Level:        LevelForXP(0),
		Achievements: make(map[int]string),
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// AddXP credits XP to the profile and recomputes the level.
func (p *LearnerProfile) AddXP(amount int, now time.Time) {
	if amount <= 0 {
		return
	}
	p.XP += amount
	p.Level = LevelForXP(p.XP)
	p.UpdatedAt = now
}

// RecordAchievement stores an achievement title keyed by the streak
// length that earned it. Recording the same length twice is a no-op.
func (p *LearnerProfile) RecordAchievement(streakLength int, title string, now time.Time) {
	if _, ok := p.Achievements[streakLength]; ok {
		return
	}
	p.Achievements[streakLength] = title
	p.UpdatedAt = now
}

// Clone returns a deep copy of the profile.
func (p *LearnerProfile) Clone() *LearnerProfile {
	cp := *p
	cp.Achievements = make(map[int]string, len(p.Achievements))
	for k, v := range p.Achievements {
		cp.Achievements[k] = v
	}
	return &cp
}

// LevelForXP derives the learner level from total XP.
func LevelForXP(xp int) int {
	return xp/XPPerLevel + 1
}

package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// HoursPerDay is the size of the session-time histogram.
const HoursPerDay = 24

// ErrEmptyPatternUserID is returned when a learning pattern has no owner.
var ErrEmptyPatternUserID = errors.New("learning pattern user ID cannot be empty")

// LearningPattern accumulates a learner's statistical footprint: which
// mistake kinds they make, at which hours they study, and how well they
// do per word category. One pattern exists per learner; it is created
// lazily on the first attempt and never deleted.
type LearningPattern struct {
	UserID       uuid.UUID            `json:"user_id"`
	MistakeTypes map[MistakeKind]bool `json:"mistake_types"`
	TimePatterns [HoursPerDay]int     `json:"time_patterns"`
	SuccessRates map[string]float64   `json:"success_rates"` // Category -> rolling rate in [0,1]
	UpdatedAt    time.Time            `json:"updated_at"`
}

// NewLearningPattern creates an empty pattern for a learner.
func NewLearningPattern(userID uuid.UUID) (*LearningPattern, error) {
	if userID == uuid.Nil {
		return nil, ErrEmptyPatternUserID
	}
	return &LearningPattern{
		UserID:       userID,
		MistakeTypes: make(map[MistakeKind]bool),
		SuccessRates: make(map[string]float64),
		UpdatedAt:    time.Now().UTC(),
	}, nil
}

// HasMistakeType reports whether the learner has ever made a mistake of
// the given kind.
func (p *LearningPattern) HasMistakeType(kind MistakeKind) bool {
	return p.MistakeTypes[kind]
}

// Clone returns a deep copy of the pattern. Stores hand out clones so
// callers cannot mutate shared state outside the learner's lock.
func (p *LearningPattern) Clone() *LearningPattern {
	cp := &LearningPattern{
		UserID:       p.UserID,
		TimePatterns: p.TimePatterns,
		MistakeTypes: make(map[MistakeKind]bool, len(p.MistakeTypes)),
		SuccessRates: make(map[string]float64, len(p.SuccessRates)),
		UpdatedAt:    p.UpdatedAt,
	}
	for k, v := range p.MistakeTypes {
		cp.MistakeTypes[k] = v
	}
	for k, v := range p.SuccessRates {
		cp.SuccessRates[k] = v
	}
	return cp
}

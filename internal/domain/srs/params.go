// Package srs implements the spaced-repetition scheduling policy for
// struggling words: a single interval table indexed by difficulty level,
// escalating on mistakes and de-escalating on correct answers.
package srs

import "github.com/aldirar/mufradat-api/internal/domain"

// Params defines the configurable parameters for the review scheduler.
type Params struct {
	// Intervals holds the review delay in days per difficulty level.
	// Index 0 corresponds to difficulty level 1.
	Intervals [domain.MaxDifficultyLevel]int

	// MaxDueBatch caps how many due entries a single query may return
	// when the caller does not supply a limit.
	MaxDueBatch int
}

// NewDefaultParams returns the standard interval table: 1, 3, 7, 14 and
// 30 days for difficulty levels 1 through 5.
func NewDefaultParams() *Params {
	return &Params{
		Intervals:   [domain.MaxDifficultyLevel]int{1, 3, 7, 14, 30},
		MaxDueBatch: 50,
	}
}

// IntervalDays returns the review delay in days for a difficulty level.
// Levels outside 1..5 are clamped to the nearest bound.
func (p *Params) IntervalDays(level int) int {
	if level < domain.MinDifficultyLevel {
		level = domain.MinDifficultyLevel
	}
	if level > domain.MaxDifficultyLevel {
		level = domain.MaxDifficultyLevel
	}
	return p.Intervals[level-1]
}

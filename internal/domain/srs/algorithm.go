package srs

import (
	"time"

	"github.com/aldirar/mufradat-api/internal/domain"
)

// Escalate raises the difficulty level after a mistake, capped at the
// maximum. Repeated mistakes therefore never decrease the level.
func Escalate(level int) int {
	if level >= domain.MaxDifficultyLevel {
		return domain.MaxDifficultyLevel
	}
	return level + 1
}

// Deescalate lowers the difficulty level after a correct answer,
// floored at the minimum.
func Deescalate(level int) int {
	if level <= domain.MinDifficultyLevel {
		return domain.MinDifficultyLevel
	}
	return level - 1
}

// NextReviewAt schedules the next review for a difficulty level,
// counting whole days from now.
func NextReviewAt(p *Params, level int, now time.Time) time.Time {
	return now.AddDate(0, 0, p.IntervalDays(level))
}

// ApplyMistake mutates the entry for one more mistake: the count grows,
// the difficulty escalates, the mistake kind is appended to the ordered
// history, and the next review is pushed out by the new level's interval.
func ApplyMistake(p *Params, entry *domain.ReviewQueueEntry, kind domain.MistakeKind, now time.Time) {
	entry.MistakeCount++
	entry.DifficultyLevel = Escalate(entry.DifficultyLevel)
	entry.LastMistakeTypes = append(entry.LastMistakeTypes, kind)
	entry.NextReviewDate = NextReviewAt(p, entry.DifficultyLevel, now)
	entry.UpdatedAt = now
}

// ApplyCorrect mutates the entry for a correct answer: the difficulty
// de-escalates, one accumulated mistake is worked off, and the entry is
// rescheduled. The count is never reset outright - a word must earn
// full confidence one correct answer at a time before it can exit the
// review queue, which happens at the service layer when a correct
// answer arrives on an entry whose count is already zero.
func ApplyCorrect(p *Params, entry *domain.ReviewQueueEntry, now time.Time) {
	entry.DifficultyLevel = Deescalate(entry.DifficultyLevel)
	if entry.MistakeCount > 0 {
		entry.MistakeCount--
	}
	entry.NextReviewDate = NextReviewAt(p, entry.DifficultyLevel, now)
	entry.UpdatedAt = now
}

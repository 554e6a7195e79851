// Package difficulty holds the pure statistical heuristics of the
// difficulty predictor: scoring candidate words against a learner's
// pattern, classifying wrong answers into mistake kinds, and weighting
// adaptive question selection. Everything here is deterministic and
// explainable; there is no trained model.
package difficulty

import (
	"fmt"
	"strings"

	"github.com/aldirar/mufradat-api/internal/domain"
)

// Scoring constants for PredictDifficulty.
const (
	baseScore          = 0.5
	lowSuccessRate     = 0.6
	categoryPenalty    = 0.2
	phoneticPenalty    = 0.15
	rareWordPenalty    = 0.1
	rareFrequencyBound = 100
	maxScore           = 1.0
)

// complexPhoneticLetters are the Arabic letters that trip up learners
// with a history of phonetic mistakes: the emphatic and guttural
// consonants plus the interdentals.
const complexPhoneticLetters = "ثذصضطظعغحق"

// Prediction is a difficulty score for one word together with the
// human-readable reasons that produced it.
type Prediction struct {
	Score   float64  `json:"score"` // In [0,1], higher means harder
	Reasons []string `json:"reasons"`
}

// Predict scores how difficult a word is likely to be for a learner
// with the given pattern. The score starts at a neutral base and grows
// for each risk signal that fires; it is capped at 1.0. Each fired
// signal contributes one entry to Reasons.
func Predict(word *domain.Word, pattern *domain.LearningPattern) Prediction {
	score := baseScore
	var reasons []string

	if rate, ok := pattern.SuccessRates[word.Category]; ok && rate < lowSuccessRate {
		score += categoryPenalty
		reasons = append(reasons, fmt.Sprintf("low success rate (%.0f%%) in category %q", rate*100, word.Category))
	}

	if pattern.HasMistakeType(domain.MistakePhonetic) && HasComplexPhonetics(word) {
		score += phoneticPenalty
		reasons = append(reasons, "contains phonetically complex letters and learner has a history of phonetic mistakes")
	}

	if word.Frequency < rareFrequencyBound {
		score += rareWordPenalty
		reasons = append(reasons, fmt.Sprintf("rare word (frequency rank %d)", word.Frequency))
	}

	if score > maxScore {
		score = maxScore
	}
	return Prediction{Score: score, Reasons: reasons}
}

// HasComplexPhonetics reports whether the word's Arabic text contains
// any of the letters known to cause phonetic confusion.
func HasComplexPhonetics(word *domain.Word) bool {
	return strings.ContainsAny(word.ArabicText, complexPhoneticLetters)
}

// NextSuccessRate folds one attempt outcome into a category's rolling
// success rate. The rule is intentionally order-sensitive and heavily
// weights the most recent outcome: a correct answer moves the rate
// halfway to 1, a wrong answer halves it. New categories seed at 0.
func NextSuccessRate(old float64, isCorrect bool) float64 {
	if isCorrect {
		return (old + 1) / 2
	}
	return old / 2
}

package difficulty

import (
	"strings"
	"unicode/utf8"

	"github.com/agext/levenshtein"

	"github.com/aldirar/mufradat-api/internal/domain"
)

// Classification thresholds. Phonetic similarity must be strictly
// between these bounds: 1.0 would be an exact match (not a mistake at
// all) and anything at or below 0.7 is too far off to count as
// sound-alike.
const (
	phoneticSimilarityMin  = 0.7
	phoneticSimilarityMax  = 1.0
	orthographicMaxEdits   = 2
	grammaticalLengthRatio = 1.5
)

var levenshteinParams = levenshtein.NewParams()

// Classify buckets a wrong answer into a mistake kind. The checks run
// in fixed priority order; the first match wins:
//
//  1. phonetic - the answer is a near-miss by normalized edit-distance
//     similarity (strictly between 0.7 and 1.0)
//  2. semantic - the answer text appears inside one of the word's
//     example sentences
//  3. orthographic - one or two edits away from the correct answer
//  4. grammatical - the answer is over 1.5x longer than the meaning,
//     suggesting a sentence where a word was expected
//  5. unknown - nothing matched
func Classify(userAnswer, correctAnswer string, word *domain.Word) domain.MistakeKind {
	userAnswer = strings.TrimSpace(userAnswer)
	correctAnswer = strings.TrimSpace(correctAnswer)

	sim := levenshtein.Similarity(userAnswer, correctAnswer, levenshteinParams)
	if sim > phoneticSimilarityMin && sim < phoneticSimilarityMax {
		return domain.MistakePhonetic
	}

	if userAnswer != "" {
		for _, example := range word.Examples {
			if strings.Contains(example, userAnswer) {
				return domain.MistakeSemantic
			}
		}
	}

	if d := levenshtein.Distance(userAnswer, correctAnswer, levenshteinParams); d >= 1 && d <= orthographicMaxEdits {
		return domain.MistakeOrthographic
	}

	answerLen := float64(utf8.RuneCountInString(userAnswer))
	meaningLen := float64(utf8.RuneCountInString(word.Meaning))
	if answerLen > grammaticalLengthRatio*meaningLen {
		return domain.MistakeGrammatical
	}

	return domain.MistakeUnknown
}

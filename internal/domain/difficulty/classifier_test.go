package difficulty

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aldirar/mufradat-api/internal/domain"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	word := &domain.Word{
		ID:         "w1",
		ArabicText: "بيت",
		Meaning:    "house",
		Category:   "nouns",
		Frequency:  200,
		Examples:   []string{"The apartment upstairs is bigger than the house."},
	}

	testCases := []struct {
		name       string
		userAnswer string
		expected   domain.MistakeKind
	}{
		{
			name:       "near miss is phonetic",
			userAnswer: "hous", // 1 edit over 5 chars: similarity 0.8
			expected:   domain.MistakePhonetic,
		},
		{
			name:       "answer from an example sentence is semantic",
			userAnswer: "apartment",
			expected:   domain.MistakeSemantic,
		},
		{
			name:       "two edits off below phonetic similarity is orthographic",
			userAnswer: "hoses", // 2 edits over 5 chars: similarity 0.6
			expected:   domain.MistakeOrthographic,
		},
		{
			name:       "full sentence answer is grammatical",
			userAnswer: "I am going to the big white building",
			expected:   domain.MistakeGrammatical,
		},
		{
			name:       "unrelated short answer is unknown",
			userAnswer: "sky",
			expected:   domain.MistakeUnknown,
		},
		{
			name:       "whitespace is trimmed before classification",
			userAnswer: "  hous  ",
			expected:   domain.MistakePhonetic,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, Classify(tc.userAnswer, word.Meaning, word))
		})
	}
}

func TestClassify_PriorityOrder(t *testing.T) {
	t.Parallel()

	// "house!" is both one edit away (orthographic range) and highly
	// similar (phonetic range); phonetic wins because it runs first.
	word := &domain.Word{ID: "w1", Meaning: "house", Examples: []string{"A house! What a house!"}}
	assert.Equal(t, domain.MistakePhonetic, Classify("house!", "house", word))

	// An answer inside an example that is also two edits away: semantic
	// runs before orthographic.
	word2 := &domain.Word{ID: "w2", Meaning: "cat", Examples: []string{"The dog chased the cat."}}
	assert.Equal(t, domain.MistakeSemantic, Classify("dog", "cat", word2))
}

func TestSelectAdaptive(t *testing.T) {
	t.Parallel()

	pool := []*domain.Word{
		{ID: "easy", ArabicText: "كتاب", Category: "strong", Frequency: 500},
		{ID: "weak-category", ArabicText: "باب", Category: "weak", Frequency: 500},
		{ID: "phonetic-trap", ArabicText: "صوت", Category: "strong", Frequency: 500},
		{ID: "both", ArabicText: "ضوء", Category: "weak", Frequency: 500},
	}

	pattern := &domain.LearningPattern{
		MistakeTypes: map[domain.MistakeKind]bool{domain.MistakePhonetic: true},
		SuccessRates: map[string]float64{"weak": 0.3, "strong": 0.9},
	}

	selected := SelectAdaptive(pool, pattern, 3)
	assert.Len(t, selected, 3)

	// Weight order: both (4.5), weak-category (3), phonetic-trap (2.5).
	assert.Equal(t, "both", selected[0].ID)
	assert.Equal(t, "weak-category", selected[1].ID)
	assert.Equal(t, "phonetic-trap", selected[2].ID)
}

func TestSelectAdaptive_StableTies(t *testing.T) {
	t.Parallel()

	pool := []*domain.Word{
		{ID: "a", ArabicText: "كتاب", Category: "x", Frequency: 500},
		{ID: "b", ArabicText: "باب", Category: "x", Frequency: 500},
		{ID: "c", ArabicText: "ولد", Category: "x", Frequency: 500},
	}
	pattern := &domain.LearningPattern{
		MistakeTypes: map[domain.MistakeKind]bool{},
		SuccessRates: map[string]float64{},
	}

	selected := SelectAdaptive(pool, pattern, 2)
	assert.Equal(t, []string{"a", "b"}, []string{selected[0].ID, selected[1].ID},
		"equal weights keep pool order")

	assert.Nil(t, SelectAdaptive(pool, pattern, 0))
	assert.Len(t, SelectAdaptive(pool, pattern, 10), 3, "n larger than pool returns everything")
}

package difficulty

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldirar/mufradat-api/internal/domain"
)

func newPattern(t *testing.T) *domain.LearningPattern {
	t.Helper()
	pattern, err := domain.NewLearningPattern(uuid.New())
	require.NoError(t, err)
	return pattern
}

func TestPredict(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name            string
		word            *domain.Word
		setup           func(*domain.LearningPattern)
		expectedScore   float64
		expectedReasons int
	}{
		{
			name:            "no risk signals stays at base",
			word:            &domain.Word{ID: "w1", ArabicText: "كتاب", Meaning: "book", Category: "nouns", Frequency: 500},
			setup:           func(p *domain.LearningPattern) {},
			expectedScore:   0.5,
			expectedReasons: 0,
		},
		{
			name: "weak category adds penalty",
			word: &domain.Word{ID: "w2", ArabicText: "كتاب", Meaning: "book", Category: "nouns", Frequency: 500},
			setup: func(p *domain.LearningPattern) {
				p.SuccessRates["nouns"] = 0.4
			},
			expectedScore:   0.7,
			expectedReasons: 1,
		},
		{
			name: "unseen category never fires the penalty",
			word: &domain.Word{ID: "w3", ArabicText: "كتاب", Meaning: "book", Category: "verbs", Frequency: 500},
			setup: func(p *domain.LearningPattern) {
				p.SuccessRates["nouns"] = 0.1
			},
			expectedScore:   0.5,
			expectedReasons: 0,
		},
		{
			name: "phonetic history with complex letters adds penalty",
			word: &domain.Word{ID: "w4", ArabicText: "صباح", Meaning: "morning", Category: "nouns", Frequency: 500},
			setup: func(p *domain.LearningPattern) {
				p.MistakeTypes[domain.MistakePhonetic] = true
			},
			expectedScore:   0.65,
			expectedReasons: 1,
		},
		{
			name: "phonetic history without complex letters is neutral",
			word: &domain.Word{ID: "w5", ArabicText: "كتاب", Meaning: "book", Category: "nouns", Frequency: 500},
			setup: func(p *domain.LearningPattern) {
				p.MistakeTypes[domain.MistakePhonetic] = true
			},
			expectedScore:   0.5,
			expectedReasons: 0,
		},
		{
			name:            "rare word adds penalty",
			word:            &domain.Word{ID: "w6", ArabicText: "كتاب", Meaning: "book", Category: "nouns", Frequency: 40},
			setup:           func(p *domain.LearningPattern) {},
			expectedScore:   0.6,
			expectedReasons: 1,
		},
		{
			name: "weak category plus phonetic complexity stacks",
			word: &domain.Word{ID: "w7", ArabicText: "ظهر", Meaning: "noon", Category: "time", Frequency: 300},
			setup: func(p *domain.LearningPattern) {
				p.SuccessRates["time"] = 0.5
				p.MistakeTypes[domain.MistakePhonetic] = true
			},
			expectedScore:   0.85,
			expectedReasons: 2,
		},
		{
			name: "rare word in a weak category stacks without phonetic history",
			word: &domain.Word{ID: "w9", ArabicText: "كتاب", Meaning: "book", Category: "nouns", Frequency: 50},
			setup: func(p *domain.LearningPattern) {
				p.SuccessRates["nouns"] = 0.4
			},
			expectedScore:   0.8,
			expectedReasons: 2,
		},
		{
			name: "all signals stack",
			word: &domain.Word{ID: "w8", ArabicText: "غضب", Meaning: "anger", Category: "emotions", Frequency: 10},
			setup: func(p *domain.LearningPattern) {
				p.SuccessRates["emotions"] = 0.2
				p.MistakeTypes[domain.MistakePhonetic] = true
			},
			expectedScore:   0.95,
			expectedReasons: 3,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			pattern := newPattern(t)
			tc.setup(pattern)

			prediction := Predict(tc.word, pattern)
			assert.InDelta(t, tc.expectedScore, prediction.Score, 1e-9)
			assert.Len(t, prediction.Reasons, tc.expectedReasons)
		})
	}
}

func TestHasComplexPhonetics(t *testing.T) {
	t.Parallel()

	assert.True(t, HasComplexPhonetics(&domain.Word{ArabicText: "صباح"}))
	assert.True(t, HasComplexPhonetics(&domain.Word{ArabicText: "غرفة"}))
	assert.False(t, HasComplexPhonetics(&domain.Word{ArabicText: "كتاب"}))
	assert.False(t, HasComplexPhonetics(&domain.Word{ArabicText: ""}))
}

func TestNextSuccessRate(t *testing.T) {
	t.Parallel()

	// Seeded at zero, a correct answer moves the rate halfway to one.
	rate := NextSuccessRate(0, true)
	assert.InDelta(t, 0.5, rate, 1e-9)

	rate = NextSuccessRate(rate, true)
	assert.InDelta(t, 0.75, rate, 1e-9)

	// A wrong answer halves whatever is there.
	rate = NextSuccessRate(rate, false)
	assert.InDelta(t, 0.375, rate, 1e-9)

	assert.InDelta(t, 0, NextSuccessRate(0, false), 1e-9)
}

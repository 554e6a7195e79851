package srs

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldirar/mufradat-api/internal/domain"
)

func TestIntervalDays(t *testing.T) {
	t.Parallel()
	p := NewDefaultParams()

	testCases := []struct {
		level    int
		expected int
	}{
		{1, 1},
		{2, 3},
		{3, 7},
		{4, 14},
		{5, 30},
		{0, 1},  // Clamped to minimum
		{9, 30}, // Clamped to maximum
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, p.IntervalDays(tc.level), "level %d", tc.level)
	}
}

func TestEscalateDeescalate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, Escalate(2))
	assert.Equal(t, 5, Escalate(5), "escalation caps at the maximum")
	assert.Equal(t, 1, Deescalate(2))
	assert.Equal(t, 1, Deescalate(1), "de-escalation floors at the minimum")
}

func TestApplyMistake_EscalationSequence(t *testing.T) {
	t.Parallel()

	p := NewDefaultParams()
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	entry, err := domain.NewReviewQueueEntry(uuid.New(), "word-1", domain.MistakePhonetic)
	require.NoError(t, err)
	entry.NextReviewDate = NextReviewAt(p, entry.DifficultyLevel, now)

	// First mistake created the entry at level 2, next review in 3 days.
	assert.Equal(t, 2, entry.DifficultyLevel)
	assert.Equal(t, now.AddDate(0, 0, 3), entry.NextReviewDate)

	// Three wrong answers in a row: level walks 2 -> 3 -> 4, offsets 3d -> 7d -> 14d.
	ApplyMistake(p, entry, domain.MistakeOrthographic, now)
	assert.Equal(t, 3, entry.DifficultyLevel)
	assert.Equal(t, now.AddDate(0, 0, 7), entry.NextReviewDate)

	ApplyMistake(p, entry, domain.MistakeUnknown, now)
	assert.Equal(t, 4, entry.DifficultyLevel)
	assert.Equal(t, now.AddDate(0, 0, 14), entry.NextReviewDate)

	assert.Equal(t, 3, entry.MistakeCount)
	assert.Equal(t, []domain.MistakeKind{
		domain.MistakePhonetic,
		domain.MistakeOrthographic,
		domain.MistakeUnknown,
	}, entry.LastMistakeTypes, "mistake history keeps insertion order")
}

func TestApplyMistake_LevelNeverDecreases(t *testing.T) {
	t.Parallel()

	p := NewDefaultParams()
	now := time.Now().UTC()
	entry, err := domain.NewReviewQueueEntry(uuid.New(), "word-1", domain.MistakeUnknown)
	require.NoError(t, err)

	prev := entry.DifficultyLevel
	for i := 0; i < 10; i++ {
		ApplyMistake(p, entry, domain.MistakeUnknown, now)
		assert.GreaterOrEqual(t, entry.DifficultyLevel, prev)
		assert.LessOrEqual(t, entry.DifficultyLevel, domain.MaxDifficultyLevel)
		prev = entry.DifficultyLevel
	}
	assert.Equal(t, domain.MaxDifficultyLevel, entry.DifficultyLevel)
}

func TestApplyCorrect(t *testing.T) {
	t.Parallel()

	p := NewDefaultParams()
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	entry, err := domain.NewReviewQueueEntry(uuid.New(), "word-1", domain.MistakeSemantic)
	require.NoError(t, err)
	ApplyMistake(p, entry, domain.MistakeSemantic, now) // level 3, count 2

	ApplyCorrect(p, entry, now)
	assert.Equal(t, 2, entry.DifficultyLevel)
	assert.Equal(t, 1, entry.MistakeCount)
	assert.Equal(t, now.AddDate(0, 0, 3), entry.NextReviewDate)

	ApplyCorrect(p, entry, now)
	ApplyCorrect(p, entry, now)
	assert.Equal(t, 1, entry.DifficultyLevel, "level floors at one")
	assert.Equal(t, 0, entry.MistakeCount, "count floors at zero")
}

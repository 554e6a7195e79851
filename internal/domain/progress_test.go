package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateMasteryLevel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		correctAnswers int
		totalAttempts  int
		expected       MasteryLevel
	}{
		{
			name:           "no attempts yields none",
			correctAnswers: 0,
			totalAttempts:  0,
			expected:       MasteryNone,
		},
		{
			name:           "below attempt gate yields none even when perfect",
			correctAnswers: 2,
			totalAttempts:  2,
			expected:       MasteryNone,
		},
		{
			name:           "half accuracy at gate yields bronze",
			correctAnswers: 2,
			totalAttempts:  4,
			expected:       MasteryBronze,
		},
		{
			name:           "seventy percent with three correct yields silver",
			correctAnswers: 3,
			totalAttempts:  4,
			expected:       MasterySilver,
		},
		{
			name:           "high accuracy but under five correct stays silver",
			correctAnswers: 3,
			totalAttempts:  3,
			expected:       MasterySilver,
		},
		{
			name:           "five consecutive correct yields gold",
			correctAnswers: 5,
			totalAttempts:  5,
			expected:       MasteryGold,
		},
		{
			name:           "ninety percent with nine of ten yields gold",
			correctAnswers: 9,
			totalAttempts:  10,
			expected:       MasteryGold,
		},
		{
			name:           "below half accuracy yields none",
			correctAnswers: 1,
			totalAttempts:  3,
			expected:       MasteryNone,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, CalculateMasteryLevel(tc.correctAnswers, tc.totalAttempts))
		})
	}
}

func TestProgressRecord_RecordAttempt(t *testing.T) {
	t.Parallel()

	record, err := NewProgressRecord(uuid.New(), "word-1")
	require.NoError(t, err)
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	// Five correct answers in a row walk the record up to Gold.
	expected := []MasteryLevel{MasteryNone, MasteryNone, MasterySilver, MasterySilver, MasteryGold}
	for i, want := range expected {
		record.RecordAttempt(true, now)
		assert.Equal(t, want, record.MasteryLevel, "after attempt %d", i+1)
		assert.Equal(t, want > MasteryNone, record.IsLearned, "after attempt %d", i+1)
	}

	assert.Equal(t, 5, record.CorrectAnswers)
	assert.Equal(t, 5, record.TotalAttempts)
	assert.Equal(t, now, record.LastReviewed)
}

func TestProgressRecord_Validate(t *testing.T) {
	t.Parallel()

	record, err := NewProgressRecord(uuid.New(), "word-1")
	require.NoError(t, err)
	require.NoError(t, record.Validate())

	record.CorrectAnswers = 3
	record.TotalAttempts = 2
	assert.ErrorIs(t, record.Validate(), ErrInvalidAttemptCount)

	_, err = NewProgressRecord(uuid.Nil, "word-1")
	assert.ErrorIs(t, err, ErrEmptyProgressUserID)

	_, err = NewProgressRecord(uuid.New(), "")
	assert.ErrorIs(t, err, ErrEmptyProgressWordID)
}

func TestAttemptXP(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		level     MasteryLevel
		isCorrect bool
		expected  int
	}{
		{"wrong answer earns nothing", MasteryGold, false, 0},
		{"correct at none", MasteryNone, true, 10},
		{"correct at bronze", MasteryBronze, true, 15},
		{"correct at silver", MasterySilver, true, 20},
		{"correct at gold", MasteryGold, true, 25},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, AttemptXP(tc.level, tc.isCorrect))
		})
	}
}

func TestLevelForXP(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, LevelForXP(0))
	assert.Equal(t, 1, LevelForXP(999))
	assert.Equal(t, 2, LevelForXP(1000))
	assert.Equal(t, 3, LevelForXP(2500))
}

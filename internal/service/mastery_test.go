package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldirar/mufradat-api/internal/domain"
	"github.com/aldirar/mufradat-api/internal/platform/memory"
)

// testLogger returns a logger that discards everything.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMasteryTracker_RecordAttempt(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tracker := NewMasteryTracker(memory.NewProgressStore(), testLogger())
	userID := uuid.New()
	now := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

	// First attempt lazily creates the record.
	result, err := tracker.RecordAttempt(ctx, userID, "word-1", true, now)
	require.NoError(t, err)
	assert.Equal(t, domain.MasteryNone, result.MasteryLevel)
	assert.False(t, result.IsLearned)
	assert.Equal(t, 10, result.XPGain, "correct at no tier earns the base XP")

	// Wrong answers earn nothing.
	result, err = tracker.RecordAttempt(ctx, userID, "word-1", false, now)
	require.NoError(t, err)
	assert.Equal(t, 0, result.XPGain)

	// Walk the same word to gold: 5 correct of 6 total is not gold yet
	// (accuracy below 0.9), so add enough to cross it.
	for i := 0; i < 4; i++ {
		result, err = tracker.RecordAttempt(ctx, userID, "word-1", true, now)
		require.NoError(t, err)
	}
	// 5 correct / 6 attempts: accuracy 0.833 -> silver.
	assert.Equal(t, domain.MasterySilver, result.MasteryLevel)
	assert.True(t, result.IsLearned)
	assert.Equal(t, 20, result.XPGain)

	for i := 0; i < 4; i++ {
		result, err = tracker.RecordAttempt(ctx, userID, "word-1", true, now)
		require.NoError(t, err)
	}
	// 9 correct / 10 attempts: accuracy 0.9 with 9 correct -> gold.
	assert.Equal(t, domain.MasteryGold, result.MasteryLevel)
	assert.Equal(t, 25, result.XPGain)
}

func TestMasteryTracker_IsolatesLearners(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tracker := NewMasteryTracker(memory.NewProgressStore(), testLogger())
	now := time.Now().UTC()

	alice := uuid.New()
	bob := uuid.New()

	for i := 0; i < 5; i++ {
		_, err := tracker.RecordAttempt(ctx, alice, "word-1", true, now)
		require.NoError(t, err)
	}
	result, err := tracker.RecordAttempt(ctx, bob, "word-1", true, now)
	require.NoError(t, err)

	assert.Equal(t, domain.MasteryNone, result.MasteryLevel,
		"one learner's history must not leak into another's")
}

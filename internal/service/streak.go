package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aldirar/mufradat-api/internal/domain"
	"github.com/aldirar/mufradat-api/internal/events"
	"github.com/aldirar/mufradat-api/internal/store"
)

// StreakStats is the learner-facing view of a streak.
type StreakStats struct {
	CurrentStreak       int    `json:"current_streak"`
	LongestStreak       int    `json:"longest_streak"`
	NextRewardDays      int    `json:"next_reward_days,omitempty"`
	NextRewardTitle     string `json:"next_reward_title,omitempty"`
	DaysUntilNextReward int    `json:"days_until_next_reward,omitempty"`
	Message             string `json:"message"`
}

// StreakEngine tracks daily activity streaks, grants one-time rewards
// at threshold lengths, and publishes user-facing notifications through
// the event emitter.
type StreakEngine struct {
	streaks  store.StreakStore
	profiles store.ProfileStore
	emitter  events.EventEmitter
	locks    Locker
	logger   *slog.Logger
}

// NewStreakEngine creates a StreakEngine. The locker serializes the
// daily sweep against attempt-driven streak updates for the same
// learner.
func NewStreakEngine(
	streaks store.StreakStore,
	profiles store.ProfileStore,
	emitter events.EventEmitter,
	locks Locker,
	logger *slog.Logger,
) *StreakEngine {
	if locks == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("locker cannot be nil for StreakEngine")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for StreakEngine")
	}
	return &StreakEngine{
		streaks:  streaks,
		profiles: profiles,
		emitter:  emitter,
		locks:    locks,
		logger:   logger.With(slog.String("component", "streak_engine")),
	}
}

// UpdateStreak registers activity for a calendar day and returns the
// resulting stats. Repeat calls on the same day are no-ops; the next
// day extends the streak and may fire a reward; a gap resets the streak
// to one after emitting a warning naming the broken length. Callers
// must hold the learner's lock; LearningService.RecordAttempt does.
func (e *StreakEngine) UpdateStreak(ctx context.Context, userID uuid.UUID, today time.Time) (*StreakStats, error) {
	today = domain.TruncateToDay(today)

	record, err := e.streaks.Get(ctx, userID)
	if store.IsNotFoundError(err) {
		record, err = domain.NewStreakRecord(userID, today)
		if err != nil {
			return nil, fmt.Errorf("failed to create streak record: %w", err)
		}
		if err := e.streaks.Save(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to save streak record: %w", err)
		}
		e.logger.Info("streak started", "user_id", userID)
		return e.statsFor(record), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load streak record: %w", err)
	}

	daysDiff := domain.DaysBetween(record.LastStreakDate, today)
	switch {
	case daysDiff <= 0:
		// Same day (or clock skew): nothing to do.
		return e.statsFor(record), nil

	case daysDiff == 1:
		record.CurrentStreak++
		if record.CurrentStreak > record.LongestStreak {
			record.LongestStreak = record.CurrentStreak
		}
		record.LastStreakDate = today
		record.UpdatedAt = today
		e.grantReward(ctx, userID, record, today)

	default:
		broken := record.CurrentStreak
		e.emitNotification(ctx, userID,
			fmt.Sprintf("Your %d-day streak was broken. Start a new one today!", broken),
			domain.NotificationWarning, today)
		record.CurrentStreak = 1
		record.LastStreakDate = today
		record.UpdatedAt = today
		e.logger.Info("streak reset after inactivity",
			"user_id", userID,
			"broken_length", broken,
			"days_inactive", daysDiff)
	}

	if err := e.streaks.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save streak record: %w", err)
	}
	return e.statsFor(record), nil
}

// grantReward fires the exact-threshold reward for the record's current
// streak length, at most once per learner per threshold. Reward
// failures are logged and do not fail the streak update.
func (e *StreakEngine) grantReward(ctx context.Context, userID uuid.UUID, record *domain.StreakRecord, today time.Time) {
	reward, ok := rewardFor(record.CurrentStreak)
	if !ok || record.RewardedLengths[reward.Days] {
		return
	}
	record.RewardedLengths[reward.Days] = true

	profile, err := e.profiles.Get(ctx, userID)
	if store.IsNotFoundError(err) {
		profile, err = domain.NewLearnerProfile(userID)
	}
	if err != nil {
		e.logger.Error("failed to load profile for streak reward", "error", err, "user_id", userID)
		return
	}
	profile.AddXP(reward.XPBonus, today)
	profile.RecordAchievement(reward.Days, reward.Title, today)
	if err := e.profiles.Save(ctx, profile); err != nil {
		e.logger.Error("failed to save profile for streak reward", "error", err, "user_id", userID)
		return
	}

	e.emitNotification(ctx, userID,
		fmt.Sprintf("%s! You reached a %d-day streak and earned %d XP.", reward.Title, reward.Days, reward.XPBonus),
		domain.NotificationCelebration, today)

	e.logger.Info("streak reward granted",
		"user_id", userID,
		"streak_days", reward.Days,
		"xp_bonus", reward.XPBonus,
		"title", reward.Title)
}

// GetAnalytics returns the learner's streak stats. A learner with no
// streak yet gets zero stats and the starting message.
func (e *StreakEngine) GetAnalytics(ctx context.Context, userID uuid.UUID) (*StreakStats, error) {
	record, err := e.streaks.Get(ctx, userID)
	if store.IsNotFoundError(err) {
		return e.statsFor(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load streak record: %w", err)
	}
	return e.statsFor(record), nil
}

// SweepInactive emits an inactivity warning for every learner who has
// been idle two or more days, at most once per calendar day. It is the
// body of the daily scheduled sweep and is safe to re-invoke. Each
// learner is re-read and warned under the learner's lock so a sweep
// tick never clobbers a concurrent attempt's streak update.
func (e *StreakEngine) SweepInactive(ctx context.Context, now time.Time) error {
	today := domain.TruncateToDay(now)

	records, err := e.streaks.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list streak records: %w", err)
	}

	warned := 0
	for _, candidate := range records {
		if e.warnIfInactive(ctx, candidate.UserID, today) {
			warned++
		}
	}

	e.logger.Info("streak sweep completed", "learners", len(records), "warned", warned)
	return nil
}

// warnIfInactive re-checks one learner's record under the learner's
// lock and emits the warning if the learner is still idle. The listed
// record is only a candidate; an attempt may have landed since.
func (e *StreakEngine) warnIfInactive(ctx context.Context, userID uuid.UUID, today time.Time) bool {
	unlock := e.locks.Lock(userID)
	defer unlock()

	record, err := e.streaks.Get(ctx, userID)
	if err != nil {
		if !store.IsNotFoundError(err) {
			e.logger.Error("failed to reload streak record for sweep", "error", err, "user_id", userID)
		}
		return false
	}
	if domain.DaysBetween(record.LastStreakDate, today) < 2 {
		return false
	}
	if record.LastWarnedDate.Equal(today) {
		return false // Already warned today.
	}

	e.emitNotification(ctx, userID,
		fmt.Sprintf("You have been away for %d days. Your %d-day streak is at risk!",
			domain.DaysBetween(record.LastStreakDate, today), record.CurrentStreak),
		domain.NotificationWarning, today)

	record.LastWarnedDate = today
	record.UpdatedAt = today
	if err := e.streaks.Save(ctx, record); err != nil {
		e.logger.Error("failed to mark learner as warned", "error", err, "user_id", userID)
		return false
	}
	return true
}

// statsFor builds learner-facing stats from a record (nil means the
// learner has no streak yet).
func (e *StreakEngine) statsFor(record *domain.StreakRecord) *StreakStats {
	stats := &StreakStats{}
	if record != nil {
		stats.CurrentStreak = record.CurrentStreak
		stats.LongestStreak = record.LongestStreak
	}
	if next, ok := nextRewardAfter(stats.CurrentStreak); ok {
		stats.NextRewardDays = next.Days
		stats.NextRewardTitle = next.Title
		stats.DaysUntilNextReward = next.Days - stats.CurrentStreak
	}
	stats.Message = motivationalMessage(stats.CurrentStreak)
	return stats
}

// motivationalMessage picks the tiered encouragement line for a streak
// length.
func motivationalMessage(current int) string {
	switch {
	case current == 0:
		return "Start your learning streak today!"
	case current < 3:
		return "Keep the momentum going!"
	case current < 7:
		return "Great consistency. Keep it up!"
	case current < 30:
		return "You're on fire!"
	default:
		return "Exceptional dedication!"
	}
}

// emitNotification publishes a notification event; delivery problems
// are logged, never propagated.
func (e *StreakEngine) emitNotification(ctx context.Context, userID uuid.UUID, message string, kind domain.NotificationType, at time.Time) {
	if e.emitter == nil {
		return
	}
	event, err := events.NewEvent(events.EventTypeNotification, events.NotificationPayload{
		UserID:        userID,
		Message:       message,
		Kind:          string(kind),
		ScheduledTime: at,
	})
	if err != nil {
		e.logger.Error("failed to build notification event", "error", err, "user_id", userID)
		return
	}
	if err := e.emitter.EmitEvent(ctx, event); err != nil {
		e.logger.Error("failed to emit notification event", "error", err, "user_id", userID)
	}
}

package task

import (
	"context"
	"time"
)

// StreakSweeper is the part of the streak engine the sweep job needs.
type StreakSweeper interface {
	SweepInactive(ctx context.Context, now time.Time) error
}

// StreakSweepJob warns learners whose streaks are about to break. The
// underlying sweep is idempotent per day, so rescheduling or running it
// twice never double-fires warnings.
type StreakSweepJob struct {
	sweeper StreakSweeper
}

// NewStreakSweepJob creates the sweep job.
func NewStreakSweepJob(sweeper StreakSweeper) *StreakSweepJob {
	return &StreakSweepJob{sweeper: sweeper}
}

var _ Job = (*StreakSweepJob)(nil)

// Name implements Job.
func (j *StreakSweepJob) Name() string { return "streak_sweep" }

// Run implements Job.
func (j *StreakSweepJob) Run(ctx context.Context, now time.Time) error {
	return j.sweeper.SweepInactive(ctx, now)
}

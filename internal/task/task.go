// Package task runs the engine's periodic background jobs: the daily
// streak sweep and the learner-state snapshot flush. Jobs receive the
// tick time explicitly so tests can simulate day boundaries without
// waiting on wall clocks.
package task

import (
	"context"
	"time"
)

// Job is one unit of periodic background work.
type Job interface {
	// Name returns a stable identifier used in logs.
	Name() string

	// Run executes the job for the given tick time.
	Run(ctx context.Context, now time.Time) error
}

// JobFunc adapts a function to the Job interface.
type JobFunc struct {
	JobName string
	Fn      func(ctx context.Context, now time.Time) error
}

// Name returns the job's name.
func (j JobFunc) Name() string { return j.JobName }

// Run invokes the wrapped function.
func (j JobFunc) Run(ctx context.Context, now time.Time) error {
	return j.Fn(ctx, now)
}

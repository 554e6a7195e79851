package task

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
)

// Runner drives registered jobs on a gocron scheduler. Each job tick
// runs with panic recovery so one misbehaving job cannot take down the
// process or the scheduler.
type Runner struct {
	scheduler *gocron.Scheduler
	logger    *slog.Logger
	nowFn     func() time.Time
	timeout   time.Duration
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithNowFunc overrides the clock passed to jobs. Used in tests.
func WithNowFunc(nowFn func() time.Time) RunnerOption {
	return func(r *Runner) { r.nowFn = nowFn }
}

// WithJobTimeout bounds how long a single job tick may run.
func WithJobTimeout(d time.Duration) RunnerOption {
	return func(r *Runner) { r.timeout = d }
}

// NewRunner creates a Runner scheduling in UTC.
func NewRunner(logger *slog.Logger, opts ...RunnerOption) *Runner {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for Runner")
	}
	r := &Runner{
		scheduler: gocron.NewScheduler(time.UTC),
		logger:    logger.With(slog.String("component", "task_runner")),
		nowFn:     func() time.Time { return time.Now().UTC() },
		timeout:   5 * time.Minute,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ScheduleDaily registers a job to run once per day at the given UTC
// time.
func (r *Runner) ScheduleDaily(job Job, at string) error {
	_, err := r.scheduler.Every(1).Day().At(at).Do(r.runJob, job)
	if err != nil {
		return fmt.Errorf("failed to schedule daily job %q: %w", job.Name(), err)
	}
	r.logger.Info("scheduled daily job", "job", job.Name(), "at", at)
	return nil
}

// ScheduleEvery registers a job to run on a fixed interval.
func (r *Runner) ScheduleEvery(job Job, interval time.Duration) error {
	_, err := r.scheduler.Every(interval).Do(r.runJob, job)
	if err != nil {
		return fmt.Errorf("failed to schedule job %q: %w", job.Name(), err)
	}
	r.logger.Info("scheduled periodic job", "job", job.Name(), "interval", interval.String())
	return nil
}

// Start begins running scheduled jobs in the background.
func (r *Runner) Start() {
	r.scheduler.StartAsync()
	r.logger.Info("task runner started", "jobs", r.scheduler.Len())
}

// Stop halts the scheduler and waits for running jobs to finish.
func (r *Runner) Stop() {
	r.scheduler.Stop()
	r.logger.Info("task runner stopped")
}

// RunNow executes a job immediately outside its schedule. Used at
// startup and in tests.
func (r *Runner) RunNow(job Job) {
	r.runJob(job)
}

func (r *Runner) runJob(job Job) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("job panicked",
				"job", job.Name(),
				"panic", fmt.Sprintf("%v", rec))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	now := r.nowFn()
	start := time.Now()
	if err := job.Run(ctx, now); err != nil {
		r.logger.Error("job failed",
			"job", job.Name(),
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err)
		return
	}
	r.logger.Debug("job completed",
		"job", job.Name(),
		"duration_ms", time.Since(start).Milliseconds())
}

package task

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aldirar/mufradat-api/internal/domain"
	"github.com/aldirar/mufradat-api/internal/store"
)

// LearnerExporter exports consistent learner-state bundles from the
// authoritative in-memory stores.
type LearnerExporter interface {
	UserIDs(ctx context.Context) ([]uuid.UUID, error)
	ExportLearner(ctx context.Context, userID uuid.UUID, now time.Time) (*domain.LearnerState, error)
}

// SnapshotJob flushes every learner's state bundle to the snapshot
// store. A failed learner is logged and skipped; snapshots are
// best-effort and the next tick retries everyone.
type SnapshotJob struct {
	exporter  LearnerExporter
	snapshots store.SnapshotStore
	logger    *slog.Logger
}

// NewSnapshotJob creates the snapshot flush job.
func NewSnapshotJob(exporter LearnerExporter, snapshots store.SnapshotStore, logger *slog.Logger) *SnapshotJob {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for SnapshotJob")
	}
	return &SnapshotJob{
		exporter:  exporter,
		snapshots: snapshots,
		logger:    logger.With(slog.String("component", "snapshot_job")),
	}
}

var _ Job = (*SnapshotJob)(nil)

// Name implements Job.
func (j *SnapshotJob) Name() string { return "learner_snapshot" }

// Run implements Job.
func (j *SnapshotJob) Run(ctx context.Context, now time.Time) error {
	userIDs, err := j.exporter.UserIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to enumerate learners: %w", err)
	}

	var failed int
	for _, userID := range userIDs {
		state, err := j.exporter.ExportLearner(ctx, userID, now)
		if err != nil {
			j.logger.Warn("failed to export learner state",
				"user_id", userID,
				"error", err)
			failed++
			continue
		}
		if err := j.snapshots.Save(ctx, state); err != nil {
			j.logger.Warn("failed to save learner snapshot",
				"user_id", userID,
				"error", err)
			failed++
		}
	}

	j.logger.Info("snapshot flush completed",
		"learners", len(userIDs),
		"failed", failed)
	return nil
}

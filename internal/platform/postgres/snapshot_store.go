// Package postgres provides the optional durability layer: learner
// state bundles are persisted as JSONB snapshots. The in-memory stores
// remain authoritative; snapshots only seed them at process start.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/aldirar/mufradat-api/internal/domain"
	"github.com/aldirar/mufradat-api/internal/store"
)

// SnapshotStore implements store.SnapshotStore on PostgreSQL.
type SnapshotStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSnapshotStore creates a PostgreSQL-backed snapshot store.
// If logger is nil, the process default is used.
func NewSnapshotStore(db *sql.DB, logger *slog.Logger) *SnapshotStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil for SnapshotStore")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SnapshotStore{
		db:     db,
		logger: logger.With(slog.String("component", "snapshot_store")),
	}
}

var _ store.SnapshotStore = (*SnapshotStore)(nil)

// Save implements store.SnapshotStore.Save by upserting the learner's
// bundle as a single JSONB row.
func (s *SnapshotStore) Save(ctx context.Context, state *domain.LearnerState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return store.NewStoreError("snapshot", "save", "failed to marshal learner state", err)
	}

	const query = `
		INSERT INTO learner_snapshots (user_id, state, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET state = EXCLUDED.state, updated_at = EXCLUDED.updated_at`

	if _, err := s.db.ExecContext(ctx, query, state.UserID, payload, state.SnapshotAt); err != nil {
		return store.NewStoreError("snapshot", "save", "failed to upsert learner snapshot", err)
	}
	return nil
}

// LoadAll implements store.SnapshotStore.LoadAll. Corrupted rows are
// logged and skipped: learner progress is best-effort and a learner
// with an unreadable snapshot simply starts fresh.
func (s *SnapshotStore) LoadAll(ctx context.Context) ([]*domain.LearnerState, error) {
	const query = `SELECT user_id, state FROM learner_snapshots`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, store.NewStoreError("snapshot", "load", "failed to query learner snapshots", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			s.logger.Warn("failed to close snapshot rows", "error", err)
		}
	}()

	var states []*domain.LearnerState
	for rows.Next() {
		var userID string
		var payload []byte
		if err := rows.Scan(&userID, &payload); err != nil {
			return nil, store.NewStoreError("snapshot", "load", "failed to scan snapshot row", err)
		}

		var state domain.LearnerState
		if err := json.Unmarshal(payload, &state); err != nil {
			s.logger.Warn("skipping corrupted learner snapshot, learner starts fresh",
				"user_id", userID,
				"error", err)
			continue
		}
		states = append(states, &state)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("snapshot", "load", "snapshot row iteration failed", err)
	}

	s.logger.Info("loaded learner snapshots", "count", len(states))
	return states, nil
}

// Ping verifies the database connection is usable.
func (s *SnapshotStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

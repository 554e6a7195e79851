package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/aldirar/mufradat-api/internal/catalog"
	"github.com/aldirar/mufradat-api/internal/config"
	"github.com/aldirar/mufradat-api/internal/domain/srs"
	"github.com/aldirar/mufradat-api/internal/events"
	"github.com/aldirar/mufradat-api/internal/platform/memory"
	"github.com/aldirar/mufradat-api/internal/platform/postgres"
	"github.com/aldirar/mufradat-api/internal/service"
	"github.com/aldirar/mufradat-api/internal/task"
)

// application holds all wired components for the server lifetime.
type application struct {
	config *config.Config
	logger *slog.Logger

	catalog *catalog.Catalog
	stores  *memory.Stores
	db      *sql.DB
	emitter *events.InMemoryEventEmitter

	masteryTracker  *service.MasteryTracker
	reviewScheduler *service.ReviewScheduler
	predictor       *service.DifficultyPredictor
	streakEngine    *service.StreakEngine
	learningService *service.LearningService
	lessonComposer  *service.LessonComposer
	notifications   *service.NotificationService

	runner *task.Runner
}

// newApplication wires every component. The in-memory stores are
// authoritative; when a database URL is configured they are seeded from
// snapshots and flushed back periodically.
func newApplication(cfg *config.Config, appLogger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: appLogger,
	}

	contentCatalog, err := catalog.LoadFromFile(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load content catalog: %w", err)
	}
	app.catalog = contentCatalog
	appLogger.Info("content catalog loaded",
		"words", len(contentCatalog.Words()),
		"phases", len(contentCatalog.Phases()))

	app.stores = memory.NewStores()
	app.emitter = events.NewInMemoryEventEmitter(appLogger)
	app.emitter.RegisterHandler(
		service.NewNotificationEventHandler(app.stores.Notifications, appLogger))

	app.masteryTracker = service.NewMasteryTracker(app.stores.Progress, appLogger)
	app.reviewScheduler = service.NewReviewScheduler(app.stores.Review, srs.NewDefaultParams(), appLogger)
	app.predictor = service.NewDifficultyPredictor(app.stores.Patterns, appLogger)
	app.streakEngine = service.NewStreakEngine(app.stores.Streaks, app.stores.Profiles, app.emitter, app.stores.Locks, appLogger)
	app.learningService = service.NewLearningService(
		app.masteryTracker,
		app.reviewScheduler,
		app.predictor,
		app.streakEngine,
		app.stores.Profiles,
		app.catalog,
		app.stores.Locks,
		appLogger,
		nil,
	)
	app.lessonComposer = service.NewLessonComposer(
		app.stores.Progress,
		app.stores.Review,
		app.catalog,
		app.catalog,
		appLogger,
	)
	app.notifications = service.NewNotificationService(app.stores.Notifications, appLogger)

	app.runner = task.NewRunner(appLogger)
	sweepJob := task.NewStreakSweepJob(app.streakEngine)
	if err := app.runner.ScheduleDaily(sweepJob, cfg.Tasks.StreakSweepAt); err != nil {
		return nil, err
	}

	if cfg.Database.URL != "" {
		if err := app.setupSnapshots(cfg); err != nil {
			return nil, err
		}
	} else {
		appLogger.Info("no database configured, running memory-only")
	}

	return app, nil
}

// setupSnapshots connects the optional durability layer: migrations,
// snapshot restore, and the periodic flush job.
func (app *application) setupSnapshots(cfg *config.Config) error {
	db, err := setupAppDatabase(cfg, app.logger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}
	app.db = db

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := postgres.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	snapshotStore := postgres.NewSnapshotStore(db, app.logger)

	states, err := snapshotStore.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load learner snapshots: %w", err)
	}
	for _, state := range states {
		if err := app.stores.ImportLearner(ctx, state); err != nil {
			// A learner with an unusable snapshot starts fresh.
			app.logger.Warn("failed to import learner snapshot",
				"user_id", state.UserID,
				"error", err)
		}
	}

	snapshotJob := task.NewSnapshotJob(app.stores, snapshotStore, app.logger)
	interval := time.Duration(cfg.Tasks.SnapshotIntervalMinutes) * time.Minute
	if err := app.runner.ScheduleEvery(snapshotJob, interval); err != nil {
		return err
	}
	return nil
}

// run starts the background jobs and the HTTP server, blocking until
// shutdown.
func (app *application) run(ctx context.Context) error {
	app.runner.Start()
	return app.startHTTPServer(ctx, app.setupRouter())
}

// cleanup releases resources on shutdown.
func (app *application) cleanup() {
	app.runner.Stop()
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}

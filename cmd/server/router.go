package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/aldirar/mufradat-api/internal/api"
	apiMiddleware "github.com/aldirar/mufradat-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	learningHandler := api.NewLearningHandler(app.learningService, app.logger)
	lessonHandler := api.NewLessonHandler(app.lessonComposer, app.logger)
	streakHandler := api.NewStreakHandler(app.streakEngine, app.logger)
	notificationHandler := api.NewNotificationHandler(app.notifications, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Use(apiMiddleware.IdentityMiddleware)

		r.Post("/attempts", learningHandler.RecordAttempt)
		r.Get("/reviews/due", learningHandler.GetDueReviews)
		r.Post("/words/{wordID}/predict", learningHandler.PredictDifficulty)

		r.Get("/lessons/daily", lessonHandler.GetDailyLesson)

		r.Get("/streaks", streakHandler.GetStreakStats)

		r.Get("/notifications", notificationHandler.ListNotifications)
		r.Delete("/notifications", notificationHandler.ClearNotifications)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}

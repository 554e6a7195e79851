package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiMiddleware "github.com/aldirar/mufradat-api/internal/api/middleware"
	"github.com/aldirar/mufradat-api/internal/catalog"
	"github.com/aldirar/mufradat-api/internal/domain"
	"github.com/aldirar/mufradat-api/internal/events"
	"github.com/aldirar/mufradat-api/internal/platform/memory"
	"github.com/aldirar/mufradat-api/internal/service"
)

// apiFixture is a full HTTP stack over in-memory stores.
type apiFixture struct {
	router http.Handler
	stores *memory.Stores
	now    time.Time
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	words := []*domain.Word{
		{ID: "w1", ArabicText: "بيت", Meaning: "house", Category: "places", Frequency: 500, Examples: []string{"The house is big."}},
		{ID: "w2", ArabicText: "صوت", Meaning: "voice", Category: "body", Frequency: 50},
	}
	phases := []*domain.Phase{
		{ID: 1, Name: "Foundations", MinWordsToUnlock: 5, MaxDailyWords: 5, VocabularyIDs: []string{"w1", "w2"}},
	}
	cat, err := catalog.New(words, phases)
	require.NoError(t, err)

	stores := memory.NewStores()
	emitter := events.NewInMemoryEventEmitter(logger)
	emitter.RegisterHandler(service.NewNotificationEventHandler(stores.Notifications, logger))

	f := &apiFixture{
		stores: stores,
		now:    time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC),
	}

	streakEngine := service.NewStreakEngine(stores.Streaks, stores.Profiles, emitter, stores.Locks, logger)
	lessonComposer := service.NewLessonComposer(stores.Progress, stores.Review, cat, cat, logger)
	learningService := service.NewLearningService(
		service.NewMasteryTracker(stores.Progress, logger),
		service.NewReviewScheduler(stores.Review, nil, logger),
		service.NewDifficultyPredictor(stores.Patterns, logger),
		streakEngine,
		stores.Profiles,
		cat,
		stores.Locks,
		logger,
		func() time.Time { return f.now },
	)

	learningHandler := NewLearningHandler(learningService, logger)
	lessonHandler := NewLessonHandler(lessonComposer, logger)
	streakHandler := NewStreakHandler(streakEngine, logger)
	notificationHandler := NewNotificationHandler(service.NewNotificationService(stores.Notifications, logger), logger)

	r := chi.NewRouter()
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
	f.router = r
	return f
}

func (f *apiFixture) do(t *testing.T, method, target string, userID string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, reader)
	if userID != "" {
		req.Header.Set(apiMiddleware.UserIDHeader, userID)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestIdentityMiddleware(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/api/streaks", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/streaks", "not-a-uuid", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/streaks", uuid.Nil.String(), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/streaks", uuid.New().String(), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecordAttempt(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)
	userID := uuid.New().String()

	rec := f.do(t, http.MethodPost, "/api/attempts", userID, map[string]any{
		"word_id":    "w1",
		"is_correct": true,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AttemptResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.MasteryLevel)
	assert.Equal(t, "none", resp.MasteryName)
	assert.Equal(t, 10, resp.XPGain)
	assert.Equal(t, 1, resp.CurrentStreak)
}

func TestRecordAttempt_MistakeFlow(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)
	userID := uuid.New().String()

	rec := f.do(t, http.MethodPost, "/api/attempts", userID, map[string]any{
		"word_id":     "w1",
		"is_correct":  false,
		"user_answer": "hous",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AttemptResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "phonetic", resp.MistakeType)
	assert.Zero(t, resp.XPGain)
}

func TestRecordAttempt_BadRequests(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)
	userID := uuid.New().String()

	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "missing word id", body: map[string]any{"is_correct": true}},
		{name: "bad mistake type", body: map[string]any{"word_id": "w1", "mistake_type": "typo"}},
		{name: "session hour too large", body: map[string]any{"word_id": "w1", "session_hour": 24}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rec := f.do(t, http.MethodPost, "/api/attempts", userID, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	// Malformed JSON body.
	req := httptest.NewRequest(http.MethodPost, "/api/attempts", bytes.NewReader([]byte("{")))
	req.Header.Set(apiMiddleware.UserIDHeader, userID)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetDueReviews(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)
	userID := uuid.New().String()

	rec := f.do(t, http.MethodPost, "/api/attempts", userID, map[string]any{
		"word_id":     "w1",
		"is_correct":  false,
		"user_answer": "hous",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// The first review lands three days out.
	f.now = f.now.AddDate(0, 0, 3)

	rec = f.do(t, http.MethodGet, "/api/reviews/due", userID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp DueReviewsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"w1"}, resp.WordIDs)
	assert.Equal(t, 1, resp.Count)

	rec = f.do(t, http.MethodGet, "/api/reviews/due?limit=abc", userID, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPredictDifficulty(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)
	userID := uuid.New().String()

	rec := f.do(t, http.MethodPost, "/api/words/w2/predict", userID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp PredictionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "w2", resp.WordID)
	assert.InDelta(t, 0.6, resp.Score, 1e-9)
	assert.Len(t, resp.Reasons, 1)

	rec = f.do(t, http.MethodPost, "/api/words/ghost/predict", userID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetDailyLesson(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)
	userID := uuid.New().String()

	rec := f.do(t, http.MethodGet, "/api/lessons/daily?phase_id=1", userID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp LessonResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.PhaseID)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "w1", resp.Items[0].Word.ID)
	assert.Equal(t, "The house is big.", resp.Items[0].Context)

	// Without a phase_id the recommended phase is used.
	rec = f.do(t, http.MethodGet, "/api/lessons/daily", userID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.PhaseID)

	rec = f.do(t, http.MethodGet, "/api/lessons/daily?phase_id=99", userID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/lessons/daily?phase_id=zero", userID, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotificationsLifecycle(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)
	userID := uuid.New()

	notification, err := domain.NewNotification(userID, "streak at risk", domain.NotificationWarning, f.now)
	require.NoError(t, err)
	require.NoError(t, f.stores.Notifications.Append(context.Background(), notification))

	rec := f.do(t, http.MethodGet, "/api/notifications", userID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []*NotificationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "streak at risk", resp[0].Message)
	assert.Equal(t, "warning", resp[0].Type)

	rec = f.do(t, http.MethodDelete, "/api/notifications", userID.String(), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/notifications", userID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp)
}

func TestStreakStats(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)
	userID := uuid.New().String()

	rec := f.do(t, http.MethodGet, "/api/streaks", userID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats service.StreakStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Zero(t, stats.CurrentStreak)
	assert.Equal(t, "Start your learning streak today!", stats.Message)

	rec = f.do(t, http.MethodPost, "/api/attempts", userID, map[string]any{
		"word_id":    "w1",
		"is_correct": true,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/streaks", userID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.CurrentStreak)
}

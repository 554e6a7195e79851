package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/aldirar/mufradat-api/internal/api/shared"
	"github.com/aldirar/mufradat-api/internal/domain"
	"github.com/aldirar/mufradat-api/internal/platform/logger"
	"github.com/aldirar/mufradat-api/internal/service"
)

// LearningHandler handles attempt, review, and prediction HTTP requests.
type LearningHandler struct {
	learningService *service.LearningService
	logger          *slog.Logger
}

// NewLearningHandler creates a new LearningHandler
func NewLearningHandler(learningService *service.LearningService, logger *slog.Logger) *LearningHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for LearningHandler")
	}
	return &LearningHandler{
		learningService: learningService,
		logger:          logger.With(slog.String("component", "learning_handler")),
	}
}

// RecordAttempt handles POST /api/attempts requests.
// It runs one answer attempt through the full engine pipeline.
func (h *LearningHandler) RecordAttempt(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req AttemptRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	sessionHour := -1
	if req.SessionHour != nil {
		sessionHour = *req.SessionHour
	}

	result, err := h.learningService.RecordAttempt(r.Context(), userID, service.AttemptRequest{
		WordID:      req.WordID,
		IsCorrect:   req.IsCorrect,
		UserAnswer:  req.UserAnswer,
		MistakeType: domain.MistakeKind(req.MistakeType),
		SessionHour: sessionHour,
	})
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to record attempt"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("attempt recorded",
		slog.String("user_id", userID.String()),
		slog.String("word_id", req.WordID),
		slog.Bool("correct", req.IsCorrect))
	shared.RespondWithJSON(w, r, http.StatusOK, attemptToResponse(result))
}

// GetDueReviews handles GET /api/reviews/due requests.
// Supports an optional ?limit= query parameter.
func (h *LearningHandler) GetDueReviews(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	wordIDs, err := h.learningService.GetDueReviews(r.Context(), userID, limit)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to get due reviews", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DueReviewsResponse{
		WordIDs: wordIDs,
		Count:   len(wordIDs),
	})
}

// PredictDifficulty handles POST /api/words/{wordID}/predict requests.
// It scores the word's expected difficulty for the learner.
func (h *LearningHandler) PredictDifficulty(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	wordID := chi.URLParam(r, "wordID")
	if wordID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Word ID is required")
		return
	}

	prediction, err := h.learningService.PredictDifficulty(r.Context(), userID, wordID)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to predict difficulty"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PredictionResponse{
		WordID:  wordID,
		Score:   prediction.Score,
		Reasons: prediction.Reasons,
	})
}

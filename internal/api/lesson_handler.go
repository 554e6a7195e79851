package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aldirar/mufradat-api/internal/api/shared"
	"github.com/aldirar/mufradat-api/internal/platform/logger"
	"github.com/aldirar/mufradat-api/internal/service"
)

// LessonHandler handles daily-lesson HTTP requests.
type LessonHandler struct {
	composer *service.LessonComposer
	logger   *slog.Logger
}

// NewLessonHandler creates a new LessonHandler
func NewLessonHandler(composer *service.LessonComposer, logger *slog.Logger) *LessonHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for LessonHandler")
	}
	return &LessonHandler{
		composer: composer,
		logger:   logger.With(slog.String("component", "lesson_handler")),
	}
}

// GetDailyLesson handles GET /api/lessons/daily requests.
// The phase comes from the optional ?phase_id= parameter; without it the
// learner's recommended phase is used.
func (h *LessonHandler) GetDailyLesson(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var phaseID int
	if raw := r.URL.Query().Get("phase_id"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid phase_id parameter")
			return
		}
		phaseID = parsed
	} else {
		phase, err := h.composer.RecommendedPhase(r.Context(), userID)
		if err != nil {
			statusCode := MapErrorToStatusCode(err)
			safeMessage := GetSafeErrorMessage(err)
			if statusCode == http.StatusInternalServerError {
				safeMessage = "Failed to determine recommended phase"
			}
			shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
			return
		}
		phaseID = phase.ID
	}

	items, err := h.composer.GetDailyLesson(r.Context(), userID, phaseID)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to compose daily lesson"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("daily lesson composed",
		slog.String("user_id", userID.String()),
		slog.Int("phase_id", phaseID),
		slog.Int("items", len(items)))
	shared.RespondWithJSON(w, r, http.StatusOK, lessonToResponse(phaseID, items))
}

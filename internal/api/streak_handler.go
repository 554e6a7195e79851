package api

import (
	"log/slog"
	"net/http"

	"github.com/aldirar/mufradat-api/internal/api/shared"
	"github.com/aldirar/mufradat-api/internal/service"
)

// StreakHandler handles streak analytics HTTP requests.
type StreakHandler struct {
	streaks *service.StreakEngine
	logger  *slog.Logger
}

// NewStreakHandler creates a new StreakHandler
func NewStreakHandler(streaks *service.StreakEngine, logger *slog.Logger) *StreakHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for StreakHandler")
	}
	return &StreakHandler{
		streaks: streaks,
		logger:  logger.With(slog.String("component", "streak_handler")),
	}
}

// GetStreakStats handles GET /api/streaks requests.
// Learners without streak history get zeroed stats, not an error.
func (h *StreakHandler) GetStreakStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	stats, err := h.streaks.GetAnalytics(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to get streak stats", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, stats)
}

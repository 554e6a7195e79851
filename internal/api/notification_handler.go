package api

import (
	"log/slog"
	"net/http"

	"github.com/aldirar/mufradat-api/internal/api/shared"
	"github.com/aldirar/mufradat-api/internal/service"
)

// NotificationHandler handles notification inbox HTTP requests.
type NotificationHandler struct {
	notifications *service.NotificationService
	logger        *slog.Logger
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notifications *service.NotificationService, logger *slog.Logger) *NotificationHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for NotificationHandler")
	}
	return &NotificationHandler{
		notifications: notifications,
		logger:        logger.With(slog.String("component", "notification_handler")),
	}
}

// ListNotifications handles GET /api/notifications requests.
func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	notifications, err := h.notifications.List(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to list notifications", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, notificationsToResponse(notifications))
}

// ClearNotifications handles DELETE /api/notifications requests.
func (h *NotificationHandler) ClearNotifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	if err := h.notifications.Clear(r.Context(), userID); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to clear notifications", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

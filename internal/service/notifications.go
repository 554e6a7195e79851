package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/aldirar/mufradat-api/internal/domain"
	"github.com/aldirar/mufradat-api/internal/events"
	"github.com/aldirar/mufradat-api/internal/store"
)

// NotificationService exposes the learner-facing notification inbox.
type NotificationService struct {
	notifications store.NotificationStore
	logger        *slog.Logger
}

// NewNotificationService creates a NotificationService.
func NewNotificationService(notifications store.NotificationStore, logger *slog.Logger) *NotificationService {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for NotificationService")
	}
	return &NotificationService{
		notifications: notifications,
		logger:        logger.With(slog.String("component", "notification_service")),
	}
}

// List returns the learner's pending notifications in insertion order.
func (s *NotificationService) List(ctx context.Context, userID uuid.UUID) ([]*domain.Notification, error) {
	out, err := s.notifications.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return out, nil
}

// Clear removes all of the learner's notifications. Notifications are
// transient: once the client has shown them, they are gone.
func (s *NotificationService) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.notifications.Clear(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear notifications: %w", err)
	}
	return nil
}

// NotificationEventHandler persists notification events into the
// notification store. It is registered with the event emitter at
// application startup.
type NotificationEventHandler struct {
	notifications store.NotificationStore
	logger        *slog.Logger
}

// NewNotificationEventHandler creates a NotificationEventHandler.
func NewNotificationEventHandler(notifications store.NotificationStore, logger *slog.Logger) *NotificationEventHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for NotificationEventHandler")
	}
	return &NotificationEventHandler{
		notifications: notifications,
		logger:        logger.With(slog.String("component", "notification_event_handler")),
	}
}

var _ events.EventHandler = (*NotificationEventHandler)(nil)

// HandleEvent stores the notification described by the event. Events of
// other types are ignored.
func (h *NotificationEventHandler) HandleEvent(ctx context.Context, event *events.Event) error {
	if event.Type != events.EventTypeNotification {
		h.logger.Debug("ignoring event with unsupported type",
			"event_type", event.Type,
			"event_id", event.ID)
		return nil
	}

	var payload events.NotificationPayload
	if err := event.UnmarshalPayload(&payload); err != nil {
		return fmt.Errorf("failed to unmarshal notification payload: %w", err)
	}

	notification, err := domain.NewNotification(
		payload.UserID,
		payload.Message,
		domain.NotificationType(payload.Kind),
		payload.ScheduledTime,
	)
	if err != nil {
		return fmt.Errorf("invalid notification payload: %w", err)
	}

	if err := h.notifications.Append(ctx, notification); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}

	h.logger.Debug("notification stored",
		"user_id", payload.UserID,
		"type", payload.Kind)
	return nil
}

package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// NotificationType categorizes user-facing notifications.
type NotificationType string

// Known notification types.
const (
	NotificationWarning     NotificationType = "warning"
	NotificationCelebration NotificationType = "celebration"
	NotificationMilestone   NotificationType = "milestone"
)

// ErrEmptyNotificationMessage is returned when a notification has no message.
var ErrEmptyNotificationMessage = errors.New("notification message cannot be empty")

// Notification is a transient user-facing message. Notifications live in
// memory until the learner-facing client clears them explicitly.
type Notification struct {
	ID            uuid.UUID        `json:"id"`
	UserID        uuid.UUID        `json:"user_id"`
	Message       string           `json:"message"`
	Type          NotificationType `json:"type"`
	ScheduledTime time.Time        `json:"scheduled_time"`
}

// NewNotification creates a notification scheduled for the given time.
func NewNotification(userID uuid.UUID, message string, kind NotificationType, at time.Time) (*Notification, error) {
	n := &Notification{
		ID:            uuid.New(),
		UserID:        userID,
		Message:       message,
		Type:          kind,
		ScheduledTime: at,
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return n, nil
}

// Validate checks if the Notification has valid data.
func (n *Notification) Validate() error {
	if n.UserID == uuid.Nil {
		return ErrInvalidID
	}
	if n.Message == "" {
		return ErrEmptyNotificationMessage
	}
	switch n.Type {
	case NotificationWarning, NotificationCelebration, NotificationMilestone:
	default:
		return ErrInvalidNotificationType
	}
	return nil
}

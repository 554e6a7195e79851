// Package events decouples the engine's state machines from their
// side effects: the streak engine publishes notification events without
// knowing who persists or delivers them.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types emitted by the engine.
const (
	// EventTypeNotification requests that a user-facing notification be
	// recorded for a learner.
	EventTypeNotification = "notification"
)

// Event is a loosely-coupled message from one component to its
// handlers. The payload is serialized JSON so emitters and handlers
// share no concrete types beyond this envelope.
type Event struct {
	// ID is a unique identifier for this event.
	ID uuid.UUID `json:"id"`

	// Type indicates what kind of event this is.
	Type string `json:"type"`

	// Payload contains the event-specific data serialized as JSON.
	Payload json.RawMessage `json:"payload"`

	// CreatedAt is the timestamp when the event was created.
	CreatedAt time.Time `json:"created_at"`
}

// UnmarshalPayload decodes the event payload into the provided structure.
func (e *Event) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// NewEvent creates an event with the specified type and payload.
func NewEvent(eventType string, payload interface{}) (*Event, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Event{
		ID:        uuid.New(),
		Type:      eventType,
		Payload:   payloadBytes,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// NotificationPayload is the payload of an EventTypeNotification event.
type NotificationPayload struct {
	UserID        uuid.UUID `json:"user_id"`
	Message       string    `json:"message"`
	Kind          string    `json:"kind"` // A domain.NotificationType value
	ScheduledTime time.Time `json:"scheduled_time"`
}

// EventHandler is implemented by components that process events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *Event) error
}

// EventEmitter is implemented by components that publish events without
// direct knowledge of their handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	EmitEvent(ctx context.Context, event *Event) error
}

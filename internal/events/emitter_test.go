package events

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	events []*Event
	err    error
}

func (h *recordingHandler) HandleEvent(ctx context.Context, event *Event) error {
	h.events = append(h.events, event)
	return h.err
}

func newTestEmitter() *InMemoryEventEmitter {
	return NewInMemoryEventEmitter(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestNewEvent_RoundTripsPayload(t *testing.T) {
	t.Parallel()

	payload := NotificationPayload{
		UserID:        uuid.New(),
		Message:       "hello",
		Kind:          "warning",
		ScheduledTime: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	event, err := NewEvent(EventTypeNotification, payload)
	require.NoError(t, err)
	assert.Equal(t, EventTypeNotification, event.Type)
	assert.NotEqual(t, uuid.Nil, event.ID)

	var decoded NotificationPayload
	require.NoError(t, event.UnmarshalPayload(&decoded))
	assert.Equal(t, payload, decoded)
}

func TestInMemoryEventEmitter_DeliversToAllHandlers(t *testing.T) {
	t.Parallel()

	emitter := newTestEmitter()
	first := &recordingHandler{}
	second := &recordingHandler{}
	emitter.RegisterHandler(first)
	emitter.RegisterHandler(second)

	event, err := NewEvent(EventTypeNotification, NotificationPayload{Message: "hi"})
	require.NoError(t, err)
	require.NoError(t, emitter.EmitEvent(context.Background(), event))

	require.Len(t, first.events, 1)
	require.Len(t, second.events, 1)
	assert.Equal(t, event.ID, first.events[0].ID)
}

func TestInMemoryEventEmitter_HandlerFailureDoesNotStopDelivery(t *testing.T) {
	t.Parallel()

	emitter := newTestEmitter()
	failing := &recordingHandler{err: errors.New("broken handler")}
	healthy := &recordingHandler{}
	emitter.RegisterHandler(failing)
	emitter.RegisterHandler(healthy)

	event, err := NewEvent(EventTypeNotification, NotificationPayload{Message: "hi"})
	require.NoError(t, err)

	err = emitter.EmitEvent(context.Background(), event)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken handler")
	assert.Len(t, healthy.events, 1, "later handlers still receive the event")
}

func TestInMemoryEventEmitter_NoHandlers(t *testing.T) {
	t.Parallel()

	emitter := newTestEmitter()
	event, err := NewEvent(EventTypeNotification, NotificationPayload{Message: "hi"})
	require.NoError(t, err)
	assert.NoError(t, emitter.EmitEvent(context.Background(), event))
}

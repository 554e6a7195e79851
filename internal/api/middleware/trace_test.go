package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldirar/mufradat-api/internal/api/shared"
	"github.com/aldirar/mufradat-api/internal/platform/logger"
)

// No t.Parallel: swaps the process-default logger.
func TestTraceMiddleware_AttachesRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer slog.SetDefault(previous)

	fallback := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))

	var seenTraceID string
	handler := TraceMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTraceID = shared.GetTraceID(r.Context())

		// The context carries the trace-enriched logger, not the fallback.
		log := logger.FromContextOrDefault(r.Context(), fallback)
		assert.NotSame(t, fallback, log)
		log.Info("handled")

		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.NotEmpty(t, seenTraceID)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	assert.Equal(t, "handled", entry["msg"])
	assert.Equal(t, seenTraceID, entry["trace_id"])
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/flashdeck/internal/api/shared"
	"github.com/phrazzld/flashdeck/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrace(t *testing.T) {
	log, buf := logger.NewTestLogger()

	var seenTraceID string
	handler := Trace(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTraceID = shared.GetTraceID(r.Context())
		logger.FromContext(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/listDecks", nil))

	require.NotEmpty(t, seenTraceID)
	assert.Equal(t, seenTraceID, rec.Header().Get(shared.TraceIDHeader))
	assert.Equal(t, http.StatusTeapot, rec.Code)

	entries, err := buf.Entries()
	require.NoError(t, err)

	var inside, completed map[string]any
	for _, e := range entries {
		switch e["msg"] {
		case "inside handler":
			inside = e
		case "request completed":
			completed = e
		}
	}
	require.NotNil(t, inside, "handler log should use the request logger")
	assert.Equal(t, seenTraceID, inside["trace_id"])
	assert.Equal(t, "/api/listDecks", inside["path"])

	require.NotNil(t, completed)
	assert.EqualValues(t, http.StatusTeapot, completed["status"])
}

func TestTrace_DefaultStatus(t *testing.T) {
	log, buf := logger.NewTestLogger()

	handler := Trace(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	entries, err := buf.Entries()
	require.NoError(t, err)
	last := entries[len(entries)-1]
	assert.Equal(t, "request completed", last["msg"])
	assert.EqualValues(t, http.StatusOK, last["status"])
}

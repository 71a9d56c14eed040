package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bao-nguyen-khac/tour-website-sub000/internal/middleware"
)

// serveLogged runs h behind the SlogLogger middleware and returns the single
// JSON log line it produced.
func serveLogged(t *testing.T, h http.HandlerFunc, path string) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	req := httptest.NewRequest(http.MethodGet, path, nil)
	// Simulate chimiddleware.RequestID with a known ID.
	req = req.WithContext(context.WithValue(req.Context(), chimiddleware.RequestIDKey, "test-req-id"))

	rec := httptest.NewRecorder()
	middleware.NewSlogLogger(logger)(h).ServeHTTP(rec, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestSlogLogger_logsRequestFields(t *testing.T) {
	entry := serveLogged(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`)) //nolint:errcheck
	}, "/healthz")

	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/healthz", entry["path"])
	assert.EqualValues(t, http.StatusOK, entry["status"])
	assert.EqualValues(t, len(`{"status":"ok"}`), entry["bytes"])
	assert.Equal(t, "test-req-id", entry["request_id"])
	assert.NotNil(t, entry["duration_ms"])
}

func TestSlogLogger_serverErrorLoggedAtWarn(t *testing.T) {
	entry := serveLogged(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, "/insights/destinations/x")

	assert.Equal(t, "WARN", entry["level"])
	assert.EqualValues(t, http.StatusInternalServerError, entry["status"])
}

func TestSlogLogger_clientErrorStaysInfo(t *testing.T) {
	entry := serveLogged(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}, "/insights/destinations/x")

	assert.Equal(t, "INFO", entry["level"])
	assert.EqualValues(t, http.StatusNotFound, entry["status"])
}

func TestSlogLogger_implicitStatusIs200(t *testing.T) {
	entry := serveLogged(t, func(w http.ResponseWriter, r *http.Request) {}, "/healthz")

	assert.EqualValues(t, http.StatusOK, entry["status"])
	assert.EqualValues(t, 0, entry["bytes"])
}

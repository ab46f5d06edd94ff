package middleware_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/twinboard/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/twinboard/internal/platform/logging"
)

// records decodes every JSON log line written to buf, keyed by message.
func records(t *testing.T, buf *bytes.Buffer) map[string]map[string]any {
	t.Helper()

	out := map[string]map[string]any{}
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		msg, _ := rec[slog.MessageKey].(string)
		out[msg] = rec
	}
	return out
}

func jsonLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// loggedRouter serves /api/v1/levels/{name} behind RequestID and Logging.
func loggedRouter(buf *bytes.Buffer, status int) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID(), middleware.Logging(jsonLogger(buf)))
	r.Get("/api/v1/levels/{name}", func(w http.ResponseWriter, r *http.Request) {
		logging.FromContext(r.Context()).InfoContext(r.Context(), "level lookup", slog.String("level", chi.URLParam(r, "name")))
		w.WriteHeader(status)
		_, _ = w.Write([]byte("{}"))
	})
	return r
}

func TestLogging_CompletionRecord(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	req := httptest.NewRequest(http.MethodGet, "/api/v1/levels/crossing", http.NoBody)
	req.Header.Set("X-Request-ID", "req-log")
	loggedRouter(&buf, http.StatusOK).ServeHTTP(httptest.NewRecorder(), req)

	recs := records(t, &buf)
	require.Contains(t, recs, "request started")
	require.Contains(t, recs, "request completed")

	done := recs["request completed"]
	assert.Equal(t, "INFO", done[slog.LevelKey])
	assert.Equal(t, "req-log", done["request_id"])
	assert.Equal(t, http.MethodGet, done["method"])
	assert.Equal(t, "/api/v1/levels/crossing", done["path"])
	assert.Equal(t, "/api/v1/levels/{name}", done["route"])
	assert.InDelta(t, http.StatusOK, done["status"], 0)
	assert.InDelta(t, 2, done["bytes"], 0)
	assert.Contains(t, done, "duration")
}

func TestLogging_HandlerLoggerCarriesRequestID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	req := httptest.NewRequest(http.MethodGet, "/api/v1/levels/tutorial", http.NoBody)
	req.Header.Set("X-Request-ID", "req-ctx")
	loggedRouter(&buf, http.StatusOK).ServeHTTP(httptest.NewRecorder(), req)

	lookup := records(t, &buf)["level lookup"]
	require.NotNil(t, lookup)
	assert.Equal(t, "req-ctx", lookup["request_id"])
	assert.Equal(t, "tutorial", lookup["level"])
}

func TestLogging_LevelFollowsStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   string
	}{
		{http.StatusOK, "INFO"},
		{http.StatusNoContent, "INFO"},
		{http.StatusNotFound, "WARN"},
		{http.StatusUnprocessableEntity, "WARN"},
		{http.StatusServiceUnavailable, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			loggedRouter(&buf, tt.status).ServeHTTP(httptest.NewRecorder(),
				httptest.NewRequest(http.MethodGet, "/api/v1/levels/x", http.NoBody))

			assert.Equal(t, tt.want, records(t, &buf)["request completed"][slog.LevelKey])
		})
	}
}

func TestLogging_StartRecordOnlyAtDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	handler := middleware.Logging(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/loop", http.NoBody))

	recs := records(t, &buf)
	assert.NotContains(t, recs, "request started")
	assert.Contains(t, recs, "request completed")
}

func TestLogging_RedactsCredentialHeaders(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(jsonLogger(&buf))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/levels/crossing/import", http.NoBody)
	req.Header.Set("X-API-Key", "lr-super-secret")
	req.Header.Set("Authorization", "Bearer lr-token")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.NotContains(t, buf.String(), "lr-super-secret")
	assert.NotContains(t, buf.String(), "lr-token")
	assert.Contains(t, records(t, &buf), "request started")
}

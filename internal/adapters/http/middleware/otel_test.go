package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/twinboard/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/twinboard/internal/platform/telemetry"
)

// These tests replace the global TracerProvider, so none of them run in parallel.

func setupTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	return exporter
}

// tracedRouter mounts the middleware on a chi router with the given routes,
// each answering with its status.
func tracedRouter(metrics *telemetry.Metrics, routes map[string]int) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.OpenTelemetry(metrics))
	for pattern, status := range routes {
		r.Get(pattern, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
		})
	}
	return r
}

func spanAttrs(s sdktrace.ReadOnlySpan) map[string]any {
	attrs := map[string]any{}
	for _, a := range s.Attributes() {
		attrs[string(a.Key)] = a.Value.AsInterface()
	}
	return attrs
}

func TestOpenTelemetry_Spans(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantName   string
		wantRoute  string
		wantStatus int64
		wantError  bool
	}{
		{
			name:       "routed request",
			path:       "/api/v1/levels/crossing",
			wantName:   "HTTP GET /api/v1/levels/{name}",
			wantRoute:  "/api/v1/levels/{name}",
			wantStatus: http.StatusOK,
		},
		{
			name:       "server error marks span",
			path:       "/api/v1/frame",
			wantName:   "HTTP GET /api/v1/frame",
			wantRoute:  "/api/v1/frame",
			wantStatus: http.StatusInternalServerError,
			wantError:  true,
		},
		{
			name:       "unrouted request uses raw path",
			path:       "/nowhere",
			wantName:   "HTTP GET /nowhere",
			wantRoute:  "/nowhere",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporter := setupTracer(t)
			h := tracedRouter(nil, map[string]int{
				"/api/v1/levels/{name}": http.StatusOK,
				"/api/v1/frame":         http.StatusInternalServerError,
			})

			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, http.NoBody))

			spans := exporter.GetSpans().Snapshots()
			require.Len(t, spans, 1)
			s := spans[0]

			assert.Equal(t, tt.wantName, s.Name())
			assert.Equal(t, trace.SpanKindServer, s.SpanKind())
			attrs := spanAttrs(s)
			assert.Equal(t, http.MethodGet, attrs["http.method"])
			assert.Equal(t, tt.wantRoute, attrs["http.route"])
			assert.Equal(t, tt.wantStatus, attrs["http.status_code"])
			if tt.wantError {
				assert.Equal(t, codes.Error, s.Status().Code)
			} else {
				assert.NotEqual(t, codes.Error, s.Status().Code)
			}
		})
	}
}

func TestOpenTelemetry_ContinuesIncomingTrace(t *testing.T) {
	exporter := setupTracer(t)
	h := tracedRouter(nil, map[string]int{"/api/v1/loop": http.StatusOK})

	const traceID = "4bf92f3577b34da6a3ce929d0e0e4736"
	req := httptest.NewRequest(http.MethodGet, "/api/v1/loop", http.NoBody)
	req.Header.Set("traceparent", "00-"+traceID+"-00f067aa0ba902b7-01")
	h.ServeHTTP(httptest.NewRecorder(), req)

	spans := exporter.GetSpans().Snapshots()
	require.Len(t, spans, 1)
	assert.Equal(t, traceID, spans[0].SpanContext().TraceID().String())
	assert.True(t, spans[0].Parent().IsRemote())
}

func TestOpenTelemetry_RecordsServerMetrics(t *testing.T) {
	setupTracer(t)

	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })
	metrics, err := telemetry.NewMetrics(mp, "twinboard-test")
	require.NoError(t, err)

	h := tracedRouter(metrics, map[string]int{"/api/v1/levels/{name}": http.StatusOK})
	for _, name := range []string{"tutorial", "crossing"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/levels/"+name, http.NoBody))
	}

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	var points []metricdata.DataPoint[int64]
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == "http.server.request.total" {
				sum, ok := m.Data.(metricdata.Sum[int64])
				require.True(t, ok)
				points = append(points, sum.DataPoints...)
			}
		}
	}

	require.Len(t, points, 1, "both requests share one route series")
	assert.Equal(t, int64(2), points[0].Value)
	route, _ := points[0].Attributes.Value(telemetry.AttrHTTPRoute)
	assert.Equal(t, "/api/v1/levels/{name}", route.AsString())
}

func TestOpenTelemetry_NilMetrics(t *testing.T) {
	setupTracer(t)

	handler := middleware.OpenTelemetry(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v1/levels/current", http.NoBody))
	})
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

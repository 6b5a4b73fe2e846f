package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"realestate/internal/platform/metrics"
	"realestate/pkg/requestcontext"
)

type MiddlewareSuite struct {
	suite.Suite
	logBuf *bytes.Buffer
	logger *slog.Logger
}

func TestMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(MiddlewareSuite))
}

func (s *MiddlewareSuite) SetupTest() {
	s.logBuf = &bytes.Buffer{}
	s.logger = slog.New(slog.NewJSONHandler(s.logBuf, nil))
}

func (s *MiddlewareSuite) TestRequestID() {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestcontext.RequestID(r.Context())
	}))

	s.Run("keeps caller id", func() {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "req-123")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		s.Equal("req-123", seen)
		s.Equal("req-123", rec.Header().Get(RequestIDHeader))
	})

	s.Run("generates id when absent", func() {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		s.NotEmpty(seen)
		s.Equal(seen, rec.Header().Get(RequestIDHeader))
	})
}

func (s *MiddlewareSuite) TestRecovery() {
	h := Recovery(s.logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "internal_error")
	s.NotContains(rec.Body.String(), "boom")
	s.Contains(s.logBuf.String(), "panic recovered")
}

func (s *MiddlewareSuite) TestTimeoutSetsDeadline() {
	var deadline time.Time
	var ok bool
	h := Timeout(50 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deadline, ok = r.Context().Deadline()
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	s.True(ok)
	s.WithinDuration(time.Now().Add(50*time.Millisecond), deadline, time.Second)
}

func (s *MiddlewareSuite) TestTimeoutCancelsAfterHandler() {
	var ctx context.Context
	h := Timeout(time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx = r.Context()
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	s.ErrorIs(ctx.Err(), context.Canceled)
}

func (s *MiddlewareSuite) TestLoggerWritesStatus() {
	h := Logger(s.logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/properties", nil))

	s.Contains(s.logBuf.String(), `"status":418`)
	s.Contains(s.logBuf.String(), `"path":"/api/v1/properties"`)
}

func (s *MiddlewareSuite) TestLoggerMeasuresFromRequestTime() {
	h := Logger(s.logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties", nil)
	req = req.WithContext(requestcontext.WithTime(req.Context(), time.Now().Add(-3*time.Second)))
	h.ServeHTTP(httptest.NewRecorder(), req)

	var entry struct {
		DurationMS int64 `json:"duration_ms"`
	}
	s.Require().NoError(json.Unmarshal(s.logBuf.Bytes(), &entry))
	s.GreaterOrEqual(entry.DurationMS, int64(3000))
}

func (s *MiddlewareSuite) TestLatencyMiddlewareUsesRoutePattern() {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	r := chi.NewRouter()
	r.Use(LatencyMiddleware(m))
	r.Get("/properties/{id}", func(w http.ResponseWriter, r *http.Request) {})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/properties/abc", nil))

	s.Equal(1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues(http.MethodGet, "/properties/{id}", "200")))
}

func (s *MiddlewareSuite) TestCORSAllowsConfiguredOrigin() {
	h := CORS([]string{"*"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties", nil)
	req.Header.Set("Origin", "https://frontend.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	s.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))
}

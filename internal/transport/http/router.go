// Package httptransport assembles the public HTTP surface: the shared
// middleware chain, operational endpoints and every module's routes.
package httptransport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"realestate/internal/platform/metrics"
	"realestate/internal/platform/middleware"
	"realestate/pkg/platform/httputil"
	"realestate/pkg/platform/middleware/requesttime"
	"realestate/pkg/platform/sentinel"
)

// Registrar mounts a module's routes.
type Registrar interface {
	Register(r chi.Router)
}

// HealthChecker reports whether a backing dependency is reachable. Errors
// matching sentinel.ErrUnavailable are served as 503, anything else as 500.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type RouterConfig struct {
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer
	RequestTimeout time.Duration
	AllowedOrigins []string
	Health         HealthChecker
}

// NewRouter wires the middleware chain, /health, /metrics and the modules.
func NewRouter(cfg RouterConfig, modules ...Registrar) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.LatencyMiddleware(cfg.Metrics))
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	r.Get("/health", healthHandler(cfg.Health))
	if cfg.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	for _, m := range modules {
		m.Register(r)
	}
	return r
}

func healthHandler(checker HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if checker != nil {
			if err := checker.Ping(r.Context()); err != nil {
				if errors.Is(err, sentinel.ErrUnavailable) {
					httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
					return
				}
				httputil.WriteJSON(w, http.StatusInternalServerError, map[string]string{"status": "error"})
				return
			}
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

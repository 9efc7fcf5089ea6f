package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mtfuji-paragliding/fujipsystem/internal/api"
	"mtfuji-paragliding/fujipsystem/internal/logging"
	"mtfuji-paragliding/fujipsystem/internal/middleware"
)

// Options configures the router.
type Options struct {
	CORSOrigins      []string
	LookupRatePerSec int
	LookupBurst      int
	// Gatherer backs /metrics; nil means the default Prometheus registry.
	Gatherer prometheus.Gatherer
}

func RegisterRoutes(deps *api.Dependencies, opts Options) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logging)
	r.Use(middleware.MetricsMiddleware(deps.Metrics))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	handlers := api.NewHandlers(deps)

	r.Get("/healthCheck", handlers.HealthCheck())

	metricsHandler := promhttp.Handler()
	if opts.Gatherer != nil {
		metricsHandler = promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})
	}
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	limiter := middleware.NewIPRateLimiter(opts.LookupRatePerSec, opts.LookupBurst)
	RegisterAPIRoutes(r, handlers, deps, limiter)

	logging.Info("Router initialized with metrics and logging middleware")
	return r
}

package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	reqctx "mtfuji-paragliding/fujipsystem/internal/context"
	"mtfuji-paragliding/fujipsystem/internal/metrics"
)

const requestIDHeader = "X-Request-ID"

// MetricsMiddleware records HTTP metrics for each request
func MetricsMiddleware(metricsReg *metrics.MetricsRegistry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			// The pattern is only complete once routing has finished.
			routePattern := routePatternOf(r)
			metricsReg.HTTPRequestsTotal.WithLabelValues(
				routePattern,
				r.Method,
				strconv.Itoa(wrapped.statusCode),
			).Inc()

			metricsReg.HTTPRequestDuration.WithLabelValues(
				routePattern,
				r.Method,
			).Observe(time.Since(start).Seconds())
		})
	}
}

// InFlightMiddleware tracks requests currently being served, per path prefix group.
func InFlightMiddleware(metricsReg *metrics.MetricsRegistry, group string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			metricsReg.HTTPRequestsInFlight.WithLabelValues(group).Inc()
			defer metricsReg.HTTPRequestsInFlight.WithLabelValues(group).Dec()
			next.ServeHTTP(w, r)
		})
	}
}

// RequestIDMiddleware adds a request ID to the context if not present
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(reqctx.SetRequestID(r.Context(), requestID)))
	})
}

func routePatternOf(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unknown"
}

// statusRecorder wraps http.ResponseWriter to capture the status code
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (r *statusRecorder) WriteHeader(code int) {
	if !r.written {
		r.statusCode = code
		r.written = true
		r.ResponseWriter.WriteHeader(code)
	}
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if !r.written {
		r.statusCode = http.StatusOK
		r.written = true
	}
	return r.ResponseWriter.Write(b)
}

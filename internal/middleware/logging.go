package middleware

import (
	"net"
	"net/http"
	"time"

	reqctx "mtfuji-paragliding/fujipsystem/internal/context"
	"mtfuji-paragliding/fujipsystem/internal/logging"
)

// Logging writes one structured line per request.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(lw, r)

		fields := []any{
			"request_id", reqctx.GetRequestID(r.Context()),
			"method", r.Method,
			"endpoint", routePatternOf(r),
			"status_code", lw.statusCode,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_ip", clientIP(r),
		}
		if lw.statusCode >= http.StatusInternalServerError {
			logging.Error("HTTP request failed", fields...)
			return
		}
		logging.Info("HTTP request completed", fields...)
	})
}

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

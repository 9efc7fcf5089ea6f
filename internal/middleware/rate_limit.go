package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"mtfuji-paragliding/fujipsystem/internal/common"
	"mtfuji-paragliding/fujipsystem/internal/logging"
)

// IPRateLimiter keeps one token bucket per client IP.
type IPRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
	allowed  map[string]bool
}

// NewIPRateLimiter allows perSecond requests per IP with the given burst. Loopback
// addresses are never limited.
func NewIPRateLimiter(perSecond, burst int) *IPRateLimiter {
	return &IPRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(perSecond),
		burst:    burst,
		allowed: map[string]bool{
			"127.0.0.1": true,
			"::1":       true,
		},
	}
}

func (l *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if limiter, exists := l.limiters[ip]; exists {
		return limiter
	}
	limiter := rate.NewLimiter(l.limit, l.burst)
	l.limiters[ip] = limiter
	return limiter
}

// Middleware rejects requests over the limit with 429.
func (l *IPRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if l.allowed[ip] {
			next.ServeHTTP(w, r)
			return
		}

		if !l.getLimiter(ip).Allow() {
			logging.Warn("rate limit exceeded", "remote_ip", ip, "path", r.URL.Path)
			common.RespondError(w, time.Now(), nil, "too many requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

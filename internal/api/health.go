package api

import (
	"context"
	"net/http"
	"time"

	"mtfuji-paragliding/fujipsystem/internal/calendar"
	"mtfuji-paragliding/fujipsystem/internal/models/entities"
)

const healthTimeout = 2 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheck handles GET /healthCheck
//
// @Summary Health check
// @Description Reports Postgres and, when configured, Redis connectivity.
// @Tags Misc
// @Success 200 {object} entities.HealthCheckResponse
// @Failure 503 {object} entities.HealthCheckResponse
// @Router /healthCheck [get]
func (h *Handlers) HealthCheck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		services := make(map[string]entities.ServiceStatus)
		services["postgres"] = check(ctx, h.deps.SQLX.PingContext, "Postgres Connected")

		if redis, ok := h.deps.Services.Cache.(pinger); ok {
			services["redis"] = check(ctx, redis.Ping, "Redis Connected")
		}

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		resp := entities.HealthCheckResponse{
			Services:     services,
			Status:       overallStatus,
			BusinessDate: calendar.FormatDate(h.deps.Services.Contracts.Today()),
			UpSince:      h.deps.UpSince,
			Uptime:       time.Since(h.deps.UpSince).Round(time.Second).String(),
		}

		code := http.StatusOK
		if overallStatus != "ok" {
			code = http.StatusServiceUnavailable
		}
		writeHealth(w, code, resp)
	}
}

func check(ctx context.Context, ping func(context.Context) error, okDetails string) entities.ServiceStatus {
	if err := ping(ctx); err != nil {
		return entities.ServiceStatus{Status: "down", Details: err.Error()}
	}
	return entities.ServiceStatus{Status: "ok", Details: okDetails}
}

package routes

import (
	"github.com/go-chi/chi/v5"

	"mtfuji-paragliding/fujipsystem/internal/api"
	"mtfuji-paragliding/fujipsystem/internal/middleware"
)

// RegisterAPIRoutes registers the /api routes. Member lookups sit behind the per-IP
// limiter since they accept typed member numbers.
func RegisterAPIRoutes(r chi.Router, handlers *api.Handlers, deps *api.Dependencies, limiter *middleware.IPRateLimiter) {
	r.Route("/api", func(a chi.Router) {
		a.Use(middleware.InFlightMiddleware(deps.Metrics, "api"))

		a.Group(func(lookup chi.Router) {
			lookup.Use(limiter.Middleware)
			lookup.Post("/cont/lookup", handlers.MemberLookup())
			lookup.Post("/work/lookup", handlers.MemberLookup())
			lookup.Post("/io/lookup", handlers.IoLookup())
		})

		// Contractor daily reports
		a.Route("/cont", func(cont chi.Router) {
			cont.Post("/register", handlers.RegisterContract())
			cont.Get("/list", handlers.ListContracts())
			cont.Get("/{id}", handlers.GetContract())
			cont.Put("/{id}", handlers.UpdateContract())
		})

		// Office views
		a.Route("/cont_info", func(info chi.Router) {
			info.Get("/summary", handlers.ContractSummary())
			info.Get("/flight_days", handlers.ContractFlightDays())
			info.Get("/detail/{uuid}", handlers.ContractDetail())
			info.Get("/export", handlers.ExportContracts())
			info.Get("/work_monthly", handlers.WorkMonthly())
		})

		a.Route("/work", func(work chi.Router) {
			work.Post("/schedules", handlers.WorkSchedules())
			work.Post("/save", handlers.WorkSave())
			work.Post("/cleanup", handlers.TriggerCleanup())
		})

		a.Get("/jobs/status", handlers.JobStatus())

		a.Post("/io/checkin", handlers.IoCheckin())
		a.Get("/io/today", handlers.IoToday())

		a.Post("/apply_exp", handlers.ApplyExperience())
		a.Post("/apply_exp_e", handlers.ApplyExperience())
	})
}

package entities

import "time"

type ServiceStatus struct {
	Status  string `json:"status"`
	Details string `json:"details"`
}

// HealthCheckResponse is served bare (no envelope) so probes can read Status.
// BusinessDate is "today" in the configured school time zone.
type HealthCheckResponse struct {
	Status       string                   `json:"status"`
	Services     map[string]ServiceStatus `json:"services"`
	BusinessDate string                   `json:"business_date"`
	UpSince      time.Time                `json:"up_since"`
	Uptime       string                   `json:"uptime"`
}

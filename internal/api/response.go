package api

import (
	"encoding/json"
	"net/http"

	"mtfuji-paragliding/fujipsystem/internal/logging"
	"mtfuji-paragliding/fujipsystem/internal/models/entities"
)

// writeHealth writes the health body outside the usual envelope so probes can read
// the status directly.
func writeHealth(w http.ResponseWriter, statusCode int, resp entities.HealthCheckResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.Error("health encode failed", "error", err)
	}
}

package common

import (
	"encoding/json"
	"net/http"
	"time"

	"mtfuji-paragliding/fujipsystem/internal/constants"
	"mtfuji-paragliding/fujipsystem/internal/logging"
	"mtfuji-paragliding/fujipsystem/internal/models/dtos"
)

// RespondSuccess sends a standardized JSON success response.
func RespondSuccess(w http.ResponseWriter, initTime time.Time, message string, data any, statusCode ...int) {
	code := http.StatusOK
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	response := dtos.APIResponse{
		Status:       string(constants.APIStatusOk),
		Message:      message,
		ResponseTime: GetResponseTime(initTime),
		Data:         data,
	}

	writeJSON(w, code, response)
}

// RespondError sends a standardized JSON error response.
func RespondError(w http.ResponseWriter, initTime time.Time, err error, message string, statusCode ...int) {
	code := http.StatusInternalServerError
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	msg := message
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}

	response := dtos.APIResponse{
		Status:       string(constants.APIStatusError),
		Message:      msg,
		ResponseTime: GetResponseTime(initTime),
	}

	writeJSON(w, code, response)
}

// RespondAppError maps err onto its status code and a client-safe message. Storage
// failures are logged with their cause.
func RespondAppError(w http.ResponseWriter, r *http.Request, initTime time.Time, err error) {
	code := HTTPStatus(err)
	if code >= http.StatusInternalServerError {
		logging.Error("request failed", "path", r.URL.Path, "error", err)
	}
	RespondError(w, initTime, nil, PublicMessage(err), code)
}

// writeJSON marshals data and writes it to the HTTP response.
func writeJSON(w http.ResponseWriter, code int, body dtos.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error("JSON encode failed", "error", err)
	}
}

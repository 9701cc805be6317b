package handler

import (
	"net/http"
	"time"

	"github.com/dpetrucci/hackfest/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest     = apierr.CodeInvalidRequest
	CodeUnauthorized       = apierr.CodeUnauthorized
	CodeNoEvent            = apierr.CodeNoEvent
	CodeRegistrationClosed = apierr.CodeRegistrationClosed
	CodePhaseViolation     = apierr.CodePhaseViolation
	CodeCapacityReached    = apierr.CodeCapacityReached
	CodeDuplicate          = apierr.CodeDuplicate
	CodeNotFound           = apierr.CodeNotFound
	CodeStorageFailure     = apierr.CodeStorageFailure
	CodeOrganizerExists    = apierr.CodeOrganizerExists
	CodeInvalidCredentials = apierr.CodeInvalidCredentials
	CodeInternalError      = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// parseDate parses the optional ?date= query parameter used as the
// reference date for the simulated calendar. Empty means "not given".
func parseDate(r *http.Request) (time.Time, bool, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return time.Time{}, false, nil
	}
	d, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, false, NewInvalidRequestError("date must be formatted as YYYY-MM-DD")
	}
	return d, true, nil
}

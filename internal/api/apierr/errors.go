package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dpetrucci/hackfest/internal/model"
	"github.com/dpetrucci/hackfest/internal/services/auth"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeNoEvent            = "NO_EVENT"
	CodeRegistrationClosed = "REGISTRATION_CLOSED"
	CodePhaseViolation     = "PHASE_VIOLATION"
	CodeCapacityReached    = "CAPACITY_REACHED"
	CodeDuplicate          = "DUPLICATE"
	CodeNotFound           = "NOT_FOUND"
	CodeStorageFailure     = "STORAGE_FAILURE"
	CodeOrganizerExists    = "ORGANIZER_EXISTS"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError. Specific errors get
// their own code; the rest fall back on the error-kind taxonomy. The
// reason string is propagated verbatim so clients can surface it.
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrEventNotCreated):
		return &httpError{http.StatusConflict, APIError{CodeNoEvent, err.Error()}}
	case errors.Is(err, model.ErrTeamNotFound),
		errors.Is(err, model.ErrParticipantNotFound),
		errors.Is(err, model.ErrJudgeNotFound),
		errors.Is(err, model.ErrJudgeNotOnPanel),
		errors.Is(err, model.ErrOrganizerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeNotFound, err.Error()}}
	case errors.Is(err, model.ErrRegistrationClosed),
		errors.Is(err, model.ErrRegistrationsNotOpen):
		return &httpError{http.StatusConflict, APIError{CodeRegistrationClosed, err.Error()}}
	case errors.Is(err, model.ErrEventFull),
		errors.Is(err, model.ErrPanelFull),
		errors.Is(err, model.ErrMaxTeamsReached),
		errors.Is(err, model.ErrDailyDocumentLimit):
		return &httpError{http.StatusConflict, APIError{CodeCapacityReached, err.Error()}}
	case errors.Is(err, model.ErrAlreadyRegistered),
		errors.Is(err, model.ErrJudgeAlreadyOnPanel),
		errors.Is(err, model.ErrDuplicateTeamName),
		errors.Is(err, model.ErrTeamAlreadyPresent),
		errors.Is(err, model.ErrDuplicateVote):
		return &httpError{http.StatusConflict, APIError{CodeDuplicate, err.Error()}}

	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid organizer name or password"}}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}
	case errors.Is(err, auth.ErrOrganizerExists):
		return &httpError{http.StatusConflict, APIError{CodeOrganizerExists, "Organizer name already exists"}}
	}

	switch model.KindOf(err) {
	case model.KindValidation:
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, err.Error()}}
	case model.KindPrecondition:
		return &httpError{http.StatusConflict, APIError{CodePhaseViolation, err.Error()}}
	case model.KindPersistence:
		return &httpError{http.StatusBadGateway, APIError{CodeStorageFailure, err.Error()}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}

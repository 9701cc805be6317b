package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dpetrucci/hackfest/internal/api/middleware"
	"github.com/dpetrucci/hackfest/internal/api/request"
	"github.com/dpetrucci/hackfest/internal/api/response"
	"github.com/dpetrucci/hackfest/internal/dependencies/clock"
	"github.com/dpetrucci/hackfest/internal/metrics"
	"github.com/dpetrucci/hackfest/internal/model"
	"github.com/dpetrucci/hackfest/internal/services/event"
)

// EventHandler handles every event lifecycle endpoint. All commands
// take a reference date from the optional ?date= parameter so the
// calendar can be simulated; absent, the wall clock's date applies.
type EventHandler struct {
	events  event.ServiceInterface
	clock   clock.Clock
	metrics *metrics.Metrics
}

// NewEventHandler creates a new event handler
func NewEventHandler(events event.ServiceInterface, clock clock.Clock, metrics *metrics.Metrics) *EventHandler {
	return &EventHandler{
		events:  events,
		clock:   clock,
		metrics: metrics,
	}
}

// refDate resolves the reference date for a request.
func (h *EventHandler) refDate(r *http.Request) (time.Time, error) {
	d, ok, err := parseDate(r)
	if err != nil {
		return time.Time{}, err
	}
	if !ok {
		return h.clock.Now(), nil
	}
	return d, nil
}

// writeError writes the error and counts compensated store failures.
func (h *EventHandler) writeError(w http.ResponseWriter, err error) {
	if model.KindOf(err) == model.KindPersistence {
		h.metrics.Compensations.Inc()
	}
	WriteError(w, err)
}

// Create handles POST /api/v1/event
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	start, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		WriteError(w, NewInvalidRequestError("start_date must be formatted as YYYY-MM-DD"))
		return
	}

	organizer := middleware.MustGetOrganizer(r.Context())
	ev, err := h.events.CreateEvent(r.Context(), req.Title, req.Venue, start, req.MaxTeamSize, *organizer)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, map[string]string{
		"title":      ev.Title,
		"venue":      ev.Venue,
		"start_date": ev.StartDate.Format(time.DateOnly),
		"end_date":   ev.EndDate.Format(time.DateOnly),
	})
}

// Status handles GET /api/v1/event
func (h *EventHandler) Status(w http.ResponseWriter, r *http.Request) {
	today, err := h.refDate(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	status, err := h.events.Status(today)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.EventStatusFromProjection(status))
}

// PublishProblem handles PUT /api/v1/event/problem
func (h *EventHandler) PublishProblem(w http.ResponseWriter, r *http.Request) {
	var req request.PublishProblemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	today, err := h.refDate(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.events.PublishProblem(req.Text, today); err != nil {
		h.writeError(w, err)
		return
	}
	response.NoContent(w)
}

// OpenRegistrations handles POST /api/v1/event/registrations/open
func (h *EventHandler) OpenRegistrations(w http.ResponseWriter, r *http.Request) {
	h.flagCommand(w, r, h.events.OpenRegistrations)
}

// CloseRegistrations handles POST /api/v1/event/registrations/close
func (h *EventHandler) CloseRegistrations(w http.ResponseWriter, r *http.Request) {
	if err := h.events.CloseRegistrations(); err != nil {
		h.writeError(w, err)
		return
	}
	response.NoContent(w)
}

// EnableSubmissions handles POST /api/v1/event/submissions/enable
func (h *EventHandler) EnableSubmissions(w http.ResponseWriter, r *http.Request) {
	h.flagCommand(w, r, h.events.EnableSubmissions)
}

// DisableSubmissions handles POST /api/v1/event/submissions/disable
func (h *EventHandler) DisableSubmissions(w http.ResponseWriter, r *http.Request) {
	if err := h.events.DisableSubmissions(); err != nil {
		h.writeError(w, err)
		return
	}
	response.NoContent(w)
}

func (h *EventHandler) flagCommand(w http.ResponseWriter, r *http.Request, cmd func(time.Time) error) {
	today, err := h.refDate(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	if err := cmd(today); err != nil {
		h.writeError(w, err)
		return
	}
	response.NoContent(w)
}

package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dpetrucci/hackfest/internal/api/request"
	"github.com/dpetrucci/hackfest/internal/api/response"
	"github.com/dpetrucci/hackfest/internal/model"
)

// AddJudge handles POST /api/v1/event/judges
func (h *EventHandler) AddJudge(w http.ResponseWriter, r *http.Request) {
	var req request.AddJudgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	judge, err := model.NewParticipant(model.ParticipantID(req.ID), req.GivenName, req.FamilyName, req.Email)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.events.AddJudge(r.Context(), judge); err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.ParticipantFromModel(judge))
}

// RemoveJudge handles DELETE /api/v1/event/judges/{id}
func (h *EventHandler) RemoveJudge(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.events.RemoveJudgeByID(r.Context(), model.ParticipantID(id)); err != nil {
		h.writeError(w, err)
		return
	}
	response.NoContent(w)
}

// ListJudges handles GET /api/v1/event/judges
func (h *EventHandler) ListJudges(w http.ResponseWriter, r *http.Request) {
	ev := h.events.Event()
	if ev == nil {
		WriteError(w, model.ErrEventNotCreated)
		return
	}

	judges := ev.Judges()
	out := make([]response.Participant, 0, len(judges))
	for _, j := range judges {
		out = append(out, response.ParticipantFromModel(j))
	}
	response.JSON(w, http.StatusOK, out)
}

// RegisterParticipant handles POST /api/v1/event/participants
func (h *EventHandler) RegisterParticipant(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	p, err := model.NewParticipant(model.ParticipantID(req.ID), req.GivenName, req.FamilyName, req.Email)
	if err != nil {
		WriteError(w, err)
		return
	}

	today, err := h.refDate(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.events.RegisterParticipant(r.Context(), p, today); err != nil {
		h.writeError(w, err)
		return
	}

	h.metrics.Registrations.Inc()
	response.JSON(w, http.StatusCreated, response.ParticipantFromModel(p))
}

// RemoveParticipant handles DELETE /api/v1/event/participants/{id}
func (h *EventHandler) RemoveParticipant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.events.RemoveParticipantByID(r.Context(), model.ParticipantID(id)); err != nil {
		h.writeError(w, err)
		return
	}
	response.NoContent(w)
}

// ListParticipants handles GET /api/v1/event/participants
func (h *EventHandler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	ev := h.events.Event()
	if ev == nil {
		WriteError(w, model.ErrEventNotCreated)
		return
	}

	regs := ev.Registrations()
	out := make([]response.Participant, 0, len(regs))
	for _, reg := range regs {
		out = append(out, response.ParticipantFromModel(reg.Participant))
	}
	response.JSON(w, http.StatusOK, out)
}

// pathID extracts a positive integer path variable.
func pathID(r *http.Request, name string) (int, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, NewInvalidRequestError(name + " must be a positive integer")
	}
	return id, nil
}

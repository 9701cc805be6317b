package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dpetrucci/hackfest/internal/api/request"
	"github.com/dpetrucci/hackfest/internal/api/response"
	"github.com/dpetrucci/hackfest/internal/model"
)

// AddTeam handles POST /api/v1/event/teams
func (h *EventHandler) AddTeam(w http.ResponseWriter, r *http.Request) {
	var req request.AddTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	today, err := h.refDate(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	memberIDs := make([]model.ParticipantID, 0, len(req.MemberIDs))
	for _, id := range req.MemberIDs {
		memberIDs = append(memberIDs, model.ParticipantID(id))
	}

	team, err := h.events.AddTeam(r.Context(), req.Name, memberIDs, today)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.metrics.TeamsAdmitted.Inc()
	response.JSON(w, http.StatusCreated, response.TeamFromModel(team))
}

// ListTeams handles GET /api/v1/event/teams
func (h *EventHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ev := h.events.Event()
	if ev == nil {
		WriteError(w, model.ErrEventNotCreated)
		return
	}

	teams := ev.Teams()
	out := make([]response.Team, 0, len(teams))
	for _, t := range teams {
		out = append(out, response.TeamFromModel(t))
	}
	response.JSON(w, http.StatusOK, out)
}

// GetTeamProgress handles GET /api/v1/event/teams/{id}/progress
func (h *EventHandler) GetTeamProgress(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	summary, err := h.events.ProgressSummary(model.TeamID(id))
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"summary": summary})
}

// SubmitDocument handles POST /api/v1/event/teams/{id}/documents
func (h *EventHandler) SubmitDocument(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.SubmitDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	today, err := h.refDate(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	review, err := h.events.SubmitDocument(r.Context(), model.TeamID(id), req.Content, today)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.metrics.Documents.Inc()
	response.JSON(w, http.StatusCreated, response.DocumentReviewFromModel(review))
}

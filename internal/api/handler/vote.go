package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dpetrucci/hackfest/internal/api/request"
	"github.com/dpetrucci/hackfest/internal/api/response"
	"github.com/dpetrucci/hackfest/internal/model"
)

// RecordVote handles POST /api/v1/event/votes
func (h *EventHandler) RecordVote(w http.ResponseWriter, r *http.Request) {
	var req request.RecordVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	today, err := h.refDate(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	err = h.events.RecordFinalVote(r.Context(), model.ParticipantID(req.JudgeID), model.TeamID(req.TeamID), req.Score, today)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.metrics.Votes.Inc()
	response.NoContent(w)
}

// SimulateVotes handles POST /api/v1/event/votes/simulate
func (h *EventHandler) SimulateVotes(w http.ResponseWriter, r *http.Request) {
	today, err := h.refDate(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	filled, err := h.events.SimulateMissingVotes(r.Context(), today)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]int{"filled": filled})
}

// GetRanking handles GET /api/v1/event/ranking
func (h *EventHandler) GetRanking(w http.ResponseWriter, r *http.Request) {
	today, err := h.refDate(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	scores, err := h.events.Scores(today)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RankingFromScores(scores))
}

// GetRankingReport handles GET /api/v1/event/ranking/report
func (h *EventHandler) GetRankingReport(w http.ResponseWriter, r *http.Request) {
	today, err := h.refDate(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	report, err := h.events.RankingReport(today)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"report": report})
}

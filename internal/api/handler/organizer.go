package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dpetrucci/hackfest/internal/api/middleware"
	"github.com/dpetrucci/hackfest/internal/api/request"
	"github.com/dpetrucci/hackfest/internal/api/response"
	"github.com/dpetrucci/hackfest/internal/model"
	"github.com/dpetrucci/hackfest/internal/services/auth"
)

// OrganizerHandler handles organizer account endpoints
type OrganizerHandler struct {
	authService *auth.Service
}

// NewOrganizerHandler creates a new organizer handler
func NewOrganizerHandler(authService *auth.Service) *OrganizerHandler {
	return &OrganizerHandler{
		authService: authService,
	}
}

// Register handles POST /api/v1/organizers/register
func (h *OrganizerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterOrganizerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	session, err := h.authService.RegisterOrganizer(r.Context(), model.OrganizerID(req.ID), req.Name, req.Surname, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.AuthResponseFromSession(session))
}

// Login handles POST /api/v1/organizers/login
func (h *OrganizerHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	session, err := h.authService.Login(r.Context(), req.Name, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AuthResponseFromSession(session))
}

// Logout handles POST /api/v1/organizers/logout
func (h *OrganizerHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r.Context())
	if session != nil {
		h.authService.Logout(session.Token)
	}
	response.NoContent(w)
}

// GetMe handles GET /api/v1/organizers/me
func (h *OrganizerHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	organizer := middleware.MustGetOrganizer(r.Context())
	response.JSON(w, http.StatusOK, response.OrganizerFromModel(organizer))
}

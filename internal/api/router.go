package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dpetrucci/hackfest/internal/api/handler"
	"github.com/dpetrucci/hackfest/internal/api/middleware"
	"github.com/dpetrucci/hackfest/internal/dependencies/clock"
	basemw "github.com/dpetrucci/hackfest/internal/middleware"
	"github.com/dpetrucci/hackfest/internal/metrics"
	"github.com/dpetrucci/hackfest/internal/services/auth"
	"github.com/dpetrucci/hackfest/internal/services/event"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger       *slog.Logger
	AuthService  *auth.Service
	EventService event.ServiceInterface
	Clock        clock.Clock
	Metrics      *metrics.Metrics
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	organizerHandler := handler.NewOrganizerHandler(cfg.AuthService)
	eventHandler := handler.NewEventHandler(cfg.EventService, cfg.Clock, cfg.Metrics)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := basemw.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	metricsMiddleware := middleware.Metrics(cfg.Metrics)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)
	api.Use(metricsMiddleware)

	// Organizer routes (no auth required for registering/logging in)
	api.HandleFunc("/organizers/register", organizerHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/organizers/login", organizerHandler.Login).Methods(http.MethodPost)

	// Protected organizer routes
	organizerProtected := api.PathPrefix("/organizers").Subrouter()
	organizerProtected.Use(authMiddleware)
	organizerProtected.HandleFunc("/me", organizerHandler.GetMe).Methods(http.MethodGet)
	organizerProtected.HandleFunc("/logout", organizerHandler.Logout).Methods(http.MethodPost)

	// Event queries (no auth, read only)
	api.HandleFunc("/event", eventHandler.Status).Methods(http.MethodGet)
	api.HandleFunc("/event/judges", eventHandler.ListJudges).Methods(http.MethodGet)
	api.HandleFunc("/event/participants", eventHandler.ListParticipants).Methods(http.MethodGet)
	api.HandleFunc("/event/teams", eventHandler.ListTeams).Methods(http.MethodGet)
	api.HandleFunc("/event/teams/{id}/progress", eventHandler.GetTeamProgress).Methods(http.MethodGet)
	api.HandleFunc("/event/ranking", eventHandler.GetRanking).Methods(http.MethodGet)
	api.HandleFunc("/event/ranking/report", eventHandler.GetRankingReport).Methods(http.MethodGet)

	// Event commands (all require an organizer session)
	commands := api.PathPrefix("/event").Subrouter()
	commands.Use(authMiddleware)
	commands.HandleFunc("", eventHandler.Create).Methods(http.MethodPost)
	commands.HandleFunc("/problem", eventHandler.PublishProblem).Methods(http.MethodPut)
	commands.HandleFunc("/registrations/open", eventHandler.OpenRegistrations).Methods(http.MethodPost)
	commands.HandleFunc("/registrations/close", eventHandler.CloseRegistrations).Methods(http.MethodPost)
	commands.HandleFunc("/submissions/enable", eventHandler.EnableSubmissions).Methods(http.MethodPost)
	commands.HandleFunc("/submissions/disable", eventHandler.DisableSubmissions).Methods(http.MethodPost)
	commands.HandleFunc("/judges", eventHandler.AddJudge).Methods(http.MethodPost)
	commands.HandleFunc("/judges/{id}", eventHandler.RemoveJudge).Methods(http.MethodDelete)
	commands.HandleFunc("/participants", eventHandler.RegisterParticipant).Methods(http.MethodPost)
	commands.HandleFunc("/participants/{id}", eventHandler.RemoveParticipant).Methods(http.MethodDelete)
	commands.HandleFunc("/teams", eventHandler.AddTeam).Methods(http.MethodPost)
	commands.HandleFunc("/teams/{id}/documents", eventHandler.SubmitDocument).Methods(http.MethodPost)
	commands.HandleFunc("/votes", eventHandler.RecordVote).Methods(http.MethodPost)
	commands.HandleFunc("/votes/simulate", eventHandler.SimulateVotes).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Prometheus scrape endpoint, outside the versioned API
	r.Handle("/metrics", promhttp.HandlerFor(cfg.Metrics.Registry(), promhttp.HandlerOpts{})).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

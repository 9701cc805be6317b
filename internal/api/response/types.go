package response

import (
	"time"

	"github.com/dpetrucci/hackfest/internal/model"
	"github.com/dpetrucci/hackfest/internal/services/auth"
	"github.com/dpetrucci/hackfest/internal/services/event"
	"github.com/dpetrucci/hackfest/internal/services/scoring"
)

// Organizer represents an organizer in API responses
type Organizer struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

// OrganizerFromModel converts a model.Organizer to a response Organizer
func OrganizerFromModel(o *model.Organizer) Organizer {
	return Organizer{
		ID:      int(o.ID),
		Name:    o.Name,
		Surname: o.Surname,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Organizer    Organizer `json:"organizer"`
	SessionToken string    `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Organizer:    OrganizerFromModel(&s.Organizer),
		SessionToken: s.Token,
	}
}

// Participant represents a participant in API responses
type Participant struct {
	ID         int    `json:"id"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Email      string `json:"email"`
}

// ParticipantFromModel converts a model.Participant
func ParticipantFromModel(p model.Participant) Participant {
	return Participant{
		ID:         int(p.ID),
		GivenName:  p.GivenName,
		FamilyName: p.FamilyName,
		Email:      p.Email,
	}
}

// Team represents a team in API responses
type Team struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Members   []Participant `json:"members"`
	Documents int           `json:"documents"`
}

// TeamFromModel converts a model.Team
func TeamFromModel(t *model.Team) Team {
	members := make([]Participant, 0, len(t.Members))
	for _, m := range t.Members {
		members = append(members, ParticipantFromModel(m))
	}
	return Team{
		ID:        int(t.ID),
		Name:      t.Name,
		Members:   members,
		Documents: len(t.Documents),
	}
}

// EventStatus is the read-only projection of the event state
type EventStatus struct {
	Title              string `json:"title"`
	Venue              string `json:"venue"`
	Phase              string `json:"phase"`
	StartDate          string `json:"start_date"`
	EndDate            string `json:"end_date"`
	RegistrationOpens  string `json:"registration_opens"`
	RegistrationCloses string `json:"registration_closes"`
	RegistrationsOpen  bool   `json:"registrations_open"`
	SubmissionsEnabled bool   `json:"submissions_enabled"`
	ProblemPublished   bool   `json:"problem_published"`
	JudgeCount         int    `json:"judge_count"`
	PanelSize          int    `json:"panel_size"`
	TeamCount          int    `json:"team_count"`
	MaxTeams           int    `json:"max_teams"`
	ParticipantCount   int    `json:"participant_count"`
	MaxParticipants    int    `json:"max_participants"`
}

// EventStatusFromProjection converts an event.Status
func EventStatusFromProjection(s *event.Status) EventStatus {
	return EventStatus{
		Title:              s.Title,
		Venue:              s.Venue,
		Phase:              string(s.Phase),
		StartDate:          s.StartDate.Format(time.DateOnly),
		EndDate:            s.EndDate.Format(time.DateOnly),
		RegistrationOpens:  s.RegistrationOpens.Format(time.DateOnly),
		RegistrationCloses: s.RegistrationCloses.Format(time.DateOnly),
		RegistrationsOpen:  s.RegistrationsOpen,
		SubmissionsEnabled: s.SubmissionsEnabled,
		ProblemPublished:   s.ProblemPublished,
		JudgeCount:         s.JudgeCount,
		PanelSize:          s.PanelSize,
		TeamCount:          s.TeamCount,
		MaxTeams:           s.MaxTeams,
		ParticipantCount:   s.ParticipantCount,
		MaxParticipants:    s.MaxParticipants,
	}
}

// JudgeScore is one judge's score for a document
type JudgeScore struct {
	JudgeID int `json:"judge_id"`
	Score   int `json:"score"`
}

// DocumentReview is the panel evaluation returned on submission
type DocumentReview struct {
	TeamID int          `json:"team_id"`
	Scores []JudgeScore `json:"scores"`
	Grade  int          `json:"grade"`
}

// DocumentReviewFromModel converts an event.DocumentReview
func DocumentReviewFromModel(r *event.DocumentReview) DocumentReview {
	scores := make([]JudgeScore, 0, len(r.Scores))
	for _, js := range r.Scores {
		scores = append(scores, JudgeScore{JudgeID: int(js.Judge.ID), Score: js.Score})
	}
	return DocumentReview{
		TeamID: int(r.TeamID),
		Scores: scores,
		Grade:  r.Grade,
	}
}

// TeamScore is one row of the ranking
type TeamScore struct {
	Rank        int     `json:"rank"`
	TeamID      int     `json:"team_id"`
	Name        string  `json:"name"`
	VoteAverage float64 `json:"vote_average"`
	Progress    float64 `json:"progress"`
	Composite   float64 `json:"composite"`
	Submitted   int     `json:"submitted"`
	Slots       int     `json:"slots"`
}

// RankingFromScores converts ranked scoring.TeamScore values
func RankingFromScores(scores []scoring.TeamScore) []TeamScore {
	out := make([]TeamScore, 0, len(scores))
	for i, sc := range scores {
		out = append(out, TeamScore{
			Rank:        i + 1,
			TeamID:      int(sc.TeamID),
			Name:        sc.Name,
			VoteAverage: sc.VoteAverage,
			Progress:    sc.Progress,
			Composite:   sc.Composite,
			Submitted:   sc.Submitted,
			Slots:       sc.Slots,
		})
	}
	return out
}

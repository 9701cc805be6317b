package event

import (
	"fmt"
	"strings"
	"time"

	"github.com/dpetrucci/hackfest/internal/model"
)

// Status is the read-only projection the presentation layer polls.
type Status struct {
	Title string
	Venue string
	Phase model.Phase

	StartDate          time.Time
	EndDate            time.Time
	RegistrationOpens  time.Time
	RegistrationCloses time.Time
	RegistrationsOpen  bool
	SubmissionsEnabled bool
	ProblemPublished   bool
	JudgeCount         int
	PanelSize          int
	TeamCount          int
	MaxTeams           int
	ParticipantCount   int
	MaxParticipants    int
}

// Status assembles the projection for a reference date. Flags are
// resynchronized first, so the caller never sees a stale override.
func (s *Service) Status(today time.Time) (*Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.event == nil {
		return nil, model.ErrEventNotCreated
	}
	s.syncFlags(today)

	return &Status{
		Title:              s.event.Title,
		Venue:              s.event.Venue,
		Phase:              s.event.PhaseOn(today),
		StartDate:          s.event.StartDate,
		EndDate:            s.event.EndDate,
		RegistrationOpens:  s.event.RegistrationOpensOn(),
		RegistrationCloses: s.event.RegistrationClosesOn(),
		RegistrationsOpen:  s.registrationsOpen,
		SubmissionsEnabled: s.submissionsEnabled,
		ProblemPublished:   s.event.ProblemPublished(),
		JudgeCount:         len(s.event.Judges()),
		PanelSize:          model.PanelSize,
		TeamCount:          s.event.TeamCount(),
		MaxTeams:           model.MaxTeams,
		ParticipantCount:   s.event.RegistrationCount(),
		MaxParticipants:    s.event.MaxParticipants(),
	}, nil
}

// RankingReport renders the final standings as text, one line per team
// in rank order.
func (s *Service) RankingReport(today time.Time) (string, error) {
	scores, err := s.Scores(today)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("FINAL RANKING\n")
	for i, sc := range scores {
		fmt.Fprintf(&b, "%2d. %-20s votes %5.2f  progress %5.2f  total %5.2f\n",
			i+1, sc.Name, sc.VoteAverage, sc.Progress, sc.Composite)
	}
	return b.String(), nil
}

// ProgressSummary renders one team's submission history: per-document
// grades in submission order and the slots used so far.
func (s *Service) ProgressSummary(teamID model.TeamID) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.event == nil {
		return "", model.ErrEventNotCreated
	}
	team := s.event.TeamByID(teamID)
	if team == nil {
		return "", model.ErrTeamNotFound
	}

	grades := s.grades[teamID]
	var b strings.Builder
	fmt.Fprintf(&b, "Team %s: %d of %d document slots used\n",
		team.Name, len(team.Documents), s.scoring.TotalSlots())
	for i, doc := range team.Documents {
		grade := 0
		if i < len(grades) {
			grade = grades[i]
		}
		fmt.Fprintf(&b, "  %s  grade %d\n", doc.Timestamp.Format(time.DateOnly), grade)
	}
	return b.String(), nil
}

package factory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/dpetrucci/hackfest/internal/model"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

func (s *IntegrationSuite) day(d int) time.Time {
	return time.Date(2025, 5, d, 0, 0, 0, 0, time.UTC)
}

func (s *IntegrationSuite) participant(id int) model.Participant {
	return model.Participant{
		ID:         model.ParticipantID(id),
		GivenName:  fmt.Sprintf("Sam%d", id),
		FamilyName: fmt.Sprintf("Bianchi%d", id),
		Email:      fmt.Sprintf("sam%d@example.com", id),
	}
}

// Test: Complete event flow from creation to final ranking
func (s *IntegrationSuite) TestCompleteEventFlow() {
	events := s.app.EventService

	// Step 1: An organizer signs up and creates the event
	session, err := s.app.AuthService.RegisterOrganizer(s.ctx, 1, "Dana", "Rossi", "hunter22")
	s.Require().NoError(err)
	s.Require().NotEmpty(session.Token)

	ev, err := events.CreateEvent(s.ctx, "Spring Hackfest", "Milan Campus", s.day(15), 4, session.Organizer)
	s.Require().NoError(err)
	s.Equal(s.day(19), ev.EndDate)

	// Step 2: Recruit the judging panel
	for i := 1; i <= model.PanelSize; i++ {
		s.Require().NoError(events.AddJudge(s.ctx, s.participant(100+i)))
	}

	// Step 3: Open registrations in the window and fill two teams
	s.Require().NoError(events.OpenRegistrations(s.day(11)))
	for i := 1; i <= 6; i++ {
		s.Require().NoError(events.RegisterParticipant(s.ctx, s.participant(i), s.day(11)))
	}
	_, err = events.AddTeam(s.ctx, "Rocket", []model.ParticipantID{1, 2, 3}, s.day(11))
	s.Require().NoError(err)
	_, err = events.AddTeam(s.ctx, "Comet", []model.ParticipantID{4, 5, 6}, s.day(11))
	s.Require().NoError(err)

	// Need a third team for submissions to open
	for i := 7; i <= 9; i++ {
		s.Require().NoError(events.RegisterParticipant(s.ctx, s.participant(i), s.day(12)))
	}
	_, err = events.AddTeam(s.ctx, "Nova", []model.ParticipantID{7, 8, 9}, s.day(12))
	s.Require().NoError(err)

	// Step 4: The event starts, problem goes out, submissions open
	s.Require().NoError(events.PublishProblem("Build a delivery drone scheduler", s.day(15)))
	s.Require().NoError(events.EnableSubmissions(s.day(15)))

	// Step 5: Rocket submits a document; the panel grades it
	s.app.MockRandom.QueueIntn(7, 7, 7) // each judge draws score 8
	review, err := events.SubmitDocument(s.ctx, 1, "architecture sketch", s.day(15))
	s.Require().NoError(err)
	s.Equal(8, review.Grade)

	// Step 6: One judge votes by hand, the rest are simulated
	s.Require().NoError(events.RecordFinalVote(s.ctx, 101, 1, 9, s.day(19)))
	filled, err := events.SimulateMissingVotes(s.ctx, s.day(19))
	s.Require().NoError(err)
	s.Equal(8, filled) // 3 teams x 3 judges, one vote already cast

	// Step 7: Final ranking covers every team
	scores, err := events.Scores(s.day(19))
	s.Require().NoError(err)
	s.Len(scores, 3)

	report, err := events.RankingReport(s.day(19))
	s.Require().NoError(err)
	s.Contains(report, "FINAL RANKING")
	s.Contains(report, "Rocket")
}

// Test: Flags clear themselves when the calendar moves on
func (s *IntegrationSuite) TestFlagsFollowTheCalendar() {
	events := s.app.EventService

	organizer := model.Organizer{ID: 1, Name: "Dana", Surname: "Rossi", Credential: "x"}
	_, err := events.CreateEvent(s.ctx, "Spring Hackfest", "Milan Campus", s.day(15), 4, organizer)
	s.Require().NoError(err)

	for i := 1; i <= 3; i++ {
		s.Require().NoError(events.AddJudge(s.ctx, s.participant(100+i)))
	}
	s.Require().NoError(events.OpenRegistrations(s.day(11)))
	s.True(events.RegistrationsOpen(s.day(12)))

	// The dead zone closes registrations without an explicit command
	s.False(events.RegistrationsOpen(s.day(13)))

	p := s.participant(1)
	err = events.RegisterParticipant(s.ctx, p, s.day(13))
	s.ErrorIs(err, model.ErrRegistrationsNotOpen)
}

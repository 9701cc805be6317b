package event

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/dpetrucci/hackfest/internal/dependencies/clock"
	"github.com/dpetrucci/hackfest/internal/dependencies/random"
	"github.com/dpetrucci/hackfest/internal/model"
	"github.com/dpetrucci/hackfest/internal/services/scoring"
	"github.com/dpetrucci/hackfest/internal/storage"
)

// minTeams is the smallest field the operator may open submissions for.
const minTeams = 3

// Service is the orchestration layer over the event aggregate. Every
// write follows the same contract: resynchronize the operator flags
// against the reference date, check the operator preconditions, mutate
// the aggregate, persist, and on persistence failure apply the exact
// inverse mutation before propagating the error. The aggregate is
// never left reflecting a write that is not durable. Removals run the
// other way around, store first, so a failed delete never touches the
// aggregate at all.
//
// Final votes and per-document grades are derived state and live here,
// not on the aggregate.
type Service struct {
	storage storage.Storage
	scoring scoring.ServiceInterface
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger

	// Commands are serialized; the aggregate assumes a single mutator.
	mu sync.Mutex

	event *model.Event

	registrationsOpen  bool
	submissionsEnabled bool

	grades map[model.TeamID][]int
	votes  []model.FinalVote
}

// New creates a new event service
func New(storage storage.Storage, scoring scoring.ServiceInterface, clock clock.Clock, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		scoring: scoring,
		clock:   clock,
		random:  random,
		logger:  logger,
		grades:  make(map[model.TeamID][]int),
	}
}

// JudgeScore is one judge's score for a single submission.
type JudgeScore struct {
	Judge model.Participant
	Score int
}

// DocumentReview is the panel's evaluation of one submitted document.
type DocumentReview struct {
	TeamID model.TeamID
	Scores []JudgeScore
	Grade  int
}

// CreateEvent replaces the current event with a freshly constructed
// one. The end date is derived from the fixed duration. The organizer
// record is saved best-effort: a store failure is logged and ignored
// because the aggregate itself is not persisted.
func (s *Service) CreateEvent(ctx context.Context, title, venue string, start time.Time, maxTeamSize int, organizer model.Organizer) (*model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	end := model.DateOnly(start).AddDate(0, 0, model.EventDurationDays-1)
	ev, err := model.NewEvent(title, venue, start, end, maxTeamSize, organizer)
	if err != nil {
		return nil, err
	}

	if err := s.storage.SaveOrganizer(ctx, &organizer); err != nil {
		s.logger.Warn("organizer save failed, continuing",
			slog.Int("organizer_id", int(organizer.ID)),
			slog.String("error", err.Error()),
		)
	}

	s.event = ev
	s.registrationsOpen = false
	s.submissionsEnabled = false
	s.grades = make(map[model.TeamID][]int)
	s.votes = nil

	s.logger.Info("event created",
		slog.String("title", ev.Title),
		slog.String("start", ev.StartDate.Format(time.DateOnly)),
		slog.String("end", ev.EndDate.Format(time.DateOnly)),
	)
	return ev, nil
}

// Event returns the current aggregate, nil before CreateEvent.
func (s *Service) Event() *model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.event
}

// Phase derives the calendar phase for the reference date.
func (s *Service) Phase(today time.Time) (model.Phase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.event == nil {
		return "", model.ErrEventNotCreated
	}
	return s.event.PhaseOn(today), nil
}

// syncFlags force-clears an operator flag whose activity the current
// phase no longer permits. Must run before every gating decision.
func (s *Service) syncFlags(today time.Time) {
	if s.registrationsOpen && !s.event.RegistrationAllowed(today) {
		s.registrationsOpen = false
		s.logger.Info("registrations flag cleared, window over")
	}
	if s.submissionsEnabled && !s.event.DuringEvent(today) {
		s.submissionsEnabled = false
		s.logger.Info("submissions flag cleared, outside event days")
	}
}

// OpenRegistrations sets the operator registrations flag. Requires a
// full judge panel and the reference date inside the registration
// window.
func (s *Service) OpenRegistrations(today time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.event == nil {
		return model.ErrEventNotCreated
	}
	if len(s.event.Judges()) < model.PanelSize {
		return model.ErrNotEnoughJudges
	}
	if !s.event.RegistrationAllowed(today) {
		return model.ErrRegistrationClosed
	}
	s.registrationsOpen = true
	return nil
}

// CloseRegistrations clears the operator registrations flag.
func (s *Service) CloseRegistrations() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.event == nil {
		return model.ErrEventNotCreated
	}
	s.registrationsOpen = false
	return nil
}

// RegistrationsOpen reports the flag after resynchronization.
func (s *Service) RegistrationsOpen(today time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.event == nil {
		return false
	}
	s.syncFlags(today)
	return s.registrationsOpen
}

// EnableSubmissions sets the operator submissions flag. Requires the
// reference date to fall inside the event days, a full judge panel, a
// published problem and a minimum field of teams.
func (s *Service) EnableSubmissions(today time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.event == nil {
		return model.ErrEventNotCreated
	}
	if !s.event.DuringEvent(today) {
		return model.ErrNotDuringEvent
	}
	if len(s.event.Judges()) < model.PanelSize {
		return model.ErrNotEnoughJudges
	}
	if s.event.TeamCount() < minTeams {
		return model.ErrNotEnoughTeams
	}
	if !s.event.ProblemPublished() {
		return model.ErrProblemNotPublished
	}
	s.submissionsEnabled = true
	return nil
}

// DisableSubmissions clears the operator submissions flag.
func (s *Service) DisableSubmissions() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.event == nil {
		return model.ErrEventNotCreated
	}
	s.submissionsEnabled = false
	return nil
}

// SubmissionsEnabled reports the flag after resynchronization.
func (s *Service) SubmissionsEnabled(today time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.event == nil {
		return false
	}
	s.syncFlags(today)
	return s.submissionsEnabled
}

// AddJudge appends a participant to the judge panel and persists the
// judge record. Not time gated.
func (s *Service) AddJudge(ctx context.Context, judge model.Participant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.event == nil {
		return model.ErrEventNotCreated
	}

	if err := s.event.AddJudge(judge); err != nil {
		return err
	}
	if err := s.storage.SaveJudge(ctx, &judge); err != nil {
		s.event.RemoveJudge(judge.ID)
		return &model.PersistenceError{Op: "save judge", Err: err}
	}

	s.logger.Info("judge added", slog.Int("judge_id", int(judge.ID)))
	return nil
}

// RemoveJudgeByID drops a judge from the panel, deletes the record and
// discards any final votes the judge has cast. The store delete runs
// first: a failure leaves the aggregate untouched, panel order
// included.
func (s *Service) RemoveJudgeByID(ctx context.Context, id model.ParticipantID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.event == nil {
		return model.ErrEventNotCreated
	}
	if !s.event.IsJudge(id) {
		return model.ErrJudgeNotOnPanel
	}

	if err := s.storage.DeleteJudge(ctx, id); err != nil {
		return &model.PersistenceError{Op: "delete judge", Err: err}
	}
	s.event.RemoveJudge(id)

	kept := s.votes[:0]
	for _, v := range s.votes {
		if v.Judge.ID != id {
			kept = append(kept, v)
		}
	}
	s.votes = kept
	return nil
}

// RegisterParticipant records a registration and persists the
// participant. Requires the operator flag besides the window itself.
func (s *Service) RegisterParticipant(ctx context.Context, p model.Participant, today time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.event == nil {
		return model.ErrEventNotCreated
	}

	s.syncFlags(today)
	if !s.registrationsOpen {
		return model.ErrRegistrationsNotOpen
	}

	if err := s.event.RegisterParticipant(p, today); err != nil {
		return err
	}
	if err := s.storage.SaveParticipant(ctx, &p); err != nil {
		s.event.RemoveRegistration(p.ID)
		return &model.PersistenceError{Op: "save participant", Err: err}
	}

	s.logger.Info("participant registered",
		slog.Int("participant_id", int(p.ID)),
		slog.Int("registered", s.event.RegistrationCount()),
	)
	return nil
}

// RemoveParticipantByID drops a participant's registration, deletes
// the record and prunes the participant from any team. A team left
// without members is dropped from the event. The store delete runs
// first: a failure leaves the aggregate untouched, registration order
// included.
func (s *Service) RemoveParticipantByID(ctx context.Context, id model.ParticipantID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.event == nil {
		return model.ErrEventNotCreated
	}
	if !s.event.IsRegistered(id) {
		return model.ErrParticipantNotFound
	}

	if err := s.storage.DeleteParticipant(ctx, id); err != nil {
		return &model.PersistenceError{Op: "delete participant", Err: err}
	}
	s.event.RemoveRegistration(id)

	for _, t := range s.event.Teams() {
		t.RemoveMember(id)
		if len(t.Members) == 0 {
			s.event.RemoveTeam(t.ID)
			s.logger.Info("team dropped, last member removed",
				slog.Int("team_id", int(t.ID)),
			)
		}
	}
	return nil
}

// AddTeam forms a team out of registered participants, admits it to
// the event and persists it. The id is chosen to collide with neither
// in-memory nor previously persisted teams.
func (s *Service) AddTeam(ctx context.Context, name string, memberIDs []model.ParticipantID, today time.Time) (*model.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.event == nil {
		return nil, model.ErrEventNotCreated
	}

	s.syncFlags(today)
	if !s.registrationsOpen {
		return nil, model.ErrRegistrationsNotOpen
	}

	team, err := model.NewTeam(s.nextTeamID(ctx), name)
	if err != nil {
		return nil, err
	}
	for _, id := range memberIDs {
		member, ok := s.registrationOf(id)
		if !ok {
			return nil, model.ErrMemberNotRegistered
		}
		if err := team.AddMember(member); err != nil {
			return nil, err
		}
	}

	if err := s.event.AddTeam(team, today); err != nil {
		return nil, err
	}
	if err := s.storage.SaveTeam(ctx, team); err != nil {
		s.event.RemoveTeam(team.ID)
		return nil, &model.PersistenceError{Op: "save team", Err: err}
	}

	s.logger.Info("team admitted",
		slog.Int("team_id", int(team.ID)),
		slog.String("name", team.Name),
		slog.Int("members", len(team.Members)),
	)
	return team, nil
}

func (s *Service) registrationOf(id model.ParticipantID) (model.Participant, bool) {
	for _, r := range s.event.Registrations() {
		if r.Participant.ID == id {
			return r.Participant, true
		}
	}
	return model.Participant{}, false
}

// nextTeamID picks max(in-memory max, persisted max) + 1. The store
// read is best-effort: on failure it degrades to the in-memory maximum
// alone.
func (s *Service) nextTeamID(ctx context.Context) model.TeamID {
	max := s.event.MaxTeamID()
	stored, err := s.storage.MaxTeamID(ctx)
	if err != nil {
		s.logger.Warn("persisted team id lookup failed, using in-memory maximum",
			slog.String("error", err.Error()),
		)
	} else if stored > max {
		max = stored
	}
	return max + 1
}

// PublishProblem sets the problem statement on the aggregate. The
// statement is not persisted, so no compensation is involved.
func (s *Service) PublishProblem(text string, today time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.event == nil {
		return model.ErrEventNotCreated
	}
	return s.event.PublishProblem(text, today)
}

// SubmitDocument appends a progress document to a team, persists it
// and has the full panel evaluate it. The per-judge scores are drawn
// uniformly from [1,10] through the injected randomness source; the
// grade is their rounded mean and feeds the team's progress score.
func (s *Service) SubmitDocument(ctx context.Context, teamID model.TeamID, content string, today time.Time) (*DocumentReview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.event == nil {
		return nil, model.ErrEventNotCreated
	}

	s.syncFlags(today)
	if !s.submissionsEnabled {
		return nil, model.ErrSubmissionsDisabled
	}
	judges := s.event.Judges()
	if len(judges) < model.PanelSize {
		return nil, model.ErrNotEnoughJudges
	}

	doc, err := model.NewDocument(content, today, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := s.event.UploadDocument(teamID, doc, today); err != nil {
		return nil, err
	}
	if err := s.storage.SaveDocument(ctx, teamID, doc); err != nil {
		s.event.TeamByID(teamID).RemoveLastDocument()
		return nil, &model.PersistenceError{Op: "save document", Err: err}
	}

	review := &DocumentReview{TeamID: teamID}
	scores := make([]int, 0, len(judges))
	for _, j := range judges {
		score := 1 + s.random.Intn(10)
		scores = append(scores, score)
		review.Scores = append(review.Scores, JudgeScore{Judge: j, Score: score})
	}
	review.Grade = s.scoring.DocumentGrade(scores)
	s.grades[teamID] = append(s.grades[teamID], review.Grade)

	s.logger.Info("document evaluated",
		slog.Int("team_id", int(teamID)),
		slog.Int("grade", review.Grade),
	)
	return review, nil
}

// RecordFinalVote stores one judge's final score for a team. Voting
// opens on the event end date; one vote per (judge, team) pair.
func (s *Service) RecordFinalVote(ctx context.Context, judgeID model.ParticipantID, teamID model.TeamID, score int, today time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recordVote(ctx, judgeID, teamID, score, today)
}

func (s *Service) recordVote(ctx context.Context, judgeID model.ParticipantID, teamID model.TeamID, score int, today time.Time) error {
	if s.event == nil {
		return model.ErrEventNotCreated
	}
	if !s.event.VotingAllowed(today) {
		return model.ErrVotingNotAllowed
	}
	judge, ok := s.event.JudgeByID(judgeID)
	if !ok {
		return model.ErrJudgeNotOnPanel
	}
	if s.event.TeamByID(teamID) == nil {
		return model.ErrTeamNotFound
	}
	if s.hasVoted(judgeID, teamID) {
		return model.ErrDuplicateVote
	}

	vote, err := model.NewFinalVote(judge, teamID, score)
	if err != nil {
		return err
	}

	s.votes = append(s.votes, vote)
	if err := s.storage.SaveVote(ctx, vote); err != nil {
		s.votes = s.votes[:len(s.votes)-1]
		return &model.PersistenceError{Op: "save vote", Err: err}
	}
	return nil
}

func (s *Service) hasVoted(judgeID model.ParticipantID, teamID model.TeamID) bool {
	for _, v := range s.votes {
		if v.Judge.ID == judgeID && v.Team == teamID {
			return true
		}
	}
	return false
}

// SimulateMissingVotes fills in a drawn score in [0,10] for every
// (judge, team) pair that has no recorded vote yet. A persistence
// failure stops the fill and propagates; votes recorded before the
// failure stay.
func (s *Service) SimulateMissingVotes(ctx context.Context, today time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.event == nil {
		return 0, model.ErrEventNotCreated
	}
	if !s.event.VotingAllowed(today) {
		return 0, model.ErrVotingNotAllowed
	}

	filled := 0
	for _, j := range s.event.Judges() {
		for _, t := range s.event.Teams() {
			if s.hasVoted(j.ID, t.ID) {
				continue
			}
			score := s.random.Intn(11)
			if err := s.recordVote(ctx, j.ID, t.ID, score, today); err != nil {
				return filled, err
			}
			filled++
		}
	}

	s.logger.Info("missing votes simulated", slog.Int("filled", filled))
	return filled, nil
}

// Votes returns a copy of the recorded final votes.
func (s *Service) Votes() []model.FinalVote {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.FinalVote, len(s.votes))
	copy(out, s.votes)
	return out
}

// Scores derives every team's standing: progress over the fixed slot
// count, vote average over the full panel, the weighted composite, all
// ranked descending. Available once voting is open.
func (s *Service) Scores(today time.Time) ([]scoring.TeamScore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.event == nil {
		return nil, model.ErrEventNotCreated
	}
	if !s.event.VotingAllowed(today) {
		return nil, model.ErrVotingNotAllowed
	}

	scores := make([]scoring.TeamScore, 0, s.event.TeamCount())
	for _, t := range s.event.Teams() {
		voteScores := make([]int, 0, model.PanelSize)
		for _, v := range s.votes {
			if v.Team == t.ID {
				voteScores = append(voteScores, v.Score)
			}
		}
		progress := s.scoring.ProgressScore(s.grades[t.ID], s.scoring.TotalSlots())
		voteAvg := s.scoring.VoteAverage(voteScores, model.PanelSize)
		scores = append(scores, scoring.TeamScore{
			TeamID:      t.ID,
			Name:        t.Name,
			VoteAverage: voteAvg,
			Progress:    progress,
			Composite:   s.scoring.Composite(voteAvg, progress),
			Submitted:   len(t.Documents),
			Slots:       s.scoring.TotalSlots(),
		})
	}
	return s.scoring.Rank(scores), nil
}

// Interface for dependency injection
type ServiceInterface interface {
	CreateEvent(ctx context.Context, title, venue string, start time.Time, maxTeamSize int, organizer model.Organizer) (*model.Event, error)
	Event() *model.Event
	Phase(today time.Time) (model.Phase, error)
	OpenRegistrations(today time.Time) error
	CloseRegistrations() error
	RegistrationsOpen(today time.Time) bool
	EnableSubmissions(today time.Time) error
	DisableSubmissions() error
	SubmissionsEnabled(today time.Time) bool
	AddJudge(ctx context.Context, judge model.Participant) error
	RemoveJudgeByID(ctx context.Context, id model.ParticipantID) error
	RegisterParticipant(ctx context.Context, p model.Participant, today time.Time) error
	RemoveParticipantByID(ctx context.Context, id model.ParticipantID) error
	AddTeam(ctx context.Context, name string, memberIDs []model.ParticipantID, today time.Time) (*model.Team, error)
	PublishProblem(text string, today time.Time) error
	SubmitDocument(ctx context.Context, teamID model.TeamID, content string, today time.Time) (*DocumentReview, error)
	RecordFinalVote(ctx context.Context, judgeID model.ParticipantID, teamID model.TeamID, score int, today time.Time) error
	SimulateMissingVotes(ctx context.Context, today time.Time) (int, error)
	Votes() []model.FinalVote
	Scores(today time.Time) ([]scoring.TeamScore, error)
	Status(today time.Time) (*Status, error)
	RankingReport(today time.Time) (string, error)
	ProgressSummary(teamID model.TeamID) (string, error)
}

var _ ServiceInterface = (*Service)(nil)

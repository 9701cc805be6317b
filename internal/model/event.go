package model

import (
	"strings"
	"time"
)

// Domain constants. The durations are inclusive day counts.
const (
	// EventDurationDays is the fixed length of the event.
	EventDurationDays = 5
	// RegistrationWindowDays is the fixed length of the registration window.
	RegistrationWindowDays = 2
	// RegistrationLeadDays is how many days before the event start the
	// registration window closes, leaving a dead zone in between.
	RegistrationLeadDays = 3
	// MaxTeams caps how many teams the event admits.
	MaxTeams = 20
	// PanelSize is the fixed judge panel capacity.
	PanelSize = 3
	// MaxDailyDocuments caps per-team submissions on a single day.
	MaxDailyDocuments = 3
)

// Phase labels the position of a reference date relative to the event
// calendar. It is always recomputed from the date, never stored.
type Phase string

const (
	PhaseBeforeRegistration Phase = "before_registration"
	PhaseRegistrationOpen   Phase = "registration_open"
	PhaseDeadZone           Phase = "dead_zone"
	PhaseDuringEvent        Phase = "during_event"
	PhaseAfterEvent         Phase = "after_event"
)

// Event is the aggregate root. It owns the judge panel, registrations,
// teams and the problem statement, and enforces every cross-entity
// invariant: temporal windows, capacity, name uniqueness and team
// membership exclusivity. Construction parameters are immutable.
type Event struct {
	Title       string
	Venue       string
	StartDate   time.Time
	EndDate     time.Time
	MaxTeamSize int
	Organizer   Organizer

	judges        []Participant
	registrations []Registration
	teams         []*Team
	problem       string
}

// NewEvent validates the construction invariants: non-blank title and
// venue, consistent dates with the fixed inclusive duration, positive
// team size. The participant cap is derived as MaxTeams * MaxTeamSize.
func NewEvent(title, venue string, start, end time.Time, maxTeamSize int, organizer Organizer) (*Event, error) {
	if isBlank(title) {
		return nil, ErrInvalidTitle
	}
	if isBlank(venue) {
		return nil, ErrInvalidVenue
	}
	start, end = DateOnly(start), DateOnly(end)
	if end.Before(start) {
		return nil, ErrInvalidDates
	}
	if int(end.Sub(start).Hours()/24)+1 != EventDurationDays {
		return nil, ErrInvalidDuration
	}
	if maxTeamSize <= 0 {
		return nil, ErrInvalidTeamSize
	}
	return &Event{
		Title:       title,
		Venue:       venue,
		StartDate:   start,
		EndDate:     end,
		MaxTeamSize: maxTeamSize,
		Organizer:   organizer,
	}, nil
}

// MaxParticipants is the derived registration cap.
func (e *Event) MaxParticipants() int {
	return MaxTeams * e.MaxTeamSize
}

// RegistrationOpensOn is the first day of the registration window.
func (e *Event) RegistrationOpensOn() time.Time {
	return e.RegistrationClosesOn().AddDate(0, 0, -(RegistrationWindowDays - 1))
}

// RegistrationClosesOn is the last day participants may register. It
// falls RegistrationLeadDays before the start, leaving a dead zone.
func (e *Event) RegistrationClosesOn() time.Time {
	return e.StartDate.AddDate(0, 0, -RegistrationLeadDays)
}

// RegistrationAllowed reports whether today falls inside the
// registration window, both ends inclusive.
func (e *Event) RegistrationAllowed(today time.Time) bool {
	return dateWithin(today, e.RegistrationOpensOn(), e.RegistrationClosesOn())
}

// DuringEvent reports whether today falls inside [start, end].
func (e *Event) DuringEvent(today time.Time) bool {
	return dateWithin(today, e.StartDate, e.EndDate)
}

// VotingAllowed reports whether final voting is open: from the end
// date onwards, inclusive.
func (e *Event) VotingAllowed(today time.Time) bool {
	return !DateOnly(today).Before(e.EndDate)
}

// PhaseOn derives the calendar phase for a reference date. The five
// phases partition the timeline exhaustively and exclusively.
func (e *Event) PhaseOn(today time.Time) Phase {
	day := DateOnly(today)
	switch {
	case day.Before(e.RegistrationOpensOn()):
		return PhaseBeforeRegistration
	case e.RegistrationAllowed(day):
		return PhaseRegistrationOpen
	case day.Before(e.StartDate):
		return PhaseDeadZone
	case e.DuringEvent(day):
		return PhaseDuringEvent
	default:
		return PhaseAfterEvent
	}
}

// AddJudge appends a participant to the judge panel. Fails when the
// panel is full or the judge is already present. Not time gated.
func (e *Event) AddJudge(j Participant) error {
	if len(e.judges) >= PanelSize {
		return ErrPanelFull
	}
	for _, g := range e.judges {
		if g.ID == j.ID {
			return ErrJudgeAlreadyOnPanel
		}
	}
	e.judges = append(e.judges, j)
	return nil
}

// RemoveJudge drops a judge from the panel; no-op if absent. Exists to
// support compensation and admin removal.
func (e *Event) RemoveJudge(id ParticipantID) {
	for i, g := range e.judges {
		if g.ID == id {
			e.judges = append(e.judges[:i], e.judges[i+1:]...)
			return
		}
	}
}

// Judges returns a copy of the panel in insertion order.
func (e *Event) Judges() []Participant {
	out := make([]Participant, len(e.judges))
	copy(out, e.judges)
	return out
}

// JudgeByID finds a panel member by id.
func (e *Event) JudgeByID(id ParticipantID) (Participant, bool) {
	for _, g := range e.judges {
		if g.ID == id {
			return g, true
		}
	}
	return Participant{}, false
}

// IsJudge reports whether the participant sits on the panel.
func (e *Event) IsJudge(id ParticipantID) bool {
	_, ok := e.JudgeByID(id)
	return ok
}

// RegisterParticipant records a registration for today. Fails outside
// the registration window, at the participant cap, or on a duplicate.
func (e *Event) RegisterParticipant(p Participant, today time.Time) error {
	if !e.RegistrationAllowed(today) {
		return ErrRegistrationClosed
	}
	if len(e.registrations) >= e.MaxParticipants() {
		return ErrEventFull
	}
	if e.IsRegistered(p.ID) {
		return ErrAlreadyRegistered
	}
	e.registrations = append(e.registrations, Registration{Participant: p})
	return nil
}

// RemoveRegistration drops the registration of a participant; no-op if
// absent. Exists to support compensation.
func (e *Event) RemoveRegistration(id ParticipantID) {
	for i, r := range e.registrations {
		if r.Participant.ID == id {
			e.registrations = append(e.registrations[:i], e.registrations[i+1:]...)
			return
		}
	}
}

// IsRegistered reports whether the participant holds a registration.
func (e *Event) IsRegistered(id ParticipantID) bool {
	for _, r := range e.registrations {
		if r.Participant.ID == id {
			return true
		}
	}
	return false
}

// Registrations returns a copy of the registrations in order.
func (e *Event) Registrations() []Registration {
	out := make([]Registration, len(e.registrations))
	copy(out, e.registrations)
	return out
}

// RegistrationCount returns the number of registered participants.
func (e *Event) RegistrationCount() int {
	return len(e.registrations)
}

// AddTeam admits a team, enforcing in order: the team cap, the
// case-insensitive name uniqueness, the registration window, the
// duplicate-identity check, member count bounds, and for every member
// a current registration and exclusivity (at most one team each).
func (e *Event) AddTeam(t *Team, today time.Time) error {
	if len(e.teams) >= MaxTeams {
		return ErrMaxTeamsReached
	}
	name := normalizeTeamName(t.Name)
	for _, existing := range e.teams {
		if normalizeTeamName(existing.Name) == name {
			return ErrDuplicateTeamName
		}
	}
	if !e.RegistrationAllowed(today) {
		return ErrRegistrationClosed
	}
	for _, existing := range e.teams {
		if existing.ID == t.ID {
			return ErrTeamAlreadyPresent
		}
	}
	if len(t.Members) == 0 {
		return ErrEmptyTeam
	}
	if len(t.Members) > e.MaxTeamSize {
		return ErrTeamTooLarge
	}
	for _, m := range t.Members {
		if !e.IsRegistered(m.ID) {
			return ErrMemberNotRegistered
		}
		if e.TeamOf(m.ID) != nil {
			return ErrMemberInOtherTeam
		}
	}
	e.teams = append(e.teams, t)
	return nil
}

// RemoveTeam drops a team; no-op if absent. Exists to support
// compensation.
func (e *Event) RemoveTeam(id TeamID) {
	for i, t := range e.teams {
		if t.ID == id {
			e.teams = append(e.teams[:i], e.teams[i+1:]...)
			return
		}
	}
}

// TeamOf finds the team a participant belongs to, or nil.
func (e *Event) TeamOf(id ParticipantID) *Team {
	for _, t := range e.teams {
		if t.HasMember(id) {
			return t
		}
	}
	return nil
}

// TeamByID finds a team by id, or nil.
func (e *Event) TeamByID(id TeamID) *Team {
	for _, t := range e.teams {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// Teams returns a copy of the team list in admission order.
func (e *Event) Teams() []*Team {
	out := make([]*Team, len(e.teams))
	copy(out, e.teams)
	return out
}

// TeamCount returns the number of admitted teams.
func (e *Event) TeamCount() int {
	return len(e.teams)
}

// MaxTeamID returns the highest team id currently in memory, 0 when
// there are no teams.
func (e *Event) MaxTeamID() TeamID {
	var max TeamID
	for _, t := range e.teams {
		if t.ID > max {
			max = t.ID
		}
	}
	return max
}

// PublishProblem sets the problem statement. Allowed from the start
// date onward; a later call overwrites the previous statement.
func (e *Event) PublishProblem(text string, today time.Time) error {
	if isBlank(text) {
		return ErrEmptyProblem
	}
	if DateOnly(today).Before(e.StartDate) {
		return ErrProblemBeforeStart
	}
	e.problem = text
	return nil
}

// Problem returns the published problem statement, empty if none.
func (e *Event) Problem() string {
	return e.problem
}

// ProblemPublished reports whether a problem statement exists.
func (e *Event) ProblemPublished() bool {
	return e.problem != ""
}

// UploadDocument appends a document to a team after checking that the
// team belongs to this event, today is during the event, the problem
// has been published, and the team's same-day submissions (by document
// timestamp date) are below the daily cap.
func (e *Event) UploadDocument(teamID TeamID, d Document, today time.Time) error {
	team := e.TeamByID(teamID)
	if team == nil {
		return ErrTeamNotFound
	}
	if !e.DuringEvent(today) {
		return ErrNotDuringEvent
	}
	if !e.ProblemPublished() {
		return ErrProblemNotPublished
	}
	submittedToday := 0
	for _, doc := range team.Documents {
		if SameDate(doc.Timestamp, today) {
			submittedToday++
		}
	}
	if submittedToday >= MaxDailyDocuments {
		return ErrDailyDocumentLimit
	}
	team.AppendDocument(d)
	return nil
}

func normalizeTeamName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

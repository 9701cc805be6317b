package model

import "errors"

// Common errors used across the application
var (
	// Validation errors: malformed input, rejected before any mutation
	ErrInvalidTitle       = errors.New("title must not be blank")
	ErrInvalidVenue       = errors.New("venue must not be blank")
	ErrInvalidDates       = errors.New("end date must not precede start date")
	ErrInvalidDuration    = errors.New("event duration must be exactly the fixed number of days")
	ErrInvalidTeamSize    = errors.New("max team size must be positive")
	ErrInvalidID          = errors.New("id must be positive")
	ErrInvalidName        = errors.New("name must have at least 3 characters")
	ErrInvalidEmail       = errors.New("email must not be blank")
	ErrInvalidCredential  = errors.New("credential must not be blank")
	ErrInvalidTeamName    = errors.New("team name must not be blank")
	ErrEmptyTeam          = errors.New("team has no members")
	ErrTeamTooLarge       = errors.New("team exceeds max team size")
	ErrEmptyDocument      = errors.New("document content must not be blank")
	ErrEmptyProblem       = errors.New("problem statement must not be blank")
	ErrScoreOutOfRange    = errors.New("score must be between 0 and 10")
	ErrDuplicateMember    = errors.New("participant is already a member of this team")

	// Precondition errors: phase or invariant violations, non-mutating
	ErrEventNotCreated      = errors.New("event has not been created")
	ErrRegistrationClosed   = errors.New("outside the registration window")
	ErrEventFull            = errors.New("maximum number of participants reached")
	ErrAlreadyRegistered    = errors.New("participant is already registered")
	ErrPanelFull            = errors.New("judge panel is full")
	ErrJudgeAlreadyOnPanel  = errors.New("judge is already on the panel")
	ErrJudgeNotFound        = errors.New("judge not found")
	ErrJudgeNotOnPanel      = errors.New("judge is not on the panel")
	ErrMaxTeamsReached      = errors.New("maximum number of teams reached")
	ErrDuplicateTeamName    = errors.New("team name is already in use")
	ErrTeamAlreadyPresent   = errors.New("team is already registered")
	ErrTeamNotFound         = errors.New("team not found")
	ErrMemberNotRegistered  = errors.New("team member is not registered for the event")
	ErrMemberInOtherTeam    = errors.New("participant already belongs to another team")
	ErrParticipantNotFound  = errors.New("participant not found")
	ErrNotDuringEvent       = errors.New("operation allowed only while the event is running")
	ErrProblemNotPublished  = errors.New("problem statement has not been published")
	ErrProblemBeforeStart   = errors.New("problem can be published only from the event start date")
	ErrDailyDocumentLimit   = errors.New("daily document limit reached for this team")
	ErrVotingNotAllowed     = errors.New("voting opens only once the event has ended")
	ErrDuplicateVote        = errors.New("this judge has already voted for this team")
	ErrRegistrationsNotOpen = errors.New("registrations are not open by the organizer")
	ErrSubmissionsDisabled  = errors.New("document submission is not enabled by the organizer")
	ErrNotEnoughJudges      = errors.New("not enough judges on the panel")
	ErrNotEnoughTeams       = errors.New("not enough teams registered")
	ErrOrganizerNotFound    = errors.New("organizer not found")
)

// ErrorKind partitions errors into the categories callers react to.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	// KindValidation marks malformed input detected before any mutation.
	KindValidation
	// KindPrecondition marks phase or invariant violations; no mutation occurred.
	KindPrecondition
	// KindPersistence marks a store failure after an in-memory mutation
	// that has been compensated.
	KindPersistence
	// KindLookup marks a best-effort consistency read that degraded to a
	// fallback; never fatal on its own.
	KindLookup
)

var validationErrors = []error{
	ErrInvalidTitle, ErrInvalidVenue, ErrInvalidDates, ErrInvalidDuration,
	ErrInvalidTeamSize, ErrInvalidID, ErrInvalidName, ErrInvalidEmail,
	ErrInvalidCredential, ErrInvalidTeamName, ErrEmptyTeam, ErrTeamTooLarge,
	ErrEmptyDocument, ErrEmptyProblem, ErrScoreOutOfRange, ErrDuplicateMember,
}

var preconditionErrors = []error{
	ErrEventNotCreated, ErrRegistrationClosed, ErrEventFull, ErrAlreadyRegistered,
	ErrPanelFull, ErrJudgeAlreadyOnPanel, ErrJudgeNotFound, ErrJudgeNotOnPanel,
	ErrMaxTeamsReached, ErrDuplicateTeamName, ErrTeamAlreadyPresent, ErrTeamNotFound,
	ErrMemberNotRegistered, ErrMemberInOtherTeam, ErrParticipantNotFound,
	ErrNotDuringEvent, ErrProblemNotPublished, ErrProblemBeforeStart,
	ErrDailyDocumentLimit, ErrVotingNotAllowed, ErrDuplicateVote,
	ErrRegistrationsNotOpen, ErrSubmissionsDisabled, ErrNotEnoughJudges,
	ErrNotEnoughTeams, ErrOrganizerNotFound,
}

// KindOf classifies an error into the taxonomy above. Persistence
// failures are recognized via the PersistenceError wrapper.
func KindOf(err error) ErrorKind {
	var pe *PersistenceError
	if errors.As(err, &pe) {
		return KindPersistence
	}
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return KindValidation
		}
	}
	for _, p := range preconditionErrors {
		if errors.Is(err, p) {
			return KindPrecondition
		}
	}
	return KindUnknown
}

// PersistenceError wraps a store failure raised after the in-memory
// mutation was applied and rolled back. The wrapped error is the
// opaque failure reported by the store.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return "persistence failed during " + e.Op + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

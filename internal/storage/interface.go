package storage

import (
	"context"

	"github.com/dpetrucci/hackfest/internal/model"
)

// Storage defines the persistence capability contracts consumed by the
// orchestration layer. Every operation may fail with an opaque error;
// the orchestrator treats each such failure identically and compensates
// the in-memory mutation it had applied. No operation spans more than
// one entity type.
type Storage interface {
	// Organizer operations
	SaveOrganizer(ctx context.Context, o *model.Organizer) error
	GetOrganizerByName(ctx context.Context, name string) (*model.Organizer, error)

	// Participant operations
	SaveParticipant(ctx context.Context, p *model.Participant) error
	GetParticipant(ctx context.Context, id model.ParticipantID) (*model.Participant, error)
	DeleteParticipant(ctx context.Context, id model.ParticipantID) error

	// Judge operations
	SaveJudge(ctx context.Context, j *model.Participant) error
	GetJudges(ctx context.Context) ([]*model.Participant, error)
	DeleteJudge(ctx context.Context, id model.ParticipantID) error

	// Team operations
	SaveTeam(ctx context.Context, t *model.Team) error
	GetTeam(ctx context.Context, id model.TeamID) (*model.Team, error)
	DeleteTeam(ctx context.Context, id model.TeamID) error
	// MaxTeamID reports the highest persisted team id, 0 when none. It
	// backs the collision-free id assignment and is the one read the
	// orchestrator is allowed to degrade on.
	MaxTeamID(ctx context.Context) (model.TeamID, error)

	// Document operations
	SaveDocument(ctx context.Context, teamID model.TeamID, d model.Document) error
	GetDocumentsForTeam(ctx context.Context, teamID model.TeamID) ([]model.Document, error)

	// Final vote operations
	SaveVote(ctx context.Context, v model.FinalVote) error
	GetVotesForTeam(ctx context.Context, teamID model.TeamID) ([]model.FinalVote, error)
}

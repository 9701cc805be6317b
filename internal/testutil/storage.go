package testutil

import (
	"context"
	"errors"

	"github.com/dpetrucci/hackfest/internal/model"
	"github.com/dpetrucci/hackfest/internal/storage"
)

// ErrStoreDown is the opaque failure FlakyStorage injects.
var ErrStoreDown = errors.New("store unavailable")

// FlakyStorage wraps a real storage implementation and fails selected
// operations on demand, for exercising compensation paths.
type FlakyStorage struct {
	storage.Storage

	// Fail holds the names of operations that should fail.
	Fail map[string]bool
}

// NewFlakyStorage wraps the given storage with no failures armed.
func NewFlakyStorage(inner storage.Storage) *FlakyStorage {
	return &FlakyStorage{Storage: inner, Fail: make(map[string]bool)}
}

// FailOn arms failures for the named operations.
func (f *FlakyStorage) FailOn(ops ...string) {
	for _, op := range ops {
		f.Fail[op] = true
	}
}

// Recover disarms all failures.
func (f *FlakyStorage) Recover() {
	f.Fail = make(map[string]bool)
}

func (f *FlakyStorage) failing(op string) bool {
	return f.Fail[op]
}

func (f *FlakyStorage) SaveOrganizer(ctx context.Context, o *model.Organizer) error {
	if f.failing("SaveOrganizer") {
		return ErrStoreDown
	}
	return f.Storage.SaveOrganizer(ctx, o)
}

func (f *FlakyStorage) SaveParticipant(ctx context.Context, p *model.Participant) error {
	if f.failing("SaveParticipant") {
		return ErrStoreDown
	}
	return f.Storage.SaveParticipant(ctx, p)
}

func (f *FlakyStorage) DeleteParticipant(ctx context.Context, id model.ParticipantID) error {
	if f.failing("DeleteParticipant") {
		return ErrStoreDown
	}
	return f.Storage.DeleteParticipant(ctx, id)
}

func (f *FlakyStorage) SaveJudge(ctx context.Context, j *model.Participant) error {
	if f.failing("SaveJudge") {
		return ErrStoreDown
	}
	return f.Storage.SaveJudge(ctx, j)
}

func (f *FlakyStorage) DeleteJudge(ctx context.Context, id model.ParticipantID) error {
	if f.failing("DeleteJudge") {
		return ErrStoreDown
	}
	return f.Storage.DeleteJudge(ctx, id)
}

func (f *FlakyStorage) SaveTeam(ctx context.Context, t *model.Team) error {
	if f.failing("SaveTeam") {
		return ErrStoreDown
	}
	return f.Storage.SaveTeam(ctx, t)
}

func (f *FlakyStorage) MaxTeamID(ctx context.Context) (model.TeamID, error) {
	if f.failing("MaxTeamID") {
		return 0, ErrStoreDown
	}
	return f.Storage.MaxTeamID(ctx)
}

func (f *FlakyStorage) SaveDocument(ctx context.Context, teamID model.TeamID, d model.Document) error {
	if f.failing("SaveDocument") {
		return ErrStoreDown
	}
	return f.Storage.SaveDocument(ctx, teamID, d)
}

func (f *FlakyStorage) SaveVote(ctx context.Context, v model.FinalVote) error {
	if f.failing("SaveVote") {
		return ErrStoreDown
	}
	return f.Storage.SaveVote(ctx, v)
}

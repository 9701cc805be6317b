package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParticipant(t *testing.T) {
	p, err := NewParticipant(1, " Alex ", "Moretti", "alex@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alex", p.GivenName)
	assert.Equal(t, "Alex Moretti", p.FullName())

	_, err = NewParticipant(0, "Alex", "Moretti", "alex@example.com")
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = NewParticipant(1, "Al", "Moretti", "alex@example.com")
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = NewParticipant(1, "Alex", "  ", "alex@example.com")
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = NewParticipant(1, "Alex", "Moretti", " ")
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestNewOrganizer(t *testing.T) {
	o, err := NewOrganizer(1, "Dana", "Rossi", "hash")
	require.NoError(t, err)
	assert.Equal(t, "Dana Rossi", o.FullName())

	_, err = NewOrganizer(-1, "Dana", "Rossi", "hash")
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = NewOrganizer(1, "Dana", "Rossi", "")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestTeamMembers(t *testing.T) {
	team, err := NewTeam(1, "Rocket")
	require.NoError(t, err)

	p, err := NewParticipant(1, "Alex", "Moretti", "alex@example.com")
	require.NoError(t, err)

	require.NoError(t, team.AddMember(p))
	assert.ErrorIs(t, team.AddMember(p), ErrDuplicateMember)
	assert.True(t, team.HasMember(1))

	team.RemoveMember(1)
	assert.False(t, team.HasMember(1))
	team.RemoveMember(1) // idempotent
}

func TestTeamDocuments(t *testing.T) {
	team, err := NewTeam(1, "Rocket")
	require.NoError(t, err)

	ref := time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC)
	doc, err := NewDocument("notes", ref, ref.Add(9*time.Hour))
	require.NoError(t, err)

	team.AppendDocument(doc)
	team.AppendDocument(doc)
	assert.Len(t, team.Documents, 2)

	team.RemoveLastDocument()
	assert.Len(t, team.Documents, 1)
	team.RemoveLastDocument()
	team.RemoveLastDocument() // no-op on empty
	assert.Empty(t, team.Documents)
}

func TestNewDocumentTimestamp(t *testing.T) {
	// The date comes from the reference date, the time of day from the
	// clock reading
	ref := time.Date(2025, 5, 16, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 5, 2, 14, 30, 45, 0, time.UTC)

	doc, err := NewDocument("notes", ref, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 5, 16, 14, 30, 45, 0, time.UTC), doc.Timestamp)

	_, err = NewDocument("  ", ref, now)
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestNewFinalVote(t *testing.T) {
	judge, err := NewParticipant(101, "Dana", "Rossi", "dana@example.com")
	require.NoError(t, err)

	vote, err := NewFinalVote(judge, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, vote.Score)

	_, err = NewFinalVote(judge, 1, 11)
	assert.ErrorIs(t, err, ErrScoreOutOfRange)
	_, err = NewFinalVote(judge, 1, -1)
	assert.ErrorIs(t, err, ErrScoreOutOfRange)
	_, err = NewFinalVote(judge, 0, 5)
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestDateHelpers(t *testing.T) {
	a := time.Date(2025, 5, 15, 23, 59, 0, 0, time.UTC)
	b := time.Date(2025, 5, 15, 0, 1, 0, 0, time.UTC)
	c := time.Date(2025, 5, 16, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDate(a, b))
	assert.False(t, SameDate(a, c))
	assert.Equal(t, time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC), DateOnly(a))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(ErrInvalidTitle))
	assert.Equal(t, KindPrecondition, KindOf(ErrRegistrationClosed))
	assert.Equal(t, KindPersistence, KindOf(&PersistenceError{Op: "save team", Err: assert.AnError}))
	assert.Equal(t, KindUnknown, KindOf(assert.AnError))
}

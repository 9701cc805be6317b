package model

import "strings"

// ParticipantID uniquely identifies a participant across the system
type ParticipantID int

// Participant represents a person registered on the platform. It is an
// immutable value object; identity is the ID alone.
type Participant struct {
	ID         ParticipantID
	GivenName  string
	FamilyName string
	Email      string
}

// NewParticipant validates and constructs a participant. Given and
// family names must have at least 3 characters after trimming.
func NewParticipant(id ParticipantID, givenName, familyName, email string) (Participant, error) {
	if id <= 0 {
		return Participant{}, ErrInvalidID
	}
	given, err := normalizeName(givenName)
	if err != nil {
		return Participant{}, err
	}
	family, err := normalizeName(familyName)
	if err != nil {
		return Participant{}, err
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return Participant{}, ErrInvalidEmail
	}
	return Participant{
		ID:         id,
		GivenName:  given,
		FamilyName: family,
		Email:      email,
	}, nil
}

// FullName returns "Given Family" for display.
func (p Participant) FullName() string {
	return p.GivenName + " " + p.FamilyName
}

func normalizeName(s string) (string, error) {
	t := strings.TrimSpace(s)
	if len(t) < 3 {
		return "", ErrInvalidName
	}
	return t, nil
}

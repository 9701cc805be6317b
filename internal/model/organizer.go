package model

import "strings"

// OrganizerID uniquely identifies an organizer
type OrganizerID int

// Organizer is the party responsible for running the event. Credential
// holds the stored password hash; the auth service owns how it is
// produced and compared.
type Organizer struct {
	ID         OrganizerID
	Name       string
	Surname    string
	Credential string
}

// NewOrganizer validates and constructs an organizer.
func NewOrganizer(id OrganizerID, name, surname, credential string) (Organizer, error) {
	if id <= 0 {
		return Organizer{}, ErrInvalidID
	}
	n, err := normalizeName(name)
	if err != nil {
		return Organizer{}, err
	}
	s, err := normalizeName(surname)
	if err != nil {
		return Organizer{}, err
	}
	if strings.TrimSpace(credential) == "" {
		return Organizer{}, ErrInvalidCredential
	}
	return Organizer{ID: id, Name: n, Surname: s, Credential: credential}, nil
}

// FullName returns "Name Surname" for display.
func (o Organizer) FullName() string {
	return o.Name + " " + o.Surname
}

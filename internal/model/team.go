package model

// TeamID uniquely identifies a team
type TeamID int

// Team groups registered participants. Capacity and membership
// exclusivity are enforced by the Event when the team is added; the
// team itself only rejects duplicate members. Identity is the ID.
type Team struct {
	ID   TeamID
	Name string

	// Members in insertion order; no duplicates.
	Members []Participant
	// Documents in submission order. The last one may be popped for
	// rollback when its persistence fails.
	Documents []Document
}

// NewTeam validates and constructs an empty team.
func NewTeam(id TeamID, name string) (*Team, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	if isBlank(name) {
		return nil, ErrInvalidTeamName
	}
	return &Team{ID: id, Name: name}, nil
}

// AddMember appends a participant, rejecting duplicates. The max-size
// check belongs to the Event, which knows the team size limit.
func (t *Team) AddMember(p Participant) error {
	if t.HasMember(p.ID) {
		return ErrDuplicateMember
	}
	t.Members = append(t.Members, p)
	return nil
}

// RemoveMember drops a participant if present; no-op otherwise.
func (t *Team) RemoveMember(id ParticipantID) {
	for i, m := range t.Members {
		if m.ID == id {
			t.Members = append(t.Members[:i], t.Members[i+1:]...)
			return
		}
	}
}

// HasMember reports whether the participant belongs to this team.
func (t *Team) HasMember(id ParticipantID) bool {
	for _, m := range t.Members {
		if m.ID == id {
			return true
		}
	}
	return false
}

// AppendDocument records a submitted document. Daily caps are enforced
// by the Event before delegating here.
func (t *Team) AppendDocument(d Document) {
	t.Documents = append(t.Documents, d)
}

// RemoveLastDocument pops the most recently appended document. Used to
// roll back a submission whose persistence failed.
func (t *Team) RemoveLastDocument() {
	if len(t.Documents) == 0 {
		return
	}
	t.Documents = t.Documents[:len(t.Documents)-1]
}

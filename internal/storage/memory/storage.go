package memory

import (
	"context"
	"sync"

	"github.com/dpetrucci/hackfest/internal/model"
	"github.com/dpetrucci/hackfest/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	organizers   map[model.OrganizerID]*model.Organizer
	nameIndex    map[string]model.OrganizerID
	participants map[model.ParticipantID]*model.Participant
	judges       map[model.ParticipantID]*model.Participant
	judgeOrder   []model.ParticipantID
	teams        map[model.TeamID]*model.Team
	documents    map[model.TeamID][]model.Document
	votes        map[model.TeamID][]model.FinalVote
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		organizers:   make(map[model.OrganizerID]*model.Organizer),
		nameIndex:    make(map[string]model.OrganizerID),
		participants: make(map[model.ParticipantID]*model.Participant),
		judges:       make(map[model.ParticipantID]*model.Participant),
		teams:        make(map[model.TeamID]*model.Team),
		documents:    make(map[model.TeamID][]model.Document),
		votes:        make(map[model.TeamID][]model.FinalVote),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Organizer operations

func (s *Storage) SaveOrganizer(ctx context.Context, o *model.Organizer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.organizers[o.ID] = o
	s.nameIndex[o.Name] = o.ID
	return nil
}

func (s *Storage) GetOrganizerByName(ctx context.Context, name string) (*model.Organizer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.nameIndex[name]
	if !ok {
		return nil, model.ErrOrganizerNotFound
	}
	o, ok := s.organizers[id]
	if !ok {
		return nil, model.ErrOrganizerNotFound
	}
	return o, nil
}

// Participant operations

func (s *Storage) SaveParticipant(ctx context.Context, p *model.Participant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.participants[p.ID] = p
	return nil
}

func (s *Storage) GetParticipant(ctx context.Context, id model.ParticipantID) (*model.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.participants[id]
	if !ok {
		return nil, model.ErrParticipantNotFound
	}
	return p, nil
}

func (s *Storage) DeleteParticipant(ctx context.Context, id model.ParticipantID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.participants, id)
	return nil
}

// Judge operations

func (s *Storage) SaveJudge(ctx context.Context, j *model.Participant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.judges[j.ID]; !ok {
		s.judgeOrder = append(s.judgeOrder, j.ID)
	}
	s.judges[j.ID] = j
	return nil
}

func (s *Storage) GetJudges(ctx context.Context) ([]*model.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.Participant, 0, len(s.judgeOrder))
	for _, id := range s.judgeOrder {
		if j, ok := s.judges[id]; ok {
			out = append(out, j)
		}
	}
	return out, nil
}

func (s *Storage) DeleteJudge(ctx context.Context, id model.ParticipantID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.judges, id)
	for i, jid := range s.judgeOrder {
		if jid == id {
			s.judgeOrder = append(s.judgeOrder[:i], s.judgeOrder[i+1:]...)
			break
		}
	}
	return nil
}

// Team operations

func (s *Storage) SaveTeam(ctx context.Context, t *model.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams[t.ID] = t
	return nil
}

func (s *Storage) GetTeam(ctx context.Context, id model.TeamID) (*model.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.teams[id]
	if !ok {
		return nil, model.ErrTeamNotFound
	}
	return t, nil
}

func (s *Storage) DeleteTeam(ctx context.Context, id model.TeamID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.teams, id)
	return nil
}

func (s *Storage) MaxTeamID(ctx context.Context) (model.TeamID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var max model.TeamID
	for id := range s.teams {
		if id > max {
			max = id
		}
	}
	return max, nil
}

// Document operations

func (s *Storage) SaveDocument(ctx context.Context, teamID model.TeamID, d model.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[teamID] = append(s.documents[teamID], d)
	return nil
}

func (s *Storage) GetDocumentsForTeam(ctx context.Context, teamID model.TeamID) ([]model.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := s.documents[teamID]
	out := make([]model.Document, len(docs))
	copy(out, docs)
	return out, nil
}

// Final vote operations

func (s *Storage) SaveVote(ctx context.Context, v model.FinalVote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.votes[v.Team] = append(s.votes[v.Team], v)
	return nil
}

func (s *Storage) GetVotesForTeam(ctx context.Context, teamID model.TeamID) ([]model.FinalVote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	votes := s.votes[teamID]
	out := make([]model.FinalVote, len(votes))
	copy(out, votes)
	return out, nil
}

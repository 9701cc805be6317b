package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dpetrucci/hackfest/internal/model"
	"github.com/dpetrucci/hackfest/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Organizer operations

func (s *Storage) SaveOrganizer(ctx context.Context, o *model.Organizer) error {
	data, err := json.Marshal(o)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, organizerKey(o.ID), data, 0)
	pipe.Set(ctx, organizerNameIndexKey(o.Name), strconv.Itoa(int(o.ID)), 0)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetOrganizerByName(ctx context.Context, name string) (*model.Organizer, error) {
	idStr, err := s.client.Get(ctx, organizerNameIndexKey(name)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrOrganizerNotFound
		}
		return nil, err
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		return nil, err
	}

	data, err := s.client.Get(ctx, organizerKey(model.OrganizerID(id))).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrOrganizerNotFound
		}
		return nil, err
	}

	var o model.Organizer
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// Participant operations

func (s *Storage) SaveParticipant(ctx context.Context, p *model.Participant) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, participantKey(p.ID), data, 0).Err()
}

func (s *Storage) GetParticipant(ctx context.Context, id model.ParticipantID) (*model.Participant, error) {
	data, err := s.client.Get(ctx, participantKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrParticipantNotFound
		}
		return nil, err
	}

	var p model.Participant
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Storage) DeleteParticipant(ctx context.Context, id model.ParticipantID) error {
	return s.client.Del(ctx, participantKey(id)).Err()
}

// Judge operations

func (s *Storage) SaveJudge(ctx context.Context, j *model.Participant) error {
	data, err := json.Marshal(j)
	if err != nil {
		return err
	}

	// Pipeline keeps the panel index in sync with the judge record.
	// RPush preserves panel insertion order for GetJudges.
	pipe := s.client.Pipeline()
	pipe.Set(ctx, judgeKey(j.ID), data, 0)
	pipe.RPush(ctx, judgePanelIndexKey(), strconv.Itoa(int(j.ID)))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetJudges(ctx context.Context) ([]*model.Participant, error) {
	ids, err := s.client.LRange(ctx, judgePanelIndexKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	judges := make([]*model.Participant, 0, len(ids))
	for _, idStr := range ids {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			return nil, err
		}
		data, err := s.client.Get(ctx, judgeKey(model.ParticipantID(id))).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue // index entry without a record; skip
			}
			return nil, err
		}
		var j model.Participant
		if err := json.Unmarshal(data, &j); err != nil {
			return nil, err
		}
		judges = append(judges, &j)
	}
	return judges, nil
}

func (s *Storage) DeleteJudge(ctx context.Context, id model.ParticipantID) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, judgeKey(id))
	pipe.LRem(ctx, judgePanelIndexKey(), 0, strconv.Itoa(int(id)))
	_, err := pipe.Exec(ctx)
	return err
}

// Team operations

func (s *Storage) SaveTeam(ctx context.Context, t *model.Team) error {
	data, err := json.Marshal(t)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, teamKey(t.ID), data, 0)
	pipe.SAdd(ctx, teamIDsIndexKey(), strconv.Itoa(int(t.ID)))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetTeam(ctx context.Context, id model.TeamID) (*model.Team, error) {
	data, err := s.client.Get(ctx, teamKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrTeamNotFound
		}
		return nil, err
	}

	var t model.Team
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Storage) DeleteTeam(ctx context.Context, id model.TeamID) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, teamKey(id))
	pipe.SRem(ctx, teamIDsIndexKey(), strconv.Itoa(int(id)))
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) MaxTeamID(ctx context.Context) (model.TeamID, error) {
	ids, err := s.client.SMembers(ctx, teamIDsIndexKey()).Result()
	if err != nil {
		return 0, err
	}

	var max model.TeamID
	for _, idStr := range ids {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			return 0, err
		}
		if model.TeamID(id) > max {
			max = model.TeamID(id)
		}
	}
	return max, nil
}

// Document operations

func (s *Storage) SaveDocument(ctx context.Context, teamID model.TeamID, d model.Document) error {
	data, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return s.client.RPush(ctx, documentsKey(teamID), data).Err()
}

func (s *Storage) GetDocumentsForTeam(ctx context.Context, teamID model.TeamID) ([]model.Document, error) {
	items, err := s.client.LRange(ctx, documentsKey(teamID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	docs := make([]model.Document, 0, len(items))
	for _, item := range items {
		var d model.Document
		if err := json.Unmarshal([]byte(item), &d); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, nil
}

// Final vote operations

func (s *Storage) SaveVote(ctx context.Context, v model.FinalVote) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.client.RPush(ctx, votesKey(v.Team), data).Err()
}

func (s *Storage) GetVotesForTeam(ctx context.Context, teamID model.TeamID) ([]model.FinalVote, error) {
	items, err := s.client.LRange(ctx, votesKey(teamID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	votes := make([]model.FinalVote, 0, len(items))
	for _, item := range items {
		var v model.FinalVote
		if err := json.Unmarshal([]byte(item), &v); err != nil {
			return nil, err
		}
		votes = append(votes, v)
	}
	return votes, nil
}

package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dpetrucci/hackfest/internal/dependencies/clock"
	"github.com/dpetrucci/hackfest/internal/model"
	"github.com/dpetrucci/hackfest/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid or expired session")
	ErrOrganizerExists    = errors.New("organizer name already taken")
)

// Session represents an authenticated organizer session
type Session struct {
	Token     string
	Organizer model.Organizer
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Service handles organizer authentication and session management.
// Credentials are stored as bcrypt hashes in the organizer record.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*Session

	sessionDuration time.Duration
}

// Config holds configuration for the auth service
type Config struct {
	SessionDuration time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 24 * time.Hour,
	}
}

// New creates a new auth service
func New(storage storage.Storage, clock clock.Clock, cfg Config, logger *slog.Logger) *Service {
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}
	return &Service{
		storage:         storage,
		clock:           clock,
		logger:          logger,
		sessions:        make(map[string]*Session),
		sessionDuration: cfg.SessionDuration,
	}
}

// RegisterOrganizer creates an organizer account and opens a session.
// The plaintext password is hashed before it reaches the model.
func (s *Service) RegisterOrganizer(ctx context.Context, id model.OrganizerID, name, surname, password string) (*Session, error) {
	_, err := s.storage.GetOrganizerByName(ctx, name)
	if err == nil {
		return nil, ErrOrganizerExists
	}
	if !errors.Is(err, model.ErrOrganizerNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	organizer, err := model.NewOrganizer(id, name, surname, string(hash))
	if err != nil {
		return nil, err
	}

	if err := s.storage.SaveOrganizer(ctx, &organizer); err != nil {
		return nil, err
	}

	s.logger.Info("organizer registered",
		slog.Int("organizer_id", int(organizer.ID)),
		slog.String("name", organizer.Name),
	)

	return s.createSession(organizer)
}

// Login authenticates an organizer and creates a session
func (s *Service) Login(ctx context.Context, name, password string) (*Session, error) {
	organizer, err := s.storage.GetOrganizerByName(ctx, name)
	if err != nil {
		if errors.Is(err, model.ErrOrganizerNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(organizer.Credential), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.createSession(*organizer)
}

// ValidateSession checks a session token and returns the session
func (s *Service) ValidateSession(token string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrInvalidSession
	}

	if s.clock.Now().After(session.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, ErrInvalidSession
	}

	return session, nil
}

// Logout invalidates a session token; no-op for unknown tokens
func (s *Service) Logout(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

func (s *Service) createSession(organizer model.Organizer) (*Session, error) {
	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	session := &Session{
		Token:     token,
		Organizer: organizer,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionDuration),
	}

	s.mu.Lock()
	s.sessions[token] = session
	s.mu.Unlock()

	return session, nil
}

func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

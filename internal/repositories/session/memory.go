package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/KirkDiggler/ohhell/internal/common/clock"
	"github.com/KirkDiggler/ohhell/internal/common/uuid"
	"github.com/KirkDiggler/ohhell/internal/models"
)

type memoryEntry struct {
	data      []byte
	username  string
	expiresAt time.Time
}

// memoryRepository keeps sessions in process, for single-instance and
// offline deployments
type memoryRepository struct {
	mu       sync.Mutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	uuid     uuid.UUID
	clock    clock.Clock
}

// NewMemory creates an in-process session repository
func NewMemory(cfg *Config) (*memoryRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.TTL <= 0 {
		return nil, errors.New("session TTL must be positive")
	}

	cfg.defaults()

	return &memoryRepository{
		sessions: make(map[string]memoryEntry),
		ttl:      cfg.TTL,
		uuid:     cfg.UUID,
		clock:    cfg.Clock,
	}, nil
}

func (r *memoryRepository) CreateSession(ctx context.Context) (*models.Session, error) {
	now := r.clock.Now()
	session := &models.Session{
		ID:        r.uuid.NewUUID(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := r.SaveSession(ctx, &SaveSessionInput{Session: session}); err != nil {
		return nil, err
	}
	return session, nil
}

func (r *memoryRepository) GetSession(_ context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	r.mu.Lock()
	entry, ok := r.sessions[input.SessionID]
	if ok && !r.clock.Now().Before(entry.expiresAt) {
		delete(r.sessions, input.SessionID)
		ok = false
	}
	r.mu.Unlock()

	if !ok {
		return nil, ErrSessionNotFound
	}

	// Sessions are stored encoded so callers never share state
	var session models.Session
	if err := json.Unmarshal(entry.data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

func (r *memoryRepository) SaveSession(_ context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil || input.Session.ID == "" {
		return errors.New("input and session cannot be empty")
	}

	now := r.clock.Now()
	input.Session.UpdatedAt = now

	data, err := json.Marshal(input.Session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[input.Session.ID] = memoryEntry{
		data:      data,
		username:  input.Session.Username,
		expiresAt: now.Add(r.ttl),
	}
	r.sweep(now)
	return nil
}

func (r *memoryRepository) DeleteSession(_ context.Context, input *DeleteSessionInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[input.SessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(r.sessions, input.SessionID)
	return nil
}

func (r *memoryRepository) DeleteUserSessions(_ context.Context, input *DeleteUserSessionsInput) error {
	if input == nil || input.Username == "" {
		return errors.New("input and username cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for id, entry := range r.sessions {
		if entry.username == input.Username {
			delete(r.sessions, id)
		}
	}
	return nil
}

// sweep drops expired sessions. Callers hold the lock.
func (r *memoryRepository) sweep(now time.Time) {
	for id, entry := range r.sessions {
		if !now.Before(entry.expiresAt) {
			delete(r.sessions, id)
		}
	}
}

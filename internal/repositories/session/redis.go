package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/ohhell/internal/common/clock"
	"github.com/KirkDiggler/ohhell/internal/common/uuid"
	"github.com/KirkDiggler/ohhell/internal/models"
)

const (
	// Key prefixes for Redis
	sessionKeyPrefix     = "session:"
	userSessionKeyPrefix = "user:sessions:"
)

// Config holds configuration for the session repositories
type Config struct {
	// Redis client, required by NewRedis only
	RedisClient *redis.Client

	// TTL is how long an idle session lives
	TTL time.Duration

	// UUID generates session IDs
	UUID uuid.UUID

	// Clock stamps sessions
	Clock clock.Clock
}

func (cfg *Config) defaults() {
	if cfg.UUID == nil {
		cfg.UUID = uuid.New()
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
	uuid   uuid.UUID
	clock  clock.Clock
}

// NewRedis creates a new Redis-backed session repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if cfg.TTL <= 0 {
		return nil, errors.New("session TTL must be positive")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	cfg.defaults()

	return &redisRepository{
		client: cfg.RedisClient,
		ttl:    cfg.TTL,
		uuid:   cfg.UUID,
		clock:  cfg.Clock,
	}, nil
}

// CreateSession stores a new empty session
func (r *redisRepository) CreateSession(ctx context.Context) (*models.Session, error) {
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

// GetSession retrieves a session by ID from Redis
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	sessionJSON, err := r.client.Get(ctx, sessionKeyPrefix+input.SessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// SaveSession persists a session to Redis
func (r *redisRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil || input.Session.ID == "" {
		return errors.New("input and session cannot be empty")
	}

	input.Session.UpdatedAt = r.clock.Now()

	sessionJSON, err := json.Marshal(input.Session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, sessionKeyPrefix+input.Session.ID, sessionJSON, r.ttl)

	// Track the sessions of a user so they can be ended together
	if input.Session.Username != "" {
		userKey := userSessionKeyPrefix + input.Session.Username
		pipe.SAdd(ctx, userKey, input.Session.ID)
		pipe.Expire(ctx, userKey, r.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// DeleteSession removes a session from Redis
func (r *redisRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	session, err := r.GetSession(ctx, &GetSessionInput{SessionID: input.SessionID})
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, sessionKeyPrefix+input.SessionID)
	if session.Username != "" {
		pipe.SRem(ctx, userSessionKeyPrefix+session.Username, input.SessionID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// DeleteUserSessions removes every session of a user
func (r *redisRepository) DeleteUserSessions(ctx context.Context, input *DeleteUserSessionsInput) error {
	if input == nil || input.Username == "" {
		return errors.New("input and username cannot be empty")
	}

	userKey := userSessionKeyPrefix + input.Username
	sessionIDs, err := r.client.SMembers(ctx, userKey).Result()
	if err != nil {
		return fmt.Errorf("failed to get user sessions: %w", err)
	}

	pipe := r.client.Pipeline()
	for _, id := range sessionIDs {
		session, err := r.GetSession(ctx, &GetSessionInput{SessionID: id})
		if err != nil {
			if errors.Is(err, ErrSessionNotFound) {
				continue
			}
			return err
		}
		// the browser may have logged out and in as someone else since
		if session.Username != input.Username {
			continue
		}
		pipe.Del(ctx, sessionKeyPrefix+id)
	}
	pipe.Del(ctx, userKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete user sessions: %w", err)
	}

	return nil
}

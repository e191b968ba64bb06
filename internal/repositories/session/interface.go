package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/ohhell/internal/repositories/session Repository

import (
	"context"
	"errors"

	"github.com/KirkDiggler/ohhell/internal/models"
)

// ErrSessionNotFound is returned when a session is missing or expired
var ErrSessionNotFound = errors.New("session not found")

// Repository defines the interface for browser session persistence
type Repository interface {
	// CreateSession stores a new empty session with a generated ID
	CreateSession(ctx context.Context) (*models.Session, error)

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// SaveSession persists a session and refreshes its expiry
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// DeleteSession removes a session
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error

	// DeleteUserSessions removes every session logged in as a user
	DeleteUserSessions(ctx context.Context, input *DeleteUserSessionsInput) error
}

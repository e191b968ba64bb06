package user

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/ohhell/internal/repositories/user Repository

import (
	"context"

	"github.com/KirkDiggler/ohhell/internal/models"
)

// Repository defines the interface for user account persistence
type Repository interface {
	// ListUsers returns every stored user in sheet order
	ListUsers(ctx context.Context) ([]*models.User, error)

	// GetUser retrieves a user by username
	GetUser(ctx context.Context, input *GetUserInput) (*models.User, error)

	// AddUser appends a user
	AddUser(ctx context.Context, input *AddUserInput) error

	// UpdateUser replaces the user stored under OldUsername
	UpdateUser(ctx context.Context, input *UpdateUserInput) error

	// DeleteUser removes a user
	DeleteUser(ctx context.Context, input *DeleteUserInput) error
}

package user

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/ohhell/internal/services/user Service

import (
	"context"

	"github.com/KirkDiggler/ohhell/internal/models"
)

// Service defines the admin operations on user accounts
type Service interface {
	// ListUsers returns every stored user
	ListUsers(ctx context.Context) ([]*models.User, error)

	// AddUser creates a user with a password
	AddUser(ctx context.Context, input *AddUserInput) error

	// EditUser renames a user and optionally changes the password
	EditUser(ctx context.Context, input *EditUserInput) error

	// DeleteUser removes a user and ends their sessions
	DeleteUser(ctx context.Context, input *DeleteUserInput) error

	// ResetPassword sets the password of a user to the empty string
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}

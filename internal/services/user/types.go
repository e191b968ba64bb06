package user

import (
	"log/slog"

	sessionRepo "github.com/KirkDiggler/ohhell/internal/repositories/session"
	userRepo "github.com/KirkDiggler/ohhell/internal/repositories/user"
)

// Config holds configuration for the user service
type Config struct {
	UserRepo userRepo.Repository

	// SessionRepo is used to log out deleted and renamed users
	SessionRepo sessionRepo.Repository

	// Logger defaults to a discarding logger
	Logger *slog.Logger
}

type AddUserInput struct {
	Username string
	Password string
}

type EditUserInput struct {
	OldUsername string
	NewUsername string

	// NewPassword is only applied when not empty
	NewPassword string
}

type DeleteUserInput struct {
	Username string
}

type ResetPasswordInput struct {
	Username string
}

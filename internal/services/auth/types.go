package auth

import (
	"log/slog"

	userRepo "github.com/KirkDiggler/ohhell/internal/repositories/user"
)

// DevUsername is the account used by the development bypass
const DevUsername = "dev_user"

// Config holds configuration for the auth service
type Config struct {
	// AdminUsername and AdminPassword identify the admin account, which is
	// never stored in the users sheet
	AdminUsername string
	AdminPassword string

	// DevMode enables the login bypass
	DevMode bool

	UserRepo userRepo.Repository

	// Logger defaults to a discarding logger
	Logger *slog.Logger
}

// AuthenticateInput contains the submitted credentials
type AuthenticateInput struct {
	Username string
	Password string
}

// AuthenticateOutput identifies the logged in account
type AuthenticateOutput struct {
	Username string
	IsAdmin  bool
}

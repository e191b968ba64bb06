package auth

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/ohhell/internal/services/auth Service

import "context"

// Service defines the interface for login operations
type Service interface {
	// Authenticate checks a username and password against the admin account
	// and the stored users
	Authenticate(ctx context.Context, input *AuthenticateInput) (*AuthenticateOutput, error)

	// IsAdmin reports whether a username is the configured admin
	IsAdmin(username string) bool

	// CanBypass reports whether the development login is enabled
	CanBypass() bool

	// DevBypass logs in as the development user
	DevBypass(ctx context.Context) (*AuthenticateOutput, error)
}

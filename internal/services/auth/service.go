package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/ohhell/internal/logger"
	userRepo "github.com/KirkDiggler/ohhell/internal/repositories/user"
)

// service implements the Service interface
type service struct {
	adminUsername string
	adminPassword string
	devMode       bool
	userRepo      userRepo.Repository
	log           *slog.Logger
}

// New creates a new auth service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.UserRepo == nil {
		return nil, ErrNilUserRepo
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Discard()
	}

	return &service{
		adminUsername: cfg.AdminUsername,
		adminPassword: cfg.AdminPassword,
		devMode:       cfg.DevMode,
		userRepo:      cfg.UserRepo,
		log:           log,
	}, nil
}

// Authenticate checks the admin account first, then the users sheet
func (s *service) Authenticate(ctx context.Context, input *AuthenticateInput) (*AuthenticateOutput, error) {
	if input == nil {
		return nil, ErrInvalidCredentials
	}

	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, ErrInvalidCredentials
	}

	if s.isAdminLogin(username, input.Password) {
		return &AuthenticateOutput{Username: username, IsAdmin: true}, nil
	}

	user, err := s.userRepo.GetUser(ctx, &userRepo.GetUserInput{Username: username})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !user.CheckPassword(input.Password) {
		return nil, ErrInvalidCredentials
	}

	return &AuthenticateOutput{
		Username: user.Username,
		IsAdmin:  s.IsAdmin(user.Username),
	}, nil
}

func (s *service) isAdminLogin(username, password string) bool {
	if s.adminUsername == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.adminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) == 1
	return userOK && passOK
}

// IsAdmin reports whether a username is the configured admin
func (s *service) IsAdmin(username string) bool {
	return s.adminUsername != "" && username == s.adminUsername
}

// CanBypass reports whether the development login is enabled
func (s *service) CanBypass() bool {
	return s.devMode
}

// DevBypass logs in as the development user
func (s *service) DevBypass(ctx context.Context) (*AuthenticateOutput, error) {
	if !s.devMode {
		return nil, ErrBypassDisabled
	}

	s.log.Warn("authentication bypassed", "username", DevUsername)
	return &AuthenticateOutput{Username: DevUsername}, nil
}

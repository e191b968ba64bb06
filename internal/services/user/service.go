package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/ohhell/internal/logger"
	"github.com/KirkDiggler/ohhell/internal/models"
	sessionRepo "github.com/KirkDiggler/ohhell/internal/repositories/session"
	userRepo "github.com/KirkDiggler/ohhell/internal/repositories/user"
)

// service implements the Service interface
type service struct {
	userRepo    userRepo.Repository
	sessionRepo sessionRepo.Repository
	log         *slog.Logger
}

// New creates a new user service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.UserRepo == nil {
		return nil, ErrNilUserRepo
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Discard()
	}

	return &service{
		userRepo:    cfg.UserRepo,
		sessionRepo: cfg.SessionRepo,
		log:         log,
	}, nil
}

// ListUsers returns every stored user
func (s *service) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.ListUsers(ctx)
}

// AddUser creates a user with a password
func (s *service) AddUser(ctx context.Context, input *AddUserInput) error {
	if input == nil {
		return ErrCredentialsRequired
	}

	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return ErrCredentialsRequired
	}

	if _, err := s.lookup(ctx, username); err == nil {
		return ErrUserExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return err
	}

	user := &models.User{Username: username}
	if err := user.SetPassword(input.Password); err != nil {
		return err
	}

	return s.userRepo.AddUser(ctx, &userRepo.AddUserInput{User: user})
}

// EditUser renames a user and optionally changes the password
func (s *service) EditUser(ctx context.Context, input *EditUserInput) error {
	if input == nil {
		return ErrUsernameRequired
	}

	oldUsername := strings.TrimSpace(input.OldUsername)
	newUsername := strings.TrimSpace(input.NewUsername)
	if oldUsername == "" || newUsername == "" {
		return ErrUsernameRequired
	}

	user, err := s.lookup(ctx, oldUsername)
	if err != nil {
		return err
	}

	if newUsername != oldUsername {
		if _, err := s.lookup(ctx, newUsername); err == nil {
			return ErrUserExists
		} else if !errors.Is(err, ErrUserNotFound) {
			return err
		}
	}

	user.Username = newUsername
	if input.NewPassword != "" {
		if err := user.SetPassword(input.NewPassword); err != nil {
			return err
		}
	}

	if err := s.userRepo.UpdateUser(ctx, &userRepo.UpdateUserInput{
		OldUsername: oldUsername,
		User:        user,
	}); err != nil {
		return err
	}

	if newUsername != oldUsername || input.NewPassword != "" {
		s.endSessions(ctx, oldUsername)
	}
	return nil
}

// DeleteUser removes a user and ends their sessions
func (s *service) DeleteUser(ctx context.Context, input *DeleteUserInput) error {
	if input == nil || strings.TrimSpace(input.Username) == "" {
		return ErrUsernameRequired
	}
	username := strings.TrimSpace(input.Username)

	err := s.userRepo.DeleteUser(ctx, &userRepo.DeleteUserInput{Username: username})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	s.endSessions(ctx, username)
	return nil
}

// ResetPassword sets the password of a user to the empty string
func (s *service) ResetPassword(ctx context.Context, input *ResetPasswordInput) error {
	if input == nil || strings.TrimSpace(input.Username) == "" {
		return ErrUsernameRequired
	}
	username := strings.TrimSpace(input.Username)

	user, err := s.lookup(ctx, username)
	if err != nil {
		return err
	}

	if err := user.SetPassword(""); err != nil {
		return err
	}

	return s.userRepo.UpdateUser(ctx, &userRepo.UpdateUserInput{
		OldUsername: username,
		User:        user,
	})
}

func (s *service) lookup(ctx context.Context, username string) (*models.User, error) {
	user, err := s.userRepo.GetUser(ctx, &userRepo.GetUserInput{Username: username})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user %q: %w", username, err)
	}
	return user, nil
}

// endSessions logs a user out everywhere. A failure leaves the sessions to
// expire on their own.
func (s *service) endSessions(ctx context.Context, username string) {
	err := s.sessionRepo.DeleteUserSessions(ctx, &sessionRepo.DeleteUserSessionsInput{Username: username})
	if err != nil {
		s.log.Warn("failed to end user sessions", "username", username, logger.Err(err))
	}
}

package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/KirkDiggler/ohhell/internal/models"
	userRepo "github.com/KirkDiggler/ohhell/internal/repositories/user"
	userMocks "github.com/KirkDiggler/ohhell/internal/repositories/user/mocks"
)

type AuthServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUserRepo *userMocks.MockRepository
	service      *service
	ctx          context.Context
	alice        *models.User
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUserRepo = userMocks.NewMockRepository(s.mockCtrl)
	s.ctx = context.Background()

	models.PasswordCost = bcrypt.MinCost
	s.alice = &models.User{Username: "alice"}
	s.Require().NoError(s.alice.SetPassword("wonderland"))

	svc, err := New(&Config{
		AdminUsername: "admin",
		AdminPassword: "hunter2",
		UserRepo:      s.mockUserRepo,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *AuthServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilUserRepo)
}

func (s *AuthServiceTestSuite) TestAuthenticateAdmin() {
	output, err := s.service.Authenticate(s.ctx, &AuthenticateInput{Username: "admin", Password: "hunter2"})
	s.Require().NoError(err)
	s.Equal("admin", output.Username)
	s.True(output.IsAdmin)
}

func (s *AuthServiceTestSuite) TestAuthenticateAdminWrongPasswordFallsThroughToUsers() {
	s.mockUserRepo.EXPECT().
		GetUser(gomock.Any(), &userRepo.GetUserInput{Username: "admin"}).
		Return(nil, userRepo.ErrUserNotFound)

	_, err := s.service.Authenticate(s.ctx, &AuthenticateInput{Username: "admin", Password: "nope"})
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestAuthenticateUser() {
	s.mockUserRepo.EXPECT().
		GetUser(gomock.Any(), &userRepo.GetUserInput{Username: "alice"}).
		Return(s.alice, nil)

	output, err := s.service.Authenticate(s.ctx, &AuthenticateInput{Username: " alice ", Password: "wonderland"})
	s.Require().NoError(err)
	s.Equal("alice", output.Username)
	s.False(output.IsAdmin)
}

func (s *AuthServiceTestSuite) TestAuthenticateUserWrongPassword() {
	s.mockUserRepo.EXPECT().
		GetUser(gomock.Any(), &userRepo.GetUserInput{Username: "alice"}).
		Return(s.alice, nil)

	_, err := s.service.Authenticate(s.ctx, &AuthenticateInput{Username: "alice", Password: "looking-glass"})
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestAuthenticateResetPasswordAcceptsEmpty() {
	reset := &models.User{Username: "bob"}
	s.Require().NoError(reset.SetPassword(""))

	s.mockUserRepo.EXPECT().
		GetUser(gomock.Any(), &userRepo.GetUserInput{Username: "bob"}).
		Return(reset, nil)

	output, err := s.service.Authenticate(s.ctx, &AuthenticateInput{Username: "bob"})
	s.Require().NoError(err)
	s.Equal("bob", output.Username)
}

func (s *AuthServiceTestSuite) TestAuthenticateRepositoryFailure() {
	s.mockUserRepo.EXPECT().
		GetUser(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("sheet unavailable"))

	_, err := s.service.Authenticate(s.ctx, &AuthenticateInput{Username: "alice", Password: "wonderland"})
	s.Require().Error(err)
	s.NotErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestAuthenticateEmptyUsername() {
	_, err := s.service.Authenticate(s.ctx, &AuthenticateInput{Password: "hunter2"})
	s.ErrorIs(err, ErrInvalidCredentials)

	_, err = s.service.Authenticate(s.ctx, nil)
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestIsAdmin() {
	s.True(s.service.IsAdmin("admin"))
	s.False(s.service.IsAdmin("alice"))
}

func (s *AuthServiceTestSuite) TestDevBypass() {
	s.False(s.service.CanBypass())
	_, err := s.service.DevBypass(s.ctx)
	s.ErrorIs(err, ErrBypassDisabled)

	s.service.devMode = true
	s.True(s.service.CanBypass())
	output, err := s.service.DevBypass(s.ctx)
	s.Require().NoError(err)
	s.Equal(DevUsername, output.Username)
	s.False(output.IsAdmin)
}

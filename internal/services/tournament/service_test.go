package tournament

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/ohhell/internal/models"
	tournamentRepo "github.com/KirkDiggler/ohhell/internal/repositories/tournament"
	tournamentMocks "github.com/KirkDiggler/ohhell/internal/repositories/tournament/mocks"
)

type TournamentServiceTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockRepo *tournamentMocks.MockRepository
	service  Service
	ctx      context.Context
	session  *models.Session
}

func (s *TournamentServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = tournamentMocks.NewMockRepository(s.mockCtrl)
	s.ctx = context.Background()
	s.session = &models.Session{ID: "sid", Username: "alice", TournamentID: "t1", TournamentName: "Summer Cup"}

	svc, err := New(&Config{
		TournamentRepo: s.mockRepo,
		UsersSheetID:   "users-sheet",
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *TournamentServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTournamentServiceSuite(t *testing.T) {
	suite.Run(t, new(TournamentServiceTestSuite))
}

func (s *TournamentServiceTestSuite) expectRoster(players ...string) {
	s.mockRepo.EXPECT().
		ListPlayers(gomock.Any(), &tournamentRepo.ListPlayersInput{TournamentID: "t1"}).
		Return(players, nil)
}

func (s *TournamentServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilTournamentRepo)
}

func (s *TournamentServiceTestSuite) TestListTournamentsHidesUsersAndTemplate() {
	s.mockRepo.EXPECT().ListTournaments(gomock.Any()).Return([]*models.Tournament{
		{ID: "t1", Name: "Summer Cup"},
		{ID: "users-sheet", Name: "Users"},
		{ID: "tpl", Name: TemplateName},
		{ID: "t2", Name: "Winter Cup"},
	}, nil)

	got, err := s.service.ListTournaments(s.ctx)
	s.Require().NoError(err)
	s.Equal([]*models.Tournament{{ID: "t1", Name: "Summer Cup"}, {ID: "t2", Name: "Winter Cup"}}, got)
}

func (s *TournamentServiceTestSuite) TestListTournamentsError() {
	expectedError := errors.New("drive unavailable")
	s.mockRepo.EXPECT().ListTournaments(gomock.Any()).Return(nil, expectedError)

	_, err := s.service.ListTournaments(s.ctx)
	s.ErrorIs(err, expectedError)
}

func (s *TournamentServiceTestSuite) TestCreateTournament() {
	s.mockRepo.EXPECT().
		CreateTournament(gomock.Any(), &tournamentRepo.CreateTournamentInput{Name: "Autumn Cup"}).
		Return(&models.Tournament{ID: "t3", Name: "Autumn Cup"}, nil)

	got, err := s.service.CreateTournament(s.ctx, &CreateTournamentInput{Name: "  Autumn Cup "})
	s.Require().NoError(err)
	s.Equal("t3", got.ID)

	_, err = s.service.CreateTournament(s.ctx, &CreateTournamentInput{Name: " "})
	s.ErrorIs(err, ErrNameRequired)
}

func (s *TournamentServiceTestSuite) TestSelectTournamentKeepsConfigForSameTournament() {
	s.session.SelectedPlayers = []string{"Alice", "Bob"}

	s.Require().NoError(s.service.SelectTournament(s.ctx, &SelectTournamentInput{
		Session:        s.session,
		TournamentID:   "t1",
		TournamentName: "Summer Cup",
	}))
	s.Equal([]string{"Alice", "Bob"}, s.session.SelectedPlayers)
}

func (s *TournamentServiceTestSuite) TestSelectTournamentSwitchClearsConfig() {
	s.session.SelectedPlayers = []string{"Alice", "Bob"}
	s.session.Game = &models.Game{}

	s.Require().NoError(s.service.SelectTournament(s.ctx, &SelectTournamentInput{
		Session:        s.session,
		TournamentID:   "t2",
		TournamentName: "Winter Cup",
	}))
	s.Equal("t2", s.session.TournamentID)
	s.Equal("Winter Cup", s.session.TournamentName)
	s.Nil(s.session.SelectedPlayers)
	s.Nil(s.session.Game)
}

func (s *TournamentServiceTestSuite) TestSelectTournamentRequiresID() {
	err := s.service.SelectTournament(s.ctx, &SelectTournamentInput{Session: s.session})
	s.ErrorIs(err, ErrTournamentRequired)
	s.Equal("t1", s.session.TournamentID)
}

func (s *TournamentServiceTestSuite) TestListPlayersRequiresTournament() {
	_, err := s.service.ListPlayers(s.ctx, &ListPlayersInput{Session: &models.Session{}})
	s.ErrorIs(err, ErrNoTournament)
}

func (s *TournamentServiceTestSuite) TestAddPlayer() {
	s.expectRoster("Alice", "Bob")
	s.mockRepo.EXPECT().
		AddPlayer(gomock.Any(), &tournamentRepo.AddPlayerInput{TournamentID: "t1", Name: "Carol"}).
		Return(nil)

	s.NoError(s.service.AddPlayer(s.ctx, &AddPlayerInput{Session: s.session, Name: " Carol "}))
}

func (s *TournamentServiceTestSuite) TestAddPlayerRejectsDuplicate() {
	s.expectRoster("Alice", "Bob")
	s.ErrorIs(s.service.AddPlayer(s.ctx, &AddPlayerInput{Session: s.session, Name: "alice"}), ErrPlayerExists)
}

func (s *TournamentServiceTestSuite) TestAddPlayerRequiresName() {
	s.ErrorIs(s.service.AddPlayer(s.ctx, &AddPlayerInput{Session: s.session}), ErrPlayerNameRequired)
}

func (s *TournamentServiceTestSuite) TestSelectPlayers() {
	s.session.PlayerOrder = []string{"Bob", "Alice"}
	s.session.DealerConfigured = true
	s.expectRoster("Alice", "Bob", "Carol")

	s.Require().NoError(s.service.SelectPlayers(s.ctx, &SelectPlayersInput{
		Session: s.session,
		Players: []string{"Alice", "Carol", "Alice", " "},
	}))
	s.Equal([]string{"Alice", "Carol"}, s.session.SelectedPlayers)
	s.Nil(s.session.PlayerOrder, "a new table needs a new order")
	s.False(s.session.DealerConfigured)
}

func (s *TournamentServiceTestSuite) TestSelectSamePlayersKeepsConfig() {
	s.session.SelectedPlayers = []string{"Alice", "Bob"}
	s.session.PlayerOrder = []string{"Bob", "Alice"}
	s.expectRoster("Alice", "Bob")

	s.Require().NoError(s.service.SelectPlayers(s.ctx, &SelectPlayersInput{
		Session: s.session,
		Players: []string{"Bob", "Alice"},
	}))
	s.Equal([]string{"Bob", "Alice"}, s.session.PlayerOrder)
}

func (s *TournamentServiceTestSuite) TestSelectPlayersNeedsTwo() {
	err := s.service.SelectPlayers(s.ctx, &SelectPlayersInput{Session: s.session, Players: []string{"Alice"}})
	s.ErrorIs(err, ErrNotEnoughPlayers)
}

func (s *TournamentServiceTestSuite) TestSelectPlayersRejectsStrangers() {
	s.expectRoster("Alice", "Bob")
	err := s.service.SelectPlayers(s.ctx, &SelectPlayersInput{Session: s.session, Players: []string{"Alice", "Mallory"}})
	s.ErrorIs(err, ErrUnknownPlayer)
}

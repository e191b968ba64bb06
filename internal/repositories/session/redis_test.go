package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/ohhell/internal/common/clock"
	uuidmocks "github.com/KirkDiggler/ohhell/internal/common/uuid/mocks"
	"github.com/KirkDiggler/ohhell/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx      context.Context
	mr       *miniredis.Miniredis
	client   *redis.Client
	mockUUID *uuidmocks.MockUUID
	repo     Repository
	testNow  time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()

	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	ctrl := gomock.NewController(s.T())
	s.mockUUID = uuidmocks.NewMockUUID(ctrl)
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
		TTL:         time.Hour,
		UUID:        s.mockUUID,
		Clock:       clock.Fixed(s.testNow),
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidatesConfig() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&Config{})
	s.Error(err)

	_, err = NewRedis(&Config{RedisClient: s.client})
	s.Error(err, "ttl is required")
}

func (s *RedisRepositoryTestSuite) TestCreateAndGetSession() {
	s.mockUUID.EXPECT().NewUUID().Return("session-1")

	created, err := s.repo.CreateSession(s.ctx)
	s.Require().NoError(err)
	s.Equal("session-1", created.ID)
	s.True(created.CreatedAt.Equal(s.testNow))

	s.True(s.mr.Exists("session:session-1"))
	s.Equal(time.Hour, s.mr.TTL("session:session-1"))

	got, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.Equal("session-1", got.ID)
	s.False(got.LoggedIn())
}

func (s *RedisRepositoryTestSuite) TestSaveSessionRoundTripsGame() {
	session := &models.Session{
		ID:              "session-2",
		Username:        "alice",
		TournamentID:    "t1",
		SelectedPlayers: []string{"Alice", "Bob"},
		SelectedHands:   []int{2, 1, 2},
		Game: models.NewGame("t1", "Cup",
			[]*models.Player{models.NewPlayer("Alice"), models.NewPlayer("Bob")},
			models.GameModeDownThenUp,
			[]models.Hand{{Cards: 2, DealerIndex: 0}, {Cards: 1, DealerIndex: 1}},
			"25-04-05#10-00-00"),
	}
	session.Game.CurrentBids["Alice"] = 1
	session.AddFlash(models.FlashSuccess, "Game started")

	s.Require().NoError(s.repo.SaveSession(s.ctx, &SaveSessionInput{Session: session}))

	got, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: "session-2"})
	s.Require().NoError(err)
	s.Equal("alice", got.Username)
	s.Equal([]int{2, 1, 2}, got.SelectedHands)
	s.Require().NotNil(got.Game)
	s.Equal(1, got.Game.CurrentBids["Alice"])
	s.Equal("Bob", got.Game.Players[1].Name)
	s.Equal([]models.Flash{{Category: models.FlashSuccess, Message: "Game started"}}, got.Flashes)

	s.True(s.mr.Exists("user:sessions:alice"))
}

func (s *RedisRepositoryTestSuite) TestGetMissingSession() {
	_, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: "nope"})
	s.ErrorIs(err, ErrSessionNotFound)

	_, err = s.repo.GetSession(s.ctx, &GetSessionInput{})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestSessionExpires() {
	s.mockUUID.EXPECT().NewUUID().Return("session-3")
	_, err := s.repo.CreateSession(s.ctx)
	s.Require().NoError(err)

	s.mr.FastForward(time.Hour + time.Second)

	_, err = s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: "session-3"})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestDeleteSession() {
	session := &models.Session{ID: "session-4", Username: "bob"}
	s.Require().NoError(s.repo.SaveSession(s.ctx, &SaveSessionInput{Session: session}))

	s.Require().NoError(s.repo.DeleteSession(s.ctx, &DeleteSessionInput{SessionID: "session-4"}))
	s.False(s.mr.Exists("session:session-4"))

	err := s.repo.DeleteSession(s.ctx, &DeleteSessionInput{SessionID: "session-4"})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestDeleteUserSessions() {
	for _, id := range []string{"a", "b"} {
		s.Require().NoError(s.repo.SaveSession(s.ctx, &SaveSessionInput{
			Session: &models.Session{ID: id, Username: "carol"},
		}))
	}

	// "b" logged out and back in as someone else
	s.Require().NoError(s.repo.SaveSession(s.ctx, &SaveSessionInput{
		Session: &models.Session{ID: "b", Username: "dave"},
	}))

	s.Require().NoError(s.repo.DeleteUserSessions(s.ctx, &DeleteUserSessionsInput{Username: "carol"}))

	_, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: "a"})
	s.ErrorIs(err, ErrSessionNotFound)

	b, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: "b"})
	s.Require().NoError(err)
	s.Equal("dave", b.Username)
	s.False(s.mr.Exists("user:sessions:carol"))
}

package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/ohhell/internal/models"
	"github.com/KirkDiggler/ohhell/internal/sheets"
	sheetsmocks "github.com/KirkDiggler/ohhell/internal/sheets/mocks"
)

const testSpreadsheetID = "users-sheet"

type SheetsRepositoryTestSuite struct {
	suite.Suite
	ctx      context.Context
	workbook *sheets.SQLite
	repo     *sheetsRepository
}

func (s *SheetsRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()

	workbook, err := sheets.NewSQLite(&sheets.SQLiteConfig{Path: ":memory:"})
	s.Require().NoError(err)
	s.workbook = workbook

	_, err = workbook.EnsureSpreadsheet(s.ctx, testSpreadsheetID, "Users")
	s.Require().NoError(err)

	repo, err := NewSheets(&Config{
		Client:        workbook,
		SpreadsheetID: testSpreadsheetID,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *SheetsRepositoryTestSuite) TearDownTest() {
	s.workbook.Close()
}

func (s *SheetsRepositoryTestSuite) addUsers(names ...string) {
	for _, name := range names {
		s.Require().NoError(s.repo.AddUser(s.ctx, &AddUserInput{
			User: &models.User{Username: name, PasswordHash: "hash-" + name},
		}))
	}
}

func (s *SheetsRepositoryTestSuite) TestNewSheetsValidatesConfig() {
	_, err := NewSheets(nil)
	s.Error(err)

	_, err = NewSheets(&Config{})
	s.Error(err)
}

func (s *SheetsRepositoryTestSuite) TestWorksheetCreatedWithHeader() {
	users, err := s.repo.ListUsers(s.ctx)
	s.Require().NoError(err)
	s.Empty(users)

	values, err := s.workbook.GetValues(s.ctx, testSpreadsheetID, sheets.Whole(WorksheetTitle))
	s.Require().NoError(err)
	s.Equal([][]string{{"username", "password_hash"}}, values)
}

func (s *SheetsRepositoryTestSuite) TestAddAndGetUser() {
	s.addUsers("alice", "bob")

	users, err := s.repo.ListUsers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(users, 2)
	s.Equal("alice", users[0].Username)
	s.Equal("hash-bob", users[1].PasswordHash)

	bob, err := s.repo.GetUser(s.ctx, &GetUserInput{Username: "bob"})
	s.Require().NoError(err)
	s.Equal("hash-bob", bob.PasswordHash)

	_, err = s.repo.GetUser(s.ctx, &GetUserInput{Username: "carol"})
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *SheetsRepositoryTestSuite) TestUpdateUser() {
	s.addUsers("alice", "bob")

	err := s.repo.UpdateUser(s.ctx, &UpdateUserInput{
		OldUsername: "bob",
		User:        &models.User{Username: "robert", PasswordHash: "new"},
	})
	s.Require().NoError(err)

	_, err = s.repo.GetUser(s.ctx, &GetUserInput{Username: "bob"})
	s.ErrorIs(err, ErrUserNotFound)

	robert, err := s.repo.GetUser(s.ctx, &GetUserInput{Username: "robert"})
	s.Require().NoError(err)
	s.Equal("new", robert.PasswordHash)

	err = s.repo.UpdateUser(s.ctx, &UpdateUserInput{
		OldUsername: "nobody",
		User:        &models.User{Username: "x"},
	})
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *SheetsRepositoryTestSuite) TestDeleteUser() {
	s.addUsers("alice", "bob", "carol")

	s.Require().NoError(s.repo.DeleteUser(s.ctx, &DeleteUserInput{Username: "bob"}))

	users, err := s.repo.ListUsers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(users, 2)
	s.Equal("alice", users[0].Username)
	s.Equal("carol", users[1].Username)

	err = s.repo.DeleteUser(s.ctx, &DeleteUserInput{Username: "bob"})
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *SheetsRepositoryTestSuite) TestBlankRowsAreSkipped() {
	s.addUsers("alice")
	s.Require().NoError(s.workbook.UpdateValues(s.ctx, testSpreadsheetID, sheets.Row(WorksheetTitle, 4, 1, 2), [][]any{{"dave", "h"}}))

	users, err := s.repo.ListUsers(s.ctx)
	s.Require().NoError(err)
	s.Len(users, 2)

	// the user below the gap still maps to its own row
	s.Require().NoError(s.repo.DeleteUser(s.ctx, &DeleteUserInput{Username: "dave"}))
	users, err = s.repo.ListUsers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(users, 1)
	s.Equal("alice", users[0].Username)
}

func (s *SheetsRepositoryTestSuite) TestMissingHeaderIsUnexpectedShape() {
	_, err := s.repo.ListUsers(s.ctx)
	s.Require().NoError(err)
	s.Require().NoError(s.workbook.UpdateValues(s.ctx, testSpreadsheetID, sheets.Row(WorksheetTitle, 1, 1, 2), [][]any{{"name", "secret"}}))

	_, err = s.repo.ListUsers(s.ctx)
	s.ErrorIs(err, sheets.ErrUnexpectedShape)
}

func (s *SheetsRepositoryTestSuite) TestUnconfiguredSpreadsheet() {
	repo, err := NewSheets(&Config{Client: s.workbook})
	s.Require().NoError(err)

	_, err = repo.ListUsers(s.ctx)
	s.ErrorIs(err, sheets.ErrUnavailable)
}

func (s *SheetsRepositoryTestSuite) TestServiceFailureIsWrapped() {
	ctrl := gomock.NewController(s.T())
	client := sheetsmocks.NewMockClient(ctrl)
	repo, err := NewSheets(&Config{Client: client, SpreadsheetID: testSpreadsheetID})
	s.Require().NoError(err)

	client.EXPECT().
		ListWorksheets(gomock.Any(), testSpreadsheetID).
		Return(nil, errors.Join(sheets.ErrUnavailable, errors.New("timeout")))

	_, err = repo.ListUsers(s.ctx)
	s.ErrorIs(err, sheets.ErrUnavailable)
}

func TestSheetsRepositorySuite(t *testing.T) {
	suite.Run(t, new(SheetsRepositoryTestSuite))
}

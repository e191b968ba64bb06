package tournament

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/ohhell/internal/sheets"
	sheetsmocks "github.com/KirkDiggler/ohhell/internal/sheets/mocks"
)

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

	repo, err := NewSheets(&Config{Client: workbook})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *SheetsRepositoryTestSuite) TearDownTest() {
	s.workbook.Close()
}

func (s *SheetsRepositoryTestSuite) TestNewSheetsValidatesConfig() {
	_, err := NewSheets(nil)
	s.Error(err)

	_, err = NewSheets(&Config{})
	s.Error(err)
}

func (s *SheetsRepositoryTestSuite) TestCreateTournamentRenamesDefaultWorksheet() {
	tournament, err := s.repo.CreateTournament(s.ctx, &CreateTournamentInput{Name: "Summer Cup"})
	s.Require().NoError(err)
	s.Equal("Summer Cup", tournament.Name)

	worksheets, err := s.workbook.ListWorksheets(s.ctx, tournament.ID)
	s.Require().NoError(err)
	s.Require().Len(worksheets, 1)
	s.Equal(PlayersWorksheet, worksheets[0].Title)

	values, err := s.workbook.GetValues(s.ctx, tournament.ID, sheets.Whole(PlayersWorksheet))
	s.Require().NoError(err)
	s.Equal([][]string{{PlayerNameHeader}}, values)

	tournaments, err := s.repo.ListTournaments(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(tournaments, 1)
	s.Equal(tournament.ID, tournaments[0].ID)
}

func (s *SheetsRepositoryTestSuite) TestCreateTournamentRequiresName() {
	_, err := s.repo.CreateTournament(s.ctx, &CreateTournamentInput{Name: "  "})
	s.Error(err)
}

func (s *SheetsRepositoryTestSuite) TestPlayersAreSortedWithoutBlanks() {
	tournament, err := s.repo.CreateTournament(s.ctx, &CreateTournamentInput{Name: "Cup"})
	s.Require().NoError(err)

	for _, name := range []string{"Zoe", "Adam", "Mia"} {
		s.Require().NoError(s.repo.AddPlayer(s.ctx, &AddPlayerInput{TournamentID: tournament.ID, Name: name}))
	}
	s.Require().NoError(s.workbook.UpdateValues(s.ctx, tournament.ID, sheets.Cell(PlayersWorksheet, 10, 1), [][]any{{"   "}}))

	players, err := s.repo.ListPlayers(s.ctx, &ListPlayersInput{TournamentID: tournament.ID})
	s.Require().NoError(err)
	s.Equal([]string{"Adam", "Mia", "Zoe"}, players)
}

func (s *SheetsRepositoryTestSuite) TestPlayersWorksheetCreatedOnDemand() {
	spreadsheet, err := s.workbook.CreateSpreadsheet(s.ctx, "Legacy")
	s.Require().NoError(err)

	players, err := s.repo.ListPlayers(s.ctx, &ListPlayersInput{TournamentID: spreadsheet.ID})
	s.Require().NoError(err)
	s.Empty(players)

	_, err = sheets.FindWorksheet(s.ctx, s.workbook, spreadsheet.ID, PlayersWorksheet)
	s.NoError(err)
}

func (s *SheetsRepositoryTestSuite) TestUnknownTournament() {
	_, err := s.repo.ListPlayers(s.ctx, &ListPlayersInput{TournamentID: "missing"})
	s.ErrorIs(err, sheets.ErrNotFound)
}

func (s *SheetsRepositoryTestSuite) TestCreateTournamentFallsBackToAddingRoster() {
	ctrl := gomock.NewController(s.T())
	client := sheetsmocks.NewMockClient(ctrl)
	repo, err := NewSheets(&Config{Client: client})
	s.Require().NoError(err)

	client.EXPECT().CreateSpreadsheet(gomock.Any(), "Cup").
		Return(&sheets.Spreadsheet{ID: "abc", Title: "Cup"}, nil)
	client.EXPECT().ListWorksheets(gomock.Any(), "abc").
		Return([]sheets.Worksheet{{ID: 0, Title: "Sheet1"}}, nil)
	client.EXPECT().RenameWorksheet(gomock.Any(), "abc", int64(0), PlayersWorksheet).
		Return(errors.New("permission denied"))
	client.EXPECT().AddWorksheet(gomock.Any(), "abc", PlayersWorksheet, 100, 1).
		Return(&sheets.Worksheet{ID: 5, Title: PlayersWorksheet}, nil)
	client.EXPECT().UpdateValues(gomock.Any(), "abc", sheets.Cell(PlayersWorksheet, 1, 1), [][]any{{PlayerNameHeader}}).
		Return(nil)

	tournament, err := repo.CreateTournament(s.ctx, &CreateTournamentInput{Name: "Cup"})
	s.Require().NoError(err)
	s.Equal("abc", tournament.ID)
}

func TestSheetsRepositorySuite(t *testing.T) {
	suite.Run(t, new(SheetsRepositoryTestSuite))
}

package sheets

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type SQLiteTestSuite struct {
	suite.Suite
	ctx      context.Context
	workbook *SQLite
	sheet    *Spreadsheet
}

func (s *SQLiteTestSuite) SetupTest() {
	s.ctx = context.Background()

	workbook, err := NewSQLite(&SQLiteConfig{Path: ":memory:"})
	s.Require().NoError(err)
	s.workbook = workbook

	sheet, err := workbook.CreateSpreadsheet(s.ctx, "Friday Night")
	s.Require().NoError(err)
	s.sheet = sheet
}

func (s *SQLiteTestSuite) TearDownTest() {
	s.workbook.Close()
}

func (s *SQLiteTestSuite) TestNewSQLiteValidatesConfig() {
	_, err := NewSQLite(nil)
	s.Error(err)

	_, err = NewSQLite(&SQLiteConfig{})
	s.Error(err)
}

func (s *SQLiteTestSuite) TestCreateSpreadsheetHasDefaultWorksheet() {
	spreadsheets, err := s.workbook.ListSpreadsheets(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(spreadsheets, 1)
	s.Equal("Friday Night", spreadsheets[0].Title)
	s.NotEmpty(spreadsheets[0].ID)

	worksheets, err := s.workbook.ListWorksheets(s.ctx, s.sheet.ID)
	s.Require().NoError(err)
	s.Require().Len(worksheets, 1)
	s.Equal(DefaultWorksheetTitle, worksheets[0].Title)
}

func (s *SQLiteTestSuite) TestEnsureSpreadsheetIsIdempotent() {
	first, err := s.workbook.EnsureSpreadsheet(s.ctx, "users", "Users")
	s.Require().NoError(err)
	second, err := s.workbook.EnsureSpreadsheet(s.ctx, "users", "Ignored")
	s.Require().NoError(err)

	s.Equal("users", first.ID)
	s.Equal("Users", second.Title)

	spreadsheets, err := s.workbook.ListSpreadsheets(s.ctx)
	s.Require().NoError(err)
	s.Len(spreadsheets, 2)
}

func (s *SQLiteTestSuite) TestMissingResourcesAreNotFound() {
	_, err := s.workbook.ListWorksheets(s.ctx, "nope")
	s.ErrorIs(err, ErrNotFound)

	_, err = s.workbook.GetValues(s.ctx, s.sheet.ID, Column("Players", 1))
	s.ErrorIs(err, ErrNotFound)

	_, err = FindWorksheet(s.ctx, s.workbook, s.sheet.ID, "Players")
	s.ErrorIs(err, ErrNotFound)

	err = s.workbook.RenameWorksheet(s.ctx, s.sheet.ID, 9999, "x")
	s.ErrorIs(err, ErrNotFound)
}

func (s *SQLiteTestSuite) TestAddAndRenameWorksheet() {
	ws, err := s.workbook.AddWorksheet(s.ctx, s.sheet.ID, "Game", 200, 50)
	s.Require().NoError(err)
	s.Equal(1, ws.Index)
	s.Equal(200, ws.RowCount)
	s.Equal(50, ws.ColCount)

	_, err = s.workbook.AddWorksheet(s.ctx, s.sheet.ID, "Game", 10, 10)
	s.ErrorIs(err, ErrAlreadyExists)

	s.Require().NoError(s.workbook.RenameWorksheet(s.ctx, s.sheet.ID, ws.ID, "Renamed"))
	found, err := FindWorksheet(s.ctx, s.workbook, s.sheet.ID, "Renamed")
	s.Require().NoError(err)
	s.Equal(ws.ID, found.ID)

	err = s.workbook.RenameWorksheet(s.ctx, s.sheet.ID, ws.ID, DefaultWorksheetTitle)
	s.ErrorIs(err, ErrAlreadyExists)
}

func (s *SQLiteTestSuite) TestUpdateAndGetValues() {
	err := s.workbook.UpdateValues(s.ctx, s.sheet.ID, Cell(DefaultWorksheetTitle, 1, 1), [][]any{
		{"Player Name", nil, 3},
		{},
		{"Bob", 7.5},
	})
	s.Require().NoError(err)

	values, err := s.workbook.GetValues(s.ctx, s.sheet.ID, Whole(DefaultWorksheetTitle))
	s.Require().NoError(err)
	s.Equal([][]string{
		{"Player Name", "", "3"},
		{},
		{"Bob", "7.5"},
	}, values)

	column, err := s.workbook.GetValues(s.ctx, s.sheet.ID, Column(DefaultWorksheetTitle, 1))
	s.Require().NoError(err)
	s.Equal([][]string{{"Player Name"}, {}, {"Bob"}}, column)

	cell, err := s.workbook.GetValues(s.ctx, s.sheet.ID, Cell(DefaultWorksheetTitle, 1, 3))
	s.Require().NoError(err)
	s.Equal([][]string{{"3"}}, cell)

	empty, err := s.workbook.GetValues(s.ctx, s.sheet.ID, Row(DefaultWorksheetTitle, 40, 1, 5))
	s.Require().NoError(err)
	s.Empty(empty)
}

func (s *SQLiteTestSuite) TestEmptyValueClearsCell() {
	rng := Cell(DefaultWorksheetTitle, 2, 2)
	s.Require().NoError(s.workbook.UpdateValues(s.ctx, s.sheet.ID, rng, [][]any{{"x"}}))

	s.Require().NoError(s.workbook.UpdateValues(s.ctx, s.sheet.ID, rng, [][]any{{nil}}))
	values, err := s.workbook.GetValues(s.ctx, s.sheet.ID, rng)
	s.Require().NoError(err)
	s.Equal([][]string{{"x"}}, values, "nil leaves the cell alone")

	s.Require().NoError(s.workbook.UpdateValues(s.ctx, s.sheet.ID, rng, [][]any{{""}}))
	values, err = s.workbook.GetValues(s.ctx, s.sheet.ID, Whole(DefaultWorksheetTitle))
	s.Require().NoError(err)
	s.Empty(values)
}

func (s *SQLiteTestSuite) TestAppendValues() {
	s.Require().NoError(s.workbook.UpdateValues(s.ctx, s.sheet.ID, Cell(DefaultWorksheetTitle, 1, 1), [][]any{{"username", "password_hash"}}))
	s.Require().NoError(s.workbook.AppendValues(s.ctx, s.sheet.ID, Whole(DefaultWorksheetTitle), [][]any{{"alice", "h1"}}))
	s.Require().NoError(s.workbook.AppendValues(s.ctx, s.sheet.ID, Whole(DefaultWorksheetTitle), [][]any{{"bob", "h2"}}))

	values, err := s.workbook.GetValues(s.ctx, s.sheet.ID, Whole(DefaultWorksheetTitle))
	s.Require().NoError(err)
	s.Equal([][]string{
		{"username", "password_hash"},
		{"alice", "h1"},
		{"bob", "h2"},
	}, values)
}

func (s *SQLiteTestSuite) TestDeleteRowsShiftsUp() {
	ws, err := FindWorksheet(s.ctx, s.workbook, s.sheet.ID, DefaultWorksheetTitle)
	s.Require().NoError(err)

	s.Require().NoError(s.workbook.UpdateValues(s.ctx, s.sheet.ID, Cell(DefaultWorksheetTitle, 1, 1), [][]any{
		{"r1"}, {"r2"}, {"r3"}, {"r4"}, {"r5"},
	}))

	// rows 2 and 3 in 1-based terms
	s.Require().NoError(s.workbook.DeleteRows(s.ctx, s.sheet.ID, ws.ID, 1, 3))

	values, err := s.workbook.GetValues(s.ctx, s.sheet.ID, Whole(DefaultWorksheetTitle))
	s.Require().NoError(err)
	s.Equal([][]string{{"r1"}, {"r4"}, {"r5"}}, values)

	s.ErrorIs(s.workbook.DeleteRows(s.ctx, s.sheet.ID, ws.ID, 3, 3), ErrUnexpectedShape)
}

func (s *SQLiteTestSuite) TestDuplicateWorksheetCopiesValuesAndLayout() {
	template, err := s.workbook.AddWorksheet(s.ctx, s.sheet.ID, "Game Template", 200, 50)
	s.Require().NoError(err)

	s.Require().NoError(s.workbook.UpdateValues(s.ctx, s.sheet.ID, Cell("Game Template", 1, 1), [][]any{{"GAME"}}))
	directives := []Directive{
		Merge{Range: Row("Game Template", 6, 2, 4)},
		Format{Range: Cell("Game Template", 1, 1), Style: Style{FontSize: 14, Bold: true}},
		ColumnWidth{Start: 0, End: 50, Pixels: 40},
	}
	s.Require().NoError(s.workbook.ApplyLayout(s.ctx, s.sheet.ID, template.ID, directives))

	copied, err := s.workbook.DuplicateWorksheet(s.ctx, s.sheet.ID, template.ID, "Copy")
	s.Require().NoError(err)
	s.Equal(200, copied.RowCount)

	values, err := s.workbook.GetValues(s.ctx, s.sheet.ID, Whole("Copy"))
	s.Require().NoError(err)
	s.Equal([][]string{{"GAME"}}, values)

	layout, err := s.workbook.Layout(s.ctx, s.sheet.ID, copied.ID)
	s.Require().NoError(err)
	s.Equal(directives, layout)
}

func (s *SQLiteTestSuite) TestFileBackedWorkbookPersists() {
	path := filepath.Join(s.T().TempDir(), "workbook.db")

	first, err := NewSQLite(&SQLiteConfig{Path: path})
	s.Require().NoError(err)
	_, err = first.EnsureSpreadsheet(s.ctx, "users", "Users")
	s.Require().NoError(err)
	s.Require().NoError(first.Close())

	second, err := NewSQLite(&SQLiteConfig{Path: path})
	s.Require().NoError(err)
	defer second.Close()

	spreadsheets, err := second.ListSpreadsheets(s.ctx)
	s.Require().NoError(err)
	s.Equal([]Spreadsheet{{ID: "users", Title: "Users"}}, spreadsheets)
}

func (s *SQLiteTestSuite) TestUnavailableClient() {
	c := Unavailable(nil)
	_, err := c.ListSpreadsheets(s.ctx)
	s.ErrorIs(err, ErrUnavailable)

	err = c.UpdateValues(s.ctx, "id", Cell("x", 1, 1), nil)
	s.ErrorIs(err, ErrUnavailable)
}

func TestSQLiteSuite(t *testing.T) {
	suite.Run(t, new(SQLiteTestSuite))
}

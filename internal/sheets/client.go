// Package sheets is the boundary to the spreadsheet service that stores
// users, tournaments and game score sheets.
package sheets

//go:generate mockgen -package=mocks -destination=mocks/mock_client.go github.com/KirkDiggler/ohhell/internal/sheets Client

import (
	"context"
	"fmt"
)

// Spreadsheet is one workbook
type Spreadsheet struct {
	ID    string
	Title string
}

// Worksheet is one tab of a spreadsheet
type Worksheet struct {
	ID       int64
	Title    string
	Index    int
	RowCount int
	ColCount int
}

// Client defines the spreadsheet operations the repositories rely on
type Client interface {
	// ListSpreadsheets returns every spreadsheet visible to the client
	ListSpreadsheets(ctx context.Context) ([]Spreadsheet, error)

	// CreateSpreadsheet creates a spreadsheet with a single default worksheet
	CreateSpreadsheet(ctx context.Context, title string) (*Spreadsheet, error)

	// ListWorksheets returns the worksheets of a spreadsheet in tab order
	ListWorksheets(ctx context.Context, spreadsheetID string) ([]Worksheet, error)

	// AddWorksheet appends a blank worksheet
	AddWorksheet(ctx context.Context, spreadsheetID, title string, rows, cols int) (*Worksheet, error)

	// RenameWorksheet changes a worksheet title
	RenameWorksheet(ctx context.Context, spreadsheetID string, worksheetID int64, title string) error

	// DuplicateWorksheet copies a worksheet, values and layout included
	DuplicateWorksheet(ctx context.Context, spreadsheetID string, sourceID int64, title string) (*Worksheet, error)

	// GetValues reads the formatted values of a range. Trailing empty rows
	// and cells are omitted.
	GetValues(ctx context.Context, spreadsheetID string, rng Range) ([][]string, error)

	// UpdateValues writes values starting at the top left of the range. Nil
	// values leave their cell untouched, empty strings clear it.
	UpdateValues(ctx context.Context, spreadsheetID string, rng Range, values [][]any) error

	// AppendValues writes rows after the last row holding data
	AppendValues(ctx context.Context, spreadsheetID string, rng Range, values [][]any) error

	// DeleteRows removes rows [start, end), 0-based, shifting the rest up
	DeleteRows(ctx context.Context, spreadsheetID string, worksheetID int64, start, end int) error

	// ApplyLayout applies merges, text formats and column widths
	ApplyLayout(ctx context.Context, spreadsheetID string, worksheetID int64, directives []Directive) error
}

// FindWorksheet returns the worksheet with the given title
func FindWorksheet(ctx context.Context, c Client, spreadsheetID, title string) (*Worksheet, error) {
	worksheets, err := c.ListWorksheets(ctx, spreadsheetID)
	if err != nil {
		return nil, err
	}
	for i := range worksheets {
		if worksheets[i].Title == title {
			return &worksheets[i], nil
		}
	}
	return nil, fmt.Errorf("worksheet %q: %w", title, ErrNotFound)
}

package sheets

import (
	"context"
	"fmt"
)

type unavailableClient struct {
	reason error
}

// Unavailable returns a client whose every call fails with ErrUnavailable.
// The application keeps serving pages when credentials cannot be loaded.
func Unavailable(reason error) Client {
	return &unavailableClient{reason: reason}
}

func (c *unavailableClient) err() error {
	if c.reason == nil {
		return ErrUnavailable
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, c.reason)
}

func (c *unavailableClient) ListSpreadsheets(context.Context) ([]Spreadsheet, error) {
	return nil, c.err()
}

func (c *unavailableClient) CreateSpreadsheet(context.Context, string) (*Spreadsheet, error) {
	return nil, c.err()
}

func (c *unavailableClient) ListWorksheets(context.Context, string) ([]Worksheet, error) {
	return nil, c.err()
}

func (c *unavailableClient) AddWorksheet(context.Context, string, string, int, int) (*Worksheet, error) {
	return nil, c.err()
}

func (c *unavailableClient) RenameWorksheet(context.Context, string, int64, string) error {
	return c.err()
}

func (c *unavailableClient) DuplicateWorksheet(context.Context, string, int64, string) (*Worksheet, error) {
	return nil, c.err()
}

func (c *unavailableClient) GetValues(context.Context, string, Range) ([][]string, error) {
	return nil, c.err()
}

func (c *unavailableClient) UpdateValues(context.Context, string, Range, [][]any) error {
	return c.err()
}

func (c *unavailableClient) AppendValues(context.Context, string, Range, [][]any) error {
	return c.err()
}

func (c *unavailableClient) DeleteRows(context.Context, string, int64, int, int) error {
	return c.err()
}

func (c *unavailableClient) ApplyLayout(context.Context, string, int64, []Directive) error {
	return c.err()
}

package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/ohhell/internal/models"
	"github.com/KirkDiggler/ohhell/internal/sheets"
)

const (
	// WorksheetTitle is the worksheet holding the accounts
	WorksheetTitle = "users"

	usernameHeader     = "username"
	passwordHashHeader = "password_hash"

	worksheetRows = 100
	worksheetCols = 3
)

// ErrUserNotFound is returned when a user is not found
var ErrUserNotFound = errors.New("user not found")

// Config holds configuration for the spreadsheet user repository
type Config struct {
	// Client reaches the spreadsheet service
	Client sheets.Client

	// SpreadsheetID is the spreadsheet holding the users worksheet
	SpreadsheetID string
}

// sheetsRepository implements the Repository interface over a worksheet
type sheetsRepository struct {
	client        sheets.Client
	spreadsheetID string
}

// NewSheets creates a new spreadsheet-backed user repository
func NewSheets(cfg *Config) (*sheetsRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Client == nil {
		return nil, errors.New("sheets client cannot be nil")
	}

	return &sheetsRepository{
		client:        cfg.Client,
		spreadsheetID: cfg.SpreadsheetID,
	}, nil
}

// record is a stored user and the 1-based sheet row it lives on
type record struct {
	row  int
	user *models.User
}

// worksheet returns the users worksheet, creating it with its header when
// missing
func (r *sheetsRepository) worksheet(ctx context.Context) (*sheets.Worksheet, error) {
	if r.spreadsheetID == "" {
		return nil, fmt.Errorf("users spreadsheet not configured: %w", sheets.ErrUnavailable)
	}

	ws, err := sheets.FindWorksheet(ctx, r.client, r.spreadsheetID, WorksheetTitle)
	if err == nil {
		return ws, nil
	}
	if !errors.Is(err, sheets.ErrNotFound) {
		return nil, fmt.Errorf("failed to find users worksheet: %w", err)
	}

	ws, err = r.client.AddWorksheet(ctx, r.spreadsheetID, WorksheetTitle, worksheetRows, worksheetCols)
	if err != nil {
		return nil, fmt.Errorf("failed to create users worksheet: %w", err)
	}

	header := [][]any{{usernameHeader, passwordHashHeader}}
	if err := r.client.UpdateValues(ctx, r.spreadsheetID, sheets.Row(WorksheetTitle, 1, 1, 2), header); err != nil {
		return nil, fmt.Errorf("failed to write users header: %w", err)
	}

	return ws, nil
}

// records reads the user rows of an existing worksheet
func (r *sheetsRepository) records(ctx context.Context) ([]record, error) {
	values, err := r.client.GetValues(ctx, r.spreadsheetID, sheets.Whole(WorksheetTitle))
	if err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}

	if len(values) == 0 {
		return []record{}, nil
	}

	usernameCol, hashCol := -1, -1
	for i, name := range values[0] {
		switch name {
		case usernameHeader:
			usernameCol = i
		case passwordHashHeader:
			hashCol = i
		}
	}
	if usernameCol < 0 {
		return nil, fmt.Errorf("users worksheet has no %q column: %w", usernameHeader, sheets.ErrUnexpectedShape)
	}

	records := []record{}
	for i, row := range values[1:] {
		username := cell(row, usernameCol)
		if username == "" {
			continue
		}
		records = append(records, record{
			row: i + 2,
			user: &models.User{
				Username:     username,
				PasswordHash: cell(row, hashCol),
			},
		})
	}
	return records, nil
}

func (r *sheetsRepository) find(ctx context.Context, username string) (*sheets.Worksheet, *record, error) {
	ws, err := r.worksheet(ctx)
	if err != nil {
		return nil, nil, err
	}

	records, err := r.records(ctx)
	if err != nil {
		return nil, nil, err
	}

	for i := range records {
		if records[i].user.Username == username {
			return ws, &records[i], nil
		}
	}
	return ws, nil, ErrUserNotFound
}

// ListUsers returns every stored user
func (r *sheetsRepository) ListUsers(ctx context.Context) ([]*models.User, error) {
	if _, err := r.worksheet(ctx); err != nil {
		return nil, err
	}

	records, err := r.records(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, len(records))
	for _, rec := range records {
		users = append(users, rec.user)
	}
	return users, nil
}

// GetUser retrieves a user by username
func (r *sheetsRepository) GetUser(ctx context.Context, input *GetUserInput) (*models.User, error) {
	if input == nil || input.Username == "" {
		return nil, errors.New("input and username cannot be empty")
	}

	_, rec, err := r.find(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	return rec.user, nil
}

// AddUser appends a user row
func (r *sheetsRepository) AddUser(ctx context.Context, input *AddUserInput) error {
	if input == nil || input.User == nil {
		return errors.New("input and user cannot be nil")
	}

	if _, err := r.worksheet(ctx); err != nil {
		return err
	}

	row := [][]any{{input.User.Username, input.User.PasswordHash}}
	if err := r.client.AppendValues(ctx, r.spreadsheetID, sheets.Whole(WorksheetTitle), row); err != nil {
		return fmt.Errorf("failed to add user: %w", err)
	}
	return nil
}

// UpdateUser rewrites the row of OldUsername
func (r *sheetsRepository) UpdateUser(ctx context.Context, input *UpdateUserInput) error {
	if input == nil || input.User == nil || input.OldUsername == "" {
		return errors.New("input, user and old username cannot be empty")
	}

	_, rec, err := r.find(ctx, input.OldUsername)
	if err != nil {
		return err
	}

	row := [][]any{{input.User.Username, input.User.PasswordHash}}
	if err := r.client.UpdateValues(ctx, r.spreadsheetID, sheets.Row(WorksheetTitle, rec.row, 1, 2), row); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// DeleteUser removes the row of a user
func (r *sheetsRepository) DeleteUser(ctx context.Context, input *DeleteUserInput) error {
	if input == nil || input.Username == "" {
		return errors.New("input and username cannot be empty")
	}

	ws, rec, err := r.find(ctx, input.Username)
	if err != nil {
		return err
	}

	if err := r.client.DeleteRows(ctx, r.spreadsheetID, ws.ID, rec.row-1, rec.row); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

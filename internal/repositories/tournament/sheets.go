package tournament

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/KirkDiggler/ohhell/internal/logger"
	"github.com/KirkDiggler/ohhell/internal/models"
	"github.com/KirkDiggler/ohhell/internal/sheets"
)

const (
	// PlayersWorksheet holds the roster of a tournament
	PlayersWorksheet = "Players"

	// PlayerNameHeader is the header cell of the roster column
	PlayerNameHeader = "Player Name"

	playersRows = 100
	playersCols = 1
)

// Config holds configuration for the spreadsheet tournament repository
type Config struct {
	// Client reaches the spreadsheet service
	Client sheets.Client

	// Logger defaults to a discarding logger
	Logger *slog.Logger
}

// sheetsRepository implements the Repository interface over spreadsheets
type sheetsRepository struct {
	client sheets.Client
	log    *slog.Logger
}

// NewSheets creates a new spreadsheet-backed tournament repository
func NewSheets(cfg *Config) (*sheetsRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Client == nil {
		return nil, errors.New("sheets client cannot be nil")
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Discard()
	}

	return &sheetsRepository{
		client: cfg.Client,
		log:    log,
	}, nil
}

// ListTournaments returns every spreadsheet visible to the service
func (r *sheetsRepository) ListTournaments(ctx context.Context) ([]*models.Tournament, error) {
	spreadsheets, err := r.client.ListSpreadsheets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}

	tournaments := make([]*models.Tournament, 0, len(spreadsheets))
	for _, s := range spreadsheets {
		tournaments = append(tournaments, &models.Tournament{ID: s.ID, Name: s.Title})
	}
	return tournaments, nil
}

// CreateTournament creates the spreadsheet and turns its default worksheet
// into the roster
func (r *sheetsRepository) CreateTournament(ctx context.Context, input *CreateTournamentInput) (*models.Tournament, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, errors.New("input and name cannot be empty")
	}

	spreadsheet, err := r.client.CreateSpreadsheet(ctx, input.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create tournament: %w", err)
	}

	if err := r.renameDefaultWorksheet(ctx, spreadsheet.ID); err != nil {
		r.log.Warn("Renaming default worksheet failed, adding roster worksheet",
			"tournament", input.Name, logger.Err(err))
		if _, err := r.addPlayersWorksheet(ctx, spreadsheet.ID); err != nil {
			return nil, err
		}
	}

	return &models.Tournament{ID: spreadsheet.ID, Name: spreadsheet.Title}, nil
}

func (r *sheetsRepository) renameDefaultWorksheet(ctx context.Context, spreadsheetID string) error {
	worksheets, err := r.client.ListWorksheets(ctx, spreadsheetID)
	if err != nil {
		return err
	}
	if len(worksheets) == 0 {
		return fmt.Errorf("spreadsheet %s has no worksheets: %w", spreadsheetID, sheets.ErrUnexpectedShape)
	}

	if err := r.client.RenameWorksheet(ctx, spreadsheetID, worksheets[0].ID, PlayersWorksheet); err != nil {
		return err
	}
	return r.writeHeader(ctx, spreadsheetID)
}

func (r *sheetsRepository) addPlayersWorksheet(ctx context.Context, spreadsheetID string) (*sheets.Worksheet, error) {
	ws, err := r.client.AddWorksheet(ctx, spreadsheetID, PlayersWorksheet, playersRows, playersCols)
	if err != nil {
		return nil, fmt.Errorf("failed to add players worksheet: %w", err)
	}
	if err := r.writeHeader(ctx, spreadsheetID); err != nil {
		return nil, err
	}
	return ws, nil
}

func (r *sheetsRepository) writeHeader(ctx context.Context, spreadsheetID string) error {
	header := [][]any{{PlayerNameHeader}}
	if err := r.client.UpdateValues(ctx, spreadsheetID, sheets.Cell(PlayersWorksheet, 1, 1), header); err != nil {
		return fmt.Errorf("failed to write players header: %w", err)
	}
	return nil
}

// playersWorksheet makes sure the roster exists
func (r *sheetsRepository) playersWorksheet(ctx context.Context, spreadsheetID string) error {
	_, err := sheets.FindWorksheet(ctx, r.client, spreadsheetID, PlayersWorksheet)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sheets.ErrNotFound) {
		return fmt.Errorf("failed to find players worksheet: %w", err)
	}
	_, err = r.addPlayersWorksheet(ctx, spreadsheetID)
	return err
}

// ListPlayers returns column A minus the header, blanks dropped, sorted
func (r *sheetsRepository) ListPlayers(ctx context.Context, input *ListPlayersInput) ([]string, error) {
	if input == nil || input.TournamentID == "" {
		return nil, errors.New("input and tournament ID cannot be empty")
	}

	if err := r.playersWorksheet(ctx, input.TournamentID); err != nil {
		return nil, err
	}

	values, err := r.client.GetValues(ctx, input.TournamentID, sheets.Column(PlayersWorksheet, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to read players: %w", err)
	}

	players := []string{}
	for i, row := range values {
		if i == 0 || len(row) == 0 {
			continue
		}
		if strings.TrimSpace(row[0]) == "" {
			continue
		}
		players = append(players, row[0])
	}
	sort.Strings(players)
	return players, nil
}

// AddPlayer appends a name to the roster
func (r *sheetsRepository) AddPlayer(ctx context.Context, input *AddPlayerInput) error {
	if input == nil || input.TournamentID == "" || input.Name == "" {
		return errors.New("input, tournament ID and name cannot be empty")
	}

	if err := r.playersWorksheet(ctx, input.TournamentID); err != nil {
		return err
	}

	row := [][]any{{input.Name}}
	if err := r.client.AppendValues(ctx, input.TournamentID, sheets.Column(PlayersWorksheet, 1), row); err != nil {
		return fmt.Errorf("failed to add player: %w", err)
	}
	return nil
}

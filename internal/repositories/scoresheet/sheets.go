package scoresheet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/KirkDiggler/ohhell/internal/logger"
	"github.com/KirkDiggler/ohhell/internal/sheets"
)

const (
	// TemplateWorksheet is copied for every new game when present
	TemplateWorksheet = "Game Template"

	gameSheetRows = 200
	gameSheetCols = 50
)

// Config holds configuration for the spreadsheet score sheet repository
type Config struct {
	// Client reaches the spreadsheet service
	Client sheets.Client

	// Layout defaults to DefaultLayout
	Layout *Layout

	// Logger defaults to a discarding logger
	Logger *slog.Logger
}

// sheetsRepository implements the Repository interface over worksheets
type sheetsRepository struct {
	client sheets.Client
	layout Layout
	log    *slog.Logger
}

// NewSheets creates a new spreadsheet-backed score sheet repository
func NewSheets(cfg *Config) (*sheetsRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Client == nil {
		return nil, errors.New("sheets client cannot be nil")
	}

	layout := DefaultLayout
	if cfg.Layout != nil {
		layout = *cfg.Layout
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Discard()
	}

	return &sheetsRepository{
		client: cfg.Client,
		layout: layout,
		log:    log,
	}, nil
}

// CreateGameSheet creates the worksheet from the template when one exists
// and writes the header rows
func (r *sheetsRepository) CreateGameSheet(ctx context.Context, input *CreateGameSheetInput) error {
	if input == nil || input.TournamentID == "" || input.SheetName == "" {
		return errors.New("input, tournament ID and sheet name cannot be empty")
	}

	if len(input.Players) == 0 {
		return errors.New("a game sheet needs at least one player")
	}

	ws, err := r.newWorksheet(ctx, input.TournamentID, input.SheetName)
	if err != nil {
		return err
	}

	totalTricks := 0
	for _, h := range input.Hands {
		totalTricks += h.Cards
	}

	header := [][]any{
		{"GAME " + input.SheetName},
		{"TOURNAMENT " + input.TournamentName},
		{len(input.Hands), "number of hands"},
		{totalTricks, "total number of tricks"},
	}
	if err := r.client.UpdateValues(ctx, input.TournamentID, sheets.Block(input.SheetName, titleRow, 1, trickCountRow, 2), header); err != nil {
		return fmt.Errorf("failed to write game header: %w", err)
	}

	names := make([]any, 0, len(input.Players)*columnsPerPlayer)
	totals := make([]any, 0, len(input.Players)*columnsPerPlayer)
	labels := make([]any, 0, len(input.Players)*columnsPerPlayer)
	for _, name := range input.Players {
		names = append(names, name, nil, nil)
		totals = append(totals, 0, nil, nil)
		labels = append(labels, "BID", "WON", "SCORE")
	}

	table := sheets.Block(input.SheetName, playerNameRow, firstPlayerCol, headerRow, lastCol(len(input.Players)))
	if err := r.client.UpdateValues(ctx, input.TournamentID, table, [][]any{names, totals, labels}); err != nil {
		return fmt.Errorf("failed to write player table: %w", err)
	}

	directives := r.layout.directives(input.SheetName, len(input.Players))
	if err := r.client.ApplyLayout(ctx, input.TournamentID, ws.ID, directives); err != nil {
		r.log.Warn("Formatting game sheet failed",
			"tournament_id", input.TournamentID,
			"sheet", input.SheetName,
			logger.Err(err))
	}

	return nil
}

func (r *sheetsRepository) newWorksheet(ctx context.Context, spreadsheetID, title string) (*sheets.Worksheet, error) {
	template, err := sheets.FindWorksheet(ctx, r.client, spreadsheetID, TemplateWorksheet)
	if err == nil {
		ws, err := r.client.DuplicateWorksheet(ctx, spreadsheetID, template.ID, title)
		if err == nil {
			return ws, nil
		}
		r.log.Warn("Duplicating game template failed, adding a blank worksheet",
			"tournament_id", spreadsheetID, logger.Err(err))
	} else if !errors.Is(err, sheets.ErrNotFound) {
		return nil, fmt.Errorf("failed to find game template: %w", err)
	}

	ws, err := r.client.AddWorksheet(ctx, spreadsheetID, title, gameSheetRows, gameSheetCols)
	if err != nil {
		return nil, fmt.Errorf("failed to add game worksheet: %w", err)
	}
	return ws, nil
}

// AppendHandResult writes [cards, bid, won, score, ...] on the first empty
// row at or below the first hand row, then adds each score to its total
func (r *sheetsRepository) AppendHandResult(ctx context.Context, input *AppendHandResultInput) error {
	if input == nil || input.TournamentID == "" || input.SheetName == "" {
		return errors.New("input, tournament ID and sheet name cannot be empty")
	}

	if len(input.Results) == 0 {
		return errors.New("a hand needs at least one result")
	}

	column, err := r.client.GetValues(ctx, input.TournamentID, sheets.Column(input.SheetName, 1))
	if err != nil {
		return fmt.Errorf("failed to find next hand row: %w", err)
	}
	next := max(len(column)+1, firstHandRow)

	row := make([]any, 0, 1+len(input.Results)*columnsPerPlayer)
	row = append(row, input.Cards)
	for _, res := range input.Results {
		row = append(row, res.Bid, res.Won, res.Score)
	}

	rng := sheets.Row(input.SheetName, next, 1, len(row))
	if err := r.client.UpdateValues(ctx, input.TournamentID, rng, [][]any{row}); err != nil {
		return fmt.Errorf("failed to write hand row: %w", err)
	}

	return r.addToTotals(ctx, input)
}

func (r *sheetsRepository) addToTotals(ctx context.Context, input *AppendHandResultInput) error {
	rng := sheets.Row(input.SheetName, totalScoreRow, firstPlayerCol, lastCol(len(input.Results)))
	values, err := r.client.GetValues(ctx, input.TournamentID, rng)
	if err != nil {
		return fmt.Errorf("failed to read totals: %w", err)
	}

	var current []string
	if len(values) > 0 {
		current = values[0]
	}

	totals := make([]any, 0, len(input.Results)*columnsPerPlayer)
	for i, res := range input.Results {
		total, err := parseTotal(current, i*columnsPerPlayer)
		if err != nil {
			return fmt.Errorf("total of player %d: %w", i+1, err)
		}
		totals = append(totals, total+res.Score, nil, nil)
	}

	if err := r.client.UpdateValues(ctx, input.TournamentID, rng, [][]any{totals}); err != nil {
		return fmt.Errorf("failed to write totals: %w", err)
	}
	return nil
}

func parseTotal(row []string, offset int) (int, error) {
	if offset >= len(row) {
		return 0, nil
	}
	raw := strings.TrimSpace(row[offset])
	if raw == "" {
		return 0, nil
	}
	total, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number: %w", raw, sheets.ErrUnexpectedShape)
	}
	return total, nil
}

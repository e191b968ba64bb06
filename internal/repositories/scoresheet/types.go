package scoresheet

import "github.com/KirkDiggler/ohhell/internal/models"

type CreateGameSheetInput struct {
	TournamentID   string
	TournamentName string
	SheetName      string

	// Players in play order
	Players []string
	Hands   []models.Hand
}

type AppendHandResultInput struct {
	TournamentID string
	SheetName    string

	// Cards dealt in the hand
	Cards int

	// Results in play order
	Results []models.HandResult
}

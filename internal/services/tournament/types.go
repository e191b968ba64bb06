package tournament

import (
	"github.com/KirkDiggler/ohhell/internal/models"
	tournamentRepo "github.com/KirkDiggler/ohhell/internal/repositories/tournament"
)

// TemplateName is the title of the spreadsheet new tournaments are modelled
// on. It is never offered as a tournament.
const TemplateName = "Tournament Template"

// Config holds configuration for the tournament service
type Config struct {
	TournamentRepo tournamentRepo.Repository

	// UsersSheetID is hidden from the tournament list
	UsersSheetID string
}

type CreateTournamentInput struct {
	Name string
}

type SelectTournamentInput struct {
	Session        *models.Session
	TournamentID   string
	TournamentName string
}

type ListPlayersInput struct {
	Session *models.Session
}

type AddPlayerInput struct {
	Session *models.Session
	Name    string
}

type SelectPlayersInput struct {
	Session *models.Session
	Players []string
}

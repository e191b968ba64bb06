package tournament

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/ohhell/internal/repositories/tournament Repository

import (
	"context"

	"github.com/KirkDiggler/ohhell/internal/models"
)

// Repository defines the interface for tournament persistence. Every
// tournament is a spreadsheet with a Players worksheet.
type Repository interface {
	// ListTournaments returns every spreadsheet visible to the service
	ListTournaments(ctx context.Context) ([]*models.Tournament, error)

	// CreateTournament creates a tournament spreadsheet
	CreateTournament(ctx context.Context, input *CreateTournamentInput) (*models.Tournament, error)

	// ListPlayers returns the roster of a tournament, sorted by name
	ListPlayers(ctx context.Context, input *ListPlayersInput) ([]string, error)

	// AddPlayer appends a player to the roster
	AddPlayer(ctx context.Context, input *AddPlayerInput) error
}

package tournament

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/ohhell/internal/services/tournament Service

import (
	"context"

	"github.com/KirkDiggler/ohhell/internal/models"
)

// Service defines tournament selection and roster operations. Operations
// taking a session mutate it; saving it is up to the caller.
type Service interface {
	// ListTournaments returns the selectable tournaments
	ListTournaments(ctx context.Context) ([]*models.Tournament, error)

	// CreateTournament creates a tournament spreadsheet
	CreateTournament(ctx context.Context, input *CreateTournamentInput) (*models.Tournament, error)

	// SelectTournament stores the chosen tournament in the session
	SelectTournament(ctx context.Context, input *SelectTournamentInput) error

	// ListPlayers returns the roster of the selected tournament
	ListPlayers(ctx context.Context, input *ListPlayersInput) ([]string, error)

	// AddPlayer adds a player to the roster of the selected tournament
	AddPlayer(ctx context.Context, input *AddPlayerInput) error

	// SelectPlayers stores the players taking part in the next game
	SelectPlayers(ctx context.Context, input *SelectPlayersInput) error
}

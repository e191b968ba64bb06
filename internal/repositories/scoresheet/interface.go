package scoresheet

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/ohhell/internal/repositories/scoresheet Repository

import "context"

// Repository defines the interface for game score sheets. A score sheet is
// one worksheet of the tournament spreadsheet.
type Repository interface {
	// CreateGameSheet lays out a new game worksheet
	CreateGameSheet(ctx context.Context, input *CreateGameSheetInput) error

	// AppendHandResult writes one hand row and adds the scores to the totals
	AppendHandResult(ctx context.Context, input *AppendHandResultInput) error
}

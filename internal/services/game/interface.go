package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/ohhell/internal/services/game Service

import "context"

// Service defines the interface for game configuration and play. Every
// operation works on the session passed in its input and mutates it in
// place; persisting the session is up to the caller.
type Service interface {
	// SaveMode stores the hand progression and its default sequence
	SaveMode(ctx context.Context, input *SaveModeInput) (*SaveModeOutput, error)

	// SaveSequence stores a custom hand sequence
	SaveSequence(ctx context.Context, input *SaveSequenceInput) error

	// SaveOrder stores the seating order
	SaveOrder(ctx context.Context, input *SaveOrderInput) error

	// SaveDealer picks the first dealer
	SaveDealer(ctx context.Context, input *SaveDealerInput) (*SaveDealerOutput, error)

	// Summary describes the configured game before it starts
	Summary(ctx context.Context, input *SummaryInput) (*SummaryOutput, error)

	// StartGame builds the game and creates its score sheet
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// GetHand describes the hand being played
	GetHand(ctx context.Context, input *GetHandInput) (*GetHandOutput, error)

	// RecordBid records a player's bid for the current hand
	RecordBid(ctx context.Context, input *RecordBidInput) (*RecordBidOutput, error)

	// RecordTricks records the tricks a player won in the current hand
	RecordTricks(ctx context.Context, input *RecordTricksInput) (*RecordTricksOutput, error)

	// CalculateScores scores the current hand and moves to the next one
	CalculateScores(ctx context.Context, input *CalculateScoresInput) (*CalculateScoresOutput, error)

	// Standings returns the players ordered by score
	Standings(ctx context.Context, input *StandingsInput) (*StandingsOutput, error)

	// NewGame discards the game, optionally keeping its configuration
	NewGame(ctx context.Context, input *NewGameInput) error
}

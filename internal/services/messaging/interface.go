package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/ohhell/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetHandResultMessage returns the headline shown after a hand is scored
	GetHandResultMessage(ctx context.Context, input *GetHandResultMessageInput) (*GetHandResultMessageOutput, error)

	// GetGameCompleteMessage returns the winner announcement for a finished game
	GetGameCompleteMessage(ctx context.Context, input *GetGameCompleteMessageInput) (*GetGameCompleteMessageOutput, error)
}

// Package announcer publishes finished games outside the scorekeeper.
package announcer

//go:generate mockgen -package=mocks -destination=mocks/mock_announcer.go github.com/KirkDiggler/ohhell/internal/announcer Announcer

import (
	"context"

	"github.com/KirkDiggler/ohhell/internal/models"
)

// Announcer publishes game results
type Announcer interface {
	// AnnounceGameComplete publishes the final standings of a game
	AnnounceGameComplete(ctx context.Context, input *AnnounceGameCompleteInput) error
}

// AnnounceGameCompleteInput describes a finished game
type AnnounceGameCompleteInput struct {
	TournamentName string
	SheetName      string

	// Title and Message are the headline produced by the messaging service
	Title   string
	Message string

	// Standings are the players ordered by total score
	Standings []*models.Player
}

type noop struct{}

// Noop returns an announcer that drops every announcement
func Noop() Announcer {
	return noop{}
}

func (noop) AnnounceGameComplete(context.Context, *AnnounceGameCompleteInput) error {
	return nil
}

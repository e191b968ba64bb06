package messaging

import (
	"github.com/KirkDiggler/ohhell/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneSarcastic is a sarcastic tone
	ToneSarcastic MessageTone = "sarcastic"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// Seed fixes the phrasing for tests. Zero seeds from the clock.
	Seed int64
}

// PlayerHandResult is one player's line of a scored hand
type PlayerHandResult struct {
	Name  string
	Bid   int
	Won   int
	Score int
}

// GetHandResultMessageInput contains the scored hand
type GetHandResultMessageInput struct {
	// Cards is the number of cards dealt in the hand
	Cards int

	// Results holds one entry per player in seating order
	Results []PlayerHandResult
}

// GetHandResultMessageOutput contains the headline for a scored hand
type GetHandResultMessageOutput struct {
	Message string
	Tone    MessageTone

	// Exact lists the players who made their bid
	Exact []string
}

// GetGameCompleteMessageInput contains the final state of the players
type GetGameCompleteMessageInput struct {
	TournamentName string
	Players        []*models.Player
}

// GetGameCompleteMessageOutput contains the winner announcement
type GetGameCompleteMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone

	// Winners holds every player tied on the top score
	Winners []string

	// Invicto holds the players who bid exactly every hand
	Invicto []string
}

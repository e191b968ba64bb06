package game

import (
	"log/slog"

	"github.com/KirkDiggler/ohhell/internal/announcer"
	"github.com/KirkDiggler/ohhell/internal/common/clock"
	"github.com/KirkDiggler/ohhell/internal/dice"
	"github.com/KirkDiggler/ohhell/internal/models"
	scoresheetRepo "github.com/KirkDiggler/ohhell/internal/repositories/scoresheet"
	"github.com/KirkDiggler/ohhell/internal/services/messaging"
)

// SheetNameLayout names game worksheets after their start time, YY-MM-DD#HH-MM-SS
const SheetNameLayout = "06-01-02#15-04-05"

// DealerMode selects how the first dealer is chosen
type DealerMode string

const (
	// DealerModeStart makes the selected player deal the first hand
	DealerModeStart DealerMode = "start"

	// DealerModeSingleCard makes the selected player deal the first one-card hand
	DealerModeSingleCard DealerMode = "single_card"

	// DealerModeDraw draws the first dealer by lot
	DealerModeDraw DealerMode = "draw"
)

// Config holds configuration for the game service
type Config struct {
	// Repository dependencies
	ScoresheetRepo scoresheetRepo.Repository

	// Service dependencies
	MessagingService messaging.Service
	DiceRoller       dice.Roller
	Clock            clock.Clock

	// Announcer publishes finished games. Optional.
	Announcer announcer.Announcer

	// Logger defaults to a discarding logger
	Logger *slog.Logger
}

// SaveModeInput contains the chosen progression
type SaveModeInput struct {
	Session *models.Session

	// Mode defaults to models.DefaultGameMode when empty
	Mode models.GameMode
}

// SaveModeOutput contains the sequence generated for the mode
type SaveModeOutput struct {
	Sequence []int
}

// SaveSequenceInput contains a custom hand sequence
type SaveSequenceInput struct {
	Session  *models.Session
	Sequence []int
}

// SaveOrderInput contains the seating order
type SaveOrderInput struct {
	Session *models.Session
	Order   []string
}

// SaveDealerInput contains the dealer choice
type SaveDealerInput struct {
	Session *models.Session
	Mode    DealerMode

	// SelectedDealer is an index into the player order. Ignored for draws.
	SelectedDealer int
}

// SaveDealerOutput contains the resolved first dealer
type SaveDealerOutput struct {
	FirstDealerIndex int
	FirstDealer      string
}

// SummaryInput identifies the session to summarize
type SummaryInput struct {
	Session *models.Session
}

// SummaryOutput describes the configured game
type SummaryOutput struct {
	TournamentName string
	Players        []string
	Mode           models.GameMode
	Hands          []models.Hand
	FirstDealer    string
	TotalCards     int
	MaxCards       int
}

// StartGameInput identifies the session to start a game in
type StartGameInput struct {
	Session *models.Session
}

// StartGameOutput contains the started game
type StartGameOutput struct {
	Game *models.Game
}

// GetHandInput identifies the session
type GetHandInput struct {
	Session *models.Session
}

// GetHandOutput describes the hand being played
type GetHandOutput struct {
	Game   *models.Game
	Hand   models.Hand
	Number int
	Dealer *models.Player

	// BiddingOrder starts after the dealer and ends with the dealer
	BiddingOrder []*models.Player

	BidsComplete   bool
	TricksComplete bool

	// ForbiddenBid is the bid the dealer may not make, -1 until every other
	// player has bid
	ForbiddenBid int
}

// RecordBidInput contains a bid
type RecordBidInput struct {
	Session    *models.Session
	PlayerName string
	Bid        int
}

// RecordBidOutput contains the bidding totals
type RecordBidOutput struct {
	TotalBids    int
	BidsCount    int
	BidsComplete bool

	// DealerBidCleared is set when a changed bid voided the dealer's bid
	DealerBidCleared bool

	// ForbiddenBid is the bid the dealer may not make, -1 when unknown yet
	ForbiddenBid int
}

// RecordTricksInput contains a tricks count
type RecordTricksInput struct {
	Session    *models.Session
	PlayerName string
	Tricks     int
}

// RecordTricksOutput contains the tricks totals
type RecordTricksOutput struct {
	TotalTricks    int
	TricksCount    int
	TricksComplete bool

	// TricksMismatch flags a complete hand whose tricks do not add up to
	// the cards dealt
	TricksMismatch bool
}

// CalculateScoresInput identifies the session
type CalculateScoresInput struct {
	Session *models.Session
}

// PlayerResult is one player's line of a scored hand
type PlayerResult struct {
	Name       string
	Bid        int
	Won        int
	Score      int
	TotalScore int
}

// CalculateScoresOutput contains the scored hand
type CalculateScoresOutput struct {
	// Cards is the number of cards of the scored hand
	Cards   int
	Results []PlayerResult

	// Headline is a one-line summary of the hand
	Headline string

	// Persisted is false when the hand could not be written to the sheet
	Persisted bool

	TricksMismatch bool

	// GameComplete is set after the last hand, with the winner announcement
	GameComplete bool
	FinalTitle   string
	FinalMessage string
	Winners      []string
}

// StandingsInput identifies the session
type StandingsInput struct {
	Session *models.Session
}

// StandingsOutput contains the players ordered by score
type StandingsOutput struct {
	Game     *models.Game
	Players  []*models.Player
	Complete bool

	// LastHand is the most recently scored hand, nil before the first
	LastHand *models.Hand

	// NextHand and NextDealer are nil once the game is complete
	NextHand   *models.Hand
	NextDealer *models.Player
}

// NewGameInput identifies the session to reset
type NewGameInput struct {
	Session *models.Session

	// KeepConfig keeps players, sequence, order and dealer
	KeepConfig bool
}

package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors. Messages are shown to players as they are.
const (
	ErrIncompleteConfig    GameError = "Please complete previous configuration steps"
	ErrInvalidMode         GameError = "Invalid game mode"
	ErrEmptySequence       GameError = "Please select at least one hand"
	ErrInvalidSequence     GameError = "Invalid hand sequence"
	ErrInvalidOrder        GameError = "Player order must contain every selected player once"
	ErrInvalidDealerMode   GameError = "Invalid dealer mode"
	ErrInvalidDealer       GameError = "Invalid dealer"
	ErrSheetCreation       GameError = "Error creating game sheet"
	ErrNoActiveGame        GameError = "No active game"
	ErrGameComplete        GameError = "Game is complete"
	ErrUnknownPlayer       GameError = "Unknown player"
	ErrInvalidBid          GameError = "Invalid bid"
	ErrHookOn              GameError = "Hook On rule violation"
	ErrDealerBidsLast      GameError = "Dealer bids last"
	ErrBiddingClosed       GameError = "Bidding is closed once tricks are recorded"
	ErrBiddingIncomplete   GameError = "Bidding is not complete"
	ErrInvalidTricks       GameError = "Invalid tricks count"
	ErrTricksIncomplete    GameError = "All tricks must be recorded"
	ErrNilConfig           GameError = "config cannot be nil"
	ErrNilScoresheetRepo   GameError = "scoresheet repository cannot be nil"
	ErrNilMessagingService GameError = "messaging service cannot be nil"
	ErrNilDiceRoller       GameError = "dice roller cannot be nil"
	ErrNilClock            GameError = "clock cannot be nil"
	ErrNilSession          GameError = "session cannot be nil"
)

package tournament

// TournamentError is a custom error type for tournament errors
type TournamentError string

// Error implements the error interface
func (e TournamentError) Error() string {
	return string(e)
}

const (
	ErrNoTournament       TournamentError = "Please select a tournament first"
	ErrTournamentRequired TournamentError = "Please select a tournament"
	ErrNameRequired       TournamentError = "Tournament name is required"
	ErrPlayerNameRequired TournamentError = "Player name is required"
	ErrPlayerExists       TournamentError = "player already exists"
	ErrNotEnoughPlayers   TournamentError = "Please select at least 2 players"
	ErrUnknownPlayer      TournamentError = "player is not in the tournament"
	ErrNilConfig          TournamentError = "config cannot be nil"
	ErrNilTournamentRepo  TournamentError = "tournament repository cannot be nil"
	ErrNilSession         TournamentError = "session cannot be nil"
)

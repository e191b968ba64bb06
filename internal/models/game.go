package models

// GameMode selects the progression of cards dealt per hand
type GameMode string

const (
	// GameModeUp deals 1, 2, ... up to the maximum
	GameModeUp GameMode = "up"

	// GameModeDown deals the maximum down to 1
	GameModeDown GameMode = "down"

	// GameModeUpThenDown climbs to the maximum and comes back down
	GameModeUpThenDown GameMode = "up_then_down"

	// GameModeDownThenUp descends to 1 and climbs back to the maximum
	GameModeDownThenUp GameMode = "down_then_up"
)

// DefaultGameMode is used when no mode has been configured yet
const DefaultGameMode = GameModeDownThenUp

// Valid reports whether the mode is one of the known progressions
func (m GameMode) Valid() bool {
	switch m {
	case GameModeUp, GameModeDown, GameModeUpThenDown, GameModeDownThenUp:
		return true
	}
	return false
}

// Hand is the configuration of a single hand
type Hand struct {
	// Cards is the number of cards dealt to each player
	Cards int `json:"cards"`

	// DealerIndex is the index into Game.Players of the dealer
	DealerIndex int `json:"dealer_index"`
}

// Game represents the state of an Oh Hell! game in progress
type Game struct {
	// TournamentID is the spreadsheet ID of the tournament
	TournamentID string `json:"tournament_id"`

	// TournamentName is the display name of the tournament
	TournamentName string `json:"tournament_name"`

	// Players contains the players in play order
	Players []*Player `json:"players"`

	// Mode is the progression the hands were generated from
	Mode GameMode `json:"game_mode"`

	// Hands is the ordered list of hands to play
	Hands []Hand `json:"hands"`

	// CurrentHandIndex is the cursor into Hands
	CurrentHandIndex int `json:"current_hand_index"`

	// DealerIndex is the dealer of the current hand
	DealerIndex int `json:"dealer_index"`

	// SheetName is the name of the worksheet the game is recorded in
	SheetName string `json:"sheet_name"`

	// CurrentBids maps player name to bid for the current hand
	CurrentBids map[string]int `json:"current_bids"`

	// CurrentTricks maps player name to tricks won for the current hand
	CurrentTricks map[string]int `json:"current_tricks"`
}

// NewGame creates a game positioned at its first hand
func NewGame(tournamentID, tournamentName string, players []*Player, mode GameMode, hands []Hand, sheetName string) *Game {
	g := &Game{
		TournamentID:   tournamentID,
		TournamentName: tournamentName,
		Players:        players,
		Mode:           mode,
		Hands:          hands,
		SheetName:      sheetName,
		CurrentBids:    map[string]int{},
		CurrentTricks:  map[string]int{},
	}
	if len(hands) > 0 {
		g.DealerIndex = hands[0].DealerIndex
	}
	return g
}

// CurrentHand returns the hand being played, or false once the game is complete
func (g *Game) CurrentHand() (Hand, bool) {
	if g.CurrentHandIndex < 0 || g.CurrentHandIndex >= len(g.Hands) {
		return Hand{}, false
	}
	return g.Hands[g.CurrentHandIndex], true
}

// LastPlayedHand returns the most recently completed hand
func (g *Game) LastPlayedHand() (Hand, bool) {
	i := g.CurrentHandIndex - 1
	if i < 0 || i >= len(g.Hands) {
		return Hand{}, false
	}
	return g.Hands[i], true
}

// CurrentDealer returns the dealer of the current hand
func (g *Game) CurrentDealer() *Player {
	if g.DealerIndex < 0 || g.DealerIndex >= len(g.Players) {
		return nil
	}
	return g.Players[g.DealerIndex]
}

// Player looks up a player by name
func (g *Game) Player(name string) (*Player, bool) {
	for _, p := range g.Players {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// AdvanceToNextHand moves the cursor forward and resets the per-hand state
func (g *Game) AdvanceToNextHand() {
	g.CurrentHandIndex++
	g.CurrentBids = map[string]int{}
	g.CurrentTricks = map[string]int{}

	if g.CurrentHandIndex < len(g.Hands) {
		g.DealerIndex = g.Hands[g.CurrentHandIndex].DealerIndex
	}
}

// IsComplete reports whether every hand has been played
func (g *Game) IsComplete() bool {
	return g.CurrentHandIndex >= len(g.Hands)
}

// BidsComplete reports whether every player has bid this hand
func (g *Game) BidsComplete() bool {
	return len(g.CurrentBids) == len(g.Players)
}

// TricksComplete reports whether every player's tricks are recorded this hand
func (g *Game) TricksComplete() bool {
	return len(g.CurrentTricks) == len(g.Players)
}

// TotalBids sums the bids recorded for the current hand
func (g *Game) TotalBids() int {
	total := 0
	for _, bid := range g.CurrentBids {
		total += bid
	}
	return total
}

// TotalTricks sums the tricks recorded for the current hand
func (g *Game) TotalTricks() int {
	total := 0
	for _, tricks := range g.CurrentTricks {
		total += tricks
	}
	return total
}

// TotalCards sums the cards dealt across every hand of the game
func (g *Game) TotalCards() int {
	total := 0
	for _, h := range g.Hands {
		total += h.Cards
	}
	return total
}

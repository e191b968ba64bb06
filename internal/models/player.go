package models

// HandResult is one player's outcome for a single hand
type HandResult struct {
	// Bid is the number of tricks the player said they would take
	Bid int `json:"bid"`

	// Won is the number of tricks the player actually took
	Won int `json:"won"`

	// Score is the points awarded for the hand
	Score int `json:"score"`
}

// Player represents a participant in a game
type Player struct {
	// Name is the display name of the player, unique within a game
	Name string `json:"name"`

	// TotalScore is the sum of all hand scores
	TotalScore int `json:"total_score"`

	// Hands is the ordered history of hand results
	Hands []HandResult `json:"hands"`

	// Invicto is true while the player has made their exact bid every hand
	Invicto bool `json:"is_invicto"`
}

// NewPlayer creates a player with no hands played
func NewPlayer(name string) *Player {
	return &Player{
		Name:    name,
		Hands:   []HandResult{},
		Invicto: true,
	}
}

// AddHandResult records a hand and updates the running totals
func (p *Player) AddHandResult(bid, won, score int) {
	p.Hands = append(p.Hands, HandResult{
		Bid:   bid,
		Won:   won,
		Score: score,
	})
	p.TotalScore += score

	if bid != won {
		p.Invicto = false
	}
}

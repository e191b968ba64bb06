// Package rules holds the Oh Hell! arithmetic: hand progressions, dealer
// rotation, the Hook On bid restriction and hand scoring. Every function is
// pure; range validation of user input is left to the caller.
package rules

import (
	"sort"

	"github.com/KirkDiggler/ohhell/internal/models"
)

const (
	// DeckSize is the number of cards in the deck
	DeckSize = 52

	// ExactBidBonus is awarded for winning exactly the tricks bid
	ExactBidBonus = 10

	// MinPlayers is the smallest table a game can be started with
	MinPlayers = 2
)

// MaxCardsFor returns the most cards each player can be dealt
func MaxCardsFor(players int) int {
	if players <= 0 {
		return 0
	}
	return DeckSize / players
}

// HandSequence returns the card count of each hand for a mode
func HandSequence(players int, mode models.GameMode) []int {
	top := MaxCardsFor(players)

	switch mode {
	case models.GameModeUp:
		return ascending(1, top)
	case models.GameModeDown:
		return descending(top, 1)
	case models.GameModeUpThenDown:
		return append(ascending(1, top), descending(top-1, 1)...)
	case models.GameModeDownThenUp:
		return append(descending(top, 1), ascending(2, top)...)
	}
	return []int{}
}

func ascending(from, to int) []int {
	out := []int{}
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

func descending(from, to int) []int {
	out := []int{}
	for i := from; i >= to; i-- {
		out = append(out, i)
	}
	return out
}

// IsDealerBidLegal applies the Hook On rule: the dealer may not bid so that
// the total of all bids equals the cards dealt
func IsDealerBidLegal(sumOtherBids, dealerBid, cards int) bool {
	return sumOtherBids+dealerBid != cards
}

// ForbiddenDealerBid returns the one bid the dealer may not make, or -1 when
// every bid in range is allowed
func ForbiddenDealerBid(sumOtherBids, cards int) int {
	forbidden := cards - sumOtherBids
	if forbidden < 0 || forbidden > cards {
		return -1
	}
	return forbidden
}

// HandScore is one point per trick won plus the bonus for an exact bid
func HandScore(bid, won int) int {
	score := won
	if bid == won {
		score += ExactBidBonus
	}
	return score
}

// NextDealerIndex rotates the deal to the next seat
func NextDealerIndex(current, players int) int {
	if players <= 0 {
		return 0
	}
	return (current + 1) % players
}

// BiddingOrder returns player indices starting after the dealer and ending
// with the dealer
func BiddingOrder(dealer, players int) []int {
	order := make([]int, 0, players)
	for i := 1; i <= players; i++ {
		order = append(order, (dealer+i)%players)
	}
	return order
}

// ValidBid reports whether a bid is possible with the cards dealt
func ValidBid(bid, cards int) bool {
	return bid >= 0 && bid <= cards
}

// ValidTricks reports whether a tricks count is possible with the cards dealt
func ValidTricks(tricks, cards int) bool {
	return tricks >= 0 && tricks <= cards
}

// BuildHands pairs each card count with its dealer, rotating from firstDealer
func BuildHands(sequence []int, firstDealer, players int) []models.Hand {
	hands := make([]models.Hand, 0, len(sequence))
	dealer := firstDealer
	for _, cards := range sequence {
		hands = append(hands, models.Hand{
			Cards:       cards,
			DealerIndex: dealer,
		})
		dealer = NextDealerIndex(dealer, players)
	}
	return hands
}

// SingleCardHands returns the positions of the one-card hands in a sequence
func SingleCardHands(sequence []int) []int {
	positions := []int{}
	for i, cards := range sequence {
		if cards == 1 {
			positions = append(positions, i)
		}
	}
	return positions
}

// FirstDealerForSingleCardHand picks the starting dealer so that dealer ends
// up dealing the first one-card hand. With no one-card hand the dealer simply
// starts.
func FirstDealerForSingleCardHand(sequence []int, dealer, players int) int {
	positions := SingleCardHands(sequence)
	if len(positions) == 0 || players <= 0 {
		return dealer
	}
	first := (dealer - positions[0]) % players
	if first < 0 {
		first += players
	}
	return first
}

// IsInvicto reports whether every hand was bid exactly
func IsInvicto(hands []models.HandResult) bool {
	for _, h := range hands {
		if h.Bid != h.Won {
			return false
		}
	}
	return true
}

// Standings orders players by total score, highest first. Ties keep seating
// order.
func Standings(players []*models.Player) []*models.Player {
	sorted := make([]*models.Player, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalScore > sorted[j].TotalScore
	})
	return sorted
}

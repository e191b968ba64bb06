package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/ohhell/internal/rules"
)

// service implements the Service interface
type service struct {
	mu sync.Mutex

	// Random number generator for selecting random messages
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	seed := time.Now().UnixNano()
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// pick selects a random message
func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}

// GetHandResultMessage returns the headline shown after a hand is scored
func (s *service) GetHandResultMessage(ctx context.Context, input *GetHandResultMessageInput) (*GetHandResultMessageOutput, error) {
	if input == nil || len(input.Results) == 0 {
		return nil, errors.New("hand results cannot be empty")
	}

	exact := []string{}
	for _, r := range input.Results {
		if r.Bid == r.Won {
			exact = append(exact, r.Name)
		}
	}

	var messages []string
	var tone MessageTone

	switch {
	case len(exact) == len(input.Results):
		tone = ToneCelebration
		messages = []string{
			"Everybody made their bid! Somebody check the deck.",
			"A perfect hand, all bids made. Nobody went to hell this time.",
			fmt.Sprintf("All %d players nailed it. Suspiciously well played.", len(exact)),
		}
	case len(exact) == 0:
		tone = ToneSarcastic
		messages = []string{
			"Nobody made their bid. Oh hell indeed.",
			"Not a single exact bid. The cards won this one.",
			fmt.Sprintf("%d cards and nobody could count them.", input.Cards),
		}
	default:
		tone = ToneEncouraging
		names := joinNames(exact)
		verb := "made their bid"
		if len(exact) == 1 {
			verb = "made the bid"
		}
		messages = []string{
			fmt.Sprintf("%s %s.", names, verb),
			fmt.Sprintf("Bonus points for %s.", names),
			fmt.Sprintf("%s kept the promise, everybody else pays.", names),
		}
	}

	return &GetHandResultMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
		Exact:   exact,
	}, nil
}

// GetGameCompleteMessage returns the winner announcement for a finished game
func (s *service) GetGameCompleteMessage(ctx context.Context, input *GetGameCompleteMessageInput) (*GetGameCompleteMessageOutput, error) {
	if input == nil || len(input.Players) == 0 {
		return nil, errors.New("players cannot be empty")
	}

	standings := rules.Standings(input.Players)
	top := standings[0].TotalScore

	winners := []string{}
	invicto := []string{}
	for _, p := range standings {
		if p.TotalScore == top {
			winners = append(winners, p.Name)
		}
		if p.Invicto && len(p.Hands) > 0 {
			invicto = append(invicto, p.Name)
		}
	}

	var messages []string
	names := joinNames(winners)
	if len(winners) == 1 {
		messages = []string{
			fmt.Sprintf("%s wins with %d points!", names, top),
			fmt.Sprintf("%d points and the bragging rights go to %s.", top, names),
			fmt.Sprintf("All hail %s, champion of the table with %d.", names, top),
		}
	} else {
		messages = []string{
			fmt.Sprintf("It's a tie! %s share the win with %d points.", names, top),
			fmt.Sprintf("%s could not be separated: %d points each.", names, top),
		}
	}

	message := s.pick(messages)
	if len(invicto) > 0 {
		message += fmt.Sprintf(" Invicto: %s.", joinNames(invicto))
	}

	title := "Game Over"
	if input.TournamentName != "" {
		title = fmt.Sprintf("Game Over: %s", input.TournamentName)
	}

	return &GetGameCompleteMessageOutput{
		Title:   title,
		Message: message,
		Tone:    ToneCelebration,
		Winners: winners,
		Invicto: invicto,
	}, nil
}

// joinNames renders "a", "a and b" or "a, b and c"
func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}

package game

import (
	"context"
	"slices"

	"github.com/KirkDiggler/ohhell/internal/models"
	"github.com/KirkDiggler/ohhell/internal/rules"
)

// requireStep fails unless everything step depends on is in the session
func requireStep(session *models.Session, step models.WizardStep) error {
	if session == nil {
		return ErrNilSession
	}
	if _, missing := session.MissingStep(step); missing {
		return ErrIncompleteConfig
	}
	return nil
}

// SaveMode stores the hand progression and its default sequence
func (s *service) SaveMode(ctx context.Context, input *SaveModeInput) (*SaveModeOutput, error) {
	if input == nil {
		return nil, ErrNilSession
	}
	if err := requireStep(input.Session, models.StepMode); err != nil {
		return nil, err
	}

	mode := input.Mode
	if mode == "" {
		mode = models.DefaultGameMode
	}
	if !mode.Valid() {
		return nil, ErrInvalidMode
	}

	session := input.Session
	sequence := rules.HandSequence(len(session.SelectedPlayers), mode)
	session.GameMode = mode
	session.SelectedHands = sequence

	return &SaveModeOutput{Sequence: sequence}, nil
}

// SaveSequence stores a custom hand sequence. Every hand must be dealable
// to the selected players.
func (s *service) SaveSequence(ctx context.Context, input *SaveSequenceInput) error {
	if input == nil {
		return ErrNilSession
	}
	if err := requireStep(input.Session, models.StepSequence); err != nil {
		return err
	}

	if len(input.Sequence) == 0 {
		return ErrEmptySequence
	}

	session := input.Session
	maxCards := rules.MaxCardsFor(len(session.SelectedPlayers))
	for _, cards := range input.Sequence {
		if cards < 1 || cards > maxCards {
			return ErrInvalidSequence
		}
	}

	if session.GameMode == "" {
		session.GameMode = models.DefaultGameMode
	}
	session.SelectedHands = slices.Clone(input.Sequence)
	return nil
}

// SaveOrder stores the seating order, a permutation of the selected players
func (s *service) SaveOrder(ctx context.Context, input *SaveOrderInput) error {
	if input == nil {
		return ErrNilSession
	}
	if err := requireStep(input.Session, models.StepOrder); err != nil {
		return err
	}

	session := input.Session
	if len(input.Order) != len(session.SelectedPlayers) {
		return ErrInvalidOrder
	}

	seen := map[string]bool{}
	for _, name := range input.Order {
		if seen[name] || !slices.Contains(session.SelectedPlayers, name) {
			return ErrInvalidOrder
		}
		seen[name] = true
	}

	session.PlayerOrder = slices.Clone(input.Order)
	if session.FirstDealerIndex >= len(session.PlayerOrder) {
		session.FirstDealerIndex = 0
	}
	return nil
}

// SaveDealer resolves and stores the first dealer
func (s *service) SaveDealer(ctx context.Context, input *SaveDealerInput) (*SaveDealerOutput, error) {
	if input == nil {
		return nil, ErrNilSession
	}
	if err := requireStep(input.Session, models.StepDealer); err != nil {
		return nil, err
	}

	session := input.Session
	players := len(session.PlayerOrder)

	var first int
	switch input.Mode {
	case DealerModeStart, "":
		if input.SelectedDealer < 0 || input.SelectedDealer >= players {
			return nil, ErrInvalidDealer
		}
		first = input.SelectedDealer
	case DealerModeSingleCard:
		if input.SelectedDealer < 0 || input.SelectedDealer >= players {
			return nil, ErrInvalidDealer
		}
		first = rules.FirstDealerForSingleCardHand(session.SelectedHands, input.SelectedDealer, players)
	case DealerModeDraw:
		first = s.diceRoller.Roll(players) - 1
		s.log.Info("drew first dealer", "dealer", session.PlayerOrder[first])
	default:
		return nil, ErrInvalidDealerMode
	}

	session.FirstDealerIndex = first
	session.DealerConfigured = true

	return &SaveDealerOutput{
		FirstDealerIndex: first,
		FirstDealer:      session.PlayerOrder[first],
	}, nil
}

// Summary describes the configured game before it starts
func (s *service) Summary(ctx context.Context, input *SummaryInput) (*SummaryOutput, error) {
	if input == nil {
		return nil, ErrNilSession
	}
	if err := requireStep(input.Session, models.StepSummary); err != nil {
		return nil, err
	}

	session := input.Session
	players := len(session.PlayerOrder)
	hands := rules.BuildHands(session.SelectedHands, session.FirstDealerIndex, players)

	total := 0
	for _, h := range hands {
		total += h.Cards
	}

	return &SummaryOutput{
		TournamentName: session.TournamentName,
		Players:        slices.Clone(session.PlayerOrder),
		Mode:           session.GameMode,
		Hands:          hands,
		FirstDealer:    session.PlayerOrder[session.FirstDealerIndex],
		TotalCards:     total,
		MaxCards:       rules.MaxCardsFor(players),
	}, nil
}

// NewGame discards the game, optionally keeping its configuration
func (s *service) NewGame(ctx context.Context, input *NewGameInput) error {
	if input == nil || input.Session == nil {
		return ErrNilSession
	}

	input.Session.ClearGame(input.KeepConfig)
	return nil
}

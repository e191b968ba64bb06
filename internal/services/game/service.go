package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/ohhell/internal/announcer"
	"github.com/KirkDiggler/ohhell/internal/common/clock"
	"github.com/KirkDiggler/ohhell/internal/dice"
	"github.com/KirkDiggler/ohhell/internal/logger"
	"github.com/KirkDiggler/ohhell/internal/models"
	scoresheetRepo "github.com/KirkDiggler/ohhell/internal/repositories/scoresheet"
	"github.com/KirkDiggler/ohhell/internal/rules"
	"github.com/KirkDiggler/ohhell/internal/services/messaging"
)

// service implements the Service interface
type service struct {
	scoresheetRepo   scoresheetRepo.Repository
	messagingService messaging.Service
	announcer        announcer.Announcer
	diceRoller       dice.Roller
	clock            clock.Clock
	log              *slog.Logger
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ScoresheetRepo == nil {
		return nil, ErrNilScoresheetRepo
	}

	if cfg.MessagingService == nil {
		return nil, ErrNilMessagingService
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	ann := cfg.Announcer
	if ann == nil {
		ann = announcer.Noop()
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Discard()
	}

	return &service{
		scoresheetRepo:   cfg.ScoresheetRepo,
		messagingService: cfg.MessagingService,
		announcer:        ann,
		diceRoller:       cfg.DiceRoller,
		clock:            cfg.Clock,
		log:              log,
	}, nil
}

// StartGame builds the game from the configuration and creates its score
// sheet. Without a sheet the game is not started.
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil {
		return nil, ErrNilSession
	}
	if err := requireStep(input.Session, models.StepSummary); err != nil {
		return nil, err
	}

	session := input.Session
	players := make([]*models.Player, 0, len(session.PlayerOrder))
	for _, name := range session.PlayerOrder {
		players = append(players, models.NewPlayer(name))
	}

	hands := rules.BuildHands(session.SelectedHands, session.FirstDealerIndex, len(players))
	sheetName := s.clock.Now().Format(SheetNameLayout)
	game := models.NewGame(session.TournamentID, session.TournamentName, players, session.GameMode, hands, sheetName)

	err := s.scoresheetRepo.CreateGameSheet(ctx, &scoresheetRepo.CreateGameSheetInput{
		TournamentID:   session.TournamentID,
		TournamentName: session.TournamentName,
		SheetName:      sheetName,
		Players:        session.PlayerOrder,
		Hands:          hands,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSheetCreation, err)
	}

	s.log.Info("game started",
		"tournament", session.TournamentName,
		"sheet", sheetName,
		"players", len(players),
		"hands", len(hands))

	session.Game = game
	return &StartGameOutput{Game: game}, nil
}

// activeHand returns the game of the session and the hand being played
func activeHand(session *models.Session) (*models.Game, models.Hand, error) {
	if session == nil {
		return nil, models.Hand{}, ErrNilSession
	}
	if session.Game == nil {
		return nil, models.Hand{}, ErrNoActiveGame
	}
	hand, ok := session.Game.CurrentHand()
	if !ok {
		return session.Game, models.Hand{}, ErrGameComplete
	}
	return session.Game, hand, nil
}

// forbiddenBid is the dealer's forbidden bid once every other player has bid
func forbiddenBid(game *models.Game, hand models.Hand) int {
	dealer := game.CurrentDealer()
	if dealer == nil {
		return -1
	}

	sum, count := 0, 0
	for name, bid := range game.CurrentBids {
		if name == dealer.Name {
			continue
		}
		sum += bid
		count++
	}
	if count < len(game.Players)-1 {
		return -1
	}
	return rules.ForbiddenDealerBid(sum, hand.Cards)
}

// GetHand describes the hand being played
func (s *service) GetHand(ctx context.Context, input *GetHandInput) (*GetHandOutput, error) {
	if input == nil {
		return nil, ErrNilSession
	}

	game, hand, err := activeHand(input.Session)
	if err != nil {
		return nil, err
	}

	order := make([]*models.Player, 0, len(game.Players))
	for _, i := range rules.BiddingOrder(game.DealerIndex, len(game.Players)) {
		order = append(order, game.Players[i])
	}

	return &GetHandOutput{
		Game:           game,
		Hand:           hand,
		Number:         game.CurrentHandIndex + 1,
		Dealer:         game.CurrentDealer(),
		BiddingOrder:   order,
		BidsComplete:   game.BidsComplete(),
		TricksComplete: game.TricksComplete(),
		ForbiddenBid:   forbiddenBid(game, hand),
	}, nil
}

// RecordBid records a bid. The dealer bids last and may not make the bids
// add up to the cards dealt. A player changing a bid after the dealer has
// bid voids the dealer's bid so the rule is checked again.
func (s *service) RecordBid(ctx context.Context, input *RecordBidInput) (*RecordBidOutput, error) {
	if input == nil {
		return nil, ErrNilSession
	}

	game, hand, err := activeHand(input.Session)
	if err != nil {
		return nil, err
	}

	if _, ok := game.Player(input.PlayerName); !ok {
		return nil, ErrUnknownPlayer
	}

	if !rules.ValidBid(input.Bid, hand.Cards) {
		return nil, ErrInvalidBid
	}

	if len(game.CurrentTricks) > 0 {
		return nil, ErrBiddingClosed
	}

	dealer := game.CurrentDealer()
	cleared := false

	if input.PlayerName == dealer.Name {
		if !othersHaveBid(game, dealer.Name) {
			return nil, ErrDealerBidsLast
		}

		sum := 0
		for name, bid := range game.CurrentBids {
			if name != dealer.Name {
				sum += bid
			}
		}
		if !rules.IsDealerBidLegal(sum, input.Bid, hand.Cards) {
			return nil, ErrHookOn
		}
	} else if previous, ok := game.CurrentBids[input.PlayerName]; ok && previous != input.Bid {
		if _, dealerBid := game.CurrentBids[dealer.Name]; dealerBid {
			delete(game.CurrentBids, dealer.Name)
			cleared = true
		}
	}

	game.CurrentBids[input.PlayerName] = input.Bid

	return &RecordBidOutput{
		TotalBids:        game.TotalBids(),
		BidsCount:        len(game.CurrentBids),
		BidsComplete:     game.BidsComplete(),
		DealerBidCleared: cleared,
		ForbiddenBid:     forbiddenBid(game, hand),
	}, nil
}

func othersHaveBid(game *models.Game, dealer string) bool {
	for _, p := range game.Players {
		if p.Name == dealer {
			continue
		}
		if _, ok := game.CurrentBids[p.Name]; !ok {
			return false
		}
	}
	return true
}

// RecordTricks records the tricks a player won. Totals that do not match
// the cards dealt are flagged but accepted.
func (s *service) RecordTricks(ctx context.Context, input *RecordTricksInput) (*RecordTricksOutput, error) {
	if input == nil {
		return nil, ErrNilSession
	}

	game, hand, err := activeHand(input.Session)
	if err != nil {
		return nil, err
	}

	if _, ok := game.Player(input.PlayerName); !ok {
		return nil, ErrUnknownPlayer
	}

	if !game.BidsComplete() {
		return nil, ErrBiddingIncomplete
	}

	if !rules.ValidTricks(input.Tricks, hand.Cards) {
		return nil, ErrInvalidTricks
	}

	game.CurrentTricks[input.PlayerName] = input.Tricks

	complete := game.TricksComplete()
	return &RecordTricksOutput{
		TotalTricks:    game.TotalTricks(),
		TricksCount:    len(game.CurrentTricks),
		TricksComplete: complete,
		TricksMismatch: complete && game.TotalTricks() != hand.Cards,
	}, nil
}

// CalculateScores scores the current hand, writes it to the sheet and moves
// to the next hand. A failed sheet write is reported through Persisted and
// does not stop the game.
func (s *service) CalculateScores(ctx context.Context, input *CalculateScoresInput) (*CalculateScoresOutput, error) {
	if input == nil {
		return nil, ErrNilSession
	}

	game, hand, err := activeHand(input.Session)
	if err != nil {
		return nil, err
	}

	if !game.BidsComplete() || !game.TricksComplete() {
		return nil, ErrTricksIncomplete
	}

	output := &CalculateScoresOutput{
		Cards:          hand.Cards,
		Results:        make([]PlayerResult, 0, len(game.Players)),
		Persisted:      true,
		TricksMismatch: game.TotalTricks() != hand.Cards,
	}

	sheetResults := make([]models.HandResult, 0, len(game.Players))
	messageResults := make([]messaging.PlayerHandResult, 0, len(game.Players))
	for _, p := range game.Players {
		bid := game.CurrentBids[p.Name]
		won := game.CurrentTricks[p.Name]
		score := rules.HandScore(bid, won)
		p.AddHandResult(bid, won, score)

		output.Results = append(output.Results, PlayerResult{
			Name:       p.Name,
			Bid:        bid,
			Won:        won,
			Score:      score,
			TotalScore: p.TotalScore,
		})
		sheetResults = append(sheetResults, models.HandResult{Bid: bid, Won: won, Score: score})
		messageResults = append(messageResults, messaging.PlayerHandResult{Name: p.Name, Bid: bid, Won: won, Score: score})
	}

	err = s.scoresheetRepo.AppendHandResult(ctx, &scoresheetRepo.AppendHandResultInput{
		TournamentID: game.TournamentID,
		SheetName:    game.SheetName,
		Cards:        hand.Cards,
		Results:      sheetResults,
	})
	if err != nil {
		s.log.Error("failed to record hand", "sheet", game.SheetName, "cards", hand.Cards, logger.Err(err))
		output.Persisted = false
	}

	headline, err := s.messagingService.GetHandResultMessage(ctx, &messaging.GetHandResultMessageInput{
		Cards:   hand.Cards,
		Results: messageResults,
	})
	if err != nil {
		s.log.Warn("failed to build hand headline", logger.Err(err))
	} else {
		output.Headline = headline.Message
	}

	game.AdvanceToNextHand()

	if game.IsComplete() {
		output.GameComplete = true
		s.finish(ctx, game, output)
	}

	return output, nil
}

// finish builds the winner announcement and publishes it
func (s *service) finish(ctx context.Context, game *models.Game, output *CalculateScoresOutput) {
	final, err := s.messagingService.GetGameCompleteMessage(ctx, &messaging.GetGameCompleteMessageInput{
		TournamentName: game.TournamentName,
		Players:        game.Players,
	})
	if err != nil {
		s.log.Warn("failed to build game complete message", logger.Err(err))
		return
	}

	output.FinalTitle = final.Title
	output.FinalMessage = final.Message
	output.Winners = final.Winners

	s.log.Info("game complete", "sheet", game.SheetName, "winners", final.Winners)

	err = s.announcer.AnnounceGameComplete(ctx, &announcer.AnnounceGameCompleteInput{
		TournamentName: game.TournamentName,
		SheetName:      game.SheetName,
		Title:          final.Title,
		Message:        final.Message,
		Standings:      rules.Standings(game.Players),
	})
	if err != nil {
		s.log.Warn("failed to announce game", "sheet", game.SheetName, logger.Err(err))
	}
}

// Standings returns the players ordered by score
func (s *service) Standings(ctx context.Context, input *StandingsInput) (*StandingsOutput, error) {
	if input == nil || input.Session == nil {
		return nil, ErrNilSession
	}

	game := input.Session.Game
	if game == nil {
		return nil, ErrNoActiveGame
	}

	output := &StandingsOutput{
		Game:     game,
		Players:  rules.Standings(game.Players),
		Complete: game.IsComplete(),
	}

	if last, ok := game.LastPlayedHand(); ok {
		output.LastHand = &last
	}

	if next, ok := game.CurrentHand(); ok {
		output.NextHand = &next
		output.NextDealer = game.CurrentDealer()
	}

	return output, nil
}

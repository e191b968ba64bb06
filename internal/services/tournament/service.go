package tournament

import (
	"context"
	"slices"
	"strings"

	"github.com/KirkDiggler/ohhell/internal/models"
	tournamentRepo "github.com/KirkDiggler/ohhell/internal/repositories/tournament"
	"github.com/KirkDiggler/ohhell/internal/rules"
)

// service implements the Service interface
type service struct {
	repo         tournamentRepo.Repository
	usersSheetID string
}

// New creates a new tournament service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.TournamentRepo == nil {
		return nil, ErrNilTournamentRepo
	}

	return &service{
		repo:         cfg.TournamentRepo,
		usersSheetID: cfg.UsersSheetID,
	}, nil
}

// ListTournaments returns every spreadsheet except the users sheet and the
// template
func (s *service) ListTournaments(ctx context.Context) ([]*models.Tournament, error) {
	all, err := s.repo.ListTournaments(ctx)
	if err != nil {
		return nil, err
	}

	tournaments := make([]*models.Tournament, 0, len(all))
	for _, t := range all {
		if s.usersSheetID != "" && t.ID == s.usersSheetID {
			continue
		}
		if t.Name == TemplateName {
			continue
		}
		tournaments = append(tournaments, t)
	}
	return tournaments, nil
}

// CreateTournament creates a tournament spreadsheet
func (s *service) CreateTournament(ctx context.Context, input *CreateTournamentInput) (*models.Tournament, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, ErrNameRequired
	}

	return s.repo.CreateTournament(ctx, &tournamentRepo.CreateTournamentInput{
		Name: strings.TrimSpace(input.Name),
	})
}

// SelectTournament stores the chosen tournament. Switching tournaments drops
// the game configuration, whose players belonged to the old roster.
func (s *service) SelectTournament(ctx context.Context, input *SelectTournamentInput) error {
	if input == nil || input.Session == nil {
		return ErrNilSession
	}

	id := strings.TrimSpace(input.TournamentID)
	if id == "" {
		return ErrTournamentRequired
	}

	session := input.Session
	if session.TournamentID != id {
		session.ClearGame(false)
	}
	session.TournamentID = id
	session.TournamentName = strings.TrimSpace(input.TournamentName)
	return nil
}

// ListPlayers returns the roster of the selected tournament
func (s *service) ListPlayers(ctx context.Context, input *ListPlayersInput) ([]string, error) {
	if input == nil || input.Session == nil {
		return nil, ErrNilSession
	}

	if input.Session.TournamentID == "" {
		return nil, ErrNoTournament
	}

	return s.repo.ListPlayers(ctx, &tournamentRepo.ListPlayersInput{
		TournamentID: input.Session.TournamentID,
	})
}

// AddPlayer adds a player to the roster. Names are unique ignoring case.
func (s *service) AddPlayer(ctx context.Context, input *AddPlayerInput) error {
	if input == nil || input.Session == nil {
		return ErrNilSession
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return ErrPlayerNameRequired
	}

	players, err := s.ListPlayers(ctx, &ListPlayersInput{Session: input.Session})
	if err != nil {
		return err
	}

	for _, p := range players {
		if strings.EqualFold(p, name) {
			return ErrPlayerExists
		}
	}

	return s.repo.AddPlayer(ctx, &tournamentRepo.AddPlayerInput{
		TournamentID: input.Session.TournamentID,
		Name:         name,
	})
}

// SelectPlayers stores the players of the next game. A different selection
// invalidates the order, hand sequence and dealer chosen for the old one.
func (s *service) SelectPlayers(ctx context.Context, input *SelectPlayersInput) error {
	if input == nil || input.Session == nil {
		return ErrNilSession
	}

	selected := []string{}
	for _, name := range input.Players {
		name = strings.TrimSpace(name)
		if name != "" && !slices.Contains(selected, name) {
			selected = append(selected, name)
		}
	}

	if len(selected) < rules.MinPlayers {
		return ErrNotEnoughPlayers
	}

	roster, err := s.ListPlayers(ctx, &ListPlayersInput{Session: input.Session})
	if err != nil {
		return err
	}

	for _, name := range selected {
		if !slices.Contains(roster, name) {
			return ErrUnknownPlayer
		}
	}

	session := input.Session
	if !sameMembers(session.SelectedPlayers, selected) {
		session.ClearGame(false)
	}
	session.SelectedPlayers = selected
	return nil
}

func sameMembers(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for _, name := range a {
		if !slices.Contains(b, name) {
			return false
		}
	}
	return true
}

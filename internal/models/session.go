package models

import (
	"time"
)

// FlashCategory classifies a one-shot message shown on the next page
type FlashCategory string

const (
	FlashSuccess FlashCategory = "success"
	FlashError   FlashCategory = "error"
	FlashWarning FlashCategory = "warning"
	FlashInfo    FlashCategory = "info"
)

// Flash is a message queued for the next rendered page
type Flash struct {
	Category FlashCategory `json:"category"`
	Message  string        `json:"message"`
}

// WizardStep names a step of the game configuration flow
type WizardStep string

const (
	StepTournament WizardStep = "tournament"
	StepPlayers    WizardStep = "players"
	StepMode       WizardStep = "mode"
	StepSequence   WizardStep = "sequence"
	StepOrder      WizardStep = "order"
	StepDealer     WizardStep = "dealer"
	StepSummary    WizardStep = "summary"
	StepPlay       WizardStep = "play"
)

// stepPrerequisites lists, in flow order, the steps whose output must exist
// before a step can be shown
var stepPrerequisites = map[WizardStep][]WizardStep{
	StepTournament: {},
	StepPlayers:    {StepTournament},
	StepMode:       {StepTournament, StepPlayers},
	StepSequence:   {StepTournament, StepPlayers},
	StepOrder:      {StepTournament, StepPlayers, StepMode},
	StepDealer:     {StepTournament, StepPlayers, StepMode, StepOrder},
	StepSummary:    {StepTournament, StepPlayers, StepMode, StepOrder, StepDealer},
	StepPlay:       {StepPlay},
}

// Session is the per-browser state carried between requests
type Session struct {
	// ID is the unique identifier of the session
	ID string `json:"id"`

	// Username is the logged in user, empty when anonymous
	Username string `json:"username"`

	// IsAdmin is true for the configured admin account
	IsAdmin bool `json:"is_admin"`

	// TournamentID is the spreadsheet ID of the selected tournament
	TournamentID string `json:"tournament_id"`

	// TournamentName is the title of the selected tournament
	TournamentName string `json:"tournament_name"`

	// SelectedPlayers are the players chosen for the next game
	SelectedPlayers []string `json:"selected_players"`

	// GameMode is the configured hand progression
	GameMode GameMode `json:"game_mode"`

	// SelectedHands is the card count of each hand, in order
	SelectedHands []int `json:"selected_hands"`

	// PlayerOrder is the seating order of the selected players
	PlayerOrder []string `json:"player_order"`

	// FirstDealerIndex is the index into PlayerOrder of the first dealer
	FirstDealerIndex int `json:"first_dealer_index"`

	// DealerConfigured is set once the dealer step has been saved
	DealerConfigured bool `json:"dealer_configured"`

	// Game is the game in progress, if any
	Game *Game `json:"game,omitempty"`

	// Flashes are messages waiting to be displayed
	Flashes []Flash `json:"flashes,omitempty"`

	// CreatedAt is when the session was created
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the session was last saved
	UpdatedAt time.Time `json:"updated_at"`
}

// LoggedIn reports whether a user is attached to the session
func (s *Session) LoggedIn() bool {
	return s.Username != ""
}

// AddFlash queues a message for the next page
func (s *Session) AddFlash(category FlashCategory, message string) {
	s.Flashes = append(s.Flashes, Flash{Category: category, Message: message})
}

// PopFlashes returns the queued messages and clears them
func (s *Session) PopFlashes() []Flash {
	flashes := s.Flashes
	s.Flashes = nil
	return flashes
}

// Logout drops everything but the session identity
func (s *Session) Logout() {
	*s = Session{
		ID:        s.ID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ClearGame discards the active game and, unless keepConfig is set, the
// game configuration. The selected tournament is always kept.
func (s *Session) ClearGame(keepConfig bool) {
	s.Game = nil
	if keepConfig {
		return
	}
	s.SelectedPlayers = nil
	s.GameMode = ""
	s.SelectedHands = nil
	s.PlayerOrder = nil
	s.FirstDealerIndex = 0
	s.DealerConfigured = false
}

// MissingStep returns the earliest step whose output is required by step
// but absent from the session
func (s *Session) MissingStep(step WizardStep) (WizardStep, bool) {
	for _, prerequisite := range stepPrerequisites[step] {
		if !s.hasCompleted(prerequisite) {
			return prerequisite, true
		}
	}
	return "", false
}

func (s *Session) hasCompleted(step WizardStep) bool {
	switch step {
	case StepTournament:
		return s.TournamentID != ""
	case StepPlayers:
		return len(s.SelectedPlayers) >= 2
	case StepMode:
		return len(s.SelectedHands) > 0
	case StepOrder:
		return len(s.PlayerOrder) > 0
	case StepDealer:
		return s.DealerConfigured
	case StepPlay:
		return s.Game != nil
	}
	return true
}

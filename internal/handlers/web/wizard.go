package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/KirkDiggler/ohhell/internal/models"
	"github.com/KirkDiggler/ohhell/internal/rules"
	"github.com/KirkDiggler/ohhell/internal/services/game"
)

type modeOption struct {
	Mode     models.GameMode
	Label    string
	Sequence []int
}

type modeData struct {
	Options  []modeOption
	Current  models.GameMode
	MaxCards int
}

type sequenceData struct {
	MaxCards int
	Selected []int
}

type orderData struct {
	Players []string
}

type dealerData struct {
	Players       []string
	Selected      int
	HasSingleCard bool
}

var modeLabels = []struct {
	mode  models.GameMode
	label string
}{
	{models.GameModeDownThenUp, "Down then up"},
	{models.GameModeUpThenDown, "Up then down"},
	{models.GameModeUp, "Up"},
	{models.GameModeDown, "Down"},
}

func (s *Server) handleMode(w http.ResponseWriter, r *http.Request, session *models.Session) {
	players := len(session.SelectedPlayers)
	data := modeData{
		Current:  session.GameMode,
		MaxCards: rules.MaxCardsFor(players),
	}
	if data.Current == "" {
		data.Current = models.DefaultGameMode
	}
	for _, m := range modeLabels {
		data.Options = append(data.Options, modeOption{
			Mode:     m.mode,
			Label:    m.label,
			Sequence: rules.HandSequence(players, m.mode),
		})
	}

	s.render(w, r, session, "mode.html", "Game Mode", data)
}

func (s *Server) handleSaveMode(w http.ResponseWriter, r *http.Request, session *models.Session) {
	_, err := s.games.SaveMode(r.Context(), &game.SaveModeInput{
		Session: session,
		Mode:    models.GameMode(r.FormValue("game_mode")),
	})
	if err != nil {
		s.fail(w, r, session, err, "Error saving game mode", "/game/mode")
		return
	}

	session.AddFlash(models.FlashSuccess, "Game mode configured")
	if r.FormValue("action") == "customize" {
		s.redirect(w, r, session, "/game/sequence")
		return
	}
	s.redirect(w, r, session, "/game/order")
}

func (s *Server) handleSequence(w http.ResponseWriter, r *http.Request, session *models.Session) {
	players := len(session.SelectedPlayers)
	selected := session.SelectedHands
	if len(selected) == 0 {
		selected = rules.HandSequence(players, models.DefaultGameMode)
	}

	s.render(w, r, session, "sequence.html", "Hand Sequence", sequenceData{
		MaxCards: rules.MaxCardsFor(players),
		Selected: selected,
	})
}

func (s *Server) handleSaveSequence(w http.ResponseWriter, r *http.Request, session *models.Session) {
	err := s.games.SaveSequence(r.Context(), &game.SaveSequenceInput{
		Session:  session,
		Sequence: parseSequence(r.FormValue("hands_sequence")),
	})
	if err != nil {
		s.fail(w, r, session, err, "Error saving hand sequence", "/game/sequence")
		return
	}

	session.AddFlash(models.FlashSuccess, "Hand sequence saved")
	s.redirect(w, r, session, "/game/order")
}

// parseSequence reads a JSON array of card counts. Numbers may be sent as
// strings; anything unreadable yields an empty sequence.
func parseSequence(raw string) []int {
	var values []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil
	}

	sequence := make([]int, 0, len(values))
	for _, v := range values {
		text := strings.Trim(string(v), `"`)
		n, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			return nil
		}
		sequence = append(sequence, n)
	}
	return sequence
}

func (s *Server) handleOrder(w http.ResponseWriter, r *http.Request, session *models.Session) {
	players := session.SelectedPlayers
	if sameMembers(session.PlayerOrder, session.SelectedPlayers) {
		players = session.PlayerOrder
	}

	s.render(w, r, session, "order.html", "Player Order", orderData{Players: players})
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

func (s *Server) handleSaveOrder(w http.ResponseWriter, r *http.Request, session *models.Session) {
	if err := r.ParseForm(); err != nil {
		s.fail(w, r, session, err, "Invalid form", "/game/order")
		return
	}

	err := s.games.SaveOrder(r.Context(), &game.SaveOrderInput{
		Session: session,
		Order:   r.PostForm["player_order"],
	})
	if err != nil {
		s.fail(w, r, session, err, "Error saving player order", "/game/order")
		return
	}

	session.AddFlash(models.FlashSuccess, "Player order configured")
	s.redirect(w, r, session, "/game/dealer")
}

func (s *Server) handleDealer(w http.ResponseWriter, r *http.Request, session *models.Session) {
	s.render(w, r, session, "dealer.html", "Dealer", dealerData{
		Players:       session.PlayerOrder,
		Selected:      session.FirstDealerIndex,
		HasSingleCard: len(rules.SingleCardHands(session.SelectedHands)) > 0,
	})
}

func (s *Server) handleSaveDealer(w http.ResponseWriter, r *http.Request, session *models.Session) {
	mode := game.DealerMode(r.FormValue("dealer_mode"))

	selected := 0
	if mode != game.DealerModeDraw {
		n, err := strconv.Atoi(r.FormValue("selected_dealer"))
		if err != nil {
			s.fail(w, r, session, game.ErrInvalidDealer, "Error saving dealer", "/game/dealer")
			return
		}
		selected = n
	}

	out, err := s.games.SaveDealer(r.Context(), &game.SaveDealerInput{
		Session:        session,
		Mode:           mode,
		SelectedDealer: selected,
	})
	if err != nil {
		s.fail(w, r, session, err, "Error saving dealer", "/game/dealer")
		return
	}

	session.AddFlash(models.FlashSuccess, "Dealer assignment configured")
	if mode == game.DealerModeDraw {
		session.AddFlash(models.FlashInfo, fmt.Sprintf("%s deals first", out.FirstDealer))
	}
	s.redirect(w, r, session, "/game/summary")
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request, session *models.Session) {
	out, err := s.games.Summary(r.Context(), &game.SummaryInput{Session: session})
	if err != nil {
		s.fail(w, r, session, err, "Error loading summary", "/game/dealer")
		return
	}

	s.render(w, r, session, "summary.html", "Summary", out)
}

func (s *Server) handleStartGame(w http.ResponseWriter, r *http.Request, session *models.Session) {
	if _, err := s.games.StartGame(r.Context(), &game.StartGameInput{Session: session}); err != nil {
		s.fail(w, r, session, err, game.ErrSheetCreation.Error(), "/game/summary")
		return
	}

	session.AddFlash(models.FlashSuccess, "Game started!")
	s.redirect(w, r, session, "/game/hand")
}

package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/KirkDiggler/ohhell/internal/models"
	"github.com/KirkDiggler/ohhell/internal/services/game"
)

type handRow struct {
	Name      string
	IsDealer  bool
	Bid       int
	HasBid    bool
	Tricks    int
	HasTricks bool
}

type handData struct {
	Number         int
	Total          int
	Cards          int
	Dealer         string
	Rows           []handRow
	TotalBids      int
	TotalTricks    int
	BidsComplete   bool
	TricksComplete bool
	ForbiddenBid   int
	Range          []int
}

type scoreRow struct {
	Rank    int
	Name    string
	Total   int
	Invicto bool
	Last    *models.HandResult
}

type scoresData struct {
	Cards      int
	Rows       []scoreRow
	Complete   bool
	NextCards  int
	NextDealer string
	Played     int
	Total      int
}

func (s *Server) handleHand(w http.ResponseWriter, r *http.Request, session *models.Session) {
	out, err := s.games.GetHand(r.Context(), &game.GetHandInput{Session: session})
	if errors.Is(err, game.ErrGameComplete) {
		session.AddFlash(models.FlashInfo, "Game is complete!")
		s.redirect(w, r, session, "/game/final-scores")
		return
	}
	if err != nil {
		s.fail(w, r, session, err, "Error loading hand", "/tournament/")
		return
	}

	data := handData{
		Number:         out.Number,
		Total:          len(out.Game.Hands),
		Cards:          out.Hand.Cards,
		Dealer:         out.Dealer.Name,
		TotalBids:      out.Game.TotalBids(),
		TotalTricks:    out.Game.TotalTricks(),
		BidsComplete:   out.BidsComplete,
		TricksComplete: out.TricksComplete,
		ForbiddenBid:   out.ForbiddenBid,
	}
	for i := 0; i <= out.Hand.Cards; i++ {
		data.Range = append(data.Range, i)
	}
	for _, p := range out.BiddingOrder {
		row := handRow{Name: p.Name, IsDealer: p.Name == out.Dealer.Name}
		row.Bid, row.HasBid = out.Game.CurrentBids[p.Name]
		row.Tricks, row.HasTricks = out.Game.CurrentTricks[p.Name]
		data.Rows = append(data.Rows, row)
	}

	s.render(w, r, session, "hand.html", fmt.Sprintf("Hand %d", out.Number), data)
}

// playRequest is the body of the bid and tricks endpoints
type playRequest struct {
	PlayerName string `json:"player_name"`
	Bid        *int   `json:"bid"`
	Tricks     *int   `json:"tricks"`
}

// readPlay accepts either a JSON body or a form. field names the count:
// "bid" or "tricks".
func readPlay(r *http.Request, field string) (string, int, bool) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var req playRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return "", 0, false
		}
		value := req.Bid
		if field == "tricks" {
			value = req.Tricks
		}
		if value == nil {
			return req.PlayerName, 0, false
		}
		return req.PlayerName, *value, true
	}

	n, err := strconv.Atoi(r.FormValue(field))
	if err != nil {
		return r.FormValue("player_name"), 0, false
	}
	return r.FormValue("player_name"), n, true
}

func (s *Server) handleBid(w http.ResponseWriter, r *http.Request, session *models.Session) {
	name, bid, ok := readPlay(r, "bid")
	if !ok {
		s.writeJSON(w, r, session, http.StatusBadRequest, errorResponse(game.ErrInvalidBid.Error()))
		return
	}

	out, err := s.games.RecordBid(r.Context(), &game.RecordBidInput{
		Session:    session,
		PlayerName: name,
		Bid:        bid,
	})
	if err != nil {
		s.writeJSON(w, r, session, http.StatusBadRequest, errorResponse(s.userMessage(err, "Error recording bid")))
		return
	}

	s.writeJSON(w, r, session, http.StatusOK, map[string]any{
		"success":            true,
		"total_bids":         out.TotalBids,
		"bids_count":         out.BidsCount,
		"bids_complete":      out.BidsComplete,
		"dealer_bid_cleared": out.DealerBidCleared,
		"forbidden_bid":      out.ForbiddenBid,
	})
}

func (s *Server) handleTricks(w http.ResponseWriter, r *http.Request, session *models.Session) {
	name, tricks, ok := readPlay(r, "tricks")
	if !ok {
		s.writeJSON(w, r, session, http.StatusBadRequest, errorResponse(game.ErrInvalidTricks.Error()))
		return
	}

	out, err := s.games.RecordTricks(r.Context(), &game.RecordTricksInput{
		Session:    session,
		PlayerName: name,
		Tricks:     tricks,
	})
	if err != nil {
		s.writeJSON(w, r, session, http.StatusBadRequest, errorResponse(s.userMessage(err, "Error recording tricks")))
		return
	}

	s.writeJSON(w, r, session, http.StatusOK, map[string]any{
		"success":         true,
		"total_tricks":    out.TotalTricks,
		"tricks_count":    out.TricksCount,
		"tricks_complete": out.TricksComplete,
		"tricks_mismatch": out.TricksMismatch,
	})
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request, session *models.Session) {
	out, err := s.games.CalculateScores(r.Context(), &game.CalculateScoresInput{Session: session})
	if err != nil {
		s.fail(w, r, session, err, "Error calculating scores", "/game/hand")
		return
	}

	if out.Headline != "" {
		session.AddFlash(models.FlashInfo, out.Headline)
	}
	if out.TricksMismatch {
		session.AddFlash(models.FlashWarning, "Tricks won do not add up to the cards dealt")
	}
	if !out.Persisted {
		session.AddFlash(models.FlashWarning, "Scores could not be saved to the spreadsheet")
	}
	if out.GameComplete {
		session.AddFlash(models.FlashSuccess, out.FinalTitle+": "+out.FinalMessage)
	}

	s.redirect(w, r, session, fmt.Sprintf("/game/scores/%d", out.Cards))
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request, session *models.Session) {
	cards, err := strconv.Atoi(mux.Vars(r)["cards"])
	if err != nil {
		http.NotFound(w, r)
		return
	}

	out, err := s.games.Standings(r.Context(), &game.StandingsInput{Session: session})
	if err != nil {
		s.fail(w, r, session, err, "Error loading scores", "/tournament/")
		return
	}

	data := scoresData{
		Cards:    cards,
		Complete: out.Complete,
		Played:   out.Game.CurrentHandIndex,
		Total:    len(out.Game.Hands),
	}
	for i, p := range out.Players {
		row := scoreRow{Rank: i + 1, Name: p.Name, Total: p.TotalScore, Invicto: p.Invicto && len(p.Hands) > 0}
		if n := len(p.Hands); n > 0 {
			row.Last = &p.Hands[n-1]
		}
		data.Rows = append(data.Rows, row)
	}
	if out.NextHand != nil {
		data.NextCards = out.NextHand.Cards
		data.NextDealer = out.NextDealer.Name
	}

	s.render(w, r, session, "scores.html", "Scores", data)
}

func (s *Server) handleFinalScores(w http.ResponseWriter, r *http.Request, session *models.Session) {
	out, err := s.games.Standings(r.Context(), &game.StandingsInput{Session: session})
	if err != nil {
		s.fail(w, r, session, err, "Error loading scores", "/tournament/")
		return
	}

	if out.LastHand == nil {
		session.AddFlash(models.FlashInfo, "No hands have been played")
		s.redirect(w, r, session, "/game/hand")
		return
	}
	s.redirect(w, r, session, fmt.Sprintf("/game/scores/%d", out.LastHand.Cards))
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request, session *models.Session) {
	if err := s.games.NewGame(r.Context(), &game.NewGameInput{Session: session}); err != nil {
		s.fail(w, r, session, err, "Error starting new game", "/tournament/")
		return
	}

	session.AddFlash(models.FlashInfo, "Starting new game")
	s.redirect(w, r, session, "/tournament/players")
}

func (s *Server) handleNewGameSameConfig(w http.ResponseWriter, r *http.Request, session *models.Session) {
	if err := s.games.NewGame(r.Context(), &game.NewGameInput{Session: session, KeepConfig: true}); err != nil {
		s.fail(w, r, session, err, "Error starting new game", "/tournament/")
		return
	}

	session.AddFlash(models.FlashInfo, "Starting new game with same configuration")
	s.redirect(w, r, session, "/game/order")
}

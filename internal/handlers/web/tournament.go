package web

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/KirkDiggler/ohhell/internal/models"
	"github.com/KirkDiggler/ohhell/internal/services/tournament"
)

type tournamentsData struct {
	Tournaments []*models.Tournament
	SelectedID  string
}

type playersData struct {
	Players  []string
	Selected []string
}

func (s *Server) handleTournaments(w http.ResponseWriter, r *http.Request, session *models.Session) {
	tournaments, err := s.tournaments.ListTournaments(r.Context())
	if err != nil {
		session.AddFlash(models.FlashError, s.userMessage(err, "Error loading tournaments"))
	}

	s.render(w, r, session, "tournaments.html", "Tournaments", tournamentsData{
		Tournaments: tournaments,
		SelectedID:  session.TournamentID,
	})
}

func (s *Server) handleSelectTournament(w http.ResponseWriter, r *http.Request, session *models.Session) {
	name := r.FormValue("tournament_name")
	err := s.tournaments.SelectTournament(r.Context(), &tournament.SelectTournamentInput{
		Session:        session,
		TournamentID:   r.FormValue("tournament_id"),
		TournamentName: name,
	})
	if err != nil {
		s.fail(w, r, session, err, "Error selecting tournament", "/tournament/")
		return
	}

	session.AddFlash(models.FlashSuccess, fmt.Sprintf("Tournament %q selected", name))
	s.redirect(w, r, session, "/tournament/players")
}

func (s *Server) handleCreateTournament(w http.ResponseWriter, r *http.Request, session *models.Session) {
	created, err := s.tournaments.CreateTournament(r.Context(), &tournament.CreateTournamentInput{
		Name: strings.TrimSpace(r.FormValue("tournament_name")),
	})
	if err != nil {
		s.fail(w, r, session, err, "Error creating tournament", "/tournament/")
		return
	}

	err = s.tournaments.SelectTournament(r.Context(), &tournament.SelectTournamentInput{
		Session:        session,
		TournamentID:   created.ID,
		TournamentName: created.Name,
	})
	if err != nil {
		s.fail(w, r, session, err, "Error selecting tournament", "/tournament/")
		return
	}

	session.AddFlash(models.FlashSuccess, fmt.Sprintf("Tournament %q created", created.Name))
	s.redirect(w, r, session, "/tournament/players")
}

func (s *Server) handlePlayers(w http.ResponseWriter, r *http.Request, session *models.Session) {
	players, err := s.tournaments.ListPlayers(r.Context(), &tournament.ListPlayersInput{Session: session})
	if err != nil {
		session.AddFlash(models.FlashError, s.userMessage(err, "Error loading players"))
	}

	s.render(w, r, session, "players.html", "Players", playersData{
		Players:  players,
		Selected: session.SelectedPlayers,
	})
}

func (s *Server) handleAddPlayer(w http.ResponseWriter, r *http.Request, session *models.Session) {
	name := strings.TrimSpace(r.FormValue("player_name"))
	err := s.tournaments.AddPlayer(r.Context(), &tournament.AddPlayerInput{
		Session: session,
		Name:    name,
	})

	switch {
	case err == nil:
		session.AddFlash(models.FlashSuccess, fmt.Sprintf("Player %q added successfully", name))
	case errors.Is(err, tournament.ErrPlayerExists):
		session.AddFlash(models.FlashError, fmt.Sprintf("Player %q already exists", name))
	default:
		session.AddFlash(models.FlashError, s.userMessage(err, "Error adding player"))
	}
	s.redirect(w, r, session, "/tournament/players")
}

func (s *Server) handleSelectPlayers(w http.ResponseWriter, r *http.Request, session *models.Session) {
	if err := r.ParseForm(); err != nil {
		s.fail(w, r, session, err, "Invalid form", "/tournament/players")
		return
	}

	err := s.tournaments.SelectPlayers(r.Context(), &tournament.SelectPlayersInput{
		Session: session,
		Players: r.PostForm["selected_players"],
	})
	if err != nil {
		s.fail(w, r, session, err, "Error selecting players", "/tournament/players")
		return
	}

	session.AddFlash(models.FlashSuccess, fmt.Sprintf("%d players selected", len(session.SelectedPlayers)))
	s.redirect(w, r, session, "/game/mode")
}

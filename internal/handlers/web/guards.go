package web

import (
	"net/http"

	"github.com/KirkDiggler/ohhell/internal/models"
	"github.com/KirkDiggler/ohhell/internal/services/game"
)

const (
	stepPlayers  = models.StepPlayers
	stepMode     = models.StepMode
	stepSequence = models.StepSequence
	stepOrder    = models.StepOrder
	stepDealer   = models.StepDealer
	stepSummary  = models.StepSummary
	stepPlay     = models.StepPlay
)

const (
	msgLoginRequired = "Please log in to access this page"
	msgAdminRequired = "Admin access required"
)

// stepPages is where the browser is sent when a step is missing
var stepPages = map[models.WizardStep]string{
	models.StepTournament: "/tournament/",
	models.StepPlayers:    "/tournament/players",
	models.StepMode:       "/game/mode",
	models.StepSequence:   "/game/sequence",
	models.StepOrder:      "/game/order",
	models.StepDealer:     "/game/dealer",
	models.StepSummary:    "/game/summary",
	models.StepPlay:       "/tournament/",
}

func missingStepMessage(step models.WizardStep) string {
	switch step {
	case models.StepTournament:
		return "Please select a tournament first"
	case models.StepPlayers:
		return "Please select players first"
	case models.StepPlay:
		return game.ErrNoActiveGame.Error()
	}
	return game.ErrIncompleteConfig.Error()
}

// loggedIn sends anonymous browsers to the login page
func (s *Server) loggedIn(next handlerFunc) http.HandlerFunc {
	return s.withSession(func(w http.ResponseWriter, r *http.Request, session *models.Session) {
		if !session.LoggedIn() {
			session.AddFlash(models.FlashError, msgLoginRequired)
			s.redirect(w, r, session, "/login")
			return
		}
		next(w, r, session)
	})
}

// admin restricts a page to the admin account
func (s *Server) admin(next handlerFunc) http.HandlerFunc {
	return s.loggedIn(func(w http.ResponseWriter, r *http.Request, session *models.Session) {
		if !session.IsAdmin {
			session.AddFlash(models.FlashError, msgAdminRequired)
			s.redirect(w, r, session, "/tournament/")
			return
		}
		next(w, r, session)
	})
}

// wizard sends the browser back to the earliest step it has not completed
func (s *Server) wizard(step models.WizardStep, next handlerFunc) http.HandlerFunc {
	return s.loggedIn(func(w http.ResponseWriter, r *http.Request, session *models.Session) {
		if missing, ok := session.MissingStep(step); ok {
			session.AddFlash(models.FlashError, missingStepMessage(missing))
			s.redirect(w, r, session, stepPages[missing])
			return
		}
		next(w, r, session)
	})
}

// jsonGame guards the JSON play endpoints, answering with JSON errors
// instead of redirects
func (s *Server) jsonGame(next handlerFunc) http.HandlerFunc {
	return s.withSession(func(w http.ResponseWriter, r *http.Request, session *models.Session) {
		if !session.LoggedIn() {
			s.writeJSON(w, r, session, http.StatusUnauthorized, errorResponse(msgLoginRequired))
			return
		}
		if session.Game == nil {
			s.writeJSON(w, r, session, http.StatusBadRequest, errorResponse(game.ErrNoActiveGame.Error()))
			return
		}
		next(w, r, session)
	})
}

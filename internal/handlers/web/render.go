package web

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"slices"

	"github.com/KirkDiggler/ohhell/internal/logger"
	"github.com/KirkDiggler/ohhell/internal/models"
	"github.com/KirkDiggler/ohhell/internal/services/auth"
	"github.com/KirkDiggler/ohhell/internal/services/game"
	"github.com/KirkDiggler/ohhell/internal/services/tournament"
	"github.com/KirkDiggler/ohhell/internal/services/user"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// pageSet holds one template per page, each parsed with the layout
type pageSet map[string]*template.Template

var pageNames = []string{
	"login.html",
	"users.html",
	"tournaments.html",
	"players.html",
	"mode.html",
	"sequence.html",
	"order.html",
	"dealer.html",
	"summary.html",
	"hand.html",
	"scores.html",
}

var templateFuncs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
	"contains": func(list []string, s string) bool {
		return slices.Contains(list, s)
	},
	"json": func(v any) (string, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(b), nil
	},
}

func loadPages() (pageSet, error) {
	pages := make(pageSet, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New(name).Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = t
	}
	return pages, nil
}

func staticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

// view is what every page template receives
type view struct {
	Title          string
	Username       string
	IsAdmin        bool
	TournamentName string
	Flashes        []models.Flash
	Data           any
}

// render pops the pending flashes into the page and saves the session
func (s *Server) render(w http.ResponseWriter, r *http.Request, session *models.Session, page, title string, data any) {
	v := view{
		Title:          title,
		Username:       session.Username,
		IsAdmin:        session.IsAdmin,
		TournamentName: session.TournamentName,
		Flashes:        session.PopFlashes(),
		Data:           data,
	}

	if !s.saveSession(w, r, session) {
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.pages[page].ExecuteTemplate(w, "layout", v); err != nil {
		s.log.Error("failed to render page", logger.Err(err), "page", page)
	}
}

// writeJSON saves the session and writes body as JSON
func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, session *models.Session, status int, body any) {
	if !s.saveSession(w, r, session) {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error("failed to write JSON response", logger.Err(err))
	}
}

func errorResponse(message string) map[string]any {
	return map[string]any{"success": false, "error": message}
}

// userMessage returns the text shown for err. Validation errors of the
// services are shown as they are; anything else is logged and replaced by
// fallback.
func (s *Server) userMessage(err error, fallback string) string {
	var (
		gameErr       game.GameError
		tournamentErr tournament.TournamentError
		userErr       user.UserError
		authErr       auth.AuthError
	)

	var matched error
	switch {
	case errors.As(err, &gameErr):
		matched = gameErr
	case errors.As(err, &tournamentErr):
		matched = tournamentErr
	case errors.As(err, &userErr):
		matched = userErr
	case errors.As(err, &authErr):
		matched = authErr
	}

	// a wrapped validation error still carries an external failure
	if matched != err {
		s.log.Error(fallback, logger.Err(err))
	}
	if matched == nil {
		return fallback
	}
	return matched.Error()
}

// fail flashes err and sends the browser to url
func (s *Server) fail(w http.ResponseWriter, r *http.Request, session *models.Session, err error, fallback, url string) {
	session.AddFlash(models.FlashError, s.userMessage(err, fallback))
	s.redirect(w, r, session, url)
}

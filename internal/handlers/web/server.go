// Package web serves the scorekeeper pages: login, user administration,
// tournament selection, the game configuration wizard and hand by hand play.
package web

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/KirkDiggler/ohhell/internal/common/clock"
	"github.com/KirkDiggler/ohhell/internal/logger"
	sessionRepo "github.com/KirkDiggler/ohhell/internal/repositories/session"
	"github.com/KirkDiggler/ohhell/internal/services/auth"
	"github.com/KirkDiggler/ohhell/internal/services/game"
	"github.com/KirkDiggler/ohhell/internal/services/tournament"
	"github.com/KirkDiggler/ohhell/internal/services/user"
)

// Config holds the configuration for the web server
type Config struct {
	AuthService       auth.Service
	UserService       user.Service
	TournamentService tournament.Service
	GameService       game.Service
	SessionRepo       sessionRepo.Repository

	// SecretKey signs the session cookie
	SecretKey string

	// SessionTTL bounds the lifetime of the session cookie
	SessionTTL time.Duration

	CookieSecure   bool
	CookieHTTPOnly bool
	CookieSameSite http.SameSite

	// Clock defaults to the system clock
	Clock clock.Clock

	// Logger defaults to a discarding logger
	Logger *slog.Logger
}

// Server routes requests to the services
type Server struct {
	auth        auth.Service
	users       user.Service
	tournaments tournament.Service
	games       game.Service
	sessions    sessionRepo.Repository

	cookie cookieConfig
	clock  clock.Clock
	log    *slog.Logger
	pages  pageSet
	router *mux.Router
}

// New creates the web server and registers its routes
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.AuthService == nil || cfg.UserService == nil || cfg.TournamentService == nil || cfg.GameService == nil {
		return nil, errors.New("services cannot be nil")
	}

	if cfg.SessionRepo == nil {
		return nil, errors.New("session repository cannot be nil")
	}

	if cfg.SecretKey == "" {
		return nil, errors.New("secret key cannot be empty")
	}

	if cfg.SessionTTL <= 0 {
		return nil, errors.New("session TTL must be positive")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Discard()
	}

	pages, err := loadPages()
	if err != nil {
		return nil, err
	}

	s := &Server{
		auth:        cfg.AuthService,
		users:       cfg.UserService,
		tournaments: cfg.TournamentService,
		games:       cfg.GameService,
		sessions:    cfg.SessionRepo,
		cookie: cookieConfig{
			key:      []byte(cfg.SecretKey),
			ttl:      cfg.SessionTTL,
			secure:   cfg.CookieSecure,
			httpOnly: cfg.CookieHTTPOnly,
			sameSite: cfg.CookieSameSite,
		},
		clock:  c,
		log:    log,
		pages:  pages,
		router: mux.NewRouter(),
	}
	s.routes()

	return s, nil
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	r := s.router
	r.StrictSlash(true)

	r.PathPrefix("/static/").Handler(staticHandler())

	// Auth
	r.HandleFunc("/", s.withSession(s.handleLoginPage)).Methods(http.MethodGet)
	r.HandleFunc("/", s.withSession(s.handleLogin)).Methods(http.MethodPost)
	r.HandleFunc("/login", s.withSession(s.handleLoginPage)).Methods(http.MethodGet)
	r.HandleFunc("/login", s.withSession(s.handleLogin)).Methods(http.MethodPost)
	r.HandleFunc("/dev-bypass", s.withSession(s.handleDevBypass)).Methods(http.MethodGet)
	r.HandleFunc("/logout", s.withSession(s.handleLogout)).Methods(http.MethodGet)

	// Admin
	admin := r.PathPrefix("/admin/users").Subrouter()
	admin.HandleFunc("", s.admin(s.handleUsers)).Methods(http.MethodGet)
	admin.HandleFunc("/add", s.admin(s.handleAddUser)).Methods(http.MethodPost)
	admin.HandleFunc("/edit", s.admin(s.handleEditUser)).Methods(http.MethodPost)
	admin.HandleFunc("/delete", s.admin(s.handleDeleteUser)).Methods(http.MethodPost)
	admin.HandleFunc("/reset-password", s.admin(s.handleResetPassword)).Methods(http.MethodPost)

	// Tournament
	t := r.PathPrefix("/tournament").Subrouter()
	t.HandleFunc("/", s.loggedIn(s.handleTournaments)).Methods(http.MethodGet)
	t.HandleFunc("/select", s.loggedIn(s.handleSelectTournament)).Methods(http.MethodPost)
	t.HandleFunc("/create", s.loggedIn(s.handleCreateTournament)).Methods(http.MethodPost)
	t.HandleFunc("/players", s.wizard(stepPlayers, s.handlePlayers)).Methods(http.MethodGet)
	t.HandleFunc("/players/add", s.wizard(stepPlayers, s.handleAddPlayer)).Methods(http.MethodPost)
	t.HandleFunc("/players/select", s.wizard(stepPlayers, s.handleSelectPlayers)).Methods(http.MethodPost)

	// Game configuration
	g := r.PathPrefix("/game").Subrouter()
	g.HandleFunc("/mode", s.wizard(stepMode, s.handleMode)).Methods(http.MethodGet)
	g.HandleFunc("/mode/save", s.wizard(stepMode, s.handleSaveMode)).Methods(http.MethodPost)
	g.HandleFunc("/sequence", s.wizard(stepSequence, s.handleSequence)).Methods(http.MethodGet)
	g.HandleFunc("/sequence/save", s.wizard(stepSequence, s.handleSaveSequence)).Methods(http.MethodPost)
	g.HandleFunc("/order", s.wizard(stepOrder, s.handleOrder)).Methods(http.MethodGet)
	g.HandleFunc("/order/save", s.wizard(stepOrder, s.handleSaveOrder)).Methods(http.MethodPost)
	g.HandleFunc("/dealer", s.wizard(stepDealer, s.handleDealer)).Methods(http.MethodGet)
	g.HandleFunc("/dealer/save", s.wizard(stepDealer, s.handleSaveDealer)).Methods(http.MethodPost)
	g.HandleFunc("/summary", s.wizard(stepSummary, s.handleSummary)).Methods(http.MethodGet)
	g.HandleFunc("/start", s.wizard(stepSummary, s.handleStartGame)).Methods(http.MethodPost)

	// Play
	g.HandleFunc("/hand", s.wizard(stepPlay, s.handleHand)).Methods(http.MethodGet)
	g.HandleFunc("/hand/bid", s.jsonGame(s.handleBid)).Methods(http.MethodPost)
	g.HandleFunc("/hand/tricks", s.jsonGame(s.handleTricks)).Methods(http.MethodPost)
	g.HandleFunc("/hand/calculate", s.wizard(stepPlay, s.handleCalculate)).Methods(http.MethodPost)
	g.HandleFunc("/scores/{cards:[0-9]+}", s.wizard(stepPlay, s.handleScores)).Methods(http.MethodGet)
	g.HandleFunc("/final-scores", s.wizard(stepPlay, s.handleFinalScores)).Methods(http.MethodGet)
	g.HandleFunc("/new-game", s.loggedIn(s.handleNewGame)).Methods(http.MethodPost)
	g.HandleFunc("/new-game-same-config", s.loggedIn(s.handleNewGameSameConfig)).Methods(http.MethodPost)
}

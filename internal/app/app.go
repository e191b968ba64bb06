// Package app wires the configuration into the repositories, services and
// web server shared by the server and Android entry points.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/ohhell/internal/announcer"
	"github.com/KirkDiggler/ohhell/internal/announcer/discord"
	"github.com/KirkDiggler/ohhell/internal/common/clock"
	"github.com/KirkDiggler/ohhell/internal/config"
	"github.com/KirkDiggler/ohhell/internal/dice"
	"github.com/KirkDiggler/ohhell/internal/handlers/web"
	"github.com/KirkDiggler/ohhell/internal/logger"
	scoresheetRepo "github.com/KirkDiggler/ohhell/internal/repositories/scoresheet"
	sessionRepo "github.com/KirkDiggler/ohhell/internal/repositories/session"
	tournamentRepo "github.com/KirkDiggler/ohhell/internal/repositories/tournament"
	userRepo "github.com/KirkDiggler/ohhell/internal/repositories/user"
	"github.com/KirkDiggler/ohhell/internal/services/auth"
	"github.com/KirkDiggler/ohhell/internal/services/game"
	"github.com/KirkDiggler/ohhell/internal/services/messaging"
	"github.com/KirkDiggler/ohhell/internal/services/tournament"
	"github.com/KirkDiggler/ohhell/internal/services/user"
	"github.com/KirkDiggler/ohhell/internal/sheets"
)

// UsersSpreadsheetTitle is the spreadsheet the sqlite backend keeps users in
// when no USERS_SHEET_ID is configured
const UsersSpreadsheetTitle = "Users"

const shutdownTimeout = 10 * time.Second

// App is the assembled application
type App struct {
	Handler http.Handler

	log     *slog.Logger
	closers []func() error
}

// New builds the application from the configuration
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if log == nil {
		log = logger.Discard()
	}

	a := &App{log: log}

	workbook, usersSheetID, err := a.workbook(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	sessions, err := a.sessionStore(cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	handler, err := a.wire(cfg, workbook, usersSheetID, sessions)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Handler = handler

	return a, nil
}

// workbook opens the spreadsheet backend. A Google backend that cannot be
// reached still starts; every spreadsheet call then fails as unavailable.
func (a *App) workbook(ctx context.Context, cfg *config.Config) (sheets.Client, string, error) {
	switch cfg.WorkbookBackend {
	case config.BackendSQLite:
		db, err := sheets.NewSQLite(&sheets.SQLiteConfig{Path: cfg.SQLitePath})
		if err != nil {
			return nil, "", err
		}
		a.closers = append(a.closers, db.Close)

		usersSheetID := cfg.UsersSheetID
		if usersSheetID == "" {
			usersSheetID, err = localUsersSpreadsheet(ctx, db)
			if err != nil {
				return nil, "", err
			}
		}
		return db, usersSheetID, nil

	default:
		client, err := sheets.NewGoogle(ctx, &sheets.GoogleConfig{CredentialsFile: cfg.ServiceAccountFile})
		if err != nil {
			a.log.Error("Google Sheets unavailable, continuing without spreadsheets", logger.Err(err))
			return sheets.Unavailable(err), cfg.UsersSheetID, nil
		}
		return client, cfg.UsersSheetID, nil
	}
}

func localUsersSpreadsheet(ctx context.Context, client sheets.Client) (string, error) {
	spreadsheets, err := client.ListSpreadsheets(ctx)
	if err != nil {
		return "", fmt.Errorf("list spreadsheets: %w", err)
	}
	for _, s := range spreadsheets {
		if s.Title == UsersSpreadsheetTitle {
			return s.ID, nil
		}
	}

	created, err := client.CreateSpreadsheet(ctx, UsersSpreadsheetTitle)
	if err != nil {
		return "", fmt.Errorf("create users spreadsheet: %w", err)
	}
	return created.ID, nil
}

// sessionStore uses Redis when configured, else keeps sessions in process
func (a *App) sessionStore(cfg *config.Config) (sessionRepo.Repository, error) {
	if cfg.RedisAddr == "" {
		repo, err := sessionRepo.NewMemory(&sessionRepo.Config{TTL: cfg.SessionTTL})
		if err != nil {
			return nil, err
		}
		return repo, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	a.closers = append(a.closers, client.Close)

	repo, err := sessionRepo.NewRedis(&sessionRepo.Config{
		RedisClient: client,
		TTL:         cfg.SessionTTL,
	})
	if err != nil {
		return nil, err
	}
	return repo, nil
}

func (a *App) announcer(cfg *config.Config) announcer.Announcer {
	if !cfg.DiscordEnabled() {
		return announcer.Noop()
	}

	d, err := discord.New(&discord.Config{
		Token:     cfg.DiscordToken,
		ChannelID: cfg.DiscordChannelID,
		Logger:    logger.New("discord"),
	})
	if err != nil {
		a.log.Warn("Discord announcements disabled", logger.Err(err))
		return announcer.Noop()
	}
	return d
}

func (a *App) wire(cfg *config.Config, workbook sheets.Client, usersSheetID string, sessions sessionRepo.Repository) (http.Handler, error) {
	users, err := userRepo.NewSheets(&userRepo.Config{Client: workbook, SpreadsheetID: usersSheetID})
	if err != nil {
		return nil, err
	}

	tournaments, err := tournamentRepo.NewSheets(&tournamentRepo.Config{
		Client: workbook,
		Logger: logger.New("tournaments"),
	})
	if err != nil {
		return nil, err
	}

	scoresheets, err := scoresheetRepo.NewSheets(&scoresheetRepo.Config{Client: workbook})
	if err != nil {
		return nil, err
	}

	authService, err := auth.New(&auth.Config{
		AdminUsername: cfg.AdminUsername,
		AdminPassword: cfg.AdminPassword,
		DevMode:       cfg.IsDevelopment(),
		UserRepo:      users,
		Logger:        logger.New("auth"),
	})
	if err != nil {
		return nil, err
	}

	userService, err := user.New(&user.Config{
		UserRepo:    users,
		SessionRepo: sessions,
		Logger:      logger.New("users"),
	})
	if err != nil {
		return nil, err
	}

	tournamentService, err := tournament.New(&tournament.Config{
		TournamentRepo: tournaments,
		UsersSheetID:   usersSheetID,
	})
	if err != nil {
		return nil, err
	}

	messagingService, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		return nil, err
	}

	gameService, err := game.New(&game.Config{
		ScoresheetRepo:   scoresheets,
		MessagingService: messagingService,
		DiceRoller:       dice.New(&dice.Config{}),
		Clock:            clock.New(),
		Announcer:        a.announcer(cfg),
		Logger:           logger.New("game"),
	})
	if err != nil {
		return nil, err
	}

	server, err := web.New(&web.Config{
		AuthService:       authService,
		UserService:       userService,
		TournamentService: tournamentService,
		GameService:       gameService,
		SessionRepo:       sessions,
		SecretKey:         cfg.SecretKey,
		SessionTTL:        cfg.SessionTTL,
		CookieSecure:      cfg.CookieSecure,
		CookieHTTPOnly:    cfg.CookieHTTPOnly,
		CookieSameSite:    cfg.SameSite(),
		Logger:            logger.New("web"),
	})
	if err != nil {
		return nil, err
	}
	return server, nil
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
func (a *App) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           a.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// Close releases the workbook and session store connections
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

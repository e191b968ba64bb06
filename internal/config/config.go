package config

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultSecretKey is the development secret; production refuses to start with it
const DefaultSecretKey = "dev-secret-key-change-me"

// Workbook backends
const (
	BackendGoogle = "google"
	BackendSQLite = "sqlite"
)

// Config holds the application configuration read from the environment
type Config struct {
	// SecretKey signs the session cookie
	SecretKey string `env:"SECRET_KEY" envDefault:"dev-secret-key-change-me"`

	// Environment is a free-form label such as development or production
	Environment string `env:"APP_ENV" envDefault:"development"`

	// DevMode enables the login bypass and relaxes validation
	DevMode bool `env:"DEV_MODE" envDefault:"false"`

	// AdminUsername and AdminPassword are the built-in admin credentials
	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"admin"`

	// ServiceAccountFile is the Google service account JSON key
	ServiceAccountFile string `env:"GOOGLE_SERVICE_ACCOUNT_FILE" envDefault:"credentials.json"`

	// UsersSheetID is the spreadsheet holding the users worksheet
	UsersSheetID string `env:"USERS_SHEET_ID"`

	// Session cookie flags
	CookieHTTPOnly bool          `env:"SESSION_COOKIE_HTTPONLY" envDefault:"true"`
	CookieSameSite string        `env:"SESSION_COOKIE_SAMESITE" envDefault:"Lax"`
	CookieSecure   bool          `env:"SESSION_COOKIE_SECURE" envDefault:"false"`
	SessionTTL     time.Duration `env:"SESSION_TTL" envDefault:"720h"`

	// ListenAddr is the HTTP listen address
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":5000"`

	// RedisAddr enables the Redis session store when set
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	// WorkbookBackend selects google or sqlite for spreadsheet storage
	WorkbookBackend string `env:"WORKBOOK_BACKEND" envDefault:"google"`
	SQLitePath      string `env:"WORKBOOK_SQLITE_PATH" envDefault:"ohhell.db"`

	// Discord announcements of finished games, optional
	DiscordToken     string `env:"DISCORD_TOKEN"`
	DiscordChannelID string `env:"DISCORD_CHANNEL_ID"`
}

// Load reads an optional .env file and parses the environment
func Load(files ...string) (*Config, error) {
	if err := loadEnvFiles(files...); err != nil {
		return nil, err
	}
	return Parse()
}

// loadEnvFiles sets variables from env files without overriding the
// environment. Missing files are ignored.
func loadEnvFiles(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

// Parse reads the configuration from the current environment
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.WorkbookBackend = strings.ToLower(strings.TrimSpace(cfg.WorkbookBackend))
	return cfg, nil
}

// IsDevelopment reports whether dev mode is on
func (c *Config) IsDevelopment() bool {
	return c.DevMode
}

// Validate checks the values production cannot run without
func (c *Config) Validate() error {
	switch c.WorkbookBackend {
	case BackendGoogle, BackendSQLite:
	default:
		return fmt.Errorf("WORKBOOK_BACKEND must be %q or %q, got %q", BackendGoogle, BackendSQLite, c.WorkbookBackend)
	}

	if c.IsDevelopment() {
		return nil
	}

	if c.WorkbookBackend == BackendGoogle {
		if _, err := os.Stat(c.ServiceAccountFile); err != nil {
			return fmt.Errorf("google service account file not found: %s", c.ServiceAccountFile)
		}
		if c.UsersSheetID == "" {
			return errors.New("USERS_SHEET_ID environment variable is required in production")
		}
	}

	if c.SecretKey == DefaultSecretKey {
		return errors.New("SECRET_KEY must be changed in production")
	}
	return nil
}

// SameSite maps the configured cookie SameSite value
func (c *Config) SameSite() http.SameSite {
	switch strings.ToLower(c.CookieSameSite) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	case "lax":
		return http.SameSiteLaxMode
	}
	return http.SameSiteDefaultMode
}

// DiscordEnabled reports whether finished games should be announced
func (c *Config) DiscordEnabled() bool {
	return c.DiscordToken != "" && c.DiscordChannelID != ""
}

package config

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, DefaultSecretKey, cfg.SecretKey)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, "admin", cfg.AdminPassword)
	assert.Equal(t, "credentials.json", cfg.ServiceAccountFile)
	assert.False(t, cfg.DevMode)
	assert.True(t, cfg.CookieHTTPOnly)
	assert.False(t, cfg.CookieSecure)
	assert.Equal(t, http.SameSiteLaxMode, cfg.SameSite())
	assert.Equal(t, 720*time.Hour, cfg.SessionTTL)
	assert.Equal(t, BackendGoogle, cfg.WorkbookBackend)
	assert.False(t, cfg.DiscordEnabled())
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("DEV_MODE", "true")
	t.Setenv("SESSION_COOKIE_SAMESITE", "Strict")
	t.Setenv("WORKBOOK_BACKEND", " SQLite ")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DISCORD_CHANNEL_ID", "chan")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, http.SameSiteStrictMode, cfg.SameSite())
	assert.Equal(t, BackendSQLite, cfg.WorkbookBackend)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.True(t, cfg.DiscordEnabled())
}

func TestParseRejectsBadBool(t *testing.T) {
	t.Setenv("DEV_MODE", "maybe")
	_, err := Parse()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	creds := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(creds, []byte("{}"), 0o600))

	base := func() *Config {
		return &Config{
			SecretKey:          "s3cret",
			ServiceAccountFile: creds,
			UsersSheetID:       "users-sheet",
			WorkbookBackend:    BackendGoogle,
		}
	}

	assert.NoError(t, base().Validate())

	cfg := base()
	cfg.ServiceAccountFile = filepath.Join(t.TempDir(), "missing.json")
	assert.ErrorContains(t, cfg.Validate(), "service account file not found")

	cfg = base()
	cfg.UsersSheetID = ""
	assert.ErrorContains(t, cfg.Validate(), "USERS_SHEET_ID")

	cfg = base()
	cfg.SecretKey = DefaultSecretKey
	assert.ErrorContains(t, cfg.Validate(), "SECRET_KEY")

	cfg = base()
	cfg.SecretKey = DefaultSecretKey
	cfg.DevMode = true
	assert.NoError(t, cfg.Validate(), "dev mode skips production checks")

	cfg = &Config{SecretKey: "s3cret", WorkbookBackend: BackendSQLite}
	assert.NoError(t, cfg.Validate(), "sqlite needs no google credentials")

	cfg = base()
	cfg.WorkbookBackend = "excel"
	assert.Error(t, cfg.Validate())
}

func TestLoadReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ADMIN_USERNAME=boss\n"), 0o600))
	t.Setenv("ADMIN_USERNAME", "")
	os.Unsetenv("ADMIN_USERNAME")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "boss", cfg.AdminUsername)
	os.Unsetenv("ADMIN_USERNAME")
}

func TestLoadWithoutEnvFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	assert.NoError(t, err)
}

func TestApplyAndroidDefaults(t *testing.T) {
	for key := range androidDefaults {
		t.Setenv(key, "")
	}
	t.Setenv("ADMIN_USERNAME", "owner")

	applied, err := ApplyAndroidDefaults()
	require.NoError(t, err)
	assert.NotContains(t, applied, "ADMIN_USERNAME")
	assert.Contains(t, applied, "LISTEN_ADDR")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "owner", cfg.AdminUsername)
	assert.Equal(t, AndroidListenAddr, cfg.ListenAddr)
	assert.NotEqual(t, DefaultSecretKey, cfg.SecretKey)
}

func TestLoadAndroidPrefersEnvFile(t *testing.T) {
	for key := range androidDefaults {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ADMIN_PASSWORD=from-file\n"), 0o600))

	cfg, applied, err := LoadAndroid(path)
	require.NoError(t, err)
	assert.NotContains(t, applied, "ADMIN_PASSWORD")
	assert.Equal(t, "from-file", cfg.AdminPassword)
	assert.Equal(t, AndroidListenAddr, cfg.ListenAddr)
	assert.Equal(t, "production", cfg.Environment)
}

package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/ohhell/internal/config"
	"github.com/KirkDiggler/ohhell/internal/sheets"
)

func sqliteConfig(t *testing.T) *config.Config {
	return &config.Config{
		SecretKey:       "test-secret",
		AdminUsername:   "admin",
		AdminPassword:   "secret",
		SessionTTL:      time.Hour,
		CookieSameSite:  "Lax",
		WorkbookBackend: config.BackendSQLite,
		SQLitePath:      filepath.Join(t.TempDir(), "ohhell.db"),
	}
}

func TestNewServesLoginPage(t *testing.T) {
	a, err := New(context.Background(), sqliteConfig(t), nil)
	require.NoError(t, err)
	defer a.Close()

	ts := httptest.NewServer(a.Handler)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/login")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestNewReusesLocalUsersSpreadsheet(t *testing.T) {
	cfg := sqliteConfig(t)

	a, err := New(context.Background(), cfg, nil)
	require.NoError(t, err)
	require.NoError(t, a.Close())

	a, err = New(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer a.Close()

	db, err := sheets.NewSQLite(&sheets.SQLiteConfig{Path: cfg.SQLitePath})
	require.NoError(t, err)
	defer db.Close()

	spreadsheets, err := db.ListSpreadsheets(context.Background())
	require.NoError(t, err)
	users := 0
	for _, s := range spreadsheets {
		if s.Title == UsersSpreadsheetTitle {
			users++
		}
	}
	assert.Equal(t, 1, users)
}

func TestNewUsesRedisSessions(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := sqliteConfig(t)
	cfg.RedisAddr = mr.Addr()

	a, err := New(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer a.Close()

	ts := httptest.NewServer(a.Handler)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/login")
	require.NoError(t, err)
	resp.Body.Close()

	assert.NotEmpty(t, mr.Keys())
}

func TestNewFailsWithoutRedis(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.RedisAddr = "127.0.0.1:1"

	_, err := New(context.Background(), cfg, nil)
	assert.Error(t, err)
}

func TestNewKeepsServingWithoutGoogleCredentials(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.WorkbookBackend = config.BackendGoogle
	cfg.ServiceAccountFile = filepath.Join(t.TempDir(), "missing.json")

	a, err := New(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer a.Close()

	ts := httptest.NewServer(a.Handler)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/login")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	a, err := New(context.Background(), sqliteConfig(t), nil)
	require.NoError(t, err)
	defer a.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- a.ListenAndServe(ctx, "127.0.0.1:0")
	}()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

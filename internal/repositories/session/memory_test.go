package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/ohhell/internal/models"
)

// steppingClock is advanced by hand
type steppingClock struct {
	now time.Time
}

func (c *steppingClock) Now() time.Time {
	return c.now
}

func newMemory(t *testing.T, c *steppingClock) *memoryRepository {
	repo, err := NewMemory(&Config{TTL: time.Hour, Clock: c})
	require.NoError(t, err)
	return repo
}

func TestNewMemoryValidatesConfig(t *testing.T) {
	_, err := NewMemory(nil)
	assert.Error(t, err)

	_, err = NewMemory(&Config{})
	assert.Error(t, err)
}

func TestMemoryCreateGetSave(t *testing.T) {
	ctx := context.Background()
	c := &steppingClock{now: time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)}
	repo := newMemory(t, c)

	created, err := repo.CreateSession(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := repo.GetSession(ctx, &GetSessionInput{SessionID: created.ID})
	require.NoError(t, err)
	assert.False(t, got.LoggedIn())

	got.Username = "alice"
	got.SelectedPlayers = []string{"Alice", "Bob"}

	// not saved yet, so the stored copy is untouched
	again, err := repo.GetSession(ctx, &GetSessionInput{SessionID: created.ID})
	require.NoError(t, err)
	assert.Empty(t, again.Username)

	require.NoError(t, repo.SaveSession(ctx, &SaveSessionInput{Session: got}))
	again, err = repo.GetSession(ctx, &GetSessionInput{SessionID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, "alice", again.Username)
	assert.Equal(t, []string{"Alice", "Bob"}, again.SelectedPlayers)
}

func TestMemorySessionExpires(t *testing.T) {
	ctx := context.Background()
	c := &steppingClock{now: time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)}
	repo := newMemory(t, c)

	created, err := repo.CreateSession(ctx)
	require.NoError(t, err)

	c.now = c.now.Add(59 * time.Minute)
	_, err = repo.GetSession(ctx, &GetSessionInput{SessionID: created.ID})
	require.NoError(t, err)

	c.now = c.now.Add(2 * time.Minute)
	_, err = repo.GetSession(ctx, &GetSessionInput{SessionID: created.ID})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryDelete(t *testing.T) {
	ctx := context.Background()
	c := &steppingClock{now: time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)}
	repo := newMemory(t, c)

	for _, s := range []*models.Session{
		{ID: "a", Username: "carol"},
		{ID: "b", Username: "carol"},
		{ID: "c", Username: "dave"},
	} {
		require.NoError(t, repo.SaveSession(ctx, &SaveSessionInput{Session: s}))
	}

	require.NoError(t, repo.DeleteUserSessions(ctx, &DeleteUserSessionsInput{Username: "carol"}))
	_, err := repo.GetSession(ctx, &GetSessionInput{SessionID: "a"})
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = repo.GetSession(ctx, &GetSessionInput{SessionID: "c"})
	assert.NoError(t, err)

	require.NoError(t, repo.DeleteSession(ctx, &DeleteSessionInput{SessionID: "c"}))
	assert.ErrorIs(t, repo.DeleteSession(ctx, &DeleteSessionInput{SessionID: "c"}), ErrSessionNotFound)
}

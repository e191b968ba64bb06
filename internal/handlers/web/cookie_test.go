package web

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/ohhell/internal/common/clock"
)

func tokenServer(key string, now time.Time) *Server {
	return &Server{
		cookie: cookieConfig{key: []byte(key), ttl: time.Hour},
		clock:  clock.Fixed(now),
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	now := time.Date(2025, 3, 14, 20, 15, 0, 0, time.UTC)
	s := tokenServer("secret", now)

	token, err := s.signSession("session-1")
	require.NoError(t, err)

	id, err := s.parseSession(token)
	require.NoError(t, err)
	assert.Equal(t, "session-1", id)
}

func TestSessionTokenRejectsOtherKey(t *testing.T) {
	now := time.Date(2025, 3, 14, 20, 15, 0, 0, time.UTC)

	token, err := tokenServer("secret", now).signSession("session-1")
	require.NoError(t, err)

	_, err = tokenServer("other", now).parseSession(token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestSessionTokenExpires(t *testing.T) {
	now := time.Date(2025, 3, 14, 20, 15, 0, 0, time.UTC)

	token, err := tokenServer("secret", now).signSession("session-1")
	require.NoError(t, err)

	_, err = tokenServer("secret", now.Add(2*time.Hour)).parseSession(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestSessionTokenRejectsUnsignedToken(t *testing.T) {
	now := time.Date(2025, 3, 14, 20, 15, 0, 0, time.UTC)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "session-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = tokenServer("secret", now).parseSession(unsigned)
	assert.Error(t, err)
}

func TestParseSequence(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, parseSequence("[1, 2, 3]"))
	assert.Equal(t, []int{3, 2}, parseSequence(`["3", 2]`))
	assert.Nil(t, parseSequence("1,2"))
	assert.Nil(t, parseSequence(`["x"]`))
	assert.Empty(t, parseSequence("[]"))
}

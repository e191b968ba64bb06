package web

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const sessionCookieName = "ohhell_session"

type cookieConfig struct {
	key      []byte
	ttl      time.Duration
	secure   bool
	httpOnly bool
	sameSite http.SameSite
}

// sessionClaims carries the session ID in the subject
type sessionClaims struct {
	jwt.RegisteredClaims
}

func (s *Server) signSession(sessionID string) (string, error) {
	now := s.clock.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cookie.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.cookie.key)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

func (s *Server) parseSession(token string) (string, error) {
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return s.cookie.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.clock.Now))
	if err != nil {
		return "", fmt.Errorf("parse session token: %w", err)
	}

	if claims.Subject == "" {
		return "", errors.New("session token has no subject")
	}
	return claims.Subject, nil
}

// setSessionCookie issues a fresh token so the cookie lives as long as the
// stored session
func (s *Server) setSessionCookie(w http.ResponseWriter, sessionID string) error {
	token, err := s.signSession(sessionID)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.cookie.ttl.Seconds()),
		Secure:   s.cookie.secure,
		HttpOnly: s.cookie.httpOnly,
		SameSite: s.cookie.sameSite,
	})
	return nil
}

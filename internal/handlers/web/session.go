package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/KirkDiggler/ohhell/internal/logger"
	"github.com/KirkDiggler/ohhell/internal/models"
	sessionRepo "github.com/KirkDiggler/ohhell/internal/repositories/session"
)

// handlerFunc is a request handler working on the browser's session
type handlerFunc func(w http.ResponseWriter, r *http.Request, session *models.Session)

// withSession loads the session named by the cookie, or starts a new one
func (s *Server) withSession(next handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := s.loadSession(r)
		if err != nil {
			s.log.Error("failed to load session", logger.Err(err))
			http.Error(w, "Session store unavailable", http.StatusServiceUnavailable)
			return
		}
		next(w, r, session)
	}
}

func (s *Server) loadSession(r *http.Request) (*models.Session, error) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		sessionID, err := s.parseSession(cookie.Value)
		if err == nil {
			session, err := s.sessions.GetSession(r.Context(), &sessionRepo.GetSessionInput{SessionID: sessionID})
			if err == nil {
				return session, nil
			}
			if !errors.Is(err, sessionRepo.ErrSessionNotFound) {
				return nil, err
			}
		} else {
			s.log.Debug("ignoring session cookie", logger.Err(err))
		}
	}

	session, err := s.sessions.CreateSession(r.Context())
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

// saveSession persists the session and refreshes the cookie. It must run
// before anything is written to w.
func (s *Server) saveSession(w http.ResponseWriter, r *http.Request, session *models.Session) bool {
	if err := s.sessions.SaveSession(r.Context(), &sessionRepo.SaveSessionInput{Session: session}); err != nil {
		s.log.Error("failed to save session", logger.Err(err), "session", session.ID)
		http.Error(w, "Session store unavailable", http.StatusServiceUnavailable)
		return false
	}

	if err := s.setSessionCookie(w, session.ID); err != nil {
		s.log.Error("failed to set session cookie", logger.Err(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return false
	}
	return true
}

// redirect saves the session then sends the browser to url
func (s *Server) redirect(w http.ResponseWriter, r *http.Request, session *models.Session, url string) {
	if !s.saveSession(w, r, session) {
		return
	}

	code := http.StatusFound
	if r.Method == http.MethodPost {
		code = http.StatusSeeOther
	}
	http.Redirect(w, r, url, code)
}

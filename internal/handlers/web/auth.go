package web

import (
	"net/http"

	"github.com/KirkDiggler/ohhell/internal/models"
	"github.com/KirkDiggler/ohhell/internal/services/auth"
)

type loginData struct {
	Username  string
	CanBypass bool
}

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request, session *models.Session) {
	if session.LoggedIn() {
		s.redirect(w, r, session, "/tournament/")
		return
	}

	s.render(w, r, session, "login.html", "Login", loginData{
		CanBypass: s.auth.CanBypass(),
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request, session *models.Session) {
	out, err := s.auth.Authenticate(r.Context(), &auth.AuthenticateInput{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
	})
	if err != nil {
		s.fail(w, r, session, err, "Login failed", "/login")
		return
	}

	s.login(session, out)
	session.AddFlash(models.FlashSuccess, "Login successful!")
	if out.IsAdmin {
		s.redirect(w, r, session, "/admin/users")
		return
	}
	s.redirect(w, r, session, "/tournament/")
}

func (s *Server) handleDevBypass(w http.ResponseWriter, r *http.Request, session *models.Session) {
	out, err := s.auth.DevBypass(r.Context())
	if err != nil {
		s.fail(w, r, session, err, "Login failed", "/login")
		return
	}

	s.login(session, out)
	session.AddFlash(models.FlashWarning, "Bypassed authentication (DEV MODE)")
	s.redirect(w, r, session, "/tournament/")
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request, session *models.Session) {
	session.Logout()
	session.AddFlash(models.FlashInfo, "Logged out successfully")
	s.redirect(w, r, session, "/login")
}

// login attaches an account to the session. Switching accounts drops the
// previous account's game.
func (s *Server) login(session *models.Session, out *auth.AuthenticateOutput) {
	if session.Username != "" && session.Username != out.Username {
		session.Logout()
	}
	session.Username = out.Username
	session.IsAdmin = out.IsAdmin
}

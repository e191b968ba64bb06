package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/KirkDiggler/ohhell/internal/models"
	"github.com/KirkDiggler/ohhell/internal/services/user"
)

const usersPage = "/admin/users"

type usersData struct {
	Users []*models.User
}

func (s *Server) handleUsers(w http.ResponseWriter, r *http.Request, session *models.Session) {
	users, err := s.users.ListUsers(r.Context())
	if err != nil {
		session.AddFlash(models.FlashError, s.userMessage(err, "Error loading users"))
	}

	s.render(w, r, session, "users.html", "Users", usersData{Users: users})
}

func (s *Server) handleAddUser(w http.ResponseWriter, r *http.Request, session *models.Session) {
	username := r.FormValue("username")
	err := s.users.AddUser(r.Context(), &user.AddUserInput{
		Username: username,
		Password: r.FormValue("password"),
	})

	switch {
	case err == nil:
		session.AddFlash(models.FlashSuccess, fmt.Sprintf("User %q added successfully", username))
	case errors.Is(err, user.ErrUserExists):
		session.AddFlash(models.FlashError, fmt.Sprintf("User %q already exists", username))
	default:
		session.AddFlash(models.FlashError, s.userMessage(err, "Error adding user"))
	}
	s.redirect(w, r, session, usersPage)
}

func (s *Server) handleEditUser(w http.ResponseWriter, r *http.Request, session *models.Session) {
	oldUsername := r.FormValue("old_username")
	newUsername := r.FormValue("new_username")
	err := s.users.EditUser(r.Context(), &user.EditUserInput{
		OldUsername: oldUsername,
		NewUsername: newUsername,
		NewPassword: r.FormValue("new_password"),
	})

	switch {
	case err == nil:
		session.AddFlash(models.FlashSuccess, "User updated successfully")
	case errors.Is(err, user.ErrUserNotFound):
		session.AddFlash(models.FlashError, fmt.Sprintf("User %q not found", oldUsername))
	case errors.Is(err, user.ErrUserExists):
		session.AddFlash(models.FlashError, fmt.Sprintf("User %q already exists", newUsername))
	default:
		session.AddFlash(models.FlashError, s.userMessage(err, "Error updating user"))
	}
	s.redirect(w, r, session, usersPage)
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request, session *models.Session) {
	username := r.FormValue("username")
	err := s.users.DeleteUser(r.Context(), &user.DeleteUserInput{Username: username})

	switch {
	case err == nil:
		session.AddFlash(models.FlashSuccess, fmt.Sprintf("User %q deleted successfully", username))
	case errors.Is(err, user.ErrUserNotFound):
		session.AddFlash(models.FlashError, fmt.Sprintf("User %q not found", username))
	default:
		session.AddFlash(models.FlashError, s.userMessage(err, "Error deleting user"))
	}
	s.redirect(w, r, session, usersPage)
}

func (s *Server) handleResetPassword(w http.ResponseWriter, r *http.Request, session *models.Session) {
	username := r.FormValue("username")
	err := s.users.ResetPassword(r.Context(), &user.ResetPasswordInput{Username: username})

	switch {
	case err == nil:
		session.AddFlash(models.FlashSuccess, fmt.Sprintf("Password reset for user %q", username))
	case errors.Is(err, user.ErrUserNotFound):
		session.AddFlash(models.FlashError, fmt.Sprintf("User %q not found", username))
	default:
		session.AddFlash(models.FlashError, s.userMessage(err, "Error resetting password"))
	}
	s.redirect(w, r, session, usersPage)
}

package session

import "github.com/KirkDiggler/ohhell/internal/models"

type GetSessionInput struct {
	SessionID string
}

type SaveSessionInput struct {
	Session *models.Session
}

type DeleteSessionInput struct {
	SessionID string
}

type DeleteUserSessionsInput struct {
	Username string
}

package user

import "github.com/KirkDiggler/ohhell/internal/models"

type GetUserInput struct {
	Username string
}

type AddUserInput struct {
	User *models.User
}

type UpdateUserInput struct {
	OldUsername string
	User        *models.User
}

type DeleteUserInput struct {
	Username string
}

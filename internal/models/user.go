package models

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt cost used when hashing passwords
var PasswordCost = bcrypt.DefaultCost

// User is an account allowed to log in
type User struct {
	// Username is the unique login name
	Username string

	// PasswordHash is the bcrypt hash of the password
	PasswordHash string
}

// SetPassword hashes and stores the given password
func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), PasswordCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies a password against the stored hash
func (u *User) CheckPassword(plain string) bool {
	if u.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plain)) == nil
}

// Tournament is a spreadsheet holding the players and games of a tournament
type Tournament struct {
	// ID is the spreadsheet ID
	ID string

	// Name is the spreadsheet title
	Name string
}

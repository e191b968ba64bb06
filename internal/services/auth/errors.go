package auth

// AuthError is a custom error type for login errors
type AuthError string

// Error implements the error interface
func (e AuthError) Error() string {
	return string(e)
}

const (
	ErrInvalidCredentials AuthError = "Invalid username or password"
	ErrBypassDisabled     AuthError = "Development bypass is not enabled"
	ErrNilConfig          AuthError = "config cannot be nil"
	ErrNilUserRepo        AuthError = "user repository cannot be nil"
)

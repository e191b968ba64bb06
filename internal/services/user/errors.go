package user

// UserError is a custom error type for user administration errors
type UserError string

// Error implements the error interface
func (e UserError) Error() string {
	return string(e)
}

const (
	ErrCredentialsRequired UserError = "Username and password are required"
	ErrUsernameRequired    UserError = "Username is required"
	ErrUserExists          UserError = "user already exists"
	ErrUserNotFound        UserError = "user not found"
	ErrNilConfig           UserError = "config cannot be nil"
	ErrNilUserRepo         UserError = "user repository cannot be nil"
	ErrNilSessionRepo      UserError = "session repository cannot be nil"
)

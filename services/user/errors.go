package user

import "errors"

// Domain errors mapped by handlers onto distinct HTTP statuses.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("user already exists with this email")
	ErrEmailNotVerified   = errors.New("email not verified; verify your email with OTP first")
	ErrNotFound           = errors.New("user not found")
	ErrNotAdmin           = errors.New("admin privileges required")
)

// ValidationError reports missing or malformed registration input.
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string {
	return e.Msg
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}

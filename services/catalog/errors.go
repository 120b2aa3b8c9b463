package catalog

import "errors"

// ErrNotFound reports a catalog record id that does not resolve.
var ErrNotFound = errors.New("record not found")

// ValidationError reports missing or malformed input.
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

package itinerary

import "errors"

// Domain errors mapped by handlers onto distinct HTTP statuses. An itinerary owned
// by someone else fails with ErrAccessDenied, never ErrNotFound.
var (
	ErrNotFound      = errors.New("itinerary not found")
	ErrItemNotFound  = errors.New("item not found")
	ErrAccessDenied  = errors.New("access denied")
	ErrDuplicateItem = errors.New("this item is already in the itinerary")
)

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

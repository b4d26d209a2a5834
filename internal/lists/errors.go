package lists

import "errors"

var (
	// ErrListNotFound is returned when no list has the requested id.
	ErrListNotFound = errors.New("list not found")

	// ErrTodoNotFound is returned when the list has no todo with the requested id.
	ErrTodoNotFound = errors.New("todo not found")
)

// ValidationError describes user input that was rejected.
// Message is safe to show to the user as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err is, or wraps, a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

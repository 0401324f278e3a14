package apperrors

import (
	"errors"
	"fmt"
)

// Error kinds surfaced to the UI. Callers match them with errors.Is.
var (
	// ErrInvalidArgument covers every rejected user input: bad course fields,
	// a missing title, an unusable file path.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAlreadyEnrolled is an invalid argument, so errors.Is matches both.
	ErrAlreadyEnrolled = fmt.Errorf("%w: already enrolled", ErrInvalidArgument)

	// ErrNotFound is returned when a course is not in the catalog.
	ErrNotFound = errors.New("not found")
)

// CustomError pairs an error kind with the message shown to the user.
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// InvalidArgument is shorthand for a CustomError of kind ErrInvalidArgument.
func InvalidArgument(message string) error {
	return NewCustomError(ErrInvalidArgument, message)
}

// NotFound is shorthand for a CustomError of kind ErrNotFound.
func NotFound(message string) error {
	return NewCustomError(ErrNotFound, message)
}

// Is returns whether err matches target or any of errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// Package apperror defines the application's error taxonomy.
//
// Every failure a service can report falls into one of four categories,
// each represented by a sentinel error. Handlers translate the category to
// an HTTP status; services and repositories never see a status code.
package apperror

import "errors"

var (
	// ErrMissingField: the caller omitted a required input.
	ErrMissingField = errors.New("missing field")
	// ErrConflict: a uniqueness constraint was violated (duplicate username).
	ErrConflict = errors.New("conflict")
	// ErrInvalidCredentials: login matched no (username, digest) pair.
	// Deliberately one error for both "no such user" and "wrong password".
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotFound: the target row does not exist.
	ErrNotFound = errors.New("not found")
)

// AppError pairs a sentinel (for errors.Is checks) with the human-readable
// message that ends up in the response body.
type AppError struct {
	Err     error  // sentinel category
	Message string // human-readable error message
	Field   string // optional: field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// MissingField reports a required input that was absent or empty.
func MissingField(field, message string) *AppError {
	return &AppError{
		Err:     ErrMissingField,
		Message: message,
		Field:   field,
	}
}

// Conflict reports a uniqueness violation.
func Conflict(message string) *AppError {
	return &AppError{
		Err:     ErrConflict,
		Message: message,
	}
}

// InvalidCredentials reports a failed login. The message never distinguishes
// an unknown username from a wrong password.
func InvalidCredentials() *AppError {
	return &AppError{
		Err:     ErrInvalidCredentials,
		Message: "Invalid username or password",
	}
}

// NotFound reports that no row matched. The message deliberately omits the
// requested id — "Contact not found" is the full client-facing answer.
func NotFound(message string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: message,
	}
}

// Package error defines domain-specific errors for the payment system.
package error

import "errors"

// User domain errors.
var (
	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when registering with a taken email.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrMissingUserName is returned when a user name part is empty.
	ErrMissingUserName = errors.New("first and last name are required")

	// ErrMissingEmail is returned when no email address is provided.
	ErrMissingEmail = errors.New("email is required")
)

// UserErrorCode defines error codes for user errors.
// Format: USR-XXYYYY where XX is category and YYYY is specific error.
type UserErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeUserNotFound       UserErrorCode = "USR-010001"
	ErrCodeEmailAlreadyExists UserErrorCode = "USR-010002"
	ErrCodeMissingUserName    UserErrorCode = "USR-010003"
	ErrCodeMissingEmail       UserErrorCode = "USR-010004"

	// Persistence errors (02XXXX)
	ErrCodeUserStoreFailure UserErrorCode = "USR-020001"
)

// UserError represents a user error with code and message.
type UserError struct {
	Code    UserErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *UserError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new UserError with the given code and message.
func NewUserError(code UserErrorCode, message string, err error) *UserError {
	return &UserError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Package error defines domain-specific errors for the payment system.
package error

import "errors"

// Payment domain errors.
var (
	// ErrPaymentNotFound is returned when a payment is not found in the system.
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrInvalidPaymentAmount is returned when the payment amount is not positive.
	ErrInvalidPaymentAmount = errors.New("payment amount must be greater than zero")

	// ErrMissingSenderAccount is returned when no sender account is provided.
	ErrMissingSenderAccount = errors.New("sender account is required")

	// ErrMissingDescription is returned when no payment description is provided.
	ErrMissingDescription = errors.New("payment description is required")

	// ErrUnknownStatus is returned when a status id is outside the lifecycle.
	ErrUnknownStatus = errors.New("unknown payment status")

	// ErrInvalidStatusTransition is returned when the requested status change
	// is not a legal lifecycle transition.
	ErrInvalidStatusTransition = errors.New("illegal payment status transition")
)

// PaymentErrorCode defines error codes for payment errors.
// Format: PAY-XXYYYY where XX is category and YYYY is specific error.
type PaymentErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodePaymentNotFound         PaymentErrorCode = "PAY-010001"
	ErrCodeInvalidPaymentAmount    PaymentErrorCode = "PAY-010002"
	ErrCodeMissingSenderAccount    PaymentErrorCode = "PAY-010003"
	ErrCodeMissingDescription      PaymentErrorCode = "PAY-010004"
	ErrCodeUnknownStatus           PaymentErrorCode = "PAY-010005"
	ErrCodeInvalidStatusTransition PaymentErrorCode = "PAY-010006"

	// Persistence errors (02XXXX)
	ErrCodePaymentStoreFailure PaymentErrorCode = "PAY-020001"
)

// PaymentError represents a payment error with code and message.
type PaymentError struct {
	Code    PaymentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PaymentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PaymentError) Unwrap() error {
	return e.Err
}

// NewPaymentError creates a new PaymentError with the given code and message.
func NewPaymentError(code PaymentErrorCode, message string, err error) *PaymentError {
	return &PaymentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

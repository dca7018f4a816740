package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the caller may see a resource but not act on it.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidAmount indicates a negative (or otherwise unusable) currency amount.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrNoDenominations indicates a currency was used before any denomination was registered.
var ErrNoDenominations = errors.New("currency has no denominations")

// AppError carries an HTTP-ish status code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

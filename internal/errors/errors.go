package errors

import (
	"errors"
	"fmt"
)

// Domain-specific error types
var (
	// ErrValidation indicates client-supplied data failed required-field checks
	ErrValidation = errors.New("invalid submission")

	// ErrStorage indicates the persistence layer is unavailable or a write failed
	ErrStorage = errors.New("storage failure")

	// ErrTransport indicates outbound mail dispatch failed
	ErrTransport = errors.New("mail transport failure")

	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("resource not found")

	// ErrInternal indicates an internal server error
	ErrInternal = errors.New("internal server error")
)

// Error codes for API responses and log correlation
const (
	CodeInvalidInput   = "INVALID_INPUT"
	CodeStorageError   = "STORAGE_ERROR"
	CodeTransportError = "TRANSPORT_ERROR"
	CodeNotFound       = "NOT_FOUND"
	CodeInternalError  = "INTERNAL_ERROR"
)

// AppError represents an application error with context
type AppError struct {
	Err     error
	Message string
	Code    string
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError
func NewAppError(err error, message string, code string) *AppError {
	return &AppError{
		Err:     err,
		Message: message,
		Code:    code,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// IsValidation checks if the error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsStorage checks if the error is a storage error
func IsStorage(err error) bool {
	return errors.Is(err, ErrStorage)
}

// IsTransport checks if the error is a mail transport error
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

// GetErrorCode returns the appropriate error code for an error
func GetErrorCode(err error) string {
	switch {
	case IsValidation(err):
		return CodeInvalidInput
	case IsStorage(err):
		return CodeStorageError
	case IsTransport(err):
		return CodeTransportError
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	default:
		return CodeInternalError
	}
}

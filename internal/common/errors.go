package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnknownEra   = errors.New("unknown era")
	ErrUnknownField = errors.New("unknown field")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// NewUnknownEraError signals a contract violation: an era name or
// abbreviation that is not in the era table was passed to direct
// era-year conversion. Not reachable through date normalization,
// which falls through to pass-through on unparseable input.
func NewUnknownEraError(name string) error {
	return NewAppError("UNKNOWN_ERA", fmt.Sprintf("era %q is not in the era table", name), ErrUnknownEra)
}

// NewUnknownFieldError signals a contract violation: a field selector
// outside date/payee/amount/usage was passed to enrichment.
func NewUnknownFieldError(name string) error {
	return NewAppError("UNKNOWN_FIELD", fmt.Sprintf("field %q is not a receipt field", name), ErrUnknownField)
}

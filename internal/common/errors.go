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

// Batch-level failure codes. These abort an operation as a whole and
// carry no per-row detail.
const (
	CodeEmptySheet      = "EMPTY_SHEET"
	CodeUnknownImport   = "UNKNOWN_IMPORT_TYPE"
	CodePayrollExists   = "PAYROLL_EXISTS"
	CodeNoActiveMembers = "NO_ACTIVE_MEMBERS"
	CodeInvalidMonth    = "INVALID_MONTH"
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// HasCode reports whether err is (or wraps) an AppError with the given code.
func HasCode(err error, code string) bool {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}

package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Command errors
	ErrUsage          ErrorCode = "USAGE"
	ErrUnknownCommand ErrorCode = "UNKNOWN_COMMAND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Filesystem errors
	ErrNotFound   ErrorCode = "NOT_FOUND"
	ErrNotADir    ErrorCode = "NOT_A_DIRECTORY"
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileCreate ErrorCode = "FILE_CREATE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
	ErrIO         ErrorCode = "IO"

	// Archive errors
	ErrArchiveCreate ErrorCode = "ARCHIVE_CREATE"
	ErrArchiveRead   ErrorCode = "ARCHIVE_READ"
)

// ShellError represents a structured error with a code
type ShellError struct {
	Code    ErrorCode
	Message string
	Wrapped error
}

// Error implements the error interface
func (e *ShellError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ShellError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ShellError) Is(target error) bool {
	var targetErr *ShellError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ShellError with the given code and message
func New(code ErrorCode, message string) *ShellError {
	return &ShellError{Code: code, Message: message}
}

// Newf creates a new ShellError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ShellError {
	return &ShellError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error with a ShellError
func Wrap(err error, code ErrorCode, message string) *ShellError {
	if err == nil {
		return nil
	}
	return &ShellError{Code: code, Message: message, Wrapped: err}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ShellError {
	if err == nil {
		return nil
	}
	return &ShellError{Code: code, Message: fmt.Sprintf(format, args...), Wrapped: err}
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var shellErr *ShellError
	if errors.As(err, &shellErr) {
		return shellErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ShellError
func GetErrorCode(err error) ErrorCode {
	var shellErr *ShellError
	if errors.As(err, &shellErr) {
		return shellErr.Code
	}
	return ErrUnknown
}

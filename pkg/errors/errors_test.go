// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/dirsh/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "no such path",
			wantStr: "[NOT_FOUND] no such path",
		},
		{
			name:    "usage_error",
			code:    errors.ErrUsage,
			message: "missing argument",
			wantStr: "[USAGE] missing argument",
		},
		{
			name:    "archive_error",
			code:    errors.ErrArchiveCreate,
			message: "cannot create archive",
			wantStr: "[ARCHIVE_CREATE] cannot create archive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrIO, "cannot remove %q", "a/b")
	want := `[IO] cannot remove "a/b"`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWrap(t *testing.T) {
	base := stderrors.New("permission denied")
	err := errors.Wrap(base, errors.ErrFileAccess, "cannot open file")

	want := "[FILE_ACCESS] cannot open file: permission denied"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if !stderrors.Is(err, base) {
		t.Error("wrapped error should match errors.Is against the base error")
	}

	if errors.Wrap(nil, errors.ErrIO, "whatever") != nil {
		t.Error("Wrap(nil, ...) should return nil")
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrUnknownCommand, "no command %q", "frobnicate")

	if !errors.IsErrorCode(err, errors.ErrUnknownCommand) {
		t.Error("IsErrorCode should match the assigned code")
	}
	if errors.IsErrorCode(err, errors.ErrNotFound) {
		t.Error("IsErrorCode should not match a different code")
	}
	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrNotFound) {
		t.Error("IsErrorCode should not match plain errors")
	}
}

func TestGetErrorCode(t *testing.T) {
	err := errors.New(errors.ErrConfigParse, "bad toml")
	if got := errors.GetErrorCode(err); got != errors.ErrConfigParse {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrConfigParse)
	}

	wrapped := errors.Wrap(err, errors.ErrConfigLoad, "loading config")
	if got := errors.GetErrorCode(wrapped); got != errors.ErrConfigLoad {
		t.Errorf("GetErrorCode() = %v, want outer code %v", got, errors.ErrConfigLoad)
	}

	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(plain) = %v, want %v", got, errors.ErrUnknown)
	}
}

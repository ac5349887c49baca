// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, code matching and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/clitools/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "config_not_found",
			code:    errors.ErrConfigNotFound,
			message: "configuration file not found at: /tmp/config.toml",
			wantStr: "[CONFIG_NOT_FOUND] configuration file not found at: /tmp/config.toml",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "name cannot be empty",
			wantStr: "[INVALID_INPUT] name cannot be empty",
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

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrKeyNotFound, "key '%s' not found in configuration", "port")

	if err.Message != "key 'port' not found in configuration" {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrConfigFormat, "malformed configuration")

		if err.Code != errors.ErrConfigFormat {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrConfigFormat)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[CONFIG_FORMAT] malformed configuration: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
		if err := errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrTypeMismatch, "error 1")
	err2 := errors.New(errors.ErrTypeMismatch, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("matches_bare_code", func(t *testing.T) {
		if !stderrors.Is(err1, errors.ErrTypeMismatch) {
			t.Error("errors.Is() should match a bare ErrorCode")
		}
		if stderrors.Is(err1, errors.ErrKeyNotFound) {
			t.Error("errors.Is() should not match a different ErrorCode")
		}
	})

	t.Run("matches_through_fmt_wrapping", func(t *testing.T) {
		wrapped := stderrors.Join(stderrors.New("context"), err1)
		if !stderrors.Is(wrapped, errors.ErrTypeMismatch) {
			t.Error("errors.Is() should see through joined errors")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrConfigNotFound, "not found"),
			code:     errors.ErrConfigNotFound,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrConfigNotFound, "not found"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrFileAccess, "denied"),
			code:     errors.ErrFileAccess,
			expected: true,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrConfigNotFound,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrConfigNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCodeAndDetails(t *testing.T) {
	coded := errors.New(errors.ErrToolRegistration, "duplicate").WithDetail("tool", "greet")

	if got := errors.GetErrorCode(coded); got != errors.ErrToolRegistration {
		t.Errorf("GetErrorCode() = %v", got)
	}
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() on plain error = %v", got)
	}
	if got := errors.GetErrorCode(nil); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(nil) = %v", got)
	}
	if details := errors.GetErrorDetails(coded); details["tool"] != "greet" {
		t.Errorf("GetErrorDetails() = %v", details)
	}
	if details := errors.GetErrorDetails(stderrors.New("plain")); details != nil {
		t.Errorf("GetErrorDetails() on plain error = %v", details)
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrFileAccess, "cannot read file")
	configErr := errors.Wrap(fileErr, errors.ErrConfigFormat, "failed to load config")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		if !errors.IsErrorCode(configErr, errors.ErrConfigFormat) {
			t.Error("Top level should have ErrConfigFormat code")
		}
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		if !stderrors.Is(configErr, errors.ErrFileAccess) {
			t.Error("Middle error should be reachable by code")
		}
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		if !stderrors.Is(configErr, rootCause) {
			t.Error("Should find root cause with errors.Is")
		}
	})
}

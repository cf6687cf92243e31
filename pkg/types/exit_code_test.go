// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestExitCode_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		code    ExitCode
		wantErr bool
	}{
		{"success", 0, false},
		{"generic failure", 1, false},
		{"max", 255, false},
		{"negative", -1, true},
		{"above max", 256, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.code.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ExitCode(%d).Validate() = nil, want error", tt.code)
				}
				if !errors.Is(err, ErrInvalidExitCode) {
					t.Errorf("error should wrap ErrInvalidExitCode, got: %v", err)
				}
			} else if err != nil {
				t.Errorf("ExitCode(%d).Validate() = %v, want nil", tt.code, err)
			}
		})
	}
}

func TestExitCode_IsSuccess(t *testing.T) {
	t.Parallel()

	if !ExitCode(0).IsSuccess() {
		t.Error("ExitCode(0).IsSuccess() = false, want true")
	}
	if ExitCode(1).IsSuccess() {
		t.Error("ExitCode(1).IsSuccess() = true, want false")
	}
}

func TestExitCode_String(t *testing.T) {
	t.Parallel()

	if got := ExitCode(42).String(); got != "42" {
		t.Errorf("ExitCode(42).String() = %q, want %q", got, "42")
	}
}

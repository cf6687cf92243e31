// SPDX-License-Identifier: MPL-2.0

package export

import (
	"errors"
	"fmt"
)

const (
	// FormatCSV writes one row per transaction with a header row.
	FormatCSV Format = "csv"
	// FormatJSON writes the full statement object.
	FormatJSON Format = "json"
)

// ErrInvalidFormat is the sentinel error wrapped by InvalidFormatError.
var ErrInvalidFormat = errors.New("invalid export format")

type (
	// Format selects an export encoding.
	Format string

	// InvalidFormatError is returned when a Format value is not recognized.
	// It wraps ErrInvalidFormat for errors.Is() compatibility.
	InvalidFormatError struct {
		Value Format
	}
)

// Error implements the error interface.
func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid export format %q (valid: csv, json)", e.Value)
}

// Unwrap returns ErrInvalidFormat for errors.Is() compatibility.
func (e *InvalidFormatError) Unwrap() error { return ErrInvalidFormat }

// String returns the string representation of the Format.
func (f Format) String() string { return string(f) }

// IsValid returns whether the Format is one of the known encodings.
func (f Format) IsValid() (bool, []error) {
	switch f {
	case FormatCSV, FormatJSON:
		return true, nil
	default:
		return false, []error{&InvalidFormatError{Value: f}}
	}
}

// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"regexp"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidDateLayout is returned when the date layout is empty.
	ErrInvalidDateLayout = errors.New("invalid date layout")
	// ErrInvalidMarkerPattern is the sentinel error wrapped by InvalidMarkerPatternError.
	ErrInvalidMarkerPattern = errors.New("invalid table marker pattern")
)

type (
	// ColorScheme selects the terminal color scheme for styled output.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not
	// recognized. It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidMarkerPatternError is returned when a table marker pattern does
	// not compile as a regular expression. It wraps ErrInvalidMarkerPattern
	// for errors.Is() compatibility.
	InvalidMarkerPatternError struct {
		Field   string
		Pattern string
		Cause   error
	}

	// UIConfig holds terminal output settings.
	UIConfig struct {
		ColorScheme ColorScheme `mapstructure:"color_scheme"`
		Verbose     bool        `mapstructure:"verbose"`
	}

	// ParserConfig holds the transaction table marker patterns.
	// Revolut adjusts statement layouts over time, so the markers are
	// user-overridable rather than hardcoded.
	ParserConfig struct {
		TableStart string `mapstructure:"table_start"`
		TableEnd   string `mapstructure:"table_end"`
	}

	// Config is the application configuration.
	Config struct {
		DateLayout string       `mapstructure:"date_layout"`
		UI         UIConfig     `mapstructure:"ui"`
		Parser     ParserConfig `mapstructure:"parser"`
	}
)

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// Error implements the error interface.
func (e *InvalidMarkerPatternError) Error() string {
	return fmt.Sprintf("%s: pattern %q does not compile: %v", e.Field, e.Pattern, e.Cause)
}

// Unwrap returns ErrInvalidMarkerPattern for errors.Is() compatibility.
func (e *InvalidMarkerPatternError) Unwrap() error { return ErrInvalidMarkerPattern }

// String returns the string representation of the ColorScheme.
func (c ColorScheme) String() string { return string(c) }

// IsValid returns whether the ColorScheme is one of the known values.
func (c ColorScheme) IsValid() (bool, []error) {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: c}}
	}
}

// TableStartRegexp compiles the table start marker.
func (p ParserConfig) TableStartRegexp() (*regexp.Regexp, error) {
	re, err := regexp.Compile(p.TableStart)
	if err != nil {
		return nil, &InvalidMarkerPatternError{Field: "parser.table_start", Pattern: p.TableStart, Cause: err}
	}
	return re, nil
}

// TableEndRegexp compiles the table end marker.
func (p ParserConfig) TableEndRegexp() (*regexp.Regexp, error) {
	re, err := regexp.Compile(p.TableEnd)
	if err != nil {
		return nil, &InvalidMarkerPatternError{Field: "parser.table_end", Pattern: p.TableEnd, Cause: err}
	}
	return re, nil
}

// Validate checks constraints the CUE schema cannot express: the marker
// patterns must compile and the color scheme and date layout must be valid.
func (c *Config) Validate() error {
	if c.DateLayout == "" {
		return ErrInvalidDateLayout
	}
	if ok, errs := c.UI.ColorScheme.IsValid(); !ok {
		return errs[0]
	}
	if _, err := c.Parser.TableStartRegexp(); err != nil {
		return err
	}
	if _, err := c.Parser.TableEndRegexp(); err != nil {
		return err
	}
	return nil
}

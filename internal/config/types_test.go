// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"
)

func TestColorScheme_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		scheme  ColorScheme
		want    bool
		wantErr bool
	}{
		{ColorSchemeAuto, true, false},
		{ColorSchemeDark, true, false},
		{ColorSchemeLight, true, false},
		{"", false, true},
		{"invalid", false, true},
		{"DARK", false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.scheme), func(t *testing.T) {
			t.Parallel()
			isValid, errs := tt.scheme.IsValid()
			if isValid != tt.want {
				t.Errorf("ColorScheme(%q).IsValid() = %v, want %v", tt.scheme, isValid, tt.want)
			}
			if tt.wantErr {
				if len(errs) == 0 {
					t.Fatalf("ColorScheme(%q).IsValid() returned no errors, want error", tt.scheme)
				}
				if !errors.Is(errs[0], ErrInvalidColorScheme) {
					t.Errorf("error should wrap ErrInvalidColorScheme, got: %v", errs[0])
				}
			} else if len(errs) > 0 {
				t.Errorf("ColorScheme(%q).IsValid() returned unexpected errors: %v", tt.scheme, errs)
			}
		})
	}
}

func TestParserConfig_Regexps(t *testing.T) {
	t.Parallel()

	good := ParserConfig{TableStart: `Completed Date.*Balance`, TableEnd: `End of statement`}
	if _, err := good.TableStartRegexp(); err != nil {
		t.Errorf("TableStartRegexp() error: %v", err)
	}
	if _, err := good.TableEndRegexp(); err != nil {
		t.Errorf("TableEndRegexp() error: %v", err)
	}

	bad := ParserConfig{TableStart: `([unclosed`, TableEnd: `ok`}
	_, err := bad.TableStartRegexp()
	if err == nil {
		t.Fatal("TableStartRegexp() = nil error for invalid pattern")
	}
	if !errors.Is(err, ErrInvalidMarkerPattern) {
		t.Errorf("error should wrap ErrInvalidMarkerPattern, got: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"defaults valid", func(_ *Config) {}, nil},
		{"empty date layout", func(c *Config) { c.DateLayout = "" }, ErrInvalidDateLayout},
		{"bad color scheme", func(c *Config) { c.UI.ColorScheme = "blue" }, ErrInvalidColorScheme},
		{"bad start marker", func(c *Config) { c.Parser.TableStart = `([` }, ErrInvalidMarkerPattern},
		{"bad end marker", func(c *Config) { c.Parser.TableEnd = `)` }, ErrInvalidMarkerPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/pitvolut/config.cue (or XDG equivalent
// on Linux, ~/Library/Application Support/pitvolut/config.cue on macOS,
// %APPDATA%\pitvolut\config.cue on Windows). The package provides type-safe
// configuration access covering the statement date layout, the transaction
// table markers, and UI settings.
//
// Configuration validation is performed against a CUE schema
// (config_schema.cue) to ensure type safety and provide clear error messages
// for invalid configurations. Constraints CUE cannot express, such as the
// marker patterns compiling as regular expressions, are validated in Go.
package config

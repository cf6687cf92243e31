// SPDX-License-Identifier: MPL-2.0

// Package types provides small validated value types shared across the CLI.
//
// Each type carries its own validation and a typed error that wraps a package
// sentinel, so callers can use errors.Is for programmatic detection.
package types

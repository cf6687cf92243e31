// SPDX-License-Identifier: MPL-2.0

// Package export encodes parsed statements as CSV or JSON.
//
// Both encoders preserve statement order and render amounts with a two-digit
// scale, matching the figures printed on the source statement.
package export

// SPDX-License-Identifier: MPL-2.0

// Package parser recovers the transaction table from a statement's extracted
// text and parses it into the domain model.
//
// Splitting and row matching are regex-driven: the table sits between a
// column-header marker and an end-of-statement marker, and each row is
// date, description, amount, fee, balance. Revolut adjusts statement layouts
// over time, so both markers and the date layout are configurable.
//
// Row parsing never fails the statement: lines that don't match are logged
// and reported as skipped so callers can inspect them.
package parser

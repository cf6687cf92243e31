// SPDX-License-Identifier: MPL-2.0

// Package statement defines the domain model for parsed Revolut account
// statements: transactions with exact decimal amounts, transaction type
// classification, and summary aggregation.
//
// Amounts use shopspring/decimal throughout. Statement figures must
// round-trip exactly; nothing in this package converts through float64.
package statement

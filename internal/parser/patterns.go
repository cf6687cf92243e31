// SPDX-License-Identifier: MPL-2.0

package parser

import "regexp"

const (
	// DefaultTableStartPattern matches the transaction table's column header
	// row ("Completed Date ... Balance").
	DefaultTableStartPattern = `Completed Date.*Balance`

	// DefaultTableEndPattern matches the line that closes the transaction
	// table.
	DefaultTableEndPattern = `End of statement`

	// DefaultDateLayout is the Go layout for statement dates (dd-mm-yyyy).
	DefaultDateLayout = "02-01-2006"
)

// transactionLinePattern matches a single transaction row at the start of a
// line: date, description, then amount, fee and balance as two-decimal
// figures. The description match is lazy so it stops before the numbers.
var transactionLinePattern = regexp.MustCompile(
	`^(\d{2}-\d{2}-\d{4})\s+(.*?)\s+([-+]?\d+\.\d{2})\s+([-+]?\d+\.\d{2})\s+([-+]?\d+\.\d{2})`,
)

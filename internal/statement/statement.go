// SPDX-License-Identifier: MPL-2.0

package statement

import (
	"time"

	"github.com/shopspring/decimal"
)

type (
	// Transaction is a single row of a statement's transaction table.
	Transaction struct {
		// CompletedDate is the date the transaction settled.
		CompletedDate time.Time

		// Description is the statement's free-text description for the row.
		Description string

		// Amount is the signed transaction amount.
		Amount decimal.Decimal

		// Fee is the fee charged for the transaction.
		Fee decimal.Decimal

		// Balance is the account balance after the transaction.
		Balance decimal.Decimal

		// Type is the classified transaction type, derived from Description.
		Type TransactionType

		// RawText is the trimmed source line the transaction was parsed
		// from, kept for debugging.
		RawText string
	}

	// Statement is a fully parsed account statement. HeaderText and
	// FooterText hold the document text before and after the transaction
	// table. Transactions preserve statement line order.
	Statement struct {
		HeaderText   string
		FooterText   string
		Transactions []Transaction
	}
)

// TransactionsOfType returns the statement's transactions matching any of the
// given types. The single pass preserves statement order regardless of the
// order (or repetition) of the types argument. It returns nil when nothing
// matches.
func (s *Statement) TransactionsOfType(types ...TransactionType) []Transaction {
	wanted := make(map[TransactionType]bool, len(types))
	for _, tt := range types {
		wanted[tt] = true
	}

	var out []Transaction
	for _, tx := range s.Transactions {
		if wanted[tx.Type] {
			out = append(out, tx)
		}
	}
	return out
}

// SPDX-License-Identifier: MPL-2.0

package statement

import (
	"time"

	"github.com/shopspring/decimal"
)

type (
	// TypeTotal aggregates the transactions of a single type.
	TypeTotal struct {
		Count  int
		Amount decimal.Decimal
	}

	// Summary aggregates a statement for display: per-type counts and
	// amount totals, total fees, the covered period, and the closing
	// balance (balance of the last transaction).
	Summary struct {
		TransactionCount int
		ByType           map[TransactionType]TypeTotal
		TotalFees        decimal.Decimal
		PeriodStart      time.Time
		PeriodEnd        time.Time
		ClosingBalance   decimal.Decimal
		HasTransactions  bool
	}
)

// Summarize computes a Summary over the statement's transactions.
// An empty statement yields a zero summary with HasTransactions false.
func Summarize(s *Statement) Summary {
	sum := Summary{
		ByType: make(map[TransactionType]TypeTotal),
	}
	if s == nil || len(s.Transactions) == 0 {
		return sum
	}

	sum.HasTransactions = true
	sum.TransactionCount = len(s.Transactions)
	sum.PeriodStart = s.Transactions[0].CompletedDate
	sum.PeriodEnd = s.Transactions[0].CompletedDate

	for _, tx := range s.Transactions {
		tt := sum.ByType[tx.Type]
		tt.Count++
		tt.Amount = tt.Amount.Add(tx.Amount)
		sum.ByType[tx.Type] = tt

		sum.TotalFees = sum.TotalFees.Add(tx.Fee)

		if tx.CompletedDate.Before(sum.PeriodStart) {
			sum.PeriodStart = tx.CompletedDate
		}
		if tx.CompletedDate.After(sum.PeriodEnd) {
			sum.PeriodEnd = tx.CompletedDate
		}
	}

	// Statement rows run in ledger order, so the last row carries the
	// closing balance.
	sum.ClosingBalance = s.Transactions[len(s.Transactions)-1].Balance

	return sum
}

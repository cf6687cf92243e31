// SPDX-License-Identifier: MPL-2.0

package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"pitvolut/internal/statement"
)

// csvDateLayout is the date column format (ISO date, no time component).
const csvDateLayout = "2006-01-02"

// csvHeader is the fixed column order of CSV exports.
var csvHeader = []string{"completed_date", "description", "amount", "fee", "balance", "type"}

// WriteCSV writes the statement's transactions to w as CSV, header row
// included. Rows keep statement order.
func WriteCSV(w io.Writer, s *statement.Statement) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, tx := range s.Transactions {
		record := []string{
			tx.CompletedDate.Format(csvDateLayout),
			tx.Description,
			tx.Amount.StringFixed(2),
			tx.Fee.StringFixed(2),
			tx.Balance.StringFixed(2),
			tx.Type.String(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV output: %w", err)
	}
	return nil
}

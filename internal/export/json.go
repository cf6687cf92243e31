// SPDX-License-Identifier: MPL-2.0

package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"pitvolut/internal/statement"
)

// JSON DTOs. Amounts are strings so the exact statement figures survive
// consumers that would otherwise decode them as float64.
type (
	jsonStatement struct {
		HeaderText   string            `json:"header_text"`
		FooterText   string            `json:"footer_text"`
		Transactions []jsonTransaction `json:"transactions"`
	}

	jsonTransaction struct {
		CompletedDate string `json:"completed_date"`
		Description   string `json:"description"`
		Amount        string `json:"amount"`
		Fee           string `json:"fee"`
		Balance       string `json:"balance"`
		Type          string `json:"type"`
		RawText       string `json:"raw_text"`
	}
)

// WriteJSON writes the statement to w as an indented JSON object.
// Transaction dates are RFC 3339 timestamps.
func WriteJSON(w io.Writer, s *statement.Statement) error {
	out := jsonStatement{
		HeaderText:   s.HeaderText,
		FooterText:   s.FooterText,
		Transactions: make([]jsonTransaction, 0, len(s.Transactions)),
	}

	for _, tx := range s.Transactions {
		out.Transactions = append(out.Transactions, jsonTransaction{
			CompletedDate: tx.CompletedDate.Format(time.RFC3339),
			Description:   tx.Description,
			Amount:        tx.Amount.StringFixed(2),
			Fee:           tx.Fee.StringFixed(2),
			Balance:       tx.Balance.StringFixed(2),
			Type:          tx.Type.String(),
			RawText:       tx.RawText,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode statement JSON: %w", err)
	}
	return nil
}

// Write encodes the statement to w in the given format.
func Write(w io.Writer, s *statement.Statement, format Format) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, s)
	case FormatJSON:
		return WriteJSON(w, s)
	default:
		return &InvalidFormatError{Value: format}
	}
}

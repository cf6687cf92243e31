// SPDX-License-Identifier: MPL-2.0

package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"pitvolut/internal/statement"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func sampleStatement() *statement.Statement {
	return &statement.Statement{
		HeaderText: "Revolut Ltd\nAccount Statement",
		FooterText: "End of legal text",
		Transactions: []statement.Transaction{
			{
				CompletedDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				Description:   "Card Payment to Grocer Ltd",
				Amount:        decimal.RequireFromString("-12.50"),
				Fee:           decimal.RequireFromString("0.00"),
				Balance:       decimal.RequireFromString("987.50"),
				Type:          statement.TypePayment,
				RawText:       "01-03-2024 Card Payment to Grocer Ltd -12.50 0.00 987.50",
			},
			{
				CompletedDate: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
				Description:   "Exchange EUR to USD",
				Amount:        decimal.RequireFromString("-100.00"),
				Fee:           decimal.RequireFromString("0.30"),
				Balance:       decimal.RequireFromString("887.20"),
				Type:          statement.TypeExchange,
				RawText:       "02-03-2024 Exchange EUR to USD -100.00 0.30 887.20",
			},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleStatement()); err != nil {
		t.Fatalf("WriteCSV() error: %v", err)
	}

	want := "completed_date,description,amount,fee,balance,type\n" +
		"2024-03-01,Card Payment to Grocer Ltd,-12.50,0.00,987.50,payment\n" +
		"2024-03-02,Exchange EUR to USD,-100.00,0.30,887.20,exchange\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("WriteCSV() mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteCSV_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteCSV(&buf, &statement.Statement{}); err != nil {
		t.Fatalf("WriteCSV() error: %v", err)
	}
	if got := buf.String(); got != "completed_date,description,amount,fee,balance,type\n" {
		t.Errorf("WriteCSV(empty) = %q, want header only", got)
	}
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleStatement()); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	var decoded struct {
		HeaderText   string `json:"header_text"`
		FooterText   string `json:"footer_text"`
		Transactions []struct {
			CompletedDate string `json:"completed_date"`
			Description   string `json:"description"`
			Amount        string `json:"amount"`
			Fee           string `json:"fee"`
			Balance       string `json:"balance"`
			Type          string `json:"type"`
			RawText       string `json:"raw_text"`
		} `json:"transactions"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded.HeaderText != "Revolut Ltd\nAccount Statement" {
		t.Errorf("header_text = %q", decoded.HeaderText)
	}
	if len(decoded.Transactions) != 2 {
		t.Fatalf("got %d transactions, want 2", len(decoded.Transactions))
	}
	first := decoded.Transactions[0]
	if first.CompletedDate != "2024-03-01T00:00:00Z" {
		t.Errorf("completed_date = %q, want RFC 3339", first.CompletedDate)
	}
	// Amounts are strings, exact to two decimals.
	if first.Amount != "-12.50" || first.Fee != "0.00" || first.Balance != "987.50" {
		t.Errorf("amounts = (%q, %q, %q)", first.Amount, first.Fee, first.Balance)
	}
	if first.Type != "payment" {
		t.Errorf("type = %q, want payment", first.Type)
	}
	if !strings.HasPrefix(first.RawText, "01-03-2024") {
		t.Errorf("raw_text = %q", first.RawText)
	}
}

func TestWrite_Format(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, sampleStatement(), FormatCSV); err != nil {
		t.Errorf("Write(csv) error: %v", err)
	}

	err := Write(&buf, sampleStatement(), Format("xml"))
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Write(xml) error = %v, want ErrInvalidFormat", err)
	}
}

func TestFormat_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format Format
		want   bool
	}{
		{FormatCSV, true},
		{FormatJSON, true},
		{"", false},
		{"xml", false},
		{"CSV", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			t.Parallel()
			isValid, errs := tt.format.IsValid()
			if isValid != tt.want {
				t.Errorf("Format(%q).IsValid() = %v, want %v", tt.format, isValid, tt.want)
			}
			if !tt.want && !errors.Is(errs[0], ErrInvalidFormat) {
				t.Errorf("error should wrap ErrInvalidFormat, got: %v", errs[0])
			}
		})
	}
}

// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"pitvolut/internal/config"
	"pitvolut/internal/statement"
)

// statementText resembles the text layer of a Revolut statement.
const statementText = `Revolut Ltd
Account Statement
Completed Date Description Amount Fee Balance
01-03-2024 Card Payment to Grocer Ltd -12.50 0.00 987.50
02-03-2024 Exchange EUR to USD -100.00 0.30 887.20
03-03-2024 Transfer from Payroll Ltd +1500.00 0.00 2387.20
End of statement
Revolut Ltd is registered in England and Wales`

// stubExtractor returns canned text instead of reading a real PDF.
type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) Extract(_ context.Context, _ string) (string, error) {
	return s.text, s.err
}

// stubProvider serves a fixed configuration without touching the filesystem.
type stubProvider struct {
	cfg *config.Config
}

func (s *stubProvider) Load(_ context.Context, _ config.LoadOptions) (*config.Config, error) {
	return s.cfg, nil
}

func newTestApp(text string) (*App, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	app := NewApp(Dependencies{
		Config:    &stubProvider{cfg: config.DefaultConfig()},
		Extractor: &stubExtractor{text: text},
		Stdout:    stdout,
		Stderr:    stderr,
	})
	return app, stdout, stderr
}

func TestParseCommand(t *testing.T) {
	t.Parallel()

	app, stdout, _ := newTestApp(statementText)
	cmd := newParseCommand(app)
	cmd.SetArgs([]string{"statement.pdf"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	out := stdout.String()
	if !strings.Contains(out, "Found 3 transactions") {
		t.Errorf("output missing summary, got:\n%s", out)
	}
	if !strings.Contains(out, "Grocer Ltd") {
		t.Errorf("output missing transaction description, got:\n%s", out)
	}
}

func TestParseCommand_TypeFilter(t *testing.T) {
	t.Parallel()

	app, stdout, _ := newTestApp(statementText)
	cmd := newParseCommand(app)
	cmd.SetArgs([]string{"statement.pdf", "--type", "exchange"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	out := stdout.String()
	if !strings.Contains(out, "Exchange EUR to USD") {
		t.Errorf("output missing exchange transaction, got:\n%s", out)
	}
	if strings.Contains(out, "1500.00  Transfer from Payroll Ltd") {
		t.Errorf("output should not list transfers, got:\n%s", out)
	}
}

func TestParseCommand_MultiTypeFilterKeepsStatementOrder(t *testing.T) {
	t.Parallel()

	app, stdout, _ := newTestApp(statementText)
	cmd := newParseCommand(app)
	cmd.SetArgs([]string{"statement.pdf", "--type", "transfer,payment"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	out := stdout.String()
	paymentIdx := strings.Index(out, "Card Payment to Grocer Ltd")
	transferIdx := strings.Index(out, "Transfer from Payroll Ltd")
	if paymentIdx < 0 || transferIdx < 0 {
		t.Fatalf("output missing filtered transactions, got:\n%s", out)
	}
	if paymentIdx > transferIdx {
		t.Errorf("payment (statement line 1) listed after transfer (statement line 3), got:\n%s", out)
	}
	if strings.Contains(out, "Exchange EUR to USD") {
		t.Errorf("output should not list exchanges, got:\n%s", out)
	}
}

func TestParseCommand_NoTable(t *testing.T) {
	t.Parallel()

	app, _, _ := newTestApp("nothing that looks like a statement")
	cmd := newParseCommand(app)
	cmd.SetArgs([]string{"statement.pdf"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	err := cmd.Execute()
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Execute() error = %v, want *ExitError", err)
	}
	if exitErr.Code != 1 {
		t.Errorf("exit code = %d, want 1", exitErr.Code)
	}
}

func TestParseTypeFilters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		values  []string
		want    []statement.TransactionType
		wantErr bool
	}{
		{
			name:   "valid types",
			values: []string{"exchange", "payment"},
			want:   []statement.TransactionType{statement.TypeExchange, statement.TypePayment},
		},
		{
			name:   "empty",
			values: nil,
			want:   nil,
		},
		{
			name:    "unknown type",
			values:  []string{"refund"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseTypeFilters(tt.values)
			if tt.wantErr {
				if err == nil {
					t.Fatal("parseTypeFilters() error = nil, want error")
				}
				if !errors.Is(err, statement.ErrInvalidTransactionType) {
					t.Errorf("error = %v, want wrapped ErrInvalidTransactionType", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseTypeFilters() error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d filters, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("filter[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestExportCommand_CSV(t *testing.T) {
	t.Parallel()

	app, stdout, _ := newTestApp(statementText)
	cmd := newExportCommand(app)
	cmd.SetArgs([]string{"statement.pdf", "--format", "csv"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	out := stdout.String()
	if !strings.HasPrefix(out, "completed_date,description,amount,fee,balance,type\n") {
		t.Errorf("missing CSV header, got:\n%s", out)
	}
	if !strings.Contains(out, "2024-03-02,Exchange EUR to USD,-100.00,0.30,887.20,exchange") {
		t.Errorf("missing exchange row, got:\n%s", out)
	}
}

func TestExportCommand_InvalidFormat(t *testing.T) {
	t.Parallel()

	app, _, _ := newTestApp(statementText)
	cmd := newExportCommand(app)
	cmd.SetArgs([]string{"statement.pdf", "--format", "xml"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	if err := cmd.Execute(); err == nil {
		t.Fatal("Execute() error = nil, want invalid format error")
	}
}

func TestFormatErrorForDisplay(t *testing.T) {
	t.Parallel()

	plain := errors.New("plain failure")
	if got := formatErrorForDisplay(plain, false); got != "plain failure" {
		t.Errorf("formatErrorForDisplay() = %q, want %q", got, "plain failure")
	}
}

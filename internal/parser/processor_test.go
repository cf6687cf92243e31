// SPDX-License-Identifier: MPL-2.0

package parser

import (
	"context"
	"errors"
	"testing"
)

// stubExtractor returns canned text instead of reading a real PDF.
type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) Extract(_ context.Context, _ string) (string, error) {
	return s.text, s.err
}

func TestProcessor_Process(t *testing.T) {
	t.Parallel()

	pr := NewProcessor(&stubExtractor{text: sampleText}, quietParser(Options{}))

	result, err := pr.Process(context.Background(), "statement.pdf")
	if err != nil {
		t.Fatalf("Process() error: %v", err)
	}
	if !result.TableFound {
		t.Error("TableFound = false, want true")
	}
	if got := len(result.Statement.Transactions); got != 3 {
		t.Errorf("parsed %d transactions, want 3", got)
	}
	if len(result.SkippedLines) != 0 {
		t.Errorf("SkippedLines = %v, want none", result.SkippedLines)
	}
	if result.Statement.HeaderText == "" {
		t.Error("HeaderText is empty, want statement preamble")
	}
	if result.Statement.FooterText == "" {
		t.Error("FooterText is empty, want statement legal text")
	}
}

func TestProcessor_Process_NoTable(t *testing.T) {
	t.Parallel()

	pr := NewProcessor(&stubExtractor{text: "nothing that looks like a statement"}, quietParser(Options{}))

	result, err := pr.Process(context.Background(), "statement.pdf")
	if err != nil {
		t.Fatalf("Process() error: %v", err)
	}
	if result.TableFound {
		t.Error("TableFound = true, want false")
	}
	if len(result.Statement.Transactions) != 0 {
		t.Errorf("parsed %d transactions, want 0", len(result.Statement.Transactions))
	}
}

func TestProcessor_Process_ExtractError(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("broken file")
	pr := NewProcessor(&stubExtractor{err: sentinel}, quietParser(Options{}))

	_, err := pr.Process(context.Background(), "statement.pdf")
	if !errors.Is(err, sentinel) {
		t.Errorf("Process() error = %v, want wrapped %v", err, sentinel)
	}
}

func TestProcessor_Process_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pr := NewProcessor(&stubExtractor{text: sampleText}, quietParser(Options{}))
	_, err := pr.Process(ctx, "statement.pdf")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Process() error = %v, want context.Canceled", err)
	}
}

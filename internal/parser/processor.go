// SPDX-License-Identifier: MPL-2.0

package parser

import (
	"context"
	"fmt"

	"pitvolut/internal/pdf"
	"pitvolut/internal/statement"
)

type (
	// Result is the outcome of processing one statement PDF.
	Result struct {
		// Statement holds the parsed statement, always non-nil.
		Statement *statement.Statement

		// SkippedLines lists table lines that could not be parsed.
		SkippedLines []SkippedLine

		// TableFound reports whether the transaction table markers were
		// located in the document text.
		TableFound bool
	}

	// Processor runs the full extraction and parsing pipeline.
	Processor struct {
		extractor pdf.Extractor
		parser    *Parser
	}
)

// NewProcessor creates a Processor over the given extractor and parser.
func NewProcessor(extractor pdf.Extractor, p *Parser) *Processor {
	return &Processor{extractor: extractor, parser: p}
}

// Process extracts the PDF's text and parses it into a statement.
//
// Individual bad table lines never fail processing; they appear in
// Result.SkippedLines. Process fails only when the file is missing or its
// text cannot be extracted.
func (pr *Processor) Process(ctx context.Context, path string) (*Result, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("process canceled: %w", ctx.Err())
	default:
	}

	text, err := pr.extractor.Extract(ctx, path)
	if err != nil {
		return nil, err
	}

	header, table, footer, found := pr.parser.SplitContent(text)
	transactions, skipped := pr.parser.ParseTransactions(table)

	return &Result{
		Statement: &statement.Statement{
			HeaderText:   header,
			FooterText:   footer,
			Transactions: transactions,
		},
		SkippedLines: skipped,
		TableFound:   found,
	}, nil
}

// SPDX-License-Identifier: MPL-2.0

package parser

import (
	"regexp"
	"strings"
	"time"

	"pitvolut/internal/statement"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
)

type (
	// Options configures a Parser. The zero value selects the default
	// Revolut statement markers and date layout.
	Options struct {
		// TableStart locates the transaction table's column header row.
		TableStart *regexp.Regexp

		// TableEnd locates the line that closes the transaction table.
		TableEnd *regexp.Regexp

		// DateLayout is the Go time layout for row dates.
		DateLayout string

		// Logger receives a warn entry per skipped table line.
		Logger *log.Logger
	}

	// SkippedLine records a non-blank table line that could not be parsed
	// into a transaction.
	SkippedLine struct {
		// LineNumber is the 1-based position within the table text.
		LineNumber int

		// Text is the trimmed line content.
		Text string

		// Reason describes why the line was skipped.
		Reason string
	}

	// Parser turns extracted statement text into the domain model.
	Parser struct {
		tableStart *regexp.Regexp
		tableEnd   *regexp.Regexp
		dateLayout string
		logger     *log.Logger
	}
)

// New creates a Parser, filling unset options with the Revolut defaults.
func New(opts Options) *Parser {
	p := &Parser{
		tableStart: opts.TableStart,
		tableEnd:   opts.TableEnd,
		dateLayout: opts.DateLayout,
		logger:     opts.Logger,
	}
	if p.tableStart == nil {
		p.tableStart = regexp.MustCompile(DefaultTableStartPattern)
	}
	if p.tableEnd == nil {
		p.tableEnd = regexp.MustCompile(DefaultTableEndPattern)
	}
	if p.dateLayout == "" {
		p.dateLayout = DefaultDateLayout
	}
	if p.logger == nil {
		p.logger = log.Default()
	}
	return p
}

// SplitContent splits extracted statement text into the text before the
// transaction table, the table itself, and the text after it. All three
// parts are whitespace-trimmed. found reports whether the table's start
// marker was located at all.
//
// When the start marker is absent there is no table to recover and all
// three parts are empty. When the end marker is absent the footer is empty
// and the table runs to the end of the document.
func (p *Parser) SplitContent(text string) (header, table, footer string, found bool) {
	startLoc := p.tableStart.FindStringIndex(text)
	if startLoc == nil {
		return "", "", "", false
	}

	header = strings.TrimSpace(text[:startLoc[0]])
	rest := text[startLoc[1]:]

	endLoc := p.tableEnd.FindStringIndex(rest)
	if endLoc == nil {
		return header, strings.TrimSpace(rest), "", true
	}

	table = strings.TrimSpace(rest[:endLoc[0]])
	footer = strings.TrimSpace(rest[endLoc[1]:])
	return header, table, footer, true
}

// ParseTransactions parses the table text line by line. Blank lines are
// ignored. Non-blank lines that don't match the row format, or that carry an
// unparseable date or figure, are logged at warn level and returned as
// skipped lines; they never fail the parse.
func (p *Parser) ParseTransactions(tableText string) ([]statement.Transaction, []SkippedLine) {
	var (
		transactions []statement.Transaction
		skipped      []SkippedLine
	)

	for i, line := range strings.Split(tableText, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		tx, reason := p.parseLine(line)
		if reason != "" {
			p.logger.Warn("skipping unparseable transaction line",
				"line", i+1, "reason", reason, "text", trimmed)
			skipped = append(skipped, SkippedLine{
				LineNumber: i + 1,
				Text:       trimmed,
				Reason:     reason,
			})
			continue
		}
		transactions = append(transactions, tx)
	}

	return transactions, skipped
}

// parseLine parses a single table line. On failure it returns a zero
// Transaction and a non-empty reason.
func (p *Parser) parseLine(line string) (statement.Transaction, string) {
	match := transactionLinePattern.FindStringSubmatch(line)
	if match == nil {
		return statement.Transaction{}, "line does not match the transaction row format"
	}

	dateStr, desc := match[1], strings.TrimSpace(match[2])

	completed, err := time.Parse(p.dateLayout, dateStr)
	if err != nil {
		return statement.Transaction{}, "invalid date: " + err.Error()
	}

	amount, err := decimal.NewFromString(match[3])
	if err != nil {
		return statement.Transaction{}, "invalid amount: " + err.Error()
	}
	fee, err := decimal.NewFromString(match[4])
	if err != nil {
		return statement.Transaction{}, "invalid fee: " + err.Error()
	}
	balance, err := decimal.NewFromString(match[5])
	if err != nil {
		return statement.Transaction{}, "invalid balance: " + err.Error()
	}

	return statement.Transaction{
		CompletedDate: completed,
		Description:   desc,
		Amount:        amount,
		Fee:           fee,
		Balance:       balance,
		Type:          statement.ClassifyDescription(desc),
		RawText:       strings.TrimSpace(line),
	}, ""
}

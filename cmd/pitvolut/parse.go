// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"

	"pitvolut/internal/issue"
	"pitvolut/internal/parser"
	"pitvolut/internal/pdf"
	"pitvolut/internal/statement"
	"pitvolut/pkg/types"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// newParseCommand creates the `pitvolut parse` command.
func newParseCommand(app *App) *cobra.Command {
	var (
		typeFilters []string
		showRaw     bool
	)

	parseCmd := &cobra.Command{
		Use:   "parse <statement.pdf>",
		Short: "Parse a statement and list its transactions",
		Long: `Parse a Revolut statement PDF and print a summary followed by the
transaction list.

Examples:
  pitvolut parse statement.pdf
  pitvolut parse statement.pdf --type exchange
  pitvolut parse statement.pdf --type payment,transfer --raw`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, app, args[0], typeFilters, showRaw)
		},
	}

	parseCmd.Flags().StringSliceVar(&typeFilters, "type", nil,
		"only list transactions of these types (exchange, payment, transfer, other)")
	parseCmd.Flags().BoolVar(&showRaw, "raw", false, "include the original statement line for each transaction")

	return parseCmd
}

func runParse(cmd *cobra.Command, app *App, path string, typeFilters []string, showRaw bool) error {
	filters, err := parseTypeFilters(typeFilters)
	if err != nil {
		return err
	}

	result, cfg, err := app.process(cmd.Context(), types.FilesystemPath(path))
	if err != nil {
		reportProcessError(app.stderr, err)
		return err
	}

	if exitErr := reportEmptyResult(app.stderr, result); exitErr != nil {
		return exitErr
	}

	reportSkippedLines(app.stderr, result.SkippedLines)

	st := result.Statement
	printSummary(app.stdout, statement.Summarize(st), cfg.DateLayout)

	transactions := st.Transactions
	if len(filters) > 0 {
		transactions = st.TransactionsOfType(filters...)
	}

	fmt.Fprintln(app.stdout)
	printTransactions(app.stdout, transactions, cfg.DateLayout, showRaw)
	return nil
}

// parseTypeFilters validates --type values against the known transaction types.
func parseTypeFilters(values []string) ([]statement.TransactionType, error) {
	var filters []statement.TransactionType
	for _, v := range values {
		tt := statement.TransactionType(v)
		if ok, errs := tt.IsValid(); !ok {
			return nil, issue.NewErrorContext().
				WithOperation("parse --type filter").
				WithResource(v).
				WithSuggestion("Valid types are: exchange, payment, transfer, other").
				Wrap(errs[0]).
				BuildError()
		}
		filters = append(filters, tt)
	}
	return filters, nil
}

// reportProcessError renders the curated issue page matching a pipeline
// failure, when one exists for it.
func reportProcessError(stderr io.Writer, err error) {
	switch {
	case errors.Is(err, pdf.ErrStatementNotFound):
		renderIssue(stderr, issue.StatementNotFoundId)
	case errors.Is(err, pdf.ErrStatementUnreadable):
		renderIssue(stderr, issue.StatementUnreadableId)
	}
}

// reportEmptyResult renders the curated issue page for statements with no
// usable transaction table and converts the condition into an ExitError.
func reportEmptyResult(stderr io.Writer, result *parser.Result) error {
	if !result.TableFound {
		renderIssue(stderr, issue.NoTransactionTableId)
		return &ExitError{Code: 1, Err: errors.New("no transaction table found in statement")}
	}
	if len(result.Statement.Transactions) == 0 {
		renderIssue(stderr, issue.NoTransactionsParsedId)
		return &ExitError{Code: 1, Err: errors.New("no transactions parsed from statement")}
	}
	return nil
}

func reportSkippedLines(stderr io.Writer, skipped []parser.SkippedLine) {
	if len(skipped) == 0 {
		return
	}
	fmt.Fprintln(stderr, WarningStyle.Render(
		fmt.Sprintf("Warning: skipped %d unparseable table line(s); run with --verbose for details", len(skipped))))
}

// renderIssue writes a curated issue page to w, falling back to the raw
// markdown if glamour rendering fails.
func renderIssue(w io.Writer, id issue.Id) {
	is := issue.Get(id)
	if is == nil {
		return
	}
	rendered, err := is.Render("dark")
	if err != nil {
		rendered = string(is.MarkdownMsg())
		for _, link := range is.ExtLinks() {
			rendered += "\n" + string(link)
		}
		rendered += "\n"
	}
	fmt.Fprint(w, rendered)
}

func printSummary(w io.Writer, sum statement.Summary, dateLayout string) {
	fmt.Fprintln(w, TitleStyle.Render("Statement Summary"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Found %d transactions\n", sum.TransactionCount)
	if !sum.HasTransactions {
		return
	}

	fmt.Fprintf(w, "Period: %s to %s\n",
		sum.PeriodStart.Format(dateLayout), sum.PeriodEnd.Format(dateLayout))
	for _, tt := range statement.AllTypes() {
		total, ok := sum.ByType[tt]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %s: %d (%s)\n",
			TypeStyle.Render(tt.String()), total.Count, renderAmount(total.Amount))
	}
	fmt.Fprintf(w, "Total fees: %s\n", sum.TotalFees.StringFixed(2))
	fmt.Fprintf(w, "Closing balance: %s\n", sum.ClosingBalance.StringFixed(2))
}

func printTransactions(w io.Writer, transactions []statement.Transaction, dateLayout string, showRaw bool) {
	for _, tx := range transactions {
		fmt.Fprintf(w, "%s  %-8s  %10s  %s\n",
			tx.CompletedDate.Format(dateLayout),
			TypeStyle.Render(tx.Type.String()),
			renderAmount(tx.Amount),
			tx.Description)
		if showRaw {
			fmt.Fprintf(w, "  %s\n", VerboseStyle.Render(tx.RawText))
		}
	}
}

// renderAmount styles debits red and credits green, two-digit scale.
func renderAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	if d.IsNegative() {
		return ErrorStyle.Render(s)
	}
	return SuccessStyle.Render(s)
}

// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"os"

	"pitvolut/internal/export"
	"pitvolut/internal/issue"
	"pitvolut/pkg/types"

	"github.com/spf13/cobra"
)

// newExportCommand creates the `pitvolut export` command.
func newExportCommand(app *App) *cobra.Command {
	var (
		format string
		output string
	)

	exportCmd := &cobra.Command{
		Use:   "export <statement.pdf>",
		Short: "Export parsed transactions as CSV or JSON",
		Long: `Parse a Revolut statement PDF and write its transactions in a
structured format.

Examples:
  pitvolut export statement.pdf --format csv -o transactions.csv
  pitvolut export statement.pdf --format json > statement.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, app, args[0], export.Format(format), output)
		},
	}

	exportCmd.Flags().StringVar(&format, "format", string(export.FormatCSV), "output format (csv or json)")
	exportCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default is stdout)")

	return exportCmd
}

func runExport(cmd *cobra.Command, app *App, path string, format export.Format, output string) error {
	if ok, errs := format.IsValid(); !ok {
		renderIssue(app.stderr, issue.InvalidOutputFormatId)
		return errs[0]
	}

	result, _, err := app.process(cmd.Context(), types.FilesystemPath(path))
	if err != nil {
		reportProcessError(app.stderr, err)
		return err
	}

	if exitErr := reportEmptyResult(app.stderr, result); exitErr != nil {
		return exitErr
	}
	reportSkippedLines(app.stderr, result.SkippedLines)

	var w io.Writer = app.stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return issue.NewErrorContext().
				WithOperation("create export file").
				WithResource(output).
				WithSuggestion("Check that the directory exists and is writable").
				Wrap(err).
				BuildError()
		}
		defer f.Close()
		w = f
	}

	if err := export.Write(w, result.Statement, format); err != nil {
		return err
	}

	if output != "" {
		fmt.Fprintln(app.stderr, SuccessStyle.Render(
			fmt.Sprintf("Wrote %d transactions to %s", len(result.Statement.Transactions), output)))
	}
	return nil
}

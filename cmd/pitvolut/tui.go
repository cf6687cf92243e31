// SPDX-License-Identifier: EPL-2.0

package cmd

import (
	"fmt"

	"pitvolut/internal/statement"
	"pitvolut/pkg/types"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// newTuiCommand creates the `pitvolut tui` command, an interactive
// transaction browser.
func newTuiCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui <statement.pdf>",
		Short: "Browse transactions interactively",
		Long: `Parse a Revolut statement PDF and browse its transactions in an
interactive table. Use the arrow keys to move, q or esc to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTui(cmd, app, args[0])
		},
	}
}

func runTui(cmd *cobra.Command, app *App, path string) error {
	result, cfg, err := app.process(cmd.Context(), types.FilesystemPath(path))
	if err != nil {
		reportProcessError(app.stderr, err)
		return err
	}

	if exitErr := reportEmptyResult(app.stderr, result); exitErr != nil {
		return exitErr
	}
	reportSkippedLines(app.stderr, result.SkippedLines)

	model := newTransactionTableModel(result.Statement.Transactions, cfg.DateLayout)
	p := tea.NewProgram(model, tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running transaction browser: %w", err)
	}
	return nil
}

// transactionTableModel is the bubbletea model for the transaction browser.
type transactionTableModel struct {
	table table.Model
	done  bool
}

func newTransactionTableModel(transactions []statement.Transaction, dateLayout string) transactionTableModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Type", Width: 10},
		{Title: "Description", Width: 40},
		{Title: "Amount", Width: 12},
		{Title: "Fee", Width: 8},
		{Title: "Balance", Width: 12},
	}

	rows := make([]table.Row, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, table.Row{
			tx.CompletedDate.Format(dateLayout),
			tx.Type.String(),
			tx.Description,
			tx.Amount.StringFixed(2),
			tx.Fee.StringFixed(2),
			tx.Balance.StringFixed(2),
		})
	}

	height := len(rows)
	if height > 20 {
		height = 20
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("255")).
		Background(ColorPrimary).
		Bold(false)
	t.SetStyles(styles)

	return transactionTableModel{table: t}
}

func (m transactionTableModel) Init() tea.Cmd {
	return nil
}

func (m transactionTableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c", "esc", "q":
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m transactionTableModel) View() string {
	if m.done {
		return ""
	}
	return m.table.View() + "\n" + VerboseStyle.Render("↑/↓ move · q quit")
}

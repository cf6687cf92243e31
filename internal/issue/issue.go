// SPDX-License-Identifier: EPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	StatementNotFoundId Id = iota + 1
	StatementUnreadableId
	NoTransactionTableId
	NoTransactionsParsedId
	ConfigLoadFailedId
	InvalidOutputFormatId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	statementNotFoundIssue = &Issue{
		id: StatementNotFoundId,
		mdMsg: `
# Statement file not found!

We could not find the statement PDF at the path you gave.

## Things you can try:
- Check the path for typos:
~~~
$ ls -l <path-to-statement.pdf>
~~~

- Download the statement again from the Revolut app
  (Accounts → Statement → PDF) and point pitvolut at the saved file.`,
		extLinks: []HttpLink{"https://www.revolut.com/help/"},
	}

	statementUnreadableIssue = &Issue{
		id: StatementUnreadableId,
		mdMsg: `
# Could not read the statement PDF!

The file exists but could not be parsed as a PDF document.

## Common causes:
- The download was interrupted and the file is truncated
- The file is not actually a PDF (check the extension vs. contents)
- The PDF is encrypted or password-protected

## Things you can try:
- Open the file in a PDF viewer to confirm it is intact
- Re-download the statement and try again
- Run with verbose mode for more details:
~~~
$ pitvolut --verbose parse statement.pdf
~~~`,
		extLinks: []HttpLink{"https://www.revolut.com/help/"},
	}

	noTransactionTableIssue = &Issue{
		id: NoTransactionTableId,
		mdMsg: `
# No transaction table found!

The PDF text was extracted, but the transaction table markers were not found.

pitvolut locates the table between the "Completed Date ... Balance" column
header and the "End of statement" line.

## Things you can try:
- Check that the PDF is a Revolut account statement (not a card summary
  or fees document)
- If Revolut changed the statement layout, override the markers in your
  config file:
~~~cue
parser: {
    table_start: "Completed Date.*Balance"
    table_end:   "End of statement"
}
~~~`,
	}

	noTransactionsParsedIssue = &Issue{
		id: NoTransactionsParsedId,
		mdMsg: `
# The transaction table is empty!

A transaction table was located, but none of its lines matched the expected
row format (date, description, amount, fee, balance).

## Things you can try:
- Run with verbose mode to see which lines were skipped:
~~~
$ pitvolut --verbose parse statement.pdf
~~~

- If your statement uses a different date format, set it in your config:
~~~cue
date_layout: "02-01-2006"
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Your config file contains syntax errors or invalid values.

## Common issues:
- Invalid CUE syntax (missing quotes, braces, etc.)
- Unknown field names
- An invalid regular expression in parser.table_start / parser.table_end
- An unknown ui.color_scheme (valid: auto, dark, light)

## Things you can try:
- Check the error message above for the specific line/column
- Show the resolved configuration:
~~~
$ pitvolut config show
~~~

- Start over from a fresh config:
~~~
$ pitvolut config init
~~~`,
	}

	invalidOutputFormatIssue = &Issue{
		id: InvalidOutputFormatId,
		mdMsg: `
# Unknown export format!

The --format you specified is not supported.

## Supported formats:
- **csv**: one row per transaction, header included
- **json**: the full statement object with amounts as exact strings

## Example:
~~~
$ pitvolut export statement.pdf --format csv -o transactions.csv
~~~`,
	}

	issues = map[Id]*Issue{
		statementNotFoundIssue.Id():    statementNotFoundIssue,
		statementUnreadableIssue.Id():  statementUnreadableIssue,
		noTransactionTableIssue.Id():   noTransactionTableIssue,
		noTransactionsParsedIssue.Id(): noTransactionsParsedIssue,
		configLoadFailedIssue.Id():     configLoadFailedIssue,
		invalidOutputFormatIssue.Id():  invalidOutputFormatIssue,
	}
)

func Get(id Id) *Issue {
	return issues[id]
}

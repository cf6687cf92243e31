// SPDX-License-Identifier: MPL-2.0

package pdf

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"pitvolut/internal/issue"

	"github.com/ledongthuc/pdf"
)

var (
	// ErrStatementNotFound is wrapped when the statement file does not exist.
	ErrStatementNotFound = errors.New("statement file not found")
	// ErrStatementUnreadable is wrapped when the file cannot be read as a PDF.
	ErrStatementUnreadable = errors.New("statement file unreadable")
)

// Extractor produces the plain text of a document at a filesystem path.
type Extractor interface {
	Extract(ctx context.Context, path string) (string, error)
}

type fileExtractor struct{}

// NewExtractor creates an Extractor backed by the document's text layer.
func NewExtractor() Extractor {
	return &fileExtractor{}
}

// Extract reads the PDF at path and returns the concatenated plain text of
// all pages in page order. Cancellation is checked before opening the file
// and between pages.
func (e *fileExtractor) Extract(ctx context.Context, path string) (string, error) {
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("extract canceled: %w", ctx.Err())
	default:
	}

	if _, err := os.Stat(path); err != nil {
		return "", issue.NewErrorContext().
			WithOperation("open statement PDF").
			WithResource(path).
			WithSuggestions(
				"Verify the file path is correct",
				"Check that the file exists and is readable").
			Wrap(fmt.Errorf("%w: %w", ErrStatementNotFound, err)).
			BuildError()
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", issue.NewErrorContext().
			WithOperation("read statement PDF").
			WithResource(path).
			WithSuggestions(
				"Check that the file is a valid PDF document",
				"Re-download the statement if the file may be truncated").
			Wrap(fmt.Errorf("%w: %w", ErrStatementUnreadable, err)).
			BuildError()
	}
	defer f.Close()

	var sb strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("extract canceled on page %d: %w", pageNum, ctx.Err())
		default:
		}

		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", issue.NewErrorContext().
				WithOperation("extract text").
				WithResource(fmt.Sprintf("%s (page %d)", path, pageNum)).
				WithSuggestion("Check that the PDF has a text layer (scanned statements are not supported)").
				Wrap(fmt.Errorf("%w: %w", ErrStatementUnreadable, err)).
				BuildError()
		}
		sb.WriteString(text)
	}

	return sb.String(), nil
}

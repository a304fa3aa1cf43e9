// Package cmd implements the command-line interface for literal.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/conatus/literal-tools/color"
	"github.com/conatus/literal-tools/icon"
	"github.com/conatus/literal-tools/literal"
	"github.com/conatus/literal-tools/style"
	"github.com/conatus/literal-tools/util"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

const progressBarWidth = 20

// readingOutput is the document printed by `literal --json`.
type readingOutput struct {
	Books []*literal.Book `json:"books" jsonschema:"description=Books on the currently reading shelf, in the order returned by Literal."`
}

func listReading(ctx context.Context, w io.Writer, asJson bool) error {
	client, token, err := session(ctx)
	if err != nil {
		return err
	}

	erase := util.PrintErasable(icon.Get(icon.Progress) + " Fetching currently reading books...")
	books, err := client.CurrentlyReading(ctx, token)
	erase()
	if err != nil {
		return err
	}

	if asJson {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(readingOutput{Books: books})
	}

	renderBooks(w, books, util.TerminalWidth(80))
	return nil
}

// renderBooks prints books one block each, wrapping descriptive text to width.
func renderBooks(w io.Writer, books []*literal.Book, width int) {
	if len(books) == 0 {
		_, _ = fmt.Fprintln(w, style.Faint("You are not reading anything right now"))
		return
	}

	_, _ = fmt.Fprintf(w, "%s\n\n", style.Title(fmt.Sprintf("Currently reading %s", util.Quantify(len(books), "book", "books"))))

	for i, book := range books {
		title := book.Title
		if book.Subtitle != "" {
			title += ": " + book.Subtitle
		}

		_, _ = fmt.Fprintf(w, "%s %s\n", icon.Get(icon.Book), style.Bold(wordwrap.String(title, width-2)))

		if authors := book.AuthorNames(); authors != "" {
			_, _ = fmt.Fprintln(w, indent.String(style.Italic(wordwrap.String("by "+authors, width-2)), 2))
		}

		if book.Progress != nil {
			_, _ = fmt.Fprintf(w, "  %s\n", progressBar(book.Progress.Percent()))
		}

		if url := book.URL(); url != "" {
			_, _ = fmt.Fprintf(w, "  %s\n", style.Fg(color.Blue)(url))
		}

		if i < len(books)-1 {
			_, _ = fmt.Fprintln(w)
		}
	}
}

func progressBar(percent int) string {
	filled := percent * progressBarWidth / 100
	bar := style.Fg(color.Green)(strings.Repeat("█", filled)) +
		style.Faint(strings.Repeat("░", progressBarWidth-filled))
	return fmt.Sprintf("%s %3d%%", bar, percent)
}

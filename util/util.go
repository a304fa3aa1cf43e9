// Package util provides a collection of domain-agnostic utility functions and cross-platform helpers.
package util

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Quantify returns a pluralized string representation of a count and its associated labels.
func Quantify(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// TerminalWidth returns the width of the terminal attached to stdout, or fallback when there is none.
func TerminalWidth(fallback int) int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}

// PrintErasable prints an ephemeral message to stderr and returns a closure to clear it.
func PrintErasable(msg string) (eraser func()) {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return func() {}
	}

	fmt.Fprintf(os.Stderr, "\r%s", msg)
	return func() {
		fmt.Fprint(os.Stderr, eraseLine(msg))
	}
}

// eraseLine blanks as many terminal cells as msg occupies and returns the cursor.
func eraseLine(msg string) string {
	return "\r" + strings.Repeat(" ", lipgloss.Width(msg)) + "\r"
}

// Package util provides text helpers shared by the views and the CLI.
package util

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Ellipsis is appended to truncated text.
const Ellipsis = "…"

// TruncateANSI truncates s to maxWidth visual columns, ending with an
// ellipsis when it was cut. Escape sequences and wide characters are
// measured correctly, so styled text can be passed in.
func TruncateANSI(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	// ansi.Truncate counts the tail in the final width
	return ansi.Truncate(s, maxWidth, Ellipsis)
}

// WrapANSI word-wraps s to width columns, keeping styling intact.
// A non-positive width returns s unchanged.
func WrapANSI(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Wordwrap(s, width, "")
}

// markdownMarks are the inline markers removed by PlainSummary.
var markdownMarks = strings.NewReplacer("**", "", "__", "", "`", "", "*", "", "_", "")

// PlainSummary returns the first paragraph of a short markdown text as a
// single plain line, for places that cannot render markdown.
func PlainSummary(md string) string {
	md = strings.TrimSpace(ansi.Strip(md))
	if md == "" {
		return ""
	}
	if i := strings.Index(md, "\n\n"); i >= 0 {
		md = md[:i]
	}
	var lines []string
	for _, line := range strings.Split(md, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "#>-"))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return markdownMarks.Replace(strings.Join(lines, " "))
}

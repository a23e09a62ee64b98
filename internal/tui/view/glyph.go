package view

import (
	"github.com/Iron-Ham/onboard/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// Icon sizes. Sizes at or above IconSizeLarge render bold.
const (
	IconSizeSmall = 16
	IconSizeLarge = 20
)

// glyphs maps icon ids to single-cell symbols.
var glyphs = map[string]string{
	"user":               "◉",
	"inbox":              "✉",
	"contacts":           "☎",
	"deal":               "◆",
	"task":               "☐",
	"team":               "⚑",
	"chat":               "✎",
	"book":               "❖",
	"filter":             "◔",
	"megaphone":          "➤",
	"plug":               "⚙",
	"arrow-left":         "←",
	"angle-double-right": "»",
	"check":              "✓",
	"times":              "✕",
}

// defaultGlyph is shown for unknown icon ids.
const defaultGlyph = "•"

// Glyph returns the symbol for iconID. Unknown ids render a bullet.
func Glyph(iconID string, size int) string {
	g, ok := glyphs[iconID]
	if !ok {
		g = defaultGlyph
	}
	if size >= IconSizeLarge {
		return lipgloss.NewStyle().Bold(true).Render(g)
	}
	return g
}

// ColoredGlyph renders Glyph in color. An empty color uses the theme primary.
func ColoredGlyph(iconID string, size int, color lipgloss.Color) string {
	if color == "" {
		color = styles.GetActiveTheme().PrimaryColor
	}
	style := lipgloss.NewStyle().Foreground(color)
	if size >= IconSizeLarge {
		style = style.Bold(true)
	}
	g, ok := glyphs[iconID]
	if !ok {
		g = defaultGlyph
	}
	return style.Render(g)
}

// HasGlyph reports whether iconID has a dedicated symbol.
func HasGlyph(iconID string) bool {
	_, ok := glyphs[iconID]
	return ok
}

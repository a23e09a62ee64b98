package view

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/onboard/internal/locale"
	"github.com/Iron-Ham/onboard/internal/onboard"
	"github.com/Iron-Ham/onboard/internal/tui/styles"
	"github.com/Iron-Ham/onboard/internal/util"
	"github.com/charmbracelet/glamour"
)

// FeatureDetailView renders the selected feature with its description as
// markdown. The glamour renderer is rebuilt only when the width changes.
type FeatureDetailView struct {
	tr       *locale.Translator
	style    string
	width    int
	renderer *glamour.TermRenderer
}

// Glamour styles for NewFeatureDetailView.
const (
	MarkdownStyleDark  = "dark"
	MarkdownStyleLight = "light"
	MarkdownStyleASCII = "ascii"
)

// NewFeatureDetailView creates a detail view using the named glamour style.
func NewFeatureDetailView(tr *locale.Translator, style string) *FeatureDetailView {
	if style == "" {
		style = MarkdownStyleDark
	}
	return &FeatureDetailView{tr: translator(tr), style: style}
}

// Render renders f within width columns.
func (v *FeatureDetailView) Render(f onboard.Feature, width int) string {
	s := styles.GetActiveTheme()

	var b strings.Builder
	title := f.Text
	if title == "" {
		title = f.Name
	}
	b.WriteString(ColoredGlyph(f.Icon, IconSizeLarge, s.FeatureColor(f.Color, 0)))
	b.WriteString(" ")
	b.WriteString(s.Title.UnsetMarginBottom().Render(title))
	if f.IsComplete {
		b.WriteString("  ")
		b.WriteString(s.FeatureComplete.Render(Glyph("check", IconSizeSmall) + " " + v.tr.T("Completed")))
	}
	b.WriteString("\n")

	if body := v.markdown(f.Description, width); body != "" {
		b.WriteString(body)
	}
	return strings.TrimRight(b.String(), "\n")
}

// markdown renders md, falling back to wrapped plain text when glamour
// cannot render it.
func (v *FeatureDetailView) markdown(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if err := v.ensureRenderer(width); err == nil {
		if out, err := v.renderer.Render(md); err == nil {
			return strings.Trim(out, "\n")
		}
	}
	return util.WrapANSI(md, width)
}

func (v *FeatureDetailView) ensureRenderer(width int) error {
	if width < 1 {
		width = 1
	}
	if v.renderer != nil && v.width == width {
		return nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(v.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fmt.Errorf("creating markdown renderer: %w", err)
	}
	v.renderer = r
	v.width = width
	return nil
}

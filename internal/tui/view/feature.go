package view

import (
	"strings"

	"github.com/Iron-Ham/onboard/internal/locale"
	"github.com/Iron-Ham/onboard/internal/onboard"
	"github.com/Iron-Ham/onboard/internal/tui/styles"
	"github.com/Iron-Ham/onboard/internal/util"
	"github.com/charmbracelet/lipgloss"
)

// ActionItem renders one feature summary of the feature list, laid out
// vertically: icon and title, then a one-line description, then the
// completion mark when the feature is done.
type ActionItem struct {
	tr    *locale.Translator
	width int
}

// NewActionItem creates an ActionItem that fits width columns.
func NewActionItem(tr *locale.Translator, width int) *ActionItem {
	return &ActionItem{tr: translator(tr), width: width}
}

// Render renders f. index picks a fallback accent for features without a
// color so neighbors differ.
func (v *ActionItem) Render(f onboard.Feature, index int, focused bool) string {
	s := styles.GetActiveTheme()
	inner := v.width - 2 // room for the focus bar

	var b strings.Builder
	icon := ColoredGlyph(f.Icon, IconSizeLarge, s.FeatureColor(f.Color, index))
	title := f.Text
	if title == "" {
		title = f.Name
	}
	b.WriteString(icon + " " + util.TruncateANSI(s.FeatureTitle.Render(title), inner-2))

	if desc := util.PlainSummary(f.Description); desc != "" {
		b.WriteString("\n  ")
		b.WriteString(s.FeatureDesc.Render(util.TruncateANSI(desc, inner-2)))
	}

	if f.IsComplete {
		b.WriteString("\n  ")
		b.WriteString(s.FeatureComplete.Render(Glyph("check", IconSizeSmall) + " " + v.tr.T("Completed")))
	}

	if focused {
		return s.FeatureFocused.Render(b.String())
	}
	return lipgloss.NewStyle().PaddingLeft(2).Render(b.String())
}

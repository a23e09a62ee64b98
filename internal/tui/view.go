package tui

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/onboard/internal/onboard"
	"github.com/Iron-Ham/onboard/internal/tui/keymap"
	"github.com/Iron-Ham/onboard/internal/tui/panel"
	"github.com/Iron-Ham/onboard/internal/tui/styles"
	"github.com/Iron-Ham/onboard/internal/tui/view"
	"github.com/Iron-Ham/onboard/internal/util"
	"github.com/charmbracelet/lipgloss"
)

// View renders the model
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.quitting {
		return "Goodbye!\n"
	}

	s := styles.GetActiveTheme()
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	panelWidth, panelHeight := CalculatePanelDimensions(m.width, m.height, m.panelWidth)
	panelView := m.panel.Render(&panel.RenderState{
		Width:        panelWidth,
		Height:       panelHeight,
		Theme:        styles.NewTheme(),
		Focused:      m.keyMode() != keymap.ModeHome,
		HelpSections: panel.HelpSectionsFromKeymap(m.keys, keymap.ModePanel),
	})

	switch {
	case panelView == "":
		b.WriteString(m.renderHome(m.width))
	case sideBySide(m.width, panelWidth):
		homeWidth := m.width - panelWidth - PanelGap
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(homeWidth).Render(m.renderHome(homeWidth)),
			strings.Repeat(" ", PanelGap),
			panelView,
		))
	default:
		b.WriteString(panelView)
	}

	b.WriteString("\n")
	if m.errorMessage != "" {
		b.WriteString(s.ErrorMsg.Render(m.errorMessage))
	} else if m.infoMessage != "" {
		b.WriteString(s.SuccessMsg.Render(m.infoMessage))
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderHeader renders the title line with the onboarding progress.
func (m Model) renderHeader() string {
	s := styles.GetActiveTheme()
	title := s.Title.Render("onboard")
	progress := s.Muted.Render(fmt.Sprintf("%d/%d %s",
		onboard.CountComplete(m.features), len(m.features), m.tr.T("features complete")))
	return title + "  " + progress
}

// renderHome renders the area behind the panel: the greeting and a compact
// checklist of every feature.
func (m Model) renderHome(width int) string {
	s := styles.GetActiveTheme()
	var b strings.Builder

	b.WriteString(s.Text.Bold(true).Render(fmt.Sprintf("%s, %s", m.tr.T("Welcome"), onboard.DisplayName(m.user))))
	b.WriteString("\n\n")

	for i, f := range m.features {
		mark := s.Muted.Render("○")
		if f.IsComplete {
			mark = s.Secondary.Render("✓")
		}
		icon := view.ColoredGlyph(f.Icon, view.IconSizeSmall, s.FeatureColor(f.Color, i))
		line := fmt.Sprintf("%s %s %s", mark, icon, f.Text)
		b.WriteString(util.TruncateANSI(line, width))
		b.WriteString("\n")
	}

	if !m.show {
		b.WriteString("\n")
		b.WriteString(s.Muted.Render(m.tr.T("Press o to open onboarding")))
	}
	return b.String()
}

// renderHelpBar renders the bindings of the current key mode.
func (m Model) renderHelpBar() string {
	s := styles.GetActiveTheme()
	bindings := m.keys.GetModeBindings(m.keyMode())

	parts := make([]string, 0, len(bindings))
	seen := make(map[keymap.Command]bool)
	for _, kb := range bindings {
		if seen[kb.Command] {
			continue
		}
		seen[kb.Command] = true
		parts = append(parts, s.HelpKey.Render(kb.String())+" "+kb.Description())
	}
	return s.HelpBar.Render(util.TruncateANSI(strings.Join(parts, "  "), max(m.width, 1)))
}

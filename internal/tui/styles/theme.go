package styles

import "github.com/charmbracelet/lipgloss"

// Theme implements panel.Theme by wrapping the active themed styles.
//
// The interface is defined in internal/tui/panel/renderer.go to avoid
// circular imports between styles and panel packages.
type Theme struct{}

// NewTheme creates a new Theme instance.
func NewTheme() *Theme {
	return &Theme{}
}

func (t *Theme) Primary() lipgloss.Style   { return activeTheme.Primary }
func (t *Theme) Secondary() lipgloss.Style { return activeTheme.HelpKey } // HelpKey reads better than plain green
func (t *Theme) Muted() lipgloss.Style     { return activeTheme.Muted }
func (t *Theme) Error() lipgloss.Style     { return activeTheme.Error }
func (t *Theme) Warning() lipgloss.Style   { return activeTheme.Warning }
func (t *Theme) Surface() lipgloss.Style   { return activeTheme.Surface }

func (t *Theme) Border() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(activeTheme.BorderColor)
}

// Styles exposes the full onboarding style set.
func (t *Theme) Styles() *ThemedStyles { return activeTheme }

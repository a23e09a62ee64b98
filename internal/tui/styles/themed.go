package styles

import "github.com/charmbracelet/lipgloss"

// ThemedStyles is the style set built from one color palette. Every
// renderer reads it through GetActiveTheme so a theme switch restyles the
// whole UI.
type ThemedStyles struct {
	PrimaryColor   lipgloss.Color
	SecondaryColor lipgloss.Color
	BorderColor    lipgloss.Color

	accents []lipgloss.Color

	// Convenience styles for colors
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Muted     lipgloss.Style
	Surface   lipgloss.Style
	Text      lipgloss.Style

	// Base styles
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Help bar
	HelpBar lipgloss.Style
	HelpKey lipgloss.Style

	// Onboarding panel
	PanelBox        lipgloss.Style
	Greeting        lipgloss.Style
	Button          lipgloss.Style
	ButtonFocused   lipgloss.Style
	Link            lipgloss.Style
	LinkFocused     lipgloss.Style
	FeatureTitle    lipgloss.Style
	FeatureDesc     lipgloss.Style
	FeatureFocused  lipgloss.Style
	FeatureComplete lipgloss.Style
	CloseControl    lipgloss.Style

	// Messages
	ErrorMsg   lipgloss.Style
	SuccessMsg lipgloss.Style
}

// NewThemedStyles creates a ThemedStyles from the given color palette.
func NewThemedStyles(p *ColorPalette) *ThemedStyles {
	s := &ThemedStyles{
		PrimaryColor:   p.Primary,
		SecondaryColor: p.Secondary,
		BorderColor:    p.Border,
		accents:        p.Accents(),
	}

	s.Primary = lipgloss.NewStyle().Foreground(p.Primary)
	s.Secondary = lipgloss.NewStyle().Foreground(p.Secondary)
	s.Warning = lipgloss.NewStyle().Foreground(p.Warning)
	s.Error = lipgloss.NewStyle().Foreground(p.Error)
	s.Muted = lipgloss.NewStyle().Foreground(p.Muted)
	s.Surface = lipgloss.NewStyle().Background(p.Surface)
	s.Text = lipgloss.NewStyle().Foreground(p.Text)

	s.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		MarginBottom(1)

	s.Subtitle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)

	s.HelpBar = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)

	s.HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Secondary)

	s.PanelBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(1, 2)

	s.Greeting = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text)

	s.Button = lipgloss.NewStyle().
		Foreground(p.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 2)

	s.ButtonFocused = s.Button.
		Bold(true).
		BorderForeground(p.Primary).
		Foreground(p.Primary)

	s.Link = lipgloss.NewStyle().
		Foreground(p.Muted).
		Underline(true)

	s.LinkFocused = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true).
		Underline(true)

	s.FeatureTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text)

	s.FeatureDesc = lipgloss.NewStyle().
		Foreground(p.Muted)

	s.FeatureFocused = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(p.Primary).
		PaddingLeft(1)

	s.FeatureComplete = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Bold(true)

	s.CloseControl = lipgloss.NewStyle().
		Foreground(p.Muted)

	s.ErrorMsg = lipgloss.NewStyle().
		Foreground(p.Error).
		Bold(true)

	s.SuccessMsg = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Bold(true)

	return s
}

// FeatureColor returns the color for a feature. Features without a color
// take an accent chosen by their position so neighbors differ.
func (s *ThemedStyles) FeatureColor(color string, index int) lipgloss.Color {
	if color != "" {
		return lipgloss.Color(color)
	}
	if len(s.accents) == 0 {
		return s.PrimaryColor
	}
	if index < 0 {
		index = -index
	}
	return s.accents[index%len(s.accents)]
}

// activeTheme holds the currently active themed styles.
var activeTheme *ThemedStyles

// activeThemeName is the name last passed to SetActiveTheme.
var activeThemeName = ThemeDefault

func init() {
	activeTheme = NewThemedStyles(DefaultPalette())
}

// SetActiveTheme rebuilds the active styles from the named palette.
// Unknown names fall back to the default palette. It is not safe for
// concurrent use; call it before the program starts.
func SetActiveTheme(name ThemeName) {
	activeTheme = NewThemedStyles(GetPalette(name))
	activeThemeName = name
}

// GetActiveThemeName returns the name of the active theme.
func GetActiveThemeName() ThemeName {
	return activeThemeName
}

// GetActiveTheme returns the currently active themed styles.
func GetActiveTheme() *ThemedStyles {
	return activeTheme
}

package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName represents a named color theme.
type ThemeName string

// Available theme names.
const (
	ThemeDefault ThemeName = "default" // Purple/green dark theme
	ThemeMonokai ThemeName = "monokai" // Classic Monokai editor colors
	ThemeDracula ThemeName = "dracula" // Dracula theme colors
	ThemeNord    ThemeName = "nord"    // Nord theme - cool blue-gray
	ThemeGruvbox ThemeName = "gruvbox" // Gruvbox retro groove
)

// BuiltinThemes returns all built-in theme names.
func BuiltinThemes() []string {
	return []string{
		string(ThemeDefault),
		string(ThemeMonokai),
		string(ThemeDracula),
		string(ThemeNord),
		string(ThemeGruvbox),
	}
}

// ValidThemes returns all valid theme names (built-in + custom).
func ValidThemes() []string {
	themes := BuiltinThemes()
	themes = append(themes, CustomThemeNames()...)
	return themes
}

// IsValidTheme checks if a theme name is valid (built-in or custom).
func IsValidTheme(name string) bool {
	if slices.Contains(BuiltinThemes(), name) {
		return true
	}
	return IsCustomTheme(name)
}

// ColorPalette defines the color scheme for a theme.
type ColorPalette struct {
	// Primary accent color (focus ring, titles)
	Primary lipgloss.Color
	// Secondary accent color (completed features, key hints)
	Secondary lipgloss.Color
	// Warning color
	Warning lipgloss.Color
	// Error color
	Error lipgloss.Color
	// Muted color (descriptions, hints)
	Muted lipgloss.Color
	// Surface color (panel background)
	Surface lipgloss.Color
	// Text color
	Text lipgloss.Color
	// Border color (panel border)
	Border lipgloss.Color

	// Accent colors, used as fallbacks for feature icons
	Blue   lipgloss.Color
	Yellow lipgloss.Color
	Purple lipgloss.Color
	Pink   lipgloss.Color
	Orange lipgloss.Color
}

// Accents returns the accent colors in a fixed order.
func (p *ColorPalette) Accents() []lipgloss.Color {
	return []lipgloss.Color{p.Purple, p.Blue, p.Secondary, p.Yellow, p.Pink, p.Orange}
}

// DefaultPalette returns the default purple/green dark theme palette.
func DefaultPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#A78BFA"), // Purple (violet-400)
		Secondary: lipgloss.Color("#10B981"), // Green
		Warning:   lipgloss.Color("#F59E0B"), // Amber
		Error:     lipgloss.Color("#F87171"), // Red (red-400)
		Muted:     lipgloss.Color("#9CA3AF"), // Gray
		Surface:   lipgloss.Color("#1F2937"), // Dark surface
		Text:      lipgloss.Color("#F9FAFB"), // Light text
		Border:    lipgloss.Color("#6B7280"), // Gray-500

		Blue:   lipgloss.Color("#60A5FA"),
		Yellow: lipgloss.Color("#FBBF24"),
		Purple: lipgloss.Color("#A78BFA"),
		Pink:   lipgloss.Color("#F472B6"),
		Orange: lipgloss.Color("#FB923C"),
	}
}

// MonokaiPalette returns the classic Monokai editor theme palette.
func MonokaiPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#F92672"), // Monokai pink/magenta
		Secondary: lipgloss.Color("#A6E22E"), // Monokai green
		Warning:   lipgloss.Color("#E6DB74"), // Monokai yellow
		Error:     lipgloss.Color("#F92672"),
		Muted:     lipgloss.Color("#75715E"), // Monokai comment gray
		Surface:   lipgloss.Color("#272822"),
		Text:      lipgloss.Color("#F8F8F2"),
		Border:    lipgloss.Color("#49483E"),

		Blue:   lipgloss.Color("#66D9EF"), // Cyan
		Yellow: lipgloss.Color("#E6DB74"),
		Purple: lipgloss.Color("#AE81FF"),
		Pink:   lipgloss.Color("#F92672"),
		Orange: lipgloss.Color("#FD971F"),
	}
}

// DraculaPalette returns the Dracula theme palette.
func DraculaPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#BD93F9"), // Dracula purple
		Secondary: lipgloss.Color("#50FA7B"), // Dracula green
		Warning:   lipgloss.Color("#F1FA8C"),
		Error:     lipgloss.Color("#FF5555"),
		Muted:     lipgloss.Color("#6272A4"), // Dracula comment
		Surface:   lipgloss.Color("#282A36"),
		Text:      lipgloss.Color("#F8F8F2"),
		Border:    lipgloss.Color("#44475A"),

		Blue:   lipgloss.Color("#8BE9FD"), // Cyan
		Yellow: lipgloss.Color("#F1FA8C"),
		Purple: lipgloss.Color("#BD93F9"),
		Pink:   lipgloss.Color("#FF79C6"),
		Orange: lipgloss.Color("#FFB86C"),
	}
}

// NordPalette returns the Nord theme palette.
func NordPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#88C0D0"), // Nord frost (cyan)
		Secondary: lipgloss.Color("#A3BE8C"), // Nord aurora green
		Warning:   lipgloss.Color("#EBCB8B"),
		Error:     lipgloss.Color("#BF616A"),
		Muted:     lipgloss.Color("#4C566A"), // Nord polar night 3
		Surface:   lipgloss.Color("#2E3440"),
		Text:      lipgloss.Color("#ECEFF4"),
		Border:    lipgloss.Color("#3B4252"),

		Blue:   lipgloss.Color("#81A1C1"),
		Yellow: lipgloss.Color("#EBCB8B"),
		Purple: lipgloss.Color("#B48EAD"),
		Pink:   lipgloss.Color("#B48EAD"), // Nord doesn't have pink, use purple
		Orange: lipgloss.Color("#D08770"),
	}
}

// GruvboxPalette returns the Gruvbox dark palette.
func GruvboxPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#FE8019"), // Gruvbox orange
		Secondary: lipgloss.Color("#B8BB26"), // Gruvbox green
		Warning:   lipgloss.Color("#FABD2F"),
		Error:     lipgloss.Color("#FB4934"),
		Muted:     lipgloss.Color("#928374"),
		Surface:   lipgloss.Color("#282828"),
		Text:      lipgloss.Color("#EBDBB2"),
		Border:    lipgloss.Color("#504945"),

		Blue:   lipgloss.Color("#83A598"),
		Yellow: lipgloss.Color("#FABD2F"),
		Purple: lipgloss.Color("#D3869B"),
		Pink:   lipgloss.Color("#D3869B"),
		Orange: lipgloss.Color("#FE8019"),
	}
}

// GetPalette returns the color palette for the given theme name.
// Checks custom themes first, then falls back to built-in themes.
// Returns the default palette for unknown theme names.
func GetPalette(name ThemeName) *ColorPalette {
	if custom := GetCustomTheme(name); custom != nil {
		return custom.ToPalette()
	}

	switch name {
	case ThemeMonokai:
		return MonokaiPalette()
	case ThemeDracula:
		return DraculaPalette()
	case ThemeNord:
		return NordPalette()
	case ThemeGruvbox:
		return GruvboxPalette()
	default:
		return DefaultPalette()
	}
}

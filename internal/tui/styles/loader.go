package styles

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ThemeFile is a custom theme loaded from the themes directory.
//
// Example:
//
//	name: sunrise
//	version: "1"
//	colors:
//	  primary: "#FF8800"
//	  secondary: "#22C55E"
//	  ...
//	  accents:
//	    blue: "#3B82F6"
type ThemeFile struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Version     string      `yaml:"version"`
	Colors      ThemeColors `yaml:"colors"`
}

// ThemeColors holds the required base colors and optional accents.
type ThemeColors struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Warning   string `yaml:"warning"`
	Error     string `yaml:"error"`
	Muted     string `yaml:"muted"`
	Surface   string `yaml:"surface"`
	Text      string `yaml:"text"`
	Border    string `yaml:"border"`

	Accents ThemeAccentColors `yaml:"accents,omitempty"`
}

// ThemeAccentColors are optional; missing values derive from base colors.
type ThemeAccentColors struct {
	Blue   string `yaml:"blue,omitempty"`
	Yellow string `yaml:"yellow,omitempty"`
	Purple string `yaml:"purple,omitempty"`
	Pink   string `yaml:"pink,omitempty"`
	Orange string `yaml:"orange,omitempty"`
}

var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// LoadThemeFile reads and validates a theme file.
func LoadThemeFile(path string) (*ThemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var theme ThemeFile
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	if err := theme.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}

	return &theme, nil
}

// Validate checks required fields and color formats.
func (t *ThemeFile) Validate() error {
	if t.Name == "" {
		return errors.New("theme name is required")
	}
	if t.Version != "1" {
		return fmt.Errorf("unsupported theme version: %q (supported: 1)", t.Version)
	}

	required := []struct{ name, color string }{
		{"primary", t.Colors.Primary},
		{"secondary", t.Colors.Secondary},
		{"warning", t.Colors.Warning},
		{"error", t.Colors.Error},
		{"muted", t.Colors.Muted},
		{"surface", t.Colors.Surface},
		{"text", t.Colors.Text},
		{"border", t.Colors.Border},
	}
	for _, c := range required {
		if c.color == "" {
			return fmt.Errorf("color '%s' is required", c.name)
		}
		if !hexColorRegex.MatchString(c.color) {
			return fmt.Errorf("color '%s' has invalid format: %s (expected #RGB or #RRGGBB)", c.name, c.color)
		}
	}

	optional := []struct{ name, color string }{
		{"accents.blue", t.Colors.Accents.Blue},
		{"accents.yellow", t.Colors.Accents.Yellow},
		{"accents.purple", t.Colors.Accents.Purple},
		{"accents.pink", t.Colors.Accents.Pink},
		{"accents.orange", t.Colors.Accents.Orange},
	}
	for _, c := range optional {
		if c.color != "" && !hexColorRegex.MatchString(c.color) {
			return fmt.Errorf("color '%s' has invalid format: %s (expected #RGB or #RRGGBB)", c.name, c.color)
		}
	}

	return nil
}

// ToPalette converts the theme file to a ColorPalette.
func (t *ThemeFile) ToPalette() *ColorPalette {
	c := t.Colors
	return &ColorPalette{
		Primary:   lipgloss.Color(c.Primary),
		Secondary: lipgloss.Color(c.Secondary),
		Warning:   lipgloss.Color(c.Warning),
		Error:     lipgloss.Color(c.Error),
		Muted:     lipgloss.Color(c.Muted),
		Surface:   lipgloss.Color(c.Surface),
		Text:      lipgloss.Color(c.Text),
		Border:    lipgloss.Color(c.Border),

		Blue:   colorOrDefault(c.Accents.Blue, c.Primary),
		Yellow: colorOrDefault(c.Accents.Yellow, c.Warning),
		Purple: colorOrDefault(c.Accents.Purple, c.Primary),
		Pink:   colorOrDefault(c.Accents.Pink, c.Primary),
		Orange: colorOrDefault(c.Accents.Orange, c.Warning),
	}
}

func colorOrDefault(color, defaultColor string) lipgloss.Color {
	if color != "" {
		return lipgloss.Color(color)
	}
	return lipgloss.Color(defaultColor)
}

// customThemes stores registered custom themes.
var customThemes = make(map[ThemeName]*ThemeFile)

// RegisterCustomTheme makes a custom theme selectable by name.
func RegisterCustomTheme(name ThemeName, theme *ThemeFile) {
	customThemes[name] = theme
}

// GetCustomTheme returns a registered custom theme, or nil.
func GetCustomTheme(name ThemeName) *ThemeFile {
	return customThemes[name]
}

// CustomThemeNames returns the registered custom theme names, sorted.
func CustomThemeNames() []string {
	names := make([]string, 0, len(customThemes))
	for name := range customThemes {
		names = append(names, string(name))
	}
	slices.Sort(names)
	return names
}

// ClearCustomThemes removes all registered custom themes.
func ClearCustomThemes() {
	customThemes = make(map[ThemeName]*ThemeFile)
}

// IsBuiltinTheme checks if a theme name is a built-in theme.
func IsBuiltinTheme(name string) bool {
	return slices.Contains(BuiltinThemes(), name)
}

// IsCustomTheme checks if a theme name is a registered custom theme.
func IsCustomTheme(name string) bool {
	_, ok := customThemes[ThemeName(name)]
	return ok
}

// DiscoverCustomThemes loads every *.yaml or *.yml file in dir as a custom
// theme named after the file. A missing directory is not an error. Invalid
// files are skipped and reported.
func DiscoverCustomThemes(dir string) ([]string, []error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, []error{fmt.Errorf("reading themes directory: %w", err)}
	}

	var loaded []string
	var errs []error

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := filepath.Ext(name)
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		theme, err := LoadThemeFile(filepath.Join(dir, name))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}

		themeName := strings.TrimSuffix(name, ext)
		if IsBuiltinTheme(themeName) {
			errs = append(errs, fmt.Errorf("%s: cannot override built-in theme '%s'", name, themeName))
			continue
		}

		RegisterCustomTheme(ThemeName(themeName), theme)
		loaded = append(loaded, themeName)
	}

	return loaded, errs
}

// ThemeFileFromPalette converts a palette to the theme file format.
func ThemeFileFromPalette(name string, p *ColorPalette) *ThemeFile {
	return &ThemeFile{
		Name:    name,
		Version: "1",
		Colors: ThemeColors{
			Primary:   string(p.Primary),
			Secondary: string(p.Secondary),
			Warning:   string(p.Warning),
			Error:     string(p.Error),
			Muted:     string(p.Muted),
			Surface:   string(p.Surface),
			Text:      string(p.Text),
			Border:    string(p.Border),
			Accents: ThemeAccentColors{
				Blue:   string(p.Blue),
				Yellow: string(p.Yellow),
				Purple: string(p.Purple),
				Pink:   string(p.Pink),
				Orange: string(p.Orange),
			},
		},
	}
}

// ExportTheme returns the YAML form of a built-in or custom theme.
func ExportTheme(name ThemeName) ([]byte, error) {
	if !IsValidTheme(string(name)) {
		return nil, fmt.Errorf("unknown theme: %s", name)
	}
	theme := GetCustomTheme(name)
	if theme == nil {
		theme = ThemeFileFromPalette(string(name), GetPalette(name))
	}
	return yaml.Marshal(theme)
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	appconfig "github.com/Iron-Ham/onboard/internal/config"
	"github.com/Iron-Ham/onboard/internal/tui/styles"
	"github.com/Iron-Ham/onboard/internal/util"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage color themes",
	Long: `Manage color themes for the onboarding panel.

Custom themes are YAML files in ~/.config/onboard/themes/. Use 'theme list'
to see all available themes and 'theme export' to start a custom one.`,
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available themes",
	RunE:  runThemeList,
}

var themeExportCmd = &cobra.Command{
	Use:   "export <theme-name> [output-file]",
	Short: "Export a theme to YAML",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runThemeExport,
}

var themeInfoCmd = &cobra.Command{
	Use:   "info <theme-name>",
	Short: "Show information about a theme",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemeInfo,
}

var themeCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new custom theme from the default palette",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemeCreate,
}

// themesDir is replaced in tests.
var themesDir = appconfig.ThemesDir

func init() {
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeExportCmd)
	themeCmd.AddCommand(themeInfoCmd)
	themeCmd.AddCommand(themeCreateCmd)
	configCmd.AddCommand(themeCmd)
}

// discoverThemes registers custom themes and reports load failures on
// stderr.
func discoverThemes(cmd *cobra.Command) []error {
	_, errs := styles.DiscoverCustomThemes(themesDir())
	if len(errs) > 0 {
		w := cmd.ErrOrStderr()
		_, _ = fmt.Fprintln(w, "Warning: Some themes failed to load:")
		for _, err := range errs {
			_, _ = fmt.Fprintf(w, "  - %v\n", err)
		}
		_, _ = fmt.Fprintln(w)
	}
	return errs
}

// unknownThemeError explains why name is not selectable.
func unknownThemeError(name string, loadErrs []error) error {
	for _, err := range loadErrs {
		if strings.HasPrefix(err.Error(), name+".yaml:") || strings.HasPrefix(err.Error(), name+".yml:") {
			return fmt.Errorf("theme '%s' exists but failed to load: %w", name, err)
		}
	}
	return fmt.Errorf("unknown theme: %s%s\n\nRun 'onboard config theme list' to see available themes.\nCustom themes should be placed in: %s",
		name, util.DidYouMean(name, styles.ValidThemes()), themesDir())
}

func runThemeList(cmd *cobra.Command, args []string) error {
	discoverThemes(cmd)
	w := cmd.OutOrStdout()

	_, _ = fmt.Fprintln(w, "Built-in themes:")
	for _, name := range styles.BuiltinThemes() {
		_, _ = fmt.Fprintf(w, "  - %s\n", name)
	}

	if custom := styles.CustomThemeNames(); len(custom) > 0 {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, "Custom themes:")
		for _, name := range custom {
			theme := styles.GetCustomTheme(styles.ThemeName(name))
			if theme != nil && theme.Description != "" {
				_, _ = fmt.Fprintf(w, "  - %s (%s)\n", name, theme.Description)
			} else {
				_, _ = fmt.Fprintf(w, "  - %s\n", name)
			}
		}
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "Custom themes directory: %s\n", themesDir())
	return nil
}

func runThemeExport(cmd *cobra.Command, args []string) error {
	name := args[0]
	loadErrs := discoverThemes(cmd)
	if !styles.IsValidTheme(name) {
		return unknownThemeError(name, loadErrs)
	}

	data, err := styles.ExportTheme(styles.ThemeName(name))
	if err != nil {
		return fmt.Errorf("exporting theme: %w", err)
	}

	if len(args) > 1 {
		if err := os.WriteFile(args[1], data, 0o644); err != nil {
			return fmt.Errorf("writing to %s: %w", args[1], err)
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Theme exported to: %s\n", args[1])
		return nil
	}

	_, _ = fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func runThemeInfo(cmd *cobra.Command, args []string) error {
	name := args[0]
	loadErrs := discoverThemes(cmd)
	if !styles.IsValidTheme(name) {
		return unknownThemeError(name, loadErrs)
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "Theme: %s\n", name)
	if styles.IsBuiltinTheme(name) {
		_, _ = fmt.Fprintln(w, "Type: Built-in")
	} else {
		_, _ = fmt.Fprintln(w, "Type: Custom")
		if theme := styles.GetCustomTheme(styles.ThemeName(name)); theme != nil && theme.Description != "" {
			_, _ = fmt.Fprintf(w, "Description: %s\n", theme.Description)
		}
	}

	palette := styles.GetPalette(styles.ThemeName(name))
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Colors:")
	_, _ = fmt.Fprintf(w, "  Primary:   %s\n", palette.Primary)
	_, _ = fmt.Fprintf(w, "  Secondary: %s\n", palette.Secondary)
	_, _ = fmt.Fprintf(w, "  Warning:   %s\n", palette.Warning)
	_, _ = fmt.Fprintf(w, "  Error:     %s\n", palette.Error)
	_, _ = fmt.Fprintf(w, "  Muted:     %s\n", palette.Muted)
	_, _ = fmt.Fprintf(w, "  Surface:   %s\n", palette.Surface)
	_, _ = fmt.Fprintf(w, "  Text:      %s\n", palette.Text)
	_, _ = fmt.Fprintf(w, "  Border:    %s\n", palette.Border)
	return nil
}

func runThemeCreate(cmd *cobra.Command, args []string) error {
	name := args[0]

	if name == "" || strings.ContainsAny(name, "/\\:*?\"<>|") {
		return fmt.Errorf("invalid theme name: %q", name)
	}
	if styles.IsBuiltinTheme(name) {
		return fmt.Errorf("cannot create custom theme with built-in name '%s'", name)
	}

	dir := themesDir()
	path := filepath.Join(dir, name+".yaml")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("theme '%s' already exists at %s", name, path)
	}

	theme := styles.ThemeFileFromPalette(name, styles.GetPalette(styles.ThemeDefault))
	theme.Description = "A custom onboard theme"
	data, err := yaml.Marshal(theme)
	if err != nil {
		return fmt.Errorf("encoding theme: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating themes directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("creating theme: %w", err)
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "Created new theme: %s\n", path)
	_, _ = fmt.Fprintf(w, "To use it, run:\n  onboard config set tui.theme %s\n", name)
	return nil
}

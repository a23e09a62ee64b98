// Package config provides CLI commands for managing onboard configuration.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	appconfig "github.com/Iron-Ham/onboard/internal/config"
	"github.com/Iron-Ham/onboard/internal/locale"
	"github.com/Iron-Ham/onboard/internal/logging"
	"github.com/Iron-Ham/onboard/internal/onboard"
	"github.com/Iron-Ham/onboard/internal/tui/styles"
	"github.com/Iron-Ham/onboard/internal/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify onboard configuration",
	Long: `View or modify onboard configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  onboard config set tui.theme nord
  onboard config set onboarding.feature_limit 5

Valid keys:
  tui.theme                 - Color theme
  tui.language              - Panel language (en, es)
  tui.panel_width           - Panel column width
  tui.alt_screen            - Use the full terminal (true/false)
  onboarding.feature_limit  - Features shown before "Explore more"
  onboarding.animation_ms   - Show/hide animation length
  onboarding.initial_step   - Starting step
  onboarding.features_file  - Feature catalog file
  onboarding.watch_features - Reload the catalog on change (true/false)
  user.username             - Name to greet
  logging.enabled           - Write a log file (true/false)
  logging.level             - debug, info, warn or error`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/onboard/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

// Register adds all config-related commands to the given parent command.
func Register(parent *cobra.Command) {
	parent.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := appconfig.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	w := cmd.OutOrStdout()

	_, _ = fmt.Fprintln(w, "Current configuration:")
	_, _ = fmt.Fprintln(w)

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		_, _ = fmt.Fprintf(w, "Config file: %s\n", viper.ConfigFileUsed())
	} else {
		_, _ = fmt.Fprintln(w, "Config file: (none - using defaults)")
	}
	_, _ = fmt.Fprintln(w)

	printConfig(w, cfg)
	return nil
}

func printConfig(w io.Writer, cfg *appconfig.Config) {
	_, _ = fmt.Fprintln(w, "tui:")
	_, _ = fmt.Fprintf(w, "  theme: %s\n", cfg.TUI.Theme)
	_, _ = fmt.Fprintf(w, "  language: %s\n", cfg.TUI.Language)
	_, _ = fmt.Fprintf(w, "  panel_width: %d\n", cfg.TUI.PanelWidth)
	_, _ = fmt.Fprintf(w, "  alt_screen: %v\n", cfg.TUI.AltScreen)

	_, _ = fmt.Fprintln(w, "onboarding:")
	_, _ = fmt.Fprintf(w, "  feature_limit: %d\n", cfg.Onboarding.FeatureLimit)
	_, _ = fmt.Fprintf(w, "  animation_ms: %d\n", cfg.Onboarding.AnimationMs)
	_, _ = fmt.Fprintf(w, "  animation_fps: %d\n", cfg.Onboarding.AnimationFPS)
	_, _ = fmt.Fprintf(w, "  initial_step: %q\n", cfg.Onboarding.InitialStep)
	_, _ = fmt.Fprintf(w, "  features_file: %q\n", cfg.Onboarding.FeaturesFile)
	_, _ = fmt.Fprintf(w, "  watch_features: %v\n", cfg.Onboarding.WatchFeatures)

	_, _ = fmt.Fprintln(w, "user:")
	_, _ = fmt.Fprintf(w, "  display name: %s\n", onboard.DisplayName(onboard.User{
		Username:  cfg.User.Username,
		FirstName: cfg.User.FirstName,
		LastName:  cfg.User.LastName,
		Email:     cfg.User.Email,
	}))

	_, _ = fmt.Fprintln(w, "logging:")
	_, _ = fmt.Fprintf(w, "  enabled: %v\n", cfg.Logging.Enabled)
	_, _ = fmt.Fprintf(w, "  level: %s\n", cfg.Logging.Level)
	_, _ = fmt.Fprintf(w, "  dir: %s\n", cfg.Logging.ResolveDir())
	_, _ = fmt.Fprintf(w, "  max_size_mb: %d\n", cfg.Logging.MaxSizeMB)
	_, _ = fmt.Fprintf(w, "  max_backups: %d\n", cfg.Logging.MaxBackups)
}

// settableKeys maps each key accepted by 'config set' to its value kind.
var settableKeys = map[string]string{
	"tui.theme":                 "theme",
	"tui.language":              "language",
	"tui.panel_width":           "int",
	"tui.alt_screen":            "bool",
	"onboarding.feature_limit":  "int",
	"onboarding.animation_ms":   "int",
	"onboarding.animation_fps":  "int",
	"onboarding.initial_step":   "step",
	"onboarding.features_file":  "string",
	"onboarding.watch_features": "bool",
	"user.username":             "string",
	"user.first_name":           "string",
	"user.last_name":            "string",
	"user.email":                "string",
	"logging.enabled":           "bool",
	"logging.level":             "level",
	"logging.dir":               "string",
	"logging.max_size_mb":       "int",
	"logging.max_backups":       "int",
}

// parseValue validates value for key and converts it to the stored type.
func parseValue(key, value string) (any, error) {
	kind, ok := settableKeys[key]
	if !ok {
		keys := make([]string, 0, len(settableKeys))
		for k := range settableKeys {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		return nil, fmt.Errorf("unknown configuration key: %s%s\nRun 'onboard config set --help' to see valid keys",
			key, util.DidYouMean(key, keys))
	}

	switch kind {
	case "theme":
		_, _ = styles.DiscoverCustomThemes(appconfig.ThemesDir())
		if !styles.IsValidTheme(value) {
			return nil, fmt.Errorf("invalid theme: %s%s\nValid options: %s",
				value, util.DidYouMean(value, styles.ValidThemes()), strings.Join(styles.ValidThemes(), ", "))
		}
	case "language":
		if !locale.IsSupported(value) {
			return nil, fmt.Errorf("unsupported language: %s", value)
		}
	case "step":
		if _, err := onboard.ParseStep(value); err != nil {
			return nil, StepError(err, value)
		}
	case "level":
		if !slices.ContainsFunc(logging.ValidLevels(), func(l string) bool { return strings.EqualFold(l, value) }) {
			return nil, fmt.Errorf("invalid value for %s: %s\nValid options: %s",
				key, value, strings.Join(logging.ValidLevels(), ", "))
		}
		return strings.ToLower(value), nil
	case "bool":
		if value != "true" && value != "false" {
			return nil, fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		return value == "true", nil
	case "int":
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected integer", key)
		}
		if intVal < 0 {
			return nil, fmt.Errorf("invalid value for %s: must be non-negative", key)
		}
		return intVal, nil
	}
	return value, nil
}

// StepError adds a suggestion for the closest valid step to a step parse
// error.
func StepError(err error, value string) error {
	names := make([]string, 0, len(onboard.ValidSteps()))
	for _, s := range onboard.ValidSteps() {
		names = append(names, string(s))
	}
	if hint := util.DidYouMean(value, names); hint != "" {
		return fmt.Errorf("%w%s", err, hint)
	}
	return err
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	typedValue, err := parseValue(key, args[1])
	if err != nil {
		return err
	}

	// Ensure config directory exists
	configDir := appconfig.ConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.Set(key, typedValue)

	configFile := appconfig.ConfigFile()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "Set %s = %v\n", key, typedValue)
	_, _ = fmt.Fprintf(w, "Config saved to %s\n", configFile)
	return nil
}

// defaultConfigContent is written by 'config init'.
const defaultConfigContent = `# onboard configuration

# TUI (terminal user interface) settings
tui:
  # Color theme: default, monokai, dracula, nord, gruvbox, or a custom theme
  theme: default
  # Panel language: en or es
  language: en
  # Panel column width
  panel_width: 56
  # Use the full terminal
  alt_screen: true

# Onboarding panel settings
onboarding:
  # Features shown before "Explore more features"
  feature_limit: 9
  # Show/hide animation length in milliseconds (0 selects 600)
  animation_ms: 600
  # Animation frames per second
  animation_fps: 60
  # Starting step: initial, inComplete, featureList, featureDetail
  # Empty derives it from feature completion
  initial_step: ""
  # Feature catalog file; empty uses the built-in catalog
  features_file: ""
  # Reload the catalog when the file changes
  watch_features: false

# Who to greet
user:
  username: ""
  first_name: ""
  last_name: ""
  email: ""

# Log file settings
logging:
  enabled: true
  level: info
  # Empty uses ~/.local/state/onboard
  dir: ""
  max_size_mb: 10
  max_backups: 3
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := appconfig.ConfigDir()
	configFile := appconfig.ConfigFile()

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'onboard config set' to modify values", configFile)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configFile, []byte(defaultConfigContent), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "Created config file at %s\n", configFile)
	_, _ = fmt.Fprintln(w, "Edit this file to customize onboard.")
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	if viper.ConfigFileUsed() != "" {
		_, _ = fmt.Fprintf(w, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		_, _ = fmt.Fprintf(w, "Default path: %s (not created)\n", appconfig.ConfigFile())
	}

	_, _ = fmt.Fprintln(w, "\nSearch paths:")
	_, _ = fmt.Fprintf(w, "  1. %s\n", filepath.Join(appconfig.ConfigDir(), "config.yaml"))
	_, _ = fmt.Fprintln(w, "  2. ./config.yaml (current directory)")
	_, _ = fmt.Fprintln(w, "\nEnvironment variables: ONBOARD_* (e.g., ONBOARD_TUI_THEME)")
	return nil
}

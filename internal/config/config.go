package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete onboard configuration
type Config struct {
	TUI        TUIConfig        `mapstructure:"tui"`
	Onboarding OnboardingConfig `mapstructure:"onboarding"`
	User       UserConfig       `mapstructure:"user"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// TUIConfig controls the terminal UI
type TUIConfig struct {
	// Theme is the color theme (default: "default")
	// Options: "default", "monokai", "dracula", "nord"
	Theme string `mapstructure:"theme"`
	// Language selects panel strings, e.g. "en" or "es" (default: "en")
	Language string `mapstructure:"language"`
	// PanelWidth is the onboarding panel width in columns (default: 56, min: 32)
	PanelWidth int `mapstructure:"panel_width"`
	// AltScreen runs the program in the terminal's alternate screen (default: true)
	AltScreen bool `mapstructure:"alt_screen"`
}

// OnboardingConfig controls the onboarding panel
type OnboardingConfig struct {
	// FeatureLimit is how many features show while the list is collapsed (default: 9)
	FeatureLimit int `mapstructure:"feature_limit"`
	// AnimationMs is the length of the show/hide animation in milliseconds (default: 600, 0 selects the default)
	AnimationMs int `mapstructure:"animation_ms"`
	// AnimationFPS is the frame rate of the show/hide animation (default: 60, 0 selects the default)
	AnimationFPS int `mapstructure:"animation_fps"`
	// InitialStep forces the starting step. Empty derives it from feature completion.
	InitialStep string `mapstructure:"initial_step"`
	// FeaturesFile is a YAML feature catalog. Empty uses the built-in catalog.
	FeaturesFile string `mapstructure:"features_file"`
	// WatchFeatures reloads FeaturesFile when it changes (default: false)
	WatchFeatures bool `mapstructure:"watch_features"`
}

// UserConfig describes the signed-in user shown in greetings
type UserConfig struct {
	Username  string `mapstructure:"username"`
	FirstName string `mapstructure:"first_name"`
	LastName  string `mapstructure:"last_name"`
	Email     string `mapstructure:"email"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether debug logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// Dir is where onboard.log is written. Empty uses the state directory.
	Dir string `mapstructure:"dir"`
	// MaxSizeMB is the maximum log file size in megabytes before rotation (default: 10)
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups is the number of backup log files to keep (default: 3)
	MaxBackups int `mapstructure:"max_backups"`
}

// Animation returns the animation length as a time.Duration
func (c *OnboardingConfig) Animation() time.Duration {
	return time.Duration(c.AnimationMs) * time.Millisecond
}

// ResolveDir returns the log directory, expanding ~ and falling back to
// the state directory.
func (c *LoggingConfig) ResolveDir() string {
	if c.Dir == "" {
		return StateDir()
	}
	return expandHome(c.Dir)
}

// ResolveFeaturesFile returns the catalog path with ~ expanded.
func (c *OnboardingConfig) ResolveFeaturesFile() string {
	if c.FeaturesFile == "" {
		return ""
	}
	return expandHome(c.FeaturesFile)
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return path
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		TUI: TUIConfig{
			Theme:      "default",
			Language:   "en",
			PanelWidth: 56,
			AltScreen:  true,
		},
		Onboarding: OnboardingConfig{
			FeatureLimit:  9,
			AnimationMs:   600,
			AnimationFPS:  60,
			InitialStep:   "", // Derived from feature completion
			FeaturesFile:  "", // Built-in catalog
			WatchFeatures: false,
		},
		User: UserConfig{},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			Dir:        "",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// TUI defaults
	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.language", defaults.TUI.Language)
	viper.SetDefault("tui.panel_width", defaults.TUI.PanelWidth)
	viper.SetDefault("tui.alt_screen", defaults.TUI.AltScreen)

	// Onboarding defaults
	viper.SetDefault("onboarding.feature_limit", defaults.Onboarding.FeatureLimit)
	viper.SetDefault("onboarding.animation_ms", defaults.Onboarding.AnimationMs)
	viper.SetDefault("onboarding.animation_fps", defaults.Onboarding.AnimationFPS)
	viper.SetDefault("onboarding.initial_step", defaults.Onboarding.InitialStep)
	viper.SetDefault("onboarding.features_file", defaults.Onboarding.FeaturesFile)
	viper.SetDefault("onboarding.watch_features", defaults.Onboarding.WatchFeatures)

	// User defaults
	viper.SetDefault("user.username", defaults.User.Username)
	viper.SetDefault("user.first_name", defaults.User.FirstName)
	viper.SetDefault("user.last_name", defaults.User.LastName)
	viper.SetDefault("user.email", defaults.User.Email)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration, falling back to defaults when
// loading fails
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "onboard")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".onboard"
	}
	return filepath.Join(home, ".config", "onboard")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ThemesDir returns the directory searched for custom theme files
func ThemesDir() string {
	return filepath.Join(ConfigDir(), "themes")
}

// StateDir returns where logs are written by default
func StateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "onboard")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".onboard"
	}
	return filepath.Join(home, ".local", "state", "onboard")
}

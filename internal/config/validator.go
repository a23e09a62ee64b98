package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Iron-Ham/onboard/internal/locale"
	"github.com/Iron-Ham/onboard/internal/onboard"
	"github.com/Iron-Ham/onboard/internal/tui/styles"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "onboarding.feature_limit")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateOnboarding()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

// validateTUI validates the TUIConfig
func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if c.TUI.Theme != "" && !styles.IsValidTheme(c.TUI.Theme) {
		errors = append(errors, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(styles.BuiltinThemes(), ", ")),
		})
	}

	if c.TUI.Language != "" && !locale.IsSupported(c.TUI.Language) {
		errors = append(errors, ValidationError{
			Field:   "tui.language",
			Value:   c.TUI.Language,
			Message: "is not a supported language",
		})
	}

	// 0 means use the default width
	const minPanelWidth = 32
	if c.TUI.PanelWidth != 0 && c.TUI.PanelWidth < minPanelWidth {
		errors = append(errors, ValidationError{
			Field:   "tui.panel_width",
			Value:   c.TUI.PanelWidth,
			Message: fmt.Sprintf("must be at least %d columns", minPanelWidth),
		})
	}

	return errors
}

// validateOnboarding validates the OnboardingConfig
func (c *Config) validateOnboarding() []ValidationError {
	var errors []ValidationError

	if c.Onboarding.FeatureLimit < 1 {
		errors = append(errors, ValidationError{
			Field:   "onboarding.feature_limit",
			Value:   c.Onboarding.FeatureLimit,
			Message: "must be at least 1",
		})
	}

	const maxAnimationMs = 5000
	if c.Onboarding.AnimationMs < 0 || c.Onboarding.AnimationMs > maxAnimationMs {
		errors = append(errors, ValidationError{
			Field:   "onboarding.animation_ms",
			Value:   c.Onboarding.AnimationMs,
			Message: fmt.Sprintf("must be between 0 and %d", maxAnimationMs),
		})
	}

	if c.Onboarding.AnimationFPS < 0 || c.Onboarding.AnimationFPS > 120 {
		errors = append(errors, ValidationError{
			Field:   "onboarding.animation_fps",
			Value:   c.Onboarding.AnimationFPS,
			Message: "must be between 0 and 120",
		})
	}

	if _, err := onboard.ParseStep(c.Onboarding.InitialStep); err != nil {
		steps := make([]string, 0, len(onboard.ValidSteps()))
		for _, s := range onboard.ValidSteps() {
			steps = append(steps, string(s))
		}
		errors = append(errors, ValidationError{
			Field:   "onboarding.initial_step",
			Value:   c.Onboarding.InitialStep,
			Message: fmt.Sprintf("must be empty or one of: %s", strings.Join(steps, ", ")),
		})
	}

	if c.Onboarding.WatchFeatures && c.Onboarding.FeaturesFile == "" {
		errors = append(errors, ValidationError{
			Field:   "onboarding.watch_features",
			Value:   c.Onboarding.WatchFeatures,
			Message: "requires onboarding.features_file",
		})
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	if c.Logging.MaxSizeMB < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must be non-negative",
		})
	}

	if c.Logging.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must be non-negative",
		})
	}

	return errors
}

package cmd

import (
	"fmt"
	"os"

	"github.com/Iron-Ham/onboard/internal/catalog"
	"github.com/Iron-Ham/onboard/internal/cmd/config"
	appconfig "github.com/Iron-Ham/onboard/internal/config"
	"github.com/Iron-Ham/onboard/internal/locale"
	"github.com/Iron-Ham/onboard/internal/logging"
	"github.com/Iron-Ham/onboard/internal/onboard"
	"github.com/Iron-Ham/onboard/internal/tui"
	"github.com/Iron-Ham/onboard/internal/tui/panel"
	"github.com/Iron-Ham/onboard/internal/tui/styles"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the onboarding panel",
	Long: `Open the onboarding panel in the terminal.

The starting step comes from --step, then onboarding.initial_step, and is
otherwise derived from feature completion: nothing complete starts at the
opener, partial progress offers to resume, and a finished catalog starts
with the panel closed (press o to open it).`,
	Args: cobra.NoArgs,
	RunE: runOnboard,
}

var (
	runStep     string
	runFeatures string
	runUser     string
	runWatch    bool
)

func init() {
	runCmd.Flags().StringVar(&runStep, "step", "", "starting step (initial, inComplete, featureList, featureDetail)")
	runCmd.Flags().StringVar(&runFeatures, "features", "", "feature catalog file (default is the built-in catalog)")
	runCmd.Flags().StringVar(&runUser, "user", "", "username to greet")
	runCmd.Flags().BoolVar(&runWatch, "watch", false, "reload the feature catalog when it changes")
	rootCmd.AddCommand(runCmd)
}

func runOnboard(cmd *cobra.Command, args []string) error {
	cfg, err := appconfig.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	applyRunFlags(cmd, cfg)

	step, err := onboard.ParseStep(cfg.Onboarding.InitialStep)
	if err != nil {
		return config.StepError(err, cfg.Onboarding.InitialStep)
	}
	if cfg.Onboarding.WatchFeatures && cfg.Onboarding.FeaturesFile == "" {
		return fmt.Errorf("--watch requires a feature catalog file (--features or onboarding.features_file)")
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	applyTheme(cfg.TUI.Theme, logger)

	path := cfg.Onboarding.ResolveFeaturesFile()
	features, err := catalog.LoadOrDefault(path)
	if err != nil {
		return err
	}
	logger.Info("starting onboarding",
		"features", len(features),
		"catalog", path,
		"step", string(step),
	)

	tr := locale.New(cfg.TUI.Language)
	app := tui.New(tui.Options{
		Features:   features,
		User:       userFromConfig(cfg.User),
		Step:       step,
		PanelWidth: cfg.TUI.PanelWidth,
		Panel: panel.Options{
			FeatureLimit: cfg.Onboarding.FeatureLimit,
			Animation:    cfg.Onboarding.Animation(),
			FPS:          cfg.Onboarding.AnimationFPS,
			Translator:   tr,
		},
		Logger: logger,
	})
	app.SetAltScreen(cfg.TUI.AltScreen)

	if cfg.Onboarding.WatchFeatures {
		watcher, err := catalog.NewWatcher(path, logger)
		if err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
		app.WatchCatalog(watcher)
	}

	return app.Run()
}

// applyRunFlags overrides configuration with explicitly set flags.
func applyRunFlags(cmd *cobra.Command, cfg *appconfig.Config) {
	flags := cmd.Flags()
	if flags.Changed("step") {
		cfg.Onboarding.InitialStep = runStep
	}
	if flags.Changed("features") {
		cfg.Onboarding.FeaturesFile = runFeatures
	}
	if flags.Changed("user") {
		cfg.User.Username = runUser
	}
	if flags.Changed("watch") {
		cfg.Onboarding.WatchFeatures = runWatch
	}
}

func userFromConfig(u appconfig.UserConfig) onboard.User {
	user := onboard.User{
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
	if user == (onboard.User{}) {
		user.Username = os.Getenv("USER")
	}
	return user
}

// newLogger creates the session logger. Disabled logging discards
// everything.
func newLogger(cfg *appconfig.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}
	logger, err := logging.NewLoggerWithRotation(cfg.Logging.ResolveDir(), cfg.Logging.Level, logging.RotationConfig{
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}

// applyTheme registers custom themes and activates the configured one.
func applyTheme(name string, logger *logging.Logger) {
	loaded, errs := styles.DiscoverCustomThemes(appconfig.ThemesDir())
	for _, err := range errs {
		logger.Warn("custom theme skipped", "error", err.Error())
	}
	if len(loaded) > 0 {
		logger.Debug("custom themes loaded", "themes", loaded)
	}
	if name == "" {
		return
	}
	if !styles.IsValidTheme(name) {
		logger.Warn("unknown theme, using default", "theme", name)
		return
	}
	styles.SetActiveTheme(styles.ThemeName(name))
}

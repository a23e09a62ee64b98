// Package cmd implements the onboard command line.
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/Iron-Ham/onboard/internal/cmd/config"
	appconfig "github.com/Iron-Ham/onboard/internal/config"
	"github.com/Iron-Ham/onboard/internal/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Guided onboarding panel for the terminal",
	Long: `Onboard walks a user through setting up the features of a workspace:
an opening prompt, a list of features to configure, and a detail view for
each feature, in an animated terminal panel.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and prints any error it returns.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		reportError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// reportError prints err for the terminal. User-facing errors are labeled
// with their severity; everything else is reported as a plain error.
func reportError(w io.Writer, err error) {
	if errors.IsUserFacing(err) {
		_, _ = fmt.Fprintf(w, "%s: %v\n", errors.GetSeverity(err), err)
		return
	}
	_, _ = fmt.Fprintf(w, "Error: %v\n", err)
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/onboard/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	config.Register(rootCmd)
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	appconfig.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(appconfig.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("ONBOARD")
	// e.g., ONBOARD_ONBOARDING_FEATURE_LIMIT for onboarding.feature_limit
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

package cmd

import (
	"fmt"
	"io"

	"github.com/Iron-Ham/onboard/internal/catalog"
	appconfig "github.com/Iron-Ham/onboard/internal/config"
	"github.com/Iron-Ham/onboard/internal/errors"
	"github.com/Iron-Ham/onboard/internal/onboard"
	"github.com/Iron-Ham/onboard/internal/tui/styles"
	"github.com/Iron-Ham/onboard/internal/util"
	"github.com/spf13/cobra"
)

var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "List the feature catalog",
	Long: `List every feature in the catalog with its completion state and a
progress summary. Reads --features, then onboarding.features_file, and
falls back to the built-in catalog.`,
	Args: cobra.NoArgs,
	RunE: runFeaturesList,
}

var featuresShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Show one feature of the catalog",
	Args:  cobra.ExactArgs(1),
	RunE:  runFeaturesShow,
}

var featuresFile string

func init() {
	featuresCmd.PersistentFlags().StringVar(&featuresFile, "features", "", "feature catalog file")
	featuresCmd.AddCommand(featuresShowCmd)
	rootCmd.AddCommand(featuresCmd)
}

func loadFeatures() ([]onboard.Feature, error) {
	path := featuresFile
	if path == "" {
		path = appconfig.Get().Onboarding.ResolveFeaturesFile()
	}
	return catalog.LoadOrDefault(path)
}

func runFeaturesList(cmd *cobra.Command, args []string) error {
	features, err := loadFeatures()
	if err != nil {
		return err
	}
	printFeatures(cmd.OutOrStdout(), features)
	return nil
}

func printFeatures(w io.Writer, features []onboard.Feature) {
	theme := styles.GetActiveTheme()
	for _, f := range features {
		mark := theme.Muted.Render("○")
		if f.IsComplete {
			mark = theme.Secondary.Render("✓")
		}
		_, _ = fmt.Fprintf(w, "%s %-12s %s\n", mark, f.Name, util.TruncateANSI(f.Text, 48))
	}

	s := catalog.Summarize(features)
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "%d of %d complete, %d remaining\n", s.Complete, s.Total, s.Remaining())
}

func runFeaturesShow(cmd *cobra.Command, args []string) error {
	features, err := loadFeatures()
	if err != nil {
		return err
	}
	f, err := lookupFeature(features, args[0])
	if err != nil {
		return err
	}
	printFeature(cmd.OutOrStdout(), f)
	return nil
}

// lookupFeature resolves name against the catalog. A miss names the
// closest catalog entry when one is near enough.
func lookupFeature(features []onboard.Feature, name string) (onboard.Feature, error) {
	if f, ok := onboard.FindFeature(features, name); ok {
		return f, nil
	}
	names := make([]string, len(features))
	for i, f := range features {
		names[i] = f.Name
	}
	notFound := errors.NewNotFoundError("feature", name).WithCause(errors.ErrFeatureNotFound)
	return onboard.Feature{}, fmt.Errorf("%w%s", notFound, util.DidYouMean(name, names))
}

func printFeature(w io.Writer, f onboard.Feature) {
	theme := styles.GetActiveTheme()
	status := theme.Muted.Render("not started")
	if f.IsComplete {
		status = theme.Secondary.Render("complete")
	}
	_, _ = fmt.Fprintf(w, "%s\n", theme.Primary.Render(f.Text))
	_, _ = fmt.Fprintf(w, "  name:   %s\n", f.Name)
	if f.Icon != "" {
		_, _ = fmt.Fprintf(w, "  icon:   %s\n", f.Icon)
	}
	_, _ = fmt.Fprintf(w, "  status: %s\n", status)
	if summary := util.PlainSummary(f.Description); summary != "" {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintf(w, "  %s\n", summary)
	}
}

// Package catalog loads the feature collection shown by the onboarding
// panel from YAML and keeps it fresh while the file changes.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/Iron-Ham/onboard/internal/errors"
	"github.com/Iron-Ham/onboard/internal/onboard"
	"gopkg.in/yaml.v3"
)

//go:embed features.yaml
var defaultCatalog []byte

// File is the on-disk catalog format.
type File struct {
	Features []Entry `yaml:"features"`
}

// Entry is one feature in a catalog file.
type Entry struct {
	Name        string `yaml:"name"`
	Text        string `yaml:"text"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Color       string `yaml:"color"`
	Complete    bool   `yaml:"complete"`
}

// Feature converts the entry to the domain type.
func (e Entry) Feature() onboard.Feature {
	text := e.Text
	if text == "" {
		text = e.Name
	}
	return onboard.Feature{
		Name:        e.Name,
		Text:        text,
		Description: strings.TrimSpace(e.Description),
		Icon:        e.Icon,
		Color:       e.Color,
		IsComplete:  e.Complete,
	}
}

// Default returns the built-in catalog.
func Default() []onboard.Feature {
	features, err := Parse(defaultCatalog)
	if err != nil {
		// The embedded catalog is validated by tests.
		panic(fmt.Sprintf("catalog: invalid built-in catalog: %v", err))
	}
	return features
}

// Load reads and validates the catalog at path.
func Load(path string) ([]onboard.Feature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewCatalogError("failed to read catalog", err).WithPath(path)
	}
	features, err := Parse(data)
	if err != nil {
		var ce *errors.CatalogError
		if errors.As(err, &ce) {
			return nil, ce.WithPath(path)
		}
		return nil, err
	}
	return features, nil
}

// LoadOrDefault loads path, or returns the built-in catalog when path is
// empty.
func LoadOrDefault(path string) ([]onboard.Feature, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) ([]onboard.Feature, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.NewCatalogError("failed to parse catalog", err)
	}
	if err := file.Validate(); err != nil {
		return nil, err
	}

	features := make([]onboard.Feature, len(file.Features))
	for i, e := range file.Features {
		features[i] = e.Feature()
	}
	return features, nil
}

// Validate checks that the catalog is non-empty and names are unique.
func (f *File) Validate() error {
	if len(f.Features) == 0 {
		return errors.NewCatalogError("no features defined", errors.ErrEmptyCatalog)
	}

	seen := make(map[string]bool, len(f.Features))
	for i, e := range f.Features {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return errors.NewCatalogError(fmt.Sprintf("feature %d has no name", i+1),
				errors.NewValidationError("name is required").WithField("name"))
		}
		if seen[name] {
			return errors.NewCatalogError("invalid catalog", errors.ErrDuplicateFeature).WithFeature(name)
		}
		seen[name] = true
	}
	return nil
}

// Summary describes catalog progress.
type Summary struct {
	Total    int
	Complete int
}

// Remaining returns the number of features left to set up.
func (s Summary) Remaining() int {
	return s.Total - s.Complete
}

// Summarize counts completed features.
func Summarize(features []onboard.Feature) Summary {
	return Summary{Total: len(features), Complete: onboard.CountComplete(features)}
}

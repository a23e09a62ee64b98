package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Iron-Ham/onboard/internal/errors"
)

func TestDefault(t *testing.T) {
	features := Default()

	if len(features) <= 9 {
		t.Errorf("built-in catalog has %d features, want more than the collapsed limit", len(features))
	}
	for _, f := range features {
		if f.Text == "" || f.Description == "" || f.Icon == "" {
			t.Errorf("feature %q is missing display metadata: %+v", f.Name, f)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		want    int
		wantErr error
	}{
		{
			name: "valid",
			yaml: "features:\n  - name: a\n    text: A\n  - name: b\n    complete: true\n",
			want: 2,
		},
		{
			name:    "empty",
			yaml:    "features: []\n",
			wantErr: errors.ErrEmptyCatalog,
		},
		{
			name:    "duplicate",
			yaml:    "features:\n  - name: a\n  - name: a\n",
			wantErr: errors.ErrDuplicateFeature,
		},
		{
			name:    "missing name",
			yaml:    "features:\n  - text: nameless\n",
			wantErr: &errors.ValidationError{},
		},
		{
			name:    "malformed",
			yaml:    "features: [",
			wantErr: &errors.CatalogError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			features, err := Parse([]byte(tt.yaml))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			if len(features) != tt.want {
				t.Errorf("len(features) = %d, want %d", len(features), tt.want)
			}
		})
	}
}

func TestEntry_Feature(t *testing.T) {
	f := Entry{Name: "inbox", Description: "  text \n", Complete: true}.Feature()

	if f.Text != "inbox" {
		t.Errorf("Text = %q, want name fallback %q", f.Text, "inbox")
	}
	if f.Description != "text" {
		t.Errorf("Description = %q, want trimmed %q", f.Description, "text")
	}
	if !f.IsComplete {
		t.Error("IsComplete should carry over")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "features.yaml")
	if err := os.WriteFile(path, []byte("features:\n  - name: a\n  - name: b\n"), 0644); err != nil {
		t.Fatal(err)
	}

	features, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(features) != 2 {
		t.Errorf("len(features) = %d, want 2", len(features))
	}

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	var ce *errors.CatalogError
	if !errors.As(err, &ce) || ce.Path == "" {
		t.Errorf("Load(missing) error = %v, want CatalogError with path", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("features: []\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err = Load(bad)
	if !errors.As(err, &ce) || ce.Path != bad {
		t.Errorf("Load(bad) error = %v, want CatalogError for %s", err, bad)
	}
}

func TestLoadOrDefault(t *testing.T) {
	features, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault(\"\") error = %v", err)
	}
	if len(features) != len(Default()) {
		t.Errorf("LoadOrDefault(\"\") returned %d features, want the built-in catalog", len(features))
	}
}

func TestSummarize(t *testing.T) {
	features, err := Parse([]byte("features:\n  - name: a\n    complete: true\n  - name: b\n  - name: c\n"))
	if err != nil {
		t.Fatal(err)
	}
	s := Summarize(features)
	if s.Total != 3 || s.Complete != 1 || s.Remaining() != 2 {
		t.Errorf("Summarize() = %+v (remaining %d), want 3 total, 1 complete, 2 remaining", s, s.Remaining())
	}
}

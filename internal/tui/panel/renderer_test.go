package panel

import (
	"errors"
	"testing"

	"github.com/Iron-Ham/onboard/internal/tui/keymap"
	"github.com/charmbracelet/lipgloss"
)

// mockTheme implements Theme for testing purposes.
type mockTheme struct{}

func (m *mockTheme) Primary() lipgloss.Style   { return lipgloss.NewStyle() }
func (m *mockTheme) Secondary() lipgloss.Style { return lipgloss.NewStyle() }
func (m *mockTheme) Muted() lipgloss.Style     { return lipgloss.NewStyle() }
func (m *mockTheme) Error() lipgloss.Style     { return lipgloss.NewStyle() }
func (m *mockTheme) Warning() lipgloss.Style   { return lipgloss.NewStyle() }
func (m *mockTheme) Surface() lipgloss.Style   { return lipgloss.NewStyle() }
func (m *mockTheme) Border() lipgloss.Style    { return lipgloss.NewStyle() }

// mockPanelRenderer implements PanelRenderer for testing.
type mockPanelRenderer struct {
	rendered string
	height   int
}

func (m *mockPanelRenderer) Render(state *RenderState) string { return m.rendered }
func (m *mockPanelRenderer) Height() int                      { return m.height }

func TestPanelRendererInterface(t *testing.T) {
	var renderer PanelRenderer = &mockPanelRenderer{rendered: "test output", height: 10}

	if got := renderer.Render(NewRenderState(80, 24)); got != "test output" {
		t.Errorf("Render() = %q, want %q", got, "test output")
	}
	if got := renderer.Height(); got != 10 {
		t.Errorf("Height() = %d, want 10", got)
	}
}

func TestRenderState_Validate(t *testing.T) {
	tests := []struct {
		name    string
		state   *RenderState
		wantErr error
	}{
		{
			name:  "valid",
			state: &RenderState{Width: 80, Height: 24, Theme: &mockTheme{}},
		},
		{
			name:    "zero width",
			state:   &RenderState{Width: 0, Height: 24, Theme: &mockTheme{}},
			wantErr: ErrInvalidWidth,
		},
		{
			name:    "negative height",
			state:   &RenderState{Width: 80, Height: -1, Theme: &mockTheme{}},
			wantErr: ErrInvalidHeight,
		},
		{
			name:    "nil theme",
			state:   &RenderState{Width: 80, Height: 24},
			wantErr: ErrNilTheme,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.state.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRenderState_ValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		state   *RenderState
		wantErr error
	}{
		{"valid without theme", &RenderState{Width: 80, Height: 24}, nil},
		{"zero width", &RenderState{Width: 0, Height: 24}, ErrInvalidWidth},
		{"zero height", &RenderState{Width: 80, Height: 0}, ErrInvalidHeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.state.ValidateBasic(); !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateBasic() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewRenderState(t *testing.T) {
	state := NewRenderState(100, 50)

	if state.Width != 100 {
		t.Errorf("Width = %d, want 100", state.Width)
	}
	if state.Height != 50 {
		t.Errorf("Height = %d, want 50", state.Height)
	}
	if state.Theme != nil {
		t.Error("Theme should be nil by default")
	}
	if state.ScrollOffset != 0 {
		t.Errorf("ScrollOffset = %d, want 0", state.ScrollOffset)
	}
}

func TestHelpSectionsFromKeymap(t *testing.T) {
	if got := HelpSectionsFromKeymap(nil, keymap.ModePanel); got != nil {
		t.Errorf("HelpSectionsFromKeymap(nil) = %v, want nil", got)
	}

	sections := HelpSectionsFromKeymap(keymap.DefaultKeymap(), keymap.ModePanel)
	if len(sections) == 0 {
		t.Fatal("expected help sections for panel mode")
	}

	var found bool
	for _, s := range sections {
		for _, item := range s.Items {
			if item.Key == "" || item.Description == "" {
				t.Errorf("section %q has an empty item: %+v", s.Title, item)
			}
			if item.Key == "t" {
				found = true
			}
		}
	}
	if !found {
		t.Error("expected the toggle list binding in the panel help")
	}
}

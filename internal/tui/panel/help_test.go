package panel

import (
	"fmt"
	"strings"
	"testing"
)

func customSections(n int) []HelpSection {
	items := make([]HelpItem, n)
	for i := range items {
		items[i] = HelpItem{Key: fmt.Sprintf("k%d", i), Description: fmt.Sprintf("action %d", i)}
	}
	return []HelpSection{{Title: "Custom Section", Items: items}}
}

func TestHelpPanel_Render(t *testing.T) {
	tests := []struct {
		name        string
		state       *RenderState
		contains    []string
		notContains []string
	}{
		{
			name: "renders custom sections",
			state: &RenderState{
				Width:  80,
				Height: 30,
				HelpSections: []HelpSection{{
					Title: "Navigation",
					Items: []HelpItem{
						{Key: "↓/j", Description: "Next control"},
						{Key: "enter", Description: "Activate"},
					},
				}},
			},
			contains: []string{"Help", "Navigation", "↓/j", "Next control", "enter", "Activate"},
		},
		{
			name: "renders with theme",
			state: &RenderState{
				Width:        80,
				Height:       30,
				Theme:        &mockTheme{},
				HelpSections: customSections(2),
			},
			contains: []string{"Custom Section", "k0", "action 1"},
		},
		{
			name: "scroll indicator when content overflows",
			state: &RenderState{
				Width:        80,
				Height:       8,
				HelpSections: customSections(20),
			},
			contains:    []string{"[1/", "▼"},
			notContains: []string{"▲"},
		},
		{
			name: "scrolled to the end",
			state: &RenderState{
				Width:        80,
				Height:       8,
				ScrollOffset: 1000,
				HelpSections: customSections(20),
			},
			contains:    []string{"▲", "action 19"},
			notContains: []string{"▼"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewHelpPanel("")
			got := p.Render(tt.state)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Render() missing %q in:\n%s", want, got)
				}
			}
			for _, unwanted := range tt.notContains {
				if strings.Contains(got, unwanted) {
					t.Errorf("Render() unexpectedly contains %q", unwanted)
				}
			}
			if p.Height() == 0 {
				t.Error("Height() = 0 after render")
			}
		})
	}
}

func TestHelpPanel_RenderInvalidState(t *testing.T) {
	p := NewHelpPanel("Keys")
	got := p.Render(&RenderState{Width: 0, Height: 10})
	if !strings.Contains(got, "render error") {
		t.Errorf("Render() = %q, want render error", got)
	}
}

func TestHelpPanel_MaxScroll(t *testing.T) {
	p := NewHelpPanel("Keys")

	short := &RenderState{Width: 80, Height: 40, HelpSections: customSections(2)}
	if got := p.MaxScroll(short); got != 0 {
		t.Errorf("MaxScroll(short) = %d, want 0", got)
	}

	// 3 header lines + section title + 20 items + trailing blank = 25 lines,
	// 6 visible at height 8.
	long := &RenderState{Width: 80, Height: 8, HelpSections: customSections(20)}
	if got := p.MaxScroll(long); got != 19 {
		t.Errorf("MaxScroll(long) = %d, want 19", got)
	}
}

func TestHelpPanel_Title(t *testing.T) {
	got := NewHelpPanel("Keyboard").Render(&RenderState{Width: 80, Height: 20})
	if !strings.HasPrefix(got, "Keyboard") {
		t.Errorf("Render() = %q, want title first", got)
	}
}

package view

import (
	"strings"
	"testing"

	"github.com/Iron-Ham/onboard/internal/locale"
	"github.com/Iron-Ham/onboard/internal/onboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestGlyph(t *testing.T) {
	tests := []struct {
		icon string
		size int
		want string
	}{
		{"inbox", IconSizeSmall, "✉"},
		{"plug", IconSizeSmall, "⚙"},
		{"nope", IconSizeSmall, defaultGlyph},
		{"", 0, defaultGlyph},
	}

	for _, tt := range tests {
		t.Run(tt.icon, func(t *testing.T) {
			if got := Glyph(tt.icon, tt.size); got != tt.want {
				t.Errorf("Glyph(%q, %d) = %q, want %q", tt.icon, tt.size, got, tt.want)
			}
		})
	}

	// Large sizes keep the same visible symbol.
	if got := ansi.Strip(Glyph("inbox", IconSizeLarge)); got != "✉" {
		t.Errorf("Glyph(inbox, large) stripped = %q, want %q", got, "✉")
	}
	if !HasGlyph("deal") || HasGlyph("nope") {
		t.Error("HasGlyph reported the wrong result")
	}
}

func TestOpenerView_Render(t *testing.T) {
	content := onboard.RenderContent(onboard.StepInitial, onboard.NewState(0), nil, onboard.User{FirstName: "Ada"})
	opener, _ := content.Find(onboard.NodeOpener)
	skip, _ := content.Find(onboard.NodeSkip)

	out := ansi.Strip(NewOpenerView(nil).Render(opener, skip, OpenerFocusButton))
	for _, want := range []string{"Welcome, Ada", "Start", "Skip onboarding"} {
		if !strings.Contains(out, want) {
			t.Errorf("opener output missing %q:\n%s", want, out)
		}
	}

	es := ansi.Strip(NewOpenerView(locale.New("es")).Render(opener, skip, OpenerFocusSkip))
	if !strings.Contains(es, "Comenzar") {
		t.Errorf("spanish opener should translate the button:\n%s", es)
	}
	if !strings.Contains(es, FocusMarker+"Omitir") {
		t.Errorf("focused skip link should carry the focus marker:\n%s", es)
	}
}

func TestGreeting(t *testing.T) {
	node := onboard.Node{Kind: onboard.NodeGreeting, Label: onboard.LabelHello, UserName: "Ada"}
	out := ansi.Strip(Greeting(nil, node))

	if !strings.Contains(out, "Hello! Ada") {
		t.Errorf("greeting = %q, want it to contain %q", out, "Hello! Ada")
	}
	if !strings.Contains(out, onboard.LabelWhichFeature) {
		t.Errorf("greeting = %q, want the question line", out)
	}
}

func TestActionItem_Render(t *testing.T) {
	f := onboard.Feature{
		Name:        "inbox",
		Text:        "Connect your inbox",
		Description: "Link an **email** account.",
		Icon:        "inbox",
		IsComplete:  true,
	}

	item := NewActionItem(nil, 40)
	out := ansi.Strip(item.Render(f, 0, false))

	for _, want := range []string{"✉", "Connect your inbox", "Link an email account.", "✓ Completed"} {
		if !strings.Contains(out, want) {
			t.Errorf("action item missing %q:\n%s", want, out)
		}
	}
	for _, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w > 40 {
			t.Errorf("line %q is %d wide, want <= 40", line, w)
		}
	}

	f.IsComplete = false
	if strings.Contains(ansi.Strip(item.Render(f, 0, true)), "Completed") {
		t.Error("incomplete feature should not show the completion mark")
	}
}

func TestActionItem_FallsBackToName(t *testing.T) {
	out := ansi.Strip(NewActionItem(nil, 40).Render(onboard.Feature{Name: "tasks"}, 3, false))
	if !strings.Contains(out, "tasks") {
		t.Errorf("action item without text should show the name:\n%s", out)
	}
}

func TestFeatureDetailView_Render(t *testing.T) {
	v := NewFeatureDetailView(nil, MarkdownStyleASCII)
	f := onboard.Feature{
		Name:        "contacts",
		Text:        "Import contacts",
		Description: "Bring in customers from a **CSV** file.",
		Icon:        "contacts",
	}

	out := ansi.Strip(v.Render(f, 40))
	if !strings.Contains(out, "Import contacts") {
		t.Errorf("detail missing title:\n%s", out)
	}
	if !strings.Contains(out, "CSV") {
		t.Errorf("detail missing description:\n%s", out)
	}

	// Same width reuses the renderer.
	r := v.renderer
	v.Render(f, 40)
	if v.renderer != r {
		t.Error("renderer should be reused for the same width")
	}
	v.Render(f, 30)
	if v.width != 30 {
		t.Errorf("renderer width = %d, want 30", v.width)
	}
}

func TestControls(t *testing.T) {
	if got := ansi.Strip(CloseControl(nil, false)); got != "✕ Close" {
		t.Errorf("CloseControl() = %q, want %q", got, "✕ Close")
	}
	if got := ansi.Strip(BackControl(locale.New("es"), true)); !strings.Contains(got, "Volver") {
		t.Errorf("BackControl(es) = %q, want it translated", got)
	}
	if got := ansi.Strip(ToggleControl(nil, onboard.LabelExploreMore, false)); !strings.Contains(got, "Explore more features »") {
		t.Errorf("ToggleControl() = %q", got)
	}
}

package panel

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Iron-Ham/onboard/internal/onboard"
	"github.com/Iron-Ham/onboard/internal/onboard/transition"
	"github.com/Iron-Ham/onboard/internal/tui/msg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
)

var testEpoch = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func testFeatures(n int) []onboard.Feature {
	features := make([]onboard.Feature, n)
	for i := range features {
		features[i] = onboard.Feature{
			Name:        fmt.Sprintf("feature-%d", i),
			Text:        fmt.Sprintf("Feature %d", i),
			Description: fmt.Sprintf("Set up feature %d.", i),
			Icon:        "task",
			Color:       "#7C3AED",
		}
	}
	return features
}

func newTestPanel() *Onboarding {
	return NewOnboarding(Options{
		Animation: 100 * time.Millisecond,
		Now:       func() time.Time { return testEpoch },
	})
}

// settle runs the current animation to completion.
func settle(t *testing.T, o *Onboarding) {
	t.Helper()
	o, _ = o.Update(msg.FrameMsg{Generation: o.gate.Generation(), Time: testEpoch.Add(time.Hour)})
	if o.gate.Animating() {
		t.Fatalf("animation still running in phase %v", o.Phase())
	}
}

func showPanel(t *testing.T, o *Onboarding, step onboard.Step, features []onboard.Feature) {
	t.Helper()
	o.SetProps(Props{Features: features, Step: step, User: onboard.User{FirstName: "Ada"}, Show: true})
	settle(t, o)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends a key to the panel and returns the effects it queued.
func press(t *testing.T, o *Onboarding, k string) []onboard.Effect {
	t.Helper()
	if _, cmd := o.Update(key(k)); cmd != nil {
		t.Errorf("key %q returned a command, want effects only", k)
	}
	return o.TakeEffects()
}

func TestOnboarding_HiddenRendersNothing(t *testing.T) {
	o := newTestPanel()

	if o.Mounted() {
		t.Error("new panel should not be mounted")
	}
	if got := o.Render(NewRenderState(60, 30)); got != "" {
		t.Errorf("Render() = %q, want empty", got)
	}
	if o.Height() != 0 {
		t.Errorf("Height() = %d, want 0", o.Height())
	}

	// Shown without a step stays hidden.
	if cmd := o.SetProps(Props{Features: testFeatures(3), Show: true}); cmd != nil {
		t.Error("SetProps without a step should not start an animation")
	}
	if o.Mounted() {
		t.Error("panel without a step should not mount")
	}
}

func TestOnboarding_EntranceAndExit(t *testing.T) {
	o := newTestPanel()

	cmd := o.SetProps(Props{Features: testFeatures(3), Step: onboard.StepInitial, Show: true})
	if cmd == nil {
		t.Fatal("SetProps should schedule a frame when the panel mounts")
	}
	if o.Phase() != transition.Entering {
		t.Fatalf("Phase() = %v, want %v", o.Phase(), transition.Entering)
	}
	settle(t, o)
	if o.Phase() != transition.Visible {
		t.Errorf("Phase() = %v, want %v", o.Phase(), transition.Visible)
	}

	cmd = o.SetProps(Props{Features: testFeatures(3), Step: onboard.StepInitial, Show: false})
	if cmd == nil {
		t.Fatal("SetProps should schedule a frame when the panel hides")
	}
	if !o.Mounted() {
		t.Error("panel should stay mounted while the exit animation runs")
	}
	settle(t, o)
	if o.Mounted() {
		t.Error("panel should unmount after the exit animation")
	}
	if len(o.Content()) != 0 {
		t.Errorf("Content() has %d nodes after unmount, want 0", len(o.Content()))
	}
}

func TestOnboarding_StaleFrameIgnored(t *testing.T) {
	o := newTestPanel()
	o.SetProps(Props{Step: onboard.StepInitial, Show: true})
	stale := o.gate.Generation()

	o.SetProps(Props{Step: onboard.StepInitial, Show: false})
	o.SetProps(Props{Step: onboard.StepInitial, Show: true})

	_, cmd := o.Update(msg.FrameMsg{Generation: stale, Time: testEpoch.Add(time.Hour)})
	if cmd != nil {
		t.Error("stale frame should not schedule more frames")
	}
	if o.Phase() != transition.Entering {
		t.Errorf("Phase() = %v, want %v", o.Phase(), transition.Entering)
	}
}

func TestOnboarding_OpenerActivation(t *testing.T) {
	o := newTestPanel()
	showPanel(t, o, onboard.StepInitial, testFeatures(3))

	node, ok := o.Focused()
	if !ok || node.Kind != onboard.NodeOpener {
		t.Fatalf("Focused() = %v, want the opener", node.Kind)
	}

	got := press(t, o, "enter")
	want := []onboard.Effect{
		onboard.ChangeStep{Step: onboard.StepFeatureList},
		onboard.ChangeRoute{Path: onboard.RouteOnboardStart},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("effects mismatch (-want +got):\n%s", diff)
	}
}

func TestOnboarding_SkipForcesCompletion(t *testing.T) {
	o := newTestPanel()
	showPanel(t, o, onboard.StepInComplete, testFeatures(3))

	o.Update(key("down"))
	node, _ := o.Focused()
	if node.Kind != onboard.NodeSkip {
		t.Fatalf("Focused() = %v, want skip", node.Kind)
	}

	want := []onboard.Effect{onboard.ForceComplete{}}
	if diff := cmp.Diff(want, press(t, o, "enter")); diff != "" {
		t.Errorf("effects mismatch (-want +got):\n%s", diff)
	}
}

func TestOnboarding_SelectFeatureThenBack(t *testing.T) {
	features := testFeatures(3)
	o := newTestPanel()
	showPanel(t, o, onboard.StepFeatureList, features)

	o.Update(key("down"))
	got := press(t, o, "enter")

	if o.State().Selection == nil || o.State().Selection.Name != features[1].Name {
		t.Fatalf("Selection = %v, want %s", o.State().Selection, features[1].Name)
	}
	want := []onboard.Effect{onboard.ChangeStep{Step: onboard.StepFeatureDetail}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("effects mismatch (-want +got):\n%s", diff)
	}

	// The host applies the step change.
	o.SetProps(Props{Features: features, Step: onboard.StepFeatureDetail, Show: true})
	detail, ok := o.Content().Find(onboard.NodeDetail)
	if !ok || detail.Feature.Name != features[1].Name {
		t.Fatalf("detail node = %+v, want %s", detail, features[1].Name)
	}

	got = press(t, o, "b")
	if o.State().Selection != nil {
		t.Error("Selection should be cleared after back")
	}
	want = []onboard.Effect{onboard.ChangeStep{Step: onboard.StepFeatureList}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("effects mismatch (-want +got):\n%s", diff)
	}
}

func TestOnboarding_DetailWithoutSelection(t *testing.T) {
	o := newTestPanel()
	showPanel(t, o, onboard.StepFeatureDetail, testFeatures(3))

	if o.Content().Count(onboard.NodeDetail) != 0 {
		t.Error("detail should not render without a selection")
	}
	if o.Content().Count(onboard.NodeBack) != 1 {
		t.Error("back control should render")
	}
}

func TestOnboarding_ToggleList(t *testing.T) {
	o := newTestPanel()
	showPanel(t, o, onboard.StepFeatureList, testFeatures(11))

	if got := o.Content().Count(onboard.NodeFeature); got != onboard.DefaultFeatureLimit {
		t.Fatalf("collapsed feature count = %d, want %d", got, onboard.DefaultFeatureLimit)
	}

	if effects := press(t, o, "t"); len(effects) != 0 {
		t.Errorf("toggle produced effects %v, want none", effects)
	}
	if got := o.Content().Count(onboard.NodeFeature); got != 11 {
		t.Errorf("expanded feature count = %d, want 11", got)
	}
	toggle, _ := o.Content().Find(onboard.NodeToggle)
	if toggle.Label != onboard.LabelHideSome {
		t.Errorf("toggle label = %q, want %q", toggle.Label, onboard.LabelHideSome)
	}

	// An expanded list follows the feature count.
	o.SetProps(Props{Features: testFeatures(13), Step: onboard.StepFeatureList, Show: true})
	if got := o.Content().Count(onboard.NodeFeature); got != 13 {
		t.Errorf("feature count after growth = %d, want 13", got)
	}

	o.Update(key("t"))
	if !o.State().IsCollapsed() {
		t.Error("second toggle should collapse the list")
	}
}

func TestOnboarding_Dismiss(t *testing.T) {
	o := newTestPanel()
	showPanel(t, o, onboard.StepFeatureList, testFeatures(2))
	before := o.State()

	want := []onboard.Effect{onboard.ChangeRoute{Path: onboard.RouteHome}}
	if diff := cmp.Diff(want, press(t, o, "esc")); diff != "" {
		t.Errorf("effects mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(before, o.State()); diff != "" {
		t.Errorf("dismiss changed state (-want +got):\n%s", diff)
	}
}

func TestOnboarding_StateLifetime(t *testing.T) {
	features := testFeatures(11)
	props := Props{Features: features, Step: onboard.StepFeatureList, Show: true}

	t.Run("interrupted exit keeps state", func(t *testing.T) {
		o := newTestPanel()
		showPanel(t, o, onboard.StepFeatureList, features)
		o.Update(key("t"))

		hidden := props
		hidden.Show = false
		o.SetProps(hidden)
		o.SetProps(props)
		if o.State().IsCollapsed() {
			t.Error("re-entering before unmount should keep the expanded list")
		}
	})

	t.Run("remount keeps state", func(t *testing.T) {
		o := newTestPanel()
		showPanel(t, o, onboard.StepFeatureList, features)
		o.Update(key("t"))

		hidden := props
		hidden.Show = false
		o.SetProps(hidden)
		settle(t, o)
		if o.Mounted() {
			t.Fatal("panel should unmount after the exit animation")
		}
		showPanel(t, o, onboard.StepFeatureList, features)
		if o.State().IsCollapsed() {
			t.Error("re-showing the panel should keep the expanded list")
		}
	})

	t.Run("remount keeps selection", func(t *testing.T) {
		o := newTestPanel()
		showPanel(t, o, onboard.StepFeatureList, features)
		o.Update(key("down"))
		press(t, o, "enter")
		o.SetProps(Props{Features: features, Step: onboard.StepFeatureDetail, Show: true})

		o.SetProps(Props{Features: features, Step: onboard.StepFeatureDetail, Show: false})
		settle(t, o)
		showPanel(t, o, onboard.StepFeatureDetail, features)

		detail, ok := o.Content().Find(onboard.NodeDetail)
		if !ok || detail.Feature.Name != features[1].Name {
			t.Errorf("detail after remount = %+v, want %s", detail, features[1].Name)
		}
	})
}

func TestOnboarding_FocusNavigation(t *testing.T) {
	o := newTestPanel()
	showPanel(t, o, onboard.StepFeatureList, testFeatures(2))

	// dismiss, feature-0, feature-1, toggle
	steps := []struct {
		key  string
		want onboard.NodeKind
	}{
		{"down", onboard.NodeFeature},
		{"down", onboard.NodeToggle},
		{"down", onboard.NodeDismiss},
		{"up", onboard.NodeToggle},
		{"k", onboard.NodeFeature},
	}
	for i, s := range steps {
		o.Update(key(s.key))
		node, _ := o.Focused()
		if node.Kind != s.want {
			t.Errorf("step %d (%s): Focused() = %v, want %v", i, s.key, node.Kind, s.want)
		}
	}

	// Shrinking content clamps the cursor.
	o.Update(key("down"))
	o.Update(key("down"))
	o.SetProps(Props{Features: testFeatures(1), Step: onboard.StepFeatureList, Show: true})
	if _, ok := o.Focused(); !ok {
		t.Error("focus should stay on a node after content shrinks")
	}
}

func TestOnboarding_HelpOverlay(t *testing.T) {
	o := newTestPanel()
	showPanel(t, o, onboard.StepInitial, testFeatures(2))

	o.Update(key("?"))
	if !o.HelpVisible() {
		t.Fatal("? should open help")
	}

	// Keys do not reach the panel while help is open.
	if effects := press(t, o, "enter"); len(effects) != 0 {
		t.Errorf("enter produced %v while help is open, want nothing", effects)
	}

	out := o.Render(NewRenderState(60, 40))
	if !strings.Contains(out, "toggle") && !strings.Contains(out, "select") {
		t.Errorf("help overlay missing bindings:\n%s", out)
	}

	o.Update(key("esc"))
	if o.HelpVisible() {
		t.Error("esc should close help")
	}
}

func TestOnboarding_Render(t *testing.T) {
	tests := []struct {
		name     string
		step     onboard.Step
		features []onboard.Feature
		contains []string
	}{
		{
			name:     "opener",
			step:     onboard.StepInitial,
			features: testFeatures(2),
			contains: []string{"Close", "Ada", "Start", "Skip onboarding"},
		},
		{
			name:     "resume opener",
			step:     onboard.StepInComplete,
			features: testFeatures(2),
			contains: []string{"Resume"},
		},
		{
			name:     "feature list",
			step:     onboard.StepFeatureList,
			features: testFeatures(2),
			contains: []string{"Hello", "Ada", "Feature 0", "Feature 1", "Explore more features"},
		},
		{
			name:     "detail",
			step:     onboard.StepFeatureDetail,
			features: testFeatures(2),
			contains: []string{"Back"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newTestPanel()
			showPanel(t, o, tt.step, tt.features)

			out := o.Render(NewRenderState(60, 40))
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("Render() missing %q in:\n%s", want, out)
				}
			}
			if o.Height() == 0 {
				t.Error("Height() = 0 for a mounted panel")
			}
		})
	}
}

func TestOnboarding_RenderInvalidState(t *testing.T) {
	o := newTestPanel()
	showPanel(t, o, onboard.StepInitial, nil)

	if got := o.Render(NewRenderState(0, 10)); !strings.Contains(got, "render error") {
		t.Errorf("Render() = %q, want render error", got)
	}
}

func TestOnboarding_IgnoresKeysWhenHidden(t *testing.T) {
	o := newTestPanel()
	if effects := press(t, o, "esc"); len(effects) != 0 {
		t.Errorf("hidden panel produced %v, want nothing", effects)
	}
}

func TestOnboarding_TakeEffectsDrains(t *testing.T) {
	o := newTestPanel()
	showPanel(t, o, onboard.StepFeatureList, testFeatures(2))

	o.Dispatch(onboard.Dismiss{})
	o.Dispatch(onboard.ActivateBack{})
	want := []onboard.Effect{
		onboard.ChangeRoute{Path: onboard.RouteHome},
		onboard.ChangeStep{Step: onboard.StepFeatureList},
	}
	if diff := cmp.Diff(want, o.TakeEffects()); diff != "" {
		t.Errorf("queued effects mismatch (-want +got):\n%s", diff)
	}
	if got := o.TakeEffects(); len(got) != 0 {
		t.Errorf("second TakeEffects() = %v, want empty", got)
	}
}

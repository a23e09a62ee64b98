package tui

import (
	"testing"

	"github.com/Iron-Ham/onboard/internal/event"
	"github.com/Iron-Ham/onboard/internal/onboard"
	"github.com/google/go-cmp/cmp"
)

func features(complete ...bool) []onboard.Feature {
	out := make([]onboard.Feature, len(complete))
	for i, c := range complete {
		out[i] = onboard.Feature{
			Name:       string(rune('a' + i)),
			Text:       "Feature " + string(rune('A'+i)),
			Icon:       "task",
			IsComplete: c,
		}
	}
	return out
}

func TestNewModel_InitialStep(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		wantStep onboard.Step
		wantShow bool
	}{
		{
			name:     "none complete",
			opts:     Options{Features: features(false, false)},
			wantStep: onboard.StepInitial,
			wantShow: true,
		},
		{
			name:     "some complete",
			opts:     Options{Features: features(true, false)},
			wantStep: onboard.StepInComplete,
			wantShow: true,
		},
		{
			name:     "all complete",
			opts:     Options{Features: features(true, true)},
			wantStep: onboard.StepUnset,
			wantShow: false,
		},
		{
			name:     "configured step wins",
			opts:     Options{Features: features(true, true), Step: onboard.StepFeatureList},
			wantStep: onboard.StepFeatureList,
			wantShow: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel(tt.opts)
			if m.Step() != tt.wantStep {
				t.Errorf("Step() = %q, want %q", m.Step(), tt.wantStep)
			}
			if m.Shown() != tt.wantShow {
				t.Errorf("Shown() = %v, want %v", m.Shown(), tt.wantShow)
			}
			if m.Route() != onboard.RouteHome {
				t.Errorf("Route() = %q, want home", m.Route())
			}
		})
	}
}

func TestModel_HostEffects(t *testing.T) {
	m := NewModel(Options{Features: features(false)})

	m.ChangeRoute(onboard.RouteOnboardStart)
	if m.Route() != onboard.RouteOnboardStart || !m.Shown() {
		t.Errorf("after onboardStart: route=%q shown=%v", m.Route(), m.Shown())
	}

	m.ChangeStep(onboard.StepFeatureDetail)
	if m.Step() != onboard.StepFeatureDetail {
		t.Errorf("Step() = %q, want %q", m.Step(), onboard.StepFeatureDetail)
	}

	m.ChangeRoute(onboard.RouteHome)
	if m.Shown() {
		t.Error("returning home should hide the panel")
	}
	if m.Step() != onboard.StepFeatureDetail {
		t.Error("returning home should keep the step")
	}

	m.open()
	if !m.Shown() || m.Step() != onboard.StepFeatureDetail {
		t.Errorf("open() resumed at %q shown=%v", m.Step(), m.Shown())
	}

	m.ForceComplete()
	if m.Step().IsSet() || m.Shown() || !m.Completed() {
		t.Errorf("after ForceComplete: step=%q shown=%v completed=%v", m.Step(), m.Shown(), m.Completed())
	}

	m.open()
	if m.Step() != onboard.StepFeatureList {
		t.Errorf("reopening a completed onboarding: Step() = %q, want %q", m.Step(), onboard.StepFeatureList)
	}
}

func TestModel_ApplyOrder(t *testing.T) {
	m := NewModel(Options{Features: features(false)})
	onboard.Apply(&m, []onboard.Effect{
		onboard.ChangeStep{Step: onboard.StepFeatureList},
		onboard.ChangeRoute{Path: onboard.RouteOnboardStart},
	})

	if m.Step() != onboard.StepFeatureList {
		t.Errorf("Step() = %q, want %q", m.Step(), onboard.StepFeatureList)
	}
	if m.Route() != onboard.RouteOnboardStart {
		t.Errorf("Route() = %q, want %q", m.Route(), onboard.RouteOnboardStart)
	}
}

func TestModel_PublishesSessionEvents(t *testing.T) {
	bus := event.NewBus(nil)
	var types []string
	bus.SubscribeAll(func(e event.Event) {
		types = append(types, e.EventType())
	})

	m := NewModel(Options{Features: features(true, false), Events: bus})
	onboard.Apply(&m, []onboard.Effect{
		onboard.ChangeStep{Step: onboard.StepFeatureList},
		onboard.ChangeRoute{Path: onboard.RouteHome},
	})
	m.open()
	m.ForceComplete()

	want := []string{
		event.TypeStepChanged,
		event.TypeRouteChanged,
		event.TypeOpened,
		event.TypeCompleted,
	}
	if diff := cmp.Diff(want, types); diff != "" {
		t.Errorf("published events mismatch (-want +got):\n%s", diff)
	}
	if m.Events() != bus {
		t.Error("Events() should return the configured bus")
	}
}

func TestModel_CompletedEventCounts(t *testing.T) {
	bus := event.NewBus(nil)
	var done event.CompletedEvent
	bus.Subscribe(event.TypeCompleted, func(e event.Event) {
		done = e.(event.CompletedEvent)
	})

	m := NewModel(Options{Features: features(true, false, false), Events: bus})
	m.ForceComplete()

	if done.SkippedFrom != onboard.StepInComplete {
		t.Errorf("SkippedFrom = %q, want %q", done.SkippedFrom, onboard.StepInComplete)
	}
	if done.Complete != 1 || done.Total != 3 {
		t.Errorf("counts = %d/%d, want 1/3", done.Complete, done.Total)
	}
}

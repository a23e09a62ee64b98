// Package tui provides the terminal host for the onboarding panel. The host
// owns the step, route, show flag, feature collection and user, and executes
// the effects the panel requests.
package tui

import (
	"github.com/Iron-Ham/onboard/internal/event"
	"github.com/Iron-Ham/onboard/internal/locale"
	"github.com/Iron-Ham/onboard/internal/logging"
	"github.com/Iron-Ham/onboard/internal/onboard"
	"github.com/Iron-Ham/onboard/internal/tui/keymap"
	"github.com/Iron-Ham/onboard/internal/tui/panel"
)

// Options configure a Model.
type Options struct {
	Features []onboard.Feature
	User     onboard.User
	// Step is the starting step. StepUnset derives it from feature
	// completion.
	Step onboard.Step
	// PanelWidth is the panel column width. Zero selects DefaultPanelWidth.
	PanelWidth int
	Panel      panel.Options
	Logger     *logging.Logger
	// Events receives the session events. Nil creates a bus that logs
	// every event.
	Events *event.Bus
}

// Model holds the host application state
type Model struct {
	// Core components
	panel  *panel.Onboarding
	keys   *keymap.Keymap
	tr     *locale.Translator
	logger *logging.Logger
	events *event.Bus

	// Host-owned onboarding inputs
	features []onboard.Feature
	user     onboard.User
	step     onboard.Step
	route    string
	show     bool

	// UI state
	width        int
	height       int
	panelWidth   int
	ready        bool
	quitting     bool
	completed    bool
	errorMessage string
	infoMessage  string
}

// NewModel creates a new host model. The panel is shown on start when the
// starting step is set.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	if opts.Panel.Keymap == nil {
		opts.Panel.Keymap = keymap.DefaultKeymap()
	}
	if opts.Panel.Translator == nil {
		opts.Panel.Translator = locale.Identity()
	}
	if opts.Panel.Logger == nil {
		opts.Panel.Logger = logger
	}
	if opts.PanelWidth <= 0 {
		opts.PanelWidth = DefaultPanelWidth
	}

	events := opts.Events
	if events == nil {
		events = event.NewBus(logger)
		event.LogEvents(events, logger)
	}

	step := opts.Step
	if !step.IsSet() {
		step = onboard.InitialStep(opts.Features)
	}

	return Model{
		panel:      panel.NewOnboarding(opts.Panel),
		keys:       opts.Panel.Keymap,
		tr:         opts.Panel.Translator,
		logger:     logger.WithComponent("host"),
		events:     events,
		features:   opts.Features,
		user:       opts.User,
		step:       step,
		route:      onboard.RouteHome,
		show:       step.IsSet(),
		panelWidth: opts.PanelWidth,
	}
}

// ChangeStep implements onboard.Host.
func (m *Model) ChangeStep(step onboard.Step) {
	m.events.Publish(event.NewStepChangedEvent(m.step, step))
	m.step = step
}

// ChangeRoute implements onboard.Host. Leaving the onboarding routes hides
// the panel; step and selection are kept so reopening resumes.
func (m *Model) ChangeRoute(path string) {
	m.events.Publish(event.NewRouteChangedEvent(m.route, path))
	m.route = path
	if path == onboard.RouteHome {
		m.show = false
	}
}

// ForceComplete implements onboard.Host.
func (m *Model) ForceComplete() {
	m.events.Publish(event.NewCompletedEvent(m.step, onboard.CountComplete(m.features), len(m.features)))
	m.step = onboard.StepUnset
	m.route = onboard.RouteHome
	m.show = false
	m.completed = true
	m.infoMessage = m.tr.T("Onboarding complete")
}

// open reopens the panel. A finished onboarding resumes on the feature list.
func (m *Model) open() {
	if !m.step.IsSet() {
		m.step = onboard.StepFeatureList
	}
	m.show = true
	m.infoMessage = ""
	m.events.Publish(event.NewOpenedEvent(m.step))
}

// props returns the current panel inputs.
func (m Model) props() panel.Props {
	return panel.Props{
		Features: m.features,
		Step:     m.step,
		User:     m.user,
		Show:     m.show,
	}
}

// Step returns the current onboarding step.
func (m Model) Step() onboard.Step { return m.step }

// Route returns the current route.
func (m Model) Route() string { return m.route }

// Shown reports whether the host asks for the panel to be visible.
func (m Model) Shown() bool { return m.show }

// Completed reports whether onboarding was force-completed this session.
func (m Model) Completed() bool { return m.completed }

// Features returns the current feature collection.
func (m Model) Features() []onboard.Feature { return m.features }

// Events returns the bus the host publishes session events on.
func (m Model) Events() *event.Bus { return m.events }

// Panel returns the onboarding panel component.
func (m Model) Panel() *panel.Onboarding { return m.panel }

// keyMode returns the keymap mode for the next key press. Keys reach the
// panel only while it is requested and mounted.
func (m Model) keyMode() keymap.Mode {
	if m.show && m.panel.Mounted() {
		return m.panel.KeyMode()
	}
	return keymap.ModeHome
}

var _ onboard.Host = (*Model)(nil)

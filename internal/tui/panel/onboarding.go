package panel

import (
	"fmt"
	"strings"
	"time"

	"github.com/Iron-Ham/onboard/internal/locale"
	"github.com/Iron-Ham/onboard/internal/logging"
	"github.com/Iron-Ham/onboard/internal/onboard"
	"github.com/Iron-Ham/onboard/internal/onboard/transition"
	"github.com/Iron-Ham/onboard/internal/tui/keymap"
	"github.com/Iron-Ham/onboard/internal/tui/msg"
	"github.com/Iron-Ham/onboard/internal/tui/styles"
	"github.com/Iron-Ham/onboard/internal/tui/view"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Props are the inputs the host passes to the onboarding panel.
type Props struct {
	Features []onboard.Feature
	Step     onboard.Step
	User     onboard.User
	Show     bool
}

// Options configure an Onboarding panel.
type Options struct {
	// FeatureLimit is the collapsed list length. Zero selects the default.
	FeatureLimit int
	// Animation is the show/hide duration. Zero selects the default.
	Animation time.Duration
	// FPS is the animation frame rate. Zero selects the default.
	FPS int
	// Translator looks up labels. Nil renders English.
	Translator *locale.Translator
	// Keymap resolves keys. Nil selects keymap.DefaultKeymap.
	Keymap *keymap.Keymap
	// MarkdownStyle is the glamour style of the detail view.
	MarkdownStyle string
	// Logger receives panel events. Nil discards them.
	Logger *logging.Logger
	// Now returns the current time. Nil selects time.Now.
	Now func() time.Time
}

// scrollStep is how many lines pgup/pgdown move the feature list.
const scrollStep = 3

// Onboarding is the onboarding panel component. It owns the panel-local
// step controller state, the visibility gate, the focus cursor and the
// scroll position of the feature list. Shared state changes leave it only
// as effects the host drains with TakeEffects.
//
// The controller state lives as long as the Onboarding value. Hiding and
// re-showing the panel keeps the selection and the list length.
type Onboarding struct {
	props   Props
	state   onboard.State
	pending []onboard.Effect
	gate    *transition.Gate
	content onboard.Content
	mode    onboard.Mode
	focus   int

	list       viewport.Model
	help       *HelpPanel
	showHelp   bool
	helpScroll int

	opener *view.OpenerView
	detail *view.FeatureDetailView
	tr     *locale.Translator
	keys   *keymap.Keymap
	logger *logging.Logger
	now    func() time.Time

	height int
}

// NewOnboarding creates a hidden onboarding panel.
func NewOnboarding(opts Options) *Onboarding {
	if opts.Keymap == nil {
		opts.Keymap = keymap.DefaultKeymap()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NopLogger()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	tr := opts.Translator
	if tr == nil {
		tr = locale.Identity()
	}

	return &Onboarding{
		state:  onboard.NewState(opts.FeatureLimit),
		gate:   transition.NewGate(opts.Animation, opts.FPS),
		list:   viewport.New(0, 0),
		help:   NewHelpPanel(tr.T("Keyboard shortcuts")),
		opener: view.NewOpenerView(tr),
		detail: view.NewFeatureDetailView(tr, opts.MarkdownStyle),
		tr:     tr,
		keys:   opts.Keymap,
		logger: opts.Logger.WithComponent("panel"),
		now:    opts.Now,
	}
}

// SetProps stores new inputs from the host and reconciles the gate. It
// returns a frame command when an animation starts.
func (o *Onboarding) SetProps(p Props) tea.Cmd {
	prevTotal := len(o.props.Features)
	o.props = p

	if len(p.Features) != prevTotal {
		o.state, _ = onboard.Reduce(o.state, onboard.FeaturesChanged{Total: len(p.Features)})
	}

	var cmd tea.Cmd
	wasMounted := o.gate.Mounted()
	if o.gate.Set(transition.Active(p.Show, p.Step), o.now()) {
		if !wasMounted {
			o.showHelp = false
			o.mode = onboard.ModeNone
		}
		o.logger.Debug("panel transition",
			"phase", o.gate.Phase().String(),
			"generation", o.gate.Generation(),
		)
		cmd = msg.Frame(o.gate.Generation(), o.gate.FrameInterval())
	}

	o.refresh()
	return cmd
}

// Props returns the inputs last passed to SetProps.
func (o *Onboarding) Props() Props { return o.props }

// State returns the step controller state.
func (o *Onboarding) State() onboard.State { return o.state }

// Phase returns the visibility gate phase.
func (o *Onboarding) Phase() transition.Phase { return o.gate.Phase() }

// Generation returns the generation of the latest transition. Frame
// messages carry it.
func (o *Onboarding) Generation() uint64 { return o.gate.Generation() }

// Mounted reports whether the panel is on screen, including while its exit
// animation runs.
func (o *Onboarding) Mounted() bool { return o.gate.Mounted() }

// Content returns the nodes of the current render.
func (o *Onboarding) Content() onboard.Content { return o.content }

// HelpVisible reports whether the help overlay is open.
func (o *Onboarding) HelpVisible() bool { return o.showHelp }

// KeyMode returns the keymap mode the panel is in.
func (o *Onboarding) KeyMode() keymap.Mode {
	if o.showHelp {
		return keymap.ModeHelp
	}
	return keymap.ModePanel
}

// Focused returns the focused node, if any.
func (o *Onboarding) Focused() (onboard.Node, bool) {
	idx := o.content.Activatable()
	if len(idx) == 0 {
		return onboard.Node{}, false
	}
	return o.content[idx[o.focus]], true
}

// refresh recomputes the content tree and keeps the focus cursor valid.
// Focus returns to the first control after the dismiss control whenever
// the render branch changes.
func (o *Onboarding) refresh() {
	if !o.gate.Mounted() {
		o.content = nil
		o.focus = 0
		return
	}

	o.content = onboard.Render(o.props.Step, o.state, o.props.Features, o.props.User)
	mode := o.props.Step.Mode()
	n := len(o.content.Activatable())

	switch {
	case mode != o.mode:
		o.mode = mode
		o.focus = min(1, max(n-1, 0))
		o.list.SetYOffset(0)
	case o.focus >= n:
		o.focus = max(n-1, 0)
	}
}

// Update handles key presses and animation frames.
func (o *Onboarding) Update(m tea.Msg) (*Onboarding, tea.Cmd) {
	switch m := m.(type) {
	case msg.FrameMsg:
		if o.gate.Frame(m.Generation, m.Time) {
			return o, msg.Frame(m.Generation, o.gate.FrameInterval())
		}
		if !o.gate.Mounted() {
			o.refresh()
		}
		return o, nil

	case tea.KeyMsg:
		if !o.gate.Mounted() {
			return o, nil
		}
		cmd, ok := o.keys.GetBinding(m, o.KeyMode())
		if !ok {
			return o, nil
		}
		o.handleCommand(cmd)
		return o, nil
	}

	return o, nil
}

func (o *Onboarding) handleCommand(cmd keymap.Command) {
	if o.showHelp {
		switch cmd {
		case keymap.CmdScrollDown:
			o.helpScroll++
		case keymap.CmdScrollUp:
			o.helpScroll = max(o.helpScroll-1, 0)
		case keymap.CmdToggleHelp:
			o.showHelp = false
		}
		return
	}

	switch cmd {
	case keymap.CmdFocusNext:
		o.moveFocus(1)
	case keymap.CmdFocusPrev:
		o.moveFocus(-1)
	case keymap.CmdScrollDown:
		o.list.SetYOffset(o.list.YOffset + scrollStep)
	case keymap.CmdScrollUp:
		o.list.SetYOffset(o.list.YOffset - scrollStep)
	case keymap.CmdToggleHelp:
		o.showHelp = true
		o.helpScroll = 0
	case keymap.CmdActivate:
		if node, ok := o.Focused(); ok {
			o.Dispatch(node.Event)
		}
	case keymap.CmdBack:
		if node, ok := o.content.Find(onboard.NodeBack); ok {
			o.Dispatch(node.Event)
		}
	case keymap.CmdToggleList:
		if node, ok := o.content.Find(onboard.NodeToggle); ok {
			o.Dispatch(node.Event)
		}
	case keymap.CmdDismiss:
		if node, ok := o.content.Find(onboard.NodeDismiss); ok {
			o.Dispatch(node.Event)
		}
	}
}

func (o *Onboarding) moveFocus(delta int) {
	n := len(o.content.Activatable())
	if n == 0 {
		return
	}
	o.focus = ((o.focus+delta)%n + n) % n
}

// Dispatch runs ev through the reducer, installs the new state and queues
// the resulting effects for the host. The host applies them in the same
// update, before the next frame is drawn.
func (o *Onboarding) Dispatch(ev onboard.Event) {
	if ev == nil {
		return
	}
	next, effects := onboard.Reduce(o.state, ev)
	o.state = next

	o.logger.WithStep(string(o.props.Step)).Debug("panel event",
		"event", eventName(ev),
		"effects", len(effects),
		"limit", o.state.Limit,
	)

	o.pending = append(o.pending, effects...)
	o.refresh()
}

// TakeEffects returns the effects queued since the last call and clears
// the queue.
func (o *Onboarding) TakeEffects() []onboard.Effect {
	effects := o.pending
	o.pending = nil
	return effects
}

func eventName(ev onboard.Event) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", ev), "onboard.")
}

// Render implements PanelRenderer.
func (o *Onboarding) Render(state *RenderState) string {
	if !o.gate.Mounted() {
		o.height = 0
		return ""
	}
	if err := state.ValidateBasic(); err != nil {
		o.height = 1
		return "[onboarding panel: render error]"
	}

	s := styles.GetActiveTheme()
	box := s.PanelBox
	inner := max(state.Width-box.GetHorizontalFrameSize(), 1)
	innerHeight := max(state.Height-box.GetVerticalFrameSize(), 1)

	var body string
	if o.showHelp {
		sections := state.HelpSections
		if len(sections) == 0 {
			sections = HelpSectionsFromKeymap(o.keys, keymap.ModePanel)
		}
		helpState := &RenderState{
			Width:        inner,
			Height:       innerHeight - 1,
			Theme:        state.Theme,
			ScrollOffset: o.helpScroll,
			HelpSections: sections,
		}
		o.helpScroll = min(o.helpScroll, o.help.MaxScroll(helpState))
		helpState.ScrollOffset = o.helpScroll
		body = o.help.Render(helpState)
	} else {
		body = o.renderBody(inner, innerHeight-1)
	}

	header := lipgloss.PlaceHorizontal(inner, lipgloss.Right, view.CloseControl(o.tr, o.focusedKind(onboard.NodeDismiss)))
	out := box.Width(state.Width - box.GetHorizontalBorderSize()).Render(header + "\n" + body)

	out = o.reveal(out)
	o.height = lipgloss.Height(out)
	if out == "" {
		o.height = 0
	}
	return out
}

// reveal clips the panel to the share of lines the animation has reached.
func (o *Onboarding) reveal(out string) string {
	if !o.gate.Animating() {
		return out
	}
	lines := strings.Split(out, "\n")
	shown := int(o.gate.Position()*float64(len(lines)) + 0.5)
	if shown <= 0 {
		return ""
	}
	return strings.Join(lines[:min(shown, len(lines))], "\n")
}

// Height implements PanelRenderer.
func (o *Onboarding) Height() int { return o.height }

func (o *Onboarding) focusedKind(kind onboard.NodeKind) bool {
	node, ok := o.Focused()
	return ok && node.Kind == kind
}

func (o *Onboarding) isFocused(node onboard.Node) bool {
	f, ok := o.Focused()
	if !ok || f.Kind != node.Kind {
		return false
	}
	if node.Feature != nil && f.Feature != nil {
		return node.Feature.Name == f.Feature.Name
	}
	return true
}

func (o *Onboarding) renderBody(width, height int) string {
	switch o.props.Step.Mode() {
	case onboard.ModeOpener:
		opener, _ := o.content.Find(onboard.NodeOpener)
		skip, _ := o.content.Find(onboard.NodeSkip)
		focus := view.OpenerFocusNone
		switch {
		case o.focusedKind(onboard.NodeOpener):
			focus = view.OpenerFocusButton
		case o.focusedKind(onboard.NodeSkip):
			focus = view.OpenerFocusSkip
		}
		return o.opener.Render(opener, skip, focus)

	case onboard.ModeFeatureDetail:
		var b strings.Builder
		b.WriteString(view.BackControl(o.tr, o.focusedKind(onboard.NodeBack)))
		if node, ok := o.content.Find(onboard.NodeDetail); ok && node.Feature != nil {
			b.WriteString("\n\n")
			b.WriteString(o.detail.Render(*node.Feature, width))
		}
		return b.String()

	case onboard.ModeFeatureList:
		return o.renderList(width, height)
	}
	return ""
}

// renderList lays out the greeting, the scrollable feature summaries and
// the toggle control, keeping the focused summary in view.
func (o *Onboarding) renderList(width, height int) string {
	greeting := ""
	if node, ok := o.content.Find(onboard.NodeGreeting); ok {
		greeting = view.Greeting(o.tr, node)
	}
	toggle := ""
	if node, ok := o.content.Find(onboard.NodeToggle); ok {
		toggle = view.ToggleControl(o.tr, node.Label, o.isFocused(node))
	}

	item := view.NewActionItem(o.tr, width)
	var items []string
	var focusTop, focusBottom, line int
	focusTop = -1
	index := 0
	for _, node := range o.content {
		if node.Kind != onboard.NodeFeature || node.Feature == nil {
			continue
		}
		rendered := item.Render(*node.Feature, index, o.isFocused(node))
		h := lipgloss.Height(rendered)
		if o.isFocused(node) {
			focusTop, focusBottom = line, line+h-1
		}
		items = append(items, rendered)
		line += h + 1
		index++
	}
	listContent := strings.Join(items, "\n\n")

	fixed := lipgloss.Height(greeting) + lipgloss.Height(toggle) + 2
	listHeight := max(height-fixed, 3)
	listHeight = min(listHeight, max(lipgloss.Height(listContent), 1))

	o.list.Width = width
	o.list.Height = listHeight
	o.list.SetContent(listContent)
	if focusTop >= 0 {
		switch {
		case focusTop < o.list.YOffset:
			o.list.SetYOffset(focusTop)
		case focusBottom >= o.list.YOffset+o.list.Height:
			o.list.SetYOffset(focusBottom - o.list.Height + 1)
		}
	}

	var b strings.Builder
	b.WriteString(greeting)
	b.WriteString("\n\n")
	if len(items) > 0 {
		b.WriteString(o.list.View())
		b.WriteString("\n")
	}
	b.WriteString(toggle)
	return b.String()
}

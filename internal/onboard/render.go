package onboard

// NodeKind identifies a region of the rendered panel.
type NodeKind int

// Node kinds.
const (
	NodeDismiss NodeKind = iota
	NodeOpener
	NodeSkip
	NodeBack
	NodeDetail
	NodeGreeting
	NodeFeature
	NodeToggle
)

// String returns the kind name used in logs and tests.
func (k NodeKind) String() string {
	switch k {
	case NodeDismiss:
		return "dismiss"
	case NodeOpener:
		return "opener"
	case NodeSkip:
		return "skip"
	case NodeBack:
		return "back"
	case NodeDetail:
		return "detail"
	case NodeGreeting:
		return "greeting"
	case NodeFeature:
		return "feature"
	case NodeToggle:
		return "toggle"
	default:
		return "unknown"
	}
}

// Untranslated labels. Views pass them through a string lookup.
const (
	LabelStart        = "Start"
	LabelResume       = "Resume"
	LabelSkip         = "Skip onboarding"
	LabelExploreMore  = "Explore more features"
	LabelHideSome     = "Hide some features"
	LabelHello        = "Hello"
	LabelWhichFeature = "Which feature do you want to set up"
)

// Node is one region of the panel. Nodes with a non-nil Event can be
// focused and activated.
type Node struct {
	Kind     NodeKind
	Label    string
	UserName string
	Feature  *Feature
	Event    Event
}

// Activatable reports whether the node reacts to activation.
func (n Node) Activatable() bool {
	return n.Event != nil
}

// Content is the ordered node list of a panel render.
type Content []Node

// Activatable returns the indexes of activatable nodes in order.
func (c Content) Activatable() []int {
	var idx []int
	for i, n := range c {
		if n.Activatable() {
			idx = append(idx, i)
		}
	}
	return idx
}

// Find returns the first node of the given kind.
func (c Content) Find(kind NodeKind) (Node, bool) {
	for _, n := range c {
		if n.Kind == kind {
			return n, true
		}
	}
	return Node{}, false
}

// Count returns how many nodes of the given kind are present.
func (c Content) Count(kind NodeKind) int {
	n := 0
	for _, node := range c {
		if node.Kind == kind {
			n++
		}
	}
	return n
}

// Render returns the full panel content for a mounted panel: the dismiss
// control followed by the step content.
func Render(step Step, s State, features []Feature, user User) Content {
	content := Content{{Kind: NodeDismiss, Event: Dismiss{}}}
	return append(content, RenderContent(step, s, features, user)...)
}

// RenderContent selects the step branch. Unknown or unset steps render
// nothing.
func RenderContent(step Step, s State, features []Feature, user User) Content {
	name := DisplayName(user)

	switch step.Mode() {
	case ModeOpener:
		label := LabelResume
		if step == StepInitial {
			label = LabelStart
		}
		return Content{
			{Kind: NodeOpener, Label: label, UserName: name, Event: ActivateOpener{}},
			{Kind: NodeSkip, Label: LabelSkip, Event: ActivateSkip{}},
		}

	case ModeFeatureDetail:
		content := Content{{Kind: NodeBack, Event: ActivateBack{}}}
		if s.Selection != nil {
			f := *s.Selection
			content = append(content, Node{Kind: NodeDetail, Feature: &f})
		}
		return content

	case ModeFeatureList:
		visible := VisibleFeatures(features, s.Limit)
		content := make(Content, 0, len(visible)+2)
		content = append(content, Node{Kind: NodeGreeting, Label: LabelHello, UserName: name})
		for _, f := range visible {
			f := f
			content = append(content, Node{
				Kind:    NodeFeature,
				Label:   f.Text,
				Feature: &f,
				Event:   ActivateFeature{Feature: f},
			})
		}
		label := LabelHideSome
		if s.IsCollapsed() {
			label = LabelExploreMore
		}
		return append(content, Node{
			Kind:  NodeToggle,
			Label: label,
			Event: ToggleList{Total: len(features)},
		})
	}

	return nil
}

package onboard

// Event is a user activation dispatched to Reduce.
type Event interface {
	isEvent()
}

// ActivateOpener is the Start/Resume button.
type ActivateOpener struct{}

// ActivateSkip is the opener's skip control, passed through to the host's
// force-complete handler.
type ActivateSkip struct{}

// ActivateFeature selects a feature summary.
type ActivateFeature struct {
	Feature Feature
}

// ActivateBack is the back control of the detail view.
type ActivateBack struct{}

// ToggleList collapses or expands the feature list. Total is the current
// number of available features.
type ToggleList struct {
	Total int
}

// FeaturesChanged reports a new feature count from the caller.
type FeaturesChanged struct {
	Total int
}

// Dismiss is the close control rendered on every step.
type Dismiss struct{}

func (ActivateOpener) isEvent()  {}
func (ActivateSkip) isEvent()    {}
func (ActivateFeature) isEvent() {}
func (ActivateBack) isEvent()    {}
func (ToggleList) isEvent()      {}
func (FeaturesChanged) isEvent() {}
func (Dismiss) isEvent()         {}

// Effect is a request to the owner of shared state.
type Effect interface {
	isEffect()
}

// ChangeStep asks the host to move to Step.
type ChangeStep struct {
	Step Step
}

// ChangeRoute asks the host to navigate to Path.
type ChangeRoute struct {
	Path string
}

// ForceComplete asks the host to finish onboarding immediately.
type ForceComplete struct{}

func (ChangeStep) isEffect()    {}
func (ChangeRoute) isEffect()   {}
func (ForceComplete) isEffect() {}

// Host executes effects. Effects are fire-and-forget.
type Host interface {
	ChangeStep(step Step)
	ChangeRoute(path string)
	ForceComplete()
}

// Apply executes effects against h in order.
func Apply(h Host, effects []Effect) {
	for _, e := range effects {
		switch e := e.(type) {
		case ChangeStep:
			h.ChangeStep(e.Step)
		case ChangeRoute:
			h.ChangeRoute(e.Path)
		case ForceComplete:
			h.ForceComplete()
		}
	}
}

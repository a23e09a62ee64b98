package onboard

// Reduce applies ev to s and returns the next state with the effects the
// host must execute. The caller installs the returned state before running
// the effects.
func Reduce(s State, ev Event) (State, []Effect) {
	switch ev := ev.(type) {
	case ActivateOpener:
		return s, []Effect{
			ChangeStep{Step: StepFeatureList},
			ChangeRoute{Path: RouteOnboardStart},
		}

	case ActivateSkip:
		return s, []Effect{ForceComplete{}}

	case ActivateFeature:
		f := ev.Feature
		s.Selection = &f
		return s, []Effect{ChangeStep{Step: StepFeatureDetail}}

	case ActivateBack:
		s.Selection = nil
		return s, []Effect{ChangeStep{Step: StepFeatureList}}

	case ToggleList:
		if s.IsCollapsed() {
			s.Limit = max(ev.Total, 0)
		} else {
			s.Limit = s.CollapsedLimit
		}
		return s, nil

	case FeaturesChanged:
		// An expanded list keeps showing every feature.
		if !s.IsCollapsed() {
			s.Limit = max(ev.Total, 0)
		}
		return s, nil

	case Dismiss:
		return s, []Effect{ChangeRoute{Path: RouteHome}}
	}

	return s, nil
}

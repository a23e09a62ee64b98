package onboard

// DefaultFeatureLimit is the number of features shown while the list is
// collapsed.
const DefaultFeatureLimit = 9

// State is the panel-local part of the state machine.
type State struct {
	// Selection is the feature shown in the detail view, or nil.
	Selection *Feature
	// Limit is the number of features shown. It is always CollapsedLimit or
	// the length of the feature collection at the last toggle.
	Limit int
	// CollapsedLimit is the limit restored when the list collapses.
	CollapsedLimit int
}

// NewState returns the state of a freshly mounted panel. A non-positive
// collapsedLimit selects DefaultFeatureLimit.
func NewState(collapsedLimit int) State {
	if collapsedLimit <= 0 {
		collapsedLimit = DefaultFeatureLimit
	}
	return State{
		Limit:          collapsedLimit,
		CollapsedLimit: collapsedLimit,
	}
}

// IsCollapsed reports whether the list shows only the collapsed limit.
func (s State) IsCollapsed() bool {
	return s.Limit == s.CollapsedLimit
}

// VisibleFeatures returns the first limit features in their original order.
// The returned slice shares storage with all.
func VisibleFeatures(all []Feature, limit int) []Feature {
	if limit <= 0 {
		return all[:0]
	}
	if limit > len(all) {
		limit = len(all)
	}
	return all[:limit]
}

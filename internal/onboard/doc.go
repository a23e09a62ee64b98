// Package onboard implements the onboarding step state machine.
//
// The package is a pure reducer over an externally driven [Step] plus two
// pieces of panel-local state kept in [State]: the selected feature and the
// feature display limit. It knows nothing about terminals or Bubble Tea.
//
// # Main Types
//
//   - [Feature]: a configurable capability with display metadata
//   - [Step]: the externally owned marker selecting which region is active
//   - [State]: selection and feature limit for one mounted panel
//   - [Event]: a user activation (open, select feature, back, toggle, dismiss)
//   - [Effect]: an outward request (change step, change route, force complete)
//   - [Content]: the ordered node list a view turns into output
//
// # Flow
//
// A host renders with [Render], maps a key press on the focused node to that
// node's [Event], and calls [Reduce]. The returned state replaces the old one
// before the returned effects are executed, so a render that observes the
// requested step always sees the matching selection.
//
//	content := onboard.Render(step, state, features, user)
//	state, effects := onboard.Reduce(state, content[i].Event)
//	onboard.Apply(host, effects)
package onboard

// Package event provides a synchronous pub-sub bus for onboarding lifecycle
// events.
//
// The terminal host publishes an event whenever it executes a panel effect
// (step or route change, forced completion), reopens the panel, or reloads
// the feature catalog. Subscribers observe the session without the host
// knowing about them; [LogEvents] is the subscriber the CLI installs.
//
// # Main Types
//
//   - [Event]: interface providing EventType() and Timestamp()
//   - [Bus]: synchronous dispatcher, safe for concurrent use
//   - [Handler]: func(Event)
//
// # Events
//
//   - [StepChangedEvent]
//   - [RouteChangedEvent]
//   - [OpenedEvent]
//   - [CompletedEvent]
//   - [CatalogReloadedEvent]
//
// # Usage
//
//	bus := event.NewBus(logger)
//	bus.Subscribe(event.TypeCompleted, func(e event.Event) {
//		done := e.(event.CompletedEvent)
//		fmt.Println("skipped from", done.SkippedFrom)
//	})
package event

package event

import (
	"time"

	"github.com/Iron-Ham/onboard/internal/onboard"
)

// Event is the interface that all events implement.
type Event interface {
	// EventType returns a "category.action" identifier such as
	// "onboarding.step_changed".
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Event type identifiers.
const (
	TypeStepChanged     = "onboarding.step_changed"
	TypeRouteChanged    = "onboarding.route_changed"
	TypeOpened          = "onboarding.opened"
	TypeCompleted       = "onboarding.completed"
	TypeCatalogReloaded = "catalog.reloaded"
)

type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

func newBaseEvent(eventType string) baseEvent {
	return baseEvent{eventType: eventType, timestamp: time.Now()}
}

// StepChangedEvent is emitted when the host moves to another onboarding step.
type StepChangedEvent struct {
	baseEvent
	From onboard.Step
	To   onboard.Step
}

// NewStepChangedEvent creates a StepChangedEvent.
func NewStepChangedEvent(from, to onboard.Step) StepChangedEvent {
	return StepChangedEvent{baseEvent: newBaseEvent(TypeStepChanged), From: from, To: to}
}

// RouteChangedEvent is emitted when the host navigates.
type RouteChangedEvent struct {
	baseEvent
	From string
	To   string
}

// NewRouteChangedEvent creates a RouteChangedEvent.
func NewRouteChangedEvent(from, to string) RouteChangedEvent {
	return RouteChangedEvent{baseEvent: newBaseEvent(TypeRouteChanged), From: from, To: to}
}

// OpenedEvent is emitted when the user reopens a hidden panel.
type OpenedEvent struct {
	baseEvent
	Step onboard.Step
}

// NewOpenedEvent creates an OpenedEvent.
func NewOpenedEvent(step onboard.Step) OpenedEvent {
	return OpenedEvent{baseEvent: newBaseEvent(TypeOpened), Step: step}
}

// CompletedEvent is emitted when onboarding is force-completed.
type CompletedEvent struct {
	baseEvent
	SkippedFrom onboard.Step
	Complete    int // features complete at the time
	Total       int
}

// NewCompletedEvent creates a CompletedEvent.
func NewCompletedEvent(skippedFrom onboard.Step, complete, total int) CompletedEvent {
	return CompletedEvent{
		baseEvent:   newBaseEvent(TypeCompleted),
		SkippedFrom: skippedFrom,
		Complete:    complete,
		Total:       total,
	}
}

// CatalogReloadedEvent is emitted when the feature catalog file changes.
type CatalogReloadedEvent struct {
	baseEvent
	Features int
}

// NewCatalogReloadedEvent creates a CatalogReloadedEvent.
func NewCatalogReloadedEvent(features int) CatalogReloadedEvent {
	return CatalogReloadedEvent{baseEvent: newBaseEvent(TypeCatalogReloaded), Features: features}
}

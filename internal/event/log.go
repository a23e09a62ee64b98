package event

import "github.com/Iron-Ham/onboard/internal/logging"

// LogEvents subscribes a handler that writes every event to logger and
// returns its subscription ID.
func LogEvents(bus *Bus, logger *logging.Logger) string {
	logger = logger.WithComponent("session")
	return bus.SubscribeAll(func(e Event) {
		switch e := e.(type) {
		case StepChangedEvent:
			logger.WithStep(string(e.To)).Debug("step changed", "from", string(e.From))
		case RouteChangedEvent:
			logger.WithRoute(e.To).Debug("route changed", "from", e.From)
		case OpenedEvent:
			logger.WithStep(string(e.Step)).Info("onboarding opened")
		case CompletedEvent:
			logger.Info("onboarding completed",
				"skipped_from", string(e.SkippedFrom),
				"complete", e.Complete,
				"total", e.Total)
		case CatalogReloadedEvent:
			logger.Info("feature catalog reloaded", "features", e.Features)
		default:
			logger.Debug("event", "type", e.EventType())
		}
	})
}

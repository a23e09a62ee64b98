package msg

import (
	"time"

	"github.com/Iron-Ham/onboard/internal/onboard"
)

// FrameMsg advances the show/hide animation. Frames carry the generation
// of the transition that scheduled them; stale frames are dropped.
type FrameMsg struct {
	Generation uint64
	Time       time.Time
}

// FeaturesChangedMsg replaces the host's feature collection, typically
// after the catalog file was reloaded.
type FeaturesChangedMsg struct {
	Features []onboard.Feature
}

// ErrMsg wraps an error to be displayed in the UI.
type ErrMsg struct {
	Err error
}

// ClearErrMsg clears a displayed error once it has been shown long enough.
type ClearErrMsg struct{}

package onboard

import (
	"github.com/Iron-Ham/onboard/internal/errors"
)

// Step selects which region of the onboarding panel is active. The zero
// value is the unset step.
type Step string

// Known step values.
const (
	StepUnset         Step = ""
	StepInitial       Step = "initial"
	StepInComplete    Step = "inComplete"
	StepFeatureDetail Step = "featureDetail"
	StepFeatureList   Step = "featureList"
)

// Routes requested through ChangeRoute.
const (
	RouteHome         = ""
	RouteOnboardStart = "onboardStart"
)

// ValidSteps returns the settable step values.
func ValidSteps() []Step {
	return []Step{StepInitial, StepInComplete, StepFeatureList, StepFeatureDetail}
}

// ParseStep converts user input to a Step. The empty string parses to
// StepUnset.
func ParseStep(s string) (Step, error) {
	if s == "" {
		return StepUnset, nil
	}
	for _, step := range ValidSteps() {
		if string(step) == s {
			return step, nil
		}
	}
	return StepUnset, errors.NewValidationError("unknown onboarding step").
		WithField("step").
		WithValue(s).
		WithCause(errors.ErrInvalidStep)
}

// IsSet reports whether the step carries any value.
func (s Step) IsSet() bool {
	return s != StepUnset
}

// Mode is the render branch selected by a step.
type Mode int

// Render modes, in branch precedence order.
const (
	ModeNone Mode = iota
	ModeOpener
	ModeFeatureDetail
	ModeFeatureList
)

// String returns the mode name used in logs.
func (m Mode) String() string {
	switch m {
	case ModeOpener:
		return "opener"
	case ModeFeatureDetail:
		return "featureDetail"
	case ModeFeatureList:
		return "featureList"
	default:
		return "none"
	}
}

// Mode maps the step to its render branch. Unknown values render nothing.
func (s Step) Mode() Mode {
	switch s {
	case StepInitial, StepInComplete:
		return ModeOpener
	case StepFeatureDetail:
		return ModeFeatureDetail
	case StepFeatureList:
		return ModeFeatureList
	default:
		return ModeNone
	}
}

// InitialStep picks the opener step for a feature collection: initial when
// nothing is done yet, inComplete when some features are done, and unset
// once every feature is complete.
func InitialStep(features []Feature) Step {
	done := CountComplete(features)
	switch {
	case done == 0:
		return StepInitial
	case done < len(features):
		return StepInComplete
	default:
		return StepUnset
	}
}

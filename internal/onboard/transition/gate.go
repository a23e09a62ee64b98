// Package transition decides whether the onboarding panel is mounted and
// drives its entrance and exit animation.
//
// The gate is a four-state machine (hidden, entering, visible, exiting).
// Each transition starts a new generation; animation frames and completion
// signals carry the generation they were scheduled for and are ignored once
// a newer request has superseded them.
package transition

import (
	"time"

	"github.com/Iron-Ham/onboard/internal/onboard"
	"github.com/charmbracelet/harmonica"
)

// DefaultDuration is the fixed length of an entrance or exit animation.
const DefaultDuration = 600 * time.Millisecond

// DefaultFPS is the frame rate of animation ticks.
const DefaultFPS = 60

// Spring parameters for the slide offset.
const (
	springFrequency = 7.0
	springDamping   = 0.9
)

// Phase is the gate state.
type Phase int

// Gate phases.
const (
	Hidden Phase = iota
	Entering
	Visible
	Exiting
)

// String returns the phase name used in logs.
func (p Phase) String() string {
	switch p {
	case Hidden:
		return "hidden"
	case Entering:
		return "entering"
	case Visible:
		return "visible"
	case Exiting:
		return "exiting"
	default:
		return "unknown"
	}
}

// Active reports whether the panel should be shown: the show flag is set
// and a step is present.
func Active(show bool, step onboard.Step) bool {
	return show && step.IsSet()
}

// Gate tracks mount state and animation progress. It is not safe for
// concurrent use; it belongs to the UI event loop.
type Gate struct {
	phase      Phase
	generation uint64
	started    time.Time
	duration   time.Duration
	fps        int

	spring   harmonica.Spring
	position float64
	velocity float64
}

// NewGate creates a hidden gate. Non-positive arguments select the defaults.
func NewGate(duration time.Duration, fps int) *Gate {
	if duration <= 0 {
		duration = DefaultDuration
	}
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Gate{
		phase:    Hidden,
		duration: duration,
		fps:      fps,
		spring:   harmonica.NewSpring(harmonica.FPS(fps), springFrequency, springDamping),
	}
}

// Phase returns the current phase.
func (g *Gate) Phase() Phase { return g.phase }

// Generation returns the generation of the latest transition.
func (g *Gate) Generation() uint64 { return g.generation }

// Duration returns the animation length.
func (g *Gate) Duration() time.Duration { return g.duration }

// FrameInterval returns the delay between animation frames.
func (g *Gate) FrameInterval() time.Duration {
	return time.Second / time.Duration(g.fps)
}

// Mounted reports whether panel content is part of the render tree. Content
// stays mounted while the exit animation runs.
func (g *Gate) Mounted() bool {
	return g.phase != Hidden
}

// Animating reports whether a transition is in progress.
func (g *Gate) Animating() bool {
	return g.phase == Entering || g.phase == Exiting
}

// Position returns the slide position, 0 fully out and 1 fully in.
func (g *Gate) Position() float64 {
	switch {
	case g.position < 0:
		return 0
	case g.position > 1:
		return 1
	default:
		return g.position
	}
}

// Set records the latest visibility intent. It returns true when a new
// animation started; the caller then schedules frames for Generation().
func (g *Gate) Set(active bool, now time.Time) bool {
	switch {
	case active && (g.phase == Hidden || g.phase == Exiting):
		g.begin(Entering, now)
		return true
	case !active && (g.phase == Visible || g.phase == Entering):
		g.begin(Exiting, now)
		return true
	}
	return false
}

func (g *Gate) begin(phase Phase, now time.Time) {
	g.phase = phase
	g.generation++
	g.started = now
	g.velocity = 0
}

// Frame advances the animation of generation gen. It returns true while more
// frames are needed. Frames of superseded generations are ignored.
func (g *Gate) Frame(gen uint64, now time.Time) bool {
	if gen != g.generation || !g.Animating() {
		return false
	}

	target := 1.0
	if g.phase == Exiting {
		target = 0
	}
	g.position, g.velocity = g.spring.Update(g.position, g.velocity, target)

	if now.Sub(g.started) >= g.duration {
		return !g.Complete(gen)
	}
	return true
}

// Complete finishes the animation of generation gen: entering becomes
// visible and exiting becomes hidden. It returns false for stale
// generations.
func (g *Gate) Complete(gen uint64) bool {
	if gen != g.generation {
		return false
	}
	switch g.phase {
	case Entering:
		g.phase = Visible
		g.position, g.velocity = 1, 0
	case Exiting:
		g.phase = Hidden
		g.position, g.velocity = 0, 0
	default:
		return false
	}
	return true
}

package sim

import (
	"math"

	"github.com/alanbchristie/go-pico-solar-system/internal/config"
	"github.com/alanbchristie/go-pico-solar-system/internal/orbit"
)

// Controller owns the day offset. It applies one frame's events to the
// state: direction holds with velocity ramp-up, clamping to the offset
// bounds, and the autonomous demo advance.
//
// The hold velocity starts at BaseStep and doubles every RampFrames
// consecutive held frames, capped at MaxStep. The held counter does not
// reset on a direct advance/retard reversal, and freezes while the
// offset is pinned at a clamp bound, so a reversal off the bound starts
// at full ramped speed.
type Controller struct {
	minOffset  float64
	maxOffset  float64
	baseStep   float64
	rampFrames int
	maxStep    float64
	demoStep   float64
	demoWrap   float64 // demo playback wraps to zero past this offset

	held int // consecutive held frames in the current direction run
}

// NewController builds a controller from the configured tuning. The
// demo wrap bound is the longest orbital period in the planet table,
// one full Neptune tour.
func NewController(cfg config.Config) Controller {
	return Controller{
		minOffset:  cfg.MinOffset,
		maxOffset:  cfg.MaxOffset,
		baseStep:   cfg.BaseStep,
		rampFrames: cfg.RampFrames,
		maxStep:    cfg.MaxStep,
		demoStep:   cfg.DemoStep,
		demoWrap:   orbit.LongestPeriod(),
	}
}

// Tick applies one frame's events to the state. After Running has been
// cleared the state machine is terminal and the state never changes
// again.
func (c *Controller) Tick(st *State, ev Events) {
	if !st.Running {
		return
	}
	if ev.Exit {
		st.Running = false
		return
	}
	if ev.ToggleNight {
		st.Night = !st.Night
	}

	if st.Demo {
		// Autonomous playback ignores the manual controls and the
		// clamp bounds; it loops on the full-tour boundary instead.
		st.DayOffset += c.demoStep
		if st.DayOffset > c.demoWrap {
			st.DayOffset = 0
		}
		return
	}

	switch {
	case ev.Advance:
		c.step(st, ModeAdvancing, 1)
	case ev.Retard:
		c.step(st, ModeRetarding, -1)
	default:
		st.Mode = ModeIdle
		st.HoldVelocity = c.baseStep
		c.held = 0
	}
}

// step moves the offset one frame in the given direction, ramping the
// hold velocity and clamping the result.
func (c *Controller) step(st *State, mode Mode, dir float64) {
	if st.Mode != ModeAdvancing && st.Mode != ModeRetarding {
		c.held = 0 // fresh press out of idle
	}
	st.Mode = mode
	st.HoldVelocity = c.velocity()

	next := st.DayOffset + dir*st.HoldVelocity
	clamped := clampFloat(next, c.minOffset, c.maxOffset)
	if clamped == next {
		c.held++
	}
	st.DayOffset = clamped
}

// velocity returns the current hold velocity for the held counter.
func (c *Controller) velocity() float64 {
	v := c.baseStep * math.Pow(2, float64(c.held/c.rampFrames))
	if v > c.maxStep {
		v = c.maxStep
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package sim

import "time"

// Mode is the time controller's state-machine mode.
type Mode uint8

const (
	ModeIdle      Mode = iota // no direction button held
	ModeAdvancing             // advance button held, offset growing
	ModeRetarding             // retard button held, offset shrinking
	ModeDemo                  // autonomous playback, entered at startup and never left
)

// String returns the mode's label for logs and the status API.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeAdvancing:
		return "advancing"
	case ModeRetarding:
		return "retarding"
	case ModeDemo:
		return "demo"
	default:
		return "unknown"
	}
}

// State is the whole of the simulation's mutable state. A single value
// owned by Sim; the controller and mediator mutate it inside Tick, the
// render path only reads it.
type State struct {
	Epoch        time.Time // wall-clock date read once at startup, never mutated
	DayOffset    float64   // signed displacement from Epoch, in days
	HoldVelocity float64   // current per-frame offset delta while a button is held
	Mode         Mode
	Night        bool // red-only rendering
	Demo         bool // fixed at startup from config
	Running      bool // false signals the frame loop to stop
}

package sim

// Button identifies one of the four logical panel buttons.
type Button uint8

const (
	ButtonAdvance     Button = iota // hold to move time forward
	ButtonRetard                    // hold to move time backward
	ButtonToggleNight               // press to flip night mode
	ButtonExit                      // press to quit
)

// ButtonSource is the debounced-input collaborator: per-button pressed
// state, sampled once per frame. Debouncing is its problem, not ours.
type ButtonSource interface {
	Pressed(Button) bool
}

// Events is one frame's worth of control events. Advance and Retard are
// level-triggered (set every frame the button is down, which is what
// lets the hold velocity ramp); ToggleNight and Exit are edge-triggered
// (one event per physical press).
type Events struct {
	Advance     bool
	Retard      bool
	ToggleNight bool
	Exit        bool
}

// Mediator turns raw button state into per-frame control events. Its
// only state is the previous-frame sample of the edge-triggered
// buttons.
type Mediator struct {
	prevToggle bool
	prevExit   bool
}

// Poll samples every button once and returns the frame's events.
func (m *Mediator) Poll(src ButtonSource) Events {
	toggle := src.Pressed(ButtonToggleNight)
	exit := src.Pressed(ButtonExit)

	ev := Events{
		Advance:     src.Pressed(ButtonAdvance),
		Retard:      src.Pressed(ButtonRetard),
		ToggleNight: toggle && !m.prevToggle,
		Exit:        exit && !m.prevExit,
	}

	m.prevToggle = toggle
	m.prevExit = exit
	return ev
}

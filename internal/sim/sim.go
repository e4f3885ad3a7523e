// Package sim is the simulation core: the day-offset state machine,
// the input mediator and the per-frame ephemeris pass over the planet
// entities. It never draws and never touches hardware.
package sim

import (
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/alanbchristie/go-pico-solar-system/internal/config"
	"github.com/alanbchristie/go-pico-solar-system/internal/orbit"
)

// Body identifies the planet-table row an entity renders.
type Body struct {
	Planet orbit.Planet
	Sprite *orbit.Sprite
}

// ScreenPos is a planet's current display-space pixel position, written
// by the ephemeris pass each tick.
type ScreenPos struct {
	X, Y int
}

// BodyState is one planet's render-ready state for a frame.
type BodyState struct {
	Planet orbit.Planet
	Sprite *orbit.Sprite
	X, Y   int
}

// Sim is the simulation. It owns all mutable state and the planet
// entities; everything it holds is written inside Tick and read-only
// for the rest of the frame.
type Sim struct {
	ECS   *ecs.World
	State State

	controller Controller
	epochDays  float64 // epoch's distance from the phase baseline, in days

	bodies  []ecs.Entity // planet entities in table order, Mercury first
	bodyMap *ecs.Map[Body]
	posMap  *ecs.Map[ScreenPos]
}

// NewSim reads the epoch from the clock collaborator and builds the
// planet entities. The sheet must cover every planet in the table.
func NewSim(cfg config.Config, clock Clock, sheet orbit.Sheet) *Sim {
	w := ecs.NewWorld(16)

	bodyMap := ecs.NewMap[Body](w)
	posMap := ecs.NewMap[ScreenPos](w)
	builder := ecs.NewMap2[Body, ScreenPos](w)

	bodies := make([]ecs.Entity, 0, len(orbit.Planets))
	for _, p := range orbit.Planets {
		e := builder.NewEntity(
			&Body{Planet: p, Sprite: sheet.ForPlanet(p)},
			&ScreenPos{},
		)
		bodies = append(bodies, e)
	}

	epoch := clock.Now()
	mode := ModeIdle
	if cfg.Demo {
		mode = ModeDemo
	}

	s := &Sim{
		ECS: w,
		State: State{
			Epoch:        epoch,
			HoldVelocity: cfg.BaseStep,
			Mode:         mode,
			Night:        cfg.Night,
			Demo:         cfg.Demo,
			Running:      true,
		},
		controller: NewController(cfg),
		epochDays:  orbit.DaysSince(epoch),
		bodies:     bodies,
		bodyMap:    bodyMap,
		posMap:     posMap,
	}

	s.updatePositions()
	return s
}

// Tick advances the simulation by one frame: the controller applies the
// frame's events, then the ephemeris pass refreshes every planet's
// screen position.
func (s *Sim) Tick(ev Events) {
	s.controller.Tick(&s.State, ev)
	s.updatePositions()
}

// updatePositions writes each planet's position for the current offset.
func (s *Sim) updatePositions() {
	days := s.epochDays + s.State.DayOffset
	for _, e := range s.bodies {
		body := s.bodyMap.Get(e)
		pos := s.posMap.Get(e)
		pos.X, pos.Y = body.Planet.Position(days)
	}
}

// Bodies returns every planet's state in table order, Mercury first.
func (s *Sim) Bodies() []BodyState {
	out := make([]BodyState, 0, len(s.bodies))
	for _, e := range s.bodies {
		body := s.bodyMap.Get(e)
		pos := s.posMap.Get(e)
		out = append(out, BodyState{
			Planet: body.Planet,
			Sprite: body.Sprite,
			X:      pos.X,
			Y:      pos.Y,
		})
	}
	return out
}

// DisplayDate returns the calendar date being shown: the epoch shifted
// by the current day offset.
func (s *Sim) DisplayDate() time.Time {
	return s.State.Epoch.Add(time.Duration(s.State.DayOffset * 24 * float64(time.Hour)))
}

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/alanbchristie/go-pico-solar-system/assets"
	"github.com/alanbchristie/go-pico-solar-system/internal/config"
	"github.com/alanbchristie/go-pico-solar-system/internal/orbit"
	"github.com/alanbchristie/go-pico-solar-system/internal/render"
	"github.com/alanbchristie/go-pico-solar-system/internal/sim"
	"github.com/alanbchristie/go-pico-solar-system/internal/status"
)

const title = "Solar System"

// keyboardButtons maps the Explorer board's four buttons onto keys,
// keeping the board labels alongside friendlier bindings.
type keyboardButtons struct{}

func (keyboardButtons) Pressed(b sim.Button) bool {
	switch b {
	case sim.ButtonAdvance:
		return ebiten.IsKeyPressed(ebiten.KeyY) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	case sim.ButtonRetard:
		return ebiten.IsKeyPressed(ebiten.KeyB) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	case sim.ButtonToggleNight:
		return ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyN)
	case sim.ButtonExit:
		return ebiten.IsKeyPressed(ebiten.KeyX) || ebiten.IsKeyPressed(ebiten.KeyEscape)
	}
	return false
}

// Game is the Ebitengine game struct. It owns input sampling and
// rendering; all simulation state lives in sim.
type Game struct {
	sim      *sim.Sim
	buttons  keyboardButtons
	mediator sim.Mediator
	surface  *render.Surface
	screen   *render.ScreenRenderer
	status   *status.Server // nil when the API is disabled
	debug    bool
}

func NewGame(cfg config.Config, clock sim.Clock) *Game {
	if err := orbit.ValidatePlanets(); err != nil {
		log.Fatal().Err(err).Msg("planet table is corrupt")
	}

	data, err := assets.Sprites.ReadFile("sprites.json")
	if err != nil {
		log.Fatal().Err(err).Msg("load sprite sheet")
	}
	sheet, err := orbit.LoadSpriteSheet(data)
	if err != nil {
		log.Fatal().Err(err).Msg("parse sprite sheet")
	}

	s := sim.NewSim(cfg, clock, sheet)
	log.Info().
		Time("epoch", s.State.Epoch).
		Bool("night", s.State.Night).
		Bool("demo", s.State.Demo).
		Msg("simulation ready")

	g := &Game{
		sim:     s,
		surface: render.NewSurface(orbit.DisplayWidth, orbit.DisplayHeight),
		screen:  render.NewScreenRenderer(orbit.DisplayWidth, orbit.DisplayHeight),
	}

	if cfg.StatusAddr != "" {
		g.status = status.NewServer(cfg.StatusAddr)
		go func() {
			log.Info().Str("addr", cfg.StatusAddr).Msg("status API listening")
			if err := g.status.Serve(); err != nil {
				log.Error().Err(err).Msg("status API stopped")
			}
		}()
	}

	return g
}

func (g *Game) Update() error {
	ev := g.mediator.Poll(g.buttons)

	nightBefore := g.sim.State.Night
	g.sim.Tick(ev)
	if g.sim.State.Night != nightBefore {
		log.Info().Bool("night", g.sim.State.Night).Msg("night mode toggled")
	}

	if g.status != nil {
		g.status.Publish(snapshotOf(g.sim))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug = !g.debug
	}

	if !g.sim.State.Running {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	st := &g.sim.State
	render.DrawScene(g.surface, render.Frame{
		Bodies: g.sim.Bodies(),
		Date:   g.sim.DisplayDate(),
		Offset: st.DayOffset,
		Night:  st.Night,
		Demo:   st.Demo,
	})

	if g.debug {
		pen := render.Pen{Night: st.Night}
		fps := fmt.Sprintf("%.0f fps %.0f tps", ebiten.ActualFPS(), ebiten.ActualTPS())
		x := orbit.DisplayWidth - render.TextWidth(fps) - 2
		render.DrawText(g.surface, x, 2, fps, pen.Color(render.ColorOffsetText))
	}

	g.screen.Draw(screen, g.surface)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return orbit.DisplayWidth, orbit.DisplayHeight
}

// snapshotOf copies the frame's state into the status API's shape.
func snapshotOf(s *sim.Sim) status.Snapshot {
	bodies := s.Bodies()
	positions := make([]status.BodyPosition, 0, len(bodies))
	for _, b := range bodies {
		positions = append(positions, status.BodyPosition{Name: b.Planet.Name, X: b.X, Y: b.Y})
	}
	return status.Snapshot{
		Date:      s.DisplayDate().Format("2006-01-02"),
		DayOffset: s.State.DayOffset,
		Mode:      s.State.Mode.String(),
		NightMode: s.State.Night,
		DemoMode:  s.State.Demo,
		Planets:   positions,
	}
}

func main() {
	configPath := flag.String("config", "", "optional TOML config file")
	flag.Parse()

	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = zerolog.New(output).With().Timestamp().Str("app", "solarsystem").Logger()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
		log.Info().Str("path", *configPath).Msg("loaded config")
	}

	game := NewGame(cfg, sim.SystemClock{})

	ebiten.SetWindowSize(orbit.DisplayWidth*cfg.Scale, orbit.DisplayHeight*cfg.Scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	log.Info().Msg("hold Y/right to advance, B/left to retard, press A/N for night mode, X/esc to quit")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("frame loop failed")
	}
	log.Info().Msg("done, bye")
}

package render

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/alanbchristie/go-pico-solar-system/assets"
	"github.com/alanbchristie/go-pico-solar-system/internal/orbit"
	"github.com/alanbchristie/go-pico-solar-system/internal/sim"
)

func loadSheet(t *testing.T) orbit.Sheet {
	t.Helper()
	data, err := assets.Sprites.ReadFile("sprites.json")
	if err != nil {
		t.Fatalf("read embedded sheet: %v", err)
	}
	sheet, err := orbit.LoadSpriteSheet(data)
	if err != nil {
		t.Fatalf("load embedded sheet: %v", err)
	}
	return sheet
}

// testBodies places every planet for the given day count, the way the
// simulation does each tick.
func testBodies(t *testing.T, days float64) []sim.BodyState {
	t.Helper()
	sheet := loadSheet(t)
	out := make([]sim.BodyState, 0, len(orbit.Planets))
	for _, p := range orbit.Planets {
		x, y := p.Position(days)
		out = append(out, sim.BodyState{Planet: p, Sprite: sheet.ForPlanet(p), X: x, Y: y})
	}
	return out
}

func testFrame(t *testing.T) Frame {
	t.Helper()
	return Frame{
		Bodies: testBodies(t, 0),
		Date:   orbit.BaselineDate,
	}
}

func TestDrawSceneDeterministic(t *testing.T) {
	f := testFrame(t)
	f.Offset = -12

	a := NewSurface(orbit.DisplayWidth, orbit.DisplayHeight)
	b := NewSurface(orbit.DisplayWidth, orbit.DisplayHeight)
	DrawScene(a, f)
	DrawScene(b, f)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatalf("identical frames drew different pixels")
	}
}

func TestDrawSceneSunAndDate(t *testing.T) {
	s := NewSurface(orbit.DisplayWidth, orbit.DisplayHeight)
	DrawScene(s, testFrame(t))

	if got := s.RGBAAt(orbit.SunX, orbit.SunY); got != ColorSun {
		t.Fatalf("sun center %v, want %v", got, ColorSun)
	}

	// "01 Jan 2024" sits in the top-left corner in the date color.
	lit := 0
	for y := dateY; y < dateY+TextHeight; y++ {
		for x := dateX; x < dateX+TextWidth("01 Jan 2024"); x++ {
			if s.RGBAAt(x, y) == ColorDateText {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Fatalf("no date text drawn")
	}
}

// Planet sprites land centered on the ephemeris position and keep their
// art colors in day mode; night mode flattens them to the two red levels.
func TestDrawSceneSpritePixels(t *testing.T) {
	earth := orbit.Planets[2]
	mercury := orbit.Planets[0]
	ex, ey := earth.Position(0)
	mx, my := mercury.Position(0)

	day := NewSurface(orbit.DisplayWidth, orbit.DisplayHeight)
	DrawScene(day, testFrame(t))
	if got, want := day.RGBAAt(ex, ey), (color.RGBA{46, 134, 171, 255}); got != want {
		t.Fatalf("earth center %v, want sea blue %v", got, want)
	}
	if got, want := day.RGBAAt(mx, my), (color.RGBA{120, 120, 120, 255}); got != want {
		t.Fatalf("mercury center %v, want %v", got, want)
	}

	nf := testFrame(t)
	nf.Night = true
	night := NewSurface(orbit.DisplayWidth, orbit.DisplayHeight)
	DrawScene(night, nf)
	if got := night.RGBAAt(ex, ey); got != ColorSpriteHomeNight {
		t.Fatalf("earth night center %v, want %v", got, ColorSpriteHomeNight)
	}
	if got := night.RGBAAt(mx, my); got != ColorSpriteNight {
		t.Fatalf("mercury night center %v, want %v", got, ColorSpriteNight)
	}
	if got := night.RGBAAt(orbit.SunX, orbit.SunY); got != (color.RGBA{R: 230, A: 255}) {
		t.Fatalf("sun night center %v, want red only", got)
	}
}

// Night mode recolors, never reshapes: the set of lit pixels is the same
// in both modes, and at night only the red channel carries light.
func TestDrawSceneNightPreservesGeometry(t *testing.T) {
	day := NewSurface(orbit.DisplayWidth, orbit.DisplayHeight)
	DrawScene(day, testFrame(t))

	nf := testFrame(t)
	nf.Night = true
	night := NewSurface(orbit.DisplayWidth, orbit.DisplayHeight)
	DrawScene(night, nf)

	black := color.RGBA{A: 255}
	for y := 0; y < orbit.DisplayHeight; y++ {
		for x := 0; x < orbit.DisplayWidth; x++ {
			d := day.RGBAAt(x, y)
			n := night.RGBAAt(x, y)
			if (d != black) != (n != black) {
				t.Fatalf("pixel (%d,%d) lit in one mode only: day %v night %v", x, y, d, n)
			}
			if n.G != 0 || n.B != 0 {
				t.Fatalf("pixel (%d,%d) = %v leaks green or blue at night", x, y, n)
			}
		}
	}
}

func TestDrawSceneOffsetLabel(t *testing.T) {
	f := testFrame(t)
	f.Offset = 5

	shown := NewSurface(orbit.DisplayWidth, orbit.DisplayHeight)
	DrawScene(shown, f)

	f.Demo = true
	hidden := NewSurface(orbit.DisplayWidth, orbit.DisplayHeight)
	DrawScene(hidden, f)

	// Demo playback differs only by the hidden label in the bottom corner.
	diff := 0
	for y := 0; y < orbit.DisplayHeight; y++ {
		for x := 0; x < orbit.DisplayWidth; x++ {
			if shown.RGBAAt(x, y) == hidden.RGBAAt(x, y) {
				continue
			}
			diff++
			if x < offsetX || x >= offsetX+TextWidth("+5 days") || y < offsetY || y >= offsetY+TextHeight {
				t.Fatalf("demo mode changed pixel (%d,%d) outside the offset label", x, y)
			}
		}
	}
	if diff == 0 {
		t.Fatalf("offset label not drawn outside demo mode")
	}
}

func TestOffsetLabel(t *testing.T) {
	cases := []struct {
		offset float64
		want   string
	}{
		{0, "Now"},
		{0.4, "Now"}, // rounds to the whole day shown
		{5, "+5 days"},
		{365, "+365 days"},
		{-3, "-3 days"},
		{-0.6, "-1 days"},
	}
	for _, tc := range cases {
		if got := offsetLabel(tc.offset); got != tc.want {
			t.Errorf("offsetLabel(%v) = %q, want %q", tc.offset, got, tc.want)
		}
	}
}

func TestDrawSceneClipsOffscreenBody(t *testing.T) {
	f := testFrame(t)
	f.Bodies = f.Bodies[:1]
	f.Bodies[0].X = -500
	f.Bodies[0].Y = -500

	s := NewSurface(orbit.DisplayWidth, orbit.DisplayHeight)
	DrawScene(s, f) // must not panic
	if got := s.RGBAAt(orbit.SunX, orbit.SunY); got != ColorSun {
		t.Fatalf("sun missing after off-screen body draw")
	}
}

// The track plotter keeps every point in the one-pixel ring just inside
// the nominal radius, mirrored through all eight octants.
func TestDrawTrackRing(t *testing.T) {
	const cx, cy, r = 120, 120, 16
	s := NewSurface(orbit.DisplayWidth, orbit.DisplayHeight)
	c := color.RGBA{R: 255, A: 255}
	drawTrack(s, cx, cy, r, c)

	type pt struct{ x, y int }
	ring := map[pt]bool{}
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			if s.RGBAAt(x, y) == c {
				ring[pt{x, y}] = true
			}
		}
	}
	if len(ring) == 0 {
		t.Fatalf("no track pixels drawn")
	}
	if !ring[pt{cx + r - 1, cy}] || !ring[pt{cx, cy + r - 1}] {
		t.Fatalf("track misses its axis extremes")
	}

	for p := range ring {
		dx, dy := p.x-cx, p.y-cy
		d2 := dx*dx + dy*dy
		if d2 < (r-1)*(r-1) || d2 > r*r {
			t.Fatalf("track pixel (%d,%d) at squared distance %d, want within [%d,%d]",
				p.x, p.y, d2, (r-1)*(r-1), r*r)
		}
		for _, m := range []pt{{cx - dx, cy + dy}, {cx + dx, cy - dy}, {cx + dy, cy + dx}} {
			if !ring[m] {
				t.Fatalf("track pixel (%d,%d) has no mirror at (%d,%d)", p.x, p.y, m.x, m.y)
			}
		}
	}
}

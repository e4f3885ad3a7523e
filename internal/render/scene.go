package render

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/alanbchristie/go-pico-solar-system/internal/orbit"
	"github.com/alanbchristie/go-pico-solar-system/internal/sim"
)

// Label positions on the 240x240 panel.
const (
	dateX   = 2
	dateY   = 2
	offsetX = 2
	offsetY = 226
)

// Frame is everything the scene needs to draw once. Identical frames
// produce identical pixels.
type Frame struct {
	Bodies []sim.BodyState // planet states in table order, Mercury first
	Date   time.Time       // calendar date being displayed
	Offset float64         // day offset shown in the corner label
	Night  bool            // red-only rendering
	Demo   bool            // demo playback hides the offset label
}

// DrawScene fully redraws one frame of the solar system into dst:
// Sun, labels, then each planet's orbit track and sprite from the
// inside out.
func DrawScene(dst *Surface, f Frame) {
	pen := Pen{Night: f.Night}

	dst.Clear()

	fillCircle(dst, orbit.SunX, orbit.SunY, orbit.SunRadius, pen.Color(ColorSun))

	// Text goes under the planets so the system always sits on top.
	DrawText(dst, dateX, dateY, f.Date.Format("02 Jan 2006"), pen.Color(ColorDateText))
	if !f.Demo {
		DrawText(dst, offsetX, offsetY, offsetLabel(f.Offset), pen.Color(ColorOffsetText))
	}

	for _, b := range f.Bodies {
		drawTrack(dst, orbit.SunX, orbit.SunY, b.Planet.RadiusPx, trackColor(pen, b.Planet))
		drawSprite(dst, pen, b)
	}
}

// offsetLabel formats the whole-day offset for the bottom corner.
func offsetLabel(offset float64) string {
	days := int(math.Round(offset))
	if days == 0 {
		return "Now"
	}
	return fmt.Sprintf("%+d days", days)
}

// trackColor picks the orbit-track color for a planet: inner tracks
// bright, outer tracks dark, the home planet's track distinct in both
// modes.
func trackColor(pen Pen, p orbit.Planet) color.RGBA {
	if p.Home {
		if pen.Night {
			return ColorTrackHomeNight
		}
		return ColorTrackHome
	}
	if p.Track == orbit.TrackInner {
		return pen.Color(ColorTrackInner)
	}
	return pen.Color(ColorTrackOuter)
}

// drawSprite draws a planet's sprite centered on its screen position.
// In night mode the sprite collapses to a flat red, brighter for the
// home planet.
func drawSprite(dst *Surface, pen Pen, b sim.BodyState) {
	sp := b.Sprite
	half := sp.Size / 2
	for y := 0; y < sp.Size; y++ {
		for x := 0; x < sp.Size; x++ {
			c := sp.At(x, y)
			if c.A == 0 {
				continue
			}
			if pen.Night {
				if b.Planet.Home {
					c = ColorSpriteHomeNight
				} else {
					c = ColorSpriteNight
				}
			}
			dst.SetRGBA(b.X+x-half, b.Y+y-half, c)
		}
	}
}

// drawTrack plots a one-pixel circle with the integer midpoint
// algorithm, eight symmetric octant points per iteration.
func drawTrack(dst *Surface, cx, cy, radius int, c color.RGBA) {
	x := radius - 1
	y := 0
	dx := 1
	dy := 1
	err := dx - radius*2

	for x >= y {
		dst.SetRGBA(cx+x, cy+y, c)
		dst.SetRGBA(cx+y, cy+x, c)
		dst.SetRGBA(cx-y, cy+x, c)
		dst.SetRGBA(cx-x, cy+y, c)
		dst.SetRGBA(cx-x, cy-y, c)
		dst.SetRGBA(cx-y, cy-x, c)
		dst.SetRGBA(cx+y, cy-x, c)
		dst.SetRGBA(cx+x, cy-y, c)

		if err <= 0 {
			y++
			err += dy
			dy += 2
		}
		if err > 0 {
			x--
			dx += 2
			err += dx - radius*2
		}
	}
}

// fillCircle draws a filled disc, used for the Sun.
func fillCircle(dst *Surface, cx, cy, r int, c color.RGBA) {
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if x*x+y*y <= r*r {
				dst.SetRGBA(cx+x, cy+y, c)
			}
		}
	}
}

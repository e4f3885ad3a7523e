package render

import "image/color"

// Scene colors, as the original panel firmware tuned them.
var (
	ColorSun        = color.RGBA{230, 230, 0, 255}
	ColorTrackInner = color.RGBA{110, 110, 110, 255} // rocky planets, brighter
	ColorTrackOuter = color.RGBA{10, 10, 10, 255}    // giants, barely visible
	ColorTrackHome  = color.RGBA{0, 150, 0, 255}     // Earth's track in color mode
	ColorDateText   = color.RGBA{200, 200, 200, 255}
	ColorOffsetText = color.RGBA{128, 128, 128, 255}

	// Night-mode overrides. Earth's track and sprite get fixed red
	// levels so the home planet stays the easiest thing to find.
	ColorTrackHomeNight  = color.RGBA{180, 0, 0, 255}
	ColorSpriteNight     = color.RGBA{150, 0, 0, 255}
	ColorSpriteHomeNight = color.RGBA{200, 0, 0, 255}
)

// Pen gates every drawn color through the night-mode policy: in night
// mode only the red channel survives, preserving relative brightness so
// shapes stay distinguishable.
type Pen struct {
	Night bool
}

// Color returns the color actually written for c.
func (p Pen) Color(c color.RGBA) color.RGBA {
	if p.Night {
		return color.RGBA{R: c.R, A: 255}
	}
	return c
}

package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// textFace is the label font. Face7x13 is a bitmap face, so glyphs land
// on whole pixels and survive the night-mode recolor unchanged.
var textFace = basicfont.Face7x13

// TextHeight is the pixel height of one line of label text.
const TextHeight = 13

// DrawText renders s into dst with its top-left corner at (x, y). Text
// falling outside the surface is clipped.
func DrawText(dst *Surface, x, y int, s string, c color.RGBA) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: textFace,
		Dot:  fixed.P(x, y+textFace.Ascent),
	}
	d.DrawString(s)
}

// TextWidth returns the pixel width s occupies when drawn.
func TextWidth(s string) int {
	return font.MeasureString(textFace, s).Ceil()
}

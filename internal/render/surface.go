// Package render draws the solar-system scene: a software pixel surface,
// the night-mode pen, the scene pass and the blit to the window.
package render

import (
	"image"
	"image/color"
)

// Surface is a fixed-size RGB pixel buffer the scene is drawn into.
// Pixels are stored as RGBA bytes, always fully opaque, ready to push
// to the display in one write.
type Surface struct {
	W, H int
	Pix  []byte // 4 bytes per pixel, row-major
}

// NewSurface creates a surface cleared to opaque black.
func NewSurface(w, h int) *Surface {
	s := &Surface{W: w, H: h, Pix: make([]byte, w*h*4)}
	s.Clear()
	return s
}

// Clear resets every pixel to opaque black.
func (s *Surface) Clear() {
	for i := range s.Pix {
		if i%4 == 3 {
			s.Pix[i] = 0xff
		} else {
			s.Pix[i] = 0
		}
	}
}

// SetRGBA writes a single pixel. Out-of-bounds writes are ignored, so
// callers never have to pre-clip.
func (s *Surface) SetRGBA(x, y int, c color.RGBA) {
	if x < 0 || x >= s.W || y < 0 || y >= s.H {
		return
	}
	i := (y*s.W + x) * 4
	s.Pix[i] = c.R
	s.Pix[i+1] = c.G
	s.Pix[i+2] = c.B
	s.Pix[i+3] = 0xff
}

// RGBAAt reads a single pixel. Out-of-bounds reads return zero.
func (s *Surface) RGBAAt(x, y int) color.RGBA {
	if x < 0 || x >= s.W || y < 0 || y >= s.H {
		return color.RGBA{}
	}
	i := (y*s.W + x) * 4
	return color.RGBA{R: s.Pix[i], G: s.Pix[i+1], B: s.Pix[i+2], A: s.Pix[i+3]}
}

// The draw.Image methods below let the standard font drawer render text
// straight into the surface.

// ColorModel implements image.Image.
func (s *Surface) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (s *Surface) Bounds() image.Rectangle { return image.Rect(0, 0, s.W, s.H) }

// At implements image.Image.
func (s *Surface) At(x, y int) color.Color { return s.RGBAAt(x, y) }

// Set implements draw.Image.
func (s *Surface) Set(x, y int, c color.Color) {
	s.SetRGBA(x, y, color.RGBAModel.Convert(c).(color.RGBA))
}

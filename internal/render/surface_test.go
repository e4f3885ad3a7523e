package render

import (
	"image"
	"image/color"
	"testing"
)

func TestNewSurfaceIsOpaqueBlack(t *testing.T) {
	s := NewSurface(4, 3)
	if len(s.Pix) != 4*3*4 {
		t.Fatalf("pix length %d, want %d", len(s.Pix), 4*3*4)
	}
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			if got := s.RGBAAt(x, y); got != (color.RGBA{A: 255}) {
				t.Fatalf("pixel (%d,%d) = %v, want opaque black", x, y, got)
			}
		}
	}
}

func TestSetAndReadBack(t *testing.T) {
	s := NewSurface(8, 8)
	c := color.RGBA{R: 12, G: 200, B: 7, A: 255}
	s.SetRGBA(3, 5, c)
	if got := s.RGBAAt(3, 5); got != c {
		t.Fatalf("read back %v, want %v", got, c)
	}
	if got := s.RGBAAt(5, 3); got != (color.RGBA{A: 255}) {
		t.Fatalf("neighbour (5,3) = %v, want untouched", got)
	}
}

func TestSetForcesOpaque(t *testing.T) {
	s := NewSurface(2, 2)
	s.SetRGBA(0, 0, color.RGBA{R: 9, G: 9, B: 9, A: 0})
	if got := s.RGBAAt(0, 0); got.A != 255 {
		t.Fatalf("alpha %d after write, want 255", got.A)
	}
}

func TestOutOfBoundsAccess(t *testing.T) {
	s := NewSurface(4, 4)
	red := color.RGBA{R: 255, A: 255}

	// Writes outside the surface are dropped, not wrapped.
	for _, pt := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {-100, -100}, {1000, 1000}} {
		s.SetRGBA(pt[0], pt[1], red)
	}
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			if got := s.RGBAAt(x, y); got != (color.RGBA{A: 255}) {
				t.Fatalf("pixel (%d,%d) = %v after out-of-bounds writes", x, y, got)
			}
		}
	}

	if got := s.RGBAAt(-1, 2); got != (color.RGBA{}) {
		t.Fatalf("out-of-bounds read %v, want zero", got)
	}
}

func TestClearResetsEverything(t *testing.T) {
	s := NewSurface(6, 6)
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			s.SetRGBA(x, y, color.RGBA{R: uint8(x * 40), G: uint8(y * 40), B: 77, A: 255})
		}
	}
	s.Clear()
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			if got := s.RGBAAt(x, y); got != (color.RGBA{A: 255}) {
				t.Fatalf("pixel (%d,%d) = %v after clear", x, y, got)
			}
		}
	}
}

// The surface doubles as a draw.Image so the font drawer can write
// straight into it.
func TestSurfaceImplementsDrawImage(t *testing.T) {
	s := NewSurface(5, 4)
	if got, want := s.Bounds(), image.Rect(0, 0, 5, 4); got != want {
		t.Fatalf("bounds %v, want %v", got, want)
	}
	if s.ColorModel() != color.RGBAModel {
		t.Fatalf("color model %v, want RGBA", s.ColorModel())
	}

	s.Set(1, 1, color.White)
	want := color.RGBA{255, 255, 255, 255}
	if got := s.At(1, 1).(color.RGBA); got != want {
		t.Fatalf("At(1,1) = %v, want %v", got, want)
	}

	s.Set(-3, 0, color.White) // clipped, not a panic
}

package render

import "github.com/hajimehoshi/ebiten/v2"

// ScreenRenderer blits a Surface to the Ebitengine screen. It keeps one
// GPU texture the size of the surface and rewrites it every frame.
type ScreenRenderer struct {
	img *ebiten.Image
}

// NewScreenRenderer creates a renderer for surfaces of the given size.
func NewScreenRenderer(w, h int) *ScreenRenderer {
	return &ScreenRenderer{img: ebiten.NewImage(w, h)}
}

// Draw pushes the surface's pixels to the screen.
func (r *ScreenRenderer) Draw(screen *ebiten.Image, surf *Surface) {
	r.img.WritePixels(surf.Pix)
	var op ebiten.DrawImageOptions
	screen.DrawImage(r.img, &op)
}

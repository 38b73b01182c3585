package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"golang.org/x/image/font"
)

// drawCentered draws s with its baseline at y, centered on cx.
func drawCentered(screen *ebiten.Image, s string, face font.Face, cx, y float64, clr color.Color) {
	w := text.BoundString(face, s).Dx()
	text.Draw(screen, s, face, int(cx)-w/2, int(y), clr)
}

// drawCenteredScaled draws s centered on cx and scaled around its middle.
func drawCenteredScaled(screen *ebiten.Image, s string, face font.Face, cx, y float64, scale float64, clr color.Color) {
	if scale == 1 {
		drawCentered(screen, s, face, cx, y, clr)
		return
	}
	b := text.BoundString(face, s)
	midY := float64(b.Min.Y+b.Max.Y) / 2

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -midY)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, y+midY)
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(screen, s, face, op)
}

// drawRight draws s so that it ends at x.
func drawRight(screen *ebiten.Image, s string, face font.Face, x, y float64, clr color.Color) {
	w := text.BoundString(face, s).Dx()
	text.Draw(screen, s, face, int(x)-w, int(y), clr)
}

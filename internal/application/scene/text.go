package scene

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Face is the HUD font
var Face text.Face = text.NewGoXFace(basicfont.Face7x13)

// DrawText draws s with its top-left corner at x, y
func DrawText(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = 16
	text.Draw(dst, s, Face, op)
}

// DrawTextCentered draws s horizontally centered on cx
func DrawTextCentered(dst *ebiten.Image, s string, cx, y float64, clr color.Color) {
	w, _ := text.Measure(s, Face, 16)
	DrawText(dst, s, cx-w/2, y, clr)
}

package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// basicfont.Face7x13 is 7 pixels wide per character
const glyphWidth = 7

func drawText(dst *ebiten.Image, s string, x, y int, c color.Color) {
	text.Draw(dst, s, basicfont.Face7x13, x, y, c)
}

// drawCentered draws s horizontally centred with its baseline at y.
func drawCentered(dst *ebiten.Image, s string, y int, c color.Color) {
	w := dst.Bounds().Dx()
	drawText(dst, s, (w-len(s)*glyphWidth)/2, y, c)
}

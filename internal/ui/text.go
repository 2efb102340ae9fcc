package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Face is the HUD font.
var Face font.Face = basicfont.Face7x13

// DrawCentered draws s horizontally centered on x with its baseline at y.
func DrawCentered(screen *ebiten.Image, s string, face font.Face, x, y int, c color.Color) {
	w := font.MeasureString(face, s).Ceil()
	text.Draw(screen, s, face, x-w/2, y, c)
}

// DrawOutlined draws s with a one pixel outline so it reads on any background.
func DrawOutlined(screen *ebiten.Image, s string, face font.Face, x, y int, c, outline color.Color) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx != 0 || dy != 0 {
				text.Draw(screen, s, face, x+dx, y+dy, outline)
			}
		}
	}
	text.Draw(screen, s, face, x, y, c)
}

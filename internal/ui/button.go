// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button is a clickable rectangle with a caption.
type Button struct {
	Rect       image.Rectangle
	Text       string
	Detail     string
	BgColor    color.RGBA
	HoverColor color.RGBA
	TextColor  color.RGBA
}

func NewButton(rect image.Rectangle, text string) *Button {
	return &Button{
		Rect:       rect,
		Text:       text,
		BgColor:    color.RGBA{44, 40, 66, 230},
		HoverColor: color.RGBA{74, 68, 110, 240},
		TextColor:  color.RGBA{240, 240, 240, 255},
	}
}

// Contains reports whether the cursor position is over the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

func (b *Button) Draw(screen *ebiten.Image, face font.Face) {
	cx, cy := ebiten.CursorPosition()
	bg := b.BgColor
	if b.Contains(cx, cy) {
		bg = b.HoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 2, color.White, false)

	DrawCentered(screen, b.Text, face, b.Rect.Min.X+b.Rect.Dx()/2, b.Rect.Min.Y+22, b.TextColor)
	if b.Detail != "" {
		DrawCentered(screen, b.Detail, face, b.Rect.Min.X+b.Rect.Dx()/2, b.Rect.Min.Y+44, b.TextColor)
	}
}

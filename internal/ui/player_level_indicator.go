// internal/ui/player_level_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/trouvaiilx/arcane-survivors/internal/config"
)

const borderWidth = 1

var (
	xpBarColorFill = color.RGBA{80, 140, 255, 230}
	borderColor    = color.White
)

// PlayerLevelIndicator draws a full-width experience bar with the level.
type PlayerLevelIndicator struct {
	X, Y, Width, Height float32
}

func NewPlayerLevelIndicator(x, y float32) *PlayerLevelIndicator {
	return &PlayerLevelIndicator{X: x, Y: y, Width: config.ScreenWidth - 2*x, Height: 10}
}

func (i *PlayerLevelIndicator) Draw(screen *ebiten.Image, level int, xp, xpToNext float64) {
	vector.StrokeRect(screen, i.X, i.Y, i.Width, i.Height, borderWidth, borderColor, false)

	ratio := 0.0
	if xpToNext > 0 {
		ratio = min(xp/xpToNext, 1)
	}
	fill := float32(float64(i.Width-borderWidth*2) * ratio)
	if fill > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fill, i.Height-borderWidth*2, xpBarColorFill, false)
	}
	DrawOutlined(screen, fmt.Sprintf("LV %d", level), Face, int(i.X+i.Width)-48, int(i.Y+i.Height)+14, color.White, color.Black)
}

// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	healthBarWidth  = 180
	healthBarHeight = 14
)

var (
	healthFillColor  = color.RGBA{220, 50, 50, 255}
	healthEmptyColor = color.RGBA{30, 10, 10, 200}
	reviveColor      = color.RGBA{255, 215, 0, 255}
)

// PlayerHealthIndicator draws the player's HP bar and remaining revivals.
type PlayerHealthIndicator struct {
	X, Y float32
}

func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, hp, maxHP float64, revivals int) {
	vector.DrawFilledRect(screen, i.X, i.Y, healthBarWidth, healthBarHeight, healthEmptyColor, false)
	if maxHP > 0 {
		ratio := math.Max(0, math.Min(1, hp/maxHP))
		vector.DrawFilledRect(screen, i.X, i.Y, float32(healthBarWidth*ratio), healthBarHeight, healthFillColor, false)
	}
	vector.StrokeRect(screen, i.X, i.Y, healthBarWidth, healthBarHeight, 1, color.White, false)
	label := fmt.Sprintf("%d/%d", int(math.Ceil(hp)), int(maxHP))
	DrawCentered(screen, label, Face, int(i.X)+healthBarWidth/2, int(i.Y)+healthBarHeight-3, color.White)

	for j := 0; j < revivals; j++ {
		cx := i.X + healthBarWidth + 12 + float32(j)*14
		vector.DrawFilledCircle(screen, cx, i.Y+healthBarHeight/2, 5, reviveColor, true)
	}
}

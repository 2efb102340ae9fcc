package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

var tierColor = color.RGBA{230, 150, 40, 255}

// WaveIndicator shows the run timer, kill count and difficulty tier.
type WaveIndicator struct {
	X, Y int // top center
}

func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{X: x, Y: y}
}

// toRoman converts a positive integer to roman numerals.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// FormatClock renders seconds as mm:ss.
func FormatClock(seconds float64) string {
	s := int(seconds)
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}

func (i *WaveIndicator) Draw(screen *ebiten.Image, elapsed float64, kills, tier int) {
	DrawOutlined(screen, FormatClock(elapsed), Face, i.X-18, i.Y, color.White, color.Black)
	DrawOutlined(screen, fmt.Sprintf("kills %d", kills), Face, i.X-28, i.Y+16, color.White, color.Black)
	if tier > 0 {
		DrawOutlined(screen, "tier "+toRoman(tier), Face, i.X-28, i.Y+32, tierColor, color.Black)
	}
}

// internal/ui/upgrade_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/trouvaiilx/arcane-survivors/internal/config"
	"github.com/trouvaiilx/arcane-survivors/internal/system"
)

const (
	panelHeight    = 150
	panelMargin    = 5
	animationSpeed = 10.0
	choiceWidth    = 240
	choiceHeight   = 64
	choiceGap      = 24
)

var numberKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

// UpgradePanel slides up from the bottom edge and offers level-up choices.
type UpgradePanel struct {
	options  []system.UpgradeOption
	buttons  []*Button
	currentY float64
	targetY  float64
}

func NewUpgradePanel() *UpgradePanel {
	return &UpgradePanel{currentY: config.ScreenHeight, targetY: config.ScreenHeight}
}

// Show replaces the offered options and starts the slide-in.
func (p *UpgradePanel) Show(options []system.UpgradeOption) {
	p.options = options
	p.targetY = config.ScreenHeight - panelHeight
	total := len(options)*choiceWidth + max(len(options)-1, 0)*choiceGap
	left := (config.ScreenWidth - total) / 2
	p.buttons = p.buttons[:0]
	for i, o := range options {
		x := left + i*(choiceWidth+choiceGap)
		b := NewButton(image.Rect(x, 0, x+choiceWidth, choiceHeight), fmt.Sprintf("%d. %s", i+1, o.Name))
		b.Detail = describe(o)
		p.buttons = append(p.buttons, b)
	}
}

func (p *UpgradePanel) Hide() {
	p.targetY = config.ScreenHeight
}

func describe(o system.UpgradeOption) string {
	switch o.Kind {
	case system.UpgradeNewWeapon:
		return "new weapon"
	case system.UpgradeWeaponLevel:
		return fmt.Sprintf("weapon lv %d", o.Level)
	default:
		return fmt.Sprintf("passive lv %d", o.Level)
	}
}

// Animate moves the panel one frame toward its target position.
func (p *UpgradePanel) Animate() {
	if diff := p.targetY - p.currentY; math.Abs(diff) < animationSpeed {
		p.currentY = p.targetY
	} else if diff > 0 {
		p.currentY += animationSpeed
	} else {
		p.currentY -= animationSpeed
	}
	top := int(p.currentY) + (panelHeight-choiceHeight)/2
	for _, b := range p.buttons {
		b.Rect = image.Rect(b.Rect.Min.X, top, b.Rect.Max.X, top+choiceHeight)
	}
}

// Update animates the panel and returns the chosen option index, or -1.
func (p *UpgradePanel) Update() int {
	p.Animate()
	for i := range p.options {
		if i < len(numberKeys) && inpututil.IsKeyJustPressed(numberKeys[i]) {
			return i
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		for i, b := range p.buttons {
			if b.Contains(x, y) {
				return i
			}
		}
	}
	return -1
}

// Option returns the option at index i.
func (p *UpgradePanel) Option(i int) (system.UpgradeOption, bool) {
	if i < 0 || i >= len(p.options) {
		return system.UpgradeOption{}, false
	}
	return p.options[i], true
}

func (p *UpgradePanel) Draw(screen *ebiten.Image) {
	if p.currentY >= config.ScreenHeight {
		return
	}
	rect := image.Rect(panelMargin, int(p.currentY)+panelMargin, config.ScreenWidth-panelMargin, int(p.currentY)+panelHeight-panelMargin)
	x, y := float32(rect.Min.X), float32(rect.Min.Y)
	w, h := float32(rect.Dx()), float32(rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, color.RGBA{25, 35, 45, 230}, false)
	vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{70, 130, 180, 255}, false)
	DrawCentered(screen, "LEVEL UP", Face, config.ScreenWidth/2, rect.Min.Y+16, color.White)
	for _, b := range p.buttons {
		b.Draw(screen, Face)
	}
}

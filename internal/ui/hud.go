package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/trouvaiilx/arcane-survivors/internal/config"
	"github.com/trouvaiilx/arcane-survivors/internal/interfaces"
)

// HUD groups the always-visible indicators.
type HUD struct {
	health *PlayerHealthIndicator
	level  *PlayerLevelIndicator
	wave   *WaveIndicator
}

func NewHUD() *HUD {
	return &HUD{
		health: NewPlayerHealthIndicator(12, 28),
		level:  NewPlayerLevelIndicator(8, 6),
		wave:   NewWaveIndicator(config.ScreenWidth/2, 40),
	}
}

func (h *HUD) Draw(screen *ebiten.Image, ctx interfaces.GameContext) {
	pl := ctx.Player()
	if pl == nil {
		return
	}
	h.level.Draw(screen, pl.Level, pl.XP, pl.XPToNext)
	h.health.Draw(screen, pl.HP, pl.MaxHP, pl.Revivals)
	h.wave.Draw(screen, ctx.Elapsed(), ctx.Kills(), ctx.Tier())
}

package spectate

import (
	"math"

	"github.com/trouvaiilx/arcane-survivors/internal/app"
	"github.com/trouvaiilx/arcane-survivors/pkg/geom"
)

// Bot steers the player for unattended runs: it flees the nearest enemy
// when one is close and otherwise walks a slow circle.
type Bot struct {
	FleeRadius float64
	angle      float64
}

func NewBot() *Bot {
	return &Bot{FleeRadius: 160}
}

// Drive sets the move intent for the next tick and resolves pending level-ups.
func (b *Bot) Drive(g *app.Game, dt float64) {
	pl := g.Player()
	if pl == nil || pl.Dead {
		return
	}
	if g.PendingLevelUps() > 0 {
		g.UpgradeSystem.AutoPick()
	}
	b.angle = math.Mod(b.angle+0.4*dt, 2*math.Pi)
	intent := geom.FromAngle(b.angle)
	if e, ok := g.Grid.Nearest(pl.Pos, b.FleeRadius, nil); ok {
		intent = pl.Pos.Sub(e.Pos).NormalizeOr(intent)
	}
	g.SetMoveIntent(intent)
}

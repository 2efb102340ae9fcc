package component

import (
	"github.com/trouvaiilx/arcane-survivors/internal/defs"
	"github.com/trouvaiilx/arcane-survivors/pkg/geom"
)

// Enemy is a hostile entity steering toward the player.
type Enemy struct {
	Body
	DefID string

	HP, MaxHP float64
	Damage    float64 // contact damage per tick of overlap
	Speed     float64

	// Knockback is a per-tick displacement that decays by config.KnockbackDecay.
	Knockback           geom.Vec2
	KnockbackResistance float64
	Slow                SlowEffect

	Erratic      bool
	Phasing      bool // ignores knockback
	CanResurrect bool
	Resurrected  bool
	Tier         defs.Tier

	XPValue   float64
	CoinValue float64

	Flash float64 // hit flash timer, cosmetic
	Dead  bool
}

func (e *Enemy) Alive() bool { return !e.Dead }

func (e *Enemy) IsBoss() bool { return e.Tier == defs.TierBoss }

// Elite reports mini-bosses and bosses, which are never evicted.
func (e *Enemy) Elite() bool { return e.Tier == defs.TierBoss || e.Tier == defs.TierMiniBoss }

// EffectiveSpeed is the move speed after slows.
func (e *Enemy) EffectiveSpeed() float64 {
	return e.Speed * e.Slow.Multiplier()
}

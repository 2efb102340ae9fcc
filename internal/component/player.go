// internal/component/player.go
package component

import (
	"github.com/trouvaiilx/arcane-survivors/internal/defs"
	"github.com/trouvaiilx/arcane-survivors/pkg/geom"
)

// Stats are the owner multipliers read by every weapon recalculation.
// Multipliers are neutral at 1; Armor, Regen and MaxHP are flat.
type Stats struct {
	Damage          float64
	Cooldown        float64
	ProjectileSpeed float64
	Area            float64
	ProjectileBonus int
	Duration        float64
	MoveSpeed       float64
	Luck            float64
	Curse           float64
	Magnet          float64
	Armor           float64
	Regen           float64 // hp per second
	MaxHP           float64
	Revival         int
}

func DefaultStats() Stats {
	return Stats{
		Damage:          1,
		Cooldown:        1,
		ProjectileSpeed: 1,
		Area:            1,
		Duration:        1,
		MoveSpeed:       1,
		Luck:            1,
		Curse:           1,
		Magnet:          1,
	}
}

// Add applies a named stat bonus. Unknown names are ignored and reported false.
func (s *Stats) Add(stat string, amount float64) bool {
	switch stat {
	case defs.StatDamage:
		s.Damage += amount
	case defs.StatCooldown:
		s.Cooldown += amount
	case defs.StatProjectileSpeed:
		s.ProjectileSpeed += amount
	case defs.StatArea:
		s.Area += amount
	case defs.StatProjectiles:
		s.ProjectileBonus += int(amount)
	case defs.StatDuration:
		s.Duration += amount
	case defs.StatMoveSpeed:
		s.MoveSpeed += amount
	case defs.StatLuck:
		s.Luck += amount
	case defs.StatCurse:
		s.Curse += amount
	case defs.StatMagnet:
		s.Magnet += amount
	case defs.StatArmor:
		s.Armor += amount
	case defs.StatRegen:
		s.Regen += amount
	case defs.StatMaxHP:
		s.MaxHP += amount
	case defs.StatRevival:
		s.Revival += int(amount)
	default:
		return false
	}
	return true
}

// Sanitized keeps every multiplier at or above a tenth so no stack of
// negative bonuses can zero out a weapon.
func (s Stats) Sanitized() Stats {
	for _, m := range []*float64{&s.Damage, &s.Cooldown, &s.ProjectileSpeed, &s.Area, &s.Duration, &s.MoveSpeed, &s.Luck, &s.Curse, &s.Magnet} {
		if *m < 0.1 {
			*m = 0.1
		}
	}
	if s.Armor < 0 {
		s.Armor = 0
	}
	return s
}

// Player is the character controlled by the user.
type Player struct {
	Body
	HP, MaxHP float64
	BaseMaxHP float64
	Speed     float64

	Facing     geom.Vec2
	MoveIntent geom.Vec2

	InvincibleTimer float64
	Revivals        int

	Level           int
	XP              float64
	XPToNext        float64
	PendingLevelUps int
	Coins           float64

	Base     Stats // character and persistent bonuses
	Stats    Stats // Base folded with passives
	Passives map[string]int

	Dead bool
}

func (p *Player) Alive() bool { return !p.Dead }

func (p *Player) Invincible() bool { return p.InvincibleTimer > 0 }

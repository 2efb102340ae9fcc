package system

import (
	"math"

	"github.com/trouvaiilx/arcane-survivors/internal/component"
	"github.com/trouvaiilx/arcane-survivors/internal/config"
	"github.com/trouvaiilx/arcane-survivors/internal/types"
	"github.com/trouvaiilx/arcane-survivors/pkg/geom"
)

// ChainPattern jumps from the nearest enemy to the nearest not-yet-hit enemy
// within chain range, losing damage geometrically per hop. Projectiles is the
// hop budget.
type ChainPattern struct{}

func (ChainPattern) Fire(s *WeaponSystem, w *component.Weapon) {
	s.ChainFrom(w, s.Owner().Pos)
}

// ChainFrom runs one chain activation starting from the enemy nearest to
// origin and returns the ids hit in order.
func (s *WeaponSystem) ChainFrom(w *component.Weapon, origin geom.Vec2) []types.EntityID {
	params := w.Def.Params
	hops := w.Stats.Projectiles + params.ChainHops
	falloff := params.ChainFalloff
	if falloff <= 0 {
		falloff = 1
	}
	jump := params.ChainRange
	if jump <= 0 {
		jump = 150
	}
	jump *= w.Stats.Area

	hit := make(map[types.EntityID]struct{}, hops)
	skip := func(e *component.Enemy) bool {
		_, seen := hit[e.ID]
		return seen
	}
	var order []types.EntityID
	from := origin
	reach := aimRange(w)
	for hop := 0; hop < hops; hop++ {
		target, ok := s.NearestEnemy(from, reach, skip)
		if !ok {
			break
		}
		hit[target.ID] = struct{}{}
		order = append(order, target.ID)
		s.enemies.Hit(target, Hit{
			Damage:    w.Stats.Damage * math.Pow(falloff, float64(hop)),
			Knockback: w.Stats.Knockback,
			From:      from,
		})
		s.svc.Particles.SpawnEffect(target.Pos.X, target.Pos.Y, config.BeamColor, 4)
		from = target.Pos
		reach = jump
	}
	return order
}

// internal/system/projectile.go
package system

import (
	"github.com/trouvaiilx/arcane-survivors/internal/config"
	"github.com/trouvaiilx/arcane-survivors/internal/entity"
	"github.com/trouvaiilx/arcane-survivors/internal/types"
	"github.com/trouvaiilx/arcane-survivors/pkg/geom"
)

// ProjectileSystem advances projectile patterns and lifetimes.
type ProjectileSystem struct {
	ecs     *entity.ECS
	svc     *Services
	effects *EffectRunner
}

func NewProjectileSystem(ecs *entity.ECS, svc *Services, effects *EffectRunner) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, svc: svc, effects: effects}
}

// LocateOwner resolves a weak owner reference. Only the live player can own
// projectiles.
func (s *ProjectileSystem) LocateOwner(id types.EntityID) (geom.Vec2, bool) {
	if s.ecs.PlayerAlive() && s.ecs.Player.ID == id {
		return s.ecs.Player.Pos, true
	}
	return geom.Vec2{}, false
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, p := range s.ecs.Projectiles.All() {
		if p.Expired {
			continue
		}
		wasReturning := p.Returning
		p.Age += deltaTime
		finished := AdvanceProjectile(p, deltaTime, s.LocateOwner, config.WorldBounds)
		if p.Returning && !wasReturning {
			// a returning boomerang may hit again on the way back
			p.ClearHits()
		}
		if p.Recover() {
			s.svc.Log.Warn().Int64("projectile", int64(p.ID)).Str("pattern", p.Pattern.String()).Msg("non-finite projectile position, reverted")
		}
		if finished || p.Age >= p.Duration {
			s.effects.Expire(p)
		}
	}
}

package system

import (
	"math"

	"github.com/trouvaiilx/arcane-survivors/internal/component"
	"github.com/trouvaiilx/arcane-survivors/internal/config"
	"github.com/trouvaiilx/arcane-survivors/internal/entity"
	"github.com/trouvaiilx/arcane-survivors/internal/spatial"
	"github.com/trouvaiilx/arcane-survivors/internal/types"
	"github.com/trouvaiilx/arcane-survivors/pkg/geom"
)

// EffectRunner executes projectile hooks and other composite area effects.
type EffectRunner struct {
	ecs     *entity.ECS
	svc     *Services
	grid    *spatial.Grid[*component.Enemy]
	enemies *EnemySystem
}

func NewEffectRunner(ecs *entity.ECS, svc *Services, grid *spatial.Grid[*component.Enemy], enemies *EnemySystem) *EffectRunner {
	return &EffectRunner{ecs: ecs, svc: svc, grid: grid, enemies: enemies}
}

// Expire marks p expired and runs its expiry hooks once.
func (r *EffectRunner) Expire(p *component.Projectile) {
	if p.Expired {
		return
	}
	p.Expired = true
	r.RunHooks(p, p.OnExpire, 0)
}

// RunHooks runs hooks at the projectile's position. exclude is the enemy that
// triggered an on-hit hook; it is spared by splash.
func (r *EffectRunner) RunHooks(p *component.Projectile, hooks []component.Hook, exclude types.EntityID) {
	for _, h := range hooks {
		switch h.Kind {
		case component.HookSplash:
			r.Splash(p.Pos, h.Radius, p.Damage*h.Fraction, p.Knockback/2, exclude)
		case component.HookShards:
			r.shards(p, h)
		}
	}
}

// Splash damages every live enemy whose circle touches the splash circle.
func (r *EffectRunner) Splash(center geom.Vec2, radius, damage, knockback float64, exclude types.EntityID) int {
	if radius <= 0 || damage <= 0 {
		return 0
	}
	r.svc.Particles.SpawnEffect(center.X, center.Y, config.EliteColor, 10)
	n := 0
	for _, e := range r.grid.QueryRadius(center.X, center.Y, radius+r.grid.MaxRadius()) {
		if e.Dead || e.ID == exclude {
			continue
		}
		reach := radius + e.Radius
		if geom.Dist2(e.Pos, center) > reach*reach {
			continue
		}
		r.enemies.Hit(e, Hit{Damage: damage, Knockback: knockback, From: center})
		n++
	}
	return n
}

// shards releases an even ring of small linear projectiles. Shards carry no
// hooks of their own.
func (r *EffectRunner) shards(p *component.Projectile, h component.Hook) {
	if h.Count <= 0 {
		return
	}
	fraction := h.Fraction
	if fraction <= 0 {
		fraction = 0.5
	}
	offset := p.Dir.Angle()
	for i := 0; i < h.Count; i++ {
		angle := offset + 2*math.Pi*float64(i)/float64(h.Count)
		r.ecs.AddProjectile(component.NewProjectile(component.ProjectileSpec{
			WeaponID:    p.WeaponID,
			OwnerID:     p.OwnerID,
			Pos:         p.Pos,
			Dir:         geom.FromAngle(angle),
			Speed:       math.Max(p.Speed, 200),
			Radius:      math.Max(p.Radius/2, 3),
			Damage:      p.Damage * fraction,
			PierceLimit: 1,
			Duration:    0.6,
		}))
	}
}

// internal/system/pattern.go
package system

import (
	"github.com/trouvaiilx/arcane-survivors/internal/component"
	"github.com/trouvaiilx/arcane-survivors/internal/config"
	"github.com/trouvaiilx/arcane-survivors/internal/types"
	"github.com/trouvaiilx/arcane-survivors/pkg/geom"
)

// OwnerLocator resolves a projectile's weak owner reference to a position.
type OwnerLocator func(id types.EntityID) (geom.Vec2, bool)

// AdvanceProjectile moves p by one step of its pattern. It reports true when
// the pattern itself ended the projectile (boomerang caught, bounce limit);
// the caller expires it and runs its expiry hooks.
func AdvanceProjectile(p *component.Projectile, dt float64, owner OwnerLocator, bounds geom.Rect) bool {
	switch p.Pattern {
	case component.MoveArc:
		return advanceArc(p, dt)
	case component.MoveBoomerang:
		return advanceBoomerang(p, dt, owner)
	case component.MoveBounce:
		return advanceBounce(p, dt, bounds)
	case component.MoveGroundSeek:
		return advanceGroundSeek(p, dt)
	default:
		return advanceLinear(p, dt)
	}
}

func advanceLinear(p *component.Projectile, dt float64) bool {
	p.Pos = p.Pos.Add(p.Dir.Scale(p.Speed * dt))
	return false
}

// Dir is a velocity direction here and grows past unit length as gravity pulls.
func advanceArc(p *component.Projectile, dt float64) bool {
	p.Dir.Y += p.Gravity * dt
	return advanceLinear(p, dt)
}

func advanceBoomerang(p *component.Projectile, dt float64, owner OwnerLocator) bool {
	if !p.Returning && p.Age >= p.ReturnTime {
		p.Returning = true
	}
	if !p.Returning {
		return advanceLinear(p, dt)
	}
	if owner == nil {
		return true
	}
	home, ok := owner(p.OwnerID)
	if !ok {
		return true
	}
	to := home.Sub(p.Pos)
	dist := to.Len()
	step := p.Speed * dt
	if dist <= config.BoomerangSnapRadius || dist <= step {
		p.Pos = home
		return true
	}
	p.Dir = to.Normalize()
	p.Pos = p.Pos.Add(p.Dir.Scale(step))
	return geom.Dist(p.Pos, home) <= config.BoomerangSnapRadius
}

// The bounce limit is reached on the MaxBounces-th wall hit.
func advanceBounce(p *component.Projectile, dt float64, bounds geom.Rect) bool {
	advanceLinear(p, dt)
	bounced := false
	if p.Pos.X < bounds.MinX || p.Pos.X > bounds.MaxX {
		p.Dir.X = -p.Dir.X
		bounced = true
	}
	if p.Pos.Y < bounds.MinY || p.Pos.Y > bounds.MaxY {
		p.Dir.Y = -p.Dir.Y
		bounced = true
	}
	if !bounced {
		return false
	}
	p.Pos = bounds.Clamp(p.Pos)
	p.Bounces++
	return p.MaxBounces > 0 && p.Bounces >= p.MaxBounces
}

func advanceGroundSeek(p *component.Projectile, dt float64) bool {
	if p.Landed {
		return false
	}
	to := p.Target.Sub(p.Pos)
	dist := to.Len()
	step := p.Speed * dt
	if dist <= step || p.Speed <= 0 {
		p.Pos = p.Target
		p.Landed = true
		return false
	}
	p.Dir = to.Normalize()
	p.Pos = p.Pos.Add(p.Dir.Scale(step))
	return false
}

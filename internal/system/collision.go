// internal/system/collision.go
package system

import (
	"github.com/trouvaiilx/arcane-survivors/internal/component"
	"github.com/trouvaiilx/arcane-survivors/internal/entity"
	"github.com/trouvaiilx/arcane-survivors/internal/spatial"
	"github.com/trouvaiilx/arcane-survivors/pkg/geom"
)

// CollisionSystem resolves every overlap of the tick: player contact,
// projectile hits, persistent weapon hitboxes and pickup collection.
type CollisionSystem struct {
	ecs     *entity.ECS
	grid    *spatial.Grid[*component.Enemy]
	enemies *EnemySystem
	player  *PlayerSystem
	pickups *PickupSystem
	effects *EffectRunner

	buf []*component.Enemy
}

func NewCollisionSystem(ecs *entity.ECS, grid *spatial.Grid[*component.Enemy], enemies *EnemySystem,
	player *PlayerSystem, pickups *PickupSystem, effects *EffectRunner) *CollisionSystem {
	return &CollisionSystem{
		ecs:     ecs,
		grid:    grid,
		enemies: enemies,
		player:  player,
		pickups: pickups,
		effects: effects,
	}
}

func (s *CollisionSystem) Update(deltaTime float64) {
	s.ResolvePlayerContact()
	s.ResolveProjectileHits(deltaTime)
	s.ResolvePersistentHits()
	s.ResolvePickupContact()
}

func (s *CollisionSystem) query(center geom.Vec2, extent float64) []*component.Enemy {
	s.buf = s.grid.AppendRadius(s.buf[:0], center.X, center.Y, extent+s.grid.MaxRadius())
	return s.buf
}

// ResolvePlayerContact applies the contact damage of every touching enemy.
// Only the player's invincibility window limits how often it lands.
func (s *CollisionSystem) ResolvePlayerContact() {
	if !s.ecs.PlayerAlive() {
		return
	}
	pl := s.ecs.Player
	for _, e := range s.query(pl.Pos, pl.Radius) {
		if e.Dead {
			continue
		}
		reach := pl.Radius + e.Radius
		if geom.Dist2(e.Pos, pl.Pos) > reach*reach {
			continue
		}
		s.player.Damage(e.Damage)
		if pl.Dead {
			return
		}
	}
}

// ResolveProjectileHits tests every live projectile against nearby enemies.
// A projectile that reaches its pierce limit is expired before it can touch
// the next candidate.
func (s *CollisionSystem) ResolveProjectileHits(deltaTime float64) {
	for _, p := range s.ecs.Projectiles.All() {
		if p.Expired {
			continue
		}
		if p.Ground() && !p.Landed {
			continue
		}
		if p.TickInterval > 0 {
			p.TickTimer -= deltaTime
			if p.TickTimer > 0 {
				continue
			}
			p.TickTimer = p.TickInterval
			p.ClearHits()
		}
		for _, e := range s.query(p.Pos, p.BoundingRadius()) {
			if e.Dead || p.HasHit(e.ID) || !p.Overlaps(e.Pos, e.Radius) {
				continue
			}
			s.enemies.Hit(e, Hit{Damage: p.Damage, Knockback: p.Knockback, From: p.Pos, Slow: p.Slow})
			exhausted := p.RecordHit(e.ID)
			s.effects.RunHooks(p, p.OnHit, e.ID)
			if exhausted {
				s.effects.Expire(p)
				break
			}
		}
	}
}

// ResolvePersistentHits applies orbit and beam hitboxes.
func (s *CollisionSystem) ResolvePersistentHits() {
	if !s.ecs.PlayerAlive() {
		return
	}
	origin := s.ecs.Player.Pos
	for _, w := range s.ecs.Weapons {
		if w.Orbit != nil && w.Orbit.Active() {
			s.resolveOrbit(w, origin)
		}
		if w.Beam != nil && w.Beam.Active() {
			s.resolveBeam(w.Beam, origin)
		}
	}
}

func (s *CollisionSystem) resolveOrbit(w *component.Weapon, origin geom.Vec2) {
	o := w.Orbit
	now := s.ecs.GameTime
	cooldown := orbitHitCooldown(w)
	for _, center := range o.Positions(origin) {
		for _, e := range s.query(center, o.HitRadius) {
			if e.Dead {
				continue
			}
			if last, ok := o.LastHitTime[e.ID]; ok && now-last < cooldown {
				continue
			}
			reach := o.HitRadius + e.Radius
			if geom.Dist2(e.Pos, center) > reach*reach {
				continue
			}
			o.LastHitTime[e.ID] = now
			s.enemies.Hit(e, Hit{Damage: w.Stats.Damage, Knockback: w.Stats.Knockback, From: origin})
		}
	}
}

// resolveBeam projects each nearby enemy onto the beam segment: the dot product
// gives the distance along it and the cross product the distance off it.
func (s *CollisionSystem) resolveBeam(b *component.BeamState, origin geom.Vec2) {
	mid := origin.Add(b.Dir.Scale(b.Length / 2))
	for _, e := range s.query(mid, b.Length/2+b.HalfWidth) {
		if e.Dead {
			continue
		}
		if _, done := b.HitSet[e.ID]; done {
			continue
		}
		along, perp := geom.SegmentDistance(origin, b.Dir, e.Pos)
		if along < -e.Radius || along > b.Length+e.Radius || perp > b.HalfWidth+e.Radius {
			continue
		}
		b.HitSet[e.ID] = struct{}{}
		s.enemies.Hit(e, Hit{Damage: b.Damage, Knockback: b.Knockback, From: origin, Slow: b.Slow})
	}
}

// ResolvePickupContact delegates to the pickup system.
func (s *CollisionSystem) ResolvePickupContact() {
	if s.pickups != nil {
		s.pickups.ResolvePickupContact()
	}
}

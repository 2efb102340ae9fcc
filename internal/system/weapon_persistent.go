package system

import (
	"github.com/trouvaiilx/arcane-survivors/internal/component"
	"github.com/trouvaiilx/arcane-survivors/internal/types"
)

// DefaultOrbitHitCooldown gates orbit re-hits on the same enemy.
const DefaultOrbitHitCooldown = 0.5

// OrbitPattern keeps Projectiles hitboxes circling the owner while active.
// Hits are resolved by the collision system and gated per target.
type OrbitPattern struct{}

func (OrbitPattern) Fire(s *WeaponSystem, w *component.Weapon) {
	params := w.Def.Params
	orbitRadius := params.OrbitRadius
	if orbitRadius <= 0 {
		orbitRadius = w.Stats.Range
	}
	o := w.Orbit
	if o == nil {
		o = &component.OrbitState{LastHitTime: make(map[types.EntityID]float64)}
		w.Orbit = o
	}
	o.Count = w.Stats.Projectiles
	o.Radius = orbitRadius * w.Stats.Area
	o.HitRadius = projectileRadius(w, 12)
	o.Permanent = w.Stats.Duration <= 0
	o.Remaining = w.Stats.Duration
}

func (OrbitPattern) Tick(s *WeaponSystem, w *component.Weapon, deltaTime float64) {
	o := w.Orbit
	if o == nil || !o.Active() {
		return
	}
	speed := w.Stats.Speed
	if speed == 0 {
		speed = w.Def.Params.OrbitSpeed
	}
	o.Angle += speed * deltaTime
	if !o.Permanent {
		o.Remaining -= deltaTime
	}
	now := s.Now()
	cooldown := orbitHitCooldown(w)
	for id, at := range o.LastHitTime {
		if now-at >= cooldown {
			delete(o.LastHitTime, id)
		}
	}
}

func orbitHitCooldown(w *component.Weapon) float64 {
	if w.Def.Params.HitCooldown > 0 {
		return w.Def.Params.HitCooldown
	}
	return DefaultOrbitHitCooldown
}

// BeamPattern opens a beam along the aim direction for the weapon duration.
// Each activation damages an enemy at most once.
type BeamPattern struct{}

func (BeamPattern) Fire(s *WeaponSystem, w *component.Weapon) {
	width := w.Def.Params.BeamWidth
	if width <= 0 {
		width = 16
	}
	w.Beam = &component.BeamState{
		Dir:       s.AimDirection(w),
		Length:    aimRange(w),
		HalfWidth: width / 2 * w.Stats.Area,
		Remaining: w.Stats.Duration,
		Damage:    w.Stats.Damage,
		Knockback: w.Stats.Knockback,
		Slow:      slowOf(w),
		HitSet:    make(map[types.EntityID]struct{}),
	}
}

func (BeamPattern) Tick(s *WeaponSystem, w *component.Weapon, deltaTime float64) {
	if w.Beam == nil {
		return
	}
	w.Beam.Remaining -= deltaTime
	if w.Beam.Remaining <= 0 {
		w.Beam = nil
	}
}

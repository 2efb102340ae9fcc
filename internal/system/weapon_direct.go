package system

import (
	"math"

	"github.com/trouvaiilx/arcane-survivors/internal/component"
	"github.com/trouvaiilx/arcane-survivors/pkg/geom"
)

// DirectPattern fans Projectiles shots around the aim vector, staggered by
// the weapon's shot delay.
type DirectPattern struct{}

func (DirectPattern) Fire(s *WeaponSystem, w *component.Weapon) {
	n := w.Stats.Projectiles
	aim := s.AimDirection(w)
	stats := w.Stats
	step := spreadStep(w)
	radius := projectileRadius(w, 6)
	onHit := impactSplash(w)
	for i := 0; i < n; i++ {
		dir := aim.Rotate(spreadAngle(i, n, step))
		s.Later(w, float64(i)*shotDelay(w), func() {
			s.Spawn(component.ProjectileSpec{
				WeaponID:    w.ID,
				OwnerID:     s.Owner().ID,
				Pos:         s.Owner().Pos,
				Dir:         dir,
				Speed:       stats.Speed,
				Radius:      radius,
				Damage:      stats.Damage,
				Knockback:   stats.Knockback,
				PierceLimit: max(stats.Pierce, 1),
				Duration:    stats.Duration,
				Slow:        slowOf(w),
				OnHit:       onHit,
			})
		})
	}
}

// RingPattern divides the full circle evenly between Projectiles shots and
// rotates the ring between activations.
type RingPattern struct{}

func (RingPattern) Fire(s *WeaponSystem, w *component.Weapon) {
	n := w.Stats.Projectiles
	origin := s.Owner().Pos
	for i := 0; i < n; i++ {
		angle := w.RingOffset + 2*math.Pi*float64(i)/float64(n)
		s.Spawn(component.ProjectileSpec{
			WeaponID:    w.ID,
			OwnerID:     s.Owner().ID,
			Pos:         origin,
			Dir:         geom.FromAngle(angle),
			Speed:       w.Stats.Speed,
			Radius:      projectileRadius(w, 8),
			Damage:      w.Stats.Damage,
			Knockback:   w.Stats.Knockback,
			PierceLimit: max(w.Stats.Pierce, 1),
			Duration:    w.Stats.Duration,
			Slow:        slowOf(w),
		})
	}
	w.RingOffset = math.Mod(w.RingOffset+w.Def.Params.RingRotation, 2*math.Pi)
}

// BoomerangPattern throws returning projectiles; they fly out for half their
// duration and then home on the owner.
type BoomerangPattern struct{}

func (BoomerangPattern) Fire(s *WeaponSystem, w *component.Weapon) {
	n := w.Stats.Projectiles
	aim := s.AimDirection(w)
	stats := w.Stats
	step := spreadStep(w)
	for i := 0; i < n; i++ {
		dir := aim.Rotate(spreadAngle(i, n, step))
		s.Later(w, float64(i)*shotDelay(w), func() {
			s.Spawn(component.ProjectileSpec{
				WeaponID:    w.ID,
				OwnerID:     s.Owner().ID,
				Pos:         s.Owner().Pos,
				Dir:         dir,
				Speed:       stats.Speed,
				Radius:      projectileRadius(w, 12),
				Damage:      stats.Damage,
				Knockback:   stats.Knockback,
				PierceLimit: stats.Pierce,
				Duration:    stats.Duration,
				Pattern:     component.MoveBoomerang,
				ReturnTime:  stats.Duration / 2,
			})
		})
	}
}

// LobPattern throws ballistic bombs that splash where they land.
type LobPattern struct{}

func (LobPattern) Fire(s *WeaponSystem, w *component.Weapon) {
	n := w.Stats.Projectiles
	aim := s.AimDirection(w)
	stats := w.Stats
	params := w.Def.Params
	step := spreadStep(w)
	hooks := []component.Hook{{Kind: component.HookSplash, Radius: params.SplashRadius * stats.Area, Fraction: params.SplashFraction}}
	if params.ShardCount > 0 {
		hooks = append(hooks, component.Hook{Kind: component.HookShards, Count: params.ShardCount, Fraction: 0.5})
	}
	for i := 0; i < n; i++ {
		dir := aim.Rotate(spreadAngle(i, n, step))
		s.Later(w, float64(i)*shotDelay(w), func() {
			p := s.Spawn(component.ProjectileSpec{
				WeaponID:    w.ID,
				OwnerID:     s.Owner().ID,
				Pos:         s.Owner().Pos,
				Dir:         dir,
				Speed:       stats.Speed,
				Radius:      projectileRadius(w, 9),
				Damage:      stats.Damage,
				Knockback:   stats.Knockback,
				PierceLimit: 1,
				Duration:    stats.Duration,
				Pattern:     component.MoveArc,
				Gravity:     params.Gravity,
				OnExpire:    hooks,
			})
			// Launch upward so gravity brings the bomb back onto the aim line
			// when its lifetime ends.
			p.Dir = dir.Add(geom.V(0, -params.Gravity*stats.Duration/2))
		})
	}
}

// BouncePattern fires shots that ricochet off the world edges and splash
// around every enemy they strike.
type BouncePattern struct{}

func (BouncePattern) Fire(s *WeaponSystem, w *component.Weapon) {
	n := w.Stats.Projectiles
	aim := s.AimDirection(w)
	stats := w.Stats
	params := w.Def.Params
	step := spreadStep(w)
	onHit := impactSplash(w)
	var hooks []component.Hook
	if params.ShardCount > 0 {
		hooks = []component.Hook{{Kind: component.HookShards, Count: params.ShardCount, Fraction: 0.5}}
	}
	for i := 0; i < n; i++ {
		dir := aim.Rotate(spreadAngle(i, n, step))
		s.Later(w, float64(i)*shotDelay(w), func() {
			s.Spawn(component.ProjectileSpec{
				WeaponID:    w.ID,
				OwnerID:     s.Owner().ID,
				Pos:         s.Owner().Pos,
				Dir:         dir,
				Speed:       stats.Speed,
				Radius:      projectileRadius(w, 10),
				Damage:      stats.Damage,
				Knockback:   stats.Knockback,
				PierceLimit: stats.Pierce,
				Duration:    stats.Duration,
				Pattern:     component.MoveBounce,
				MaxBounces:  params.MaxBounces,
				OnHit:       onHit,
				OnExpire:    hooks,
			})
		})
	}
}

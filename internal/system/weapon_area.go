package system

import (
	"math"

	"github.com/trouvaiilx/arcane-survivors/internal/component"
	"github.com/trouvaiilx/arcane-survivors/internal/types"
	"github.com/trouvaiilx/arcane-survivors/internal/utils"
	"github.com/trouvaiilx/arcane-survivors/pkg/geom"
)

// SweepPattern traces an arc of short-lived invisible hitboxes around the
// owner, alternating direction between activations. All hitboxes of one sweep
// share a hit-set.
type SweepPattern struct{}

func (SweepPattern) Fire(s *WeaponSystem, w *component.Weapon) {
	params := w.Def.Params
	steps := max(params.SweepSteps, 2)
	arc := params.SweepArc
	if arc <= 0 {
		arc = math.Pi / 2
	}
	window := params.SweepWindow
	halfW := params.HitboxWidth / 2 * w.Stats.Area
	halfH := params.HitboxHeight / 2 * w.Stats.Area
	if halfW <= 0 || halfH <= 0 {
		halfW, halfH = 20*w.Stats.Area, 20*w.Stats.Area
	}
	reach := w.Stats.Range * w.Stats.Area
	stats := w.Stats
	sign := w.SweepSign
	if sign == 0 {
		sign = 1
	}
	w.SweepSign = -sign

	base := s.AimDirection(w).Angle()
	for sweep := 0; sweep < stats.Projectiles; sweep++ {
		center := base + math.Pi*float64(sweep)
		shared := make(map[types.EntityID]struct{})
		for k := 0; k < steps; k++ {
			t := float64(k) / float64(steps-1)
			angle := center + sign*(-arc/2+arc*t)
			s.Later(w, window*t, func() {
				p := s.Spawn(component.ProjectileSpec{
					WeaponID:    w.ID,
					OwnerID:     s.Owner().ID,
					Pos:         s.Owner().Pos.Add(geom.FromAngle(angle).Scale(reach)),
					Dir:         geom.FromAngle(angle),
					Shape:       component.Shape{Kind: component.ShapeRect, HalfW: halfW, HalfH: halfH},
					Radius:      math.Max(halfW, halfH),
					Damage:      stats.Damage,
					Knockback:   stats.Knockback,
					PierceLimit: stats.Pierce,
					Duration:    math.Max(stats.Duration, 1.0/60),
					Invisible:   true,
				})
				p.HitSet = shared
			})
		}
	}
}

// DefaultPoolTick is the damage interval of a landed pool.
const DefaultPoolTick = 0.5

// PoolPattern lobs flasks at enemies (or random nearby ground) that land and
// become stationary damage fields ticking on a fixed interval.
type PoolPattern struct{}

func (PoolPattern) Fire(s *WeaponSystem, w *component.Weapon) {
	params := w.Def.Params
	stats := w.Stats
	origin := s.Owner().Pos
	reach := aimRange(w)
	targets := s.EnemiesInRange(reach)
	picks := utils.Sample(s.svc.RNG, len(targets), stats.Projectiles)
	poolRadius := params.PoolRadius
	if poolRadius <= 0 {
		poolRadius = 40
	}
	tick := params.PoolTick
	if tick <= 0 {
		tick = DefaultPoolTick
	}
	speed := stats.Speed
	if speed <= 0 {
		speed = 300
	}
	for i := 0; i < stats.Projectiles; i++ {
		var target geom.Vec2
		if i < len(picks) {
			target = targets[picks[i]].Pos
		} else {
			angle := s.svc.RNG.Float64() * 2 * math.Pi
			target = origin.Add(geom.FromAngle(angle).Scale(utils.Range(s.svc.RNG, 0.3, 1) * reach))
		}
		travel := geom.Dist(origin, target) / speed
		s.Spawn(component.ProjectileSpec{
			WeaponID:     w.ID,
			OwnerID:      s.Owner().ID,
			Pos:          origin,
			Dir:          target.Sub(origin),
			Speed:        speed,
			Radius:       poolRadius * stats.Area,
			Damage:       stats.Damage,
			Duration:     travel + stats.Duration,
			Pattern:      component.MoveGroundSeek,
			Target:       target,
			TickInterval: tick,
			Slow:         slowOf(w),
		})
	}
}

// StrikePattern hits up to Projectiles distinct random enemies in range
// without any projectile travel, splashing around each target.
type StrikePattern struct{}

func (StrikePattern) Fire(s *WeaponSystem, w *component.Weapon) {
	targets := s.EnemiesInRange(aimRange(w))
	if len(targets) == 0 {
		return
	}
	stats := w.Stats
	params := w.Def.Params
	picks := utils.Sample(s.svc.RNG, len(targets), stats.Projectiles)
	for i, idx := range picks {
		id := targets[idx].ID
		s.Later(w, float64(i)*params.ShotDelay, func() {
			e, ok := s.ecs.Enemies.Get(id)
			if !ok || e.Dead {
				return
			}
			pos := e.Pos
			s.enemies.Hit(e, Hit{Damage: stats.Damage, Knockback: stats.Knockback, From: s.Owner().Pos})
			if params.SplashRadius > 0 && params.SplashFraction > 0 {
				s.effects.Splash(pos, params.SplashRadius*stats.Area, stats.Damage*params.SplashFraction, stats.Knockback/2, id)
			}
		})
	}
}

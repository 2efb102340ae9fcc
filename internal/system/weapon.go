// internal/system/weapon.go
package system

import (
	"errors"
	"fmt"

	"github.com/trouvaiilx/arcane-survivors/internal/component"
	"github.com/trouvaiilx/arcane-survivors/internal/config"
	"github.com/trouvaiilx/arcane-survivors/internal/defs"
	"github.com/trouvaiilx/arcane-survivors/internal/entity"
	"github.com/trouvaiilx/arcane-survivors/internal/event"
	"github.com/trouvaiilx/arcane-survivors/internal/interfaces"
	"github.com/trouvaiilx/arcane-survivors/internal/spatial"
	"github.com/trouvaiilx/arcane-survivors/internal/types"
	"github.com/trouvaiilx/arcane-survivors/pkg/geom"
)

var (
	ErrUnknownWeapon    = errors.New("unknown weapon")
	ErrWeaponSlotsFull  = errors.New("weapon slots full")
	ErrAlreadyEquipped  = errors.New("weapon already equipped")
	ErrNoPatternHandler = errors.New("no handler for weapon pattern")
)

// DefaultAimRange bounds nearest-enemy searches for weapons without a range stat.
const DefaultAimRange = 800.0

// FirePattern is one weapon firing strategy.
type FirePattern interface {
	Fire(s *WeaponSystem, w *component.Weapon)
}

// Ticker is implemented by patterns that keep state alive between shots.
type Ticker interface {
	Tick(s *WeaponSystem, w *component.Weapon, deltaTime float64)
}

// RecalculateStats derives a weapon's stats from its definition, its level and
// the owner's multipliers. Upgrade entries [0, level-1) are folded over the
// base: cooldown and area compound multiplicatively, everything else adds.
// The result never depends on previous calls.
func RecalculateStats(def *defs.WeaponDefinition, level int, owner component.Stats) defs.StatBlock {
	s := def.Base
	if s.Area == 0 {
		s.Area = 1
	}
	level = min(max(level, 1), max(def.MaxLevel, 1))
	upgrades := def.Upgrades
	if n := level - 1; n < len(upgrades) {
		upgrades = upgrades[:n]
	}
	for _, up := range upgrades {
		s.Damage += up.Damage
		s.Projectiles += up.Projectiles
		s.Pierce += up.Pierce
		s.Duration += up.Duration
		s.Speed += up.Speed
		s.Range += up.Range
		s.Knockback += up.Knockback
		if up.Cooldown != 0 {
			s.Cooldown *= up.Cooldown
		}
		if up.Area != 0 {
			s.Area *= up.Area
		}
	}
	s.Damage *= owner.Damage
	s.Cooldown *= owner.Cooldown
	s.Area *= owner.Area
	s.Speed *= owner.ProjectileSpeed
	s.Duration *= owner.Duration
	s.Projectiles += owner.ProjectileBonus
	if !(s.Cooldown >= config.MinWeaponCooldown) {
		s.Cooldown = config.MinWeaponCooldown
	}
	return s
}

// WeaponSystem ticks weapon cooldowns and dispatches firing to the pattern
// registered for each weapon.
type WeaponSystem struct {
	ecs       *entity.ECS
	svc       *Services
	catalog   *defs.Catalog
	grid      *spatial.Grid[*component.Enemy]
	scheduler *Scheduler
	enemies   *EnemySystem
	effects   *EffectRunner
	patterns  map[defs.Pattern]FirePattern
}

func NewWeaponSystem(ecs *entity.ECS, svc *Services, catalog *defs.Catalog, grid *spatial.Grid[*component.Enemy],
	scheduler *Scheduler, enemies *EnemySystem, effects *EffectRunner) *WeaponSystem {
	s := &WeaponSystem{
		ecs:       ecs,
		svc:       svc,
		catalog:   catalog,
		grid:      grid,
		scheduler: scheduler,
		enemies:   enemies,
		effects:   effects,
		patterns:  make(map[defs.Pattern]FirePattern),
	}
	s.Register(defs.PatternDirect, DirectPattern{})
	s.Register(defs.PatternRing, RingPattern{})
	s.Register(defs.PatternOrbit, OrbitPattern{})
	s.Register(defs.PatternChain, ChainPattern{})
	s.Register(defs.PatternSweep, SweepPattern{})
	s.Register(defs.PatternBeam, BeamPattern{})
	s.Register(defs.PatternPool, PoolPattern{})
	s.Register(defs.PatternBoomerang, BoomerangPattern{})
	s.Register(defs.PatternStrike, StrikePattern{})
	s.Register(defs.PatternLob, LobPattern{})
	s.Register(defs.PatternBounce, BouncePattern{})
	return s
}

// Register installs or replaces the strategy for a pattern name.
func (s *WeaponSystem) Register(name defs.Pattern, p FirePattern) {
	s.patterns[name] = p
}

// Equip adds a new weapon instance at level 1.
func (s *WeaponSystem) Equip(defID string) (*component.Weapon, error) {
	def, ok := s.catalog.Weapon(defID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownWeapon, defID)
	}
	if _, ok := s.patterns[def.Pattern]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoPatternHandler, def.Pattern)
	}
	for _, w := range s.ecs.Weapons {
		if w.Def.ID == defID {
			return nil, fmt.Errorf("%w: %s", ErrAlreadyEquipped, defID)
		}
	}
	if len(s.ecs.Weapons) >= config.MaxWeapons {
		return nil, ErrWeaponSlotsFull
	}
	w := &component.Weapon{ID: s.ecs.NewEntity(), Def: def, Level: 1, SweepSign: 1}
	s.Recalculate(w)
	s.ecs.Weapons = append(s.ecs.Weapons, w)
	s.svc.Log.Info().Str("weapon", defID).Int64("instance", int64(w.ID)).Msg("weapon equipped")
	return w, nil
}

// Unequip removes a weapon instance. Its pending staggered shots are abandoned
// when they come due.
func (s *WeaponSystem) Unequip(id types.EntityID) bool {
	for i, w := range s.ecs.Weapons {
		if w.ID == id {
			s.ecs.Weapons = append(s.ecs.Weapons[:i], s.ecs.Weapons[i+1:]...)
			return true
		}
	}
	return false
}

// Equipped returns the instance of defID, if equipped.
func (s *WeaponSystem) Equipped(defID string) (*component.Weapon, bool) {
	for _, w := range s.ecs.Weapons {
		if w.Def.ID == defID {
			return w, true
		}
	}
	return nil, false
}

// SetLevel moves a weapon to level, clamped to [1, MaxLevel], and recalculates.
func (s *WeaponSystem) SetLevel(w *component.Weapon, level int) {
	w.Level = min(max(level, 1), max(w.Def.MaxLevel, 1))
	s.Recalculate(w)
}

// LevelUp raises a weapon one level. It reports false at max level.
func (s *WeaponSystem) LevelUp(w *component.Weapon) bool {
	if w.MaxLevel() {
		return false
	}
	s.SetLevel(w, w.Level+1)
	return true
}

func (s *WeaponSystem) Recalculate(w *component.Weapon) {
	owner := component.DefaultStats()
	if s.ecs.Player != nil {
		owner = s.ecs.Player.Stats
	}
	w.Stats = RecalculateStats(w.Def, w.Level, owner)
}

// RecalculateAll refreshes every weapon after an owner stat change.
func (s *WeaponSystem) RecalculateAll() {
	for _, w := range s.ecs.Weapons {
		s.Recalculate(w)
	}
}

func (s *WeaponSystem) Update(deltaTime float64) {
	if !s.ecs.PlayerAlive() {
		return
	}
	for _, w := range s.ecs.Weapons {
		pattern, ok := s.patterns[w.Def.Pattern]
		if !ok {
			continue
		}
		if t, ok := pattern.(Ticker); ok {
			t.Tick(s, w, deltaTime)
		}
		w.Timer -= deltaTime
		if w.Timer > 0 {
			continue
		}
		s.Recalculate(w)
		w.Timer = w.Stats.Cooldown
		if w.Stats.Projectiles <= 0 {
			continue
		}
		pattern.Fire(s, w)
		s.svc.Audio.Play(interfaces.SoundFire)
		s.svc.Events.Dispatch(event.Event{Type: event.WeaponFired, Data: event.WeaponFiredData{WeaponID: w.ID, DefID: w.Def.ID}})
	}
}

// Now is the simulation time in seconds.
func (s *WeaponSystem) Now() float64 { return s.ecs.GameTime }

// Owner returns the player that carries the weapons.
func (s *WeaponSystem) Owner() *component.Player { return s.ecs.Player }

// Later schedules action after delay seconds on behalf of weapon w. A zero
// delay runs it immediately.
func (s *WeaponSystem) Later(w *component.Weapon, delay float64, action func()) {
	if delay <= 0 {
		action()
		return
	}
	s.scheduler.Schedule(s.Now()+delay, w.ID, action)
}

// Spawn registers a projectile built from spec.
func (s *WeaponSystem) Spawn(spec component.ProjectileSpec) *component.Projectile {
	return s.ecs.AddProjectile(component.NewProjectile(spec))
}

func aimRange(w *component.Weapon) float64 {
	if w.Stats.Range > 0 {
		return w.Stats.Range
	}
	return DefaultAimRange
}

// NearestEnemy returns the live enemy closest to from within r.
func (s *WeaponSystem) NearestEnemy(from geom.Vec2, r float64, skip func(*component.Enemy) bool) (*component.Enemy, bool) {
	return s.grid.Nearest(from, r, skip)
}

// AimDirection points at the nearest enemy in range, or along the owner's
// facing when there is none.
func (s *WeaponSystem) AimDirection(w *component.Weapon) geom.Vec2 {
	owner := s.Owner()
	if e, ok := s.NearestEnemy(owner.Pos, aimRange(w), nil); ok {
		return e.Pos.Sub(owner.Pos).NormalizeOr(owner.Facing.Normalize())
	}
	return owner.Facing.Normalize()
}

// EnemiesInRange returns live enemies within r of the owner.
func (s *WeaponSystem) EnemiesInRange(r float64) []*component.Enemy {
	p := s.Owner().Pos
	return s.grid.QueryRadius(p.X, p.Y, r)
}

// spreadAngle is the symmetric fan offset of shot i out of n.
func spreadAngle(i, n int, step float64) float64 {
	return (float64(i) - float64(n-1)/2) * step
}

func spreadStep(w *component.Weapon) float64 {
	if w.Def.Params.SpreadStep > 0 {
		return w.Def.Params.SpreadStep
	}
	return config.DefaultSpreadStep
}

func shotDelay(w *component.Weapon) float64 {
	if w.Def.Params.ShotDelay > 0 {
		return w.Def.Params.ShotDelay
	}
	return config.DefaultShotDelay
}

func projectileRadius(w *component.Weapon, fallback float64) float64 {
	r := w.Def.Params.Radius
	if r <= 0 {
		r = fallback
	}
	return r * w.Stats.Area
}

// impactSplash is the on-hit splash of shots that carry one.
func impactSplash(w *component.Weapon) []component.Hook {
	params := w.Def.Params
	if params.SplashRadius <= 0 || params.SplashFraction <= 0 {
		return nil
	}
	return []component.Hook{{Kind: component.HookSplash, Radius: params.SplashRadius * w.Stats.Area, Fraction: params.SplashFraction}}
}

func slowOf(w *component.Weapon) *component.SlowSpec {
	p := w.Def.Params
	if p.SlowFactor <= 0 || p.SlowDuration <= 0 {
		return nil
	}
	return &component.SlowSpec{Factor: p.SlowFactor, Duration: p.SlowDuration}
}

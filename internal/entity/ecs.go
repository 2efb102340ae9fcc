// internal/entity/ecs.go
package entity

import (
	"github.com/rs/zerolog"

	"github.com/trouvaiilx/arcane-survivors/internal/component"
	"github.com/trouvaiilx/arcane-survivors/internal/config"
	"github.com/trouvaiilx/arcane-survivors/internal/types"
)

// Limits caps the live population of each transient kind.
type Limits struct {
	Enemies     int
	Projectiles int
	Pickups     int
}

func DefaultLimits() Limits {
	return Limits{
		Enemies:     config.MaxEnemies,
		Projectiles: config.MaxProjectiles,
		Pickups:     config.MaxPickups,
	}
}

// ECS owns every simulation entity. Transient kinds live in collections;
// the player and its weapons are singletons.
type ECS struct {
	GameTime float64
	NextID   types.EntityID

	Player      *component.Player
	Weapons     []*component.Weapon
	Enemies     *Collection[*component.Enemy]
	Projectiles *Collection[*component.Projectile]
	Pickups     *Collection[*component.Pickup]

	limits Limits
	log    zerolog.Logger
}

func NewECS(limits Limits, logger zerolog.Logger) *ECS {
	return &ECS{
		NextID:      1,
		Enemies:     NewCollection[*component.Enemy](),
		Projectiles: NewCollection[*component.Projectile](),
		Pickups:     NewCollection[*component.Pickup](),
		limits:      limits,
		log:         logger,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// AddEnemy registers e, evicting the oldest normal enemy when the cap is
// reached. Mini-bosses and bosses are never evicted.
func (ecs *ECS) AddEnemy(e *component.Enemy) *component.Enemy {
	if ecs.limits.Enemies > 0 && ecs.Enemies.LiveCount() >= ecs.limits.Enemies {
		if old, ok := ecs.Enemies.Oldest(func(o *component.Enemy) bool { return !o.Elite() }); ok {
			old.Dead = true
			ecs.log.Warn().Int64("evicted", int64(old.ID)).Str("kind", "enemy").Msg("capacity reached, evicting oldest")
		}
	}
	e.SetEntityID(ecs.NewEntity())
	ecs.Enemies.add(e)
	return e
}

// AddProjectile registers p, evicting the oldest projectile at the cap.
// Evicted projectiles skip their expiry hooks.
func (ecs *ECS) AddProjectile(p *component.Projectile) *component.Projectile {
	if ecs.limits.Projectiles > 0 && ecs.Projectiles.LiveCount() >= ecs.limits.Projectiles {
		if old, ok := ecs.Projectiles.Oldest(nil); ok {
			old.Expired = true
			ecs.log.Warn().Int64("evicted", int64(old.ID)).Str("kind", "projectile").Msg("capacity reached, evicting oldest")
		}
	}
	p.SetEntityID(ecs.NewEntity())
	ecs.Projectiles.add(p)
	return p
}

// AddPickup registers p, evicting the oldest pickup at the cap. Portals are kept.
func (ecs *ECS) AddPickup(p *component.Pickup) *component.Pickup {
	if ecs.limits.Pickups > 0 && ecs.Pickups.LiveCount() >= ecs.limits.Pickups {
		if old, ok := ecs.Pickups.Oldest(func(o *component.Pickup) bool { return o.Kind != component.PickupPortal }); ok {
			old.Collected = true
			ecs.log.Warn().Int64("evicted", int64(old.ID)).Str("kind", "pickup").Msg("capacity reached, evicting oldest")
		}
	}
	p.SetEntityID(ecs.NewEntity())
	ecs.Pickups.add(p)
	return p
}

// Weapon looks up an equipped weapon instance.
func (ecs *ECS) Weapon(id types.EntityID) (*component.Weapon, bool) {
	for _, w := range ecs.Weapons {
		if w.ID == id {
			return w, true
		}
	}
	return nil, false
}

// PlayerAlive reports whether a live player exists.
func (ecs *ECS) PlayerAlive() bool {
	return ecs.Player != nil && !ecs.Player.Dead
}

// Prune removes every entity flagged dead, expired or collected.
func (ecs *ECS) Prune() {
	ecs.Enemies.Prune()
	ecs.Projectiles.Prune()
	ecs.Pickups.Prune()
}

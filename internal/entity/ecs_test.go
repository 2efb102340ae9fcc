package entity

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/trouvaiilx/arcane-survivors/internal/component"
	"github.com/trouvaiilx/arcane-survivors/internal/defs"
	"github.com/trouvaiilx/arcane-survivors/pkg/geom"
)

func newTestECS(l Limits) *ECS {
	return NewECS(l, zerolog.Nop())
}

func TestAddEnemyEvictsOldestNormal(t *testing.T) {
	ecs := newTestECS(Limits{Enemies: 3})
	boss := ecs.AddEnemy(&component.Enemy{Tier: defs.TierBoss})
	first := ecs.AddEnemy(&component.Enemy{})
	second := ecs.AddEnemy(&component.Enemy{})

	third := ecs.AddEnemy(&component.Enemy{})

	if boss.Dead {
		t.Error("boss was evicted")
	}
	if !first.Dead {
		t.Error("oldest normal enemy should have been evicted")
	}
	if second.Dead || third.Dead {
		t.Error("newer enemies should survive")
	}
	if got := ecs.Enemies.LiveCount(); got != 3 {
		t.Errorf("LiveCount = %d, want 3", got)
	}
}

func TestAddEnemyAllElitesExceedsCap(t *testing.T) {
	ecs := newTestECS(Limits{Enemies: 1})
	ecs.AddEnemy(&component.Enemy{Tier: defs.TierMiniBoss})
	ecs.AddEnemy(&component.Enemy{Tier: defs.TierBoss})
	if got := ecs.Enemies.LiveCount(); got != 2 {
		t.Errorf("LiveCount = %d, want 2 since elites are never evicted", got)
	}
}

func TestAddPickupKeepsPortal(t *testing.T) {
	ecs := newTestECS(Limits{Pickups: 2})
	portal := ecs.AddPickup(&component.Pickup{Kind: component.PickupPortal})
	gem := ecs.AddPickup(&component.Pickup{Kind: component.PickupXP})
	ecs.AddPickup(&component.Pickup{Kind: component.PickupCoin})

	if portal.Collected {
		t.Error("portal was evicted")
	}
	if !gem.Collected {
		t.Error("oldest non-portal pickup should have been evicted")
	}
}

func TestAddProjectileEvictsOldest(t *testing.T) {
	ecs := newTestECS(Limits{Projectiles: 2})
	a := ecs.AddProjectile(&component.Projectile{})
	ecs.AddProjectile(&component.Projectile{})
	ecs.AddProjectile(&component.Projectile{})
	if !a.Expired {
		t.Error("oldest projectile should have been evicted")
	}
	if got := ecs.Projectiles.LiveCount(); got != 2 {
		t.Errorf("LiveCount = %d, want 2", got)
	}
}

func TestIDsAreUniqueAndIncreasing(t *testing.T) {
	ecs := newTestECS(DefaultLimits())
	a := ecs.AddEnemy(&component.Enemy{})
	b := ecs.AddPickup(&component.Pickup{})
	c := ecs.AddProjectile(&component.Projectile{})
	if !(a.ID < b.ID && b.ID < c.ID) || a.ID == 0 {
		t.Errorf("ids not increasing: %d %d %d", a.ID, b.ID, c.ID)
	}
}

func TestPruneKeepsOrderAndIndex(t *testing.T) {
	ecs := newTestECS(DefaultLimits())
	a := ecs.AddEnemy(&component.Enemy{})
	b := ecs.AddEnemy(&component.Enemy{})
	c := ecs.AddEnemy(&component.Enemy{})
	b.Dead = true

	ecs.Prune()

	all := ecs.Enemies.All()
	if len(all) != 2 || all[0] != a || all[1] != c {
		t.Fatalf("unexpected survivors after prune: %v", all)
	}
	if _, ok := ecs.Enemies.Get(b.ID); ok {
		t.Error("pruned enemy still indexed")
	}
	if got, ok := ecs.Enemies.Get(c.ID); !ok || got != c {
		t.Error("survivor lost from index")
	}
}

func TestBodyRecover(t *testing.T) {
	var b component.Body
	b.Place(geom.V(4, 5))
	b.Pos = geom.V(0, 0).Scale(0).Add(geom.V(nan(), 1))
	if !b.Recover() {
		t.Fatal("Recover should report a non-finite position")
	}
	if b.Pos != geom.V(4, 5) {
		t.Errorf("Pos = %v, want last good (4, 5)", b.Pos)
	}
}

func nan() float64 {
	zero := 0.0
	return zero / zero
}

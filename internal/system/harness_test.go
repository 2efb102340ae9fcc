package system

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/trouvaiilx/arcane-survivors/internal/component"
	"github.com/trouvaiilx/arcane-survivors/internal/config"
	"github.com/trouvaiilx/arcane-survivors/internal/defs"
	"github.com/trouvaiilx/arcane-survivors/internal/entity"
	"github.com/trouvaiilx/arcane-survivors/internal/event"
	"github.com/trouvaiilx/arcane-survivors/internal/spatial"
	"github.com/trouvaiilx/arcane-survivors/internal/types"
	"github.com/trouvaiilx/arcane-survivors/pkg/geom"
)

const tick = 1.0 / 60

// seqRNG replays a fixed sequence of floats and always picks index 0.
type seqRNG struct {
	floats []float64
	i      int
}

func (r *seqRNG) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[r.i%len(r.floats)]
	r.i++
	return v
}

func (r *seqRNG) Intn(int) int { return 0 }

type testClock struct {
	elapsed float64
	mult    float64
	tier    int
}

func (c *testClock) DifficultyMultiplier() float64 { return c.mult }
func (c *testClock) ElapsedMs() float64            { return c.elapsed * 1000 }
func (c *testClock) Tier() int                     { return c.tier }
func (c *testClock) Escalate() int {
	c.tier++
	return c.tier
}

type world struct {
	ecs       *entity.ECS
	svc       *Services
	rng       *seqRNG
	catalog   *defs.Catalog
	cfg       config.SimConfig
	grid      *spatial.Grid[*component.Enemy]
	clock     *testClock
	scheduler *Scheduler

	enemies     *EnemySystem
	effects     *EffectRunner
	player      *PlayerSystem
	weapons     *WeaponSystem
	upgrades    *UpgradeSystem
	pickups     *PickupSystem
	projectiles *ProjectileSystem
	collisions  *CollisionSystem
}

func newWorld(t *testing.T, catalog *defs.Catalog) *world {
	t.Helper()
	if catalog == nil {
		catalog = defs.MustDefaultCatalog()
	}
	w := &world{
		rng:     &seqRNG{floats: []float64{0.5}},
		catalog: catalog,
		cfg:     config.DefaultSimConfig(),
		grid:    spatial.NewGrid[*component.Enemy](config.SpatialCellSize),
		clock:   &testClock{mult: 1},
	}
	w.svc = Services{RNG: w.rng, Events: event.NewDispatcher(), Log: zerolog.Nop()}.WithDefaults()
	w.ecs = entity.NewECS(entity.DefaultLimits(), zerolog.Nop())
	w.scheduler = NewScheduler(func(id types.EntityID) bool {
		_, ok := w.ecs.Weapon(id)
		return ok && w.ecs.PlayerAlive()
	})
	w.enemies = NewEnemySystem(w.ecs, w.svc, catalog, w.cfg, w.clock)
	w.effects = NewEffectRunner(w.ecs, w.svc, w.grid, w.enemies)
	w.player = NewPlayerSystem(w.ecs, w.svc, catalog, w.cfg)
	w.weapons = NewWeaponSystem(w.ecs, w.svc, catalog, w.grid, w.scheduler, w.enemies, w.effects)
	w.upgrades = NewUpgradeSystem(w.ecs, w.svc, catalog, w.cfg, w.player, w.weapons)
	w.pickups = NewPickupSystem(w.ecs, w.svc, w.cfg, w.player, w.upgrades)
	w.projectiles = NewProjectileSystem(w.ecs, w.svc, w.effects)
	w.collisions = NewCollisionSystem(w.ecs, w.grid, w.enemies, w.player, w.pickups, w.effects)
	w.player.NewPlayer(nil, nil)
	return w
}

func (w *world) rebuild() { w.grid.Rebuild(w.ecs.Enemies.All()) }

// dummy registers a stationary enemy with plenty of health.
func (w *world) dummy(pos geom.Vec2, hp float64) *component.Enemy {
	e := &component.Enemy{HP: hp, MaxHP: hp}
	e.Radius = 10
	e.Place(pos)
	return w.ecs.AddEnemy(e)
}

// away is a point well clear of the player at the world center.
func (w *world) away(dx, dy float64) geom.Vec2 {
	return w.ecs.Player.Pos.Add(geom.V(dx, dy))
}

// singleWeaponCatalog builds a catalog around one weapon definition.
func singleWeaponCatalog(t *testing.T, weapon defs.WeaponDefinition) *defs.Catalog {
	t.Helper()
	c := &defs.Catalog{Weapons: []defs.WeaponDefinition{weapon}, GemValues: []float64{5, 1}}
	if err := c.Build(); err != nil {
		t.Fatalf("Build: %v", err)
	}
	return c
}

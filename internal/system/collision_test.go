package system

import (
	"testing"

	"github.com/trouvaiilx/arcane-survivors/internal/component"
	"github.com/trouvaiilx/arcane-survivors/internal/types"
	"github.com/trouvaiilx/arcane-survivors/pkg/geom"
)

func TestProjectileHitExhaustsPierce(t *testing.T) {
	w := newWorld(t, nil)
	pos := w.away(300, 0)
	e := w.dummy(pos, 50)
	p := w.ecs.AddProjectile(component.NewProjectile(component.ProjectileSpec{
		Pos: pos, Damage: 20, PierceLimit: 1, Duration: 5,
	}))
	w.rebuild()

	w.collisions.ResolveProjectileHits(tick)

	if e.HP != 30 {
		t.Errorf("enemy hp = %v, want 30", e.HP)
	}
	if !p.Expired {
		t.Fatal("projectile should expire once its pierce is spent")
	}
	w.ecs.Prune()
	if _, ok := w.ecs.Projectiles.Get(p.ID); ok {
		t.Error("expired projectile still registered after prune")
	}
}

func TestPierceLimitBoundsDistinctHits(t *testing.T) {
	for _, limit := range []int{1, 2, 3, 7} {
		w := newWorld(t, nil)
		center := w.away(300, 300)
		var pack []*component.Enemy
		for i := range 10 {
			pack = append(pack, w.dummy(center.Add(geom.V(float64(i%3), float64(i/3))), 100))
		}
		p := w.ecs.AddProjectile(component.NewProjectile(component.ProjectileSpec{
			Pos: center, Radius: 30, Damage: 1, PierceLimit: limit, Duration: 5,
		}))
		w.rebuild()

		for range 5 {
			w.collisions.ResolveProjectileHits(tick)
		}

		hit := 0
		for _, e := range pack {
			if e.HP < 100 {
				hit++
			}
		}
		if hit != limit {
			t.Errorf("limit %d: %d enemies damaged", limit, hit)
		}
		if !p.Expired {
			t.Errorf("limit %d: projectile not expired", limit)
		}
	}
}

func TestUnlimitedPierceHitsEveryOverlap(t *testing.T) {
	w := newWorld(t, nil)
	center := w.away(-300, 0)
	for i := range 12 {
		w.dummy(center.Add(geom.V(float64(i), 0)), 100)
	}
	p := w.ecs.AddProjectile(component.NewProjectile(component.ProjectileSpec{
		Pos: center, Radius: 30, Damage: 1, Duration: 5,
	}))
	w.rebuild()

	w.collisions.ResolveProjectileHits(tick)

	if p.Pierce != 12 || p.Expired {
		t.Errorf("pierce = %d expired = %v, want 12 and alive", p.Pierce, p.Expired)
	}
}

func TestProjectileDoesNotRehitSameEnemy(t *testing.T) {
	w := newWorld(t, nil)
	pos := w.away(0, 300)
	e := w.dummy(pos, 100)
	w.ecs.AddProjectile(component.NewProjectile(component.ProjectileSpec{
		Pos: pos, Damage: 10, Duration: 5,
	}))
	w.rebuild()

	for range 10 {
		w.collisions.ResolveProjectileHits(tick)
	}
	if e.HP != 90 {
		t.Errorf("hp = %v, want a single hit", e.HP)
	}
}

func TestGroundProjectileHitsOnlyAfterLanding(t *testing.T) {
	w := newWorld(t, nil)
	pos := w.away(200, 0)
	e := w.dummy(pos, 100)
	p := w.ecs.AddProjectile(component.NewProjectile(component.ProjectileSpec{
		Pos: pos, Damage: 10, Duration: 5, Pattern: component.MoveGroundSeek, Target: w.away(400, 0), Speed: 100,
	}))
	w.rebuild()

	w.collisions.ResolveProjectileHits(tick)
	if e.HP != 100 {
		t.Fatal("airborne flask dealt damage")
	}
	p.Landed = true
	w.collisions.ResolveProjectileHits(tick)
	if e.HP != 90 {
		t.Errorf("hp = %v, want 90 after landing", e.HP)
	}
}

func TestTickingProjectileRehitsOnInterval(t *testing.T) {
	w := newWorld(t, nil)
	pos := w.away(200, 200)
	e := w.dummy(pos, 100)
	w.ecs.AddProjectile(component.NewProjectile(component.ProjectileSpec{
		Pos: pos, Damage: 5, Duration: 10, TickInterval: 0.5,
	}))
	w.rebuild()

	for range 4 {
		w.collisions.ResolveProjectileHits(0.25)
	}
	if e.HP != 90 {
		t.Errorf("hp = %v, want two ticks of damage", e.HP)
	}
}

func TestBeamDamagesOncePerActivation(t *testing.T) {
	w := newWorld(t, nil)
	if _, err := w.weapons.Equip("frost_beam"); err != nil {
		t.Fatal(err)
	}
	e := w.dummy(w.away(200, 0), 1e6)

	beamSeen := false
	for range 90 {
		w.rebuild()
		w.weapons.Update(tick)
		if w.ecs.Weapons[0].Beam != nil {
			beamSeen = true
		}
		w.collisions.Update(tick)
	}

	if !beamSeen {
		t.Fatal("beam never activated")
	}
	want := w.ecs.Weapons[0].Stats.Damage
	if got := e.MaxHP - e.HP; got != want {
		t.Errorf("damage taken = %v, want exactly one hit of %v", got, want)
	}
}

func TestBeamHitsOnlyAlongItsSegment(t *testing.T) {
	w := newWorld(t, nil)
	behind := w.dummy(w.away(-100, 0), 100)
	ahead := w.dummy(w.away(150, 4), 100)
	aside := w.dummy(w.away(150, 60), 100)
	beyond := w.dummy(w.away(600, 0), 100)
	w.ecs.Weapons = append(w.ecs.Weapons, &component.Weapon{
		ID: w.ecs.NewEntity(),
		Beam: &component.BeamState{
			Dir: geom.V(1, 0), Length: 400, HalfWidth: 8, Remaining: 1, Damage: 10,
			HitSet: make(map[types.EntityID]struct{}),
		},
	})
	w.rebuild()

	w.collisions.ResolvePersistentHits()

	if ahead.HP != 90 {
		t.Errorf("enemy on the beam hp = %v, want 90", ahead.HP)
	}
	for name, e := range map[string]*component.Enemy{"behind": behind, "aside": aside, "beyond": beyond} {
		if e.HP != 100 {
			t.Errorf("%s enemy was hit", name)
		}
	}
}

func TestOrbitHitGatedPerTarget(t *testing.T) {
	w := newWorld(t, nil)
	orb, err := w.weapons.Equip("guardian_orbs")
	if err != nil {
		t.Fatal(err)
	}
	w.weapons.Update(tick)
	if orb.Orbit == nil || !orb.Orbit.Active() {
		t.Fatal("orbit did not activate")
	}
	center := orb.Orbit.Positions(w.ecs.Player.Pos)[0]
	e := w.dummy(center, 1e6)
	w.rebuild()

	w.collisions.ResolvePersistentHits()
	w.collisions.ResolvePersistentHits()

	if got := e.MaxHP - e.HP; got != orb.Stats.Damage {
		t.Errorf("damage = %v, want one gated hit of %v", got, orb.Stats.Damage)
	}
}

func TestPlayerContactRespectsInvincibility(t *testing.T) {
	w := newWorld(t, nil)
	pl := w.ecs.Player
	e := w.dummy(pl.Pos, 100)
	e.Damage = 10
	w.rebuild()

	w.collisions.ResolvePlayerContact()
	w.collisions.ResolvePlayerContact()

	if got := pl.MaxHP - pl.HP; got != 10 {
		t.Errorf("player took %v, want 10", got)
	}
}

func TestOnHitSplashSparesStruckEnemy(t *testing.T) {
	w := newWorld(t, nil)
	pos := w.away(300, 0)
	struck := w.dummy(pos, 100)
	bystander := w.dummy(pos.Add(geom.V(40, 0)), 100)
	far := w.dummy(pos.Add(geom.V(0, 120)), 100)
	p := w.ecs.AddProjectile(component.NewProjectile(component.ProjectileSpec{
		Pos: pos, Radius: 5, Damage: 20, PierceLimit: 3, Duration: 5,
		OnHit: []component.Hook{{Kind: component.HookSplash, Radius: 40, Fraction: 0.5}},
	}))
	w.rebuild()

	w.collisions.ResolveProjectileHits(tick)

	if struck.HP != 80 {
		t.Errorf("struck hp = %v, want 80 from the direct hit only", struck.HP)
	}
	if bystander.HP != 90 {
		t.Errorf("bystander hp = %v, want 90 from the splash", bystander.HP)
	}
	if far.HP != 100 {
		t.Errorf("enemy outside the splash took damage: hp %v", far.HP)
	}
	if p.Expired || p.Pierce != 1 {
		t.Errorf("splash counted against pierce: pierce %d expired %v", p.Pierce, p.Expired)
	}
}

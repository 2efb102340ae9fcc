package system

import (
	"errors"
	"math"
	"testing"

	"github.com/trouvaiilx/arcane-survivors/internal/component"
	"github.com/trouvaiilx/arcane-survivors/internal/config"
	"github.com/trouvaiilx/arcane-survivors/internal/defs"
	"github.com/trouvaiilx/arcane-survivors/internal/types"
	"github.com/trouvaiilx/arcane-survivors/pkg/geom"
)

func TestRecalculateFoldsUpgradesBeforeOwnerMultiplier(t *testing.T) {
	def := &defs.WeaponDefinition{
		ID: "wand", Pattern: defs.PatternDirect, MaxLevel: 2,
		Base:     defs.StatBlock{Damage: 10, Cooldown: 1, Projectiles: 1},
		Upgrades: []defs.StatBlock{{Damage: 5}},
	}
	owner := component.DefaultStats()
	owner.Damage = 1.5

	if got := RecalculateStats(def, 1, owner).Damage; got != 15 {
		t.Errorf("level 1 damage = %v, want 15", got)
	}
	if got := RecalculateStats(def, 2, owner).Damage; got != (10+5)*1.5 {
		t.Errorf("level 2 damage = %v, want %v", got, (10+5)*1.5)
	}
}

func TestRecalculateIsPure(t *testing.T) {
	catalog := defs.MustDefaultCatalog()
	owner := component.DefaultStats()
	owner.Damage, owner.Cooldown, owner.Area, owner.ProjectileBonus = 1.3, 0.7, 1.2, 1
	for i := range catalog.Weapons {
		def := &catalog.Weapons[i]
		for level := 1; level <= def.MaxLevel; level++ {
			a := RecalculateStats(def, level, owner)
			b := RecalculateStats(def, level, owner)
			if a != b {
				t.Fatalf("%s level %d: %+v != %+v", def.ID, level, a, b)
			}
		}
	}
}

func TestLevelRoundTripRestoresStats(t *testing.T) {
	w := newWorld(t, nil)
	weapon, err := w.weapons.Equip("magic_bolt")
	if err != nil {
		t.Fatal(err)
	}
	for level := 1; level < weapon.Def.MaxLevel; level++ {
		w.weapons.SetLevel(weapon, level)
		before := weapon.Stats
		if !w.weapons.LevelUp(weapon) {
			t.Fatalf("LevelUp failed at %d", level)
		}
		w.weapons.SetLevel(weapon, level)
		if weapon.Stats != before {
			t.Fatalf("level %d: stats drifted from %+v to %+v", level, before, weapon.Stats)
		}
	}
	w.weapons.SetLevel(weapon, weapon.Def.MaxLevel)
	if w.weapons.LevelUp(weapon) {
		t.Error("LevelUp past max level succeeded")
	}
}

func TestCooldownNeverBelowFloor(t *testing.T) {
	def := &defs.WeaponDefinition{
		ID: "gatling", Pattern: defs.PatternDirect, MaxLevel: 6,
		Base:     defs.StatBlock{Damage: 1, Cooldown: 0.5, Projectiles: 1},
		Upgrades: []defs.StatBlock{{Cooldown: 0.1}, {Cooldown: 0.1}, {Cooldown: 0.1}, {Cooldown: 0.1}, {Cooldown: 0.1}},
	}
	for _, mult := range []float64{1, 0.5, 0.1, 0, -1, math.NaN()} {
		owner := component.DefaultStats()
		owner.Cooldown = mult
		for level := 1; level <= def.MaxLevel; level++ {
			if cd := RecalculateStats(def, level, owner).Cooldown; !(cd >= config.MinWeaponCooldown) {
				t.Errorf("owner cooldown %v level %d: cooldown %v below floor", mult, level, cd)
			}
		}
	}
}

func TestChainNeverRevisitsWithinActivation(t *testing.T) {
	w := newWorld(t, nil)
	weapon, err := w.weapons.Equip("chain_lightning")
	if err != nil {
		t.Fatal(err)
	}
	weapon.Stats.Projectiles = 25
	origin := w.away(100, 0)
	var pack []*component.Enemy
	for i := range 30 {
		pack = append(pack, w.dummy(origin.Add(geom.V(float64(i%6)*10, float64(i/6)*10)), 1e6))
	}
	w.rebuild()

	order := w.weapons.ChainFrom(weapon, w.ecs.Player.Pos)

	hops := 25 + weapon.Def.Params.ChainHops
	if len(order) != min(hops, len(pack)) {
		t.Fatalf("chain made %d hops, want %d", len(order), min(hops, len(pack)))
	}
	seen := make(map[types.EntityID]bool)
	for _, id := range order {
		if seen[id] {
			t.Fatalf("enemy %d hit twice in one activation", id)
		}
		seen[id] = true
	}
	damaged := 0
	for _, e := range pack {
		if e.HP < e.MaxHP {
			damaged++
		}
	}
	if damaged != len(order) {
		t.Errorf("%d enemies damaged for %d hops", damaged, len(order))
	}
}

func TestChainDamageFallsOff(t *testing.T) {
	w := newWorld(t, nil)
	weapon, err := w.weapons.Equip("chain_lightning")
	if err != nil {
		t.Fatal(err)
	}
	falloff := weapon.Def.Params.ChainFalloff
	if falloff <= 0 || falloff >= 1 {
		t.Skip("catalog chain has no falloff")
	}
	first := w.dummy(w.away(50, 0), 1e6)
	second := w.dummy(w.away(100, 0), 1e6)
	w.rebuild()

	w.weapons.ChainFrom(weapon, w.ecs.Player.Pos)

	d1, d2 := first.MaxHP-first.HP, second.MaxHP-second.HP
	if math.Abs(d2-d1*falloff) > 1e-6 {
		t.Errorf("second hop dealt %v, want %v", d2, d1*falloff)
	}
}

func TestStaggeredShotsAbandonedAfterUnequip(t *testing.T) {
	w := newWorld(t, nil)
	weapon, err := w.weapons.Equip("magic_bolt")
	if err != nil {
		t.Fatal(err)
	}
	w.ecs.Player.Stats.ProjectileBonus = 2
	w.weapons.Update(tick)

	if got := w.ecs.Projectiles.Len(); got != 1 {
		t.Fatalf("%d projectiles spawned immediately, want 1", got)
	}
	if w.scheduler.Len() != 2 {
		t.Fatalf("%d shots queued, want 2", w.scheduler.Len())
	}
	w.weapons.Unequip(weapon.ID)
	ran, abandoned := w.scheduler.RunDue(10)
	if ran != 0 || abandoned != 2 {
		t.Errorf("RunDue = (%d, %d), want (0, 2)", ran, abandoned)
	}
	if got := w.ecs.Projectiles.Len(); got != 1 {
		t.Errorf("abandoned shots still spawned: %d projectiles", got)
	}
}

func TestStaggeredShotsFireFromCurrentPosition(t *testing.T) {
	w := newWorld(t, nil)
	if _, err := w.weapons.Equip("magic_bolt"); err != nil {
		t.Fatal(err)
	}
	w.ecs.Player.Stats.ProjectileBonus = 1
	w.weapons.Update(tick)
	moved := w.away(40, 0)
	w.ecs.Player.Pos = moved
	w.scheduler.RunDue(10)

	all := w.ecs.Projectiles.All()
	if len(all) != 2 {
		t.Fatalf("got %d projectiles, want 2", len(all))
	}
	if all[1].Pos != moved {
		t.Errorf("delayed shot spawned at %v, want %v", all[1].Pos, moved)
	}
}

func TestWeaponFiresOnCooldown(t *testing.T) {
	w := newWorld(t, nil)
	weapon, err := w.weapons.Equip("nova_ring")
	if err != nil {
		t.Fatal(err)
	}
	steps := int(math.Ceil(weapon.Stats.Cooldown/tick)) + 2
	for range steps {
		w.weapons.Update(tick)
	}
	want := 2 * weapon.Stats.Projectiles
	if got := w.ecs.Projectiles.Len(); got != want {
		t.Errorf("got %d projectiles after one cooldown, want %d", got, want)
	}
}

func TestRingSpreadsEvenly(t *testing.T) {
	w := newWorld(t, nil)
	weapon, err := w.weapons.Equip("nova_ring")
	if err != nil {
		t.Fatal(err)
	}
	RingPattern{}.Fire(w.weapons, weapon)

	all := w.ecs.Projectiles.All()
	n := weapon.Stats.Projectiles
	if len(all) != n {
		t.Fatalf("got %d projectiles, want %d", len(all), n)
	}
	sum := geom.Vec2{}
	for _, p := range all {
		sum = sum.Add(p.Dir)
	}
	if sum.Len() > 1e-9 {
		t.Errorf("ring directions do not cancel out: %v", sum)
	}
}

func TestDirectAimsAtNearestEnemy(t *testing.T) {
	w := newWorld(t, nil)
	weapon, err := w.weapons.Equip("magic_bolt")
	if err != nil {
		t.Fatal(err)
	}
	w.dummy(w.away(0, 200), 100)
	w.dummy(w.away(0, -400), 100)
	w.rebuild()

	if got := w.weapons.AimDirection(weapon); got != geom.V(0, 1) {
		t.Errorf("aim = %v, want (0, 1)", got)
	}
}

func TestAimFallsBackToFacing(t *testing.T) {
	w := newWorld(t, nil)
	weapon, err := w.weapons.Equip("magic_bolt")
	if err != nil {
		t.Fatal(err)
	}
	w.ecs.Player.Facing = geom.V(0, -1)
	w.rebuild()
	if got := w.weapons.AimDirection(weapon); got != geom.V(0, -1) {
		t.Errorf("aim = %v, want facing", got)
	}
}

func TestOrbitExpiresAfterDuration(t *testing.T) {
	w := newWorld(t, nil)
	weapon, err := w.weapons.Equip("guardian_orbs")
	if err != nil {
		t.Fatal(err)
	}
	w.weapons.Update(tick)
	if weapon.Orbit == nil || !weapon.Orbit.Active() {
		t.Fatal("orbit not active after firing")
	}
	if got := len(weapon.Orbit.Positions(w.ecs.Player.Pos)); got != weapon.Stats.Projectiles {
		t.Errorf("%d orbs, want %d", got, weapon.Stats.Projectiles)
	}
	for range int(weapon.Stats.Duration/tick) + 2 {
		OrbitPattern{}.Tick(w.weapons, weapon, tick)
	}
	if weapon.Orbit.Active() {
		t.Error("orbit still active after its duration")
	}
}

func TestSweepHitboxesShareHitSet(t *testing.T) {
	w := newWorld(t, nil)
	weapon, err := w.weapons.Equip("arcane_sweep")
	if err != nil {
		t.Fatal(err)
	}
	SweepPattern{}.Fire(w.weapons, weapon)
	w.scheduler.RunDue(10)

	all := w.ecs.Projectiles.All()
	if len(all) < 2 {
		t.Fatalf("sweep spawned %d hitboxes", len(all))
	}
	all[0].HitSet[999] = struct{}{}
	for _, p := range all {
		if !p.Invisible || !p.HasHit(999) {
			t.Fatal("sweep hitboxes do not share one hit-set")
		}
	}
	if weapon.SweepSign != -1 {
		t.Errorf("sweep direction not alternated: %v", weapon.SweepSign)
	}
}

func TestPoolTargetsEnemiesAndLands(t *testing.T) {
	w := newWorld(t, nil)
	weapon, err := w.weapons.Equip("acid_flask")
	if err != nil {
		t.Fatal(err)
	}
	target := w.away(150, 0)
	w.dummy(target, 100)
	w.rebuild()

	PoolPattern{}.Fire(w.weapons, weapon)

	all := w.ecs.Projectiles.All()
	if len(all) != weapon.Stats.Projectiles {
		t.Fatalf("got %d flasks", len(all))
	}
	p := all[0]
	if p.Target != target || !p.Ground() {
		t.Fatalf("flask target %v ground=%v", p.Target, p.Ground())
	}
	for range 120 {
		w.projectiles.Update(tick)
	}
	if !p.Landed || p.Pos != target {
		t.Errorf("flask landed=%v at %v", p.Landed, p.Pos)
	}
}

func TestStrikeHitsWithoutProjectiles(t *testing.T) {
	w := newWorld(t, nil)
	weapon, err := w.weapons.Equip("thunder_strike")
	if err != nil {
		t.Fatal(err)
	}
	e := w.dummy(w.away(100, 0), 1e6)
	w.rebuild()

	StrikePattern{}.Fire(w.weapons, weapon)
	w.scheduler.RunDue(10)

	if e.HP == e.MaxHP {
		t.Error("strike dealt no damage")
	}
	if w.ecs.Projectiles.Len() != 0 {
		t.Error("strike spawned projectiles")
	}
}

func TestEquipErrors(t *testing.T) {
	w := newWorld(t, nil)
	if _, err := w.weapons.Equip("nope"); !errors.Is(err, ErrUnknownWeapon) {
		t.Errorf("unknown weapon: %v", err)
	}
	if _, err := w.weapons.Equip("magic_bolt"); err != nil {
		t.Fatal(err)
	}
	if _, err := w.weapons.Equip("magic_bolt"); !errors.Is(err, ErrAlreadyEquipped) {
		t.Errorf("duplicate weapon: %v", err)
	}
	for _, def := range w.catalog.Weapons {
		if len(w.ecs.Weapons) >= config.MaxWeapons {
			break
		}
		w.weapons.Equip(def.ID)
	}
	if _, err := w.weapons.Equip("bouncing_orb"); err == nil {
		t.Error("equipped past the slot limit")
	}
}

func TestWeaponsIdleWhilePlayerDead(t *testing.T) {
	w := newWorld(t, nil)
	if _, err := w.weapons.Equip("magic_bolt"); err != nil {
		t.Fatal(err)
	}
	w.ecs.Player.Dead = true
	w.weapons.Update(1)
	if w.ecs.Projectiles.Len() != 0 {
		t.Error("dead player fired")
	}
}

func TestBouncingShotsCarryImpactSplash(t *testing.T) {
	w := newWorld(t, nil)
	weapon, err := w.weapons.Equip("bouncing_orb")
	if err != nil {
		t.Fatal(err)
	}
	BouncePattern{}.Fire(w.weapons, weapon)

	all := w.ecs.Projectiles.All()
	if len(all) == 0 {
		t.Fatal("no projectile fired")
	}
	hooks := all[0].OnHit
	params := weapon.Def.Params
	if len(hooks) != 1 || hooks[0].Kind != component.HookSplash {
		t.Fatalf("on-hit hooks = %+v", hooks)
	}
	if hooks[0].Radius != params.SplashRadius*weapon.Stats.Area || hooks[0].Fraction != params.SplashFraction {
		t.Errorf("splash = %+v, want radius %v fraction %v", hooks[0], params.SplashRadius*weapon.Stats.Area, params.SplashFraction)
	}
}

func TestDirectShotsWithoutSplashHaveNoHitHooks(t *testing.T) {
	w := newWorld(t, nil)
	weapon, err := w.weapons.Equip("throwing_blade")
	if err != nil {
		t.Fatal(err)
	}
	DirectPattern{}.Fire(w.weapons, weapon)
	for _, p := range w.ecs.Projectiles.All() {
		if len(p.OnHit) != 0 {
			t.Errorf("unexpected on-hit hooks %+v", p.OnHit)
		}
	}
}

package system

import (
	"testing"

	"github.com/trouvaiilx/arcane-survivors/internal/component"
	"github.com/trouvaiilx/arcane-survivors/internal/defs"
	"github.com/trouvaiilx/arcane-survivors/internal/event"
)

func newWaveWorld(t *testing.T) (*world, *WaveSystem) {
	t.Helper()
	w := newWorld(t, nil)
	w.cfg.MiniBossInterval = 60
	w.cfg.BossTime = 120
	w.cfg.BossInterval = 300
	return w, NewWaveSystem(w.ecs, w.svc, w.catalog, w.cfg, w.enemies, w.clock)
}

func countTier(w *world, tier defs.Tier) int {
	n := 0
	for _, e := range w.ecs.Enemies.All() {
		if e.Tier == tier && !e.Dead {
			n++
		}
	}
	return n
}

func TestTriggersFireOnceWhenCrossedInOneStep(t *testing.T) {
	w, waves := newWaveWorld(t)
	w.clock.elapsed = 130

	waves.Update(130)
	waves.Update(tick)

	if got := countTier(w, defs.TierMiniBoss); got != 1 {
		t.Errorf("%d mini-bosses, want 1", got)
	}
	if got := countTier(w, defs.TierBoss); got != 1 {
		t.Errorf("%d bosses, want 1", got)
	}
	if waves.NextBossAt() != 0 {
		t.Errorf("next boss armed while one is alive: %v", waves.NextBossAt())
	}
}

func TestMiniBossesCycleOnSchedule(t *testing.T) {
	w, waves := newWaveWorld(t)
	for _, at := range []float64{59, 60, 61, 119, 120} {
		w.clock.elapsed = at
		waves.Update(tick)
	}
	if got := countTier(w, defs.TierMiniBoss); got != 2 {
		t.Errorf("%d mini-bosses after two intervals, want 2", got)
	}
}

func TestBossDefeatOpensPortalAndEscalates(t *testing.T) {
	w, waves := newWaveWorld(t)
	w.clock.elapsed = 125
	waves.Update(tick)
	var boss *component.Enemy
	for _, e := range w.ecs.Enemies.All() {
		if e.IsBoss() {
			boss = e
		}
	}
	if boss == nil {
		t.Fatal("boss not spawned")
	}

	w.enemies.Damage(boss, 1e9)

	if w.clock.tier != 1 {
		t.Errorf("tier = %d, want 1", w.clock.tier)
	}
	if got := waves.NextBossAt(); got != 125+w.cfg.BossInterval {
		t.Errorf("next boss at %v, want %v", got, 125+w.cfg.BossInterval)
	}
	portals := countPickups(w, component.PickupPortal)
	if len(portals) != 1 || portals[0].Pos != boss.Pos {
		t.Errorf("portals = %d, want one at the boss position", len(portals))
	}
}

func TestWaveIgnoresOtherEvents(t *testing.T) {
	w, waves := newWaveWorld(t)
	waves.OnEvent(event.Event{Type: event.EnemyKilled})
	if w.clock.tier != 0 || w.ecs.Pickups.Len() != 0 {
		t.Error("non-boss event escalated the run")
	}
}

func TestSpawnIntervalFloors(t *testing.T) {
	_, waves := newWaveWorld(t)
	if got := waves.SpawnInterval(0); got != waves.cfg.BaseSpawnInterval {
		t.Errorf("interval at 0 = %v", got)
	}
	if got := waves.SpawnInterval(3600); got != waves.cfg.MinSpawnInterval {
		t.Errorf("interval after an hour = %v, want floor", got)
	}
}

func TestSpawnRespectsEnemyCap(t *testing.T) {
	w, waves := newWaveWorld(t)
	w.cfg.MiniBossInterval = 0
	w.cfg.BossTime = 0
	waves = NewWaveSystem(w.ecs, w.svc, w.catalog, w.cfg, w.enemies, w.clock)
	waves.cfg.EnemyCap = 5
	for range 20 {
		waves.Update(10)
	}
	if got := w.ecs.Enemies.LiveCount(); got != 5 {
		t.Errorf("live enemies = %d, want cap of 5", got)
	}
}

// internal/system/wave.go
package system

import (
	"math"

	"github.com/trouvaiilx/arcane-survivors/internal/component"
	"github.com/trouvaiilx/arcane-survivors/internal/config"
	"github.com/trouvaiilx/arcane-survivors/internal/defs"
	"github.com/trouvaiilx/arcane-survivors/internal/entity"
	"github.com/trouvaiilx/arcane-survivors/internal/event"
	"github.com/trouvaiilx/arcane-survivors/internal/interfaces"
)

// PortalRadius is the contact radius of the victory portal.
const PortalRadius = 28.0

// TierEscalator is a difficulty source that can step up its tier.
type TierEscalator interface {
	interfaces.Difficulty
	Escalate() int
}

// WaveSystem drives time-gated world events: the spawn timer and the one-shot
// mini-boss and boss triggers. Triggers fire when elapsed time crosses their
// threshold, however large the step that crossed it.
type WaveSystem struct {
	ecs     *entity.ECS
	svc     *Services
	catalog *defs.Catalog
	cfg     config.SimConfig
	enemies *EnemySystem
	clock   TierEscalator

	spawnTimer    float64
	nextMiniBoss  float64
	miniBossIndex int
	nextBoss      float64 // 0 while a boss is alive
}

func NewWaveSystem(ecs *entity.ECS, svc *Services, catalog *defs.Catalog, cfg config.SimConfig,
	enemies *EnemySystem, clock TierEscalator) *WaveSystem {
	ws := &WaveSystem{
		ecs:          ecs,
		svc:          svc,
		catalog:      catalog,
		cfg:          cfg,
		enemies:      enemies,
		clock:        clock,
		nextMiniBoss: cfg.MiniBossInterval,
		nextBoss:     cfg.BossTime,
	}
	svc.Events.Subscribe(event.BossDefeated, ws)
	return ws
}

// SpawnInterval shrinks per elapsed minute down to the configured floor.
func (s *WaveSystem) SpawnInterval(elapsed float64) float64 {
	interval := s.cfg.BaseSpawnInterval * math.Pow(s.cfg.SpawnIntervalDecay, elapsed/60)
	return math.Max(interval, s.cfg.MinSpawnInterval)
}

// SpawnCount grows per elapsed minute and with difficulty.
func (s *WaveSystem) SpawnCount(elapsed float64) int {
	n := float64(s.cfg.BaseSpawnCount) + s.cfg.SpawnCountPerMinute*elapsed/60
	return max(1, int(n*math.Max(1, s.clock.DifficultyMultiplier()/2+0.5)))
}

func (s *WaveSystem) Update(deltaTime float64) {
	if !s.ecs.PlayerAlive() {
		return
	}
	elapsed := s.clock.ElapsedMs() / 1000

	s.spawnTimer -= deltaTime
	if s.spawnTimer <= 0 {
		s.spawnTimer = s.SpawnInterval(elapsed)
		if live := s.ecs.Enemies.LiveCount(); live < s.cfg.EnemyCap {
			s.enemies.SpawnWave(min(s.SpawnCount(elapsed), s.cfg.EnemyCap-live))
		}
	}

	if s.cfg.MiniBossInterval > 0 && len(s.catalog.Schedule.MiniBosses) > 0 && elapsed >= s.nextMiniBoss {
		id := s.catalog.Schedule.MiniBosses[s.miniBossIndex%len(s.catalog.Schedule.MiniBosses)]
		s.miniBossIndex++
		s.nextMiniBoss += s.cfg.MiniBossInterval
		if s.nextMiniBoss <= elapsed {
			s.nextMiniBoss = elapsed + s.cfg.MiniBossInterval
		}
		if e := s.enemies.SpawnByID(id, s.enemies.RingPosition()); e != nil {
			s.svc.Audio.Play(interfaces.SoundBoss)
			s.svc.Log.Info().Str("enemy", id).Float64("elapsed", elapsed).Msg("mini-boss spawned")
		}
	}

	if s.nextBoss > 0 && s.catalog.Schedule.Boss != "" && elapsed >= s.nextBoss {
		s.nextBoss = 0
		if e := s.enemies.SpawnByID(s.catalog.Schedule.Boss, s.enemies.RingPosition()); e != nil {
			s.svc.Audio.Play(interfaces.SoundBoss)
			s.svc.Log.Info().Str("enemy", e.DefID).Float64("elapsed", elapsed).Int("tier", s.clock.Tier()).Msg("boss spawned")
		}
	}
}

// OnEvent escalates the tier after a boss falls, opens the portal where it
// died and arms the next boss.
func (s *WaveSystem) OnEvent(e event.Event) {
	if e.Type != event.BossDefeated {
		return
	}
	data, _ := e.Data.(event.EnemyKilledData)
	tier := s.clock.Escalate()
	s.nextBoss = s.clock.ElapsedMs()/1000 + s.cfg.BossInterval
	s.ecs.AddPickup(NewPickup(component.PickupPortal, config.WorldBounds.Clamp(data.Pos), 1, PortalRadius))
	s.svc.Log.Info().Int("tier", tier).Msg("difficulty tier escalated, portal opened")
}

// NextBossAt reports when the next boss is due, or 0 while one is alive.
func (s *WaveSystem) NextBossAt() float64 { return s.nextBoss }

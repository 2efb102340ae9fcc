// internal/system/enemy.go
package system

import (
	"math"

	"github.com/trouvaiilx/arcane-survivors/internal/component"
	"github.com/trouvaiilx/arcane-survivors/internal/config"
	"github.com/trouvaiilx/arcane-survivors/internal/defs"
	"github.com/trouvaiilx/arcane-survivors/internal/entity"
	"github.com/trouvaiilx/arcane-survivors/internal/event"
	"github.com/trouvaiilx/arcane-survivors/internal/interfaces"
	"github.com/trouvaiilx/arcane-survivors/internal/utils"
	"github.com/trouvaiilx/arcane-survivors/pkg/geom"
	mathutil "github.com/trouvaiilx/arcane-survivors/pkg/utils"
)

// ErraticJitter is the magnitude of the random vector added to an erratic
// enemy's heading before renormalizing.
const ErraticJitter = 0.9

// Hit describes one application of damage to an enemy.
type Hit struct {
	Damage    float64
	Knockback float64   // force before resistance
	From      geom.Vec2 // knockback pushes away from this point
	Slow      *component.SlowSpec
}

// EnemySystem steers, damages and kills enemies.
type EnemySystem struct {
	ecs        *entity.ECS
	svc        *Services
	catalog    *defs.Catalog
	cfg        config.SimConfig
	difficulty interfaces.Difficulty

	Kills       int
	BossKills   int
	DamageDealt float64
}

func NewEnemySystem(ecs *entity.ECS, svc *Services, catalog *defs.Catalog, cfg config.SimConfig, difficulty interfaces.Difficulty) *EnemySystem {
	return &EnemySystem{
		ecs:        ecs,
		svc:        svc,
		catalog:    catalog,
		cfg:        cfg,
		difficulty: difficulty,
	}
}

// Spawn creates an enemy from its definition, scaled by difficulty and tier.
func (s *EnemySystem) Spawn(def *defs.EnemyDefinition, pos geom.Vec2) *component.Enemy {
	tier := float64(s.difficulty.Tier())
	hp := def.Health * s.difficulty.DifficultyMultiplier() * math.Pow(s.cfg.TierHealthMultiplier, tier)
	e := &component.Enemy{
		DefID:               def.ID,
		HP:                  hp,
		MaxHP:               hp,
		Damage:              def.Damage * math.Pow(s.cfg.TierDamageMultiplier, tier),
		Speed:               def.Speed,
		KnockbackResistance: mathutil.Clamp(def.KnockbackResistance, 0, 1),
		Erratic:             def.Erratic,
		Phasing:             def.Phasing,
		CanResurrect:        def.Resurrect,
		Tier:                def.Tier,
		XPValue:             def.XP,
		CoinValue:           def.Coins * math.Pow(s.cfg.TierGoldMultiplier, tier),
	}
	e.Radius = def.Radius
	e.Place(config.WorldBounds.Clamp(pos))
	return s.ecs.AddEnemy(e)
}

// SpawnByID spawns the catalog enemy id at pos. Unknown ids are logged and skipped.
func (s *EnemySystem) SpawnByID(id string, pos geom.Vec2) *component.Enemy {
	def, ok := s.catalog.Enemy(id)
	if !ok {
		s.svc.Log.Warn().Str("enemy", id).Msg("enemy definition not found")
		return nil
	}
	return s.Spawn(def, pos)
}

// RingPosition is a random point on the spawn ring around the player, clamped
// into the world.
func (s *EnemySystem) RingPosition() geom.Vec2 {
	center := geom.V(config.WorldWidth/2, config.WorldHeight/2)
	if s.ecs.Player != nil {
		center = s.ecs.Player.Pos
	}
	angle := s.svc.RNG.Float64() * 2 * math.Pi
	return config.WorldBounds.Clamp(center.Add(geom.FromAngle(angle).Scale(s.cfg.SpawnDistance)))
}

// SpawnWave spawns count enemies from the pool active at the current elapsed time.
func (s *EnemySystem) SpawnWave(count int) int {
	phase, ok := s.catalog.PhaseAt(s.difficulty.ElapsedMs() / 1000)
	if !ok || len(phase.Entries) == 0 {
		return 0
	}
	weights := make([]float64, len(phase.Entries))
	for i, entry := range phase.Entries {
		weights[i] = float64(entry.Weight)
	}
	spawned := 0
	for i := 0; i < count; i++ {
		entry := phase.Entries[utils.ChooseWeighted(s.svc.RNG, weights)]
		if s.SpawnByID(entry.EnemyID, s.RingPosition()) != nil {
			spawned++
		}
	}
	return spawned
}

func (s *EnemySystem) Update(deltaTime float64) {
	for _, e := range s.ecs.Enemies.All() {
		s.UpdateEnemy(e, deltaTime)
	}
}

// UpdateEnemy steers e toward the player and applies its knockback.
func (s *EnemySystem) UpdateEnemy(e *component.Enemy, deltaTime float64) {
	if e.Dead {
		return
	}
	if s.ecs.PlayerAlive() {
		dir := s.ecs.Player.Pos.Sub(e.Pos).Normalize()
		if e.Erratic {
			jitter := geom.V(utils.Range(s.svc.RNG, -1, 1), utils.Range(s.svc.RNG, -1, 1)).Scale(ErraticJitter)
			dir = dir.Add(jitter).Normalize()
		}
		e.Pos = e.Pos.Add(dir.Scale(e.EffectiveSpeed() * deltaTime))
	}
	e.Pos = e.Pos.Add(e.Knockback)
	e.Knockback = e.Knockback.Scale(config.KnockbackDecay)
	if e.Knockback.Len2() < 1e-6 {
		e.Knockback = geom.Vec2{}
	}
	if e.Settle(config.WorldBounds) {
		e.Knockback = geom.Vec2{}
		s.svc.Log.Warn().Int64("enemy", int64(e.ID)).Msg("non-finite enemy position, reverted")
	}
}

// Hit applies damage, knockback and status to e. It returns the damage dealt.
func (s *EnemySystem) Hit(e *component.Enemy, h Hit) float64 {
	if e.Dead {
		return 0
	}
	if h.Knockback > 0 && !e.Phasing {
		push := e.Pos.Sub(h.From).Normalize()
		e.Knockback = e.Knockback.Add(push.Scale(h.Knockback * (1 - e.KnockbackResistance)))
	}
	if h.Slow != nil {
		e.Slow.Apply(*h.Slow)
	}
	e.Flash = config.EnemyHitFlash
	s.svc.Audio.Play(interfaces.SoundHit)
	return s.Damage(e, h.Damage)
}

// Damage applies amount scaled by the player's curse and kills e at zero hp.
func (s *EnemySystem) Damage(e *component.Enemy, amount float64) float64 {
	if e.Dead || amount <= 0 || !mathutil.IsFinite(amount) {
		return 0
	}
	curse := 1.0
	if s.ecs.Player != nil {
		curse = s.ecs.Player.Stats.Curse
	}
	amount *= curse
	dealt := math.Min(amount, e.HP)
	e.HP -= amount
	s.DamageDealt += dealt
	if e.HP <= 0 {
		e.HP = 0
		s.Kill(e)
	}
	return dealt
}

// Kill resolves death. Enemies that can resurrect come back once at half hp.
func (s *EnemySystem) Kill(e *component.Enemy) {
	if e.Dead {
		return
	}
	if e.CanResurrect && !e.Resurrected {
		e.Resurrected = true
		e.HP = e.MaxHP / 2
		e.Knockback = geom.Vec2{}
		s.svc.Particles.SpawnEffect(e.Pos.X, e.Pos.Y, config.BossColor, 12)
		return
	}
	e.Dead = true
	s.Kills++
	s.svc.Audio.Play(interfaces.SoundDeath)
	s.svc.Particles.SpawnEffect(e.Pos.X, e.Pos.Y, config.EnemyColor, 8)
	s.svc.Persistence.RecordKill(e.DefID)
	data := event.EnemyKilledData{ID: e.ID, DefID: e.DefID, Tier: e.Tier, Pos: e.Pos}
	if e.Elite() {
		s.BossKills++
		s.svc.Persistence.RecordBossKill(e.DefID)
	}
	s.DropXP(e.Pos, e.XPValue)
	s.rollDrops(e)
	s.svc.Events.Dispatch(event.Event{Type: event.EnemyKilled, Data: data})
	if e.IsBoss() {
		s.svc.Log.Info().Str("boss", e.DefID).Msg("boss defeated")
		s.svc.Events.Dispatch(event.Event{Type: event.BossDefeated, Data: data})
	}
}

// DropXP splits xp into gems greedily by the catalog denominations, largest
// first. A remainder smaller than every denomination becomes one last gem.
func (s *EnemySystem) DropXP(pos geom.Vec2, xp float64) []*component.Pickup {
	var gems []*component.Pickup
	remaining := xp
	for _, value := range s.catalog.GemValues {
		for remaining >= value {
			gems = append(gems, s.dropGem(pos, value, len(gems)))
			remaining -= value
		}
	}
	if remaining > 1e-9 {
		gems = append(gems, s.dropGem(pos, remaining, len(gems)))
	}
	return gems
}

func (s *EnemySystem) dropGem(pos geom.Vec2, value float64, i int) *component.Pickup {
	if i > 0 {
		pos = pos.Add(geom.FromAngle(float64(i) * 2.4).Scale(6 * math.Sqrt(float64(i))))
	}
	return s.ecs.AddPickup(NewPickup(component.PickupXP, config.WorldBounds.Clamp(pos), value, s.cfg.PickupRadius))
}

// rollDrops rolls each drop independently; every chance is scaled by luck.
func (s *EnemySystem) rollDrops(e *component.Enemy) {
	def, _ := s.catalog.Enemy(e.DefID)
	table := s.catalog.DropsFor(def)
	luck := 1.0
	if s.ecs.Player != nil {
		luck = s.ecs.Player.Stats.Luck
	}
	roll := func(chance float64) bool {
		return chance > 0 && s.svc.RNG.Float64() < chance*luck
	}
	if roll(table.CoinChance) {
		s.ecs.AddPickup(NewPickup(component.PickupCoin, e.Pos, math.Max(1, e.CoinValue), s.cfg.PickupRadius))
	}
	if roll(table.HealChance) {
		s.ecs.AddPickup(NewPickup(component.PickupHeal, e.Pos, s.cfg.HealAmount, s.cfg.PickupRadius))
	}
	if roll(table.ChestChance) {
		s.ecs.AddPickup(NewPickup(component.PickupChest, e.Pos, 1, s.cfg.PickupRadius*1.5))
	}
	if roll(table.MagnetChance) {
		s.ecs.AddPickup(NewPickup(component.PickupMagnet, e.Pos, 1, s.cfg.PickupRadius))
	}
}

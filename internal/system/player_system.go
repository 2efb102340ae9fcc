// internal/system/player_system.go
package system

import (
	"maps"
	"math"
	"slices"

	"github.com/trouvaiilx/arcane-survivors/internal/component"
	"github.com/trouvaiilx/arcane-survivors/internal/config"
	"github.com/trouvaiilx/arcane-survivors/internal/defs"
	"github.com/trouvaiilx/arcane-survivors/internal/entity"
	"github.com/trouvaiilx/arcane-survivors/internal/event"
	"github.com/trouvaiilx/arcane-survivors/internal/interfaces"
	"github.com/trouvaiilx/arcane-survivors/pkg/geom"
)

// PlayerSystem moves the player and owns its health, experience and stats.
type PlayerSystem struct {
	ecs     *entity.ECS
	svc     *Services
	catalog *defs.Catalog
	cfg     config.SimConfig

	DamageTaken float64
}

func NewPlayerSystem(ecs *entity.ECS, svc *Services, catalog *defs.Catalog, cfg config.SimConfig) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, svc: svc, catalog: catalog, cfg: cfg}
}

// NewPlayer builds the player at the world center. Persistent powerup bonuses
// and character bonuses are folded into the base stats here, once.
func (s *PlayerSystem) NewPlayer(character *defs.CharacterDefinition, powerups map[string]float64) *component.Player {
	base := component.DefaultStats()
	for stat, amount := range powerups {
		if !base.Add(stat, amount) {
			s.svc.Log.Warn().Str("stat", stat).Msg("unknown powerup stat ignored")
		}
	}
	if character != nil {
		for stat, amount := range character.Bonuses {
			if !base.Add(stat, amount) {
				s.svc.Log.Warn().Str("stat", stat).Str("character", character.ID).Msg("unknown character stat ignored")
			}
		}
	}
	p := &component.Player{
		BaseMaxHP: s.cfg.PlayerMaxHP,
		Speed:     s.cfg.PlayerSpeed,
		Facing:    geom.DefaultHeading,
		Level:     1,
		XPToNext:  math.Max(1, s.cfg.XPToNext(1)),
		Base:      base,
		Passives:  make(map[string]int),
	}
	p.ID = s.ecs.NewEntity()
	p.Radius = s.cfg.PlayerRadius
	p.Place(geom.V(config.WorldWidth/2, config.WorldHeight/2))
	s.ecs.Player = p
	s.RecalculateStats()
	p.HP = p.MaxHP
	p.Revivals = p.Stats.Revival
	return p
}

// RecalculateStats folds passives over the base stats. Like weapon stats it is
// recomputed from scratch, never accumulated.
func (s *PlayerSystem) RecalculateStats() {
	p := s.ecs.Player
	if p == nil {
		return
	}
	stats := p.Base
	for _, id := range slices.Sorted(maps.Keys(p.Passives)) {
		level := p.Passives[id]
		def, ok := s.catalog.Passive(id)
		if !ok {
			continue
		}
		for _, eff := range def.Effects {
			if eff.Stat == defs.StatRevival {
				continue
			}
			stats.Add(eff.Stat, eff.Amount*float64(level))
		}
	}
	p.Stats = stats.Sanitized()
	p.MaxHP = math.Max(1, p.BaseMaxHP+p.Stats.MaxHP)
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
}

// SetMoveIntent records the desired heading; it is normalized on use.
func (s *PlayerSystem) SetMoveIntent(v geom.Vec2) {
	if s.ecs.Player != nil {
		s.ecs.Player.MoveIntent = v
	}
}

func (s *PlayerSystem) Update(deltaTime float64) {
	p := s.ecs.Player
	if p == nil || p.Dead {
		return
	}
	if !p.MoveIntent.IsZero() && p.MoveIntent.IsFinite() {
		dir := p.MoveIntent.Normalize()
		p.Facing = dir
		p.Pos = p.Pos.Add(dir.Scale(p.Speed * p.Stats.MoveSpeed * deltaTime))
	}
	if p.Settle(config.WorldBounds) {
		s.svc.Log.Warn().Msg("non-finite player position, reverted")
	}
	if p.Stats.Regen > 0 {
		s.Heal(p.Stats.Regen * deltaTime)
	}
	if p.InvincibleTimer > 0 {
		p.InvincibleTimer = math.Max(0, p.InvincibleTimer-deltaTime)
	}
}

func (s *PlayerSystem) Heal(amount float64) {
	p := s.ecs.Player
	if p == nil || p.Dead || amount <= 0 {
		return
	}
	p.HP = math.Min(p.MaxHP, p.HP+amount)
}

// Damage hurts the player unless the invincibility window is open. Curse
// scales incoming damage, armor subtracts from it, and every accepted hit
// opens a new window.
func (s *PlayerSystem) Damage(amount float64) float64 {
	p := s.ecs.Player
	if p == nil || p.Dead || p.Invincible() || amount <= 0 {
		return 0
	}
	taken := math.Max(1, amount*p.Stats.Curse-p.Stats.Armor)
	p.HP -= taken
	s.DamageTaken += taken
	p.InvincibleTimer = s.cfg.PlayerInvincibility
	s.svc.Audio.Play(interfaces.SoundHurt)
	s.svc.Events.Dispatch(event.Event{Type: event.PlayerDamaged, Data: event.PlayerDamagedData{Amount: taken, HP: math.Max(0, p.HP)}})
	if p.HP <= 0 {
		s.die()
	}
	return taken
}

func (s *PlayerSystem) die() {
	p := s.ecs.Player
	if p.Revivals > 0 {
		p.Revivals--
		p.HP = p.MaxHP * s.cfg.ReviveHealthFraction
		p.InvincibleTimer = s.cfg.ReviveInvincibility
		s.svc.Audio.Play(interfaces.SoundRevive)
		s.svc.Log.Info().Int("revivals_left", p.Revivals).Msg("player revived")
		s.svc.Events.Dispatch(event.Event{Type: event.PlayerRevived})
		return
	}
	p.HP = 0
	p.Dead = true
	s.svc.Log.Info().Int("level", p.Level).Msg("player died")
	s.svc.Events.Dispatch(event.Event{Type: event.PlayerDied})
}

// AddXP grants experience and queues one pending level-up per threshold crossed.
func (s *PlayerSystem) AddXP(amount float64) {
	p := s.ecs.Player
	if p == nil || p.Dead || amount <= 0 {
		return
	}
	p.XP += amount
	for p.XP >= p.XPToNext {
		p.XP -= p.XPToNext
		p.Level++
		p.XPToNext = math.Max(1, s.cfg.XPToNext(p.Level))
		p.PendingLevelUps++
		s.svc.Audio.Play(interfaces.SoundLevelUp)
		s.svc.Log.Info().Int("level", p.Level).Msg("level up")
		s.svc.Events.Dispatch(event.Event{Type: event.LevelUp, Data: p.Level})
	}
}

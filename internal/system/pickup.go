// internal/system/pickup.go
package system

import (
	"github.com/trouvaiilx/arcane-survivors/internal/component"
	"github.com/trouvaiilx/arcane-survivors/internal/config"
	"github.com/trouvaiilx/arcane-survivors/internal/entity"
	"github.com/trouvaiilx/arcane-survivors/internal/event"
	"github.com/trouvaiilx/arcane-survivors/internal/interfaces"
	"github.com/trouvaiilx/arcane-survivors/pkg/geom"
)

// NewPickup builds an unregistered pickup.
func NewPickup(kind component.PickupKind, pos geom.Vec2, value, radius float64) *component.Pickup {
	p := &component.Pickup{Kind: kind, Value: value}
	p.Radius = radius
	p.Place(pos)
	return p
}

// ChestOpener applies the reward of a collected chest.
type ChestOpener interface {
	OpenChest()
}

// PickupSystem pulls pickups toward the player and applies them on contact.
type PickupSystem struct {
	ecs    *entity.ECS
	svc    *Services
	cfg    config.SimConfig
	player *PlayerSystem
	chests ChestOpener

	PortalReached bool
}

func NewPickupSystem(ecs *entity.ECS, svc *Services, cfg config.SimConfig, player *PlayerSystem, chests ChestOpener) *PickupSystem {
	return &PickupSystem{ecs: ecs, svc: svc, cfg: cfg, player: player, chests: chests}
}

// MagnetRadius is the distance at which pickups start homing.
func (s *PickupSystem) MagnetRadius() float64 {
	if s.ecs.Player == nil {
		return s.cfg.MagnetRadius
	}
	return s.cfg.MagnetRadius * s.ecs.Player.Stats.Magnet
}

// Update homes pickups inside the magnet radius, and every pickup already
// marked homing, toward the player. Portals never move.
func (s *PickupSystem) Update(deltaTime float64) {
	if !s.ecs.PlayerAlive() {
		return
	}
	target := s.ecs.Player.Pos
	r := s.MagnetRadius()
	r2 := r * r
	step := s.cfg.PickupHomingSpeed * deltaTime
	for _, p := range s.ecs.Pickups.All() {
		if p.Collected || p.Kind == component.PickupPortal {
			continue
		}
		if !p.Homing && geom.Dist2(p.Pos, target) > r2 {
			continue
		}
		p.Homing = true
		to := target.Sub(p.Pos)
		if d := to.Len(); d <= step {
			p.Pos = target
		} else {
			p.Pos = p.Pos.Add(to.Scale(step / d))
		}
		if p.Recover() {
			s.svc.Log.Warn().Int64("pickup", int64(p.ID)).Msg("non-finite pickup position, reverted")
		}
	}
}

// ResolvePickupContact collects every pickup touching the player.
func (s *PickupSystem) ResolvePickupContact() {
	if !s.ecs.PlayerAlive() {
		return
	}
	pl := s.ecs.Player
	for _, p := range s.ecs.Pickups.All() {
		if p.Collected {
			continue
		}
		reach := pl.Radius + p.Radius
		if geom.Dist2(p.Pos, pl.Pos) > reach*reach {
			continue
		}
		s.collect(p)
	}
}

func (s *PickupSystem) collect(p *component.Pickup) {
	p.Collected = true
	pl := s.ecs.Player
	switch p.Kind {
	case component.PickupXP:
		s.player.AddXP(p.Value)
	case component.PickupCoin:
		pl.Coins += p.Value
	case component.PickupHeal:
		s.player.Heal(p.Value)
	case component.PickupChest:
		if s.chests != nil {
			s.chests.OpenChest()
		}
	case component.PickupMagnet:
		for _, other := range s.ecs.Pickups.All() {
			if other.Kind == component.PickupXP && !other.Collected {
				other.Homing = true
			}
		}
	case component.PickupPortal:
		if !s.PortalReached {
			s.PortalReached = true
			s.svc.Audio.Play(interfaces.SoundVictory)
			s.svc.Events.Dispatch(event.Event{Type: event.Victory})
		}
		return
	}
	s.svc.Audio.Play(interfaces.SoundPickup)
}

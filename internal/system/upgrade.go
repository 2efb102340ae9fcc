// internal/system/upgrade.go
package system

import (
	"errors"
	"fmt"

	"github.com/trouvaiilx/arcane-survivors/internal/config"
	"github.com/trouvaiilx/arcane-survivors/internal/defs"
	"github.com/trouvaiilx/arcane-survivors/internal/entity"
	"github.com/trouvaiilx/arcane-survivors/internal/utils"
)

var (
	ErrNoPendingLevelUp   = errors.New("no pending level-up")
	ErrUpgradeUnavailable = errors.New("upgrade unavailable")
)

// RareRarity is the rarity weight below which luck boosts an offer.
const RareRarity = 50

// ChestCoins is paid out by a chest when no upgrade is left to offer.
const ChestCoins = 25.0

type UpgradeKind int

const (
	UpgradeNewWeapon UpgradeKind = iota
	UpgradeWeaponLevel
	UpgradePassive
)

func (k UpgradeKind) String() string {
	switch k {
	case UpgradeNewWeapon:
		return "new_weapon"
	case UpgradeWeaponLevel:
		return "weapon_level"
	case UpgradePassive:
		return "passive"
	}
	return "unknown"
}

// UpgradeOption is one choice offered on level-up. Level is the level the
// item reaches if the option is taken.
type UpgradeOption struct {
	Kind   UpgradeKind
	ID     string
	Name   string
	Level  int
	Rarity int
}

// UpgradeSystem builds level-up offers from the catalog and applies them.
type UpgradeSystem struct {
	ecs     *entity.ECS
	svc     *Services
	catalog *defs.Catalog
	cfg     config.SimConfig
	player  *PlayerSystem
	weapons *WeaponSystem
}

func NewUpgradeSystem(ecs *entity.ECS, svc *Services, catalog *defs.Catalog, cfg config.SimConfig,
	player *PlayerSystem, weapons *WeaponSystem) *UpgradeSystem {
	return &UpgradeSystem{ecs: ecs, svc: svc, catalog: catalog, cfg: cfg, player: player, weapons: weapons}
}

// Candidates lists every option currently available, weapons first, in
// catalog order.
func (s *UpgradeSystem) Candidates() []UpgradeOption {
	pl := s.ecs.Player
	if pl == nil {
		return nil
	}
	var out []UpgradeOption
	for i := range s.catalog.Weapons {
		def := &s.catalog.Weapons[i]
		if w, ok := s.weapons.Equipped(def.ID); ok {
			if !w.MaxLevel() {
				out = append(out, UpgradeOption{Kind: UpgradeWeaponLevel, ID: def.ID, Name: def.Name, Level: w.Level + 1, Rarity: def.Rarity})
			}
			continue
		}
		if len(s.ecs.Weapons) < config.MaxWeapons {
			out = append(out, UpgradeOption{Kind: UpgradeNewWeapon, ID: def.ID, Name: def.Name, Level: 1, Rarity: def.Rarity})
		}
	}
	owned := 0
	for _, lvl := range pl.Passives {
		if lvl > 0 {
			owned++
		}
	}
	for i := range s.catalog.Passives {
		def := &s.catalog.Passives[i]
		lvl := pl.Passives[def.ID]
		if lvl >= def.MaxLevel {
			continue
		}
		if lvl == 0 && owned >= config.MaxPassives {
			continue
		}
		out = append(out, UpgradeOption{Kind: UpgradePassive, ID: def.ID, Name: def.Name, Level: lvl + 1, Rarity: def.Rarity})
	}
	return out
}

func (s *UpgradeSystem) weight(o UpgradeOption) float64 {
	w := float64(o.Rarity)
	if w <= 0 {
		w = 1
	}
	if o.Rarity < RareRarity && s.ecs.Player != nil {
		w *= s.ecs.Player.Stats.Luck
	}
	return w
}

// Options draws up to n distinct candidates weighted by rarity, without
// replacement. Luck raises the weight of rare candidates.
func (s *UpgradeSystem) Options(n int) []UpgradeOption {
	pool := s.Candidates()
	if n <= 0 || len(pool) == 0 {
		return nil
	}
	weights := make([]float64, len(pool))
	for i, o := range pool {
		weights[i] = s.weight(o)
	}
	out := make([]UpgradeOption, 0, min(n, len(pool)))
	for len(out) < n && len(pool) > 0 {
		i := utils.ChooseWeighted(s.svc.RNG, weights)
		if i < 0 {
			break
		}
		out = append(out, pool[i])
		pool = append(pool[:i], pool[i+1:]...)
		weights = append(weights[:i], weights[i+1:]...)
	}
	return out
}

// Apply takes an option. It fails when the option no longer matches the
// current loadout.
func (s *UpgradeSystem) Apply(o UpgradeOption) error {
	pl := s.ecs.Player
	if pl == nil {
		return ErrUpgradeUnavailable
	}
	switch o.Kind {
	case UpgradeNewWeapon:
		if _, err := s.weapons.Equip(o.ID); err != nil {
			return fmt.Errorf("failed to equip %s: %w", o.ID, err)
		}
	case UpgradeWeaponLevel:
		w, ok := s.weapons.Equipped(o.ID)
		if !ok || !s.weapons.LevelUp(w) {
			return fmt.Errorf("%w: %s level %d", ErrUpgradeUnavailable, o.ID, o.Level)
		}
	case UpgradePassive:
		def, ok := s.catalog.Passive(o.ID)
		if !ok || pl.Passives[o.ID] >= def.MaxLevel {
			return fmt.Errorf("%w: passive %s", ErrUpgradeUnavailable, o.ID)
		}
		pl.Passives[o.ID]++
		for _, eff := range def.Effects {
			if eff.Stat == defs.StatRevival {
				pl.Revivals += int(eff.Amount)
			}
		}
		s.player.RecalculateStats()
		s.weapons.RecalculateAll()
	default:
		return fmt.Errorf("%w: kind %d", ErrUpgradeUnavailable, o.Kind)
	}
	s.svc.Log.Info().Str("kind", o.Kind.String()).Str("id", o.ID).Int("level", o.Level).Msg("upgrade applied")
	return nil
}

// ChooseLevelUp spends one pending level-up on o.
func (s *UpgradeSystem) ChooseLevelUp(o UpgradeOption) error {
	pl := s.ecs.Player
	if pl == nil || pl.PendingLevelUps <= 0 {
		return ErrNoPendingLevelUp
	}
	if err := s.Apply(o); err != nil {
		return err
	}
	pl.PendingLevelUps--
	return nil
}

// SkipLevelUp discards one pending level-up, used when nothing is left to offer.
func (s *UpgradeSystem) SkipLevelUp() {
	if pl := s.ecs.Player; pl != nil && pl.PendingLevelUps > 0 {
		pl.PendingLevelUps--
	}
}

// OpenChest applies one random upgrade immediately, or pays coins when the
// loadout is complete.
func (s *UpgradeSystem) OpenChest() {
	opts := s.Options(1)
	if len(opts) == 0 {
		if s.ecs.Player != nil {
			s.ecs.Player.Coins += ChestCoins
		}
		return
	}
	if err := s.Apply(opts[0]); err != nil {
		s.svc.Log.Warn().Err(err).Msg("chest upgrade rejected")
	}
}

// AutoPick resolves every pending level-up with the first drawn option. It
// returns how many were resolved.
func (s *UpgradeSystem) AutoPick() int {
	pl := s.ecs.Player
	n := 0
	for pl != nil && pl.PendingLevelUps > 0 {
		opts := s.Options(max(1, s.cfg.UpgradeChoices))
		if len(opts) == 0 {
			s.SkipLevelUp()
			n++
			continue
		}
		if err := s.ChooseLevelUp(opts[0]); err != nil {
			s.svc.Log.Warn().Err(err).Msg("auto-picked upgrade rejected")
			s.SkipLevelUp()
		}
		n++
	}
	return n
}

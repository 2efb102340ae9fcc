package defs

import (
	"fmt"
	"sort"
)

// Catalog is the read-only static data consumed by the simulation.
type Catalog struct {
	Weapons      []WeaponDefinition    `json:"weapons" yaml:"weapons"`
	Passives     []PassiveDefinition   `json:"passives" yaml:"passives"`
	Enemies      []EnemyDefinition     `json:"enemies" yaml:"enemies"`
	Characters   []CharacterDefinition `json:"characters" yaml:"characters"`
	Waves        []SpawnPhase          `json:"waves" yaml:"waves"`
	Schedule     BossSchedule          `json:"schedule" yaml:"schedule"`
	DefaultDrops DropTable             `json:"default_drops" yaml:"default_drops"`
	GemValues    []float64             `json:"gem_values" yaml:"gem_values" jsonschema:"description=XP gem denominations"`

	weapons    map[string]*WeaponDefinition
	passives   map[string]*PassiveDefinition
	enemies    map[string]*EnemyDefinition
	characters map[string]*CharacterDefinition
}

func (c *Catalog) index() {
	c.weapons = make(map[string]*WeaponDefinition, len(c.Weapons))
	for i := range c.Weapons {
		c.weapons[c.Weapons[i].ID] = &c.Weapons[i]
	}
	c.passives = make(map[string]*PassiveDefinition, len(c.Passives))
	for i := range c.Passives {
		c.passives[c.Passives[i].ID] = &c.Passives[i]
	}
	c.enemies = make(map[string]*EnemyDefinition, len(c.Enemies))
	for i := range c.Enemies {
		if c.Enemies[i].Tier == "" {
			c.Enemies[i].Tier = TierNormal
		}
		c.enemies[c.Enemies[i].ID] = &c.Enemies[i]
	}
	c.characters = make(map[string]*CharacterDefinition, len(c.Characters))
	for i := range c.Characters {
		c.characters[c.Characters[i].ID] = &c.Characters[i]
	}
	sort.SliceStable(c.Waves, func(i, j int) bool { return c.Waves[i].Start < c.Waves[j].Start })
	sort.Sort(sort.Reverse(sort.Float64Slice(c.GemValues)))
}

func (c *Catalog) Weapon(id string) (*WeaponDefinition, bool) {
	w, ok := c.weapons[id]
	return w, ok
}

func (c *Catalog) Passive(id string) (*PassiveDefinition, bool) {
	p, ok := c.passives[id]
	return p, ok
}

func (c *Catalog) Enemy(id string) (*EnemyDefinition, bool) {
	e, ok := c.enemies[id]
	return e, ok
}

func (c *Catalog) Character(id string) (*CharacterDefinition, bool) {
	ch, ok := c.characters[id]
	return ch, ok
}

// PhaseAt returns the spawn phase active at elapsed seconds.
func (c *Catalog) PhaseAt(elapsed float64) (SpawnPhase, bool) {
	var phase SpawnPhase
	found := false
	for _, p := range c.Waves {
		if p.Start > elapsed {
			break
		}
		phase = p
		found = true
	}
	return phase, found
}

// DropsFor returns the enemy's own drop table or the catalog default.
func (c *Catalog) DropsFor(def *EnemyDefinition) DropTable {
	if def != nil && def.Drops != nil {
		return *def.Drops
	}
	return c.DefaultDrops
}

// Build indexes the definitions and validates them. Catalogs assembled in code
// must call Build before use.
func (c *Catalog) Build() error {
	c.index()
	return c.Validate()
}

// Validate checks references and level tables.
func (c *Catalog) Validate() error {
	if len(c.Weapons) == 0 {
		return fmt.Errorf("%w: no weapons", ErrInvalidCatalog)
	}
	seen := make(map[string]bool)
	for _, w := range c.Weapons {
		if w.ID == "" || seen[w.ID] {
			return fmt.Errorf("%w: duplicate or empty weapon id %q", ErrInvalidCatalog, w.ID)
		}
		seen[w.ID] = true
		if !isKnownPattern(w.Pattern) {
			return fmt.Errorf("weapon %s: %w %q", w.ID, ErrUnknownPattern, w.Pattern)
		}
		if w.MaxLevel < 1 {
			return fmt.Errorf("%w: weapon %s max_level must be at least 1", ErrInvalidCatalog, w.ID)
		}
		if len(w.Upgrades) < w.MaxLevel-1 {
			return fmt.Errorf("%w: weapon %s has %d upgrades for max_level %d", ErrInvalidCatalog, w.ID, len(w.Upgrades), w.MaxLevel)
		}
	}
	for _, p := range c.Passives {
		if p.MaxLevel < 1 {
			return fmt.Errorf("%w: passive %s max_level must be at least 1", ErrInvalidCatalog, p.ID)
		}
	}
	for _, phase := range c.Waves {
		for _, entry := range phase.Entries {
			if _, ok := c.enemies[entry.EnemyID]; !ok {
				return fmt.Errorf("%w: wave at %.0fs references unknown enemy %q", ErrInvalidCatalog, phase.Start, entry.EnemyID)
			}
		}
	}
	for _, id := range append(append([]string{}, c.Schedule.MiniBosses...), c.Schedule.Boss) {
		if id == "" {
			continue
		}
		if _, ok := c.enemies[id]; !ok {
			return fmt.Errorf("%w: schedule references unknown enemy %q", ErrInvalidCatalog, id)
		}
	}
	for _, ch := range c.Characters {
		if _, ok := c.weapons[ch.StartingWeapon]; !ok {
			return fmt.Errorf("%w: character %s starts with unknown weapon %q", ErrInvalidCatalog, ch.ID, ch.StartingWeapon)
		}
		if ch.UnlockCost < 0 {
			return fmt.Errorf("%w: character %s has a negative unlock cost", ErrInvalidCatalog, ch.ID)
		}
	}
	for _, v := range c.GemValues {
		if v <= 0 {
			return fmt.Errorf("%w: gem values must be positive", ErrInvalidCatalog)
		}
	}
	return nil
}

func isKnownPattern(p Pattern) bool {
	for _, known := range KnownPatterns {
		if p == known {
			return true
		}
	}
	return false
}

package defs

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestDefaultCatalogValidates(t *testing.T) {
	c, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	for _, ch := range c.Characters {
		if _, ok := c.Weapon(ch.StartingWeapon); !ok {
			t.Errorf("character %s starts with missing weapon %s", ch.ID, ch.StartingWeapon)
		}
	}
	if _, ok := c.Enemy(c.Schedule.Boss); !ok {
		t.Errorf("boss %q not in catalog", c.Schedule.Boss)
	}
	for i := 1; i < len(c.GemValues); i++ {
		if c.GemValues[i] > c.GemValues[i-1] {
			t.Fatalf("gem values not descending: %v", c.GemValues)
		}
	}
	for i := 1; i < len(c.Waves); i++ {
		if c.Waves[i].Start < c.Waves[i-1].Start {
			t.Fatalf("waves not ordered by start")
		}
	}
}

const minimalYAML = `
weapons:
  - id: dart
    name: Dart
    pattern: direct
    max_level: 2
    base: {damage: 3, cooldown: 1, projectiles: 1, speed: 200, duration: 1}
    upgrades:
      - {damage: 1}
enemies:
  - id: blob
    health: 5
    speed: 40
    radius: 8
characters:
  - id: hero
    starting_weapon: dart
    unlocked: true
waves:
  - start: 30
    entries: [{enemy_id: blob, weight: 1}]
  - start: 0
    entries: [{enemy_id: blob, weight: 1}]
gem_values: [1, 10, 5]
`

func TestParseCatalogYAML(t *testing.T) {
	c, err := ParseCatalog([]byte(minimalYAML), FormatYAML)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	w, ok := c.Weapon("dart")
	if !ok || w.MaxLevel != 2 {
		t.Fatalf("dart = %+v, %v", w, ok)
	}
	if e, ok := c.Enemy("blob"); !ok || e.Tier != TierNormal {
		t.Fatalf("blob tier not defaulted: %+v", e)
	}
	if c.GemValues[0] != 10 || c.GemValues[2] != 1 {
		t.Errorf("gem values = %v, want descending", c.GemValues)
	}
	if c.Waves[0].Start != 0 {
		t.Errorf("first wave starts at %v", c.Waves[0].Start)
	}
	if _, ok := c.PhaseAt(-1); ok {
		t.Error("phase before the first wave")
	}
	if p, ok := c.PhaseAt(45); !ok || p.Start != 30 {
		t.Errorf("PhaseAt(45) = %+v, %v", p, ok)
	}
}

func TestValidateRejects(t *testing.T) {
	base := func() *Catalog {
		return &Catalog{
			Weapons:    []WeaponDefinition{{ID: "dart", Pattern: "direct", MaxLevel: 1}},
			Enemies:    []EnemyDefinition{{ID: "blob"}},
			Characters: []CharacterDefinition{{ID: "hero", StartingWeapon: "dart"}},
		}
	}
	tests := []struct {
		name   string
		mutate func(c *Catalog)
		want   error
	}{
		{"unknown pattern", func(c *Catalog) { c.Weapons[0].Pattern = "spiral" }, ErrUnknownPattern},
		{"no weapons", func(c *Catalog) { c.Weapons = nil; c.Characters = nil }, ErrInvalidCatalog},
		{"duplicate weapon", func(c *Catalog) { c.Weapons = append(c.Weapons, c.Weapons[0]) }, ErrInvalidCatalog},
		{"missing upgrades", func(c *Catalog) { c.Weapons[0].MaxLevel = 3 }, ErrInvalidCatalog},
		{"unknown boss", func(c *Catalog) { c.Schedule.Boss = "dragon" }, ErrInvalidCatalog},
		{"unknown starting weapon", func(c *Catalog) { c.Characters[0].StartingWeapon = "axe" }, ErrInvalidCatalog},
		{"negative unlock cost", func(c *Catalog) { c.Characters[0].UnlockCost = -1 }, ErrInvalidCatalog},
		{"bad gem", func(c *Catalog) { c.GemValues = []float64{5, 0} }, ErrInvalidCatalog},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			if err := c.Build(); err != nil {
				t.Fatalf("base catalog invalid: %v", err)
			}
			tt.mutate(c)
			err := c.Build()
			if !errors.Is(err, tt.want) {
				t.Fatalf("Build() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseCatalogBadInput(t *testing.T) {
	if _, err := ParseCatalog([]byte("{"), FormatJSON); err == nil {
		t.Error("broken json accepted")
	}
	if _, err := ParseCatalog([]byte("weapons: ["), FormatYAML); err == nil {
		t.Error("broken yaml accepted")
	}
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]Format{
		"catalog.yaml": FormatYAML,
		"CATALOG.YML":  FormatYAML,
		"catalog.json": FormatJSON,
		"catalog":      FormatJSON,
	} {
		if got := FormatFromPath(path); got != want {
			t.Errorf("FormatFromPath(%q) = %s, want %s", path, got, want)
		}
	}
}

func TestSchemaJSON(t *testing.T) {
	data, err := SchemaJSON()
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("schema is not json: %v", err)
	}
	if doc["title"] != "Arcane Survivors Catalog" {
		t.Errorf("title = %v", doc["title"])
	}
	props, ok := doc["properties"].(map[string]any)
	if !ok {
		t.Fatalf("schema has no properties")
	}
	if _, ok := props["weapons"]; !ok {
		t.Error("schema lacks weapons")
	}
}

// internal/defs/enemies.go
package defs

// Tier ranks an enemy for spawning, drops and victory logic.
type Tier string

const (
	TierNormal   Tier = "normal"
	TierMiniBoss Tier = "mini_boss"
	TierBoss     Tier = "boss"
)

// DropTable lists independent drop probabilities rolled on death, before luck scaling.
type DropTable struct {
	CoinChance   float64 `json:"coin_chance,omitempty" yaml:"coin_chance,omitempty"`
	HealChance   float64 `json:"heal_chance,omitempty" yaml:"heal_chance,omitempty"`
	ChestChance  float64 `json:"chest_chance,omitempty" yaml:"chest_chance,omitempty"`
	MagnetChance float64 `json:"magnet_chance,omitempty" yaml:"magnet_chance,omitempty"`
}

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID                  string     `json:"id" yaml:"id" jsonschema:"required"`
	Name                string     `json:"name" yaml:"name"`
	Health              float64    `json:"health" yaml:"health"`
	Speed               float64    `json:"speed" yaml:"speed"`
	Damage              float64    `json:"damage" yaml:"damage"`
	Radius              float64    `json:"radius" yaml:"radius"`
	XP                  float64    `json:"xp" yaml:"xp"`
	Coins               float64    `json:"coins,omitempty" yaml:"coins,omitempty"`
	KnockbackResistance float64    `json:"knockback_resistance,omitempty" yaml:"knockback_resistance,omitempty"`
	Erratic             bool       `json:"erratic,omitempty" yaml:"erratic,omitempty"`
	Phasing             bool       `json:"phasing,omitempty" yaml:"phasing,omitempty"`
	Resurrect           bool       `json:"resurrect,omitempty" yaml:"resurrect,omitempty"`
	Tier                Tier       `json:"tier,omitempty" yaml:"tier,omitempty"`
	Drops               *DropTable `json:"drops,omitempty" yaml:"drops,omitempty"`
}

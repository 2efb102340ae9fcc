package defs

// Stat names understood by passives and power-up bonuses.
const (
	StatDamage          = "damage"
	StatCooldown        = "cooldown"
	StatProjectileSpeed = "projectile_speed"
	StatArea            = "area"
	StatProjectiles     = "projectiles"
	StatDuration        = "duration"
	StatMoveSpeed       = "move_speed"
	StatLuck            = "luck"
	StatCurse           = "curse"
	StatMagnet          = "magnet"
	StatArmor           = "armor"
	StatRegen           = "regen"
	StatMaxHP           = "max_hp"
	StatRevival         = "revival"
)

// PassiveEffect adds Amount to Stat once per passive level.
type PassiveEffect struct {
	Stat   string  `json:"stat" yaml:"stat"`
	Amount float64 `json:"amount" yaml:"amount"`
}

// PassiveDefinition is an owner-wide stat modifier offered on level-up.
type PassiveDefinition struct {
	ID       string          `json:"id" yaml:"id" jsonschema:"required"`
	Name     string          `json:"name" yaml:"name"`
	MaxLevel int             `json:"max_level" yaml:"max_level" jsonschema:"required,minimum=1"`
	Rarity   int             `json:"rarity" yaml:"rarity"`
	Effects  []PassiveEffect `json:"effects" yaml:"effects"`
}

// CharacterDefinition is a playable character.
type CharacterDefinition struct {
	ID             string             `json:"id" yaml:"id" jsonschema:"required"`
	Name           string             `json:"name" yaml:"name"`
	StartingWeapon string             `json:"starting_weapon" yaml:"starting_weapon"`
	Bonuses        map[string]float64 `json:"bonuses,omitempty" yaml:"bonuses,omitempty"`
	Unlocked       bool               `json:"unlocked,omitempty" yaml:"unlocked,omitempty"`
	// UnlockCost is the price in saved coins of a locked character.
	UnlockCost     float64            `json:"unlock_cost,omitempty" yaml:"unlock_cost,omitempty" jsonschema:"minimum=0"`
}

package defs

// WeaponParams carries the pattern-specific constants of a weapon.
// Fields a pattern does not read are left zero.
type WeaponParams struct {
	Radius       float64 `json:"radius,omitempty" yaml:"radius,omitempty"`
	SpreadStep   float64 `json:"spread_step,omitempty" yaml:"spread_step,omitempty"`
	ShotDelay    float64 `json:"shot_delay,omitempty" yaml:"shot_delay,omitempty"`
	RingRotation float64 `json:"ring_rotation,omitempty" yaml:"ring_rotation,omitempty"`

	OrbitRadius float64 `json:"orbit_radius,omitempty" yaml:"orbit_radius,omitempty"`
	OrbitSpeed  float64 `json:"orbit_speed,omitempty" yaml:"orbit_speed,omitempty"`
	HitCooldown float64 `json:"hit_cooldown,omitempty" yaml:"hit_cooldown,omitempty"`

	ChainRange   float64 `json:"chain_range,omitempty" yaml:"chain_range,omitempty"`
	ChainFalloff float64 `json:"chain_falloff,omitempty" yaml:"chain_falloff,omitempty"`
	ChainHops    int     `json:"chain_hops,omitempty" yaml:"chain_hops,omitempty"`

	SweepArc     float64 `json:"sweep_arc,omitempty" yaml:"sweep_arc,omitempty"`
	SweepSteps   int     `json:"sweep_steps,omitempty" yaml:"sweep_steps,omitempty"`
	SweepWindow  float64 `json:"sweep_window,omitempty" yaml:"sweep_window,omitempty"`
	HitboxWidth  float64 `json:"hitbox_width,omitempty" yaml:"hitbox_width,omitempty"`
	HitboxHeight float64 `json:"hitbox_height,omitempty" yaml:"hitbox_height,omitempty"`

	BeamWidth float64 `json:"beam_width,omitempty" yaml:"beam_width,omitempty"`

	PoolRadius float64 `json:"pool_radius,omitempty" yaml:"pool_radius,omitempty"`
	PoolTick   float64 `json:"pool_tick,omitempty" yaml:"pool_tick,omitempty"`

	Gravity        float64 `json:"gravity,omitempty" yaml:"gravity,omitempty"`
	SplashRadius   float64 `json:"splash_radius,omitempty" yaml:"splash_radius,omitempty"`
	SplashFraction float64 `json:"splash_fraction,omitempty" yaml:"splash_fraction,omitempty"`
	ShardCount     int     `json:"shard_count,omitempty" yaml:"shard_count,omitempty"`

	MaxBounces int `json:"max_bounces,omitempty" yaml:"max_bounces,omitempty"`

	SlowFactor   float64 `json:"slow_factor,omitempty" yaml:"slow_factor,omitempty"`
	SlowDuration float64 `json:"slow_duration,omitempty" yaml:"slow_duration,omitempty"`
}

// WeaponDefinition holds the static data of one weapon.
type WeaponDefinition struct {
	ID       string       `json:"id" yaml:"id" jsonschema:"required"`
	Name     string       `json:"name" yaml:"name"`
	Pattern  Pattern      `json:"pattern" yaml:"pattern" jsonschema:"required"`
	MaxLevel int          `json:"max_level" yaml:"max_level" jsonschema:"required,minimum=1"`
	Rarity   int          `json:"rarity" yaml:"rarity"`
	Base     StatBlock    `json:"base" yaml:"base"`
	Upgrades []StatBlock  `json:"upgrades" yaml:"upgrades"`
	Params   WeaponParams `json:"params" yaml:"params"`
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SimConfig holds run tunables. Keys missing from a YAML file keep their defaults.
type SimConfig struct {
	// Spawning
	SpawnDistance       float64 `yaml:"spawn_distance"`
	BaseSpawnInterval   float64 `yaml:"base_spawn_interval"`
	MinSpawnInterval    float64 `yaml:"min_spawn_interval"`
	SpawnIntervalDecay  float64 `yaml:"spawn_interval_decay"` // multiplier per elapsed minute
	BaseSpawnCount      int     `yaml:"base_spawn_count"`
	SpawnCountPerMinute float64 `yaml:"spawn_count_per_minute"`
	EnemyCap            int     `yaml:"enemy_cap"`

	// Difficulty
	DifficultyPerMinute  float64 `yaml:"difficulty_per_minute"`
	MiniBossInterval     float64 `yaml:"mini_boss_interval"`
	BossTime             float64 `yaml:"boss_time"`
	BossInterval         float64 `yaml:"boss_interval"`
	TierHealthMultiplier float64 `yaml:"tier_health_multiplier"`
	TierDamageMultiplier float64 `yaml:"tier_damage_multiplier"`
	TierGoldMultiplier   float64 `yaml:"tier_gold_multiplier"`

	// Player
	PlayerRadius         float64 `yaml:"player_radius"`
	PlayerSpeed          float64 `yaml:"player_speed"`
	PlayerMaxHP          float64 `yaml:"player_max_hp"`
	PlayerInvincibility  float64 `yaml:"player_invincibility"`
	ReviveInvincibility  float64 `yaml:"revive_invincibility"`
	ReviveHealthFraction float64 `yaml:"revive_health_fraction"`
	StartingWeapon       string  `yaml:"starting_weapon"`
	Character            string  `yaml:"character"`

	// Progression
	XPBaseToNext   float64 `yaml:"xp_base_to_next"`
	XPGrowthToNext float64 `yaml:"xp_growth_to_next"`
	UpgradeChoices int     `yaml:"upgrade_choices"`

	// Pickups
	PickupRadius      float64 `yaml:"pickup_radius"`
	MagnetRadius      float64 `yaml:"magnet_radius"`
	PickupHomingSpeed float64 `yaml:"pickup_homing_speed"`
	HealAmount        float64 `yaml:"heal_amount"`
}

// DefaultSimConfig returns the tuning used when no file is supplied.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		SpawnDistance:       700,
		BaseSpawnInterval:   1.2,
		MinSpawnInterval:    0.25,
		SpawnIntervalDecay:  0.9,
		BaseSpawnCount:      3,
		SpawnCountPerMinute: 1.5,
		EnemyCap:            300,

		DifficultyPerMinute:  0.1,
		MiniBossInterval:     180,
		BossTime:             600,
		BossInterval:         600,
		TierHealthMultiplier: 1.5,
		TierDamageMultiplier: 1.25,
		TierGoldMultiplier:   1.5,

		PlayerRadius:         16,
		PlayerSpeed:          200,
		PlayerMaxHP:          100,
		PlayerInvincibility:  0.5,
		ReviveInvincibility:  2.0,
		ReviveHealthFraction: 0.5,
		StartingWeapon:       "magic_bolt",
		Character:            "mage",

		XPBaseToNext:   5,
		XPGrowthToNext: 1.2,
		UpgradeChoices: 3,

		PickupRadius:      8,
		MagnetRadius:      90,
		PickupHomingSpeed: 420,
		HealAmount:        30,
	}
}

// LoadSimConfig reads a YAML file on top of DefaultSimConfig.
func LoadSimConfig(path string) (SimConfig, error) {
	cfg := DefaultSimConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read sim config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal sim config: %w", err)
	}
	return cfg, nil
}

// XPToNext returns the experience needed to leave level.
func (c SimConfig) XPToNext(level int) float64 {
	if level < 1 {
		level = 1
	}
	need := c.XPBaseToNext
	for i := 1; i < level; i++ {
		need *= c.XPGrowthToNext
	}
	return need
}

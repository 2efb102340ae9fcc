package defs

// SpawnEntry is one weighted enemy choice inside a spawn phase.
type SpawnEntry struct {
	EnemyID string `json:"enemy_id" yaml:"enemy_id"`
	Weight  int    `json:"weight" yaml:"weight"`
}

// SpawnPhase is the enemy pool in effect from Start seconds of elapsed time.
type SpawnPhase struct {
	Start   float64      `json:"start" yaml:"start"`
	Entries []SpawnEntry `json:"entries" yaml:"entries"`
}

// BossSchedule names the scheduled elite spawns. Timings live in config.SimConfig.
type BossSchedule struct {
	MiniBosses []string `json:"mini_bosses" yaml:"mini_bosses"`
	Boss       string   `json:"boss" yaml:"boss"`
}

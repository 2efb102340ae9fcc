package interfaces

import "image/color"

// Persistence is the save collaborator. The simulation calls it on kills and
// at the end of a run; it never touches a storage medium itself.
type Persistence interface {
	Coins() float64
	AddCoins(n float64)
	SpendCoins(n float64) bool
	// PowerupBonuses are flat additive stat bonuses keyed by defs.Stat* names.
	PowerupBonuses() map[string]float64
	RecordKill(defID string)
	RecordBossKill(defID string)
	UpdateStats(stats RunStats)
	IsCharacterUnlocked(id string) bool
	UnlockCharacter(id string)
}

// Audio plays named cues. Calls are fire-and-forget.
type Audio interface {
	Play(event string)
}

// Particles spawns cosmetic effects. Calls are fire-and-forget.
type Particles interface {
	SpawnEffect(x, y float64, c color.RGBA, count int)
}

// Difficulty reports run progress for spawn and stat scaling.
type Difficulty interface {
	DifficultyMultiplier() float64
	ElapsedMs() float64
	// Tier is the number of bosses defeated so far.
	Tier() int
}

// RunStats summarises one run for the persistence collaborator.
type RunStats struct {
	RunID        string
	Character    string
	Kills        int
	BossKills    int
	DamageDealt  float64
	DamageTaken  float64
	TimeSurvived float64 // seconds
	Level        int
	Coins        float64
	Victory      bool
}

// Audio cue names.
const (
	SoundHit     = "hit"
	SoundDeath   = "death"
	SoundFire    = "fire"
	SoundLevelUp = "level_up"
	SoundPickup  = "pickup"
	SoundHurt    = "hurt"
	SoundRevive  = "revive"
	SoundBoss    = "boss"
	SoundVictory = "victory"
)

type NopAudio struct{}

func (NopAudio) Play(string) {}

type NopParticles struct{}

func (NopParticles) SpawnEffect(float64, float64, color.RGBA, int) {}

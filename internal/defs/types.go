// internal/defs/types.go
package defs

import "errors"

var (
	// ErrInvalidCatalog marks a catalog that failed validation.
	ErrInvalidCatalog = errors.New("invalid catalog")
	// ErrUnknownPattern marks a weapon whose firing pattern has no strategy.
	ErrUnknownPattern = errors.New("unknown weapon pattern")
)

// Pattern names a weapon firing strategy.
type Pattern string

const (
	PatternDirect    Pattern = "direct"
	PatternRing      Pattern = "ring"
	PatternOrbit     Pattern = "orbit"
	PatternChain     Pattern = "chain"
	PatternSweep     Pattern = "sweep"
	PatternBeam      Pattern = "beam"
	PatternPool      Pattern = "pool"
	PatternBoomerang Pattern = "boomerang"
	PatternStrike    Pattern = "strike"
	PatternLob       Pattern = "lob"
	PatternBounce    Pattern = "bounce"
)

// KnownPatterns lists every pattern the simulation can fire.
var KnownPatterns = []Pattern{
	PatternDirect, PatternRing, PatternOrbit, PatternChain, PatternSweep, PatternBeam,
	PatternPool, PatternBoomerang, PatternStrike, PatternLob, PatternBounce,
}

// StatBlock is used both for weapon base stats and per-level upgrade deltas.
// In upgrade entries Cooldown and Area are multipliers (0 means unchanged),
// every other field is added.
type StatBlock struct {
	Damage      float64 `json:"damage,omitempty" yaml:"damage,omitempty"`
	Cooldown    float64 `json:"cooldown,omitempty" yaml:"cooldown,omitempty" jsonschema:"description=seconds in base stats; multiplier in upgrades"`
	Projectiles int     `json:"projectiles,omitempty" yaml:"projectiles,omitempty"`
	Area        float64 `json:"area,omitempty" yaml:"area,omitempty"`
	Duration    float64 `json:"duration,omitempty" yaml:"duration,omitempty"`
	Speed       float64 `json:"speed,omitempty" yaml:"speed,omitempty"`
	Pierce      int     `json:"pierce,omitempty" yaml:"pierce,omitempty"`
	Range       float64 `json:"range,omitempty" yaml:"range,omitempty"`
	Knockback   float64 `json:"knockback,omitempty" yaml:"knockback,omitempty"`
}

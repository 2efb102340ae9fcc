// internal/config/config.go
package config

import (
	"image/color"
	"time"

	"github.com/trouvaiilx/arcane-survivors/pkg/geom"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720

	WorldWidth  = 4000.0
	WorldHeight = 4000.0

	TickRate      = 60
	FixedStep     = time.Second / TickRate
	MaxFrameDelta = 250 * time.Millisecond // catch-up clamp after a stall

	SpatialCellSize = 100.0

	MinWeaponCooldown   = 0.05 // seconds
	MaxWeapons          = 6
	MaxPassives         = 6
	KnockbackDecay      = 0.85 // per tick
	BoomerangSnapRadius = 30.0
	DefaultSpreadStep   = 0.15 // radians between fanned shots
	DefaultShotDelay    = 0.08 // seconds between staggered shots

	MaxEnemies     = 400
	MaxProjectiles = 600
	MaxPickups     = 500

	EnemyHitFlash = 0.12
)

var (
	BackgroundColor = color.RGBA{18, 16, 28, 255}
	GridColor       = color.RGBA{40, 36, 58, 255}
	PlayerColor     = color.RGBA{240, 240, 255, 255}
	EnemyColor      = color.RGBA{200, 60, 70, 255}
	EliteColor      = color.RGBA{230, 150, 40, 255}
	BossColor       = color.RGBA{170, 40, 220, 255}
	FlashColor      = color.RGBA{255, 255, 255, 255}
	ProjectileColor = color.RGBA{120, 200, 255, 255}
	PoolColor       = color.RGBA{90, 220, 90, 140}
	BeamColor       = color.RGBA{160, 230, 255, 200}
	OrbitColor      = color.RGBA{255, 220, 120, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	HealthBarColor  = color.RGBA{220, 50, 50, 255}
	XPBarColor      = color.RGBA{80, 140, 255, 255}
	PickupColors    = []color.RGBA{
		{80, 140, 255, 255},  // xp gem
		{255, 215, 0, 255},   // coin
		{80, 230, 120, 255},  // heal
		{190, 120, 60, 255},  // chest
		{230, 80, 230, 255},  // magnet
		{120, 255, 255, 255}, // portal
	}
)

// WorldBounds is the playable area every entity is clamped to.
var WorldBounds = geom.Rect{MinX: 0, MinY: 0, MaxX: WorldWidth, MaxY: WorldHeight}

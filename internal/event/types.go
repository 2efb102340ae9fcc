// internal/event/types.go
package event

import (
	"github.com/trouvaiilx/arcane-survivors/internal/defs"
	"github.com/trouvaiilx/arcane-survivors/internal/types"
	"github.com/trouvaiilx/arcane-survivors/pkg/geom"
)

const (
	EnemyKilled   EventType = "EnemyKilled"   // EnemyKilledData
	BossDefeated  EventType = "BossDefeated"  // EnemyKilledData
	PlayerDamaged EventType = "PlayerDamaged" // PlayerDamagedData
	PlayerRevived EventType = "PlayerRevived"
	PlayerDied    EventType = "PlayerDied"
	LevelUp       EventType = "LevelUp" // int, the new level
	Victory       EventType = "Victory"
	WeaponFired   EventType = "WeaponFired" // WeaponFiredData
)

type EnemyKilledData struct {
	ID    types.EntityID
	DefID string
	Tier  defs.Tier
	Pos   geom.Vec2
}

type PlayerDamagedData struct {
	Amount float64
	HP     float64
}

type WeaponFiredData struct {
	WeaponID types.EntityID
	DefID    string
}

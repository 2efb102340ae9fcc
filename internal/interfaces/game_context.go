// internal/interfaces/game_context.go
package interfaces

import "github.com/trouvaiilx/arcane-survivors/internal/component"

// GameContext is the read-only view of a run that the HUD draws from.
type GameContext interface {
	Player() *component.Player
	Elapsed() float64
	Tier() int
	Kills() int
}

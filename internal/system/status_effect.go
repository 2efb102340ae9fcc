// internal/system/status_effect.go
package system

import "github.com/trouvaiilx/arcane-survivors/internal/entity"

// StatusEffectSystem runs down timed effects such as slows.
type StatusEffectSystem struct {
	ecs *entity.ECS
}

func NewStatusEffectSystem(ecs *entity.ECS) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs}
}

// Update decays slows and hit flashes on every live enemy.
func (s *StatusEffectSystem) Update(deltaTime float64) {
	for _, e := range s.ecs.Enemies.All() {
		if e.Dead {
			continue
		}
		e.Slow.Tick(deltaTime)
		if e.Flash > 0 {
			e.Flash -= deltaTime
		}
	}
}

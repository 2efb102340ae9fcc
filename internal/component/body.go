// internal/component/body.go
package component

import (
	"github.com/trouvaiilx/arcane-survivors/internal/types"
	"github.com/trouvaiilx/arcane-survivors/pkg/geom"
)

// Body is the spatial state shared by every simulation entity.
type Body struct {
	ID       types.EntityID
	Pos      geom.Vec2
	LastGood geom.Vec2 // last finite position, restored when Pos goes NaN/Inf
	Radius   float64
}

func (b *Body) EntityID() types.EntityID      { return b.ID }
func (b *Body) SetEntityID(id types.EntityID) { b.ID = id }
func (b *Body) Center() geom.Vec2             { return b.Pos }
func (b *Body) BoundingRadius() float64       { return b.Radius }

// Place sets the position and records it as known-good.
func (b *Body) Place(p geom.Vec2) {
	b.Pos = p
	b.LastGood = p
}

// Recover reverts a non-finite position to the last finite one and reports
// whether it had to.
func (b *Body) Recover() bool {
	if b.Pos.IsFinite() {
		b.LastGood = b.Pos
		return false
	}
	b.Pos = b.LastGood
	return true
}

// Settle reverts a non-finite position, or clamps a finite one into bounds
// and records it as known-good. It reports whether a revert happened.
func (b *Body) Settle(bounds geom.Rect) bool {
	if !b.Pos.IsFinite() {
		b.Pos = b.LastGood
		return true
	}
	b.Pos = bounds.Clamp(b.Pos)
	b.LastGood = b.Pos
	return false
}

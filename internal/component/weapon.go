// internal/component/weapon.go
package component

import (
	"math"

	"github.com/trouvaiilx/arcane-survivors/internal/defs"
	"github.com/trouvaiilx/arcane-survivors/internal/types"
	"github.com/trouvaiilx/arcane-survivors/pkg/geom"
)

// Weapon is one equipped weapon instance.
type Weapon struct {
	ID    types.EntityID
	Def   *defs.WeaponDefinition
	Level int
	Timer float64
	Stats defs.StatBlock // derived, see system.RecalculateStats

	RingOffset float64
	SweepSign  float64

	Orbit *OrbitState
	Beam  *BeamState
}

func (w *Weapon) DefID() string { return w.Def.ID }

func (w *Weapon) MaxLevel() bool { return w.Level >= w.Def.MaxLevel }

// OrbitState tracks the persistent orbiting hitboxes of an orbit weapon.
type OrbitState struct {
	Angle     float64
	Remaining float64 // active time left; persistent when the weapon duration is <= 0
	Permanent bool
	Count     int
	Radius    float64 // orbit distance from the owner
	HitRadius float64
	// LastHitTime tracks when each enemy was last hit to prevent continuous damage.
	LastHitTime map[types.EntityID]float64
}

func (o *OrbitState) Active() bool { return o.Permanent || o.Remaining > 0 }

// Positions returns the hitbox centers around origin.
func (o *OrbitState) Positions(origin geom.Vec2) []geom.Vec2 {
	if o.Count <= 0 {
		return nil
	}
	out := make([]geom.Vec2, o.Count)
	step := 2 * math.Pi / float64(o.Count)
	for i := range out {
		out[i] = origin.Add(geom.FromAngle(o.Angle + step*float64(i)).Scale(o.Radius))
	}
	return out
}

// BeamState is one beam activation. The origin follows the owner; the
// direction is fixed when the beam activates.
type BeamState struct {
	Dir       geom.Vec2
	Length    float64
	HalfWidth float64
	Remaining float64
	Damage    float64
	Knockback float64
	Slow      *SlowSpec
	HitSet    map[types.EntityID]struct{}
}

func (b *BeamState) Active() bool { return b.Remaining > 0 }

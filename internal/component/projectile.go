// internal/component/projectile.go
package component

import (
	"math"

	"github.com/trouvaiilx/arcane-survivors/internal/types"
	"github.com/trouvaiilx/arcane-survivors/pkg/geom"
)

// MovePattern selects how a projectile advances each tick.
type MovePattern int

const (
	MoveLinear MovePattern = iota
	MoveArc
	MoveBoomerang
	MoveBounce
	MoveGroundSeek
)

func (m MovePattern) String() string {
	switch m {
	case MoveArc:
		return "arc"
	case MoveBoomerang:
		return "boomerang"
	case MoveBounce:
		return "bounce"
	case MoveGroundSeek:
		return "ground"
	default:
		return "linear"
	}
}

// ShapeKind selects the overlap test used for a projectile.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeRect
)

// Shape is a projectile's hit shape. Rect shapes are axis-aligned around Pos.
type Shape struct {
	Kind         ShapeKind
	HalfW, HalfH float64
}

// HookKind tags a composite effect fired on hit or expiry.
type HookKind int

const (
	// HookSplash damages every enemy within Radius for Fraction of the projectile damage.
	HookSplash HookKind = iota
	// HookShards releases Count linear shards in an even ring.
	HookShards
)

// Hook is a tagged on-hit/on-expire effect.
type Hook struct {
	Kind     HookKind
	Radius   float64
	Fraction float64
	Count    int
}

// Projectile is a moving or stationary hitbox spawned by a weapon.
type Projectile struct {
	Body
	WeaponID types.EntityID // weapon instance that fired it
	OwnerID  types.EntityID // weak reference, resolved through the registry

	Dir   geom.Vec2 // unit heading
	Speed float64
	Shape Shape

	Damage    float64
	Knockback float64

	Pierce      int // distinct enemies hit so far
	PierceLimit int // <= 0 means unlimited

	Age      float64
	Duration float64

	Pattern    MovePattern
	Gravity    float64
	ReturnTime float64
	Returning  bool
	Bounces    int
	MaxBounces int
	Target     geom.Vec2
	Landed     bool

	TickInterval float64 // > 0 makes the projectile re-hit on this interval
	TickTimer    float64

	HitSet   map[types.EntityID]struct{}
	Slow     *SlowSpec
	OnHit    []Hook
	OnExpire []Hook

	Invisible bool
	Expired   bool
}

// ProjectileSpec holds the named construction parameters of a projectile.
// Zero values fall back to the defaults noted per field.
type ProjectileSpec struct {
	WeaponID types.EntityID
	OwnerID  types.EntityID
	Pos      geom.Vec2
	Dir      geom.Vec2 // normalized; zero means geom.DefaultHeading
	Speed    float64
	Radius   float64 // default 6
	Shape    Shape

	Damage      float64
	Knockback   float64
	PierceLimit int
	Duration    float64 // default 1s

	Pattern      MovePattern
	Gravity      float64
	ReturnTime   float64
	MaxBounces   int
	Target       geom.Vec2
	TickInterval float64

	Slow      *SlowSpec
	OnHit     []Hook
	OnExpire  []Hook
	Invisible bool
}

// NewProjectile builds a projectile from spec, applying defaults.
func NewProjectile(spec ProjectileSpec) *Projectile {
	p := &Projectile{
		WeaponID:     spec.WeaponID,
		OwnerID:      spec.OwnerID,
		Dir:          spec.Dir.Normalize(),
		Speed:        spec.Speed,
		Shape:        spec.Shape,
		Damage:       spec.Damage,
		Knockback:    spec.Knockback,
		PierceLimit:  spec.PierceLimit,
		Duration:     spec.Duration,
		Pattern:      spec.Pattern,
		Gravity:      spec.Gravity,
		ReturnTime:   spec.ReturnTime,
		MaxBounces:   spec.MaxBounces,
		Target:       spec.Target,
		TickInterval: spec.TickInterval,
		Slow:         spec.Slow,
		OnHit:        spec.OnHit,
		OnExpire:     spec.OnExpire,
		Invisible:    spec.Invisible,
		HitSet:       make(map[types.EntityID]struct{}),
	}
	p.Radius = spec.Radius
	if p.Radius <= 0 {
		p.Radius = 6
	}
	if p.Duration <= 0 {
		p.Duration = 1
	}
	p.Place(spec.Pos)
	return p
}

func (p *Projectile) Alive() bool { return !p.Expired }

// BoundingRadius is the radius of the circle enclosing the hit shape.
func (p *Projectile) BoundingRadius() float64 {
	if p.Shape.Kind == ShapeRect {
		return math.Hypot(p.Shape.HalfW, p.Shape.HalfH)
	}
	return p.Radius
}

// Ground projectiles only hit once they have landed.
func (p *Projectile) Ground() bool { return p.Pattern == MoveGroundSeek }

func (p *Projectile) HasHit(id types.EntityID) bool {
	_, ok := p.HitSet[id]
	return ok
}

// RecordHit adds id to the hit-set, counts the pierce and reports whether the
// pierce limit is now reached.
func (p *Projectile) RecordHit(id types.EntityID) bool {
	p.HitSet[id] = struct{}{}
	p.Pierce++
	return p.PierceLimit > 0 && p.Pierce >= p.PierceLimit
}

func (p *Projectile) ClearHits() {
	clear(p.HitSet)
}

// Overlaps tests the hit shape against a circle.
func (p *Projectile) Overlaps(center geom.Vec2, radius float64) bool {
	if p.Shape.Kind == ShapeRect {
		dx := math.Abs(center.X - p.Pos.X)
		dy := math.Abs(center.Y - p.Pos.Y)
		return dx <= p.Shape.HalfW+radius && dy <= p.Shape.HalfH+radius
	}
	r := p.Radius + radius
	return geom.Dist2(center, p.Pos) <= r*r
}

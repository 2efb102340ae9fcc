// Package geom holds the 2D vector math shared by the simulation.
package geom

import (
	"math"

	"github.com/trouvaiilx/arcane-survivors/pkg/utils"
)

// DefaultHeading is used whenever a direction cannot be derived (zero-length vector).
var DefaultHeading = Vec2{X: 1, Y: 0}

// Vec2 is a world-space vector.
type Vec2 struct {
	X, Y float64
}

func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Cross returns the z component of the 3D cross product.
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }

func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }
func (v Vec2) Len2() float64 { return v.X*v.X + v.Y*v.Y }
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// IsFinite reports whether both components are finite.
func (v Vec2) IsFinite() bool {
	return utils.IsFinite(v.X) && utils.IsFinite(v.Y)
}

// NormalizeOr returns the unit vector of v, or fallback when v has no usable length.
func (v Vec2) NormalizeOr(fallback Vec2) Vec2 {
	l := v.Len()
	if l < 1e-9 || !utils.IsFinite(l) {
		return fallback
	}
	return Vec2{v.X / l, v.Y / l}
}

// Normalize returns the unit vector of v, falling back to DefaultHeading.
func (v Vec2) Normalize() Vec2 {
	return v.NormalizeOr(DefaultHeading)
}

// Rotate rotates v by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	s, c := math.Sincos(angle)
	return Vec2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// FromAngle returns the unit vector pointing at angle radians.
func FromAngle(angle float64) Vec2 {
	s, c := math.Sincos(angle)
	return Vec2{c, s}
}

// Dist2 is the squared distance between a and b.
func Dist2(a, b Vec2) float64 {
	return a.Sub(b).Len2()
}

// Dist is the distance between a and b.
func Dist(a, b Vec2) float64 {
	return a.Sub(b).Len()
}

// SegmentDistance splits the offset of p from a segment starting at origin with unit
// direction dir into the longitudinal distance along dir (dot product) and the
// perpendicular distance (cross product magnitude).
func SegmentDistance(origin, dir, p Vec2) (along, perp float64) {
	rel := p.Sub(origin)
	return rel.Dot(dir), math.Abs(dir.Cross(rel))
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Clamp bounds p to the rectangle.
func (r Rect) Clamp(p Vec2) Vec2 {
	return Vec2{utils.Clamp(p.X, r.MinX, r.MaxX), utils.Clamp(p.Y, r.MinY, r.MaxY)}
}

// Contains reports whether p lies inside the rectangle, edges included.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

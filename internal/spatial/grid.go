// Package spatial buckets entities into a uniform grid for radius queries.
package spatial

import (
	"math"

	"github.com/trouvaiilx/arcane-survivors/internal/types"
	"github.com/trouvaiilx/arcane-survivors/pkg/geom"
)

// Indexable is anything the grid can bucket.
type Indexable interface {
	EntityID() types.EntityID
	Center() geom.Vec2
	BoundingRadius() float64
	Alive() bool
}

type cellKey struct {
	X, Y int
}

// Grid is rebuilt from scratch once per tick rather than updated incrementally.
type Grid[T Indexable] struct {
	cellSize  float64
	cells     map[cellKey][]T
	maxRadius float64
}

func NewGrid[T Indexable](cellSize float64) *Grid[T] {
	if cellSize <= 0 {
		cellSize = 100
	}
	return &Grid[T]{
		cellSize: cellSize,
		cells:    make(map[cellKey][]T),
	}
}

func (g *Grid[T]) CellSize() float64 { return g.cellSize }

func (g *Grid[T]) key(p geom.Vec2) cellKey {
	return cellKey{int(math.Floor(p.X / g.cellSize)), int(math.Floor(p.Y / g.cellSize))}
}

// Rebuild clears the grid and inserts every live item once.
func (g *Grid[T]) Rebuild(items []T) {
	for k, bucket := range g.cells {
		g.cells[k] = bucket[:0]
	}
	g.maxRadius = 0
	for _, item := range items {
		if !item.Alive() || !item.Center().IsFinite() {
			continue
		}
		k := g.key(item.Center())
		g.cells[k] = append(g.cells[k], item)
		if r := item.BoundingRadius(); r > g.maxRadius {
			g.maxRadius = r
		}
	}
}

// MaxRadius is the largest bounding radius inserted by the last Rebuild.
// Callers add it to their own extent so a center-distance query cannot miss
// an item whose circle reaches into the query area.
func (g *Grid[T]) MaxRadius() float64 { return g.maxRadius }

// QueryRadius returns every live item whose center lies within r of (x, y).
// Items flagged dead after the last rebuild are filtered out.
func (g *Grid[T]) QueryRadius(x, y, r float64) []T {
	return g.AppendRadius(nil, x, y, r)
}

// AppendRadius is QueryRadius appending into dst.
func (g *Grid[T]) AppendRadius(dst []T, x, y, r float64) []T {
	if r < 0 || !geom.V(x, y).IsFinite() || !geom.V(0, r).IsFinite() {
		return dst
	}
	center := geom.V(x, y)
	c := g.key(center)
	ring := int(math.Ceil(r / g.cellSize))
	r2 := r * r
	for cy := c.Y - ring; cy <= c.Y+ring; cy++ {
		for cx := c.X - ring; cx <= c.X+ring; cx++ {
			for _, item := range g.cells[cellKey{cx, cy}] {
				if !item.Alive() {
					continue
				}
				if geom.Dist2(item.Center(), center) <= r2 {
					dst = append(dst, item)
				}
			}
		}
	}
	return dst
}

// Nearest returns the live item closest to p within r, if any.
func (g *Grid[T]) Nearest(p geom.Vec2, r float64, skip func(T) bool) (T, bool) {
	var best T
	found := false
	bestD := math.Inf(1)
	for _, item := range g.QueryRadius(p.X, p.Y, r) {
		if skip != nil && skip(item) {
			continue
		}
		if d := geom.Dist2(item.Center(), p); d < bestD {
			best, bestD, found = item, d, true
		}
	}
	return best, found
}

package entity

import "github.com/trouvaiilx/arcane-survivors/internal/types"

// Entity is the minimal surface a collection needs from its items.
type Entity interface {
	EntityID() types.EntityID
	SetEntityID(types.EntityID)
	Alive() bool
}

// Collection keeps one kind of entity in spawn order with an id index.
// Items are flagged dead by the systems and removed by Prune.
type Collection[T Entity] struct {
	items []T
	index map[types.EntityID]int
}

func NewCollection[T Entity]() *Collection[T] {
	return &Collection[T]{index: make(map[types.EntityID]int)}
}

func (c *Collection[T]) add(item T) {
	c.index[item.EntityID()] = len(c.items)
	c.items = append(c.items, item)
}

// Get returns the item with id, dead or alive.
func (c *Collection[T]) Get(id types.EntityID) (T, bool) {
	i, ok := c.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return c.items[i], true
}

// All returns every item in spawn order, including ones flagged for removal.
// Items added while ranging over the result are not part of it.
func (c *Collection[T]) All() []T { return c.items }

func (c *Collection[T]) Len() int { return len(c.items) }

// LiveCount counts items that are not flagged for removal.
func (c *Collection[T]) LiveCount() int {
	n := 0
	for _, item := range c.items {
		if item.Alive() {
			n++
		}
	}
	return n
}

// Oldest returns the earliest spawned live item accepted by keep.
func (c *Collection[T]) Oldest(keep func(T) bool) (T, bool) {
	for _, item := range c.items {
		if item.Alive() && (keep == nil || keep(item)) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Prune drops every flagged item, keeping spawn order. It returns the number removed.
func (c *Collection[T]) Prune() int {
	kept := c.items[:0]
	for _, item := range c.items {
		if item.Alive() {
			kept = append(kept, item)
		}
	}
	removed := len(c.items) - len(kept)
	if removed == 0 {
		return 0
	}
	var zero T
	for i := len(kept); i < len(c.items); i++ {
		c.items[i] = zero
	}
	c.items = kept
	clear(c.index)
	for i, item := range c.items {
		c.index[item.EntityID()] = i
	}
	return removed
}

// Reset empties the collection.
func (c *Collection[T]) Reset() {
	c.items = nil
	clear(c.index)
}

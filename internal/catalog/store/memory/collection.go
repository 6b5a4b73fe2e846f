package memory

import (
	"fmt"
	"slices"

	"realestate/pkg/platform/sentinel"
)

// collection keeps records by id and remembers insertion order.
type collection[K ~string, R any] struct {
	entity string
	key    func(R) K
	order  []K
	items  map[K]R
}

func newCollection[K ~string, R any](entity string, key func(R) K) *collection[K, R] {
	return &collection[K, R]{entity: entity, key: key, items: make(map[K]R)}
}

func (c *collection[K, R]) notFound(id K) error {
	return fmt.Errorf("%s %s: %w", c.entity, string(id), sentinel.ErrNotFound)
}

func (c *collection[K, R]) get(id K) (R, error) {
	rec, ok := c.items[id]
	if !ok {
		return rec, c.notFound(id)
	}
	return rec, nil
}

func (c *collection[K, R]) has(id K) bool {
	_, ok := c.items[id]
	return ok
}

func (c *collection[K, R]) insert(rec R) error {
	k := c.key(rec)
	if _, ok := c.items[k]; ok {
		return fmt.Errorf("%s: %w", c.entity, sentinel.ErrConflict)
	}
	c.items[k] = rec
	c.order = append(c.order, k)
	return nil
}

// insertMany is all-or-nothing on duplicate ids.
func (c *collection[K, R]) insertMany(recs []R) error {
	seen := make(map[K]struct{}, len(recs))
	for _, rec := range recs {
		k := c.key(rec)
		if _, dup := seen[k]; dup || c.has(k) {
			return fmt.Errorf("%s: %w", c.entity, sentinel.ErrConflict)
		}
		seen[k] = struct{}{}
	}
	for _, rec := range recs {
		k := c.key(rec)
		c.items[k] = rec
		c.order = append(c.order, k)
	}
	return nil
}

func (c *collection[K, R]) replace(rec R) error {
	k := c.key(rec)
	if !c.has(k) {
		return c.notFound(k)
	}
	c.items[k] = rec
	return nil
}

func (c *collection[K, R]) remove(id K) error {
	if !c.has(id) {
		return c.notFound(id)
	}
	delete(c.items, id)
	c.order = slices.DeleteFunc(c.order, func(k K) bool { return k == id })
	return nil
}

// inserted returns matching records in insertion order.
func (c *collection[K, R]) inserted(match func(R) bool) []R {
	out := []R{}
	for _, k := range c.order {
		if rec := c.items[k]; match == nil || match(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// sorted returns matching records ordered by id.
func (c *collection[K, R]) sorted(match func(R) bool) []R {
	out := c.inserted(match)
	slices.SortFunc(out, func(a, b R) int {
		ka, kb := c.key(a), c.key(b)
		switch {
		case ka < kb:
			return -1
		case ka > kb:
			return 1
		}
		return 0
	})
	return out
}

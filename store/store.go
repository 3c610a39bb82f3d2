// Package store provides the in-memory collections backing the API.
// Each collection is an id-keyed, insertion-ordered set of records
// guarded by its own lock; data does not survive a restart.
package store

import (
	"sync"
)

// Collection holds records of type T in insertion order, indexed by id.
// All methods are safe for concurrent use. Records are stored and
// returned by value, so mutation happens through Update, never through
// aliasing a returned record.
type Collection[T any] struct {
	mu    sync.RWMutex
	id    func(T) string
	items []T
	index map[string]int
}

// NewCollection creates an empty collection. The id function extracts
// the unique key from a record.
func NewCollection[T any](id func(T) string) *Collection[T] {
	return &Collection[T]{
		id:    id,
		index: make(map[string]int),
	}
}

// List returns a snapshot of every record in insertion order. The
// returned slice is never nil.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Find returns the record with the given id.
func (c *Collection[T]) Find(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	pos, ok := c.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return c.items[pos], true
}

// Insert appends a record. It reports false if the id is already taken.
func (c *Collection[T]) Insert(item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.id(item)
	if _, exists := c.index[id]; exists {
		return false
	}
	c.index[id] = len(c.items)
	c.items = append(c.items, item)
	return true
}

// Update replaces the record with the given id in place, keeping its
// position. The replacement must carry the same id.
func (c *Collection[T]) Update(id string, item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	pos, ok := c.index[id]
	if !ok || c.id(item) != id {
		return false
	}
	c.items[pos] = item
	return true
}

// RemoveIf removes the record with the given id when guard accepts it.
// Lookup, guard and removal happen in one critical section, so the
// decision cannot race a concurrent update to the same record. It
// returns the record as it was at decision time.
func (c *Collection[T]) RemoveIf(id string, guard func(T) bool) (item T, found, removed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	pos, ok := c.index[id]
	if !ok {
		return item, false, false
	}
	item = c.items[pos]
	if !guard(item) {
		return item, true, false
	}
	c.items = append(c.items[:pos], c.items[pos+1:]...)
	delete(c.index, id)
	for i := pos; i < len(c.items); i++ {
		c.index[c.id(c.items[i])] = i
	}
	return item, true, true
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

package state

import (
	"sync"
	"time"
)

// now is the clock used for system-assigned timestamps. Tests may swap it.
var now = func() time.Time { return time.Now().UTC() }

// Entity is any record type held in a Collection.
type Entity interface {
	EntityID() string
}

// Collection is one normalized in-memory collection of records, keyed by
// unique ID and kept in insertion order. It also tracks the status of the
// most recent asynchronous fetch against the server.
//
// All methods are safe for concurrent use: command goroutines and the
// background refresher mutate collections while the UI reads them.
type Collection[T Entity] struct {
	mu      sync.RWMutex
	items   []T
	loading bool
	err     string

	// generation increments on every BeginFetch. A CompleteFetch whose
	// generation no longer matches is stale and is discarded instead of
	// overwriting newer state.
	generation uint64
}

// NewCollection creates a collection seeded with the given items.
func NewCollection[T Entity](items ...T) *Collection[T] {
	c := &Collection[T]{}
	c.items = append(c.items, items...)
	return c
}

// Items returns a copy of the collection in insertion order.
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Get returns the record with the given ID, if present.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if item.EntityID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Append adds a record to the end of the collection.
func (c *Collection[T]) Append(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
}

// Mutate applies fn to the record with the given ID. It reports whether the
// record was found; a miss leaves the collection unchanged so callers can
// distinguish "absent" from "applied".
func (c *Collection[T]) Mutate(id string, fn func(*T)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].EntityID() == id {
			fn(&c.items[i])
			return true
		}
	}
	return false
}

// Remove deletes the record with the given ID, reporting whether it was
// present.
func (c *Collection[T]) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].EntityID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Replace swaps the entire collection for the given items.
func (c *Collection[T]) Replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make([]T, len(items))
	copy(c.items, items)
}

// Loading reports whether a fetch is in flight.
func (c *Collection[T]) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// Err returns the error message of the most recent failed operation, or "".
func (c *Collection[T]) Err() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.err
}

// SetError records an operation failure for the UI to surface. Pass "" to
// clear.
func (c *Collection[T]) SetError(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = msg
}

// BeginFetch marks a fetch as in flight and returns its generation token.
// Starting a new fetch invalidates any still-running older one.
func (c *Collection[T]) BeginFetch() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.loading = true
	c.generation++
	return c.generation
}

// CompleteFetch finishes the fetch identified by gen. A stale generation is
// discarded and reported as not applied. On error the collection keeps its
// last-known-good items and only the error message is recorded.
func (c *Collection[T]) CompleteFetch(gen uint64, items []T, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		return false
	}

	c.loading = false
	if err != nil {
		c.err = err.Error()
		return true
	}

	c.err = ""
	c.items = make([]T, len(items))
	copy(c.items, items)
	return true
}

// Package store implements the in-memory entity store backing the hostel
// dashboards: typed keyed collections, a per-collection subscription bus,
// and a monotonic id generator. All state is volatile and reseeded at
// process start.
package store

import "sync"

// Entity is anything a Collection can hold. EntityID must be unique
// within a collection and stable for the entity's lifetime.
type Entity interface {
	EntityID() string
}

// Collection is a mutex-guarded ordered set of entities of one type.
// Reads return copies; callers never see the internal slice. Every
// successful mutation synchronously notifies subscribers before the
// mutating call returns.
type Collection[T Entity] struct {
	mu    sync.RWMutex
	key   string
	items []T
	subs  *subscribers[T]
	feed  *changeFeed
}

// NewCollection creates an empty collection registered under key on the
// store-wide change feed. A nil feed is allowed for standalone use.
func NewCollection[T Entity](key string, feed *changeFeed) *Collection[T] {
	return &Collection[T]{
		key:  key,
		subs: newSubscribers[T](),
		feed: feed,
	}
}

// Key returns the collection's name in the store
func (c *Collection[T]) Key() string { return c.key }

// List returns a copy of the collection in insertion order
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Find returns the item with the given id. The second return value is
// false when the id is unknown; absence is not an error.
func (c *Collection[T]) Find(id string) (T, bool) {
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

// First returns the first item matching the predicate
func (c *Collection[T]) First(match func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Filter returns all items matching the predicate, in insertion order
func (c *Collection[T]) Filter(match func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []T
	for _, item := range c.items {
		if match(item) {
			out = append(out, item)
		}
	}
	return out
}

// Replace swaps the entire collection and notifies subscribers
func (c *Collection[T]) Replace(items []T) {
	c.mu.Lock()
	c.items = make([]T, len(items))
	copy(c.items, items)
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snapshot)
}

// Add appends an item and notifies subscribers. The caller must have
// assigned a unique id already (use Store.NextID).
func (c *Collection[T]) Add(item T) {
	c.mu.Lock()
	c.items = append(c.items, item)
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snapshot)
}

// Update applies the mutator to the item with the given id. It returns
// false when the id is unknown; in that case nothing changes and no
// notification is sent. This explicit not-found signal is the uniform
// policy for all collections.
func (c *Collection[T]) Update(id string, mutate func(*T)) bool {
	c.mu.Lock()
	idx := -1
	for i, item := range c.items {
		if item.EntityID() == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.mu.Unlock()
		return false
	}
	mutate(&c.items[idx])
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snapshot)
	return true
}

// Delete removes the item with the given id. Subscribers are notified
// whether or not anything matched; the return value reports the match.
func (c *Collection[T]) Delete(id string) bool {
	c.mu.Lock()
	matched := false
	kept := c.items[:0]
	for _, item := range c.items {
		if item.EntityID() == id {
			matched = true
			continue
		}
		kept = append(kept, item)
	}
	c.items = kept
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snapshot)
	return matched
}

// Subscribe registers a callback invoked with a snapshot after every
// notification-bearing mutation. Callbacks run synchronously on the
// mutating goroutine, in registration order. Registering the same
// function twice yields two notifications per mutation. There is no
// replay of past mutations.
func (c *Collection[T]) Subscribe(cb func([]T)) Subscription {
	return c.subs.add(cb)
}

// Unsubscribe removes a previously registered callback by its handle.
// Go functions are not comparable, so removal is by Subscription token.
func (c *Collection[T]) Unsubscribe(sub Subscription) {
	c.subs.remove(sub)
}

func (c *Collection[T]) snapshotLocked() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) notify(snapshot []T) {
	c.subs.notify(snapshot)
	if c.feed != nil {
		c.feed.publish(ChangeEvent{Collection: c.key, Items: toAny(snapshot)})
	}
}

func toAny[T Entity](items []T) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

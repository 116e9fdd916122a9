package moonglide

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"
)

// Cache keeps recently used Snapshots keyed by Unix second, so repeated
// queries for the same instant share one evaluation and one phase search.
// It is safe for concurrent use.
type Cache struct {
	snapshots *lru.Cache
	opts      []Option
}

// NewCache returns a Cache holding at most size Snapshots. opts are applied
// to every Snapshot the cache creates.
func NewCache(size int, opts ...Option) (*Cache, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("snapshot cache: %w", err)
	}
	return &Cache{snapshots: c, opts: opts}, nil
}

// Get returns the Snapshot for epochSeconds, evaluating it on a miss.
func (c *Cache) Get(epochSeconds int64) (*Snapshot, error) {
	if v, ok := c.snapshots.Get(epochSeconds); ok {
		return v.(*Snapshot), nil
	}

	s, err := New(epochSeconds, c.opts...)
	if err != nil {
		return nil, err
	}

	// Another goroutine may have raced us; keep whichever landed first so
	// callers share its quarters.
	if prev, ok, _ := c.snapshots.PeekOrAdd(epochSeconds, s); ok {
		return prev.(*Snapshot), nil
	}
	return s, nil
}

// At returns the Snapshot for t, truncated to the second.
func (c *Cache) At(t time.Time) (*Snapshot, error) {
	return c.Get(t.Unix())
}

// Len returns the number of cached Snapshots.
func (c *Cache) Len() int { return c.snapshots.Len() }

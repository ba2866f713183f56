// Package cache provides a read-through value cache with TTL expiry
package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Loader fetches a fresh value
type Loader[T any] func(ctx context.Context) (T, error)

// ReadThrough caches the result of a single loader. Concurrent misses share
// one load; a failed load is not cached.
type ReadThrough[T any] struct {
	load Loader[T]
	ttl  time.Duration
	now  func() time.Time

	mu      sync.RWMutex
	val     T
	expires time.Time
	loaded  bool
	gen     uint64

	sf singleflight.Group
}

// NewReadThrough wraps load. A ttl <= 0 caches until Invalidate.
func NewReadThrough[T any](load Loader[T], ttl time.Duration) *ReadThrough[T] {
	return &ReadThrough[T]{load: load, ttl: ttl, now: time.Now}
}

// Get returns the cached value or loads it
func (c *ReadThrough[T]) Get(ctx context.Context) (T, error) {
	c.mu.RLock()
	if c.fresh() {
		v := c.val
		c.mu.RUnlock()
		return v, nil
	}
	gen := c.gen
	c.mu.RUnlock()

	// the load outlives any one caller; each caller waits on its own ctx
	ch := c.sf.DoChan("load", func() (any, error) {
		val, err := c.load(context.WithoutCancel(ctx))
		if err != nil {
			return val, err
		}
		c.mu.Lock()
		// an Invalidate during the load wins; serve the value but do not keep it
		if c.gen == gen {
			c.val, c.loaded = val, true
			c.expires = c.now().Add(c.ttl)
		}
		c.mu.Unlock()
		return val, nil
	})
	var zero T
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return zero, r.Err
		}
		return r.Val.(T), nil
	}
}

// Invalidate drops the cached value so the next Get reloads
func (c *ReadThrough[T]) Invalidate() {
	c.mu.Lock()
	var zero T
	c.val, c.loaded = zero, false
	c.gen++
	c.mu.Unlock()
	c.sf.Forget("load")
}

func (c *ReadThrough[T]) fresh() bool {
	if !c.loaded {
		return false
	}
	return c.ttl <= 0 || c.now().Before(c.expires)
}

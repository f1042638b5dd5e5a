package memcache

import (
	"sync"
	"time"

	"cryptoquote/pkg/types/cache"
)

var _ cache.Expirable[string, any] = (*Cache[string, any])(nil)

type entry[V any] struct {
	value    V
	lastSeen time.Time
}

// Cache is an in-memory map whose reads count as use. Idle entries are
// dropped by EvictIdle.
type Cache[K comparable, V any] struct {
	data  map[K]*entry[V]
	mutex sync.Mutex
	now   func() time.Time
}

type Option func(*cacheOptions)

type cacheOptions struct {
	now func() time.Time
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(o *cacheOptions) {
		o.now = now
	}
}

func New[K comparable, V any](opts ...Option) *Cache[K, V] {
	o := cacheOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Cache[K, V]{
		data: make(map[K]*entry[V]),
		now:  o.now,
	}
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	e, ok := c.data[key]
	if !ok {
		var zero V
		return zero, false
	}
	e.lastSeen = c.now()
	return e.value, true
}

// GetOrCreate returns the value under key, building and storing it with
// create when absent. create runs under the cache lock.
func (c *Cache[K, V]) GetOrCreate(key K, create func() (V, error)) (V, bool, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if e, ok := c.data[key]; ok {
		e.lastSeen = c.now()
		return e.value, false, nil
	}
	v, err := create()
	if err != nil {
		var zero V
		return zero, false, err
	}
	c.data[key] = &entry[V]{value: v, lastSeen: c.now()}
	return v, true, nil
}

func (c *Cache[K, V]) Delete(key K) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.data, key)
}

func (c *Cache[K, V]) Keys() []K {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	keys := make([]K, 0, len(c.data))
	for k := range c.data {
		keys = append(keys, k)
	}
	return keys
}

// EvictIdle removes entries unused for longer than maxIdle and returns them.
func (c *Cache[K, V]) EvictIdle(maxIdle time.Duration) []V {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	cutoff := c.now().Add(-maxIdle)
	var evicted []V
	for k, e := range c.data {
		if e.lastSeen.Before(cutoff) {
			evicted = append(evicted, e.value)
			delete(c.data, k)
		}
	}
	return evicted
}

func (c *Cache[K, V]) Len() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return len(c.data)
}

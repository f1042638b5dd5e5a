package cache

import "time"

type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	GetOrCreate(key K, create func() (V, error)) (V, bool, error)
	Delete(key K)
	Keys() []K
	Len() int
}

// Expirable is a cache whose entries remember when they were last used.
type Expirable[K comparable, V any] interface {
	Cache[K, V]
	EvictIdle(maxIdle time.Duration) []V
}

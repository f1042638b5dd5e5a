package memcache

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func put[K comparable, V any](t *testing.T, c *Cache[K, V], key K, value V) {
	t.Helper()
	_, _, err := c.GetOrCreate(key, func() (V, error) { return value, nil })
	require.NoError(t, err)
}

func TestCache_Get(t *testing.T) {
	c := New[string, int]()

	put(t, c, "a", 1)
	put(t, c, "b", 2)

	val, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, val)

	_, ok = c.Get("c")
	assert.False(t, ok)
}

func TestCache_Delete(t *testing.T) {
	c := New[string, int]()

	put(t, c, "a", 1)
	c.Delete("a")

	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestCache_Keys(t *testing.T) {
	c := New[string, int]()

	put(t, c, "a", 1)
	put(t, c, "b", 2)

	keys := c.Keys()
	assert.Len(t, keys, 2)
	assert.Contains(t, keys, "a")
	assert.Contains(t, keys, "b")
}

func TestCache_GetOrCreate(t *testing.T) {
	c := New[string, int]()
	calls := 0
	create := func() (int, error) {
		calls++
		return 42, nil
	}

	v, created, err := c.GetOrCreate("s1", create)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 42, v)

	v, created, err = c.GetOrCreate("s1", create)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, calls)
}

func TestCache_GetOrCreate_Error(t *testing.T) {
	c := New[string, int]()
	boom := errors.New("boom")

	_, created, err := c.GetOrCreate("s1", func() (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)
	assert.False(t, created)
	assert.Equal(t, 0, c.Len())
}

func TestCache_EvictIdle(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	c := New[string, int](WithClock(clock.Now))

	put(t, c, "old", 1)
	put(t, c, "touched", 2)

	clock.Advance(20 * time.Minute)
	_, ok := c.Get("touched")
	require.True(t, ok)
	put(t, c, "new", 3)

	clock.Advance(15 * time.Minute)
	evicted := c.EvictIdle(30 * time.Minute)

	assert.Equal(t, []int{1}, evicted)
	assert.ElementsMatch(t, []string{"touched", "new"}, c.Keys())
}

func TestCache_ConcurrentAccess(t *testing.T) {
	c := New[int, int]()
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, _ = c.GetOrCreate(i, func() (int, error) { return i * 2, nil })
		}(i)
	}

	wg.Wait()
	assert.Equal(t, 100, c.Len())

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			val, ok := c.Get(i)
			assert.True(t, ok)
			assert.Equal(t, i*2, val)
		}(i)
	}

	wg.Wait()
}

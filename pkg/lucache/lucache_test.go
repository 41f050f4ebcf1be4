package lucache_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xflash-panda/hangman-engine/pkg/lucache"
)

func TestFetchMiss(t *testing.T) {
	c := lucache.New[string, int](4)
	_, ok := c.Fetch("missing")
	assert.False(t, ok)
}

func TestStoreThenFetch(t *testing.T) {
	c := lucache.New[string, int](4)
	c.Store("a", 1)
	v, ok := c.Fetch("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestCapacityNeverExceeded(t *testing.T) {
	c := lucache.New[int, int](3)
	for i := 0; i < 10; i++ {
		c.Store(i, i*i)
		assert.LessOrEqual(t, c.Len(), 3)
	}
	assert.Equal(t, 3, c.Len())
}

func TestEvictsLowestHitCount(t *testing.T) {
	c := lucache.New[string, int](2)
	c.Store("a", 1)
	c.Store("b", 2)
	// Give "a" two hits, "b" zero hits.
	c.Fetch("a")
	c.Fetch("a")

	c.Store("c", 3) // should evict "b" (fewer hits than "a")

	_, aOK := c.Fetch("a")
	_, bOK := c.Fetch("b")
	_, cOK := c.Fetch("c")
	assert.True(t, aOK)
	assert.False(t, bOK, "b should have been evicted")
	assert.True(t, cOK)
}

func TestEvictsOldestOnHitCountTie(t *testing.T) {
	c := lucache.New[string, int](2)
	c.Store("a", 1)
	c.Store("b", 2)
	// Neither fetched: both have zero hits, "a" is older.

	c.Store("c", 3) // should evict "a" (oldest among zero-hit entries)

	_, aOK := c.Fetch("a")
	_, bOK := c.Fetch("b")
	_, cOK := c.Fetch("c")
	assert.False(t, aOK, "a should have been evicted")
	assert.True(t, bOK)
	assert.True(t, cOK)
}

func TestStoreExistingKeyOverwritesWithoutEviction(t *testing.T) {
	c := lucache.New[string, int](2)
	c.Store("a", 1)
	c.Store("b", 2)
	c.Store("a", 100)
	assert.Equal(t, 2, c.Len())
	v, ok := c.Fetch("a")
	assert.True(t, ok)
	assert.Equal(t, 100, v)
}

func TestZeroCapacityNeverStores(t *testing.T) {
	c := lucache.New[string, int](0)
	c.Store("a", 1)
	assert.Equal(t, 0, c.Len())
	_, ok := c.Fetch("a")
	assert.False(t, ok)
}

func TestNegativeCapacityTreatedAsZero(t *testing.T) {
	c := lucache.New[string, int](-5)
	c.Store("a", 1)
	assert.Equal(t, 0, c.Len())
}

func TestConcurrentAccess(t *testing.T) {
	c := lucache.New[int, int](64)
	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Store(i%64, i)
			c.Fetch(i % 64)
		}(i)
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Len(), 64)
}

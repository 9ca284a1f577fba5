package cache

import (
	"sync"
	"testing"
)

func TestCacheGetSet(t *testing.T) {
	c := New[string, int](4)
	if _, ok := c.Get("a"); ok {
		t.Fatal("Get on empty cache should miss")
	}
	c.Set("a", 1)
	c.Set("a", 2)
	if v, ok := c.Get("a"); !ok || v != 2 {
		t.Errorf("Get(a) = %d, %v; want 2, true", v, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, int](2)
	c.Set(1, 10)
	c.Set(2, 20)
	c.Get(1) // 2 is now the oldest
	c.Set(3, 30)

	if _, ok := c.Get(2); ok {
		t.Error("key 2 should have been evicted")
	}
	for _, k := range []int{1, 3} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("key %d should still be cached", k)
		}
	}
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}
}

func TestCacheUnlimited(t *testing.T) {
	c := New[int, int](0)
	for i := range 100 {
		c.Set(i, i)
	}
	if c.Len() != 100 {
		t.Errorf("Len = %d, want 100", c.Len())
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[int, []int](8)
	calls := 0
	create := func() []int {
		calls++
		return []int{1, 2, 3}
	}
	a := c.GetOrCreate(5, create)
	b := c.GetOrCreate(5, create)
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
	if &a[0] != &b[0] {
		t.Error("second call should return the cached slice")
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[int, int](16)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				k := (g + i) % 32
				c.GetOrCreate(k, func() int { return k * k })
				if v, ok := c.Get(k); ok && v != k*k {
					t.Errorf("Get(%d) = %d, want %d", k, v, k*k)
				}
			}
		}()
	}
	wg.Wait()
	if c.Len() > 16 {
		t.Errorf("Len = %d, want <= 16", c.Len())
	}
}

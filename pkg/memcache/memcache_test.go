package memcache

import (
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time { return f.t }

func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestCache() (*Cache, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	return NewWithClock(clock.now), clock
}

func TestTryGet_Missing(t *testing.T) {
	c, _ := newTestCache()

	if _, ok := c.TryGet("absent"); ok {
		t.Fatal("expected miss for absent key")
	}
}

func TestSetAndGet(t *testing.T) {
	c, _ := newTestCache()
	c.Set("k", 42, Options{AbsoluteTTL: time.Minute})

	v, ok := c.TryGet("k")
	if !ok {
		t.Fatal("expected hit")
	}
	if v.(int) != 42 {
		t.Errorf("got %v, want 42", v)
	}
}

func TestAbsoluteExpiration(t *testing.T) {
	c, clock := newTestCache()
	c.Set("k", "v", Options{AbsoluteTTL: 30 * time.Minute})

	clock.advance(29 * time.Minute)
	if _, ok := c.TryGet("k"); !ok {
		t.Fatal("entry must survive before absolute deadline")
	}

	clock.advance(2 * time.Minute)
	if _, ok := c.TryGet("k"); ok {
		t.Fatal("entry must be evicted after absolute deadline")
	}
}

func TestSlidingExpiration_TouchedByReads(t *testing.T) {
	c, clock := newTestCache()
	c.Set("k", "v", Options{AbsoluteTTL: 30 * time.Minute, SlidingTTL: 10 * time.Minute})

	// Каждое чтение продлевает скользящий дедлайн
	for i := 0; i < 3; i++ {
		clock.advance(9 * time.Minute)
		if _, ok := c.TryGet("k"); !ok {
			t.Fatalf("entry must survive touched reads, step %d", i)
		}
	}

	// 27 минут прошло, абсолютный дедлайн 30 минут срабатывает первым
	clock.advance(4 * time.Minute)
	if _, ok := c.TryGet("k"); ok {
		t.Fatal("absolute deadline must win over touched sliding deadline")
	}
}

func TestSlidingExpiration_IdleEvicts(t *testing.T) {
	c, clock := newTestCache()
	c.Set("k", "v", Options{AbsoluteTTL: 30 * time.Minute, SlidingTTL: 10 * time.Minute})

	clock.advance(11 * time.Minute)
	if _, ok := c.TryGet("k"); ok {
		t.Fatal("idle entry must be evicted by sliding deadline")
	}
}

func TestSet_ResetsPolicy(t *testing.T) {
	c, clock := newTestCache()
	c.Set("k", 1, Options{AbsoluteTTL: time.Minute})

	clock.advance(50 * time.Second)
	c.Set("k", 2, Options{AbsoluteTTL: time.Minute})

	clock.advance(30 * time.Second)
	v, ok := c.TryGet("k")
	if !ok {
		t.Fatal("re-set entry must start a fresh absolute deadline")
	}
	if v.(int) != 2 {
		t.Errorf("got %v, want 2", v)
	}
}

func TestDelete(t *testing.T) {
	c, _ := newTestCache()
	c.Set("k", "v", Options{AbsoluteTTL: time.Minute})
	c.Delete("k")

	if _, ok := c.TryGet("k"); ok {
		t.Fatal("expected miss after delete")
	}
}

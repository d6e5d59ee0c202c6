package memcache

import (
	"testing"
	"time"
)

func TestPlanCacheSetGet(t *testing.T) {
	cache := NewPlanCache()

	cache.Set("k1", "plan-a", time.Minute)

	got, ok := cache.Get("k1")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got.(string) != "plan-a" {
		t.Errorf("got %v, want plan-a", got)
	}

	if _, ok := cache.Get("missing"); ok {
		t.Error("unexpected hit for missing key")
	}
}

func TestPlanCacheExpiry(t *testing.T) {
	cache := NewPlanCache()

	cache.Set("k1", "plan-a", 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	if _, ok := cache.Get("k1"); ok {
		t.Error("expected entry to expire")
	}
}

func TestPlanCacheOverwrite(t *testing.T) {
	cache := NewPlanCache()

	cache.Set("k1", "old", time.Minute)
	cache.Set("k1", "new", time.Minute)

	got, ok := cache.Get("k1")
	if !ok || got.(string) != "new" {
		t.Errorf("got (%v, %v), want (new, true)", got, ok)
	}
	if cache.Len() != 1 {
		t.Errorf("Len() = %d, want 1", cache.Len())
	}
}

package memcache

import (
	"sync"
	"time"
)

// PlanCacheStore holds generated itineraries keyed by a preferences hash.
// Generation is deterministic on the mock path, so identical requests can be
// served without re-synthesizing the plan.
type PlanCacheStore interface {
	Set(key string, plan interface{}, ttl time.Duration)
	Get(key string) (interface{}, bool)
	Len() int
}

type planEntry struct {
	plan      interface{}
	expiresAt time.Time
}

type PlanCache struct {
	mu   sync.RWMutex
	data map[string]planEntry
}

func NewPlanCache() *PlanCache {
	return &PlanCache{
		data: make(map[string]planEntry),
	}
}

func (s *PlanCache) Set(key string, plan interface{}, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = planEntry{
		plan:      plan,
		expiresAt: time.Now().Add(ttl),
	}

	// Opportunistic cleanup once the map grows large.
	if len(s.data) > 1000 {
		now := time.Now()
		for k, e := range s.data {
			if now.After(e.expiresAt) {
				delete(s.data, k)
			}
		}
	}
}

func (s *PlanCache) Get(key string) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[key]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.plan, true
}

func (s *PlanCache) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

package memcache_fx

import (
	"go.uber.org/fx"
	mem "travelbuddy/pkg/memcache"
)

var Module = fx.Provide(providePlanCache)

func providePlanCache() mem.PlanCacheStore {
	return mem.NewPlanCache()
}

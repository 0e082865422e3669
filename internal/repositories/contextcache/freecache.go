package contextcache

import (
	"sync"
	"time"

	"github.com/framesight/framesight/pkg/inmemorycache"
	"github.com/framesight/framesight/pkg/metric"
	"github.com/rs/zerolog/log"
)

var (
	cacheDatabase Database
	once          sync.Once
)

// ContextCacheName is the named in-memory cache bootstrap registers for v1.
const ContextCacheName = "context_cache_v1"

type FreeCache struct {
	cache inmemorycache.InMemoryCache
}

func initFreeCache() Database {
	if cacheDatabase == nil {
		once.Do(func() {
			cache, err := inmemorycache.InstanceByName(ContextCacheName)
			if err != nil {
				log.Panic().Msgf("Error getting context cache instance: %v", err)
			}
			cacheDatabase = &FreeCache{cache: cache}
		})
	}
	return cacheDatabase
}

func (f *FreeCache) Get(key string, metricTags []string) ([]byte, bool) {
	startTime := time.Now()
	byteResponse, err := f.cache.Get([]byte(key))
	if err != nil {
		metric.Incr("context_cache_miss", metricTags)
		return nil, false
	}
	metric.Incr("context_cache_hit", metricTags)
	metric.Timing("context_cache_get_latency", time.Since(startTime), metricTags)
	return byteResponse, true
}

func (f *FreeCache) SetEx(key string, value []byte, ttlSeconds int, metricTags []string) {
	if err := f.cache.SetEx([]byte(key), value, ttlSeconds); err != nil {
		metric.Incr("context_cache_set_failure", metricTags)
		log.Error().Msgf("Error caching context for key %s: %v", key, err)
		return
	}
	metric.Incr("context_cache_set", metricTags)
}

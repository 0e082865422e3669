package querycache

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/framesight/framesight/internal/repositories"
	"github.com/framesight/framesight/pkg/inmemorycache"
	"github.com/framesight/framesight/pkg/metric"
	"github.com/rs/zerolog/log"
)

var (
	cacheDatabase Database
	once          sync.Once
)

// QueryCacheName is the named in-memory cache bootstrap registers for v1.
const QueryCacheName = "query_cache_v1"

type FreeCache struct {
	cache inmemorycache.InMemoryCache
}

func initFreeCache() Database {
	if cacheDatabase == nil {
		once.Do(func() {
			cache, err := inmemorycache.InstanceByName(QueryCacheName)
			if err != nil {
				log.Panic().Msgf("Error getting query cache instance: %v", err)
			}
			cacheDatabase = &FreeCache{cache: cache}
		})
	}
	return cacheDatabase
}

func (f *FreeCache) Get(eventID, query string, metricTags []string) (*repositories.SelectionResult, bool) {
	startTime := time.Now()
	byteResponse, err := f.cache.Get([]byte(CacheKey(eventID, query)))
	if err != nil {
		metric.Incr("query_cache_miss", metricTags)
		return nil, false
	}
	var result repositories.SelectionResult
	if err := json.Unmarshal(byteResponse, &result); err != nil {
		metric.Incr("query_cache_decode_failure", metricTags)
		log.Error().Msgf("Error decoding cached selection for event %s: %v", eventID, err)
		return nil, false
	}
	metric.Incr("query_cache_hit", metricTags)
	metric.Timing("query_cache_get_latency", time.Since(startTime), metricTags)
	return &result, true
}

func (f *FreeCache) Put(eventID, query string, result *repositories.SelectionResult, ttlSeconds int, metricTags []string) {
	startTime := time.Now()
	valueInBytes, err := json.Marshal(result)
	if err != nil {
		metric.Incr("query_cache_encode_failure", metricTags)
		log.Error().Msgf("Error encoding selection for event %s: %v", eventID, err)
		return
	}
	if err := f.cache.SetEx([]byte(CacheKey(eventID, query)), valueInBytes, ttlSeconds); err != nil {
		metric.Incr("query_cache_set_failure", metricTags)
		log.Error().Msgf("Error caching selection for event %s: %v", eventID, err)
		return
	}
	metric.Incr("query_cache_set", metricTags)
	metric.Timing("query_cache_set_latency", time.Since(startTime), metricTags)
}

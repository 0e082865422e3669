package querycache

import (
	"context"
	"encoding/json"
	"math/rand"
	"sync"
	"time"

	"github.com/framesight/framesight/internal/repositories"
	"github.com/framesight/framesight/pkg/infra"
	"github.com/framesight/framesight/pkg/metric"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var (
	redisDatabase Database
	redisOnce     sync.Once
)

// Redis is the distributed query cache, shared by all serving replicas.
type Redis struct {
	client *redis.Client
}

func initRedisCache() Database {
	if redisDatabase == nil {
		redisOnce.Do(func() {
			infra.InitRedis()
			redisDatabase = &Redis{client: infra.GetRedisClient()}
		})
	}
	return redisDatabase
}

func (r *Redis) Get(eventID, query string, metricTags []string) (*repositories.SelectionResult, bool) {
	startTime := time.Now()
	val, err := r.client.Get(context.Background(), CacheKey(eventID, query)).Bytes()
	if err == redis.Nil {
		metric.Incr("query_cache_miss", metricTags)
		return nil, false
	}
	if err != nil {
		// Backend failure is a miss, never fatal.
		metric.Incr("query_cache_get_failure", metricTags)
		log.Error().Msgf("Error fetching selection from distributed cache for event %s: %v", eventID, err)
		return nil, false
	}
	var result repositories.SelectionResult
	if err := json.Unmarshal(val, &result); err != nil {
		metric.Incr("query_cache_decode_failure", metricTags)
		log.Error().Msgf("Error decoding cached selection for event %s: %v", eventID, err)
		return nil, false
	}
	metric.Incr("query_cache_hit", metricTags)
	metric.Timing("query_cache_get_latency", time.Since(startTime), metricTags)
	return &result, true
}

func (r *Redis) Put(eventID, query string, result *repositories.SelectionResult, ttlSeconds int, metricTags []string) {
	startTime := time.Now()
	valueInBytes, err := json.Marshal(result)
	if err != nil {
		metric.Incr("query_cache_encode_failure", metricTags)
		log.Error().Msgf("Error encoding selection for event %s: %v", eventID, err)
		return
	}
	finalTTL := getFinalTTLWithJitter(ttlSeconds)
	err = r.client.Set(context.Background(), CacheKey(eventID, query), valueInBytes,
		time.Second*time.Duration(finalTTL)).Err()
	if err != nil {
		metric.Incr("query_cache_set_failure", metricTags)
		log.Error().Msgf("Error persisting selection to distributed cache for event %s: %v", eventID, err)
		return
	}
	metric.Incr("query_cache_set", metricTags)
	metric.Timing("query_cache_set_latency", time.Since(startTime), metricTags)
}

func getFinalTTLWithJitter(ttl int) int {
	jitterPercent := 10
	jitterRange := ttl * jitterPercent / 100
	jitter := rand.Intn(2*jitterRange+1) - jitterRange
	finalTTL := ttl + jitter

	if finalTTL < 1 {
		finalTTL = ttl
	}
	return finalTTL
}

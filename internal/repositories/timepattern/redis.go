package timepattern

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/framesight/framesight/pkg/infra"
	"github.com/framesight/framesight/pkg/metric"
)

const keyPrefix = "time_pattern:"

var (
	redisService Service
	redisOnce    sync.Once
)

// Redis reads learned per-camera hourly activity patterns. Patterns are
// written by the offline aggregation job; an absent key means no pattern has
// been learned for that hour yet.
type Redis struct {
	client *redis.Client
}

func initRedisService() Service {
	if redisService == nil {
		redisOnce.Do(func() {
			infra.InitRedis()
			redisService = &Redis{client: infra.GetRedisClient()}
		})
	}
	return redisService
}

func (r *Redis) ByCameraHour(ctx context.Context, cameraID string, hour int) (*Pattern, error) {
	tags := metric.BuildTag(metric.NewTag(metric.TagCamera, cameraID))
	val, err := r.client.Get(ctx, keyPrefix+cameraID+":"+strconv.Itoa(hour)).Bytes()
	if err == redis.Nil {
		metric.Incr("time_pattern_miss", tags)
		return nil, nil
	}
	if err != nil {
		metric.Incr("time_pattern_fetch_failure", tags)
		return nil, err
	}
	var pattern Pattern
	if err := json.Unmarshal(val, &pattern); err != nil {
		metric.Incr("time_pattern_decode_failure", tags)
		return nil, err
	}
	return &pattern, nil
}

package feedback

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/framesight/framesight/pkg/infra"
	"github.com/framesight/framesight/pkg/metric"
)

const keyPrefix = "fb:"

var (
	redisStore Store
	redisOnce  sync.Once
)

// Redis reads the per-camera feedback list maintained by the ingestion path.
// Newest entries are at the head of the list.
type Redis struct {
	client *redis.Client
}

func initRedisStore() Store {
	if redisStore == nil {
		redisOnce.Do(func() {
			infra.InitRedis()
			redisStore = &Redis{client: infra.GetRedisClient()}
		})
	}
	return redisStore
}

func (r *Redis) RecentByCamera(ctx context.Context, cameraID string, limit int) ([]Entry, error) {
	startTime := time.Now()
	tags := metric.BuildTag(metric.NewTag(metric.TagCamera, cameraID))

	raw, err := r.client.LRange(ctx, keyPrefix+cameraID, 0, int64(limit)-1).Result()
	if err != nil {
		metric.Incr("feedback_fetch_failure", tags)
		return nil, err
	}

	entries := make([]Entry, 0, len(raw))
	for _, item := range raw {
		var entry Entry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			metric.Incr("feedback_decode_failure", tags)
			log.Error().Msgf("Error decoding feedback entry for camera %s: %v", cameraID, err)
			continue
		}
		entries = append(entries, entry)
	}
	metric.Timing("feedback_fetch_latency", time.Since(startTime), tags)
	return entries, nil
}

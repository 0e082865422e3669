package cameraprofile

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/framesight/framesight/pkg/infra"
	"github.com/framesight/framesight/pkg/metric"
)

const keyPrefix = "camera_profile:"

var (
	redisStore Store
	redisOnce  sync.Once
)

// Redis reads per-camera profile documents. An absent key means the camera
// has no profile yet, which is not an error.
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

func (r *Redis) ByCamera(ctx context.Context, cameraID string) (*Profile, error) {
	tags := metric.BuildTag(metric.NewTag(metric.TagCamera, cameraID))
	val, err := r.client.Get(ctx, keyPrefix+cameraID).Bytes()
	if err == redis.Nil {
		metric.Incr("camera_profile_miss", tags)
		return nil, nil
	}
	if err != nil {
		metric.Incr("camera_profile_fetch_failure", tags)
		return nil, err
	}
	var profile Profile
	if err := json.Unmarshal(val, &profile); err != nil {
		metric.Incr("camera_profile_decode_failure", tags)
		return nil, err
	}
	return &profile, nil
}

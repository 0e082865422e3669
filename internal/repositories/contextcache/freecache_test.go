package contextcache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framesight/framesight/pkg/inmemorycache"
)

var freeCacheTestOnce sync.Once

func newFreeCacheForTest(t *testing.T) Database {
	t.Helper()
	freeCacheTestOnce.Do(func() {
		inmemorycache.InitMultiInMemoryCacheWithConf([]inmemorycache.InMemoryCacheDetail{
			{Name: ContextCacheName, MemorySizeInMb: 1},
		})
	})
	return NewRepository(1)
}

func TestFreeCache_SetExThenGet(t *testing.T) {
	cache := newFreeCacheForTest(t)

	cache.SetEx("cam-1:2026082914", []byte(`{"camera_name":"Front Door"}`), 60, nil)

	got, ok := cache.Get("cam-1:2026082914", nil)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"camera_name":"Front Door"}`), got)
}

func TestFreeCache_MissOnUnknownKey(t *testing.T) {
	cache := newFreeCacheForTest(t)

	_, ok := cache.Get("cam-unknown:2026082900", nil)

	assert.False(t, ok)
}

func TestFreeCache_ExpiredEntryIsAMiss(t *testing.T) {
	cache := newFreeCacheForTest(t)

	cache.SetEx("cam-2:2026082914", []byte("payload"), 1, nil)
	time.Sleep(1100 * time.Millisecond)

	_, ok := cache.Get("cam-2:2026082914", nil)

	assert.False(t, ok)
}

package querycache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framesight/framesight/internal/repositories"
	"github.com/framesight/framesight/pkg/inmemorycache"
)

var freeCacheTestOnce sync.Once

func newFreeCacheForTest(t *testing.T) Database {
	t.Helper()
	freeCacheTestOnce.Do(func() {
		inmemorycache.InitMultiInMemoryCacheWithConf([]inmemorycache.InMemoryCacheDetail{
			{Name: QueryCacheName, MemorySizeInMb: 1},
		})
	})
	return NewRepository(1)
}

func TestFreeCache_PutThenGet(t *testing.T) {
	cache := newFreeCacheForTest(t)
	result := &repositories.SelectionResult{
		Frames: []repositories.SelectedFrame{{Index: 3, Score: 0.87}, {Index: 0, Score: 0.61}},
	}

	cache.Put("evt-1", "what happened", result, 300, nil)

	got, ok := cache.Get("evt-1", "what happened", nil)
	require.True(t, ok)
	assert.Equal(t, result.Frames, got.Frames)
	assert.False(t, got.Fallback)
}

func TestFreeCache_GetHonorsQueryNormalization(t *testing.T) {
	cache := newFreeCacheForTest(t)
	result := &repositories.SelectionResult{Frames: []repositories.SelectedFrame{{Index: 1, Score: 0.5}}}

	cache.Put("evt-2", "Person At   Door", result, 300, nil)

	got, ok := cache.Get("evt-2", "person at door", nil)
	require.True(t, ok)
	assert.Equal(t, result.Frames, got.Frames)
}

func TestFreeCache_MissOnUnknownKey(t *testing.T) {
	cache := newFreeCacheForTest(t)

	_, ok := cache.Get("evt-unknown", "anything", nil)

	assert.False(t, ok)
}

package frames

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/framesight/framesight/internal/repositories"
	"github.com/framesight/framesight/internal/repositories/querycache"
)

func newTestSelector(model Model, cache querycache.Database) *Selector {
	embedder := newTestEmbedder(model, 8)
	scorer := Scorer{RelevanceWeight: 0.7, QualityWeight: 0.3, QualityFloor: 0.3}
	filter := DiversityFilter{Threshold: 0.92, BackfillThreshold: 0.98}
	return NewSelector(embedder, scorer, filter, cache, 300)
}

func selectorInput(n int) []Frame {
	input := make([]Frame, n)
	for i := range input {
		input[i] = Frame{Data: []byte{byte(i)}, Relevance: 0.5, Quality: 0.8}
	}
	return input
}

func TestSelector_Select_CacheHitSkipsEmbedding(t *testing.T) {
	cached := &repositories.SelectionResult{Frames: []repositories.SelectedFrame{{Index: 2, Score: 0.9}}}
	cache := new(querycache.MockDatabase)
	cache.On("Get", "event-1", "what happened", mock.Anything).Return(cached, true)

	model := new(MockModel)
	selector := newTestSelector(model, cache)

	result, err := selector.Select(context.Background(), "event-1", "what happened", selectorInput(4), 3)

	require.NoError(t, err)
	assert.Equal(t, cached, result)
	model.AssertNotCalled(t, "Infer")
	cache.AssertNotCalled(t, "Put")
}

func TestSelector_Select_FullPipelineCachesResult(t *testing.T) {
	cache := new(querycache.MockDatabase)
	cache.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(nil, false)
	cache.On("Put", "event-1", "person at door", mock.Anything, 300, mock.Anything).Return()

	// Orthogonal embeddings so the diversity filter keeps everything.
	model := &fakeModel{infer: func(_ context.Context, batch [][]byte) ([][]float32, error) {
		rows := make([][]float32, len(batch))
		for i, f := range batch {
			row := make([]float32, 16)
			row[int(f[0])] = 1
			rows[i] = row
		}
		return rows, nil
	}}
	selector := newTestSelector(model, cache)

	input := selectorInput(6)
	input[4].Relevance = 0.95 // should rank first

	result, err := selector.Select(context.Background(), "event-1", "person at door", input, 3)

	require.NoError(t, err)
	require.Len(t, result.Frames, 3)
	assert.False(t, result.Fallback)
	assert.Equal(t, 4, result.Frames[0].Index)
	cache.AssertCalled(t, "Put", "event-1", "person at door", result, 300, mock.Anything)
}

func TestSelector_Select_SkipsUndecodableFrames(t *testing.T) {
	cache := new(querycache.MockDatabase)
	cache.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(nil, false)
	cache.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()

	model := &fakeModel{infer: func(_ context.Context, batch [][]byte) ([][]float32, error) {
		rows := make([][]float32, len(batch))
		for i, f := range batch {
			if f[0] == 1 {
				continue // frame 1 is undecodable
			}
			row := make([]float32, 16)
			row[int(f[0])] = 1
			rows[i] = row
		}
		return rows, nil
	}}
	selector := newTestSelector(model, cache)

	result, err := selector.Select(context.Background(), "event-1", "", selectorInput(4), 4)

	require.NoError(t, err)
	require.Len(t, result.Frames, 3)
	for _, f := range result.Frames {
		assert.NotEqual(t, 1, f.Index)
	}
}

func TestSelector_Select_BackendDownFallsBackToMostRecent(t *testing.T) {
	cache := new(querycache.MockDatabase)
	cache.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(nil, false)

	model := new(MockModel)
	model.On("Infer", mock.Anything, mock.Anything).Return(nil, errors.New("backend down"))
	selector := newTestSelector(model, cache)

	input := selectorInput(10)
	result, err := selector.Select(context.Background(), "event-1", "query", input, 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBackendUnavailable)
	require.NotNil(t, result)
	assert.True(t, result.Fallback)
	assert.Equal(t, []int{7, 8, 9}, result.Indices(), "most recent frames in original order")
	cache.AssertNotCalled(t, "Put")
}

func TestSelector_Select_FallbackScoresWithoutEmbeddings(t *testing.T) {
	cache := new(querycache.MockDatabase)
	cache.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(nil, false)

	model := new(MockModel)
	model.On("Infer", mock.Anything, mock.Anything).Return(nil, errors.New("backend down"))
	selector := newTestSelector(model, cache)

	input := []Frame{{Data: []byte{0}, Relevance: 0.6, Quality: 0.4}}
	result, err := selector.Select(context.Background(), "event-1", "", input, 5)

	require.Error(t, err)
	require.Len(t, result.Frames, 1)
	assert.InDelta(t, 0.7*0.6+0.3*0.4, result.Frames[0].Score, 1e-9)
}

func TestSelector_Select_FallbackWithNonPositiveTopKIsEmpty(t *testing.T) {
	cache := new(querycache.MockDatabase)
	cache.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(nil, false)

	model := new(MockModel)
	model.On("Infer", mock.Anything, mock.Anything).Return(nil, errors.New("backend down"))
	selector := newTestSelector(model, cache)

	result, err := selector.Select(context.Background(), "event-1", "", selectorInput(4), 0)

	require.Error(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Fallback)
	assert.Empty(t, result.Frames)
}

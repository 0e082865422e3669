package frames

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestScorer() Scorer {
	return Scorer{RelevanceWeight: 0.7, QualityWeight: 0.3, QualityFloor: 0.3}
}

func TestScorer_Score(t *testing.T) {
	scorer := newTestScorer()

	assert.InDelta(t, 0.7*0.8+0.3*0.5, scorer.Score(0.8, 0.5), 1e-9)
	assert.InDelta(t, 1.0, scorer.Score(1.0, 1.0), 1e-9)
	assert.InDelta(t, 0.0, scorer.Score(0.0, 0.0), 1e-9)
}

func TestScorer_BelowFloor(t *testing.T) {
	scorer := newTestScorer()

	assert.True(t, scorer.BelowFloor(0.29))
	assert.False(t, scorer.BelowFloor(0.3))
	assert.False(t, scorer.BelowFloor(0.9))
}

func TestScorer_Rank_DescendingByFinalScore(t *testing.T) {
	scorer := newTestScorer()
	candidates := []Candidate{
		{Index: 0, Relevance: 0.2, Quality: 0.9},
		{Index: 1, Relevance: 0.9, Quality: 0.9},
		{Index: 2, Relevance: 0.5, Quality: 0.9},
	}

	ranked := scorer.Rank(candidates)

	assert.Equal(t, []int{1, 2, 0}, indicesOf(ranked))
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Final, ranked[i].Final)
	}
}

func TestScorer_Rank_BelowFloorRankedAfterEveryAboveFloorFrame(t *testing.T) {
	scorer := newTestScorer()
	// Sharp but barely relevant vs blurry but highly relevant. The blurry
	// frame has the higher weighted score yet must still rank last.
	candidates := []Candidate{
		{Index: 0, Relevance: 0.95, Quality: 0.1},
		{Index: 1, Relevance: 0.2, Quality: 0.9},
	}

	ranked := scorer.Rank(candidates)

	assert.Equal(t, []int{1, 0}, indicesOf(ranked))
	assert.Greater(t, ranked[1].Final, ranked[0].Final, "deprioritized frame keeps its higher raw score")
}

func TestScorer_Rank_TieBreaksOnLowerIndex(t *testing.T) {
	scorer := newTestScorer()
	candidates := []Candidate{
		{Index: 2, Relevance: 0.5, Quality: 0.5},
		{Index: 0, Relevance: 0.5, Quality: 0.5},
		{Index: 1, Relevance: 0.5, Quality: 0.5},
	}

	ranked := scorer.Rank(candidates)

	assert.Equal(t, []int{0, 1, 2}, indicesOf(ranked))
}

func TestScorer_Rank_DoesNotMutateInput(t *testing.T) {
	scorer := newTestScorer()
	candidates := []Candidate{
		{Index: 0, Relevance: 0.1, Quality: 0.9},
		{Index: 1, Relevance: 0.9, Quality: 0.9},
	}

	scorer.Rank(candidates)

	assert.Equal(t, 0, candidates[0].Index)
	assert.Zero(t, candidates[0].Final)
}

func indicesOf(candidates []Candidate) []int {
	indices := make([]int, len(candidates))
	for i, c := range candidates {
		indices[i] = c.Index
	}
	return indices
}

func TestScorer_Rank_SharpIrrelevantLosesToBlurryRelevant(t *testing.T) {
	scorer := newTestScorer()
	candidates := []Candidate{
		{Index: 0, Relevance: 0.9, Quality: 0.1},
		{Index: 1, Relevance: 0.7, Quality: 0.8},
	}

	ranked := scorer.Rank(candidates)

	assert.Equal(t, []int{1, 0}, indicesOf(ranked))
	assert.InDelta(t, 0.73, ranked[0].Final, 1e-9)
	assert.InDelta(t, 0.66, ranked[1].Final, 1e-9)
}

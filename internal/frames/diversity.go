package frames

import (
	"math"

	"github.com/framesight/framesight/internal/repositories"
)

// DiversityFilter greedily picks the top-k ranked candidates while rejecting
// near-duplicates by cosine similarity.
//
// When the strict pass cannot fill topK because every remaining candidate is
// too similar to an accepted one, a single backfill pass re-walks the
// rejects in rank order against the higher BackfillThreshold. Returning a
// duplicate-looking frame was judged better than returning too few frames
// for the analysis prompt; the relaxed threshold still blocks exact
// repeats. Both passes keep the invariants: no duplicate indices, at most
// topK results.
type DiversityFilter struct {
	Threshold         float64
	BackfillThreshold float64
}

// Select returns the chosen frames in rank order. Candidates must already be
// ranked (see Scorer.Rank). With len(candidates) <= topK every candidate is
// returned as-is, no similarity checks.
func (d DiversityFilter) Select(ranked []Candidate, topK int) []repositories.SelectedFrame {
	if topK <= 0 {
		return []repositories.SelectedFrame{}
	}
	if len(ranked) <= topK {
		return toSelectedFrames(ranked)
	}

	accepted := make([]Candidate, 0, topK)
	rejected := make([]Candidate, 0, len(ranked))
	for _, candidate := range ranked {
		if len(accepted) == topK {
			break
		}
		if maxSimilarityTo(accepted, candidate) < d.Threshold {
			accepted = append(accepted, candidate)
		} else {
			rejected = append(rejected, candidate)
		}
	}

	// Backfill pass over the strict-pass rejects, same order, relaxed bound.
	for _, candidate := range rejected {
		if len(accepted) == topK {
			break
		}
		if maxSimilarityTo(accepted, candidate) < d.BackfillThreshold {
			accepted = append(accepted, candidate)
		}
	}

	return toSelectedFrames(accepted)
}

func toSelectedFrames(candidates []Candidate) []repositories.SelectedFrame {
	frames := make([]repositories.SelectedFrame, len(candidates))
	for i, c := range candidates {
		frames[i] = repositories.SelectedFrame{Index: c.Index, Score: c.Final}
	}
	return frames
}

func maxSimilarityTo(accepted []Candidate, candidate Candidate) float64 {
	maxSim := -1.0
	for _, a := range accepted {
		if sim := CosineSimilarity(a.Embedding, candidate.Embedding); sim > maxSim {
			maxSim = sim
		}
	}
	return maxSim
}

// CosineSimilarity of two embeddings. Zero vectors and mismatched lengths
// yield 0 rather than NaN.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

package frames

import "sort"

// Scorer folds per-frame relevance and quality into one ranking value.
// All three knobs come from configuration.
type Scorer struct {
	RelevanceWeight float64
	QualityWeight   float64
	QualityFloor    float64
}

// Score is the weighted combination. Pure function, no side effects.
func (s Scorer) Score(relevance, quality float64) float64 {
	return relevance*s.RelevanceWeight + quality*s.QualityWeight
}

// BelowFloor reports whether a frame's quality puts it in the deprioritized
// band. Such frames are never excluded outright, only ranked after every
// frame above the floor.
func (s Scorer) BelowFloor(quality float64) bool {
	return quality < s.QualityFloor
}

// Rank fills in the final score of every candidate and sorts: above-floor
// frames first, each group by descending score, ties broken by lower frame
// index for determinism.
func (s Scorer) Rank(candidates []Candidate) []Candidate {
	ranked := make([]Candidate, len(candidates))
	copy(ranked, candidates)
	for i := range ranked {
		ranked[i].Final = s.Score(ranked[i].Relevance, ranked[i].Quality)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		iBelow, jBelow := s.BelowFloor(ranked[i].Quality), s.BelowFloor(ranked[j].Quality)
		if iBelow != jBelow {
			return jBelow
		}
		if ranked[i].Final != ranked[j].Final {
			return ranked[i].Final > ranked[j].Final
		}
		return ranked[i].Index < ranked[j].Index
	})
	return ranked
}

package repositories

// SelectedFrame is one frame accepted by the diversity filter, carrying the
// weighted score it was ranked with.
type SelectedFrame struct {
	Index int     `json:"index"`
	Score float64 `json:"score"`
}

// SelectionResult is the outcome of one adaptive frame selection. Fallback
// marks selections produced without embeddings (embedding backend down);
// fallback results are never written to the query cache.
type SelectionResult struct {
	Frames   []SelectedFrame `json:"frames"`
	Fallback bool            `json:"fallback,omitempty"`
}

// Indices returns the selected frame indices in ranked order.
func (r *SelectionResult) Indices() []int {
	indices := make([]int, len(r.Frames))
	for i, f := range r.Frames {
		indices[i] = f.Index
	}
	return indices
}

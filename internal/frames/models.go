package frames

import "errors"

// ErrBackendUnavailable is returned when the embedding backend itself is
// down. It is the one failure in this package that propagates to callers;
// everything else degrades in place.
var ErrBackendUnavailable = errors.New("embedding backend unavailable")

// Frame is one candidate video frame handed in by the event pipeline.
// Relevance and Quality are both in [0, 1]; Quality typically derives from
// blur/exposure analysis upstream.
type Frame struct {
	Data      []byte
	Relevance float64
	Quality   float64
}

// Candidate is a frame that survived embedding, carrying everything the
// scorer and diversity filter need. Index preserves the original frame
// ordering.
type Candidate struct {
	Index     int
	Embedding []float32
	Relevance float64
	Quality   float64
	Final     float64
}

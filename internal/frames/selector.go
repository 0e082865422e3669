package frames

import (
	"context"
	"errors"
	"time"

	"github.com/framesight/framesight/internal/repositories"
	"github.com/framesight/framesight/internal/repositories/querycache"
	"github.com/framesight/framesight/pkg/metric"
	"github.com/rs/zerolog/log"
)

// Selector is the adaptive frame selection pipeline: embed in batches, score,
// diversity-filter, and cache the result per (event, query).
type Selector struct {
	embedder   *BatchEmbedder
	scorer     Scorer
	filter     DiversityFilter
	queryCache querycache.Database
	cacheTTL   int
}

func NewSelector(embedder *BatchEmbedder, scorer Scorer, filter DiversityFilter,
	queryCache querycache.Database, cacheTTLSeconds int) *Selector {
	return &Selector{
		embedder:   embedder,
		scorer:     scorer,
		filter:     filter,
		queryCache: queryCache,
		cacheTTL:   cacheTTLSeconds,
	}
}

// Select picks up to topK diverse, quality-weighted frames for the event.
// On embedding backend failure it returns the most recent topK frames as an
// error-tagged fallback rather than failing the event; the fallback is never
// cached. Every other error path degrades in place.
func (s *Selector) Select(ctx context.Context, eventID, query string, input []Frame, topK int) (*repositories.SelectionResult, error) {
	startTime := time.Now()
	tags := metric.BuildTag(metric.NewTag("event", eventID))
	metric.Incr("frame_selection_request", tags)

	if cached, ok := s.queryCache.Get(eventID, query, tags); ok {
		metric.Timing("frame_selection_latency_cached", time.Since(startTime), tags)
		return cached, nil
	}

	frameData := make([][]byte, len(input))
	for i, frame := range input {
		frameData[i] = frame.Data
	}
	embeddings, err := s.embedder.EmbedBatch(ctx, frameData)
	if err != nil {
		if errors.Is(err, ErrBackendUnavailable) {
			log.Error().Msgf("Embedding backend unavailable for event %s, falling back to most recent frames: %v", eventID, err)
			metric.Incr("frame_selection_fallback", tags)
			return s.fallbackSelection(input, topK), err
		}
		return nil, err
	}

	candidates := make([]Candidate, 0, len(input))
	for i, embedding := range embeddings {
		if embedding == nil {
			continue
		}
		candidates = append(candidates, Candidate{
			Index:     i,
			Embedding: embedding,
			Relevance: input[i].Relevance,
			Quality:   input[i].Quality,
		})
	}

	ranked := s.scorer.Rank(candidates)
	selected := s.filter.Select(ranked, topK)
	result := &repositories.SelectionResult{Frames: selected}

	s.queryCache.Put(eventID, query, result, s.cacheTTL, tags)
	metric.Timing("frame_selection_latency", time.Since(startTime), tags)
	return result, nil
}

// fallbackSelection keeps the most recent topK frames in original order,
// scored without embeddings.
func (s *Selector) fallbackSelection(input []Frame, topK int) *repositories.SelectionResult {
	if topK <= 0 {
		return &repositories.SelectionResult{Frames: []repositories.SelectedFrame{}, Fallback: true}
	}
	begin := 0
	if len(input) > topK {
		begin = len(input) - topK
	}
	selected := make([]repositories.SelectedFrame, 0, len(input)-begin)
	for i := begin; i < len(input); i++ {
		selected = append(selected, repositories.SelectedFrame{
			Index: i,
			Score: s.scorer.Score(input[i].Relevance, input[i].Quality),
		})
	}
	return &repositories.SelectionResult{Frames: selected, Fallback: true}
}

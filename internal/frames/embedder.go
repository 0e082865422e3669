package frames

import (
	"context"
	"fmt"
	"time"

	"github.com/framesight/framesight/pkg/metric"
	"github.com/rs/zerolog/log"
)

// Model is the embedding backend. Infer returns one embedding per input
// frame, in input order; a nil row marks a frame the model could not decode.
// A non-nil error means the backend itself is unusable for the whole call.
type Model interface {
	Infer(ctx context.Context, frames [][]byte) ([][]float32, error)
}

// BatchEmbedder converts frames to embeddings in fixed-size batches, one
// model invocation per batch. Batch size is a performance knob only; output
// is byte-for-byte identical to a single-frame pass.
type BatchEmbedder struct {
	worker    *ModelWorker
	batchSize int
}

func NewBatchEmbedder(worker *ModelWorker, batchSize int) *BatchEmbedder {
	if batchSize <= 0 {
		batchSize = 8
	}
	return &BatchEmbedder{worker: worker, batchSize: batchSize}
}

// EmbedBatch returns one embedding per input frame, same length and order.
// Frames the model could not decode come back nil and are logged; only a
// backend-level failure aborts the call.
func (b *BatchEmbedder) EmbedBatch(ctx context.Context, frames [][]byte) ([][]float32, error) {
	startTime := time.Now()
	embeddings := make([][]float32, 0, len(frames))
	for begin := 0; begin < len(frames); begin += b.batchSize {
		end := begin + b.batchSize
		if end > len(frames) {
			end = len(frames)
		}
		rows, err := b.worker.infer(ctx, frames[begin:end])
		if err != nil {
			metric.Incr("embedding_batch_failure", []string{})
			return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		}
		if len(rows) != end-begin {
			metric.Incr("embedding_batch_failure", []string{})
			return nil, fmt.Errorf("%w: model returned %d rows for %d frames",
				ErrBackendUnavailable, len(rows), end-begin)
		}
		for i, row := range rows {
			if row == nil {
				metric.Incr("embedding_frame_failure", []string{})
				log.Warn().Msgf("Frame %d failed to embed, dropping from candidate pool", begin+i)
			}
		}
		embeddings = append(embeddings, rows...)
	}
	metric.Timing("embedding_batch_latency", time.Since(startTime), []string{})
	return embeddings, nil
}

package frames

import (
	"sync"

	"github.com/framesight/framesight/internal/config/structs"
	"github.com/framesight/framesight/internal/repositories/querycache"
)

var (
	selectorInstance *Selector
	once             sync.Once
)

// InitSelector wires the default selector from app config. The model is
// injected by the caller since the inference backend lives outside this
// module boundary.
func InitSelector(model Model) *Selector {
	once.Do(func() {
		cfg := structs.GetAppConfig().Configs
		worker := NewModelWorker(model, cfg.EmbeddingRatePerSec, cfg.EmbeddingBurst, cfg.EmbeddingQueueSize)
		embedder := NewBatchEmbedder(worker, cfg.EmbeddingBatchSize)
		scorer := Scorer{
			RelevanceWeight: cfg.RelevanceWeight,
			QualityWeight:   cfg.QualityWeight,
			QualityFloor:    cfg.QualityFloor,
		}
		filter := DiversityFilter{
			Threshold:         cfg.SimilarityThreshold,
			BackfillThreshold: cfg.BackfillThreshold,
		}
		selectorInstance = NewSelector(embedder, scorer, filter,
			querycache.NewRepository(cfg.QueryCacheVersion), cfg.QueryCacheTTLSeconds)
	})
	return selectorInstance
}

// Instance returns the selector. InitSelector must be called first.
func Instance() *Selector {
	return selectorInstance
}

// SetMockInstance sets the selector singleton, for tests.
func SetMockInstance(s *Selector) {
	selectorInstance = s
}

package entity

import (
	"context"
	"sync"
	"time"

	"github.com/framesight/framesight/internal/config/structs"
	"github.com/framesight/framesight/pkg/metric"
	"github.com/qdrant/go-client/qdrant"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

var (
	matcherInstance Matcher
	once            sync.Once
)

const (
	payloadName            = "name"
	payloadEntityType      = "entity_type"
	payloadOccurrenceCount = "occurrence_count"
	payloadFirstSeen       = "first_seen"
	payloadLastSeen        = "last_seen"
	payloadIsVIP           = "is_vip"
	payloadIsBlocked       = "is_blocked"
)

// Qdrant matches embeddings against the recognized-entity collection.
type Qdrant struct {
	client     *qdrant.Client
	collection string
	threshold  float32
	deadline   time.Duration
}

func initQdrantMatcher() Matcher {
	if matcherInstance == nil {
		once.Do(func() {
			cfg := structs.GetAppConfig().Configs
			client, err := qdrant.NewClient(&qdrant.Config{
				Host: cfg.QdrantHost,
				Port: cfg.QdrantPort,
				GrpcOptions: []grpc.DialOption{
					grpc.WithTransportCredentials(insecure.NewCredentials()),
				},
			})
			if err != nil {
				log.Panic().Msgf("Error creating qdrant client: %v", err)
			}
			matcherInstance = &Qdrant{
				client:     client,
				collection: cfg.QdrantCollection,
				threshold:  float32(cfg.EntityMatchThreshold),
				deadline:   time.Duration(cfg.QdrantDeadlineMs) * time.Millisecond,
			}
		})
	}
	return matcherInstance
}

func (q *Qdrant) Match(ctx context.Context, embedding []float32, entityType string) (*Match, error) {
	startTime := time.Now()
	tags := metric.BuildTag(metric.NewTag(payloadEntityType, entityType))
	metric.Incr("entity_match_query", tags)

	ctx, cancel := context.WithTimeout(ctx, q.deadline)
	defer cancel()

	limit := uint64(1)
	threshold := q.threshold
	query := &qdrant.QueryPoints{
		CollectionName: q.collection,
		Query:          qdrant.NewQueryDense(embedding),
		Limit:          &limit,
		ScoreThreshold: &threshold,
		WithPayload:    qdrant.NewWithPayload(true),
	}
	// Empty entity type means search across all entity kinds.
	if entityType != "" {
		query.Filter = &qdrant.Filter{
			Must: []*qdrant.Condition{
				qdrant.NewMatch(payloadEntityType, entityType),
			},
		}
	}
	points, err := q.client.Query(ctx, query)
	if err != nil {
		metric.Incr("entity_match_query_failure", tags)
		log.Error().Msgf("Error querying entity collection %s: %v", q.collection, err)
		return nil, err
	}
	metric.Timing("entity_match_query_latency", time.Since(startTime), tags)
	if len(points) == 0 {
		return nil, nil
	}
	return adaptScoredPoint(points[0]), nil
}

func adaptScoredPoint(point *qdrant.ScoredPoint) *Match {
	payload := point.GetPayload()
	match := &Match{
		EntityID:   point.GetId().GetUuid(),
		Similarity: float64(point.GetScore()),
	}
	if v, ok := payload[payloadName]; ok {
		match.Name = v.GetStringValue()
	}
	if v, ok := payload[payloadEntityType]; ok {
		match.EntityType = v.GetStringValue()
	}
	if v, ok := payload[payloadOccurrenceCount]; ok {
		match.OccurrenceCount = int(v.GetIntegerValue())
	}
	if v, ok := payload[payloadFirstSeen]; ok {
		match.FirstSeen = time.Unix(v.GetIntegerValue(), 0).UTC()
	}
	if v, ok := payload[payloadLastSeen]; ok {
		match.LastSeen = time.Unix(v.GetIntegerValue(), 0).UTC()
	}
	if v, ok := payload[payloadIsVIP]; ok {
		match.IsVIP = v.GetBoolValue()
	}
	if v, ok := payload[payloadIsBlocked]; ok {
		match.IsBlocked = v.GetBoolValue()
	}
	return match
}

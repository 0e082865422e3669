package entity

import (
	"testing"
	"time"

	"github.com/qdrant/go-client/qdrant"
	"github.com/stretchr/testify/assert"
)

func stringValue(s string) *qdrant.Value {
	return &qdrant.Value{Kind: &qdrant.Value_StringValue{StringValue: s}}
}

func intValue(i int64) *qdrant.Value {
	return &qdrant.Value{Kind: &qdrant.Value_IntegerValue{IntegerValue: i}}
}

func boolValue(b bool) *qdrant.Value {
	return &qdrant.Value{Kind: &qdrant.Value_BoolValue{BoolValue: b}}
}

func TestAdaptScoredPoint(t *testing.T) {
	firstSeen := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
	lastSeen := time.Date(2026, 8, 28, 19, 30, 0, 0, time.UTC)

	point := &qdrant.ScoredPoint{
		Id:    &qdrant.PointId{PointIdOptions: &qdrant.PointId_Uuid{Uuid: "7b8f3c1e-1111-2222-3333-444455556666"}},
		Score: 0.91,
		Payload: map[string]*qdrant.Value{
			payloadName:            stringValue("John"),
			payloadEntityType:      stringValue("person"),
			payloadOccurrenceCount: intValue(12),
			payloadFirstSeen:       intValue(firstSeen.Unix()),
			payloadLastSeen:        intValue(lastSeen.Unix()),
			payloadIsVIP:           boolValue(true),
			payloadIsBlocked:       boolValue(false),
		},
	}

	match := adaptScoredPoint(point)

	assert.Equal(t, "7b8f3c1e-1111-2222-3333-444455556666", match.EntityID)
	assert.Equal(t, "John", match.Name)
	assert.Equal(t, "person", match.EntityType)
	assert.Equal(t, 12, match.OccurrenceCount)
	assert.Equal(t, firstSeen, match.FirstSeen)
	assert.Equal(t, lastSeen, match.LastSeen)
	assert.True(t, match.IsVIP)
	assert.False(t, match.IsBlocked)
	assert.InDelta(t, 0.91, match.Similarity, 1e-6)
}

func TestAdaptScoredPoint_SparsePayload(t *testing.T) {
	point := &qdrant.ScoredPoint{
		Id:    &qdrant.PointId{PointIdOptions: &qdrant.PointId_Uuid{Uuid: "7b8f3c1e-aaaa-bbbb-cccc-444455556666"}},
		Score: 0.76,
		Payload: map[string]*qdrant.Value{
			payloadName: stringValue("Unknown visitor"),
		},
	}

	match := adaptScoredPoint(point)

	assert.Equal(t, "Unknown visitor", match.Name)
	assert.Zero(t, match.OccurrenceCount)
	assert.False(t, match.IsVIP)
	assert.True(t, match.FirstSeen.IsZero())
}

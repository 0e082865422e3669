package entity

import (
	"context"
	"time"
)

// Match describes the best-known entity for a query embedding. Read-only.
type Match struct {
	EntityID        string    `json:"entity_id"`
	EntityType      string    `json:"entity_type"`
	Name            string    `json:"name"`
	OccurrenceCount int       `json:"occurrence_count"`
	FirstSeen       time.Time `json:"first_seen"`
	LastSeen        time.Time `json:"last_seen"`
	IsVIP           bool      `json:"is_vip"`
	IsBlocked       bool      `json:"is_blocked"`
	Similarity      float64   `json:"similarity"`
}

// Matcher resolves an embedding to the closest known entity above the
// configured similarity threshold. A nil Match with nil error means no entity
// cleared the threshold. Matcher is free to fail; the context orchestrator
// isolates those failures.
type Matcher interface {
	Match(ctx context.Context, embedding []float32, entityType string) (*Match, error)
}

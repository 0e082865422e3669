package eventcontext

import (
	"time"

	"github.com/framesight/framesight/internal/repositories/entity"
	"github.com/framesight/framesight/internal/repositories/feedback"
)

// EventRef identifies the event a context request is for. Embedding is
// optional; without it the entity gather is skipped.
type EventRef struct {
	EventID   string
	CameraID  string
	EventTime time.Time
	Embedding []float32
}

// EventContext is the merged signal set handed to the prompt builder. It is
// created fresh per request, never mutated after being returned, and not
// persisted. Each gather writes only its own field group, so the concurrent
// merge is race-free.
type EventContext struct {
	Entity *entity.Match `json:"entity,omitempty"`

	FeedbackHistory       []feedback.Entry `json:"feedback_history,omitempty"`
	AccuracyRate          *float64         `json:"accuracy_rate,omitempty"`
	TotalFeedback         int              `json:"total_feedback,omitempty"`
	CommonCorrections     []string         `json:"common_corrections,omitempty"`
	RecentNegativeReasons []string         `json:"recent_negative_reasons,omitempty"`

	CameraName      string   `json:"camera_name,omitempty"`
	LocationHint    string   `json:"location_hint,omitempty"`
	TypicalActivity []string `json:"typical_activity,omitempty"`

	ActivityLevel string `json:"activity_level,omitempty"`
	IsUnusualTime bool   `json:"is_unusual_time,omitempty"`

	GatherLatencyMs float64 `json:"gather_latency_ms"`
}

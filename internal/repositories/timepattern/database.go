package timepattern

import "context"

const (
	ActivityLow    = "low"
	ActivityMedium = "medium"
	ActivityHigh   = "high"
)

// Pattern is the expected activity for one camera at one hour of day.
type Pattern struct {
	CameraID      string  `json:"camera_id"`
	Hour          int     `json:"hour"`
	ActivityLevel string  `json:"activity_level"`
	Confidence    float64 `json:"confidence"`
	IsUnusual     bool    `json:"is_unusual"`
}

// Service is the time-of-day pattern collaborator.
type Service interface {
	ByCameraHour(ctx context.Context, cameraID string, hour int) (*Pattern, error)
}

package feedback

import (
	"context"
	"time"
)

const (
	RatingHelpful    = "helpful"
	RatingNotHelpful = "not_helpful"
)

// Entry is one piece of user feedback on a generated description. Entries are
// owned by the feedback store; this core only reads them.
type Entry struct {
	Rating         string    `json:"rating"`
	Correction     string    `json:"correction,omitempty"`
	CorrectionType string    `json:"correction_type,omitempty"`
	CameraID       string    `json:"camera_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// Store is the feedback history collaborator. RecentByCamera returns up to
// limit entries for the camera, most recent first.
type Store interface {
	RecentByCamera(ctx context.Context, cameraID string, limit int) ([]Entry, error)
}

package cameraprofile

import "context"

// Profile is the static description of a camera: display name, where it
// points, and the objects typically seen there.
type Profile struct {
	CameraID     string   `json:"camera_id"`
	Name         string   `json:"name"`
	LocationHint string   `json:"location_hint,omitempty"`
	TypicalTags  []string `json:"typical_tags,omitempty"`
}

// Store is the camera profile collaborator.
type Store interface {
	ByCamera(ctx context.Context, cameraID string) (*Profile, error)
}

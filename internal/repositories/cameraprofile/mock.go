package cameraprofile

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) ByCamera(ctx context.Context, cameraID string) (*Profile, error) {
	args := m.Called(ctx, cameraID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Profile), args.Error(1)
}

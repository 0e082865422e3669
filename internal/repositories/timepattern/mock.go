package timepattern

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) ByCameraHour(ctx context.Context, cameraID string, hour int) (*Pattern, error) {
	args := m.Called(ctx, cameraID, hour)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Pattern), args.Error(1)
}

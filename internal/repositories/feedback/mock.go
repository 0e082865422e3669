package feedback

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) RecentByCamera(ctx context.Context, cameraID string, limit int) ([]Entry, error) {
	args := m.Called(ctx, cameraID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Entry), args.Error(1)
}

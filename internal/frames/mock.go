package frames

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockModel struct {
	mock.Mock
}

func (m *MockModel) Infer(ctx context.Context, frames [][]byte) ([][]float32, error) {
	args := m.Called(ctx, frames)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]float32), args.Error(1)
}

package entity

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockMatcher struct {
	mock.Mock
}

func (m *MockMatcher) Match(ctx context.Context, embedding []float32, entityType string) (*Match, error) {
	args := m.Called(ctx, embedding, entityType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Match), args.Error(1)
}

package querycache

import (
	"github.com/framesight/framesight/internal/repositories"
	"github.com/stretchr/testify/mock"
)

type MockDatabase struct {
	mock.Mock
}

func (m *MockDatabase) Get(eventID, query string, metricTags []string) (*repositories.SelectionResult, bool) {
	args := m.Called(eventID, query, metricTags)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*repositories.SelectionResult), args.Bool(1)
}

func (m *MockDatabase) Put(eventID, query string, result *repositories.SelectionResult, ttlSeconds int, metricTags []string) {
	m.Called(eventID, query, result, ttlSeconds, metricTags)
}

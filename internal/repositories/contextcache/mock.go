package contextcache

import (
	"github.com/stretchr/testify/mock"
)

type MockDatabase struct {
	mock.Mock
}

func (m *MockDatabase) Get(key string, metricTags []string) ([]byte, bool) {
	args := m.Called(key, metricTags)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]byte), args.Bool(1)
}

func (m *MockDatabase) SetEx(key string, value []byte, ttlSeconds int, metricTags []string) {
	m.Called(key, value, ttlSeconds, metricTags)
}

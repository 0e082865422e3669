package timepattern

var (
	DefaultVersion = 1
)

func NewRepository(version int) Service {
	switch version {
	case 1:
		return initRedisService()
	default:
		return nil
	}
}

// SetMockInstance sets the mock instance of the service, for tests.
func SetMockInstance(mock Service) {
	redisService = mock
}

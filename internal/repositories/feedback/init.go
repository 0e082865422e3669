package feedback

var (
	DefaultVersion = 1
)

func NewRepository(version int) Store {
	switch version {
	case 1:
		return initRedisStore()
	default:
		return nil
	}
}

// SetMockInstance sets the mock instance of the store, for tests.
func SetMockInstance(mock Store) {
	redisStore = mock
}

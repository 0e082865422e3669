package querycache

var (
	DefaultVersion = 1
)

func NewRepository(version int) Database {
	switch version {
	case 1:
		return initFreeCache()
	case 2:
		return initRedisCache()
	default:
		return nil
	}
}

// SetMockInstance sets the mock instance of the in-process cache, for tests.
func SetMockInstance(mock Database) {
	cacheDatabase = mock
}

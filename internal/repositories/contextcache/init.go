package contextcache

var (
	DefaultVersion = 1
)

func NewRepository(version int) Database {
	switch version {
	case 1:
		return initFreeCache()
	default:
		return nil
	}
}

// SetMockInstance sets the mock instance of the context cache, for tests.
func SetMockInstance(mock Database) {
	cacheDatabase = mock
}

package entity

var (
	DefaultVersion = 1
)

func NewRepository(version int) Matcher {
	switch version {
	case 1:
		return initQdrantMatcher()
	default:
		return nil
	}
}

// SetMockInstance sets the mock instance of the matcher, for tests.
func SetMockInstance(mock Matcher) {
	matcherInstance = mock
}

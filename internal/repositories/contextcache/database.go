package contextcache

// Database is the (camera, hour) context cache. Values are opaque encoded
// contexts; entries expire after their TTL and an expired lookup is a miss.
type Database interface {
	Get(key string, metricTags []string) ([]byte, bool)
	SetEx(key string, value []byte, ttlSeconds int, metricTags []string)
}

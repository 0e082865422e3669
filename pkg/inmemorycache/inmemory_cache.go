package inmemorycache

const (
	HitRate       = "in_memory_cache_hit_rate"
	ItemCount     = "in_memory_cache_item_count"
	EvacuateCount = "in_memory_cache_evacuate_count"
	ExpiryCount   = "in_memory_cache_expiry_count"
)

// InMemoryCache is the process-local byte cache used by the TTL cache
// repositories. Implementations must be safe for concurrent use.
type InMemoryCache interface {
	Get(key []byte) ([]byte, error)
	Set(key, value []byte) error
	SetEx(key, value []byte, expiryInSec int) error
	Delete(key []byte) bool
}

package querycache

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/framesight/framesight/internal/repositories"
)

// Database caches frame-selection results per (event, query). Lookups past
// the entry TTL and backend failures are both reported as plain misses.
type Database interface {
	Get(eventID, query string, metricTags []string) (*repositories.SelectionResult, bool)
	Put(eventID, query string, result *repositories.SelectionResult, ttlSeconds int, metricTags []string)
}

// NormalizeQuery lowercases, trims, and collapses whitespace runs so that
// trivial query variations land on the same cache key.
func NormalizeQuery(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), " ")
}

// CacheKey derives the stable key for an (event, query) pair.
func CacheKey(eventID, query string) string {
	sum := xxhash.Sum64String(eventID + "|" + NormalizeQuery(query))
	return "qc:" + strconv.FormatUint(sum, 16)
}

package metric

import (
	"strconv"
	"strings"
)

// Tag constants
const (
	TagEnv             = "env"
	TagService         = "service"
	TagPath            = "path"
	TagMethod          = "method"
	TagHttpStatusCode  = "http_status_code"
	TagCamera          = "camera"
	TagSource          = "source"
	TagCacheTier       = "cache_tier"
	TagOutcome         = "outcome"
	TagExternalService = "external_service"
)

const (
	ApiRequestCount           = "api_request_count"
	ApiRequestLatency         = "api_request_latency"
	ExternalApiRequestCount   = "external_api_request_count"
	ExternalApiRequestLatency = "external_api_request_latency"
)

type Tag struct {
	Name  string
	Value string
}

func NewTag(name, value string) Tag {
	return Tag{
		Name:  name,
		Value: value,
	}
}

// BuildTag builds a tag from the given name and value
func BuildTag(tags ...Tag) []string {
	allTags := make([]string, 0)
	for _, tag := range tags {
		allTags = append(allTags, TagAsString(tag.Name, tag.Value))
	}
	return allTags
}

// normalizeTagValue sanitizes tag values to prevent parsing issues
func normalizeTagValue(value string) string {
	// Characters that DogStatsD/Telegraf can misinterpret. "/" is kept as-is.
	problematicChars := []string{":", " ", "\\", ",", "|", "@", "#"}
	normalized := value
	for _, char := range problematicChars {
		normalized = strings.ReplaceAll(normalized, char, "_")
	}
	return normalized
}

// TagAsString renders a tag in the name:value form statsd expects
func TagAsString(name, value string) string {
	return name + ":" + normalizeTagValue(value)
}

func BuildExternalHTTPServiceLatencyTags(service, path, method string, statusCode int) []string {
	return BuildTag(
		NewTag(TagExternalService, service),
		NewTag(TagPath, path),
		NewTag(TagMethod, method),
		NewTag(TagHttpStatusCode, strconv.Itoa(statusCode)),
	)
}

func BuildExternalHTTPServiceCountTags(service, path, method string, statusCode int) []string {
	return BuildTag(
		NewTag(TagExternalService, service),
		NewTag(TagPath, path),
		NewTag(TagMethod, method),
		NewTag(TagHttpStatusCode, strconv.Itoa(statusCode)),
	)
}

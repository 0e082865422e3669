package structs

var (
	appConfig AppConfig
)

type AppConfig struct {
	Configs Configs
}

func (cfg *AppConfig) GetStaticConfig() interface{} {
	return &cfg.Configs
}

func GetAppConfig() *AppConfig {
	return &appConfig
}

type Configs struct {
	AppName     string `mapstructure:"app_name"`
	AppEnv      string `mapstructure:"app_env"`
	AppLogLevel string `mapstructure:"app_log_level"`
	Port        int    `mapstructure:"port"`

	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`

	QdrantHost           string  `mapstructure:"qdrant_host"`
	QdrantPort           int     `mapstructure:"qdrant_port"`
	QdrantCollection     string  `mapstructure:"qdrant_collection"`
	QdrantDeadlineMs     int     `mapstructure:"qdrant_deadline_ms"`
	EntityMatchThreshold float64 `mapstructure:"entity_match_threshold"`

	ContextTimeoutMs       int `mapstructure:"context_timeout_ms"`
	ContextCacheTTLSeconds int `mapstructure:"context_cache_ttl_seconds"`
	ContextCacheSizeInMb   int `mapstructure:"context_cache_size_in_mb"`
	FeedbackLimit          int `mapstructure:"feedback_limit"`

	QueryCacheVersion    int `mapstructure:"query_cache_version"`
	QueryCacheTTLSeconds int `mapstructure:"query_cache_ttl_seconds"`
	QueryCacheSizeInMb   int `mapstructure:"query_cache_size_in_mb"`

	EmbeddingBatchSize  int     `mapstructure:"embedding_batch_size"`
	EmbeddingRatePerSec float64 `mapstructure:"embedding_rate_per_sec"`
	EmbeddingBurst      int     `mapstructure:"embedding_burst"`
	EmbeddingQueueSize  int     `mapstructure:"embedding_queue_size"`
	RelevanceWeight     float64 `mapstructure:"relevance_weight"`
	QualityWeight       float64 `mapstructure:"quality_weight"`
	QualityFloor        float64 `mapstructure:"quality_floor"`
	SimilarityThreshold float64 `mapstructure:"similarity_threshold"`
	BackfillThreshold   float64 `mapstructure:"backfill_threshold"`
	DefaultTopK         int     `mapstructure:"default_top_k"`
}

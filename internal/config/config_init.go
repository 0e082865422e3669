package config

import (
	"log"

	"github.com/framesight/framesight/internal/config/structs"
	"github.com/spf13/viper"
)

func InitConfig(appConfig *structs.AppConfig) {
	viper.AutomaticEnv()
	staticConfig := appConfig.GetStaticConfig()
	cfg, ok := staticConfig.(*structs.Configs)
	if !ok {
		log.Fatal("Failed to cast static config to *Configs")
	}
	bindEnvVars()
	setDefaults()
	if err := viper.Unmarshal(cfg); err != nil {
		log.Fatalf("Failed to unmarshal config from environment: %v", err)
	}
}

func bindEnvVars() {
	viper.BindEnv("app_name", "APP_NAME")
	viper.BindEnv("app_env", "APP_ENV")
	viper.BindEnv("app_log_level", "APP_LOG_LEVEL")
	viper.BindEnv("port", "PORT")
	viper.BindEnv("redis_addr", "REDIS_ADDR")
	viper.BindEnv("redis_password", "REDIS_PASSWORD")
	viper.BindEnv("redis_db", "REDIS_DB")
	viper.BindEnv("qdrant_host", "QDRANT_HOST")
	viper.BindEnv("qdrant_port", "QDRANT_PORT")
	viper.BindEnv("qdrant_collection", "QDRANT_COLLECTION")
	viper.BindEnv("qdrant_deadline_ms", "QDRANT_DEADLINE_MS")
	viper.BindEnv("entity_match_threshold", "ENTITY_MATCH_THRESHOLD")
	viper.BindEnv("context_timeout_ms", "CONTEXT_TIMEOUT_MS")
	viper.BindEnv("context_cache_ttl_seconds", "CONTEXT_CACHE_TTL_SECONDS")
	viper.BindEnv("context_cache_size_in_mb", "CONTEXT_CACHE_SIZE_IN_MB")
	viper.BindEnv("feedback_limit", "FEEDBACK_LIMIT")
	viper.BindEnv("query_cache_version", "QUERY_CACHE_VERSION")
	viper.BindEnv("query_cache_ttl_seconds", "QUERY_CACHE_TTL_SECONDS")
	viper.BindEnv("query_cache_size_in_mb", "QUERY_CACHE_SIZE_IN_MB")
	viper.BindEnv("embedding_batch_size", "EMBEDDING_BATCH_SIZE")
	viper.BindEnv("embedding_rate_per_sec", "EMBEDDING_RATE_PER_SEC")
	viper.BindEnv("embedding_burst", "EMBEDDING_BURST")
	viper.BindEnv("embedding_queue_size", "EMBEDDING_QUEUE_SIZE")
	viper.BindEnv("relevance_weight", "RELEVANCE_WEIGHT")
	viper.BindEnv("quality_weight", "QUALITY_WEIGHT")
	viper.BindEnv("quality_floor", "QUALITY_FLOOR")
	viper.BindEnv("similarity_threshold", "SIMILARITY_THRESHOLD")
	viper.BindEnv("backfill_threshold", "BACKFILL_THRESHOLD")
	viper.BindEnv("default_top_k", "DEFAULT_TOP_K")
}

// setDefaults covers the tuning knobs so a bare environment still yields a
// working pipeline. Identity and infra endpoints stay mandatory.
func setDefaults() {
	viper.SetDefault("qdrant_deadline_ms", 150)
	viper.SetDefault("entity_match_threshold", 0.75)
	viper.SetDefault("context_timeout_ms", 80)
	viper.SetDefault("context_cache_ttl_seconds", 60)
	viper.SetDefault("context_cache_size_in_mb", 32)
	viper.SetDefault("feedback_limit", 50)
	viper.SetDefault("query_cache_version", 1)
	viper.SetDefault("query_cache_ttl_seconds", 300)
	viper.SetDefault("query_cache_size_in_mb", 32)
	viper.SetDefault("embedding_batch_size", 8)
	viper.SetDefault("embedding_rate_per_sec", 50.0)
	viper.SetDefault("embedding_burst", 8)
	viper.SetDefault("embedding_queue_size", 64)
	viper.SetDefault("relevance_weight", 0.7)
	viper.SetDefault("quality_weight", 0.3)
	viper.SetDefault("quality_floor", 0.3)
	viper.SetDefault("similarity_threshold", 0.92)
	viper.SetDefault("backfill_threshold", 0.98)
	viper.SetDefault("default_top_k", 5)
}

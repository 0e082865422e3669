package circuitbreaker

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds breaker tuning shared by all implementations. Failure
// thresholding is either time-based (rate over a rolling window) or
// count-based (failures out of the last N executions); at least one of the
// two must be fully specified when the breaker is enabled.
type Config struct {
	// Enabled bypasses the breaker entirely when false.
	Enabled bool

	// Name identifies the breaker in logs and metrics.
	Name string

	// Version selects the breaker implementation.
	Version int

	// FailureCountThreshold out of FailureCountWindow executions trips the
	// breaker open (count-based thresholding).
	FailureCountThreshold int
	FailureCountWindow    int

	// FailureRateThreshold is a percentage; the breaker opens when the
	// failure rate over FailureRateWindowInMs exceeds it, once at least
	// FailureRateMinimumWindow executions have been recorded.
	FailureRateThreshold     int
	FailureRateMinimumWindow int
	FailureRateWindowInMs    int

	// SuccessCountThreshold out of SuccessCountWindow half-open executions
	// closes the breaker again.
	SuccessCountThreshold int
	SuccessCountWindow    int

	// WithDelayInMS is the open-to-half-open transition delay.
	WithDelayInMS int
}

// BuildConfig reads breaker settings for one upstream from env-bound viper
// keys, e.g. EMBEDDING_SERVICE_CB_ENABLED. A missing or false enabled flag
// yields a disabled config; an enabled one panics on incomplete settings.
func BuildConfig(serviceName string) *Config {
	cbConfig := Config{
		Enabled: false,
	}

	if viper.IsSet(serviceName+CBEnabled) && viper.GetBool(serviceName+CBEnabled) {
		cbConfig.Enabled = true
		validateConfigs(serviceName)
		cbConfig.Name = viper.GetString(serviceName + CBName)
		cbConfig.FailureRateThreshold = viper.GetInt(serviceName + CBFailureRateThreshold)
		cbConfig.FailureRateMinimumWindow = viper.GetInt(serviceName + CBFailureRateMinimumWindow)
		cbConfig.FailureRateWindowInMs = viper.GetInt(serviceName + CBFailureRateWindowInMs)
		cbConfig.FailureCountThreshold = viper.GetInt(serviceName + CBFailureCountThreshold)
		cbConfig.FailureCountWindow = viper.GetInt(serviceName + CBFailureCountWindow)
		cbConfig.SuccessCountThreshold = viper.GetInt(serviceName + CBSuccessCountThreshold)
		cbConfig.SuccessCountWindow = viper.GetInt(serviceName + CBSuccessCountWindow)
		cbConfig.WithDelayInMS = viper.GetInt(serviceName + CBWithDelayInMS)
		cbConfig.Version = viper.GetInt(serviceName + CBVersion)
		if (cbConfig.FailureRateThreshold == 0 || cbConfig.FailureRateMinimumWindow == 0 || cbConfig.FailureRateWindowInMs == 0) &&
			(cbConfig.FailureCountThreshold == 0 || cbConfig.FailureCountWindow == 0) {
			log.Panic().Msgf("%s: Configuration invalid, neither time-based nor count-based failure thresholds are fully defined", serviceName)
		}
	}

	return &cbConfig
}

func validateConfigs(serviceName string) {
	if !viper.IsSet(serviceName + CBName) {
		log.Panic().Msgf("%s-%s not set", serviceName, CBName)
	}
	if !viper.IsSet(serviceName+CBFailureRateThreshold) && !viper.IsSet(serviceName+CBFailureCountThreshold) {
		log.Panic().Msgf("%s: Neither time-based nor count-based failure thresholds are set", serviceName)
	}
	if !viper.IsSet(serviceName+CBFailureRateMinimumWindow) && viper.IsSet(serviceName+CBFailureRateThreshold) {
		log.Panic().Msgf("%s-%s not set, required for time-based failure thresholding", serviceName, CBFailureRateMinimumWindow)
	}
	if !viper.IsSet(serviceName+CBFailureRateWindowInMs) && viper.IsSet(serviceName+CBFailureRateThreshold) {
		log.Panic().Msgf("%s-%s not set, required for time-based failure thresholding", serviceName, CBFailureRateWindowInMs)
	}
	if !viper.IsSet(serviceName + CBSuccessCountThreshold) {
		log.Panic().Msgf("%s-%s not set", serviceName, CBSuccessCountThreshold)
	}
	if !viper.IsSet(serviceName + CBSuccessCountWindow) {
		log.Panic().Msgf("%s-%s not set", serviceName, CBSuccessCountWindow)
	}
	if !viper.IsSet(serviceName + CBVersion) {
		log.Panic().Msgf("%s-%s not set", serviceName, CBVersion)
	}
	if !viper.IsSet(serviceName + CBWithDelayInMS) {
		log.Panic().Msgf("%s-%s not set", serviceName, CBWithDelayInMS)
	}
}

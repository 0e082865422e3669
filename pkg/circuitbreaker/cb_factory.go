package circuitbreaker

import (
	"github.com/framesight/framesight/pkg/circuitbreaker/failsafecb"
	"github.com/rs/zerolog/log"
)

func GetCircuitBreaker[T, R any](config *Config) CircuitBreaker[T, R] {
	switch config.Version {
	case 1:
		return failSafeCB[T, R](config)
	default:
		log.Panic().Msgf("Circuit breaker version %d not supported", config.Version)
	}
	return nil
}

func failSafeCB[T, R any](config *Config) CircuitBreaker[T, R] {
	fsCbConfig := &failsafecb.CBConfig{
		CBName:                        config.Name,
		FailureRateThreshold:          config.FailureRateThreshold,
		FailureExecutionThreshold:     config.FailureRateMinimumWindow,
		FailureThresholdingPeriodInMS: config.FailureRateWindowInMs,
		SuccessRatioThreshold:         config.SuccessCountThreshold,
		SuccessThresholdingCapacity:   config.SuccessCountWindow,
		WithDelayInMS:                 config.WithDelayInMS,
	}
	return failsafecb.NewFailSafe[T, R](fsCbConfig)
}

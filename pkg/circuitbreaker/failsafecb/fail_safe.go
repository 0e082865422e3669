package failsafecb

import (
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/circuitbreaker"
	"github.com/rs/zerolog/log"

	"github.com/framesight/framesight/pkg/metric"
)

type CBConfig struct {
	CBName                        string
	FailureRateThreshold          int
	FailureExecutionThreshold     int
	FailureThresholdingPeriodInMS int
	SuccessRatioThreshold         int
	SuccessThresholdingCapacity   int
	WithDelayInMS                 int
}

type FailSafeCB[R, T any] struct {
	Cb circuitbreaker.CircuitBreaker[any]
}

func NewFailSafe[R, T any](config *CBConfig) *FailSafeCB[R, T] {
	cb := circuitbreaker.Builder[any]().
		WithFailureRateThreshold(uint(config.FailureRateThreshold), uint(config.FailureExecutionThreshold), time.Duration(config.FailureThresholdingPeriodInMS)*time.Millisecond).
		WithSuccessThresholdRatio(uint(config.SuccessRatioThreshold), uint(config.SuccessThresholdingCapacity)).
		WithDelay(time.Duration(config.WithDelayInMS) * time.Millisecond).
		OnStateChanged(func(event circuitbreaker.StateChangedEvent) {
			log.Debug().Msgf("Circuit Breaker '%s' changed state from %s to %s", config.CBName, event.OldState, event.NewState)
			metric.Incr("CB_STATE_CHANGED", []string{"name", config.CBName, "from", event.OldState.String(), "to", event.NewState.String()})
		}).
		Build()
	return &FailSafeCB[R, T]{Cb: cb}
}

func (f *FailSafeCB[R, T]) Execute(request R, task func(R) (T, error)) (T, error) {
	var result T
	var taskErr error
	err := failsafe.Run(func() error {
		result, taskErr = task(request)
		return taskErr
	}, f.Cb)
	if err != nil {
		return result, err
	}
	return result, nil
}

package eventcontext

import (
	"sync"
	"time"

	"github.com/framesight/framesight/internal/config/structs"
	"github.com/framesight/framesight/internal/repositories/cameraprofile"
	"github.com/framesight/framesight/internal/repositories/contextcache"
	"github.com/framesight/framesight/internal/repositories/entity"
	"github.com/framesight/framesight/internal/repositories/feedback"
	"github.com/framesight/framesight/internal/repositories/timepattern"
)

var (
	orchestrator *Orchestrator
	once         sync.Once
)

// InitOrchestrator wires the orchestrator from the app config and the
// repository singletons.
func InitOrchestrator(feedbackStore feedback.Store, matcher entity.Matcher,
	cameraStore cameraprofile.Store, patternService timepattern.Service) {
	once.Do(func() {
		cfg := structs.GetAppConfig().Configs
		orchestrator = &Orchestrator{
			feedback:      feedbackStore,
			entities:      matcher,
			cameras:       cameraStore,
			patterns:      patternService,
			cache:         contextcache.NewRepository(1),
			timeout:       time.Duration(cfg.ContextTimeoutMs) * time.Millisecond,
			cacheTTL:      time.Duration(cfg.ContextCacheTTLSeconds) * time.Second,
			feedbackLimit: cfg.FeedbackLimit,
		}
	})
}

func Instance() *Orchestrator {
	if orchestrator == nil {
		panic("eventcontext orchestrator not initialized")
	}
	return orchestrator
}

// NewOrchestrator builds an orchestrator with explicit collaborators. Used by
// tests; production wiring goes through InitOrchestrator.
func NewOrchestrator(feedbackStore feedback.Store, matcher entity.Matcher,
	cameraStore cameraprofile.Store, patternService timepattern.Service,
	cache contextcache.Database, timeout, cacheTTL time.Duration, feedbackLimit int) *Orchestrator {
	return &Orchestrator{
		feedback:      feedbackStore,
		entities:      matcher,
		cameras:       cameraStore,
		patterns:      patternService,
		cache:         cache,
		timeout:       timeout,
		cacheTTL:      cacheTTL,
		feedbackLimit: feedbackLimit,
	}
}

// SetMockInstance sets the orchestrator singleton, for tests.
func SetMockInstance(o *Orchestrator) {
	orchestrator = o
}

package eventcontext

import (
	"context"
	"encoding/json"
	"errors"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/framesight/framesight/internal/repositories/cameraprofile"
	"github.com/framesight/framesight/internal/repositories/contextcache"
	"github.com/framesight/framesight/internal/repositories/entity"
	"github.com/framesight/framesight/internal/repositories/feedback"
	"github.com/framesight/framesight/internal/repositories/timepattern"
	"github.com/framesight/framesight/pkg/metric"
)

const (
	sourceEntity      = "entity"
	sourceFeedback    = "feedback"
	sourceCamera      = "camera_profile"
	sourceTimePattern = "time_pattern"

	numSources = 4
)

var errSourcePanicked = errors.New("context source panicked")

// Orchestrator fans out to the context sources in parallel and merges
// whatever answered within the deadline. It never returns an error and never
// panics; a fully empty EventContext is the worst case.
type Orchestrator struct {
	feedback feedback.Store
	entities entity.Matcher
	cameras  cameraprofile.Store
	patterns timepattern.Service
	cache    contextcache.Database

	timeout       time.Duration
	cacheTTL      time.Duration
	feedbackLimit int
}

type sourceResult struct {
	source string
	apply  func(*EventContext)
	err    error
}

// GetContext assembles the context for one event. Source failures and the
// overall deadline degrade the result instead of failing it.
func (o *Orchestrator) GetContext(ctx context.Context, ref EventRef) (ec *EventContext) {
	requestID := uuid.NewString()
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			log.Error().Msgf("context gather panicked, requestID: %s, recovered: %v, stack: %s",
				requestID, r, string(debug.Stack()))
			ec = &EventContext{}
		}
	}()

	if cached := o.fromCache(ref); cached != nil {
		cached.GatherLatencyMs = float64(time.Since(start).Microseconds()) / 1000.0
		return cached
	}

	gatherCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	results := make(chan sourceResult, numSources)
	o.launch(results, sourceFeedback, func() (func(*EventContext), error) {
		return o.gatherFeedback(gatherCtx, ref.CameraID)
	})
	o.launch(results, sourceEntity, func() (func(*EventContext), error) {
		return o.gatherEntity(gatherCtx, ref.Embedding)
	})
	o.launch(results, sourceCamera, func() (func(*EventContext), error) {
		return o.gatherCameraProfile(gatherCtx, ref.CameraID)
	})
	o.launch(results, sourceTimePattern, func() (func(*EventContext), error) {
		return o.gatherTimePattern(gatherCtx, ref.CameraID, ref.EventTime)
	})

	ec = &EventContext{}
	received := 0
	for received < numSources {
		select {
		case res := <-results:
			received++
			if res.err != nil {
				metric.Incr("context_source_failure", metric.BuildTag(metric.NewTag(metric.TagSource, res.source)))
				log.Error().Msgf("context source failed, requestID: %s, source: %s, error: %v",
					requestID, res.source, res.err)
				continue
			}
			if res.apply != nil {
				res.apply(ec)
			}
		case <-gatherCtx.Done():
			metric.Incr("context_gather_timeout", metric.BuildTag(metric.NewTag(metric.TagCamera, ref.CameraID)))
			log.Warn().Msgf("context gather deadline hit, requestID: %s, cameraID: %s, sources received: %d",
				requestID, ref.CameraID, received)
			received = numSources
		}
	}

	ec.GatherLatencyMs = float64(time.Since(start).Microseconds()) / 1000.0
	metric.TimingWithStart("context_gather_latency", start, metric.BuildTag(metric.NewTag(metric.TagCamera, ref.CameraID)))
	o.toCache(ref, ec)
	return ec
}

// launch runs one gather in its own goroutine. The channel is buffered to
// numSources, so late finishers after a deadline never block or leak.
func (o *Orchestrator) launch(results chan<- sourceResult, source string, gather func() (func(*EventContext), error)) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Msgf("context source panicked, source: %s, recovered: %v, stack: %s",
					source, r, string(debug.Stack()))
				results <- sourceResult{source: source, err: errSourcePanicked}
			}
		}()
		apply, err := gather()
		results <- sourceResult{source: source, apply: apply, err: err}
	}()
}

func (o *Orchestrator) gatherFeedback(ctx context.Context, cameraID string) (func(*EventContext), error) {
	entries, err := o.feedback.RecentByCamera(ctx, cameraID, o.feedbackLimit)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return func(*EventContext) {}, nil
	}
	helpful := 0
	var negatives []string
	for _, e := range entries {
		if e.Rating == feedback.RatingHelpful {
			helpful++
		} else if e.Correction != "" && len(negatives) < 5 {
			negatives = append(negatives, e.Correction)
		}
	}
	rate := float64(helpful) / float64(len(entries))
	corrections := ExtractCommonPatterns(entries, 3)
	return func(ec *EventContext) {
		ec.FeedbackHistory = entries
		ec.TotalFeedback = len(entries)
		ec.AccuracyRate = &rate
		ec.CommonCorrections = corrections
		ec.RecentNegativeReasons = negatives
	}, nil
}

func (o *Orchestrator) gatherEntity(ctx context.Context, embedding []float32) (func(*EventContext), error) {
	if len(embedding) == 0 {
		return func(*EventContext) {}, nil
	}
	match, err := o.entities.Match(ctx, embedding, "")
	if err != nil {
		return nil, err
	}
	return func(ec *EventContext) {
		ec.Entity = match
	}, nil
}

func (o *Orchestrator) gatherCameraProfile(ctx context.Context, cameraID string) (func(*EventContext), error) {
	profile, err := o.cameras.ByCamera(ctx, cameraID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return func(*EventContext) {}, nil
	}
	return func(ec *EventContext) {
		ec.CameraName = profile.Name
		ec.LocationHint = profile.LocationHint
		ec.TypicalActivity = profile.TypicalTags
	}, nil
}

func (o *Orchestrator) gatherTimePattern(ctx context.Context, cameraID string, eventTime time.Time) (func(*EventContext), error) {
	pattern, err := o.patterns.ByCameraHour(ctx, cameraID, eventTime.UTC().Hour())
	if err != nil {
		return nil, err
	}
	if pattern == nil {
		return func(*EventContext) {}, nil
	}
	return func(ec *EventContext) {
		ec.ActivityLevel = pattern.ActivityLevel
		ec.IsUnusualTime = pattern.IsUnusual
	}, nil
}

// cacheKey buckets by camera and UTC hour so every event in the same hour
// shares one cached context.
func cacheKey(ref EventRef) string {
	return ref.CameraID + ":" + ref.EventTime.UTC().Format("2006010215")
}

func (o *Orchestrator) fromCache(ref EventRef) *EventContext {
	if o.cache == nil {
		return nil
	}
	tags := metric.BuildTag(metric.NewTag(metric.TagCamera, ref.CameraID))
	data, found := o.cache.Get(cacheKey(ref), tags)
	if !found {
		return nil
	}
	var ec EventContext
	if err := json.Unmarshal(data, &ec); err != nil {
		log.Error().Msgf("context cache entry corrupt, cameraID: %s, error: %v", ref.CameraID, err)
		return nil
	}
	return &ec
}

func (o *Orchestrator) toCache(ref EventRef, ec *EventContext) {
	if o.cache == nil {
		return
	}
	data, err := json.Marshal(ec)
	if err != nil {
		log.Error().Msgf("context cache marshal failed, cameraID: %s, error: %v", ref.CameraID, err)
		return
	}
	tags := metric.BuildTag(metric.NewTag(metric.TagCamera, ref.CameraID))
	o.cache.SetEx(cacheKey(ref), data, int(o.cacheTTL.Seconds()), tags)
}

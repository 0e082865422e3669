package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/framesight/framesight/internal/eventcontext"
	"github.com/framesight/framesight/internal/repositories/cameraprofile"
	"github.com/framesight/framesight/internal/repositories/contextcache"
	"github.com/framesight/framesight/internal/repositories/entity"
	"github.com/framesight/framesight/internal/repositories/feedback"
	"github.com/framesight/framesight/internal/repositories/timepattern"
	"github.com/framesight/framesight/pkg/httpframework"
)

func setupRouter(t *testing.T) {
	t.Helper()
	viper.Set("APP_NAME", "framesight-test")
	httpframework.ResetForTesting()
	httpframework.Init()
	Init()
}

func newMockedOrchestrator() (*eventcontext.Orchestrator, *cameraprofile.MockStore) {
	feedbackStore := new(feedback.MockStore)
	feedbackStore.On("RecentByCamera", mock.Anything, mock.Anything, mock.Anything).Return([]feedback.Entry{}, nil)
	matcher := new(entity.MockMatcher)
	matcher.On("Match", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	cameras := new(cameraprofile.MockStore)
	patterns := new(timepattern.MockService)
	patterns.On("ByCameraHour", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	cache := new(contextcache.MockDatabase)
	cache.On("Get", mock.Anything, mock.Anything).Return(nil, false)
	cache.On("SetEx", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()

	orch := eventcontext.NewOrchestrator(feedbackStore, matcher, cameras, patterns,
		cache, 80*time.Millisecond, time.Minute, 50)
	return orch, cameras
}

func TestHealthEndpoint(t *testing.T) {
	setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	httpframework.Instance().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pong")
}

func TestDescribeContext_BadRequest(t *testing.T) {
	setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/describe/context", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	httpframework.Instance().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDescribeContext_ReturnsContextAndPrompt(t *testing.T) {
	setupRouter(t)
	orch, cameras := newMockedOrchestrator()
	cameras.On("ByCamera", mock.Anything, "cam-front").Return(&cameraprofile.Profile{
		CameraID: "cam-front", Name: "Front Door", LocationHint: "front porch",
	}, nil)
	eventcontext.SetMockInstance(orch)

	body, err := json.Marshal(map[string]any{
		"event_id":   "evt-1",
		"camera_id":  "cam-front",
		"event_time": time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC).Format(time.RFC3339),
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/describe/context", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	httpframework.Instance().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Context *eventcontext.EventContext `json:"context"`
		Prompt  string                     `json:"prompt"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Context)
	assert.Equal(t, "Front Door", resp.Context.CameraName)
	assert.Contains(t, resp.Prompt, "Front Door")
}

func TestSelectFrames_BadRequest(t *testing.T) {
	setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/frames/select", bytes.NewBufferString(`{"event_id":"evt-1"}`))
	req.Header.Set("Content-Type", "application/json")
	httpframework.Instance().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

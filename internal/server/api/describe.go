package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/framesight/framesight/internal/config/structs"
	"github.com/framesight/framesight/internal/eventcontext"
	"github.com/framesight/framesight/internal/frames"
)

type describeContextRequest struct {
	EventID   string    `json:"event_id" binding:"required"`
	CameraID  string    `json:"camera_id" binding:"required"`
	EventTime time.Time `json:"event_time" binding:"required"`
	Embedding []float32 `json:"embedding"`
}

type describeContextResponse struct {
	Context *eventcontext.EventContext `json:"context"`
	Prompt  string                     `json:"prompt"`
}

// describeContextProvider gathers the event context and renders the prompt
// guidance block. Always 200 on a valid request; missing signals degrade the
// payload, not the status.
var describeContextProvider = func(c *gin.Context) {
	var req describeContextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ec := eventcontext.Instance().GetContext(c.Request.Context(), eventcontext.EventRef{
		EventID:   req.EventID,
		CameraID:  req.CameraID,
		EventTime: req.EventTime,
		Embedding: req.Embedding,
	})
	c.JSON(http.StatusOK, describeContextResponse{
		Context: ec,
		Prompt:  eventcontext.FormatForPrompt(ec),
	})
}

type frameInput struct {
	Data      []byte  `json:"data" binding:"required"`
	Relevance float64 `json:"relevance"`
	Quality   float64 `json:"quality"`
}

type selectFramesRequest struct {
	EventID string       `json:"event_id" binding:"required"`
	Query   string       `json:"query"`
	TopK    int          `json:"top_k"`
	Frames  []frameInput `json:"frames" binding:"required"`
}

var selectFramesProvider = func(c *gin.Context) {
	var req selectFramesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := make([]frames.Frame, len(req.Frames))
	for i, f := range req.Frames {
		input[i] = frames.Frame{Data: f.Data, Relevance: f.Relevance, Quality: f.Quality}
	}
	topK := req.TopK
	if topK <= 0 {
		topK = structs.GetAppConfig().Configs.DefaultTopK
	}

	result, err := frames.Instance().Select(c.Request.Context(), req.EventID, req.Query, input, topK)
	if err != nil && !errors.Is(err, frames.ErrBackendUnavailable) {
		log.Error().Msgf("frame selection failed, eventID: %s, error: %v", req.EventID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "frame selection failed"})
		return
	}
	// degraded fallback selection still serves
	c.JSON(http.StatusOK, result)
}

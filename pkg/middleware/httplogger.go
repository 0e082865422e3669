package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/framesight/framesight/pkg/metric"
)

// HTTPLogger logs the request
func HTTPLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		c.Next()
		endTime := time.Now()

		latency := endTime.Sub(startTime)

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}

		clientIP := c.ClientIP()
		method := c.Request.Method
		statusCode := c.Writer.Status()

		metricTags := metric.BuildTag(
			metric.NewTag(metric.TagPath, route),
			metric.NewTag(metric.TagMethod, method),
			metric.NewTag(metric.TagHttpStatusCode, strconv.Itoa(statusCode)),
		)
		metric.Incr(metric.ApiRequestCount, metricTags)
		metric.Timing(metric.ApiRequestLatency, latency, metricTags)
		log.Info().Msgf("[access] [%s] %s %s %d %v", clientIP, method, route, statusCode, latency)
	}
}

// HTTPRecovery converts handler panics into 500 responses instead of
// tearing down the process.
func HTTPRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Msgf("panic recovered in handler %s: %v", c.FullPath(), r)
				c.AbortWithStatusJSON(500, gin.H{"error": "internal server error"})
			}
		}()
		c.Next()
	}
}

package api

import "github.com/framesight/framesight/pkg/httpframework"

const (
	healthCheckPath  = "/health"
	describePath     = "/v1/describe/context"
	selectFramesPath = "/v1/frames/select"
)

func Init() {
	router := httpframework.Instance()
	router.GET(healthCheckPath, healthProvider)
	router.POST(describePath, describeContextProvider)
	router.POST(selectFramesPath, selectFramesProvider)
}

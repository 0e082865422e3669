package main

import (
	"github.com/framesight/framesight/internal/bootstrap"
	"github.com/framesight/framesight/internal/config/structs"
	"github.com/framesight/framesight/internal/frames"
	"github.com/framesight/framesight/internal/server"
	"github.com/framesight/framesight/internal/server/api"
	"github.com/framesight/framesight/pkg/httpframework"
	"github.com/framesight/framesight/pkg/logger"
	"github.com/framesight/framesight/pkg/metric"
	"github.com/framesight/framesight/pkg/profiling"
)

func main() {
	bootstrap.Init()
	logger.Init()
	metric.Init()
	profiling.Init()
	bootstrap.InitServing(frames.NewHTTPModel())
	httpframework.Init()
	api.Init()
	server.InitServer(structs.GetAppConfig().Configs.Port)
}

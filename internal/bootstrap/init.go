package bootstrap

import (
	"github.com/framesight/framesight/internal/config"
	"github.com/framesight/framesight/internal/config/structs"
	"github.com/framesight/framesight/internal/eventcontext"
	"github.com/framesight/framesight/internal/frames"
	"github.com/framesight/framesight/internal/repositories/cameraprofile"
	"github.com/framesight/framesight/internal/repositories/contextcache"
	"github.com/framesight/framesight/internal/repositories/entity"
	"github.com/framesight/framesight/internal/repositories/feedback"
	"github.com/framesight/framesight/internal/repositories/querycache"
	"github.com/framesight/framesight/internal/repositories/timepattern"
	"github.com/framesight/framesight/pkg/inmemorycache"
)

func Init() {
	config.InitConfig(structs.GetAppConfig())
}

// InitServing wires everything the serving binary needs: config, the named
// in-process caches, the repositories, and the two pipeline entrypoints. The
// embedding model is injected since the inference backend is deployed
// alongside, not inside, this process.
func InitServing(model frames.Model) {
	Init()
	cfg := structs.GetAppConfig().Configs
	inmemorycache.InitMultiInMemoryCacheWithConf([]inmemorycache.InMemoryCacheDetail{
		{Name: contextcache.ContextCacheName, MemorySizeInMb: cfg.ContextCacheSizeInMb},
		{Name: querycache.QueryCacheName, MemorySizeInMb: cfg.QueryCacheSizeInMb},
	})
	frames.InitSelector(model)
	eventcontext.InitOrchestrator(
		feedback.NewRepository(feedback.DefaultVersion),
		entity.NewRepository(entity.DefaultVersion),
		cameraprofile.NewRepository(cameraprofile.DefaultVersion),
		timepattern.NewRepository(timepattern.DefaultVersion),
	)
}

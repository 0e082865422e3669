package profiling

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var once sync.Once

// Init starts the pprof endpoint on PROFILING_PORT when PROFILING_ENABLED is
// set. The endpoint gets its own listener so profiling traffic never shares
// the serving port.
func Init() {
	if !viper.GetBool("PROFILING_ENABLED") {
		log.Info().Msg("Profiling is not enabled!")
		return
	}
	once.Do(func() {
		port := viper.GetInt("PROFILING_PORT")
		if port == 0 {
			log.Fatal().Msg("PROFILING_PORT is not set!")
		}
		go func() {
			addr := fmt.Sprintf(":%d", port)
			log.Info().Msgf("Starting profiling server on %v", addr)
			if err := http.ListenAndServe(addr, nil); err != nil {
				log.Fatal().Msgf("ListenAndServe error: %v", err)
			}
		}()
		log.Info().Msg("Profiling environment initialized!")
	})
}

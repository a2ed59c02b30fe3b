package utils

import (
	"log"

	"ffa/config"

	"github.com/robfig/cron/v3"
)

// InitializeRefreshScheduler sets up the optional in-process weekly refresh.
// Deployments normally leave this off and let an external scheduler hit the
// trigger endpoints; the cron exists for single-box setups without one.
func InitializeRefreshScheduler() {
	log.Println("[REFRESH-SCHEDULER] Initializing refresh scheduler...")

	c := cron.New()

	_, err := c.AddFunc(config.AppConfig.RefreshCronSpec, func() {
		log.Println("[REFRESH-SCHEDULER] Dispatching weekly refresh...")
		DispatchPipeline("refresh", nil, nil)
	})
	if err != nil {
		log.Printf("[REFRESH-SCHEDULER] Invalid cron spec %q: %v", config.AppConfig.RefreshCronSpec, err)
		return
	}

	c.Start()
	log.Printf("[REFRESH-SCHEDULER] Refresh scheduler started with spec %q", config.AppConfig.RefreshCronSpec)
}

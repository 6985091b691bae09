package scheduler

import (
	"fmt"
	"time"

	"valueScoutBot/models"
	"valueScoutBot/scheduler/scheduler_jobs"
	"valueScoutBot/services/cacheService"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

const startupStagger = 90 * time.Second

// SetupCron registers the per-sport refresh timers, the tracked-bet
// retention sweep, and kicks off one staggered initial refresh per sport.
func SetupCron(db *gorm.DB, cache *cacheService.Cache, cfgs []models.SportConfig) {
	cronService := cron.New(cron.WithSeconds())

	for _, cfg := range cfgs {
		sport := cfg.Sport
		_, err := cronService.AddFunc(cfg.CronSpec, func() {
			err := scheduler_jobs.RefreshSportOdds(cache, sport)
			if err != nil {
				fmt.Println(err)
			}
		})
		if err != nil {
			errLog := models.ErrorLog{
				Scope:   "CRON ERR",
				Message: fmt.Sprintf("%v", err),
			}
			db.Create(&errLog)
		}
	}

	_, err := cronService.AddFunc("0 0 4 * * *", func() {
		// Daily retention sweep at 4am
		err := scheduler_jobs.SweepTrackedBets(db, cfgs)
		if err != nil {
			fmt.Println(err)
		}
	})
	if err != nil {
		errLog := models.ErrorLog{
			Scope:   "CRON ERR",
			Message: fmt.Sprintf("%v", err),
		}
		db.Create(&errLog)
	}

	cronService.Start()

	// Initial refreshes, staggered so the rate-limited feed never sees both
	// sports at once.
	for idx, cfg := range cfgs {
		sport := cfg.Sport
		delay := time.Duration(idx) * startupStagger
		time.AfterFunc(delay, func() {
			err := scheduler_jobs.RefreshSportOdds(cache, sport)
			if err != nil {
				fmt.Println(err)
			}
		})
	}
}

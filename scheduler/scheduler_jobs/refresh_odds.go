package scheduler_jobs

import (
	"fmt"

	"valueScoutBot/services/cacheService"
)

// RefreshSportOdds runs one scheduled refresh cycle. The cache's own guard
// makes an overlapping trigger a no-op.
func RefreshSportOdds(cache *cacheService.Cache, sport string) error {
	err := cache.Refresh(sport)
	if err != nil {
		return fmt.Errorf("scheduled refresh for %s: %w", sport, err)
	}
	return nil
}

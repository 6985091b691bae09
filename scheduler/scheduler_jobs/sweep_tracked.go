package scheduler_jobs

import (
	"log"
	"time"

	"valueScoutBot/models"

	"gorm.io/gorm"
)

var terminalStatuses = []string{
	string(models.BetDismissed),
	string(models.BetWon),
	string(models.BetLost),
	string(models.BetPush),
}

// SweepTrackedBets deletes terminal tracked bets once they age past each
// sport's retention window. Age counts from the last status change, so the
// clock starts when the bet settled, not when it alerted. Live bets (sent,
// tracked) are never touched.
func SweepTrackedBets(db *gorm.DB, cfgs []models.SportConfig) error {
	for _, cfg := range cfgs {
		if cfg.RetentionAge <= 0 {
			continue
		}
		cutoff := time.Now().Add(-cfg.RetentionAge)

		result := db.Where("sport = ? AND status IN ? AND updated_at < ?", cfg.Sport, terminalStatuses, cutoff).
			Delete(&models.TrackedBet{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			log.Printf("swept %d settled bets for %s", result.RowsAffected, cfg.Sport)
		}
	}
	return nil
}

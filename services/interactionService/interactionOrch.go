package interactionService

import (
	"strings"

	"valueScoutBot/services/alertService"
	"valueScoutBot/services/common"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"
)

// HandleComponentInteraction routes button presses by CustomID prefix.
// discordgo invokes this on its own goroutine per event, so one slow action
// never delays the next.
func HandleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB, engine *alertService.Engine) {
	customID := i.MessageComponentData().CustomID

	if strings.HasPrefix(customID, "valuebet_") {
		err := engine.HandleAlertAction(s, i, customID)
		if err != nil {
			common.LogError(db, "interaction", err)
		}
		return
	}
}

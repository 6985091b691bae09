package services

import (
	"fmt"
	"strings"
	"time"

	"valueScoutBot/services/cacheService"
	"valueScoutBot/services/common"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"
)

func HandleSlashCommand(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB, cache *cacheService.Cache) {
	switch i.ApplicationCommandData().Name {
	case "value-status":
		ShowStatus(s, i, db, cache)
	case "refresh-odds":
		TriggerRefresh(s, i, db, cache)
	}
}

func RegisterCommands(s *discordgo.Session) error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "value-status",
			Description: "Show refresh status and opportunity counts per sport",
		},
		{
			Name:        "refresh-odds",
			Description: "Force an odds refresh outside the schedule",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "sport",
					Description: "Sport to refresh (omit for all)",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    false,
				},
			},
		},
	}

	for _, cmd := range commands {
		_, err := s.ApplicationCommandCreate(s.State.User.ID, "", cmd)
		if err != nil {
			return fmt.Errorf("cannot create command %s: %v", cmd.Name, err)
		}
	}
	return nil
}

// ShowStatus reports each sport's last refresh, state, and opportunity count.
func ShowStatus(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB, cache *cacheService.Cache) {
	var lines []string
	for _, sport := range cache.Sports() {
		status, ok := cache.Status(sport)
		if !ok {
			continue
		}
		snap, _ := cache.GetSnapshot(sport)

		line := fmt.Sprintf("**%s** — %d opportunities", sport, len(snap.Opportunities))
		switch {
		case status.IsRefreshing && status.Progress != nil:
			line += fmt.Sprintf(" (refreshing %d/%d: %s)", status.Progress.Current, status.Progress.Total, status.Progress.Message)
		case status.IsRefreshing:
			line += " (refreshing)"
		case status.ErrorMessage != "":
			line += fmt.Sprintf(" (error: %s)", status.ErrorMessage)
		}
		if !status.LastUpdated.IsZero() {
			line += fmt.Sprintf(", updated %s", status.LastUpdated.Format(time.Kitchen))
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		lines = append(lines, "No sports configured")
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: strings.Join(lines, "\n"),
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		common.SendError(s, i, err, db)
	}
}

// TriggerRefresh forces a refresh cycle. The re-entrancy guard still applies;
// a sport already refreshing silently keeps its running cycle.
func TriggerRefresh(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB, cache *cacheService.Cache) {
	sport := ""
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "sport" {
			sport = opt.StringValue()
		}
	}

	response := "Refresh triggered for all sports"
	if sport != "" {
		if !common.Contains(cache.Sports(), sport) {
			common.SendError(s, i, fmt.Errorf("unknown sport %q", sport), db)
			return
		}
		cache.RefreshAsync(sport)
		response = fmt.Sprintf("Refresh triggered for %s", sport)
	} else {
		cache.RefreshAll()
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: response,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		common.SendError(s, i, err, db)
	}
}

package messageService

import (
	"fmt"
	"strings"

	"valueScoutBot/models"
	"valueScoutBot/services/common"

	"github.com/bwmarrin/discordgo"
)

// BuildAlertEmbed renders a fresh value alert.
func BuildAlertEmbed(fixture models.FixtureOdds, opp models.Opportunity) *discordgo.MessageEmbed {
	var books strings.Builder
	for _, bp := range opp.AllBookmakers {
		books.WriteString(fmt.Sprintf("`%s` %s (%s)\n", bp.Bookmaker, common.FormatPrice(bp.Price), common.FormatEV(bp.EVPercent)))
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("💡 Value Found: %s", propositionLabel(opp)),
		Description: fmt.Sprintf("%s @ %s", fixture.AwayTeam, fixture.HomeTeam),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Best Price",
				Value:  fmt.Sprintf("`%s` %s (%s)", opp.Bookmaker, common.FormatPrice(opp.Price), common.FormatEV(opp.EVPercent)),
				Inline: true,
			},
			{
				Name:   "Fair Probability",
				Value:  fmt.Sprintf("%.1f%% (%s, n=%d)", opp.FairProb*100, opp.Method, opp.SampleSize),
				Inline: true,
			},
			{
				Name:  "All Qualifying Books",
				Value: books.String(),
			},
		},
		Color: 0x2ecc71,
	}
}

// GetAlertButtons returns the Track/Dismiss row for a fresh alert.
func GetAlertButtons(betID uint) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "Track",
			Style:    discordgo.PrimaryButton,
			CustomID: fmt.Sprintf("valuebet_track_%d", betID),
			Emoji: &discordgo.ComponentEmoji{
				Name: "📌",
			},
		},
		discordgo.Button{
			Label:    "Dismiss",
			Style:    discordgo.SecondaryButton,
			CustomID: fmt.Sprintf("valuebet_dismiss_%d", betID),
			Emoji: &discordgo.ComponentEmoji{
				Name: "🚫",
			},
		},
	}
}

// GetResultButtons returns the Won/Lost/Push row shown on a tracked bet.
func GetResultButtons(betID uint) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "Won",
			Style:    discordgo.SuccessButton,
			CustomID: fmt.Sprintf("valuebet_won_%d", betID),
			Emoji: &discordgo.ComponentEmoji{
				Name: "✅",
			},
		},
		discordgo.Button{
			Label:    "Lost",
			Style:    discordgo.DangerButton,
			CustomID: fmt.Sprintf("valuebet_lost_%d", betID),
			Emoji: &discordgo.ComponentEmoji{
				Name: "❌",
			},
		},
		discordgo.Button{
			Label:    "Push",
			Style:    discordgo.SecondaryButton,
			CustomID: fmt.Sprintf("valuebet_push_%d", betID),
			Emoji: &discordgo.ComponentEmoji{
				Name: "➖",
			},
		},
	}
}

// BuildTrackedContent is the compact message a bet collapses to once tracked.
func BuildTrackedContent(bet *models.TrackedBet) string {
	return fmt.Sprintf("📌 Tracking: **%s** — `%s` %s (%s)",
		trackedLabel(bet), bet.Bookmaker, common.FormatPrice(bet.Price), common.FormatEV(bet.EVPercent))
}

// ResultBanner is appended to the tracked message on a terminal result.
func ResultBanner(status models.BetStatus) string {
	switch status {
	case models.BetWon:
		return "\n✅ **Result: WON**"
	case models.BetLost:
		return "\n❌ **Result: LOST**"
	case models.BetPush:
		return "\n➖ **Result: PUSH**"
	}
	return ""
}

func propositionLabel(opp models.Opportunity) string {
	return fmt.Sprintf("%s %s %s %s", opp.Subject, opp.Market, sideLabel(string(opp.Side)), common.FormatLine(opp.Line))
}

func trackedLabel(bet *models.TrackedBet) string {
	return fmt.Sprintf("%s %s %s %s", bet.Subject, bet.Market, sideLabel(bet.Side), common.FormatLine(bet.Line))
}

func sideLabel(side string) string {
	if side == "" {
		return side
	}
	return strings.ToUpper(side[:1]) + side[1:]
}

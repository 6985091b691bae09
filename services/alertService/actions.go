package alertService

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"valueScoutBot/models"
	"valueScoutBot/services/messageService"

	"github.com/bwmarrin/discordgo"
)

// HandleAlertAction processes one operator button press. The interaction is
// acknowledged immediately; durable state lands asynchronously and message
// mutation happens after the ack. Replays of the same event id and actions
// that are illegal from the current state are no-ops.
func (e *Engine) HandleAlertAction(s *discordgo.Session, i *discordgo.InteractionCreate, customID string) error {
	replay := e.recent.Seen(i.ID)

	// Ack first so the button never shows a stale pending state, even when
	// the rest of the handler bails out.
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	}); err != nil {
		log.Printf("alert action ack failed: %v", err)
	}
	if replay {
		return nil
	}

	action, betID, err := parseActionID(customID)
	if err != nil {
		return err
	}

	bet := e.store.GetByID(betID)
	if bet == nil {
		return fmt.Errorf("no tracked bet with id %d", betID)
	}

	next, ok := Transition(models.BetStatus(bet.Status), action)
	if !ok {
		return nil
	}
	bet.Status = string(next)
	e.store.SaveAsync(bet)

	messageID := messageRef(i, bet)
	switch action {
	case ActionTrack:
		e.collapseToTracked(s, i.ChannelID, messageID, bet)
	case ActionDismiss:
		e.removeAlert(s, i.ChannelID, messageID, "🚫 Dismissed")
	default:
		e.appendResult(s, i.ChannelID, messageID, bet, next)
	}
	return nil
}

func parseActionID(customID string) (action string, betID uint, err error) {
	trimmed := strings.TrimPrefix(customID, "valuebet_")
	parts := strings.SplitN(trimmed, "_", 2)
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("malformed alert action id %q", customID)
	}
	id, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return "", 0, fmt.Errorf("malformed alert action id %q", customID)
	}
	return parts[0], uint(id), nil
}

func messageRef(i *discordgo.InteractionCreate, bet *models.TrackedBet) string {
	if i.Message != nil {
		return i.Message.ID
	}
	if bet.MessageID != nil {
		return *bet.MessageID
	}
	return ""
}

// collapseToTracked deletes the alert (or edits it down when deletion is not
// permitted) and posts the compact tracking message carrying the result
// buttons.
func (e *Engine) collapseToTracked(s *discordgo.Session, channelID, messageID string, bet *models.TrackedBet) {
	e.removeAlert(s, channelID, messageID, "📌 Tracked")

	msg, err := s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content: messageService.BuildTrackedContent(bet),
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: messageService.GetResultButtons(bet.ID),
			},
		},
	})
	if err != nil {
		log.Printf("tracked message send failed for %s: %v", bet.BetKey, err)
		return
	}

	bet.MessageID = &msg.ID
	bet.ChannelID = channelID
	e.store.SaveAsync(bet)
}

func (e *Engine) removeAlert(s *discordgo.Session, channelID, messageID, fallbackText string) {
	if messageID == "" {
		return
	}
	if err := s.ChannelMessageDelete(channelID, messageID); err == nil {
		return
	}

	empty := []discordgo.MessageComponent{}
	noEmbeds := []*discordgo.MessageEmbed{}
	_, err := s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		ID:         messageID,
		Channel:    channelID,
		Content:    &fallbackText,
		Embeds:     &noEmbeds,
		Components: &empty,
	})
	if err != nil {
		log.Printf("alert message edit fallback failed: %v", err)
	}
}

// appendResult stamps the terminal result onto the tracked message and
// strips the buttons.
func (e *Engine) appendResult(s *discordgo.Session, channelID, messageID string, bet *models.TrackedBet, status models.BetStatus) {
	if messageID == "" {
		return
	}

	content := messageService.BuildTrackedContent(bet) + messageService.ResultBanner(status)
	empty := []discordgo.MessageComponent{}
	_, err := s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		ID:         messageID,
		Channel:    channelID,
		Content:    &content,
		Components: &empty,
	})
	if err != nil {
		log.Printf("result banner edit failed for %s: %v", bet.BetKey, err)
	}
}

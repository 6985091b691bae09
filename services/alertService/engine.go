package alertService

import (
	"log"
	"sync"
	"time"

	"valueScoutBot/models"
	"valueScoutBot/services/messageService"

	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Engine decides which opportunities alert, sends the alerts, and applies
// operator actions to their lifecycle.
type Engine struct {
	session   *discordgo.Session
	store     *Store
	channelID string
	configs   map[string]*models.SportConfig
	recent    *RecentEvents
	send      func(channelID string, data *discordgo.MessageSend) (*discordgo.Message, error)

	mu       sync.Mutex
	lastSeen map[string]time.Time
}

func NewEngine(s *discordgo.Session, db *gorm.DB, rdb *redis.Client, channelID string, cfgs []models.SportConfig) *Engine {
	configs := make(map[string]*models.SportConfig, len(cfgs))
	for i := range cfgs {
		cfg := cfgs[i]
		configs[cfg.Sport] = &cfg
	}
	e := &Engine{
		session:   s,
		store:     NewStore(db, rdb),
		channelID: channelID,
		configs:   configs,
		recent:    NewRecentEvents(100),
		lastSeen:  make(map[string]time.Time),
	}
	e.send = func(channelID string, data *discordgo.MessageSend) (*discordgo.Message, error) {
		return e.session.ChannelMessageSendComplex(channelID, data)
	}
	return e
}

// HandleSnapshot is the cache subscriber. It only acts on a completed cycle,
// once per LastUpdated stamp; progress and error publishes pass through.
func (e *Engine) HandleSnapshot(snap models.CacheSnapshot) {
	if snap.State != models.StateIdle || snap.LastUpdated.IsZero() {
		return
	}

	e.mu.Lock()
	if !snap.LastUpdated.After(e.lastSeen[snap.Sport]) {
		e.mu.Unlock()
		return
	}
	e.lastSeen[snap.Sport] = snap.LastUpdated
	e.mu.Unlock()

	cfg, ok := e.configs[snap.Sport]
	if !ok {
		return
	}

	for _, fixture := range snap.Fixtures {
		for _, opp := range fixture.Opportunities {
			e.maybeAlert(cfg, fixture, opp)
		}
	}
}

func (e *Engine) maybeAlert(cfg *models.SportConfig, fixture models.FixtureOdds, opp models.Opportunity) {
	key := OpportunityKey(&opp)
	existing := e.store.Get(key)
	if !shouldAlert(existing, cfg, time.Now()) {
		return
	}
	e.sendAlert(existing, key, fixture, opp)
}

// shouldAlert is the suppression rule: tracked bets suppress until the
// optional max tracking age expires, dismissed and resulted bets suppress
// forever, and a sent bet re-alerts only after the cooldown.
func shouldAlert(existing *models.TrackedBet, cfg *models.SportConfig, now time.Time) bool {
	if existing == nil {
		return true
	}
	switch models.BetStatus(existing.Status) {
	case models.BetTracked:
		if cfg.TrackedMaxAge > 0 && now.Sub(existing.FirstSentAt) > cfg.TrackedMaxAge {
			return true
		}
		return false
	case models.BetSent:
		return now.Sub(existing.FirstSentAt) >= cfg.AlertCooldown
	default:
		// dismissed, won, lost, push
		return false
	}
}

func (e *Engine) sendAlert(existing *models.TrackedBet, key string, fixture models.FixtureOdds, opp models.Opportunity) {
	var prior *models.TrackedBet
	if existing != nil {
		copied := *existing
		prior = &copied
	}

	bet := existing
	if bet == nil {
		bet = &models.TrackedBet{BetKey: key}
	}
	bet.Sport = opp.Sport
	bet.Status = string(models.BetSent)
	bet.FirstSentAt = time.Now()
	bet.ChannelID = e.channelID
	bet.FixtureID = opp.FixtureID
	bet.Subject = opp.Subject
	bet.Market = opp.Market
	bet.Line = opp.Line
	bet.Side = string(opp.Side)
	bet.Bookmaker = opp.Bookmaker
	bet.Price = opp.Price
	bet.EVPercent = opp.EVPercent
	bet.FairProb = opp.FairProb

	// First save assigns the id the buttons carry.
	e.store.Save(bet)

	msg, err := e.send(e.channelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{messageService.BuildAlertEmbed(fixture, opp)},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: messageService.GetAlertButtons(bet.ID),
			},
		},
	})
	if err != nil {
		log.Printf("alert send failed for %s: %v", key, err)
		// A bet that never reached the channel must not suppress its key
		// for the cooldown. Put back whatever was there before.
		if prior != nil {
			e.store.SaveAsync(prior)
		} else {
			e.store.Discard(bet)
		}
		return
	}

	bet.MessageID = &msg.ID
	e.store.SaveAsync(bet)
}

package cacheService

import (
	"fmt"
	"time"

	"valueScoutBot/models"
	"valueScoutBot/models/external"
	"valueScoutBot/services/common"
	"valueScoutBot/services/evalService"
	"valueScoutBot/services/probService"
	"valueScoutBot/services/propService"
	"valueScoutBot/services/statsService"

	"github.com/google/uuid"
)

const progressLinger = 2 * time.Second

// Refresh runs one cycle for a sport and blocks until it finishes. A second
// call while a cycle is running is a no-op; the schedule and manual triggers
// share the same guard. On failure the sport's status flips to error but the
// last good snapshot keeps serving.
func (c *Cache) Refresh(sport string) error {
	c.mu.Lock()
	cfg, ok := c.configs[sport]
	if !ok {
		c.mu.Unlock()
		return fmt.Errorf("unknown sport %q", sport)
	}
	if c.refreshing[sport] {
		c.mu.Unlock()
		return nil
	}
	c.refreshing[sport] = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.refreshing[sport] = false
		c.mu.Unlock()
	}()

	return c.runCycle(cfg)
}

func (c *Cache) runCycle(cfg *models.SportConfig) error {
	cycleID := uuid.NewString()

	c.publishProgress(cfg.Sport, &models.RefreshProgress{
		CycleID: cycleID,
		Step:    "fixtures",
		Message: "Fetching fixture list",
	})

	fixtures, err := c.fixtures.ListFixtures(cfg.FeedKey)
	if err != nil {
		c.publishError(cfg.Sport, err)
		return err
	}

	now := time.Now()
	var upcoming []external.Fixture
	for _, fx := range fixtures {
		if fx.CommenceTime.After(now) && fx.CommenceTime.Before(now.Add(cfg.FixtureWindow)) {
			upcoming = append(upcoming, fx)
		}
	}

	rateBook := statsService.NewRateBook(c.stats)
	fixtureOdds := make([]models.FixtureOdds, 0, len(upcoming))
	var aggregate []models.Opportunity

	for idx, fx := range upcoming {
		c.publishProgress(cfg.Sport, &models.RefreshProgress{
			CycleID: cycleID,
			Current: idx + 1,
			Total:   len(upcoming),
			Step:    "odds",
			Message: fmt.Sprintf("Pricing %s @ %s", fx.AwayTeam, fx.HomeTeam),
		})

		records := c.fetchOddsBatched(cfg, fx.ID)
		opps := c.evaluateFixture(cfg, &fx, records, rateBook)

		fixtureOdds = append(fixtureOdds, models.FixtureOdds{
			FixtureID:     fx.ID,
			HomeTeam:      fx.HomeTeam,
			AwayTeam:      fx.AwayTeam,
			StartTime:     fx.CommenceTime,
			Opportunities: opps,
		})
		aggregate = append(aggregate, opps...)

		if idx < len(upcoming)-1 && cfg.FixtureDelay > 0 {
			time.Sleep(cfg.FixtureDelay)
		}
	}

	snap := &models.CacheSnapshot{
		Sport:         cfg.Sport,
		Fixtures:      fixtureOdds,
		Opportunities: aggregate,
		State:         models.StateIdle,
		LastUpdated:   time.Now(),
		Progress: &models.RefreshProgress{
			CycleID: cycleID,
			Current: len(upcoming),
			Total:   len(upcoming),
			Step:    "done",
			Message: "Refresh complete",
		},
	}
	c.publish(snap)
	c.persistSnapshot(snap)
	time.AfterFunc(progressLinger, func() { c.clearProgress(cfg.Sport) })

	return nil
}

// fetchOddsBatched walks the bookmaker list in feed-sized batches. A failing
// batch is logged and skipped; whatever survives still prices the fixture.
func (c *Cache) fetchOddsBatched(cfg *models.SportConfig, fixtureID string) []external.RawOddsRecord {
	books := cfg.AllBooks()
	var records []external.RawOddsRecord

	for start := 0; start < len(books); start += cfg.BookmakerBatchSize {
		end := start + cfg.BookmakerBatchSize
		if end > len(books) {
			end = len(books)
		}

		batch, err := c.odds.FetchOdds(cfg.FeedKey, fixtureID, cfg.Markets, books[start:end])
		if err != nil {
			common.LogError(c.db, fmt.Sprintf("refresh:%s", cfg.Sport),
				fmt.Errorf("odds batch %v for fixture %s: %w", books[start:end], fixtureID, err))
		} else {
			records = append(records, batch...)
		}

		if end < len(books) && cfg.BatchDelay > 0 {
			time.Sleep(cfg.BatchDelay)
		}
	}
	return records
}

func (c *Cache) evaluateFixture(cfg *models.SportConfig, fx *external.Fixture, records []external.RawOddsRecord, rateBook *statsService.RateBook) []models.Opportunity {
	props := propService.ParseRecords(records)
	groups := propService.GroupPropositions(props, cfg)

	var opps []models.Opportunity
	for _, group := range groups {
		est := c.estimatorFor(cfg, group, fx, rateBook)
		for _, opp := range evalService.EvaluateGroup(group, est, cfg) {
			opp.FixtureID = fx.ID
			opp.Sport = cfg.Sport
			opps = append(opps, opp)
		}
	}
	return opps
}

// estimatorFor picks the probability strategy for one group: forecast when
// the market is configured for it and both teams have usable rates,
// otherwise de-vig against the reference books.
func (c *Cache) estimatorFor(cfg *models.SportConfig, group *models.PropositionGroup, fx *external.Fixture, rateBook *statsService.RateBook) probService.Estimator {
	if cfg.IsForecastMarket(group.Market) {
		home, okHome := rateBook.Get(fx.HomeTeam)
		away, okAway := rateBook.Get(fx.AwayTeam)
		if okHome && okAway {
			return &probService.ForecastEstimator{
				Cfg:  cfg,
				Home: home,
				Away: away,
			}
		}
	}
	return &probService.DevigEstimator{
		Method:        cfg.Devig,
		LineTolerance: cfg.LineTolerance,
	}
}

func (c *Cache) publishProgress(sport string, progress *models.RefreshProgress) {
	c.mu.Lock()
	prev, ok := c.snapshots[sport]
	if !ok {
		c.mu.Unlock()
		return
	}
	next := *prev
	next.State = models.StateRefreshing
	next.ErrorMessage = ""
	next.Progress = progress
	c.mu.Unlock()

	c.publish(&next)
}

// publishError flips the sport to error state while leaving the last good
// fixture and opportunity data in place. Stale-but-available beats empty.
func (c *Cache) publishError(sport string, err error) {
	common.LogError(c.db, fmt.Sprintf("refresh:%s", sport), err)

	c.mu.Lock()
	prev, ok := c.snapshots[sport]
	if !ok {
		c.mu.Unlock()
		return
	}
	next := *prev
	next.State = models.StateError
	next.ErrorMessage = err.Error()
	next.Progress = nil
	c.mu.Unlock()

	c.publish(&next)
}

package models

import (
	"os"
	"strconv"
	"time"
)

type DevigMethod string

const (
	DevigMultiplicative DevigMethod = "multiplicative"
	DevigPower          DevigMethod = "power"
)

// SportConfig holds everything the pipeline needs to know about one sport:
// how to reach the feed, which books are playable vs reference, the EV gate,
// and the refresh cadence.
type SportConfig struct {
	Sport    string
	FeedKey  string
	Markets  []string
	CronSpec string

	PlayableBooks  []string
	ReferenceBooks []string

	// Markets priced from historical averages instead of reference books.
	ForecastMarkets []string
	// Markets whose totals are count-like (Poisson). Everything else in
	// ForecastMarkets gets the Normal model.
	CountMarkets []string

	MinEVPercent      float64
	MaxPrice          float64
	MinReferenceBooks int
	LineTolerance     float64
	Devig             DevigMethod

	FixtureWindow      time.Duration
	BookmakerBatchSize int
	BatchDelay         time.Duration
	FixtureDelay       time.Duration

	AlertCooldown time.Duration
	// 0 means a tracked bet suppresses re-alerts forever.
	TrackedMaxAge time.Duration
	// Terminal tracked bets older than this are swept.
	RetentionAge time.Duration
}

// IsReference reports whether a bookmaker belongs to the reference set.
func (c *SportConfig) IsReference(book string) bool {
	for _, b := range c.ReferenceBooks {
		if b == book {
			return true
		}
	}
	return false
}

// IsPlayable reports whether a bookmaker belongs to the playable set.
func (c *SportConfig) IsPlayable(book string) bool {
	for _, b := range c.PlayableBooks {
		if b == book {
			return true
		}
	}
	return false
}

// IsForecastMarket reports whether a market is priced by the forecast model.
func (c *SportConfig) IsForecastMarket(market string) bool {
	for _, m := range c.ForecastMarkets {
		if m == market {
			return true
		}
	}
	return false
}

// IsCountMarket reports whether a market's totals follow a Poisson model.
func (c *SportConfig) IsCountMarket(market string) bool {
	for _, m := range c.CountMarkets {
		if m == market {
			return true
		}
	}
	return false
}

// AllBooks returns the playable and reference sets combined, playable first.
func (c *SportConfig) AllBooks() []string {
	books := make([]string, 0, len(c.PlayableBooks)+len(c.ReferenceBooks))
	books = append(books, c.PlayableBooks...)
	books = append(books, c.ReferenceBooks...)
	return books
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

// LoadSportConfigs returns the configured sports. Cron specs are staggered
// so the two refresh cycles never start in the same minute.
func LoadSportConfigs() []SportConfig {
	return []SportConfig{
		{
			Sport:              "soccer",
			FeedKey:            "soccer_epl",
			Markets:            []string{"totals", "alternate_totals", "corners", "cards", "btts"},
			CronSpec:           "0 0/10 * * * *",
			PlayableBooks:      []string{"draftkings", "fanduel", "betmgm", "caesars"},
			ReferenceBooks:     []string{"pinnacle", "betfair_ex", "circasports"},
			ForecastMarkets:    []string{"totals", "alternate_totals", "corners", "cards"},
			CountMarkets:       []string{"totals", "alternate_totals"},
			MinEVPercent:       envFloat("MIN_EV_SOCCER", 4.0),
			MaxPrice:           envFloat("MAX_PRICE_SOCCER", 6.0),
			MinReferenceBooks:  2,
			LineTolerance:      0.5,
			Devig:              DevigPower,
			FixtureWindow:      24 * time.Hour,
			BookmakerBatchSize: 3,
			BatchDelay:         750 * time.Millisecond,
			FixtureDelay:       500 * time.Millisecond,
			AlertCooldown:      envDuration("ALERT_COOLDOWN_SOCCER", 10*time.Minute),
			TrackedMaxAge:      envDuration("TRACKED_MAX_AGE_SOCCER", 0),
			RetentionAge:       14 * 24 * time.Hour,
		},
		{
			Sport:              "basketball",
			FeedKey:            "basketball_nba",
			Markets:            []string{"player_points", "player_rebounds", "player_assists", "totals"},
			CronSpec:           "0 5/10 * * * *",
			PlayableBooks:      []string{"draftkings", "fanduel", "betmgm", "caesars"},
			ReferenceBooks:     []string{"pinnacle", "circasports"},
			ForecastMarkets:    nil,
			CountMarkets:       nil,
			MinEVPercent:       envFloat("MIN_EV_BASKETBALL", 3.0),
			MaxPrice:           envFloat("MAX_PRICE_BASKETBALL", 4.0),
			MinReferenceBooks:  1,
			LineTolerance:      0.5,
			Devig:              DevigMultiplicative,
			FixtureWindow:      24 * time.Hour,
			BookmakerBatchSize: 3,
			BatchDelay:         750 * time.Millisecond,
			FixtureDelay:       500 * time.Millisecond,
			AlertCooldown:      envDuration("ALERT_COOLDOWN_BASKETBALL", 10*time.Minute),
			TrackedMaxAge:      envDuration("TRACKED_MAX_AGE_BASKETBALL", 0),
			RetentionAge:       14 * 24 * time.Hour,
		},
	}
}

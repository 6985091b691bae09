package statsService

import (
	"log"
	"sync"

	"valueScoutBot/models"
	"valueScoutBot/models/external"
)

// AveragesFeed is the upstream contract for historical per-game rates.
type AveragesFeed interface {
	SubjectAverages(subject string, window int) (*external.SubjectAverages, error)
}

const defaultWindow = 10

// RatesFromAverages maps a feed payload onto the rate fields the forecast
// estimator reads.
func RatesFromAverages(avgs *external.SubjectAverages) models.TeamRates {
	m := avgs.Metrics
	return models.TeamRates{
		Team:         avgs.Subject,
		GoalsFor:     m["goals_for"],
		GoalsAgainst: m["goals_against"],
		Corners:      m["corners"],
		Cards:        m["cards"],
		Shots:        m["shots"],
		Games:        avgs.Games,
	}
}

// RateBook memoizes team rates for the duration of one refresh cycle so a
// team playing in a fetched fixture only costs one stats call.
type RateBook struct {
	feed   AveragesFeed
	window int

	mu    sync.Mutex
	rates map[string]*models.TeamRates
}

func NewRateBook(feed AveragesFeed) *RateBook {
	return &RateBook{
		feed:   feed,
		window: defaultWindow,
		rates:  make(map[string]*models.TeamRates),
	}
}

// Get returns the cached rates for a team, fetching on first use. A failed
// or empty fetch caches a miss so the cycle doesn't hammer a broken feed.
func (rb *RateBook) Get(team string) (models.TeamRates, bool) {
	if rb == nil || rb.feed == nil || team == "" {
		return models.TeamRates{}, false
	}

	rb.mu.Lock()
	defer rb.mu.Unlock()

	if cached, ok := rb.rates[team]; ok {
		if cached == nil {
			return models.TeamRates{}, false
		}
		return *cached, true
	}

	avgs, err := rb.feed.SubjectAverages(team, rb.window)
	if err != nil || avgs == nil || avgs.Games == 0 {
		if err != nil {
			log.Printf("stats feed failed for %s: %v", team, err)
		}
		rb.rates[team] = nil
		return models.TeamRates{}, false
	}

	rates := RatesFromAverages(avgs)
	rb.rates[team] = &rates
	return rates, true
}

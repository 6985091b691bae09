package probService

import (
	"math"

	"valueScoutBot/models"
)

const (
	expectationFloor = 0.3
	expectationCeil  = 4.0

	homeMultiplier = 1.07
	awayMultiplier = 0.93
)

// marketSigma is the fixed standard deviation used by the Normal model for
// continuous-like totals.
var marketSigma = map[string]float64{
	"corners": 3.0,
	"cards":   1.6,
	"shots":   4.5,
}

const defaultSigma = 3.0

// ForecastEstimator derives a fair probability from the two teams'
// historical per-game rates instead of reference prices. Count-like markets
// go through a Poisson model on expected total goals; everything else gets a
// Normal model with a fixed market sigma and continuity correction.
type ForecastEstimator struct {
	Cfg            *models.SportConfig
	Home           models.TeamRates
	Away           models.TeamRates
	LeagueBaseline float64
}

func (e *ForecastEstimator) Estimate(group *models.PropositionGroup, line float64, side models.Side) *models.FairProbability {
	if side != models.SideOver && side != models.SideUnder {
		return nil
	}
	games := e.Home.Games
	if e.Away.Games < games {
		games = e.Away.Games
	}
	if games == 0 {
		return nil
	}

	var probOver float64
	if e.Cfg.IsCountMarket(group.Market) {
		lambda := e.expectedGoals(e.Home, e.Away) + e.expectedGoals(e.Away, e.Home)
		probOver = 1 - PoissonCDF(lambda, int(math.Floor(line)))
	} else {
		homeRate, awayRate, ok := e.marketRates(group.Market)
		if !ok {
			return nil
		}
		mu := homeRate*homeMultiplier + awayRate*awayMultiplier
		sigma := marketSigma[group.Market]
		if sigma == 0 {
			sigma = defaultSigma
		}
		probOver = 1 - NormalCDF(line+0.5, mu, sigma)
	}

	prob := probOver
	if side == models.SideUnder {
		prob = 1 - probOver
	}

	return &models.FairProbability{
		Subject:     group.Subject,
		Market:      group.Market,
		Line:        line,
		Side:        side,
		Probability: prob,
		Method:      models.MethodForecast,
		SampleSize:  games,
	}
}

// expectedGoals is one side's scoring expectation: own attacking rate times
// the opponent's conceding weakness times the league baseline, clamped to a
// sane range.
func (e *ForecastEstimator) expectedGoals(attacking, defending models.TeamRates) float64 {
	baseline := e.LeagueBaseline
	if baseline <= 0 {
		baseline = 1.35
	}
	attackRate := attacking.GoalsFor / baseline
	concedeWeak := defending.GoalsAgainst / baseline
	return clamp(attackRate*concedeWeak*baseline, expectationFloor, expectationCeil)
}

func (e *ForecastEstimator) marketRates(market string) (home, away float64, ok bool) {
	switch market {
	case "corners":
		return e.Home.Corners, e.Away.Corners, true
	case "cards":
		return e.Home.Cards, e.Away.Cards, true
	case "shots":
		return e.Home.Shots, e.Away.Shots, true
	}
	return 0, 0, false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package evalService

import (
	"sort"
	"time"

	"valueScoutBot/models"
	"valueScoutBot/services/probService"
)

// EVPercent is the percentage edge of a price against a fair probability.
func EVPercent(fairProb, price float64) float64 {
	return (fairProb*price - 1) * 100
}

// EvaluateGroup runs every line bucket and side of a group through the
// estimator and returns the opportunities that clear the sport's EV gate.
// Both sides of the same line are evaluated independently.
func EvaluateGroup(group *models.PropositionGroup, est probService.Estimator, cfg *models.SportConfig) []models.Opportunity {
	var opps []models.Opportunity

	lines := make([]float64, 0, len(group.Buckets))
	for line := range group.Buckets {
		lines = append(lines, line)
	}
	sort.Float64s(lines)

	for _, line := range lines {
		bucket := group.Buckets[line]
		for _, side := range bucketSides(bucket) {
			if opp := evaluateSide(group, bucket, side, est, cfg); opp != nil {
				opps = append(opps, *opp)
			}
		}
	}
	return opps
}

func evaluateSide(group *models.PropositionGroup, bucket *models.LineBucket, side models.Side, est probService.Estimator, cfg *models.SportConfig) *models.Opportunity {
	fair := est.Estimate(group, bucket.Line, side)
	if fair == nil {
		return nil
	}
	if fair.SampleSize < cfg.MinReferenceBooks {
		return nil
	}

	// Best qualifying price per bookmaker.
	best := make(map[string]models.BookmakerPrice)
	for _, prop := range bucket.Playable {
		if prop.Side != side {
			continue
		}
		if prop.Price <= 1.0 || prop.Price > cfg.MaxPrice {
			continue
		}
		ev := EVPercent(fair.Probability, prop.Price)
		if ev < cfg.MinEVPercent {
			continue
		}
		if prev, ok := best[prop.Bookmaker]; !ok || ev > prev.EVPercent {
			best[prop.Bookmaker] = models.BookmakerPrice{
				Bookmaker: prop.Bookmaker,
				Price:     prop.Price,
				EVPercent: ev,
			}
		}
	}
	if len(best) == 0 {
		return nil
	}

	prices := make([]models.BookmakerPrice, 0, len(best))
	for _, bp := range best {
		prices = append(prices, bp)
	}
	sort.Slice(prices, func(i, j int) bool {
		if prices[i].EVPercent != prices[j].EVPercent {
			return prices[i].EVPercent > prices[j].EVPercent
		}
		return prices[i].Bookmaker < prices[j].Bookmaker
	})

	top := prices[0]
	return &models.Opportunity{
		Subject:       group.Subject,
		Market:        group.Market,
		Line:          bucket.Line,
		Side:          side,
		Bookmaker:     top.Bookmaker,
		Price:         top.Price,
		EVPercent:     top.EVPercent,
		FairProb:      fair.Probability,
		Method:        fair.Method,
		SampleSize:    fair.SampleSize,
		AllBookmakers: prices,
		UpdatedAt:     time.Now(),
	}
}

// bucketSides returns the distinct sides quoted by playable books in a bucket.
func bucketSides(bucket *models.LineBucket) []models.Side {
	seen := make(map[models.Side]bool)
	var sides []models.Side
	for _, prop := range bucket.Playable {
		if !seen[prop.Side] {
			seen[prop.Side] = true
			sides = append(sides, prop.Side)
		}
	}
	return sides
}

package probService

import (
	"math"
	"sort"

	"valueScoutBot/models"
)

const (
	powerBisectLo   = 0.5
	powerBisectHi   = 2.0
	powerIterations = 50
	powerTolerance  = 1e-4
)

// DevigEstimator strips bookmaker margin from two-sided reference prices.
// Every reference bookmaker quoting both sides at a comparable line
// contributes one de-vigged probability; the estimate is their mean.
type DevigEstimator struct {
	Method        models.DevigMethod
	LineTolerance float64
}

func (e *DevigEstimator) Estimate(group *models.PropositionGroup, line float64, side models.Side) *models.FairProbability {
	type sidePair struct {
		own float64
		opp float64
	}

	opposite := side.Opposite()

	// Each reference book contributes one two-sided pair, taken from its
	// nearest comparable line (exact match wins). Both sides of a pair must
	// come from the same line; a book quoting 2.5 and 3.0 never has its
	// sides mixed across them. Lines are walked in ascending order so an
	// equidistant tie always resolves the same way.
	chosen := make(map[string]*sidePair)
	chosenDist := make(map[string]float64)

	lines := make([]float64, 0, len(group.Buckets))
	for bucketLine := range group.Buckets {
		lines = append(lines, bucketLine)
	}
	sort.Float64s(lines)

	for _, bucketLine := range lines {
		dist := math.Abs(bucketLine - line)
		if dist > e.LineTolerance {
			continue
		}

		pairs := make(map[string]*sidePair)
		for _, prop := range group.Buckets[bucketLine].Reference {
			pair, ok := pairs[prop.Bookmaker]
			if !ok {
				pair = &sidePair{}
				pairs[prop.Bookmaker] = pair
			}
			switch prop.Side {
			case side:
				pair.own = prop.Price
			case opposite:
				pair.opp = prop.Price
			}
		}

		for book, pair := range pairs {
			if pair.own <= 1.0 || pair.opp <= 1.0 {
				continue
			}
			if _, ok := chosen[book]; !ok || dist < chosenDist[book] {
				chosen[book] = pair
				chosenDist[book] = dist
			}
		}
	}

	if len(chosen) == 0 {
		return nil
	}

	sum := 0.0
	for _, pair := range chosen {
		sum += DevigPair(1/pair.own, 1/pair.opp, e.Method)
	}

	return &models.FairProbability{
		Subject:     group.Subject,
		Market:      group.Market,
		Line:        line,
		Side:        side,
		Probability: sum / float64(len(chosen)),
		Method:      models.MethodDevig,
		SampleSize:  len(chosen),
	}
}

// DevigPair converts one bookmaker's implied probabilities for the two sides
// of a market into a fair probability for the first side. Both methods
// guarantee fair(own) + fair(opp) = 1.
func DevigPair(pOwn, pOpp float64, method models.DevigMethod) float64 {
	switch method {
	case models.DevigPower:
		k := powerExponent(pOwn, pOpp)
		own := math.Pow(pOwn, k)
		opp := math.Pow(pOpp, k)
		return own / (own + opp)
	default:
		return pOwn / (pOwn + pOpp)
	}
}

// powerExponent solves p1^k + p2^k = 1 by bisection. The sum is strictly
// decreasing in k for probabilities below one, so the bracket holds whenever
// the implied probabilities carry normal bookmaker margin.
func powerExponent(p1, p2 float64) float64 {
	lo, hi := powerBisectLo, powerBisectHi
	for i := 0; i < powerIterations; i++ {
		mid := (lo + hi) / 2
		if math.Pow(p1, mid)+math.Pow(p2, mid) > 1 {
			lo = mid
		} else {
			hi = mid
		}
		if hi-lo < powerTolerance {
			break
		}
	}
	return (lo + hi) / 2
}

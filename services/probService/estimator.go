package probService

import (
	"valueScoutBot/models"
)

// Estimator produces a fair probability for one (subject, market, line, side)
// slice of a proposition group. A nil result means no probability is
// available and the slice is skipped downstream.
type Estimator interface {
	Estimate(group *models.PropositionGroup, line float64, side models.Side) *models.FairProbability
}

package models

type ProbMethod string

const (
	MethodDevig    ProbMethod = "devig"
	MethodForecast ProbMethod = "forecast"
)

// FairProbability is the model-free probability estimate for one
// (subject, market, line, side). SampleSize is the number of reference
// bookmakers (devig) or games (forecast) behind the estimate.
type FairProbability struct {
	Subject     string
	Market      string
	Line        float64
	Side        Side
	Probability float64
	Method      ProbMethod
	SampleSize  int
}

// TeamRates are per-game averages for one team over a trailing window,
// consumed by the forecast estimator.
type TeamRates struct {
	Team         string
	GoalsFor     float64
	GoalsAgainst float64
	Corners      float64
	Cards        float64
	Shots        float64
	Games        int
}

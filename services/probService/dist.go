package probService

import "math"

// PoissonCDF returns P(X <= k) for X ~ Poisson(lambda).
func PoissonCDF(lambda float64, k int) float64 {
	if k < 0 {
		return 0
	}
	if lambda <= 0 {
		return 1
	}

	term := math.Exp(-lambda)
	sum := term
	for i := 1; i <= k; i++ {
		term *= lambda / float64(i)
		sum += term
	}
	if sum > 1 {
		return 1
	}
	return sum
}

// NormalCDF returns P(X <= x) for X ~ Normal(mu, sigma).
func NormalCDF(x, mu, sigma float64) float64 {
	if sigma <= 0 {
		if x < mu {
			return 0
		}
		return 1
	}
	return 0.5 * (1 + math.Erf((x-mu)/(sigma*math.Sqrt2)))
}

package traffic

import (
	"fmt"
	"math"
	"math/rand"
)

// ExponentialSampler draws non-negative real durations from an exponential
// distribution via inverse-CDF sampling: -mean * ln(u) for uniform u in [0,1).
type ExponentialSampler struct {
	mean float64
}

// NewExponentialSampler returns a sampler with the given mean.
// The mean must be strictly positive.
func NewExponentialSampler(mean float64) (*ExponentialSampler, error) {
	if mean <= 0 {
		return nil, fmt.Errorf("exponential sampler: mean must be > 0, got %g", mean)
	}
	return &ExponentialSampler{mean: mean}, nil
}

// Sample consumes exactly one uniform draw from rng and returns one variate.
func (s *ExponentialSampler) Sample(rng *rand.Rand) float64 {
	u := rng.Float64()
	if u == 0 {
		u = math.SmallestNonzeroFloat64 // prevent -ln(0) = +Inf
	}
	return -math.Log(u) * s.mean
}

// Mean returns the configured mean of the distribution.
func (s *ExponentialSampler) Mean() float64 {
	return s.mean
}

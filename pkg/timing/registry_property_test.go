package timing

import (
	"errors"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestRegistryProperty_TotalMatchesSamples verifies the consistency
// invariant between the cached total and the sample history.
func TestRegistryProperty_TotalMatchesSamples(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("total equals sum of samples and count equals history length", prop.ForAll(
		func(values []float64) bool {
			r := NewRegistry()
			var sum float64
			for _, v := range values {
				r.Add("p", v)
				sum += v
			}
			if len(values) == 0 {
				_, err := r.Total("p")
				return errors.Is(err, ErrUnknownTimer)
			}

			total, err := r.Total("p")
			if err != nil {
				return false
			}
			count, err := r.Count("p")
			if err != nil {
				return false
			}
			samples, err := r.Samples("p")
			if err != nil {
				return false
			}
			return count == len(values) &&
				len(samples) == len(values) &&
				math.Abs(total-sum) < 1e-6
		},
		gen.SliceOf(gen.Float64Range(0, 10000)),
	))

	properties.TestingRun(t)
}

// TestRegistryProperty_StatisticsOrdering verifies min <= median <= max and
// min <= mean <= max for any non-empty history.
func TestRegistryProperty_StatisticsOrdering(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("min <= median <= max and min <= mean <= max", prop.ForAll(
		func(values []float64) bool {
			if len(values) == 0 {
				return true
			}
			r := NewRegistry()
			for _, v := range values {
				r.Add("p", v)
			}

			minV, err := r.Min("p")
			if err != nil {
				return false
			}
			maxV, err := r.Max("p")
			if err != nil {
				return false
			}
			median, err := r.Median("p")
			if err != nil {
				return false
			}
			mean, err := r.Mean("p")
			if err != nil {
				return false
			}
			const eps = 1e-9
			return minV <= median && median <= maxV &&
				minV-eps <= mean && mean <= maxV+eps
		},
		gen.SliceOf(gen.Float64Range(0, 10000)),
	))

	properties.TestingRun(t)
}

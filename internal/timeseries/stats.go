package timeseries

import (
	"math"
	"sort"

	"github.com/gmartell/ratioscope/internal/domain/models"
)

// Summarize computes the descriptive statistics for a value sequence, in
// original (chronological) order. Returns nil on an empty input — "no
// statistics available" is the caller's outcome, never a division by zero.
//
// StdDev is the population standard deviation (divisor n, not n-1).
// Percentile is the percentage of values <= the last element of the input
// in its original order; the last element must be read before any sorting.
// All float fields are rounded to two decimals at computation time.
func Summarize(values []float64) *models.Summary {
	n := len(values)
	if n == 0 {
		return nil
	}

	// Latest observation, by input order. Captured before sorting.
	latest := values[n-1]

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(n)

	var sqDiff float64
	atOrBelowLatest := 0
	for _, v := range values {
		d := v - mean
		sqDiff += d * d
		if v <= latest {
			atOrBelowLatest++
		}
	}
	stdDev := math.Sqrt(sqDiff / float64(n))

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	var median float64
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	} else {
		median = sorted[n/2]
	}

	return &models.Summary{
		Mean:        round2(mean),
		Median:      round2(median),
		StdDev:      round2(stdDev),
		Min:         round2(sorted[0]),
		Max:         round2(sorted[n-1]),
		PlusOneDev:  round2(mean + stdDev),
		MinusOneDev: round2(mean - stdDev),
		PlusTwoDev:  round2(mean + 2*stdDev),
		MinusTwoDev: round2(mean - 2*stdDev),
		Percentile:  round2(float64(atOrBelowLatest) / float64(n) * 100),
		Count:       n,
	}
}

// round2 rounds to two decimal places (half away from zero).
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

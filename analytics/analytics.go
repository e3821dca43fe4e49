// Package analytics computes derived statistics over price series produced
// by the engine. Every function is pure and total over its documented
// preconditions: degenerate input yields a defined fallback, never a fault.
package analytics

import (
	"math"

	"github.com/sokoview/soko-feed/engine"
	"github.com/sokoview/soko-feed/market"
)

// MovingAverage returns the trailing arithmetic mean of the last period
// elements. A series shorter than period is averaged in full. The series
// must be non-empty.
func MovingAverage(series []float64, period int) float64 {
	if len(series) > period {
		series = series[len(series)-period:]
	}
	return mean(series)
}

// Volatility returns the population standard deviation of series.
// Fewer than two elements measure no spread and return 0.
func Volatility(series []float64) float64 {
	if len(series) < 2 {
		return 0
	}
	return math.Sqrt(sumSquaredDeviations(series) / float64(len(series)))
}

// Efficiency returns the absolute Pearson correlation between two price
// series sharing a time axis, in [0, 1]. 1 means perfect linear
// co-movement between the two markets. Mismatched lengths, fewer than two
// points, or a zero-variance series all return 0.
func Efficiency(a, b []float64) float64 {
	n := len(a)
	if n != len(b) || n < 2 {
		return 0
	}

	ma := mean(a)
	mb := mean(b)
	cov := 0.0
	for i := 0; i < n; i++ {
		cov += (a[i] - ma) * (b[i] - mb)
	}

	denom := math.Sqrt(sumSquaredDeviations(a) * sumSquaredDeviations(b))
	if denom == 0 {
		return 0
	}
	return math.Abs(cov / denom)
}

// Spread returns the mean pairwise difference a[i] - b[i] between two
// equal-length series, e.g. the average price gap between two cities for
// one commodity. Mismatched or empty input returns 0.
func Spread(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	sum := 0.0
	for i := range a {
		sum += a[i] - b[i]
	}
	return sum / float64(len(a))
}

// Series extracts one city/commodity price column from a history slice,
// preserving order, for feeding the statistics above.
func Series(history []engine.HistoricalPoint, city market.City, com market.Commodity) []float64 {
	out := make([]float64, len(history))
	for i, p := range history {
		switch {
		case city == market.Nairobi && com == market.Maize:
			out[i] = p.NairobiMaize
		case city == market.Nairobi && com == market.Beans:
			out[i] = p.NairobiBeans
		case city == market.Mombasa && com == market.Maize:
			out[i] = p.MombasaMaize
		case city == market.Mombasa && com == market.Beans:
			out[i] = p.MombasaBeans
		}
	}
	return out
}

func mean(series []float64) float64 {
	sum := 0.0
	for _, v := range series {
		sum += v
	}
	return sum / float64(len(series))
}

func sumSquaredDeviations(series []float64) float64 {
	m := mean(series)
	sum := 0.0
	for _, v := range series {
		d := v - m
		sum += d * d
	}
	return sum
}

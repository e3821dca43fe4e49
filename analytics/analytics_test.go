package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokoview/soko-feed/engine"
	"github.com/sokoview/soko-feed/market"
)

func TestMovingAverage_PeriodExceedsLength(t *testing.T) {
	// Mean of the whole series, no padding, no failure.
	assert.Equal(t, 20.0, MovingAverage([]float64{10, 20, 30}, 7))
}

func TestMovingAverage_TrailingWindow(t *testing.T) {
	series := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	// Last 3 elements: 8, 9, 10.
	assert.Equal(t, 9.0, MovingAverage(series, 3))
}

func TestMovingAverage_ExactPeriod(t *testing.T) {
	assert.Equal(t, 2.0, MovingAverage([]float64{1, 2, 3}, 3))
}

func TestVolatility_Constant(t *testing.T) {
	assert.Equal(t, 0.0, Volatility([]float64{100, 100, 100}))
}

func TestVolatility_InsufficientData(t *testing.T) {
	assert.Equal(t, 0.0, Volatility(nil))
	assert.Equal(t, 0.0, Volatility([]float64{42}))
}

func TestVolatility_TwoPoints(t *testing.T) {
	// Population stdev of two points equidistant from mean 15.
	assert.Equal(t, 5.0, Volatility([]float64{10, 20}))
}

func TestEfficiency_PerfectCoMovement(t *testing.T) {
	assert.Equal(t, 1.0, Efficiency([]float64{1, 2, 3}, []float64{2, 4, 6}))
}

func TestEfficiency_PerfectInverse(t *testing.T) {
	// Absolute correlation: perfectly opposed markets still score 1.
	assert.Equal(t, 1.0, Efficiency([]float64{1, 2, 3}, []float64{6, 4, 2}))
}

func TestEfficiency_ZeroVariance(t *testing.T) {
	// A constant series has a zero denominator; must be 0, not NaN.
	assert.Equal(t, 0.0, Efficiency([]float64{5, 5, 5}, []float64{1, 2, 3}))
	assert.Equal(t, 0.0, Efficiency([]float64{1, 2, 3}, []float64{5, 5, 5}))
}

func TestEfficiency_LengthMismatch(t *testing.T) {
	assert.Equal(t, 0.0, Efficiency([]float64{1, 2}, []float64{1, 2, 3}))
}

func TestEfficiency_TooShort(t *testing.T) {
	assert.Equal(t, 0.0, Efficiency([]float64{1}, []float64{2}))
	assert.Equal(t, 0.0, Efficiency(nil, nil))
}

func TestEfficiency_Partial(t *testing.T) {
	got := Efficiency([]float64{1, 2, 3}, []float64{1, 2, 2})
	assert.Greater(t, got, 0.0)
	assert.Less(t, got, 1.0)
	assert.InDelta(t, 0.866, got, 0.001)
}

func TestSpread(t *testing.T) {
	// Mombasa maize trades 300 over Nairobi on both days.
	assert.Equal(t, -300.0, Spread([]float64{4200, 4300}, []float64{4500, 4600}))
	assert.Equal(t, 0.0, Spread([]float64{1, 2}, []float64{1}))
	assert.Equal(t, 0.0, Spread(nil, nil))
}

func TestIdempotence(t *testing.T) {
	series := []float64{4200, 4350, 4100, 4280, 4400}
	other := []float64{4500, 4620, 4410, 4550, 4700}

	assert.Equal(t, MovingAverage(series, 3), MovingAverage(series, 3))
	assert.Equal(t, Volatility(series), Volatility(series))
	assert.Equal(t, Efficiency(series, other), Efficiency(series, other))
	assert.Equal(t, Spread(series, other), Spread(series, other))
}

func TestSeries(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
	}
	hist := []engine.HistoricalPoint{
		{Date: day(1), NairobiMaize: 4100, NairobiBeans: 8400, MombasaMaize: 4400, MombasaBeans: 9100},
		{Date: day(2), NairobiMaize: 4200, NairobiBeans: 8500, MombasaMaize: 4500, MombasaBeans: 9200},
	}

	require.Equal(t, []float64{4100, 4200}, Series(hist, market.Nairobi, market.Maize))
	require.Equal(t, []float64{8400, 8500}, Series(hist, market.Nairobi, market.Beans))
	require.Equal(t, []float64{4400, 4500}, Series(hist, market.Mombasa, market.Maize))
	require.Equal(t, []float64{9100, 9200}, Series(hist, market.Mombasa, market.Beans))
}

func TestSeriesFeedsAnalytics(t *testing.T) {
	synth := engine.NewSynthesizer(
		engine.WithSource(engine.NewRNG(42)),
		engine.WithClock(func() time.Time {
			return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
		}),
	)
	hist := synth.History()
	require.Len(t, hist, 30)

	nairobi := Series(hist, market.Nairobi, market.Maize)
	mombasa := Series(hist, market.Mombasa, market.Maize)

	assert.Greater(t, MovingAverage(nairobi, 7), 0.0)
	assert.GreaterOrEqual(t, Volatility(nairobi), 0.0)

	eff := Efficiency(nairobi, mombasa)
	assert.GreaterOrEqual(t, eff, 0.0)
	assert.LessOrEqual(t, eff, 1.0)
}

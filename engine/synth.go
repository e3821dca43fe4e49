package engine

import (
	"math"
	"time"

	"github.com/sokoview/soko-feed/market"
)

const (
	historyDays     = 30
	priceFloor      = 0.5   // prices never fall below this fraction of base
	trendPerDay     = 0.001 // upward drift per day of recency in the history window
	seasonalAmp     = 0.05  // one full sine cycle across the window, ±5%
	historyVolScale = 0.5   // historical series fluctuate at half volatility
)

// PriceSnapshot is one observed price for a commodity in a city.
// Snapshots are created fresh on every generation call and never mutated.
type PriceSnapshot struct {
	City      market.City
	Commodity market.Commodity
	Price     float64 // KES per market.Unit, whole shillings
	Change    float64 // percent vs the base price, one decimal
	Time      time.Time
}

// HistoricalPoint carries one calendar day's four prices.
type HistoricalPoint struct {
	Date         time.Time
	NairobiMaize float64
	NairobiBeans float64
	MombasaMaize float64
	MombasaBeans float64
}

// Synthesizer produces simulated price observations around the constant
// base-price tables. Every call is independent; the only state is the
// random source and the clock.
type Synthesizer struct {
	src Source
	now func() time.Time
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithSource sets the uniform random source.
func WithSource(src Source) Option {
	return func(s *Synthesizer) { s.src = src }
}

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Synthesizer) { s.now = now }
}

// NewSynthesizer creates a synthesizer. Defaults to a time-seeded RNG and
// the wall clock.
func NewSynthesizer(opts ...Option) *Synthesizer {
	s := &Synthesizer{
		src: NewRNG(0),
		now: time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Snapshot returns one freshly fluctuated price per (city, commodity) pair,
// city-major in display order. All records share a single timestamp.
func (s *Synthesizer) Snapshot() []PriceSnapshot {
	cities := market.Cities()
	commodities := market.Commodities()
	ts := s.now()

	out := make([]PriceSnapshot, 0, len(cities)*len(commodities))
	for _, city := range cities {
		for _, com := range commodities {
			base := market.BasePrice(com, city)
			price := s.fluctuate(base, market.Volatility(com), base)
			out = append(out, PriceSnapshot{
				City:      city,
				Commodity: com,
				Price:     price,
				Change:    percentChange(price, base),
				Time:      ts,
			})
		}
	}
	return out
}

// History returns a 30-day price series ending today (clock date, UTC),
// oldest first, one point per calendar day. Daily prices fluctuate at half
// volatility around a base shaped by TrendFactor and SeasonalFactor.
func (s *Synthesizer) History() []HistoricalPoint {
	today := s.now().UTC().Truncate(24 * time.Hour)

	out := make([]HistoricalPoint, 0, historyDays)
	for i := 0; i < historyDays; i++ {
		shape := TrendFactor(i, historyDays) * SeasonalFactor(i, historyDays)
		out = append(out, HistoricalPoint{
			Date:         today.AddDate(0, 0, i-(historyDays-1)),
			NairobiMaize: s.daily(market.Maize, market.Nairobi, shape),
			NairobiBeans: s.daily(market.Beans, market.Nairobi, shape),
			MombasaMaize: s.daily(market.Maize, market.Mombasa, shape),
			MombasaBeans: s.daily(market.Beans, market.Mombasa, shape),
		})
	}
	return out
}

// daily draws one historical price: half volatility around the shaped base,
// still floored against the unshaped table base.
func (s *Synthesizer) daily(com market.Commodity, city market.City, shape float64) float64 {
	base := market.BasePrice(com, city)
	return s.fluctuate(base*shape, market.Volatility(com)*historyVolScale, base)
}

// fluctuate draws one price around center: a standard-normal shock scaled by
// vol*center, clamped to no less than half the table base (floored, never
// renormalized above), then rounded to whole shillings.
func (s *Synthesizer) fluctuate(center, vol, base float64) float64 {
	price := center + Normal(s.src)*vol*center
	if min := priceFloor * base; price < min {
		price = min
	}
	return math.Round(price)
}

// percentChange returns the percent difference of price vs base, rounded to
// one decimal. A zero base yields 0 rather than dividing. Rounding never
// erases a real move: a nonzero move below 0.05% still reports as ±0.1.
func percentChange(price, base float64) float64 {
	if base == 0 || price == base {
		return 0
	}
	change := math.Round((price-base)/base*1000) / 10
	if change == 0 {
		if price > base {
			return 0.1
		}
		return -0.1
	}
	return change
}

// TrendFactor scales a base price by a mild upward drift across the history
// window: the most recent day (dayIndex == totalDays-1) is exactly 1.0 and
// each day further in the past sits trendPerDay lower.
func TrendFactor(dayIndex, totalDays int) float64 {
	return 1 - trendPerDay*float64(totalDays-1-dayIndex)
}

// SeasonalFactor applies one full sine cycle across the window with
// seasonalAmp amplitude. Day 0 starts the cycle at exactly 1.0.
func SeasonalFactor(dayIndex, totalDays int) float64 {
	return 1 + seasonalAmp*math.Sin(2*math.Pi*float64(dayIndex)/float64(totalDays))
}

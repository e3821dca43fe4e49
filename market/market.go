package market

// City identifies a tracked market city.
type City string

const (
	Nairobi City = "Nairobi"
	Mombasa City = "Mombasa"
)

// Commodity identifies a tracked commodity.
type Commodity string

const (
	Maize Commodity = "Maize"
	Beans Commodity = "Beans"
)

// Unit is the quantity every price refers to, in KES.
const Unit = "90kg bag"

// basePrices holds the reference price per (commodity, city), in KES per Unit.
// Fluctuation is centered on these values and percent changes are measured
// against them. Never mutated at runtime.
var basePrices = map[Commodity]map[City]float64{
	Maize: {
		Nairobi: 4200,
		Mombasa: 4500,
	},
	Beans: {
		Nairobi: 8500,
		Mombasa: 9200,
	},
}

// volatilities holds the fractional fluctuation coefficient per commodity.
var volatilities = map[Commodity]float64{
	Maize: 0.08,
	Beans: 0.05,
}

// Cities returns the tracked cities in display order.
func Cities() []City {
	return []City{Nairobi, Mombasa}
}

// Commodities returns the tracked commodities in display order.
func Commodities() []Commodity {
	return []Commodity{Maize, Beans}
}

// BasePrice returns the reference price for a commodity in a city.
// Unknown pairs return 0.
func BasePrice(c Commodity, city City) float64 {
	return basePrices[c][city]
}

// Volatility returns the fractional fluctuation coefficient for a commodity.
// Unknown commodities return 0.
func Volatility(c Commodity) float64 {
	return volatilities[c]
}

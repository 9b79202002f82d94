// Package market serves the indicative crop price board.
package market

import "time"

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

type CropPrice struct {
	Crop     string  `json:"crop"`
	Price    float64 `json:"price"`
	Unit     string  `json:"unit"`
	Currency string  `json:"currency"`
	Trend    Trend   `json:"trend"`
	Change   float64 `json:"change"`
	Date     string  `json:"date"`
}

var board = []struct {
	crop   string
	price  float64
	trend  Trend
	change float64
}{
	{"Wheat", 20350, TrendUp, 2.3},
	{"Corn", 18750, TrendDown, -1.2},
	{"Soybeans", 42500, TrendUp, 5.8},
	{"Rice (Basmati)", 45000, TrendStable, 0.5},
	{"Tomatoes", 25000, TrendUp, 12.5},
	{"Potatoes", 18000, TrendDown, -3.2},
	{"Cotton", 62000, TrendUp, 3.5},
	{"Sugarcane", 3200, TrendStable, 0.5},
	{"Onions", 15000, TrendDown, -8.2},
	{"Turmeric", 95000, TrendUp, 4.8},
	{"Chickpeas", 55000, TrendUp, 6.2},
}

// Prices returns the board in INR per ton, stamped with now's calendar date
// in now's location.
func Prices(now time.Time) []CropPrice {
	date := now.Format("2006-01-02")
	out := make([]CropPrice, len(board))
	for i, b := range board {
		out[i] = CropPrice{Crop: b.crop, Price: b.price, Unit: "per ton", Currency: "INR", Trend: b.trend, Change: b.change, Date: date}
	}
	return out
}

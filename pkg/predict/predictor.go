// Package predict answers yield and price questions from farmer-uploaded
// tables with plain descriptive statistics.
package predict

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"
)

// Dataset is a table uploaded by the farmer. Cells hold a float64 or a string.
type Dataset struct {
	Name    string           `json:"name"`
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}

// Conditions adjust a yield estimate. Recognised values: Weather good|poor,
// SoilQuality high|low. Anything else leaves the estimate alone.
type Conditions struct {
	Weather     string `json:"weather,omitempty"`
	SoilQuality string `json:"soil_quality,omitempty"`
}

// Profile is the part of a farmer profile the predictor looks at.
type Profile struct {
	SoilType  string
	CropTypes []string
}

const (
	yieldMinConfidence = 0.4
	yieldMaxConfidence = 0.85
	yieldFullSample    = 100.0

	priceMinConfidence = 0.4
	priceMaxConfidence = 0.8
	priceFullSample    = 50.0

	// rows at the end of the price series treated as "recent"
	recentWindow = 10

	// confidence for a matching dataset without usable numbers
	sparseConfidence = 0.2
)

var (
	yieldFilter = []string{"yield", "production", "harvest"}
	yieldValue  = []string{"yield", "production"}
	priceFilter = []string{"price", "cost", "market"}
	priceValue  = []string{"price", "cost"}
)

// PredictYield pools the yield column of every matching dataset and returns
// the mean adjusted for conditions, with range and a ±20% interval.
func PredictYield(datasets []Dataset, cond Conditions) Result {
	matched := filterDatasets(datasets, yieldFilter)
	if len(matched) == 0 {
		return Result{
			Type:        CategoryYield,
			Explanation: "No yield data available for prediction",
			DataUsed:    []string{},
		}
	}

	var sample []float64
	for _, ds := range matched {
		col := findColumn(ds.Columns, yieldValue)
		if col == "" {
			continue
		}
		for _, row := range ds.Rows {
			if v, ok := toNumber(row[col]); ok && v > 0 {
				sample = append(sample, v)
			}
		}
	}
	if len(sample) == 0 {
		return Result{
			Type:        CategoryYield,
			Confidence:  sparseConfidence,
			Explanation: "Insufficient yield data for reliable prediction",
			DataUsed:    datasetNames(matched),
		}
	}

	data := stats.Float64Data(sample)
	mean, _ := stats.Mean(data)
	lo, _ := stats.Min(data)
	hi, _ := stats.Max(data)
	med := upperMedian(sample)

	adjusted := mean
	switch cond.Weather {
	case "good":
		adjusted *= 1.1
	case "poor":
		adjusted *= 0.9
	}
	switch cond.SoilQuality {
	case "high":
		adjusted *= 1.05
	case "low":
		adjusted *= 0.95
	}

	return Result{
		Type:       CategoryYield,
		Confidence: clamp(float64(len(sample))/yieldFullSample, yieldMinConfidence, yieldMaxConfidence),
		Yield: &YieldPrediction{
			Expected: round2(adjusted),
			Range: YieldRange{
				Min:     round2(lo),
				Max:     round2(hi),
				Average: round2(mean),
				Median:  round2(med),
			},
			ConfidenceInterval: Interval{
				Lower: round2(adjusted * 0.8),
				Upper: round2(adjusted * 1.2),
			},
		},
		Explanation: fmt.Sprintf("Based on analysis of %d data points from %d dataset(s). Historical average: %s. Adjusted for current conditions.",
			len(sample), len(matched), formatNumber(round2(mean))),
		DataUsed: datasetNames(matched),
	}
}

// PricePoint is one usable row of a price table.
type PricePoint struct {
	Price float64 `json:"price"`
	Date  any     `json:"date,omitempty"`
	Crop  any     `json:"crop,omitempty"`
}

// PredictPrice compares the mean of the last ten price rows with the overall
// mean. The trend is "increasing" only when the recent mean is strictly higher.
func PredictPrice(datasets []Dataset, cropID string) Result {
	matched := filterDatasets(datasets, priceFilter)
	if len(matched) == 0 {
		return Result{
			Type:        CategoryPrice,
			Explanation: "No price data available for prediction",
			DataUsed:    []string{},
		}
	}

	points := pricePoints(matched, cropID)
	if len(points) == 0 {
		return Result{
			Type:        CategoryPrice,
			Confidence:  sparseConfidence,
			Explanation: "Insufficient price data for reliable prediction",
			DataUsed:    datasetNames(matched),
		}
	}

	prices := make(stats.Float64Data, len(points))
	for i, p := range points {
		prices[i] = p.Price
	}
	avg, _ := stats.Mean(prices)
	recent, _ := stats.Mean(prices[max(0, len(prices)-recentWindow):])

	trend, factor := TrendDecreasing, 0.95
	if recent > avg {
		trend, factor = TrendIncreasing, 1.05
	}
	strength := math.Abs(recent-avg) / avg

	return Result{
		Type:       CategoryPrice,
		Confidence: clamp(float64(len(points))/priceFullSample, priceMinConfidence, priceMaxConfidence),
		Price: &PricePrediction{
			CurrentAverage:     round2(avg),
			RecentAverage:      round2(recent),
			Trend:              trend,
			TrendStrength:      round2(strength * 100),
			PredictedNextMonth: round2(recent * factor),
		},
		Explanation: fmt.Sprintf("Based on %d price records. Current trend is %s with %d%% strength.",
			len(points), trend, int(math.Round(strength*100))),
		DataUsed: datasetNames(matched),
	}
}

func pricePoints(matched []Dataset, cropID string) []PricePoint {
	var out []PricePoint
	for _, ds := range matched {
		col := findColumn(ds.Columns, priceValue)
		for _, row := range ds.Rows {
			var price float64
			if col != "" {
				price, _ = toNumber(row[col])
			}
			if !(price > 0) {
				continue
			}
			p := PricePoint{Price: price, Date: firstPresent(row, "date", "Date", "timestamp"), Crop: row["crop"]}
			if p.Crop == nil || p.Crop == "" {
				p.Crop = cropID
			}
			out = append(out, p)
		}
	}
	return out
}

// Predict routes a chat question to a local prediction. It returns nil when the
// question is not about yield or price, or no dataset has relevant columns; the
// caller then asks the language model instead.
func Predict(query string, profile Profile, datasets []Dataset) *Result {
	cat := ClassifyQuery(query)
	if !HasRelevantColumns(cat, datasets) {
		return nil
	}
	cropID := "general"
	if len(profile.CropTypes) > 0 {
		cropID = profile.CropTypes[0]
	}

	var r Result
	switch cat {
	case CategoryYield:
		soil := "medium"
		if profile.SoilType == "Loamy soil" {
			soil = "high"
		}
		// Live weather is not consulted here; the estimate always assumes good weather.
		r = PredictYield(datasets, Conditions{Weather: "good", SoilQuality: soil})
	case CategoryPrice:
		r = PredictPrice(datasets, cropID)
	default:
		return nil
	}
	return &r
}

func filterDatasets(datasets []Dataset, terms []string) []Dataset {
	var out []Dataset
	for _, ds := range datasets {
		if findColumn(ds.Columns, terms) != "" {
			out = append(out, ds)
		}
	}
	return out
}

func datasetNames(ds []Dataset) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Name
	}
	return out
}

// upperMedian returns the element at index n/2 of the sorted sample. For even
// sizes this is the upper of the two middle values, not their average.
func upperMedian(sample []float64) float64 {
	sorted := slices.Clone(sample)
	slices.Sort(sorted)
	return sorted[len(sorted)/2]
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func round2(v float64) float64 {
	r, err := stats.Round(v, 2)
	if err != nil {
		return v
	}
	return r
}

// toNumber accepts finite numeric cells and strings that parse whole as a
// float. Text with a unit suffix such as "12 kg" is not a number here.
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, finite(n)
	case float32:
		return float64(n), finite(float64(n))
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || !finite(f) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

func firstPresent(row map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := row[k]; ok && v != nil && v != "" {
			return v
		}
	}
	return nil
}

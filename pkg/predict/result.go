package predict

import (
	"fmt"
	"strconv"
	"strings"
)

type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
)

// Result is built fresh per call and never persisted. Exactly one of Yield
// and Price is set when the predictor had usable numbers.
type Result struct {
	Type        Category         `json:"type"`
	Confidence  float64          `json:"confidence"`
	Yield       *YieldPrediction `json:"yield,omitempty"`
	Price       *PricePrediction `json:"price,omitempty"`
	Explanation string           `json:"explanation"`
	DataUsed    []string         `json:"data_used"`
}

type YieldPrediction struct {
	Expected           float64    `json:"expected_yield"`
	Range              YieldRange `json:"range"`
	ConfidenceInterval Interval   `json:"confidence_interval"`
}

type YieldRange struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
	Median  float64 `json:"median"`
}

type Interval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

type PricePrediction struct {
	CurrentAverage     float64 `json:"current_average"`
	RecentAverage      float64 `json:"recent_average"`
	Trend              Trend   `json:"trend"`
	TrendStrength      float64 `json:"trend_strength"` // percent
	PredictedNextMonth float64 `json:"predicted_next_month"`
}

// HasPayload reports whether the predictor found usable numbers.
func (r Result) HasPayload() bool {
	return r.Yield != nil || r.Price != nil
}

// Format renders the result as a chat message.
func (r Result) Format() string {
	var b strings.Builder
	switch {
	case r.Yield != nil:
		y := r.Yield
		fmt.Fprintf(&b, "Yield prediction (%d%% confidence)\n", percent(r.Confidence))
		fmt.Fprintf(&b, "Expected yield: %s\n", formatNumber(y.Expected))
		fmt.Fprintf(&b, "Likely range: %s to %s\n", formatNumber(y.ConfidenceInterval.Lower), formatNumber(y.ConfidenceInterval.Upper))
		fmt.Fprintf(&b, "Historical: min %s, max %s, median %s\n", formatNumber(y.Range.Min), formatNumber(y.Range.Max), formatNumber(y.Range.Median))
	case r.Price != nil:
		p := r.Price
		fmt.Fprintf(&b, "Price prediction (%d%% confidence)\n", percent(r.Confidence))
		fmt.Fprintf(&b, "Average price: %s (recent %s)\n", formatNumber(p.CurrentAverage), formatNumber(p.RecentAverage))
		fmt.Fprintf(&b, "Trend: %s, %s%%\n", p.Trend, formatNumber(p.TrendStrength))
		fmt.Fprintf(&b, "Next month: about %s\n", formatNumber(p.PredictedNextMonth))
	}
	b.WriteString(r.Explanation)
	if len(r.DataUsed) > 0 {
		fmt.Fprintf(&b, "\nData used: %s", strings.Join(r.DataUsed, ", "))
	}
	return b.String()
}

func percent(c float64) int {
	return int(c*100 + 0.5)
}

// formatNumber prints the shortest decimal form: 20, 20.5, 20.25.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package predict

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

func yieldSet(vals ...any) Dataset {
	ds := Dataset{Name: "harvest.csv", Columns: []string{"field", "yield"}}
	for i, v := range vals {
		ds.Rows = append(ds.Rows, map[string]any{"field": float64(i + 1), "yield": v})
	}
	return ds
}

func priceSet(name string, prices ...float64) Dataset {
	ds := Dataset{Name: name, Columns: []string{"date", "price"}}
	for i, p := range prices {
		ds.Rows = append(ds.Rows, map[string]any{"date": float64(2020 + i), "price": p})
	}
	return ds
}

func TestPredictYieldBasic(t *testing.T) {
	r := PredictYield([]Dataset{yieldSet(10.0, 20.0, 30.0)}, Conditions{})
	if r.Yield == nil {
		t.Fatalf("expected payload, got %+v", r)
	}
	want := YieldRange{Min: 10, Max: 30, Average: 20, Median: 20}
	if r.Yield.Range != want {
		t.Fatalf("range = %+v, want %+v", r.Yield.Range, want)
	}
	if r.Yield.Expected != 20 {
		t.Fatalf("expected = %v", r.Yield.Expected)
	}
	if r.Confidence != 0.4 {
		t.Fatalf("confidence = %v", r.Confidence)
	}
	if r.Yield.ConfidenceInterval != (Interval{Lower: 16, Upper: 24}) {
		t.Fatalf("interval = %+v", r.Yield.ConfidenceInterval)
	}
	if !reflect.DeepEqual(r.DataUsed, []string{"harvest.csv"}) {
		t.Fatalf("data used = %v", r.DataUsed)
	}
	if !strings.Contains(r.Explanation, "3 data points from 1 dataset(s)") || !strings.Contains(r.Explanation, "Historical average: 20.") {
		t.Fatalf("explanation = %q", r.Explanation)
	}
}

func TestPredictYieldConditions(t *testing.T) {
	ds := []Dataset{yieldSet(10.0, 20.0, 30.0)}
	tests := []struct {
		cond Conditions
		want float64
	}{
		{Conditions{Weather: "good"}, 22},
		{Conditions{Weather: "poor"}, 18},
		{Conditions{SoilQuality: "high"}, 21},
		{Conditions{SoilQuality: "low"}, 19},
		{Conditions{Weather: "good", SoilQuality: "high"}, 23.1},
		{Conditions{Weather: "cloudy", SoilQuality: "medium"}, 20},
	}
	for _, tt := range tests {
		r := PredictYield(ds, tt.cond)
		if r.Yield.Expected != tt.want {
			t.Errorf("%+v: expected = %v, want %v", tt.cond, r.Yield.Expected, tt.want)
		}
		// the historical range never moves with conditions
		if r.Yield.Range.Average != 20 {
			t.Errorf("%+v: average changed to %v", tt.cond, r.Yield.Range.Average)
		}
	}
}

func TestPredictYieldUpperMedian(t *testing.T) {
	r := PredictYield([]Dataset{yieldSet(40.0, 10.0, 30.0, 20.0)}, Conditions{})
	if r.Yield.Range.Median != 30 {
		t.Fatalf("median = %v, want upper-middle 30", r.Yield.Range.Median)
	}
}

func TestPredictYieldSkipsBadCells(t *testing.T) {
	r := PredictYield([]Dataset{yieldSet(10.0, "n/a", -5.0, 0.0, "30", nil)}, Conditions{})
	if r.Yield == nil {
		t.Fatal("expected payload")
	}
	if r.Yield.Range.Average != 20 || r.Yield.Range.Min != 10 {
		t.Fatalf("range = %+v", r.Yield.Range)
	}
}

func TestPredictYieldSkipsNonFinite(t *testing.T) {
	r := PredictYield([]Dataset{yieldSet(10.0, "inf", math.Inf(1), "NaN", math.NaN(), "-Infinity", 30.0)}, Conditions{})
	if r.Yield == nil {
		t.Fatal("expected payload")
	}
	if r.Yield.Range.Max != 30 || r.Yield.Range.Average != 20 || math.IsInf(r.Yield.Expected, 0) {
		t.Fatalf("yield = %+v", r.Yield)
	}
}

func TestPredictYieldPoolsDatasets(t *testing.T) {
	a := yieldSet(10.0)
	b := Dataset{Name: "b.csv", Columns: []string{"Production_tons"}, Rows: []map[string]any{{"Production_tons": 30.0}}}
	r := PredictYield([]Dataset{a, b}, Conditions{})
	if r.Yield.Range.Average != 20 {
		t.Fatalf("average = %v", r.Yield.Range.Average)
	}
	if len(r.DataUsed) != 2 {
		t.Fatalf("data used = %v", r.DataUsed)
	}
}

func TestPredictYieldConfidenceClamp(t *testing.T) {
	vals := make([]any, 200)
	for i := range vals {
		vals[i] = float64(i + 1)
	}
	if c := PredictYield([]Dataset{yieldSet(vals[:60]...)}, Conditions{}).Confidence; c != 0.6 {
		t.Fatalf("60 samples: confidence = %v", c)
	}
	if c := PredictYield([]Dataset{yieldSet(vals...)}, Conditions{}).Confidence; c != 0.85 {
		t.Fatalf("200 samples: confidence = %v", c)
	}
}

func TestPredictYieldNoData(t *testing.T) {
	r := PredictYield([]Dataset{priceSet("p.csv", 10)}, Conditions{})
	if r.Confidence != 0 || r.HasPayload() {
		t.Fatalf("got %+v", r)
	}
	if r.Explanation != "No yield data available for prediction" {
		t.Fatalf("explanation = %q", r.Explanation)
	}

	// harvest matches the filter but is not a value column
	ds := Dataset{Name: "h.csv", Columns: []string{"harvest_date"}, Rows: []map[string]any{{"harvest_date": "2024-01-01"}}}
	r = PredictYield([]Dataset{ds}, Conditions{})
	if r.Confidence != 0.2 || r.HasPayload() {
		t.Fatalf("got %+v", r)
	}
	if r.Explanation != "Insufficient yield data for reliable prediction" {
		t.Fatalf("explanation = %q", r.Explanation)
	}
}

func TestPredictPriceShortSeries(t *testing.T) {
	r := PredictPrice([]Dataset{priceSet("p.csv", 100, 110, 120)}, "wheat")
	if r.Price == nil {
		t.Fatalf("expected payload, got %+v", r)
	}
	// recent window covers every row, so the means tie and the trend falls to decreasing
	if r.Price.Trend != TrendDecreasing {
		t.Fatalf("trend = %s", r.Price.Trend)
	}
	if r.Price.CurrentAverage != 110 || r.Price.RecentAverage != 110 || r.Price.TrendStrength != 0 {
		t.Fatalf("payload = %+v", r.Price)
	}
	if r.Price.PredictedNextMonth != 104.5 {
		t.Fatalf("next month = %v", r.Price.PredictedNextMonth)
	}
	if r.Confidence != 0.4 {
		t.Fatalf("confidence = %v", r.Confidence)
	}
}

func TestPredictPriceIncreasing(t *testing.T) {
	var prices []float64
	for i := 1; i <= 12; i++ {
		prices = append(prices, float64(i*10))
	}
	r := PredictPrice([]Dataset{priceSet("p.csv", prices...)}, "wheat")
	p := r.Price
	if p.Trend != TrendIncreasing {
		t.Fatalf("trend = %s", p.Trend)
	}
	if p.CurrentAverage != 65 || p.RecentAverage != 75 {
		t.Fatalf("averages = %v / %v", p.CurrentAverage, p.RecentAverage)
	}
	if p.TrendStrength != 15.38 {
		t.Fatalf("strength = %v", p.TrendStrength)
	}
	if p.PredictedNextMonth != 78.75 {
		t.Fatalf("next month = %v", p.PredictedNextMonth)
	}
	if !strings.HasSuffix(r.Explanation, "Current trend is increasing with 15% strength.") {
		t.Fatalf("explanation = %q", r.Explanation)
	}
}

func TestPredictPriceKeepsRowOrder(t *testing.T) {
	// two datasets concatenated: the last ten rows all come from the cheap one
	a := priceSet("a.csv", 500, 500, 500, 500, 500)
	b := priceSet("b.csv", 10, 10, 10, 10, 10, 10, 10, 10, 10, 10)
	r := PredictPrice([]Dataset{a, b}, "rice")
	if r.Price.RecentAverage != 10 {
		t.Fatalf("recent = %v", r.Price.RecentAverage)
	}
	if r.Price.Trend != TrendDecreasing {
		t.Fatalf("trend = %s", r.Price.Trend)
	}
}

func TestPredictPriceNoData(t *testing.T) {
	r := PredictPrice([]Dataset{yieldSet(1.0)}, "wheat")
	if r.Confidence != 0 || r.HasPayload() {
		t.Fatalf("got %+v", r)
	}
	ds := Dataset{Name: "m.csv", Columns: []string{"market"}, Rows: []map[string]any{{"market": "Chennai"}}}
	r = PredictPrice([]Dataset{ds}, "wheat")
	if r.Confidence != 0.2 || r.HasPayload() {
		t.Fatalf("got %+v", r)
	}
}

func TestPricePointsCropFallback(t *testing.T) {
	ds := Dataset{Name: "p.csv", Columns: []string{"crop", "Date", "cost"}, Rows: []map[string]any{
		{"crop": "Onion", "Date": "2024-01", "cost": 12.0},
		{"Date": "2024-02", "cost": 14.0},
		{"cost": 0.0},
	}}
	pts := pricePoints([]Dataset{ds}, "rice")
	if len(pts) != 2 {
		t.Fatalf("points = %+v", pts)
	}
	if pts[0].Crop != "Onion" || pts[1].Crop != "rice" || pts[1].Date != "2024-02" {
		t.Fatalf("points = %+v", pts)
	}
}

func TestPredictRouting(t *testing.T) {
	ds := []Dataset{yieldSet(10.0, 20.0, 30.0), priceSet("p.csv", 100, 110, 120)}

	r := Predict("What harvest can I expect?", Profile{SoilType: "Loamy soil"}, ds)
	if r == nil || r.Type != CategoryYield {
		t.Fatalf("got %+v", r)
	}
	if r.Yield.Expected != 23.1 {
		t.Fatalf("expected = %v (good weather, high soil)", r.Yield.Expected)
	}

	r = Predict("What harvest can I expect?", Profile{SoilType: "Clay soil"}, ds)
	if r.Yield.Expected != 22 {
		t.Fatalf("expected = %v", r.Yield.Expected)
	}

	if r := Predict("Should I sell now?", Profile{CropTypes: []string{"Wheat"}}, ds); r == nil || r.Type != CategoryPrice {
		t.Fatalf("got %+v", r)
	}
	if r := Predict("Will it rain tomorrow?", Profile{}, ds); r != nil {
		t.Fatalf("weather questions go to the assistant, got %+v", r)
	}
	if r := Predict("Best price this week?", Profile{}, []Dataset{yieldSet(1.0)}); r != nil {
		t.Fatalf("no price columns, got %+v", r)
	}
}

func TestFormat(t *testing.T) {
	r := PredictYield([]Dataset{yieldSet(10.0, 20.0, 30.0)}, Conditions{Weather: "good"})
	out := r.Format()
	for _, want := range []string{"Yield prediction (40% confidence)", "Expected yield: 22", "17.6 to 26.4", "Data used: harvest.csv"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}

	empty := PredictPrice(nil, "wheat")
	if got := empty.Format(); got != "No price data available for prediction" {
		t.Fatalf("format = %q", got)
	}
}

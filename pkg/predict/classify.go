package predict

import "strings"

type Category string

const (
	CategoryYield   Category = "yield"
	CategoryPrice   Category = "price"
	CategoryWeather Category = "weather"
	CategoryDisease Category = "disease"
	CategoryGeneral Category = "general"
)

// Keywords that route a chat question, checked in this order.
var queryKeywords = []struct {
	cat   Category
	terms []string
}{
	{CategoryYield, []string{"yield", "harvest", "production"}},
	{CategoryPrice, []string{"price", "market", "sell"}},
	{CategoryWeather, []string{"weather", "rain", "temperature"}},
	{CategoryDisease, []string{"disease", "pest", "infection"}},
}

// Column name fragments that make a dataset relevant to a category.
var columnKeywords = map[Category][]string{
	CategoryYield:   {"yield", "production", "harvest", "output", "kg", "tons", "bushels"},
	CategoryPrice:   {"price", "cost", "market", "value", "sell", "buy", "dollar", "currency"},
	CategoryWeather: {"temperature", "rainfall", "humidity", "weather", "climate", "precipitation"},
	CategoryDisease: {"disease", "pest", "infection", "damage", "loss", "health", "treatment"},
}

// ClassifyQuery maps free text to a question category. First match wins.
func ClassifyQuery(text string) Category {
	q := strings.ToLower(text)
	for _, k := range queryKeywords {
		if containsAny(q, k.terms) {
			return k.cat
		}
	}
	return CategoryGeneral
}

// HasRelevantColumns reports whether any dataset has a column whose name
// contains one of the category's keywords.
func HasRelevantColumns(cat Category, datasets []Dataset) bool {
	terms := columnKeywords[cat]
	if len(terms) == 0 {
		return false
	}
	for _, ds := range datasets {
		if findColumn(ds.Columns, terms) != "" {
			return true
		}
	}
	return false
}

// findColumn returns the first column containing any of terms, or "".
func findColumn(columns []string, terms []string) string {
	for _, col := range columns {
		if containsAny(strings.ToLower(col), terms) {
			return col
		}
	}
	return ""
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

package predict

import (
	"fmt"
	"strings"
)

const maxNumericListed = 3

// SummarizeDatasets produces short human-readable notes about what the
// uploaded tables contain. It never fails; no datasets yields no notes.
func SummarizeDatasets(datasets []Dataset) []string {
	notes := []string{}
	for _, ds := range datasets {
		notes = append(notes, fmt.Sprintf("%s: %d records with %d variables", ds.Name, len(ds.Rows), len(ds.Columns)))

		if numeric := numericColumns(ds); len(numeric) > 0 {
			line := "Numeric data available for: " + strings.Join(numeric[:min(len(numeric), maxNumericListed)], ", ")
			if len(numeric) > maxNumericListed {
				line += "..."
			}
			notes = append(notes, line)
		}

		if findColumn(ds.Columns, []string{"date", "time", "year"}) != "" {
			notes = append(notes, "Time-series data detected - can analyze trends and patterns")
		}
	}
	if len(datasets) > 1 {
		notes = append(notes, "Multiple datasets available for cross-analysis and correlation studies")
	}
	return notes
}

// numericColumns looks only at the first row.
func numericColumns(ds Dataset) []string {
	if len(ds.Rows) == 0 {
		return nil
	}
	var out []string
	for _, col := range ds.Columns {
		if _, ok := toNumber(ds.Rows[0][col]); ok {
			out = append(out, col)
		}
	}
	return out
}

package compat

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

type Dimension string

const (
	DimSoil       Dimension = "soil"
	DimIrrigation Dimension = "irrigation"
	DimClimate    Dimension = "climate"
	DimSeason     Dimension = "season"
)

type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Penalties deducted from a perfect score of 100.
const (
	penaltySoil       = 30
	penaltyIrrigation = 20
	penaltySeason     = 15
	penaltyClimate    = 35

	// recommendations need a score strictly above this
	recommendThreshold = 70
	recommendLimit     = 5
)

type Issue struct {
	Type        Dimension `json:"type"`
	Severity    Severity  `json:"severity"`
	Message     string    `json:"message"`
	Suggestions []string  `json:"suggestions"`
}

type Result struct {
	Compatible              bool     `json:"compatible"`
	Issues                  []Issue  `json:"issues"`
	RecommendedAlternatives []string `json:"recommended_alternatives"`
	Score                   int      `json:"score"`
}

// Conditions are the farm attributes a crop is checked against.
type Conditions struct {
	SoilType         string `json:"soil_type" query:"soil"`
	IrrigationMethod string `json:"irrigation_method" query:"irrigation"`
	Location         string `json:"location" query:"location"`
	Season           string `json:"season" query:"season"`
}

// Evaluate scores a crop against the given conditions. Soil, irrigation, season
// and climate are checked independently; each failing check adds one issue.
func (t *Table) Evaluate(cropID string, c Conditions) Result {
	crop, ok := t.byID[strings.ToLower(strings.TrimSpace(cropID))]
	if !ok {
		return Result{
			Compatible: false,
			Issues: []Issue{{
				Type:        DimClimate,
				Severity:    SeverityError,
				Message:     fmt.Sprintf("Crop %q not found in database", cropID),
				Suggestions: []string{"Choose from available crops in the list"},
			}},
			RecommendedAlternatives: []string{},
			Score:                   0,
		}
	}

	issues := make([]Issue, 0, 4)
	score := 100
	for _, check := range []func(CropProfile, Conditions) (Issue, int, bool){
		checkSoil, checkIrrigation, checkSeason, checkClimate,
	} {
		if is, penalty, failed := check(crop, c); failed {
			issues = append(issues, is)
			score -= penalty
		}
	}

	compatible := !slices.ContainsFunc(issues, func(is Issue) bool { return is.Severity == SeverityError })
	alts := []string{}
	if !compatible {
		alts = append(alts, crop.Alternatives...)
	}
	return Result{
		Compatible:              compatible,
		Issues:                  issues,
		RecommendedAlternatives: alts,
		Score:                   max(0, score),
	}
}

// Recommend evaluates every crop and returns up to five display names scoring
// above 70, best first. Equal scores keep table order.
func (t *Table) Recommend(c Conditions) []string {
	type scored struct {
		name  string
		score int
	}
	var recs []scored
	for _, id := range t.order {
		r := t.Evaluate(id, c)
		if r.Score > recommendThreshold {
			recs = append(recs, scored{name: t.byID[id].Name, score: r.Score})
		}
	}
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].score > recs[j].score })

	out := make([]string, 0, recommendLimit)
	for i := 0; i < len(recs) && i < recommendLimit; i++ {
		out = append(out, recs[i].name)
	}
	return out
}

func checkSoil(crop CropProfile, c Conditions) (Issue, int, bool) {
	if slices.Contains(crop.SoilTypes, c.SoilType) {
		return Issue{}, 0, false
	}
	return Issue{
		Type:     DimSoil,
		Severity: SeverityError,
		Message:  fmt.Sprintf("%s is not well-suited for %s", crop.Name, c.SoilType),
		Suggestions: []string{
			"Consider soil amendments to improve drainage/texture",
			"Recommended soil types: " + strings.Join(crop.SoilTypes, ", "),
			"Alternative crops: " + alternativesText(crop),
		},
	}, penaltySoil, true
}

func checkIrrigation(crop CropProfile, c Conditions) (Issue, int, bool) {
	if slices.Contains(crop.IrrigationMethod, c.IrrigationMethod) {
		return Issue{}, 0, false
	}
	return Issue{
		Type:     DimIrrigation,
		Severity: SeverityWarning,
		Message:  fmt.Sprintf("%s may not be optimal for %s", c.IrrigationMethod, crop.Name),
		Suggestions: []string{
			"Recommended irrigation: " + strings.Join(crop.IrrigationMethod, ", "),
			"Monitor water stress carefully with current method",
			"Consider upgrading irrigation system for better yields",
		},
	}, penaltyIrrigation, true
}

func checkSeason(crop CropProfile, c Conditions) (Issue, int, bool) {
	if slices.Contains(crop.GrowingSeasons, c.Season) {
		return Issue{}, 0, false
	}
	return Issue{
		Type:     DimSeason,
		Severity: SeverityWarning,
		Message:  fmt.Sprintf("%s planting may not be optimal for %s", c.Season, crop.Name),
		Suggestions: []string{
			"Recommended seasons: " + strings.Join(crop.GrowingSeasons, ", "),
			"Consider season extension techniques",
			"Plan for potential yield reduction",
		},
	}, penaltySeason, true
}

func checkClimate(crop CropProfile, c Conditions) (Issue, int, bool) {
	if climateFits(crop, c.Location) {
		return Issue{}, 0, false
	}
	return Issue{
		Type:     DimClimate,
		Severity: SeverityError,
		Message:  fmt.Sprintf("Climate in %s may not be suitable for %s", c.Location, crop.Name),
		Suggestions: []string{
			"Suitable climates: " + strings.Join(crop.ClimateZones, ", "),
			"Consider greenhouse cultivation",
			"Alternative crops: " + alternativesText(crop),
		},
	}, penaltyClimate, true
}

// climateFits infers a coarse climate from keywords in the free-text location.
// Locations without a keyword never fail.
func climateFits(crop CropProfile, location string) bool {
	loc := strings.ToLower(location)
	tolerates := func(zones ...string) bool {
		return slices.ContainsFunc(zones, func(z string) bool { return slices.Contains(crop.ClimateZones, z) })
	}
	if (strings.Contains(loc, "tropical") || strings.Contains(loc, "hot")) && !tolerates("tropical", "subtropical") {
		return false
	}
	if (strings.Contains(loc, "cold") || strings.Contains(loc, "arctic")) && !tolerates("temperate", "cool temperate") {
		return false
	}
	return true
}

func alternativesText(crop CropProfile) string {
	if len(crop.Alternatives) == 0 {
		return "consult local extension"
	}
	return strings.Join(crop.Alternatives, ", ")
}

// Package profile holds the onboarding questionnaire and farmer profile rules.
package profile

import (
	"errors"
	"time"

	"farmassist/pkg/compat"
)

var (
	ErrNotFound = errors.New("profile not found")
	ErrInvalid  = errors.New("invalid profile")
)

// Languages a profile may choose for replies.
var Languages = []string{"english", "tamil", "hindi"}

type Question struct {
	ID          string   `json:"id"`
	Question    string   `json:"question"`
	Type        string   `json:"type"` // text|radio|checkbox|date
	Placeholder string   `json:"placeholder,omitempty"`
	Options     []string `json:"options,omitempty"`
}

// Questions returns the onboarding questionnaire. Soil and irrigation options
// come from the crop table so answers line up with the compatibility checks.
func Questions(t *compat.Table) []Question {
	return []Question{
		{ID: "name", Question: "What's your name?", Type: "text", Placeholder: "Enter your name"},
		{ID: "farmSize", Question: "What's the size of your farm?", Type: "radio",
			Options: []string{"Small (< 10 acres)", "Medium (10-100 acres)", "Large (100+ acres)"}},
		{ID: "cropTypes", Question: "What crops do you grow?", Type: "checkbox",
			Options: []string{"Wheat", "Corn", "Tomatoes", "Potatoes", "Soybeans", "Rice", "Other vegetables"}},
		{ID: "location", Question: "Where is your farm located?", Type: "text",
			Placeholder: "Enter your location (city, state/country)"},
		{ID: "experience", Question: "How long have you been farming?", Type: "radio",
			Options: []string{"New farmer (< 2 years)", "Experienced (2-10 years)", "Veteran (10+ years)"}},
		{ID: "mainChallenges", Question: "What are your main farming challenges?", Type: "checkbox",
			Options: []string{"Pest control", "Weather conditions", "Soil quality", "Market prices", "Water management", "Equipment"}},
		{ID: "soilType", Question: "What type of soil does your farm have?", Type: "radio", Options: t.SoilTypes()},
		{ID: "plantingDate", Question: "When do you plan to plant?", Type: "date"},
		{ID: "irrigationType", Question: "How do you irrigate your crops?", Type: "radio", Options: t.IrrigationMethods()},
	}
}

// SeasonFor maps a planting month to the season names used by the crop table:
// Dec-Feb Winter, Mar-May Spring, Jun-Sep Monsoon, Oct-Nov Fall.
func SeasonFor(d time.Time) string {
	switch d.Month() {
	case time.December, time.January, time.February:
		return "Winter"
	case time.March, time.April, time.May:
		return "Spring"
	case time.June, time.July, time.August, time.September:
		return "Monsoon"
	default:
		return "Fall"
	}
}

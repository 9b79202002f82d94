package compat

import (
	"errors"
	"fmt"
	"strings"
)

type WaterLevel string

const (
	WaterLow    WaterLevel = "low"
	WaterMedium WaterLevel = "medium"
	WaterHigh   WaterLevel = "high"
)

// CropProfile is one row of the crop reference table.
type CropProfile struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	SoilTypes        []string   `json:"soil_types"`
	IrrigationMethod []string   `json:"irrigation_methods"`
	ClimateZones     []string   `json:"climate_zones"`
	MinTemperature   float64    `json:"min_temperature"`
	MaxTemperature   float64    `json:"max_temperature"`
	WaterRequirement WaterLevel `json:"water_requirement"`
	GrowingSeasons   []string   `json:"growing_seasons"`
	CommonIssues     []string   `json:"common_issues"`
	Alternatives     []string   `json:"alternatives,omitempty"`
}

// Table is an immutable, ordered crop reference table keyed by lower-case id.
type Table struct {
	order    []string
	byID     map[string]CropProfile
	dangling []string
}

// NewTable validates the profiles and builds a table. Alternatives that do not
// resolve to a crop in the table are kept on the profile and reported by Dangling.
func NewTable(profiles []CropProfile) (*Table, error) {
	if len(profiles) == 0 {
		return nil, errors.New("empty crop table")
	}
	t := &Table{byID: make(map[string]CropProfile, len(profiles))}
	for _, p := range profiles {
		id := strings.ToLower(strings.TrimSpace(p.ID))
		if id == "" {
			return nil, fmt.Errorf("crop %q: missing id", p.Name)
		}
		if _, dup := t.byID[id]; dup {
			return nil, fmt.Errorf("crop %q: duplicate id", id)
		}
		if p.MinTemperature > p.MaxTemperature {
			return nil, fmt.Errorf("crop %q: min temperature %.1f above max %.1f", id, p.MinTemperature, p.MaxTemperature)
		}
		switch p.WaterRequirement {
		case WaterLow, WaterMedium, WaterHigh:
		default:
			return nil, fmt.Errorf("crop %q: unknown water requirement %q", id, p.WaterRequirement)
		}
		if p.Name == "" {
			p.Name = p.ID
		}
		p.ID = id
		t.byID[id] = cloneProfile(p)
		t.order = append(t.order, id)
	}
	for _, id := range t.order {
		for _, alt := range t.byID[id].Alternatives {
			if _, ok := t.byID[strings.ToLower(alt)]; !ok {
				t.dangling = append(t.dangling, id+"->"+alt)
			}
		}
	}
	return t, nil
}

// Lookup finds a crop by id, ignoring case.
func (t *Table) Lookup(id string) (CropProfile, bool) {
	p, ok := t.byID[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return CropProfile{}, false
	}
	return cloneProfile(p), true
}

// Resolve finds a crop by id or display name, ignoring case.
func (t *Table) Resolve(nameOrID string) (CropProfile, bool) {
	if p, ok := t.Lookup(nameOrID); ok {
		return p, true
	}
	want := strings.TrimSpace(nameOrID)
	for _, id := range t.order {
		if strings.EqualFold(t.byID[id].Name, want) {
			return cloneProfile(t.byID[id]), true
		}
	}
	return CropProfile{}, false
}

// SoilTypes and IrrigationMethods list the distinct values in table order.
func (t *Table) SoilTypes() []string {
	return t.distinct(func(p CropProfile) []string { return p.SoilTypes })
}

func (t *Table) IrrigationMethods() []string {
	return t.distinct(func(p CropProfile) []string { return p.IrrigationMethod })
}

func (t *Table) distinct(field func(CropProfile) []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, id := range t.order {
		for _, v := range field(t.byID[id]) {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

// Crops returns every profile in declaration order.
func (t *Table) Crops() []CropProfile {
	out := make([]CropProfile, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, cloneProfile(t.byID[id]))
	}
	return out
}

func (t *Table) Len() int { return len(t.order) }

// Dangling lists "crop->alternative" pairs whose alternative is not in the table.
func (t *Table) Dangling() []string {
	return append([]string(nil), t.dangling...)
}

func cloneProfile(p CropProfile) CropProfile {
	cp := p
	cp.SoilTypes = append([]string(nil), p.SoilTypes...)
	cp.IrrigationMethod = append([]string(nil), p.IrrigationMethod...)
	cp.ClimateZones = append([]string(nil), p.ClimateZones...)
	cp.GrowingSeasons = append([]string(nil), p.GrowingSeasons...)
	cp.CommonIssues = append([]string(nil), p.CommonIssues...)
	cp.Alternatives = append([]string(nil), p.Alternatives...)
	return cp
}

var defaultTable = mustDefault()

// Default returns the built-in crop table.
func Default() *Table { return defaultTable }

func mustDefault() *Table {
	t, err := NewTable(defaultCrops)
	if err != nil {
		panic("compat: built-in crop table: " + err.Error())
	}
	return t
}

var defaultCrops = []CropProfile{
	{
		ID: "wheat", Name: "Wheat",
		SoilTypes:        []string{"Loamy soil", "Clay soil", "Sandy loam"},
		IrrigationMethod: []string{"Rain-fed", "Sprinkler irrigation", "Flood irrigation"},
		ClimateZones:     []string{"temperate", "continental", "semi-arid"},
		MinTemperature:   3, MaxTemperature: 32, WaterRequirement: WaterMedium,
		GrowingSeasons: []string{"Fall", "Winter", "Spring"},
		CommonIssues:   []string{"rust", "aphids", "drought stress"},
		Alternatives:   []string{"barley", "oats", "rye"},
	},
	{
		ID: "corn", Name: "Corn",
		SoilTypes:        []string{"Loamy soil", "Sandy loam", "Well-drained soil"},
		IrrigationMethod: []string{"Drip irrigation", "Sprinkler irrigation", "Center pivot"},
		ClimateZones:     []string{"temperate", "subtropical", "continental"},
		MinTemperature:   10, MaxTemperature: 35, WaterRequirement: WaterHigh,
		GrowingSeasons: []string{"Spring", "Summer"},
		CommonIssues:   []string{"corn borer", "drought", "nitrogen deficiency"},
		Alternatives:   []string{"sorghum", "millet", "soybeans"},
	},
	{
		ID: "rice", Name: "Rice",
		SoilTypes:        []string{"Clay soil", "Clay loam", "Heavy clay"},
		IrrigationMethod: []string{"Flood irrigation", "Paddy system", "Continuous flooding"},
		ClimateZones:     []string{"tropical", "subtropical", "humid temperate"},
		MinTemperature:   16, MaxTemperature: 38, WaterRequirement: WaterHigh,
		GrowingSeasons: []string{"Spring", "Summer", "Monsoon"},
		CommonIssues:   []string{"blast disease", "brown planthopper", "water management"},
		Alternatives:   []string{"wheat", "barley", "millet"},
	},
	{
		ID: "tomatoes", Name: "Tomatoes",
		SoilTypes:        []string{"Loamy soil", "Sandy loam", "Well-drained soil"},
		IrrigationMethod: []string{"Drip irrigation", "Micro-sprinkler", "Furrow irrigation"},
		ClimateZones:     []string{"temperate", "subtropical", "mediterranean"},
		MinTemperature:   18, MaxTemperature: 29, WaterRequirement: WaterMedium,
		GrowingSeasons: []string{"Spring", "Summer", "Fall"},
		CommonIssues:   []string{"blight", "whitefly", "calcium deficiency"},
		Alternatives:   []string{"peppers", "eggplant", "cucumber"},
	},
	{
		ID: "potatoes", Name: "Potatoes",
		SoilTypes:        []string{"Sandy soil", "Sandy loam", "Loamy soil"},
		IrrigationMethod: []string{"Sprinkler irrigation", "Drip irrigation", "Furrow irrigation"},
		ClimateZones:     []string{"temperate", "cool temperate", "highland tropical"},
		MinTemperature:   7, MaxTemperature: 24, WaterRequirement: WaterMedium,
		GrowingSeasons: []string{"Spring", "Fall"},
		CommonIssues:   []string{"late blight", "potato beetle", "scab"},
		Alternatives:   []string{"sweet potatoes", "turnips", "carrots"},
	},
	{
		ID: "soybeans", Name: "Soybeans",
		SoilTypes:        []string{"Loamy soil", "Clay loam", "Well-drained soil"},
		IrrigationMethod: []string{"Rain-fed", "Sprinkler irrigation", "Drip irrigation"},
		ClimateZones:     []string{"temperate", "subtropical", "continental"},
		MinTemperature:   10, MaxTemperature: 30, WaterRequirement: WaterMedium,
		GrowingSeasons: []string{"Spring", "Summer"},
		CommonIssues:   []string{"soybean rust", "aphids", "white mold"},
		Alternatives:   []string{"corn", "sunflower", "canola"},
	},
	{
		ID: "carrots", Name: "Carrots",
		SoilTypes:        []string{"Sandy soil", "Sandy loam", "Deep loamy soil"},
		IrrigationMethod: []string{"Drip irrigation", "Sprinkler irrigation", "Surface irrigation"},
		ClimateZones:     []string{"temperate", "cool temperate", "mediterranean"},
		MinTemperature:   7, MaxTemperature: 24, WaterRequirement: WaterMedium,
		GrowingSeasons: []string{"Spring", "Fall", "Winter"},
		CommonIssues:   []string{"carrot fly", "root rot", "splitting"},
		Alternatives:   []string{"parsnips", "turnips", "beets"},
	},
	{
		ID: "lettuce", Name: "Lettuce",
		SoilTypes:        []string{"Loamy soil", "Sandy loam", "Well-drained soil"},
		IrrigationMethod: []string{"Drip irrigation", "Micro-sprinkler", "Surface irrigation"},
		ClimateZones:     []string{"temperate", "cool temperate", "mediterranean"},
		MinTemperature:   4, MaxTemperature: 20, WaterRequirement: WaterMedium,
		GrowingSeasons: []string{"Spring", "Fall", "Winter"},
		CommonIssues:   []string{"aphids", "downy mildew", "tip burn"},
		Alternatives:   []string{"spinach", "kale", "chard"},
	},
	{
		ID: "basmati_rice", Name: "Basmati Rice",
		SoilTypes:        []string{"Clay soil", "Clay loam", "Alluvial soil"},
		IrrigationMethod: []string{"Flood irrigation", "Paddy system", "Continuous flooding"},
		ClimateZones:     []string{"subtropical", "tropical", "humid temperate"},
		MinTemperature:   20, MaxTemperature: 37, WaterRequirement: WaterHigh,
		GrowingSeasons: []string{"Monsoon", "Kharif"},
		CommonIssues:   []string{"blast disease", "stem borer", "bacterial blight"},
		Alternatives:   []string{"wheat", "sugarcane", "cotton"},
	},
	{
		ID: "sugarcane", Name: "Sugarcane",
		SoilTypes:        []string{"Clay loam", "Sandy loam", "Alluvial soil"},
		IrrigationMethod: []string{"Flood irrigation", "Drip irrigation", "Furrow irrigation"},
		ClimateZones:     []string{"tropical", "subtropical"},
		MinTemperature:   20, MaxTemperature: 38, WaterRequirement: WaterHigh,
		GrowingSeasons: []string{"Year-round", "Monsoon", "Winter"},
		CommonIssues:   []string{"red rot", "smut", "aphids"},
		Alternatives:   []string{"cotton", "maize", "sorghum"},
	},
	{
		ID: "cotton", Name: "Cotton",
		SoilTypes:        []string{"Black cotton soil", "Clay loam", "Sandy loam"},
		IrrigationMethod: []string{"Drip irrigation", "Sprinkler irrigation", "Flood irrigation"},
		ClimateZones:     []string{"semi-arid", "subtropical", "tropical"},
		MinTemperature:   15, MaxTemperature: 35, WaterRequirement: WaterMedium,
		GrowingSeasons: []string{"Kharif", "Monsoon"},
		CommonIssues:   []string{"bollworm", "aphids", "whitefly"},
		Alternatives:   []string{"soybeans", "sunflower", "maize"},
	},
	{
		ID: "onions", Name: "Onions",
		SoilTypes:        []string{"Sandy loam", "Loamy soil", "Clay loam"},
		IrrigationMethod: []string{"Drip irrigation", "Sprinkler irrigation", "Furrow irrigation"},
		ClimateZones:     []string{"temperate", "subtropical", "semi-arid"},
		MinTemperature:   10, MaxTemperature: 30, WaterRequirement: WaterMedium,
		GrowingSeasons: []string{"Rabi", "Winter", "Spring"},
		CommonIssues:   []string{"purple blotch", "thrips", "neck rot"},
		Alternatives:   []string{"garlic", "shallots", "leeks"},
	},
	{
		ID: "turmeric", Name: "Turmeric",
		SoilTypes:        []string{"Sandy loam", "Clay loam", "Red soil"},
		IrrigationMethod: []string{"Drip irrigation", "Sprinkler irrigation", "Rain-fed"},
		ClimateZones:     []string{"tropical", "subtropical"},
		MinTemperature:   20, MaxTemperature: 35, WaterRequirement: WaterMedium,
		GrowingSeasons: []string{"Monsoon", "Kharif"},
		CommonIssues:   []string{"rhizome rot", "leaf spot", "shoot borer"},
		Alternatives:   []string{"ginger", "cardamom", "black pepper"},
	},
	{
		ID: "chickpeas", Name: "Chickpeas (Chana)",
		SoilTypes:        []string{"Sandy loam", "Clay loam", "Black soil"},
		IrrigationMethod: []string{"Rain-fed", "Sprinkler irrigation", "Drip irrigation"},
		ClimateZones:     []string{"semi-arid", "temperate", "subtropical"},
		MinTemperature:   10, MaxTemperature: 30, WaterRequirement: WaterLow,
		GrowingSeasons: []string{"Rabi", "Winter"},
		CommonIssues:   []string{"wilt", "pod borer", "aphids"},
		Alternatives:   []string{"lentils", "field peas", "black gram"},
	},
	{
		ID: "mustard", Name: "Mustard",
		SoilTypes:        []string{"Sandy loam", "Clay loam", "Alluvial soil"},
		IrrigationMethod: []string{"Rain-fed", "Sprinkler irrigation", "Flood irrigation"},
		ClimateZones:     []string{"temperate", "semi-arid", "subtropical"},
		MinTemperature:   5, MaxTemperature: 25, WaterRequirement: WaterLow,
		GrowingSeasons: []string{"Rabi", "Winter"},
		CommonIssues:   []string{"aphids", "white rust", "alternaria blight"},
		Alternatives:   []string{"sesame", "sunflower", "safflower"},
	},
	{
		ID: "millet", Name: "Pearl Millet (Bajra)",
		SoilTypes:        []string{"Sandy soil", "Sandy loam", "Drought-prone soil"},
		IrrigationMethod: []string{"Rain-fed", "Drip irrigation", "Sprinkler irrigation"},
		ClimateZones:     []string{"arid", "semi-arid", "tropical"},
		MinTemperature:   20, MaxTemperature: 42, WaterRequirement: WaterLow,
		GrowingSeasons: []string{"Kharif", "Monsoon"},
		CommonIssues:   []string{"downy mildew", "smut", "shoot fly"},
		Alternatives:   []string{"sorghum", "maize", "finger millet"},
	},
	{
		ID: "eggplant", Name: "Eggplant (Brinjal)",
		SoilTypes:        []string{"Sandy loam", "Clay loam", "Red soil"},
		IrrigationMethod: []string{"Drip irrigation", "Furrow irrigation", "Sprinkler irrigation"},
		ClimateZones:     []string{"tropical", "subtropical"},
		MinTemperature:   18, MaxTemperature: 32, WaterRequirement: WaterMedium,
		GrowingSeasons: []string{"Year-round", "Kharif", "Rabi"},
		CommonIssues:   []string{"fruit borer", "bacterial wilt", "aphids"},
		Alternatives:   []string{"tomatoes", "peppers", "okra"},
	},
	{
		ID: "okra", Name: "Okra (Bhindi)",
		SoilTypes:        []string{"Sandy loam", "Clay loam", "Well-drained soil"},
		IrrigationMethod: []string{"Drip irrigation", "Furrow irrigation", "Rain-fed"},
		ClimateZones:     []string{"tropical", "subtropical", "warm temperate"},
		MinTemperature:   20, MaxTemperature: 35, WaterRequirement: WaterMedium,
		GrowingSeasons: []string{"Kharif", "Summer", "Monsoon"},
		CommonIssues:   []string{"fruit borer", "aphids", "powdery mildew"},
		Alternatives:   []string{"eggplant", "tomatoes", "peppers"},
	},
}

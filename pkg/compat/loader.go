package compat

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadTable reads a crop reference table from a .csv or .xlsx file. The first
// row is a header; list cells are separated by ';' or '|'.
func LoadTable(path string) (*Table, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = readCSV(path)
	case ".xlsx":
		rows, err = readXLSX(path)
	default:
		return nil, fmt.Errorf("crop table %s: unsupported extension", path)
	}
	if err != nil {
		return nil, fmt.Errorf("crop table %s: %w", path, err)
	}
	profiles, err := parseRows(rows)
	if err != nil {
		return nil, fmt.Errorf("crop table %s: %w", path, err)
	}
	return NewTable(profiles)
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	var rows [][]string
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

func readXLSX(path string) ([][]string, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer x.Close()
	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	return x.GetRows(sheets[0])
}

func normHeader(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF")
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

func parseRows(rows [][]string) ([]CropProfile, error) {
	if len(rows) < 2 {
		return nil, errors.New("need a header and at least one crop")
	}
	hmap := map[string]int{}
	for i, h := range rows[0] {
		hmap[normHeader(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[normHeader(k)]; ok {
				return idx
			}
		}
		return -1
	}

	cID := findAny("id", "crop", "key")
	cName := findAny("name", "display_name")
	cSoil := findAny("soil_types", "soil", "soils")
	cIrr := findAny("irrigation_methods", "irrigation")
	cClim := findAny("climate_zones", "climate")
	cMin := findAny("min_temperature", "min_temp", "tmin")
	cMax := findAny("max_temperature", "max_temp", "tmax")
	cWater := findAny("water_requirement", "water")
	cSeason := findAny("growing_season", "seasons", "season")
	cIssues := findAny("common_issues", "issues")
	cAlt := findAny("alternatives", "alternative_crops")

	if cID == -1 || cSoil == -1 || cIrr == -1 || cClim == -1 || cSeason == -1 {
		return nil, fmt.Errorf("missing required columns, found %v; need at least id, soil_types, irrigation_methods, climate_zones, growing_season", rows[0])
	}

	var out []CropProfile
	for n, rec := range rows[1:] {
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}
		id := get(cID)
		if id == "" {
			continue
		}
		p := CropProfile{
			ID:               id,
			Name:             get(cName),
			SoilTypes:        splitList(get(cSoil)),
			IrrigationMethod: splitList(get(cIrr)),
			ClimateZones:     splitList(get(cClim)),
			WaterRequirement: WaterLevel(strings.ToLower(get(cWater))),
			GrowingSeasons:   splitList(get(cSeason)),
			CommonIssues:     splitList(get(cIssues)),
			Alternatives:     splitList(get(cAlt)),
		}
		if p.WaterRequirement == "" {
			p.WaterRequirement = WaterMedium
		}
		var err error
		if p.MinTemperature, err = parseTemp(get(cMin)); err != nil {
			return nil, fmt.Errorf("row %d: min temperature: %w", n+2, err)
		}
		if p.MaxTemperature, err = parseTemp(get(cMax)); err != nil {
			return nil, fmt.Errorf("row %d: max temperature: %w", n+2, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func parseTemp(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == '|' })
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

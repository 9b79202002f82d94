// Package dataset turns uploaded CSV and XLSX files into typed tables.
package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"farmassist/entities"
	"farmassist/pkg/predict"
)

var (
	ErrEmptyFile   = errors.New("file must have a header and at least one data row")
	ErrUnsupported = errors.New("only .csv and .xlsx files are supported")
)

// Parse dispatches on the file extension.
func Parse(filename string, data []byte) (*entities.Dataset, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return ParseCSV(filename, data)
	case ".xlsx":
		return ParseXLSX(filename, data)
	default:
		return nil, ErrUnsupported
	}
}

// ParseCSV splits on newlines and commas only. Quotes are stripped, not
// interpreted, so a quoted cell holding a comma is split in two.
func ParseCSV(name string, data []byte) (*entities.Dataset, error) {
	var lines []string
	for _, l := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) < 2 {
		return nil, ErrEmptyFile
	}

	split := func(line string) []string {
		cells := strings.Split(line, ",")
		for i, c := range cells {
			cells[i] = strings.ReplaceAll(strings.TrimSpace(c), `"`, "")
		}
		return cells
	}
	headers := split(lines[0])
	headers[0] = strings.TrimPrefix(headers[0], "\uFEFF")

	rows := make([][]string, 0, len(lines)-1)
	for _, l := range lines[1:] {
		rows = append(rows, split(l))
	}
	return build(name, "csv", int64(len(data)), headers, rows), nil
}

// ParseXLSX reads the first sheet of a workbook.
func ParseXLSX(name string, data []byte) (*entities.Dataset, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyFile
	}
	all, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}

	var nonEmpty [][]string
	for _, r := range all {
		if strings.TrimSpace(strings.Join(r, "")) != "" {
			nonEmpty = append(nonEmpty, r)
		}
	}
	if len(nonEmpty) < 2 {
		return nil, ErrEmptyFile
	}
	headers := make([]string, len(nonEmpty[0]))
	for i, h := range nonEmpty[0] {
		headers[i] = strings.TrimSpace(h)
	}
	return build(name, "xlsx", int64(len(data)), headers, nonEmpty[1:]), nil
}

func build(name, typ string, size int64, headers []string, rows [][]string) *entities.Dataset {
	ds := &entities.Dataset{
		Name:       name,
		Type:       typ,
		Size:       size,
		Columns:    headers,
		Rows:       make([]map[string]any, 0, len(rows)),
		UploadedAt: time.Now(),
	}
	for _, rec := range rows {
		row := make(map[string]any, len(headers))
		for i, h := range headers {
			v := ""
			if i < len(rec) {
				v = strings.TrimSpace(rec[i])
			}
			row[h] = cell(v)
		}
		ds.Rows = append(ds.Rows, row)
	}
	return ds
}

// cell stores finite numeric text as float64 and everything else as the
// string. "NaN" and "inf" stay text since they cannot be encoded as JSON.
func cell(v string) any {
	if f, err := strconv.ParseFloat(v, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	return v
}

// ForPredict converts stored datasets into the predictor's view.
func ForPredict(in []entities.Dataset) []predict.Dataset {
	out := make([]predict.Dataset, len(in))
	for i, d := range in {
		out[i] = predict.Dataset{Name: d.Name, Columns: d.Columns, Rows: d.Rows}
	}
	return out
}

// Package dataio loads numeric series for charts from CSV and JSON files and
// exports computed swarm placements as JSON for round-trip processing.
package dataio

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/matzehuels/swarmplot/pkg/errors"
)

// Series is a named column of numeric values.
type Series struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// ReadCSV decodes numeric series from CSV data. When header is true the
// first row names the columns; otherwise columns are named "col0", "col1",
// and so on. Empty cells are skipped; any other unparsable cell is an error.
func ReadCSV(r io.Reader, header bool) ([]Series, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read csv")
	}
	if len(records) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidData, "csv input is empty")
	}

	cols := 0
	for _, rec := range records {
		if len(rec) > cols {
			cols = len(rec)
		}
	}

	series := make([]Series, cols)
	start := 0
	if header {
		for i := range series {
			if i < len(records[0]) {
				series[i].Name = records[0][i]
			}
		}
		start = 1
	}
	for i := range series {
		if series[i].Name == "" {
			series[i].Name = "col" + strconv.Itoa(i)
		}
	}

	for row := start; row < len(records); row++ {
		for col, cell := range records[row] {
			if cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, errors.New(errors.ErrCodeInvalidData,
					"csv row %d column %d: %q is not a number", row+1, col+1, cell)
			}
			series[col].Values = append(series[col].Values, v)
		}
	}

	for _, s := range series {
		if len(s.Values) == 0 {
			return nil, errors.New(errors.ErrCodeInvalidData, "csv column %q has no values", s.Name)
		}
	}
	return series, nil
}

// ImportCSV reads a CSV file at path and returns its series.
func ImportCSV(path string, header bool) ([]Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadCSV(f, header)
}

// ReadJSON decodes series from JSON data. Two layouts are accepted: a list
// of {"name", "values"} objects, or a single object mapping names to value
// arrays.
func ReadJSON(r io.Reader) ([]Series, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	var list []Series
	if err := json.Unmarshal(raw, &list); err == nil {
		return validateSeries(list)
	}

	var byName map[string][]float64
	if err := json.Unmarshal(raw, &byName); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json series")
	}
	list = make([]Series, 0, len(byName))
	for name, values := range byName {
		list = append(list, Series{Name: name, Values: values})
	}
	return validateSeries(list)
}

// ImportJSON reads a JSON file at path and returns its series.
func ImportJSON(path string) ([]Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

func validateSeries(list []Series) ([]Series, error) {
	if len(list) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidData, "json input contains no series")
	}
	for _, s := range list {
		if len(s.Values) == 0 {
			return nil, errors.New(errors.ErrCodeInvalidData, "series %q has no values", s.Name)
		}
	}
	return list, nil
}

// Lookup returns the series with the given name.
func Lookup(list []Series, name string) (Series, error) {
	for _, s := range list {
		if s.Name == name {
			return s, nil
		}
	}
	return Series{}, errors.New(errors.ErrCodeNotFound, "no series named %q", name)
}

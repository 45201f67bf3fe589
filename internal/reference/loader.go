// CropAdvisor - Regional Crop Recommendation Service
// Copyright 2026 Agrovista Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrovista/cropadvisor

package reference

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// requiredColumns is the full CSV schema. Loading fails when any of these
// is missing from the header; extra columns are ignored.
var requiredColumns = append([]string{
	ColDistrict,
	ColSeason,
	ColSoilType,
	ColAltitudeZone,
}, NumericColumns...)

// LoadCSV reads and validates a reference table from the file at path.
// The header is matched case-insensitively. Every data row must carry a
// parseable number in each numeric column.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open reference table: %w", err)
	}
	defer f.Close()

	table, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load reference table %s: %w", path, err)
	}
	return table, nil
}

// Parse reads a reference table from CSV data.
func Parse(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	colIndex, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	var rows []Row
	sums := make(map[string]float64, len(NumericColumns))

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row at line %d: %w", line, err)
		}

		row := Row{
			District:     Normalize(record[colIndex[ColDistrict]]),
			Season:       Normalize(record[colIndex[ColSeason]]),
			SoilType:     Normalize(record[colIndex[ColSoilType]]),
			AltitudeZone: Normalize(record[colIndex[ColAltitudeZone]]),
			Values:       make(map[string]float64, len(NumericColumns)),
		}

		for _, col := range NumericColumns {
			raw := strings.TrimSpace(record[colIndex[col]])
			val, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: column %q: invalid number %q: %w", line, col, raw, ErrBadNumericValue)
			}
			row.Values[col] = val
			sums[col] += val
		}

		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, ErrEmptyTable
	}

	means := make(map[string]float64, len(NumericColumns))
	for _, col := range NumericColumns {
		means[col] = sums[col] / float64(len(rows))
	}

	return &Table{rows: rows, means: means}, nil
}

// indexColumns maps required column names to their positions in the header.
func indexColumns(header []string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		positions[Normalize(name)] = i
	}

	colIndex := make(map[string]int, len(requiredColumns))
	var missing []string
	for _, col := range requiredColumns {
		idx, ok := positions[col]
		if !ok {
			missing = append(missing, col)
			continue
		}
		colIndex[col] = idx
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	return colIndex, nil
}

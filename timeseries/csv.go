package timeseries

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

var errNonFinite = errors.New("non-finite sample")

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	ValueColumn string // Column name for samples (default: "value")
	IDColumn    string // Column name for series ID (optional, for filtering)
	IDFilter    string // Value to filter by ID column
	HasHeader   bool   // Whether CSV has header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip at start
	SkipInvalid bool   // Drop unparsable or NA samples instead of failing
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "value",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// LoadCSV loads a series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a series from an io.Reader.
//
// With a header, the value column is matched by name, falling back to
// "value", "phase", "freq" or "y" and finally to the last column. Without a
// header the first column holds the samples. Gaps break uniform sampling, so
// bad samples are an error unless SkipInvalid is set.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.Comment = '#'
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	valueIdx, idIdx := 0, -1
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}
		valueIdx, idIdx = findColumns(header, opts)
	}

	var values []float64
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := reader.FieldPos(0)

		if opts.IDFilter != "" && idIdx >= 0 && idIdx < len(record) {
			id := strings.TrimSpace(strings.Trim(record[idIdx], "\""))
			if id != opts.IDFilter {
				continue
			}
		}

		if valueIdx >= len(record) {
			if opts.SkipInvalid {
				continue
			}
			return nil, fmt.Errorf("timeseries: line %d: missing column %d", line, valueIdx)
		}

		valStr := strings.TrimSpace(strings.Trim(record[valueIdx], "\""))
		val, err := strconv.ParseFloat(valStr, 64)
		if err == nil && (math.IsNaN(val) || math.IsInf(val, 0)) {
			err = errNonFinite
		}
		if err != nil {
			if opts.SkipInvalid {
				continue
			}
			return nil, &ParseError{Line: line, Text: valStr, Err: err}
		}
		values = append(values, val)
	}

	if len(values) == 0 {
		return nil, ErrNoData
	}
	return &Series{Values: values}, nil
}

// LoadCSVColumn loads a specific column from a CSV file as a series.
func LoadCSVColumn(filename string, column string) (*Series, error) {
	opts := DefaultCSVOptions()
	opts.ValueColumn = column
	return LoadCSV(filename, opts)
}

func findColumns(header []string, opts *CSVOptions) (valueIdx, idIdx int) {
	valueIdx, idIdx = -1, -1
	fallback := -1

	for i, h := range header {
		h = strings.TrimSpace(strings.Trim(h, "\""))
		switch {
		case h == opts.ValueColumn:
			valueIdx = i
		case opts.IDColumn != "" && h == opts.IDColumn:
			idIdx = i
		case h == "value" || h == "phase" || h == "freq" || h == "y":
			if fallback == -1 {
				fallback = i
			}
		}
	}

	if valueIdx == -1 {
		valueIdx = fallback
	}
	if valueIdx == -1 {
		valueIdx = len(header) - 1
	}
	return valueIdx, idIdx
}

package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sartorproj/goallan/adev"
)

// ErrMalformedLine is returned by ParseText for a data line that is not
// "tau dev" optionally followed by "err n".
var ErrMalformedLine = errors.New("report: malformed result line")

// WriteText writes the comment header followed by one row per line.
// Numbers use the shortest exact scientific notation. withErrors appends the
// deviation error and the sample count to each row.
func WriteText(w io.Writer, h *Header, rows []adev.Row, withErrors bool) error {
	bw := bufio.NewWriter(w)

	if h != nil {
		fmt.Fprintf(bw, "# Input file: %s\n", h.InputFile)
		fmt.Fprintf(bw, "# Sample period: %v\n", h.SamplePeriod)
		fmt.Fprintf(bw, "# Data type: %s\n", h.DataType)
		if h.Method != "" {
			fmt.Fprintf(bw, "# Method: %s\n", h.Method)
		}
		if h.TauMode != "" {
			fmt.Fprintf(bw, "# Tau mode: %s\n", h.TauMode)
		}
	}

	for _, r := range rows {
		bw.WriteString(sci(r.Tau))
		bw.WriteByte(' ')
		bw.WriteString(sci(r.Deviation))
		if withErrors {
			bw.WriteByte(' ')
			bw.WriteString(sci(r.Error))
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(r.N))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// ParseText reads rows written by WriteText. Comment and blank lines are
// skipped. Rows without error columns get zero Error and N.
func ParseText(r io.Reader) ([]adev.Row, error) {
	scanner := bufio.NewScanner(r)
	var rows []adev.Row

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != 2 && len(fields) != 4 {
			return nil, fmt.Errorf("%w: line %d has %d fields", ErrMalformedLine, line, len(fields))
		}

		row, err := parseRow(fields)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedLine, line, err)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

func parseRow(fields []string) (adev.Row, error) {
	var row adev.Row
	var err error

	if row.Tau, err = strconv.ParseFloat(fields[0], 64); err != nil {
		return row, err
	}
	if row.Deviation, err = strconv.ParseFloat(fields[1], 64); err != nil {
		return row, err
	}
	if len(fields) == 4 {
		if row.Error, err = strconv.ParseFloat(fields[2], 64); err != nil {
			return row, err
		}
		if row.N, err = strconv.Atoi(fields[3]); err != nil {
			return row, err
		}
	}
	return row, nil
}

func sci(v float64) string {
	return strconv.FormatFloat(v, 'e', -1, 64)
}

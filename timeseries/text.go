package timeseries

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrNoData is returned when a source holds no samples.
var ErrNoData = errors.New("timeseries: no samples found")

// ParseError reports a line that is not a number.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("timeseries: line %d: cannot parse %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LoadText reads one sample per line. Blank lines and lines starting with '#'
// are skipped; anything else must parse as a float. The returned series has no
// rate set.
func LoadText(r io.Reader) (*Series, error) {
	scanner := bufio.NewScanner(r)
	var values []float64

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(values) == 0 {
		return nil, ErrNoData
	}
	return &Series{Values: values}, nil
}

// LoadTextFile reads a text file with LoadText and names the series after it.
func LoadTextFile(filename string) (*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	series, err := LoadText(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	series.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return series, nil
}

// SaveText writes the series one sample per line.
func SaveText(series *Series, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := WriteText(file, series); err != nil {
		return err
	}
	return file.Close()
}

// WriteText writes the series to w, one sample per line.
func WriteText(w io.Writer, series *Series) error {
	writer := bufio.NewWriter(w)
	for _, v := range series.Values {
		writer.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		writer.WriteString("\n")
	}
	return writer.Flush()
}

package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/goallan/adev"
	"github.com/sartorproj/goallan/timeseries"
)

func sampleRows() []adev.Row {
	return []adev.Row{
		{Tau: 0.1, M: 1, Deviation: 7.5e-11, Error: 3.5e-12, N: 400},
		{Tau: 0.2, M: 2, Deviation: 5.1e-11, Error: 3.6e-12, N: 198},
		{Tau: 0.4, M: 4, Deviation: 3.3e-11, Error: 3.4e-12, N: 96},
		{Tau: 0.8, M: 8, Deviation: 2.5e-11, Error: 9e-12, N: 8},
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	h := &Header{InputFile: "clock.txt", SamplePeriod: 0.1, DataType: "phase"}

	require.NoError(t, WriteText(&buf, h, sampleRows()[:2], false))

	want := "# Input file: clock.txt\n" +
		"# Sample period: 0.1\n" +
		"# Data type: phase\n" +
		"1e-01 7.5e-11\n" +
		"2e-01 5.1e-11\n"
	assert.Equal(t, want, buf.String())
}

func TestTextRoundTrip(t *testing.T) {
	rows := sampleRows()

	for _, withErrors := range []bool{false, true} {
		var buf bytes.Buffer
		h := &Header{InputFile: "f", SamplePeriod: 1, DataType: "freq", Method: "oadev", TauMode: "octave"}
		require.NoError(t, WriteText(&buf, h, rows, withErrors))

		parsed, err := ParseText(&buf)
		require.NoError(t, err)
		require.Len(t, parsed, len(rows))

		for i := range rows {
			assert.Equal(t, rows[i].Tau, parsed[i].Tau)
			assert.Equal(t, rows[i].Deviation, parsed[i].Deviation)
			if withErrors {
				assert.Equal(t, rows[i].Error, parsed[i].Error)
				assert.Equal(t, rows[i].N, parsed[i].N)
			} else {
				assert.Zero(t, parsed[i].N)
			}
		}
	}
}

func TestParseTextMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"three fields", "1 2 3\n"},
		{"not a number", "# ok\n1e0 abc\n"},
		{"bad count", "1 2 3 x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseText(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, ErrMalformedLine)
		})
	}
}

func TestPlotPNG(t *testing.T) {
	img, err := Plot(sampleRows(), nil)
	require.NoError(t, err)
	require.Greater(t, len(img), 8)
	assert.Equal(t, "\x89PNG", string(img[:4]))
}

func TestPlotSingleRowSVG(t *testing.T) {
	opts := DefaultPlotOptions()
	opts.Format = "svg"
	opts.Label = "OADEV"

	img, err := Plot(sampleRows()[:1], opts)
	require.NoError(t, err)
	assert.Contains(t, string(img), "<svg")
}

func TestPlotNothing(t *testing.T) {
	_, err := Plot([]adev.Row{{Tau: 1, Deviation: 0}}, nil)
	assert.ErrorIs(t, err, ErrNothingToPlot)

	_, err = Plot(nil, nil)
	assert.ErrorIs(t, err, ErrNothingToPlot)
}

func TestPlotUnknownFormat(t *testing.T) {
	opts := DefaultPlotOptions()
	opts.Format = "bmp"

	_, err := Plot(sampleRows(), opts)
	assert.Error(t, err)
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	rep := &Report{
		Header: Header{
			InputFile:    "clock.txt",
			SamplePeriod: 0.1,
			DataType:     "phase",
			Method:       "oadev",
			TauMode:      "octave",
			Samples:      402,
			Summary:      &timeseries.Summary{Samples: 402, Duration: 40.1, Mean: 1e-9, Std: 2e-10, Min: 5e-10, Median: 1e-9, Max: 1.5e-9},
		},
		Rows: sampleRows(),
	}

	require.NoError(t, WritePDF(&buf, rep))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestParameters(t *testing.T) {
	h := &Header{
		InputFile:    "clock.txt",
		SamplePeriod: 0.1,
		DataType:     "phase",
		Summary:      &timeseries.Summary{Samples: 4, Duration: 0.3, Mean: 2.5e-9, Std: 1.25e-9, Min: 1e-9, Median: 2.5e-9, Max: 4e-9},
	}

	got := map[string]string{}
	for _, kv := range parameters(h) {
		got[kv[0]] = kv[1]
	}
	assert.Equal(t, "clock.txt", got["Input file"])
	assert.Equal(t, "0.1 s", got["Sample period"])
	assert.Equal(t, "2.5000e-09", got["Mean"])
	assert.Equal(t, "1.2500e-09", got["Std. deviation"])
	assert.Equal(t, "1.0000e-09 / 4.0000e-09", got["Min / Max"])
	assert.NotContains(t, got, "Tau mode")

	h.Summary = nil
	for _, kv := range parameters(h) {
		assert.NotEqual(t, "Mean", kv[0])
	}
}

func TestWritePDFLongTableNoRows(t *testing.T) {
	rows := make([]adev.Row, 120)
	for i := range rows {
		rows[i] = adev.Row{Tau: float64(i + 1), M: i + 1, N: 0}
	}

	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, &Report{Header: Header{Method: "adev"}, Rows: rows}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestJSONRoundTrip(t *testing.T) {
	rep := &Report{
		Header: Header{
			InputFile:    "x",
			SamplePeriod: 2,
			DataType:     "freq",
			Method:       "adev",
			Summary:      &timeseries.Summary{Samples: 3, Duration: 4, Mean: 1, Std: 0.5, Min: 0.5, Median: 1, Max: 1.5},
		},
		Rows: sampleRows(),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, rep))
	assert.Contains(t, buf.String(), `"input_file": "x"`)
	assert.Contains(t, buf.String(), `"rows": [`)
	assert.Contains(t, buf.String(), `"summary": {`)

	back, err := ReadJSON(&buf)
	require.NoError(t, err)
	assert.Equal(t, rep.Header, back.Header)
	assert.Equal(t, rep.Rows, back.Rows)
}

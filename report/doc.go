// Package report renders deviation results.
//
// Text output is the classic two-column format: a few '#' comment lines
// echoing the input, then one "tau deviation" pair per line in scientific
// notation. ParseText reads that format back, so a saved run can be plotted
// later.
//
//	report.WriteText(os.Stdout, &report.Header{InputFile: "x.txt", SamplePeriod: 1, DataType: "phase"}, res.Rows, false)
//
// Plot draws deviation against tau on log-log axes (PNG, SVG or PDF), and
// WritePDF produces a one-page summary with the plot and the result table.
package report

import (
	"github.com/sartorproj/goallan/adev"
	"github.com/sartorproj/goallan/timeseries"
)

// Header describes the run that produced a set of rows.
type Header struct {
	InputFile    string  `json:"input_file"`
	SamplePeriod float64 `json:"sample_period"`
	DataType     string  `json:"data_type"`
	Method       string  `json:"method,omitempty"`
	TauMode      string  `json:"tau_mode,omitempty"`
	Samples      int     `json:"samples,omitempty"`

	// Summary describes the input samples, nil when not computed.
	Summary *timeseries.Summary `json:"summary,omitempty"`
}

// Report bundles a header with its rows.
type Report struct {
	Header Header
	Rows   []adev.Row
}

// Package main demonstrates ADEV and OADEV on synthetic oscillator noise.
// Based on: Riley, Handbook of Frequency Stability Analysis (NIST SP 1065)
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/goallan/adev"
	"github.com/sartorproj/goallan/report"
	"github.com/sartorproj/goallan/taus"
	"github.com/sartorproj/goallan/timeseries"
)

// Dataset defines a synthetic noise record to analyze
type Dataset struct {
	Name        string  // Display name
	Description string  // Brief description
	Noise       string  // wpm, wfm or rwfm
	DataType    string  // phase or freq, as produced by the generator
	N           int     // Number of samples
	Rate        float64 // Samples per second
	Sigma       float64 // Noise amplitude
	Seed        uint64
	Slope       float64 // Expected log-log slope of ADEV versus tau
}

// DatasetResult holds analysis results for a dataset
type DatasetResult struct {
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	NObs          int           `json:"n_obs"`
	ExpectedSlope float64       `json:"expected_slope"`
	ADEVSlope     float64       `json:"adev_slope"`
	OADEVSlope    float64       `json:"oadev_slope"`
	ADEV          report.Report `json:"-"`
	OADEV         report.Report `json:"-"`
}

// OutputData holds the slope summary of all datasets
type OutputData struct {
	Datasets []*DatasetResult `json:"datasets"`
}

func main() {
	outDir := flag.String("out", ".", "directory for JSON, plots and generated series")
	save := flag.Bool("save", false, "also write the generated series as text files")
	flag.Parse()

	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("GoAllan Demonstration - ADEV/OADEV on synthetic noise")
	fmt.Println(strings.Repeat("=", 80))

	datasets := []Dataset{
		{Name: "White PM", Noise: "wpm", DataType: "phase", N: 8192, Rate: 1, Sigma: 1e-9, Seed: 1, Slope: -1, Description: "White phase modulation, 1 ns rms"},
		{Name: "White FM", Noise: "wfm", DataType: "freq", N: 8192, Rate: 1, Sigma: 1e-11, Seed: 2, Slope: -0.5, Description: "White frequency modulation"},
		{Name: "Random Walk FM", Noise: "rwfm", DataType: "freq", N: 8192, Rate: 10, Sigma: 1e-13, Seed: 3, Slope: 0.5, Description: "Random walk frequency modulation, 10 Hz"},
		{Name: "Short White FM", Noise: "wfm", DataType: "freq", N: 100, Rate: 1, Sigma: 1e-11, Seed: 4, Slope: -0.5, Description: "Short record, few usable taus"},
	}

	results := make([]*DatasetResult, len(datasets))
	series := make([]*timeseries.Series, len(datasets))

	g, _ := errgroup.WithContext(context.Background())
	for i, ds := range datasets {
		g.Go(func() error {
			s := generate(ds)
			res, err := analyze(ds, s)
			if err != nil {
				return fmt.Errorf("%s: %w", ds.Name, err)
			}
			series[i], results[i] = s, res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	for i, res := range results {
		fmt.Printf("\n%s\n[%d/%d] %s\n%s\n", strings.Repeat("=", 80), i+1, len(results), res.Name, strings.Repeat("=", 80))
		printResult(res)
	}

	fmt.Printf("\n%s\nEXPORTING RESULTS\n%s\n", strings.Repeat("=", 80), strings.Repeat("=", 80))
	for i, res := range results {
		base := filepath.Join(*outDir, slug(res.Name))
		if err := export(base, res); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		if *save {
			if err := timeseries.SaveText(series[i], base+".txt"); err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
				os.Exit(1)
			}
		}
		fmt.Printf("  %s -> %s_{adev,oadev}.json, %s_oadev.png\n", res.Name, base, base)
	}

	summary := filepath.Join(*outDir, "adev_summary.json")
	if data, err := json.MarshalIndent(OutputData{Datasets: results}, "", "  "); err == nil {
		os.WriteFile(summary, data, 0644)
		fmt.Printf("Exported %d datasets to %s\n", len(results), summary)
	}
	fmt.Println(strings.Repeat("=", 80))
}

// generate produces the noise record of a dataset
func generate(ds Dataset) *timeseries.Series {
	normal := distuv.Normal{Mu: 0, Sigma: ds.Sigma, Src: rand.NewPCG(ds.Seed, ds.Seed^0x9e3779b97f4a7c15)}

	values := make([]float64, ds.N)
	for i := range values {
		values[i] = normal.Rand()
	}
	if ds.Noise == "rwfm" {
		floats.CumSum(values, values)
	}

	s := timeseries.New(values, ds.Rate)
	s.Name = ds.Name
	return s
}

// analyze runs both estimators and fits the log-log slope of each
func analyze(ds Dataset, s *timeseries.Series) (*DatasetResult, error) {
	a, err := adev.ADEV(s.Values, s.Rate, ds.DataType, taus.Octave)
	if err != nil {
		return nil, err
	}
	o, err := adev.OADEV(s.Values, s.Rate, ds.DataType, taus.Octave)
	if err != nil {
		return nil, err
	}

	summary := s.Summarize()
	header := report.Header{
		InputFile:    ds.Name,
		SamplePeriod: s.Period(),
		DataType:     ds.DataType,
		TauMode:      string(taus.Octave),
		Samples:      s.Len(),
		Summary:      &summary,
	}
	res := &DatasetResult{
		Name:          ds.Name,
		Description:   ds.Description,
		NObs:          s.Len(),
		ExpectedSlope: ds.Slope,
		ADEVSlope:     slope(a.Rows),
		OADEVSlope:    slope(o.Rows),
		ADEV:          report.Report{Header: header, Rows: a.Rows},
		OADEV:         report.Report{Header: header, Rows: o.Rows},
	}
	res.ADEV.Header.Method = a.Method.String()
	res.OADEV.Header.Method = o.Method.String()
	return res, nil
}

// slope fits log(dev) = alpha + beta*log(tau), weighting rows by their count
func slope(rows []adev.Row) float64 {
	var x, y, w []float64
	for _, r := range rows {
		if r.Deviation <= 0 {
			continue
		}
		x = append(x, math.Log10(r.Tau))
		y = append(y, math.Log10(r.Deviation))
		w = append(w, float64(r.N))
	}
	if len(x) < 2 {
		return math.NaN()
	}
	_, beta := stat.LinearRegression(x, y, w, false)
	return beta
}

func printResult(res *DatasetResult) {
	fmt.Printf("Description: %s\n", res.Description)
	fmt.Printf("Observations: %d\n", res.NObs)
	if sum := res.ADEV.Header.Summary; sum != nil {
		fmt.Printf("Samples: mean %.3e, std %.3e, range [%.3e, %.3e]\n", sum.Mean, sum.Std, sum.Min, sum.Max)
	}
	fmt.Println()

	fmt.Printf("%-12s %-14s %-14s %-8s %-14s %-8s\n", "Tau", "ADEV", "ADEV err", "N", "OADEV", "N")
	fmt.Println(strings.Repeat("-", 76))
	for _, o := range res.OADEV.Rows {
		adevCol, errCol, nCol := "-", "-", "-"
		for _, a := range res.ADEV.Rows {
			if a.M == o.M {
				adevCol = fmt.Sprintf("%.4e", a.Deviation)
				errCol = fmt.Sprintf("%.2e", a.Error)
				nCol = fmt.Sprintf("%d", a.N)
			}
		}
		fmt.Printf("%-12g %-14s %-14s %-8s %-14.4e %-8d\n", o.Tau, adevCol, errCol, nCol, o.Deviation, o.N)
	}

	fmt.Printf("\nSlope: expected %+.2f, ADEV %+.2f, OADEV %+.2f\n", res.ExpectedSlope, res.ADEVSlope, res.OADEVSlope)
}

func export(base string, res *DatasetResult) error {
	for _, item := range []struct {
		suffix string
		rep    *report.Report
	}{
		{"_adev.json", &res.ADEV},
		{"_oadev.json", &res.OADEV},
	} {
		f, err := os.Create(base + item.suffix)
		if err != nil {
			return err
		}
		if err := report.WriteJSON(f, item.rep); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	opts := report.DefaultPlotOptions()
	opts.Title = res.Name
	opts.Label = "OADEV"
	img, err := report.Plot(res.OADEV.Rows, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(base+"_oadev.png", img, 0644)
}

func slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// Command allandev prints the Allan deviation of a phase or frequency record.
//
//	allandev [flags] <inputFile> <samplePeriod> <dataType>
//
// The input holds one sample per line (or a CSV column with -column). The
// sample period is in seconds and dataType is "phase" or "freq". Output is a
// short '#' header followed by "tau deviation" pairs, overlapped ADEV unless
// -method adev is given.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/sartorproj/goallan/adev"
	"github.com/sartorproj/goallan/internal/config"
	"github.com/sartorproj/goallan/report"
	"github.com/sartorproj/goallan/taus"
	"github.com/sartorproj/goallan/timeseries"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "allandev: ", 0)

	cfg, err := config.LoadEnv()
	if err != nil {
		logger.Print(err)
		return 1
	}
	if err := cfg.ParseFlags("allandev", args, stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		logger.Print(err)
		return 2
	}

	if cfg.ReplotPath != "" {
		if err := replot(cfg); err != nil {
			logger.Print(err)
			return 1
		}
		return 0
	}

	if err := analyze(cfg, stdout, logger); err != nil {
		logger.Print(err)
		return 1
	}
	return 0
}

func analyze(cfg *config.Config, stdout io.Writer, logger *log.Logger) error {
	series, err := load(cfg)
	if err != nil {
		return err
	}
	series, err = timeseries.FromPeriod(series.Values, cfg.SamplePeriod)
	if err != nil {
		return err
	}
	period := cfg.SamplePeriod
	if cfg.Skip > 0 {
		series = series.Slice(cfg.Skip, series.Len())
	}
	if cfg.Decimate > 1 {
		series = series.Decimate(cfg.Decimate)
		period *= float64(cfg.Decimate)
	}
	summary := series.Summarize()

	method, err := adev.ParseMethod(cfg.Method)
	if err != nil {
		return err
	}
	acfg := &adev.Config{
		TauMode: taus.Mode(cfg.TauMode),
		MaxM:    cfg.MaxM,
		Even:    cfg.Even,
	}
	if cfg.Verbose {
		acfg.Logger = logger
		logger.Printf("%s: %d samples over %g s, rate %g Hz", cfg.InputFile, summary.Samples, summary.Duration, series.Rate)
		logger.Printf("%s: mean %e std %e min %e max %e", cfg.InputFile, summary.Mean, summary.Std, summary.Min, summary.Max)
	}

	res, err := adev.Compute(series.Values, series.Rate, cfg.DataType, method, acfg)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	rep := &report.Report{
		Header: report.Header{
			InputFile:    cfg.InputFile,
			SamplePeriod: period,
			DataType:     cfg.DataType,
			Method:       method.String(),
			TauMode:      cfg.TauMode,
			Samples:      series.Len(),
			Summary:      &summary,
		},
		Rows: res.Rows,
	}

	// the default output keeps the classic three-line header
	header := rep.Header
	header.Method, header.TauMode = "", ""
	if cfg.Verbose || cfg.Errors {
		header = rep.Header
	}
	if err := report.WriteText(stdout, &header, res.Rows, cfg.Errors); err != nil {
		return err
	}

	if cfg.PlotPath != "" {
		if err := writePlot(cfg.PlotPath, rep.Rows, method.String()); err != nil {
			return err
		}
	}
	if cfg.PDFPath != "" {
		if err := writeFile(cfg.PDFPath, func(w io.Writer) error { return report.WritePDF(w, rep) }); err != nil {
			return err
		}
	}
	if cfg.JSONPath != "" {
		if err := writeFile(cfg.JSONPath, func(w io.Writer) error { return report.WriteJSON(w, rep) }); err != nil {
			return err
		}
	}
	return nil
}

func load(cfg *config.Config) (*timeseries.Series, error) {
	if cfg.CSVColumn == "" {
		return timeseries.LoadTextFile(cfg.InputFile)
	}
	return timeseries.LoadCSVColumn(cfg.InputFile, cfg.CSVColumn)
}

func replot(cfg *config.Config) error {
	file, err := os.Open(cfg.ReplotPath)
	if err != nil {
		return err
	}
	defer file.Close()

	rows, err := report.ParseText(file)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.ReplotPath, err)
	}
	return writePlot(cfg.PlotPath, rows, cfg.Method)
}

func writePlot(path string, rows []adev.Row, method string) error {
	opts := report.DefaultPlotOptions()
	opts.Label = strings.ToUpper(method)
	if ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."); ext != "" {
		opts.Format = ext
	}
	return writeFile(path, func(w io.Writer) error { return report.WritePlot(w, rows, opts) })
}

func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(file); err != nil {
		file.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return file.Close()
}

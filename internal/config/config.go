// Package config assembles allandev settings from .env files, the
// environment and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/sartorproj/goallan/adev"
	"github.com/sartorproj/goallan/taus"
)

// ErrUsage is returned when the positional arguments are missing or invalid.
var ErrUsage = errors.New("usage: allandev [flags] <inputFile> <samplePeriod> <dataType>")

// Config holds the settings of one allandev run.
type Config struct {
	InputFile    string
	SamplePeriod float64
	DataType     string

	Method    string // adev or oadev
	TauMode   string // octave, log10 or decade
	MaxM      int
	Even      bool
	CSVColumn string // non-empty reads the input as CSV
	Skip      int    // leading samples dropped before analysis
	Decimate  int    // keep every Decimate-th phase sample
	Errors    bool   // print error and count columns

	PlotPath   string
	PDFPath    string
	JSONPath   string
	ReplotPath string // plot a saved text output instead of computing

	Verbose bool
}

// Defaults returns the settings used when nothing is configured.
func Defaults() *Config {
	return &Config{
		Method:  "oadev",
		TauMode: string(taus.Octave),
	}
}

// LoadEnv loads .env files and applies ALLANDEV_* variables on top of
// Defaults. Missing files are skipped; unreadable or malformed ones are an
// error.
func LoadEnv(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: %s: %w", f, err)
		}
	}

	c := Defaults()
	c.Method = getEnvOrDefault("ALLANDEV_METHOD", c.Method)
	c.TauMode = getEnvOrDefault("ALLANDEV_TAU_MODE", c.TauMode)
	c.MaxM = getEnvIntOrDefault("ALLANDEV_MAX_M", c.MaxM)
	c.Even = getEnvBoolOrDefault("ALLANDEV_EVEN", c.Even)
	c.Errors = getEnvBoolOrDefault("ALLANDEV_ERRORS", c.Errors)
	c.PlotPath = getEnvOrDefault("ALLANDEV_PLOT", c.PlotPath)
	c.PDFPath = getEnvOrDefault("ALLANDEV_PDF", c.PDFPath)
	c.JSONPath = getEnvOrDefault("ALLANDEV_JSON", c.JSONPath)
	c.Verbose = getEnvBoolOrDefault("ALLANDEV_VERBOSE", c.Verbose)
	return c, nil
}

// ParseFlags applies command-line flags and positional arguments to c.
// Flag defaults are the values already in c.
func (c *Config) ParseFlags(name string, args []string, output io.Writer) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintln(output, ErrUsage.Error())
		fs.PrintDefaults()
	}

	fs.StringVar(&c.Method, "method", c.Method, "estimator: adev or oadev")
	fs.StringVar(&c.TauMode, "mode", c.TauMode, "tau spacing: octave, log10 or decade")
	fs.IntVar(&c.MaxM, "max-m", c.MaxM, "exclusive upper bound on the averaging factor (0 = series length)")
	fs.BoolVar(&c.Even, "even", c.Even, "evaluate even averaging factors only")
	fs.StringVar(&c.CSVColumn, "column", c.CSVColumn, "read the input as CSV and use this column")
	fs.IntVar(&c.Skip, "skip", c.Skip, "drop this many leading samples (warm-up)")
	fs.IntVar(&c.Decimate, "decimate", c.Decimate, "keep every n-th sample of phase data")
	fs.BoolVar(&c.Errors, "errors", c.Errors, "print deviation error and sample count columns")
	fs.StringVar(&c.PlotPath, "plot", c.PlotPath, "write a log-log plot (.png, .svg or .pdf)")
	fs.StringVar(&c.PDFPath, "pdf", c.PDFPath, "write a PDF report")
	fs.StringVar(&c.JSONPath, "json", c.JSONPath, "write results as JSON")
	fs.StringVar(&c.ReplotPath, "replot", c.ReplotPath, "plot a saved text output instead of computing")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log tau generation and degraded rows")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if c.ReplotPath != "" {
		if c.PlotPath == "" {
			return fmt.Errorf("%w: -replot needs -plot", ErrUsage)
		}
		return nil
	}

	rest := fs.Args()
	if len(rest) < 3 {
		return ErrUsage
	}
	c.InputFile = rest[0]
	period, err := strconv.ParseFloat(rest[1], 64)
	if err != nil {
		return fmt.Errorf("%w: sample period %q: %v", ErrUsage, rest[1], err)
	}
	c.SamplePeriod = period
	c.DataType = rest[2]

	return c.Validate()
}

// Validate checks the method and tau mode names and the numeric options.
func (c *Config) Validate() error {
	if _, err := adev.ParseMethod(c.Method); err != nil {
		return err
	}
	if _, err := taus.ParseMode(c.TauMode); err != nil {
		return err
	}
	if c.MaxM < 0 {
		return fmt.Errorf("%w: -max-m must not be negative", ErrUsage)
	}
	if c.Skip < 0 || c.Decimate < 0 {
		return fmt.Errorf("%w: -skip and -decimate must not be negative", ErrUsage)
	}
	// picking every n-th frequency sample would drop the averaging in between
	if c.Decimate > 1 && c.DataType == "freq" {
		return fmt.Errorf("%w: -decimate needs phase data", ErrUsage)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

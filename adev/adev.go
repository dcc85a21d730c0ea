package adev

import (
	"fmt"
	"log"

	"github.com/sartorproj/goallan/phase"
	"github.com/sartorproj/goallan/taus"
)

// Method selects the window stride of the estimator.
type Method int

const (
	// Standard uses non-overlapping windows (stride m).
	Standard Method = iota
	// Overlapped slides the window one sample at a time (stride 1).
	Overlapped
)

func (m Method) String() string {
	switch m {
	case Standard:
		return "adev"
	case Overlapped:
		return "oadev"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// stride returns the window step for averaging factor mj.
func (m Method) stride(mj int) int {
	if m == Overlapped {
		return 1
	}
	return mj
}

// ParseMethod maps "adev" or "oadev" onto a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "adev":
		return Standard, nil
	case "oadev":
		return Overlapped, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Status tags the outcome of a single row.
type Status int

const (
	// OK rows hold a computed deviation.
	OK Status = iota
	// Insufficient rows could not be evaluated and carry zero values.
	Insufficient
)

func (s Status) String() string {
	if s == Insufficient {
		return "insufficient"
	}
	return "ok"
}

// Row is the result for one averaging factor.
type Row struct {
	Tau       float64 // Averaging time actually used, M/rate
	M         int
	Deviation float64
	Error     float64
	N         int
	Status    Status
}

// Result holds the rows of one computation in ascending generation order.
type Result struct {
	Method Method
	Rate   float64
	Rows   []Row
}

// Len returns the number of rows.
func (r *Result) Len() int {
	return len(r.Rows)
}

// Taus returns the averaging times of all rows.
func (r *Result) Taus() []float64 {
	out := make([]float64, len(r.Rows))
	for i, row := range r.Rows {
		out[i] = row.Tau
	}
	return out
}

// Deviations returns the deviations of all rows.
func (r *Result) Deviations() []float64 {
	out := make([]float64, len(r.Rows))
	for i, row := range r.Rows {
		out[i] = row.Deviation
	}
	return out
}

// Errors returns the deviation errors of all rows.
func (r *Result) Errors() []float64 {
	out := make([]float64, len(r.Rows))
	for i, row := range r.Rows {
		out[i] = row.Error
	}
	return out
}

// Counts returns the sample counts of all rows.
func (r *Result) Counts() []int {
	out := make([]int, len(r.Rows))
	for i, row := range r.Rows {
		out[i] = row.N
	}
	return out
}

// Config holds tau-generation settings for Compute.
type Config struct {
	TauMode taus.Mode // Spacing mode (default: octave)
	MaxM    int       // Exclusive bound on m; <= 0 means the phase length
	Even    bool      // Evaluate even averaging factors only

	// Logger, when set, traces tau generation and degraded rows.
	Logger *log.Logger
}

// DefaultConfig returns octave spacing with no bound overrides.
func DefaultConfig() *Config {
	return &Config{TauMode: taus.Octave}
}

// ADEV computes the standard Allan deviation of data.
// dataType is "phase" or "freq"; an empty tauMode selects octave spacing.
func ADEV(data []float64, rate float64, dataType string, tauMode taus.Mode) (*Result, error) {
	return Compute(data, rate, dataType, Standard, &Config{TauMode: tauMode})
}

// OADEV computes the overlapped Allan deviation of data.
func OADEV(data []float64, rate float64, dataType string, tauMode taus.Mode) (*Result, error) {
	return Compute(data, rate, dataType, Overlapped, &Config{TauMode: tauMode})
}

// Compute converts data to phase, generates averaging factors, evaluates each
// one with the given method and drops rows with N <= 1.
//
// Only configuration errors are returned. Averaging factors that cannot be
// evaluated are degraded to Insufficient rows and then filtered out.
func Compute(data []float64, rate float64, dataType string, method Method, cfg *Config) (*Result, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if method != Standard && method != Overlapped {
		return nil, fmt.Errorf("%w: %v", ErrUnknownMethod, method)
	}

	x, err := phase.ToPhase(data, rate, dataType)
	if err != nil {
		return nil, err
	}

	set, err := taus.Generate(x, rate, &taus.Options{
		Mode:   cfg.TauMode,
		MaxM:   cfg.MaxM,
		Even:   cfg.Even,
		Logger: cfg.Logger,
	})
	if err != nil {
		return nil, err
	}

	rows, err := Evaluate(x, rate, set.M, method)
	if err != nil {
		return nil, err
	}
	if cfg.Logger != nil {
		for _, row := range rows {
			if row.Status != OK {
				cfg.Logger.Printf("adev: %s m=%d degraded: %s", method, row.M, row.Status)
			}
		}
	}

	return &Result{
		Method: method,
		Rate:   rate,
		Rows:   RemoveInsufficient(rows),
	}, nil
}

// Evaluate computes one row per averaging factor without filtering.
// A factor that cannot be evaluated yields an Insufficient row; only an
// invalid rate is returned as an error.
func Evaluate(x []float64, rate float64, ms []int, method Method) ([]Row, error) {
	if err := phase.ValidateRate(rate); err != nil {
		return nil, err
	}

	rows := make([]Row, len(ms))
	for i, m := range ms {
		rows[i] = Row{Tau: float64(m) / rate, M: m}

		est, err := Calc(x, rate, m, method.stride(m))
		if err != nil {
			rows[i].Status = Insufficient
			continue
		}
		rows[i].Deviation = est.Deviation
		rows[i].Error = est.Error
		rows[i].N = est.N
	}
	return rows, nil
}

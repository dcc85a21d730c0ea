package taus

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/sartorproj/goallan/phase"
)

var (
	// ErrInvalidRate is returned for a zero, negative or non-finite rate.
	// It is the same value as phase.ErrInvalidRate.
	ErrInvalidRate = phase.ErrInvalidRate

	// ErrUnknownMode indicates a spacing mode name ParseMode does not know.
	ErrUnknownMode = errors.New("taus: unknown spacing mode")
)

// Mode selects the spacing of candidate averaging times.
type Mode string

const (
	// Octave spaces tau by powers of two.
	Octave Mode = "octave"
	// Log10 spaces tau ten points per decade.
	Log10 Mode = "log10"
	// Decade emits 1, 2 and 4 times each power of ten.
	Decade Mode = "decade"
)

// ParseMode maps a mode name onto a Mode. The empty string selects Octave.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", Octave:
		return Octave, nil
	case Log10, Decade:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Options controls candidate generation.
type Options struct {
	Mode Mode // Spacing mode (default: Octave)
	MaxM int  // Exclusive upper bound on m; <= 0 means the phase series length
	Even bool // Keep only even averaging factors

	// Logger, when set, receives the generated candidates.
	Logger *log.Logger
}

// DefaultOptions returns octave spacing bounded by the series length.
func DefaultOptions() *Options {
	return &Options{Mode: Octave}
}

// Set holds the generated candidates.
// M and Used are index aligned; Raw holds every requested tau, including
// those whose averaging factor was rejected.
type Set struct {
	Raw  []float64
	M    []int
	Used []float64
}

// Len returns the number of accepted averaging factors.
func (s *Set) Len() int {
	return len(s.M)
}

// Generate derives averaging factors for a phase series sampled at rate.
//
// Candidates keep generation order; nothing is sorted or deduplicated. An
// empty phase series yields an empty set.
func Generate(data []float64, rate float64, opts *Options) (*Set, error) {
	if err := validateRate(rate); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = DefaultOptions()
	}

	mode, err := ParseMode(string(opts.Mode))
	if err != nil {
		return nil, err
	}

	n := len(data)
	raw := requested(n, rate, mode)

	maxM := opts.MaxM
	if maxM <= 0 {
		maxM = n
	}

	m := make([]int, 0, len(raw))
	for _, tau := range raw {
		mj := int(math.Round(tau * rate))
		if mj > 0 && mj < maxM {
			m = append(m, mj)
		}
	}

	if opts.Even {
		m = evenOnly(m)
	}

	used := make([]float64, len(m))
	for i, mj := range m {
		used[i] = float64(mj) / rate
	}

	if opts.Logger != nil {
		opts.Logger.Printf("taus: mode=%s n=%d requested=%d m=%v", mode, n, len(raw), m)
	}

	return &Set{Raw: raw, M: m, Used: used}, nil
}

// requested returns the raw tau ladder for a series of length n.
func requested(n int, rate float64, mode Mode) []float64 {
	if n == 0 {
		return []float64{}
	}

	var taus []float64
	switch mode {
	case Log10:
		steps := int(math.Round(10 * math.Log10(float64(n))))
		taus = make([]float64, 0, steps)
		for k := 0; k < steps; k++ {
			taus = append(taus, math.Pow(10, float64(k)/10)/rate)
		}
	case Decade:
		maxK := int(math.Floor(math.Log10(float64(n))))
		taus = make([]float64, 0, 3*(maxK+1))
		for k := 0; k <= maxK; k++ {
			p := math.Pow(10, float64(k))
			taus = append(taus, p/rate, 2*p/rate, 4*p/rate)
		}
	default:
		maxK := int(math.Floor(math.Log2(float64(n))))
		taus = make([]float64, 0, maxK+1)
		for k := 0; k <= maxK; k++ {
			taus = append(taus, math.Pow(2, float64(k))/rate)
		}
	}
	return taus
}

func evenOnly(m []int) []int {
	out := m[:0]
	for _, v := range m {
		if v%2 == 0 {
			out = append(out, v)
		}
	}
	return out
}

func validateRate(rate float64) error {
	if err := phase.ValidateRate(rate); err != nil {
		return fmt.Errorf("taus: %w", err)
	}
	return nil
}

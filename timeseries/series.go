package timeseries

import (
	"errors"
	"math"

	"github.com/montanaflynn/stats"
)

// ErrInvalidPeriod is returned for a sample period that is zero, negative or not finite.
var ErrInvalidPeriod = errors.New("timeseries: sample period must be positive and finite")

// Series is a uniformly sampled sequence of measurements.
type Series struct {
	Values []float64
	Rate   float64 // Samples per second
	Name   string
}

// New creates a series sampled at rate.
func New(values []float64, rate float64) *Series {
	return &Series{
		Values: values,
		Rate:   rate,
	}
}

// FromPeriod creates a series from its sample period in seconds.
func FromPeriod(values []float64, period float64) (*Series, error) {
	if period <= 0 || math.IsNaN(period) || math.IsInf(period, 0) {
		return nil, ErrInvalidPeriod
	}
	return New(values, 1/period), nil
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Period returns the sample period, or 0 when the rate is unset.
func (s *Series) Period() float64 {
	if s.Rate == 0 {
		return 0
	}
	return 1 / s.Rate
}

// Duration returns the time spanned by the samples in seconds.
func (s *Series) Duration() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	return float64(len(s.Values)-1) * s.Period()
}

// Mean calculates the arithmetic mean of the series; 0 when empty.
func (s *Series) Mean() float64 {
	mean, err := stats.Mean(s.Values)
	if err != nil {
		return 0
	}
	return mean
}

// Variance calculates the sample variance of the series.
func (s *Series) Variance() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	v, err := stats.SampleVariance(s.Values)
	if err != nil {
		return 0
	}
	return v
}

// Std calculates the sample standard deviation of the series.
func (s *Series) Std() float64 {
	return math.Sqrt(s.Variance())
}

// Min returns the minimum value in the series.
func (s *Series) Min() float64 {
	v, err := stats.Min(s.Values)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Max returns the maximum value in the series.
func (s *Series) Max() float64 {
	v, err := stats.Max(s.Values)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Median returns the median value of the series.
func (s *Series) Median() float64 {
	v, err := stats.Median(s.Values)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Slice returns samples start to end (exclusive), clamped to the series.
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start >= end {
		return &Series{Values: []float64{}, Rate: s.Rate, Name: s.Name}
	}

	values := make([]float64, end-start)
	copy(values, s.Values[start:end])

	return &Series{
		Values: values,
		Rate:   s.Rate,
		Name:   s.Name,
	}
}

// Decimate keeps every factor-th sample and divides the rate accordingly.
func (s *Series) Decimate(factor int) *Series {
	if factor <= 1 {
		return s.Copy()
	}

	values := make([]float64, 0, (len(s.Values)+factor-1)/factor)
	for i := 0; i < len(s.Values); i += factor {
		values = append(values, s.Values[i])
	}

	return &Series{
		Values: values,
		Rate:   s.Rate / float64(factor),
		Name:   s.Name + "_decimated",
	}
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	return &Series{
		Values: values,
		Rate:   s.Rate,
		Name:   s.Name,
	}
}

// Summary holds descriptive statistics of a series.
type Summary struct {
	Samples  int     `json:"samples"`
	Duration float64 `json:"duration"` // Seconds
	Mean     float64 `json:"mean"`
	Std      float64 `json:"std"`
	Min      float64 `json:"min"`
	Median   float64 `json:"median"`
	Max      float64 `json:"max"`
}

// Summarize computes the descriptive statistics of the series. An empty
// series yields the zero Summary.
func (s *Series) Summarize() Summary {
	if len(s.Values) == 0 {
		return Summary{}
	}
	return Summary{
		Samples:  s.Len(),
		Duration: s.Duration(),
		Mean:     s.Mean(),
		Std:      s.Std(),
		Min:      s.Min(),
		Median:   s.Median(),
		Max:      s.Max(),
	}
}

package phase

import (
	"gonum.org/v1/gonum/floats"
)

// DataType tags the physical quantity held by a sample series.
type DataType string

const (
	// Phase samples are time errors, in seconds.
	Phase DataType = "phase"
	// Frequency samples are fractional frequency deviations.
	Frequency DataType = "freq"
)

// ParseDataType maps a tag onto a DataType.
func ParseDataType(s string) (DataType, error) {
	switch DataType(s) {
	case Phase, Frequency:
		return DataType(s), nil
	default:
		return "", &DataTypeError{Kind: s}
	}
}

// ToPhase converts data of the given kind into phase samples.
//
// The kind is checked before anything else, then the rate. Phase input must
// be non-empty and finite and is returned unchanged; frequency input goes
// through FrequencyToPhase.
func ToPhase(data []float64, rate float64, kind string) ([]float64, error) {
	dt, err := ParseDataType(kind)
	if err != nil {
		return nil, err
	}

	switch dt {
	case Frequency:
		return FrequencyToPhase(data, rate)
	default:
		if err := ValidateRate(rate); err != nil {
			return nil, err
		}
		if err := validateSamples(data); err != nil {
			return nil, err
		}
		return data, nil
	}
}

// FrequencyToPhase integrates fractional frequency samples into phase.
// The mean frequency is removed first. The result has len(freq)+1 samples
// and starts at zero.
func FrequencyToPhase(freq []float64, rate float64) ([]float64, error) {
	if err := ValidateRate(rate); err != nil {
		return nil, err
	}
	if err := validateSamples(freq); err != nil {
		return nil, err
	}

	mean := floats.Sum(freq) / float64(len(freq))

	adjusted := make([]float64, len(freq))
	copy(adjusted, freq)
	floats.AddConst(-mean, adjusted)
	floats.Scale(1/rate, adjusted)

	phase := make([]float64, len(freq)+1)
	floats.CumSum(phase[1:], adjusted)
	return phase, nil
}

// PhaseToFrequency differentiates phase samples into fractional frequency.
// The result has len(phase)-1 samples. Any mean removed by FrequencyToPhase
// is not restored.
func PhaseToFrequency(phase []float64, rate float64) ([]float64, error) {
	if err := ValidateRate(rate); err != nil {
		return nil, err
	}
	if err := validateSamples(phase); err != nil {
		return nil, err
	}
	if len(phase) < 2 {
		return nil, ErrDegenerateInput
	}

	freq := make([]float64, len(phase)-1)
	floats.SubTo(freq, phase[1:], phase[:len(phase)-1])
	floats.Scale(rate, freq)
	return freq, nil
}

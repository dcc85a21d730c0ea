package phase

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidRate indicates a sampling rate that is zero, negative or not finite.
	ErrInvalidRate = errors.New("phase: sampling rate must be positive and finite")

	// ErrInvalidDataType indicates a data-type tag other than "phase" or "freq".
	ErrInvalidDataType = errors.New("phase: unknown data type")

	// ErrDegenerateInput indicates an empty series or one holding NaN/Inf samples.
	ErrDegenerateInput = errors.New("phase: degenerate input series")
)

// DataTypeError reports the offending data-type tag.
type DataTypeError struct {
	Kind string
}

func (e *DataTypeError) Error() string {
	return fmt.Sprintf("phase: unknown data type %q", e.Kind)
}

// Is reports ErrInvalidDataType as a match so callers can use errors.Is.
func (e *DataTypeError) Is(target error) bool {
	return target == ErrInvalidDataType
}

// ValidateRate returns ErrInvalidRate unless rate is a positive finite number.
func ValidateRate(rate float64) error {
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidRate, rate)
	}
	return nil
}

func validateSamples(data []float64) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty series", ErrDegenerateInput)
	}
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: sample %d is %v", ErrDegenerateInput, i, v)
		}
	}
	return nil
}

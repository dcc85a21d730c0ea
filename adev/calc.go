package adev

import (
	"fmt"
	"math"

	"github.com/sartorproj/goallan/phase"
)

// Estimate is the outcome of one averaging factor.
type Estimate struct {
	Deviation float64
	Error     float64 // Deviation / sqrt(N)
	N         int     // Number of second differences used
}

// Calc computes the Allan deviation of phase data x for averaging factor m,
// sliding the window by stride samples.
//
// stride == m gives the standard estimator and stride == 1 the overlapped one.
// ErrInsufficientData is returned when len(x) < 2m or when no complete
// window fits.
func Calc(x []float64, rate float64, m, stride int) (Estimate, error) {
	if m < 1 || stride < 1 {
		return Estimate{}, fmt.Errorf("%w: m=%d stride=%d", ErrInvalidArgument, m, stride)
	}
	if err := phase.ValidateRate(rate); err != nil {
		return Estimate{}, err
	}
	if len(x) < 2*m {
		return Estimate{}, fmt.Errorf("%w: %d samples, m=%d", ErrInsufficientData, len(x), m)
	}

	// the third subsequence, starting at 2m, is always the shortest
	n := (len(x) - 2*m + stride - 1) / stride
	if n == 0 {
		return Estimate{}, fmt.Errorf("%w: no window of %d samples fits", ErrInsufficientData, 2*m+1)
	}

	sum := 0.0
	for i := 0; i < n; i++ {
		j := i * stride
		v := x[j+2*m] - 2*x[j+m] + x[j]
		sum += v * v
	}

	dev := math.Sqrt(sum/(2*float64(n))) / float64(m) * rate
	return Estimate{
		Deviation: dev,
		Error:     dev / math.Sqrt(float64(n)),
		N:         n,
	}, nil
}

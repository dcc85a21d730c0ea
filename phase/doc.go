// Package phase normalizes oscillator measurements into phase data.
//
// Every stability estimator in this module works on phase (time error)
// samples. Frequency samples are converted by removing their mean and
// integrating over the sample interval:
//
//	x[0] = 0
//	x[i] = x[i-1] + (y[i-1] - mean(y)) / rate
//
// so a series of N frequency samples becomes N+1 phase samples.
//
// # Usage
//
//	x, err := phase.ToPhase(samples, rate, "freq")
//	if errors.Is(err, phase.ErrInvalidDataType) {
//	    // neither "phase" nor "freq"
//	}
//
// Phase input is returned as is; the converter never copies it.
package phase

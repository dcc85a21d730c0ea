// Package adev estimates the Allan deviation of phase or frequency data.
//
// Two estimators share one second-difference statistic:
//
//	ADEV:  windows advance by m samples, each phase triple is used once
//	OADEV: windows advance by one sample (fully overlapped)
//
// For an averaging factor m and window stride s the estimator is
//
//	S   = Σ (x[i*s+2m] - 2*x[i*s+m] + x[i*s])^2,  i = 0..n-1
//	dev = sqrt(S / 2n) / m * rate
//	err = dev / sqrt(n)
//
// # Usage
//
//	res, err := adev.OADEV(samples, rate, "freq", taus.Octave)
//	if err != nil {
//	    return err // bad rate, data type or empty input
//	}
//	for _, r := range res.Rows {
//	    fmt.Printf("%e %e %e %d\n", r.Tau, r.Deviation, r.Error, r.N)
//	}
//
// # Failure Policy
//
// Configuration problems abort the computation: ErrInvalidRate,
// ErrInvalidDataType and ErrDegenerateInput. An averaging factor that is too
// large for the data does not; its row is kept with Status Insufficient and
// zero values until RemoveInsufficient drops every row with N <= 1.
package adev

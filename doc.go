// Package goallan computes frequency-stability statistics for oscillator data.
//
// GoAllan estimates the Allan deviation (ADEV) and the overlapped Allan
// deviation (OADEV) of a uniformly sampled series of phase or fractional
// frequency measurements, over a ladder of averaging times (tau).
//
// # Features
//
//   - Frequency to phase conversion with bias removal
//   - Octave, log10 and decade tau spacing
//   - Standard (non-overlapping) and overlapped ADEV with count-based errors
//   - Filtering of statistically insufficient rows
//   - Text, JSON, PNG (log-log) and PDF output
//
// # Quick Start
//
//	series, _ := timeseries.LoadTextFile("phase.txt")
//	res, err := adev.OADEV(series.Values, 1/0.1, "phase", taus.Octave)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range res.Rows {
//	    fmt.Printf("%e %e\n", r.Tau, r.Deviation)
//	}
//
// # Packages
//
//   - phase: input normalization to phase data
//   - taus: averaging-factor generation
//   - adev: deviation estimators and result filtering
//   - report: text, plot, PDF and JSON rendering of results
//   - timeseries: sample series container and loaders
//
// # References
//
//   - Riley, W.J. (2008). Handbook of Frequency Stability Analysis. NIST SP 1065
//   - IEEE Std 1139-2008, Definitions of Physical Quantities for Fundamental
//     Frequency and Time Metrology
package goallan

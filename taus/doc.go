// Package taus generates the averaging factors evaluated by the deviation
// estimators.
//
// A candidate averaging time tau is turned into an averaging factor
// m = round(tau*rate). Candidates with m < 1 or m >= MaxM are dropped, and the
// tau actually evaluated is m/rate, which can differ from the requested one.
//
// # Spacing Modes
//
//   - Octave (default): tau = 2^k/rate, one candidate per doubling
//   - Log10: tau = 10^(k/10)/rate, ten candidates per decade
//   - Decade: tau = {1,2,4}*10^k/rate
//
// # Usage
//
//	set, err := taus.Generate(phase, rate, &taus.Options{Mode: taus.Decade})
//	for i, m := range set.M {
//	    fmt.Println(set.Used[i], m)
//	}
package taus

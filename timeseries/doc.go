// Package timeseries holds uniformly sampled measurement series.
//
// A Series pairs its samples with the sampling rate, which every stability
// statistic needs. Series are usually loaded from text or CSV files.
//
// # Creating a Series
//
//	series := timeseries.New([]float64{1e-9, 2e-9, 2.5e-9}, 10) // 10 Hz
//
//	// from a sample period, as taken on the command line
//	series, err := timeseries.FromPeriod(values, 0.1)
//
// # Loading Text
//
// One sample per line; blank lines and lines starting with '#' are skipped:
//
//	series, err := timeseries.LoadTextFile("phase.txt")
//	series.Rate = 1 / period
//
// # Loading from CSV
//
//	opts := timeseries.DefaultCSVOptions()
//	opts.ValueColumn = "freq"
//	series, err := timeseries.LoadCSV("counter.csv", opts)
//
// # Basic Statistics
//
//	mean := series.Mean()
//	std := series.Std()
//	median := series.Median()
package timeseries

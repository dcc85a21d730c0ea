package adev

// RemoveInsufficient keeps the rows whose N is greater than one, in order.
// A single second difference is too weak to report, so N == 1 rows are
// dropped along with degraded ones.
func RemoveInsufficient(rows []Row) []Row {
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		if row.N > 1 {
			out = append(out, row)
		}
	}
	return out
}

// RemoveSmallCounts applies RemoveInsufficient to parallel slices.
func RemoveSmallCounts(taus, devs, errs []float64, ns []int) ([]float64, []float64, []float64, []int, error) {
	if len(taus) != len(ns) || len(devs) != len(ns) || len(errs) != len(ns) {
		return nil, nil, nil, nil, ErrLengthMismatch
	}

	outTaus := make([]float64, 0, len(ns))
	outDevs := make([]float64, 0, len(ns))
	outErrs := make([]float64, 0, len(ns))
	outNs := make([]int, 0, len(ns))
	for i, n := range ns {
		if n > 1 {
			outTaus = append(outTaus, taus[i])
			outDevs = append(outDevs, devs[i])
			outErrs = append(outErrs, errs[i])
			outNs = append(outNs, n)
		}
	}
	return outTaus, outDevs, outErrs, outNs, nil
}

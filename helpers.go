package gmregress

import "math"

// firstNonFinite returns the index of the first NaN or infinite value.
func firstNonFinite(values []float64) (int, bool) {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return i, true
		}
	}

	return 0, false
}

// DropNonFinite returns copies of x and y keeping only the pairs where
// both values are finite. Pairs beyond the shorter sample are discarded,
// and the inputs are left untouched.
//
// Fit itself rejects non-finite values; callers who want NaNs treated as
// missing observations compose the two:
//
//	res, err := gmregress.Fit(gmregress.DropNonFinite(x, y))
func DropNonFinite(x, y []float64) ([]float64, []float64) {
	n := min(len(x), len(y))
	fx := make([]float64, 0, n)
	fy := make([]float64, 0, n)

	for i := 0; i < n; i++ {
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) || math.IsNaN(y[i]) || math.IsInf(y[i], 0) {
			continue
		}
		fx = append(fx, x[i])
		fy = append(fy, y[i])
	}

	return fx, fy
}

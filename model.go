package gmregress

import "fmt"

// Interval is a closed confidence interval with ordered bounds.
type Interval struct {
	// Lower is the lower confidence bound.
	Lower float64
	// Upper is the upper confidence bound.
	Upper float64
}

// newInterval builds an Interval from two bounds in either order.
func newInterval(a, b float64) Interval {
	if b < a {
		a, b = b, a
	}

	return Interval{Lower: a, Upper: b}
}

// Contains reports whether v lies within the interval, bounds included.
func (iv Interval) Contains(v float64) bool {
	return v >= iv.Lower && v <= iv.Upper
}

// String returns the interval formatted as "[lower, upper]".
func (iv Interval) String() string {
	return fmt.Sprintf("[%.4f, %.4f]", iv.Lower, iv.Upper)
}

// Result holds a fitted Reduced Major Axis regression line together with
// two families of confidence intervals for its coefficients.
//
// A Result is constructed once by Fit and never mutated afterwards; it is
// returned by value and safe to copy and share.
//
// Fields:
//   - Slope, Intercept: point estimate of the line Y = Intercept + Slope*X
//   - CI: confidence level (1 - alpha) of the interval estimates
//   - SlopeCI1, InterceptCI1: Ricker (t-distribution) intervals
//   - SlopeCI2, InterceptCI2: Jolicoeur-Mosimann/McArdle (F-distribution) intervals
//   - RSquare: squared Pearson correlation between X and Y
type Result struct {
	// Slope is the geometric-mean slope, signed by the correlation sign.
	Slope float64
	// Intercept is the fitted intercept: mean(Y) - mean(X)*Slope.
	Intercept float64
	// CI is the confidence level (1 - alpha) of the interval estimates.
	CI float64
	// SlopeCI1 is the Ricker confidence interval for the slope.
	SlopeCI1 Interval
	// InterceptCI1 is the Ricker confidence interval for the intercept.
	InterceptCI1 Interval
	// SlopeCI2 is the Jolicoeur-Mosimann/McArdle interval for the slope.
	SlopeCI2 Interval
	// InterceptCI2 is the Jolicoeur-Mosimann/McArdle interval for the intercept.
	InterceptCI2 Interval
	// RSquare is the squared Pearson correlation coefficient.
	RSquare float64
}

// Predict evaluates the fitted line at x.
func (res Result) Predict(x float64) float64 {
	return res.Intercept + res.Slope*x
}

// String returns a one-line summary of the fitted line.
func (res Result) String() string {
	return fmt.Sprintf("Result{Y = %.4f + %.4f*X, R²: %.4f, CI: %g%%}",
		res.Intercept, res.Slope, res.RSquare, res.CI*100)
}

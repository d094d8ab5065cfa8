package gmregress

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Fit computes the Reduced Major Axis regression of y on x and returns the
// fitted line with Ricker and Jolicoeur-Mosimann/McArdle confidence
// intervals for both coefficients.
//
// The samples must have equal length, hold at least three pairs of finite
// values, and x and y must each have nonzero sample variance. Violations
// are reported through the package sentinel errors; Fit never returns NaN
// or infinite coefficients.
//
// Fit is deterministic and has no side effects, so it is safe to call
// concurrently with independent inputs.
func Fit(x, y []float64, opts ...Option) (Result, error) {
	cfg := fitConfig{alpha: DefaultAlpha}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return Result{}, err
		}
	}

	if len(x) != len(y) {
		return Result{}, fmt.Errorf("%w: mismatched sample lengths %d and %d", ErrInvalidInput, len(x), len(y))
	}
	if i, ok := firstNonFinite(x); ok {
		return Result{}, fmt.Errorf("%w: non-finite X value %v at index %d", ErrInvalidInput, x[i], i)
	}
	if i, ok := firstNonFinite(y); ok {
		return Result{}, fmt.Errorf("%w: non-finite Y value %v at index %d", ErrInvalidInput, y[i], i)
	}

	n := len(x)
	if n < 3 {
		return Result{}, fmt.Errorf("%w: need at least 3 paired observations, got %d", ErrInsufficientSample, n)
	}

	meanX := stat.Mean(x, nil)
	meanY := stat.Mean(y, nil)

	// Sums of squares and cross-products about the means.
	scx := stat.Variance(x, nil) * float64(n-1)
	scy := stat.Variance(y, nil) * float64(n-1)
	scp := stat.Covariance(x, y, nil) * float64(n-1)

	if scx == 0 {
		return Result{}, fmt.Errorf("%w: zero sample variance in X", ErrDegenerateSample)
	}
	if scy == 0 {
		return Result{}, fmt.Errorf("%w: zero sample variance in Y", ErrDegenerateSample)
	}

	r := stat.Correlation(x, y, nil)

	// The geometric-mean slope is unsigned; the correlation sign
	// disambiguates it. r == 0 yields a zero slope.
	slope := sign(r) * math.Sqrt(scy/scx)
	intercept := meanY - meanX*slope

	dof := float64(n - 2)

	// Ricker (1973): additive interval from a Student's t approximation
	// to the sampling distribution of the slope. The residual sum of
	// squares is mathematically nonnegative but rounding can push it
	// slightly below zero for perfectly correlated samples; clamp it so
	// the interval collapses to the point estimate instead of NaN.
	scv := math.Max(scy-scp*scp/scx, 0)
	sv := math.Sqrt(scv / dof / scx)
	tCrit := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: dof}.Quantile(1 - cfg.alpha/2)
	slopeRicker := newInterval(slope-tCrit*sv, slope+tCrit*sv)

	// Jolicoeur-Mosimann (1968) / McArdle (1988): multiplicative interval
	// from an F bound, matching the asymmetric distribution of the slope.
	// 1 - r*r needs the same clamp as scv above.
	fCrit := distuv.F{D1: 1, D2: dof}.Quantile(1 - cfg.alpha)
	bound := math.Max(fCrit*(1-r*r)/dof, 0)
	a := math.Sqrt(bound + 1)
	c := math.Sqrt(bound)
	slopeJM := newInterval(slope*(a-c), slope*(a+c))

	return Result{
		Slope:        slope,
		Intercept:    intercept,
		CI:           1 - cfg.alpha,
		SlopeCI1:     slopeRicker,
		InterceptCI1: interceptInterval(meanX, meanY, slopeRicker),
		SlopeCI2:     slopeJM,
		InterceptCI2: interceptInterval(meanX, meanY, slopeJM),
		RSquare:      r * r,
	}, nil
}

// interceptInterval derives intercept bounds from slope bounds. The bounds
// cross over: intercept = mean(Y) - mean(X)*slope is decreasing in the
// slope whenever mean(X) > 0, so the lower intercept bound comes from the
// upper slope bound and vice versa. newInterval restores ordering for
// samples with mean(X) < 0.
func interceptInterval(meanX, meanY float64, slope Interval) Interval {
	return newInterval(meanY-meanX*slope.Upper, meanY-meanX*slope.Lower)
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

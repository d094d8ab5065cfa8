package gmregress

import "errors"

var (
	// ErrInvalidInput reports mismatched sample lengths or non-finite values.
	ErrInvalidInput = errors.New("gmregress: invalid input samples")
	// ErrInsufficientSample reports fewer than three paired observations.
	ErrInsufficientSample = errors.New("gmregress: insufficient sample size")
	// ErrInvalidAlpha reports a significance level outside the open interval (0,1).
	ErrInvalidAlpha = errors.New("gmregress: alpha must be in (0,1)")
	// ErrDegenerateSample reports zero sample variance in X or Y.
	ErrDegenerateSample = errors.New("gmregress: degenerate sample")
)

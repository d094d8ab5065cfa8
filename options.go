package gmregress

import "fmt"

// DefaultAlpha is the significance level used when no WithAlpha option is
// given, yielding 95% confidence intervals.
const DefaultAlpha = 0.05

// fitConfig holds configuration for a single Fit call.
type fitConfig struct {
	alpha float64
}

// Option is a functional option for Fit.
type Option func(*fitConfig) error

// WithAlpha sets the two-sided significance level for the confidence
// intervals. Alpha must lie in the open interval (0,1); the reported
// confidence level is 1 - alpha.
func WithAlpha(alpha float64) Option {
	return func(cfg *fitConfig) error {
		if !(alpha > 0 && alpha < 1) {
			return fmt.Errorf("%w: got %v", ErrInvalidAlpha, alpha)
		}
		cfg.alpha = alpha

		return nil
	}
}

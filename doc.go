// Package gmregress computes Reduced Major Axis (RMA) linear regression
// between two paired numeric samples, together with two classical families
// of confidence intervals for the fitted slope and intercept.
//
// RMA regression, also known as geometric mean or standard major axis
// regression, is a Model II procedure: it is the appropriate choice when
// both variables are random and carry measurement error, a situation where
// ordinary least squares (Model I) underestimates the slope of the linear
// relationship. The fitted slope is the geometric mean of the OLS slope of
// Y on X and the reciprocal OLS slope of X on Y, signed by the Pearson
// correlation.
//
// # Basic Usage
//
// Fitting a line and reading the coefficients:
//
//	x := []float64{14, 17, 24, 25, 27, 33, 34, 37, 40, 41, 42}
//	y := []float64{61, 37, 65, 69, 54, 93, 87, 89, 100, 90, 97}
//
//	res, err := gmregress.Fit(x, y)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Y = %.4f + %.4f*X (R²=%.4f)\n", res.Intercept, res.Slope, res.RSquare)
//	fmt.Println(res.Predict(30.0))
//
// The significance level defaults to 0.05 (95% intervals) and can be
// changed with a functional option:
//
//	res, err := gmregress.Fit(x, y, gmregress.WithAlpha(0.01))
//
// # Confidence Intervals
//
// Two interval procedures are reported side by side:
//
//   - Ricker (1973): an additive interval derived from a Student's t
//     approximation to the sampling distribution of the slope
//     (Result.SlopeCI1, Result.InterceptCI1).
//   - Jolicoeur and Mosimann (1968), McArdle (1988): a multiplicative
//     interval derived from an F-distribution bound, reflecting the
//     asymmetric sampling distribution of the geometric-mean slope
//     (Result.SlopeCI2, Result.InterceptCI2).
//
// Both intervals bracket the point estimate, and every interval is
// reported with ordered bounds (Lower <= Upper).
//
// # Input Requirements
//
// Fit is a pure function and performs no data cleaning. Samples must be
// equal-length, contain at least three pairs, and hold only finite values;
// violations are reported through the sentinel errors ErrInvalidInput,
// ErrInsufficientSample, ErrInvalidAlpha and ErrDegenerateSample. Callers
// with missing data can pre-filter with DropNonFinite:
//
//	res, err := gmregress.Fit(gmregress.DropNonFinite(x, y))
//
// # References
//
//   - Jolicoeur, P. and Mosimann, J. E. (1968), Intervalles de confiance
//     pour la pente de l'axe majeur d'une distribution normale
//     bidimensionnelle. Biometrie-Praximetrie, 9:121-140.
//   - McArdle, B. (1988), The structural relationship: regression in
//     biology. Can. Jour. Zool. 66:2329-2339.
//   - Ricker, W. E. (1973), Linear regression in fishery research.
//     J. Fish. Res. Board Can., 30:409-434.
//   - Sokal, R. R. and Rohlf, F. J. (1995), Biometry. 3rd ed. New York:
//     W.H. Freeman. [Sections 14.13 and 15.7]
package gmregress

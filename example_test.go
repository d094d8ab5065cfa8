package gmregress_test

import (
	"fmt"
	"log"
	"math"

	"github.com/statward/gmregress"
)

// ExampleFit fits the California fish cabezon data from Box 14.12 of
// Sokal and Rohlf (1995).
func ExampleFit() {
	x := []float64{14, 17, 24, 25, 27, 33, 34, 37, 40, 41, 42}
	y := []float64{61, 37, 65, 69, 54, 93, 87, 89, 100, 90, 97}

	res, err := gmregress.Fit(x, y)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Y = %.4f + %.4f*X\n", res.Intercept, res.Slope)
	fmt.Printf("R²: %.4f\n", res.RSquare)
	fmt.Printf("Ricker slope CI: %s\n", res.SlopeCI1)
	fmt.Printf("Jolicoeur-Mosimann slope CI: %s\n", res.SlopeCI2)

	// Output:
	// Y = 12.1938 + 2.1194*X
	// R²: 0.7785
	// Ricker slope CI: [1.3672, 2.8715]
	// Jolicoeur-Mosimann slope CI: [1.4967, 3.0010]
}

// ExampleFit_withAlpha requests 99% confidence intervals.
func ExampleFit_withAlpha() {
	x := []float64{14, 17, 24, 25, 27, 33, 34, 37, 40, 41, 42}
	y := []float64{61, 37, 65, 69, 54, 93, 87, 89, 100, 90, 97}

	res, err := gmregress.Fit(x, y, gmregress.WithAlpha(0.01))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("confidence level: %g\n", res.CI)

	// Output:
	// confidence level: 0.99
}

// ExampleResult_Predict evaluates the fitted line at a new point.
func ExampleResult_Predict() {
	x := []float64{14, 17, 24, 25, 27, 33, 34, 37, 40, 41, 42}
	y := []float64{61, 37, 65, 69, 54, 93, 87, 89, 100, 90, 97}

	res, err := gmregress.Fit(x, y)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%.2f\n", res.Predict(30))

	// Output:
	// 75.77
}

// ExampleDropNonFinite filters incomplete pairs before fitting.
func ExampleDropNonFinite() {
	x := []float64{1, 2, math.NaN(), 4, 5, 6}
	y := []float64{2.1, 3.9, 6.2, math.Inf(1), 10.1, 12.2}

	fx, fy := gmregress.DropNonFinite(x, y)
	fmt.Println(len(fx), len(fy))

	if _, err := gmregress.Fit(fx, fy); err != nil {
		log.Fatal(err)
	}

	// Output:
	// 4 4
}

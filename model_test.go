package gmregress

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewIntervalOrdersBounds(t *testing.T) {
	require.Equal(t, Interval{Lower: -1, Upper: 2}, newInterval(-1, 2))
	require.Equal(t, Interval{Lower: -1, Upper: 2}, newInterval(2, -1))
	require.Equal(t, Interval{Lower: 3, Upper: 3}, newInterval(3, 3))
}

func TestIntervalContains(t *testing.T) {
	iv := Interval{Lower: -1.5, Upper: 2.5}

	require.True(t, iv.Contains(0))
	require.True(t, iv.Contains(-1.5))
	require.True(t, iv.Contains(2.5))
	require.False(t, iv.Contains(-1.6))
	require.False(t, iv.Contains(2.6))
}

func TestIntervalString(t *testing.T) {
	iv := Interval{Lower: 1.36721, Upper: 2.87152}
	require.Equal(t, "[1.3672, 2.8715]", iv.String())
}

func TestResultPredict(t *testing.T) {
	res := Result{Slope: 2, Intercept: 3}

	require.Equal(t, 3.0, res.Predict(0))
	require.Equal(t, 13.0, res.Predict(5))
	require.Equal(t, -7.0, res.Predict(-5))
}

func TestResultString(t *testing.T) {
	res := Result{Slope: 2.1194, Intercept: 12.1938, RSquare: 0.7785, CI: 0.95}
	require.Equal(t, "Result{Y = 12.1938 + 2.1194*X, R²: 0.7785, CI: 95%}", res.String())
}

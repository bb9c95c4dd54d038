// Package metrics provides the imputation accuracy measures reported by the
// completion solvers.
package metrics

import (
	"errors"
	"math"
)

var (
	// ErrNoData is returned when the designated position set is empty.
	ErrNoData = errors.New("metrics: no positions to evaluate")

	// ErrZeroActual is returned by MAPE when an actual value is exactly
	// zero, where percentage error is undefined.
	ErrZeroActual = errors.New("metrics: actual value is zero, MAPE undefined")

	// ErrLengthMismatch is returned when the two value slices differ in
	// length.
	ErrLengthMismatch = errors.New("metrics: actual and estimate lengths differ")
)

// MAPE returns the mean absolute percentage error, the mean of
// |actual-estimate| / |actual|, between paired values. It returns NaN with
// ErrNoData for empty inputs and NaN with ErrZeroActual when any actual
// value is zero.
func MAPE(actual, estimate []float64) (float64, error) {
	if len(actual) != len(estimate) {
		return math.NaN(), ErrLengthMismatch
	}
	if len(actual) == 0 {
		return math.NaN(), ErrNoData
	}
	var sum float64
	for i, a := range actual {
		if a == 0 {
			return math.NaN(), ErrZeroActual
		}
		sum += math.Abs(a-estimate[i]) / math.Abs(a)
	}
	return sum / float64(len(actual)), nil
}

// RMSE returns the root mean square error between paired actual and estimate
// values. It returns NaN with ErrNoData for empty inputs.
func RMSE(actual, estimate []float64) (float64, error) {
	if len(actual) != len(estimate) {
		return math.NaN(), ErrLengthMismatch
	}
	if len(actual) == 0 {
		return math.NaN(), ErrNoData
	}
	var sum float64
	for i, a := range actual {
		d := a - estimate[i]
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(actual))), nil
}

package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMAPE(t *testing.T) {
	got, err := MAPE([]float64{10, 20}, []float64{9, 22})
	require.NoError(t, err)
	assert.InDelta(t, 0.1, got, 1e-12) // (0.1 + 0.1) / 2
}

func TestMAPEZeroActual(t *testing.T) {
	got, err := MAPE([]float64{10, 0, 5}, []float64{10, 1, 5})
	require.ErrorIs(t, err, ErrZeroActual)
	assert.True(t, math.IsNaN(got))
}

func TestMAPENoData(t *testing.T) {
	got, err := MAPE(nil, nil)
	require.ErrorIs(t, err, ErrNoData)
	assert.True(t, math.IsNaN(got))
}

func TestMAPELengthMismatch(t *testing.T) {
	_, err := MAPE([]float64{1}, []float64{1, 2})
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestRMSE(t *testing.T) {
	got, err := RMSE([]float64{1, 2, 3}, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	got, err = RMSE([]float64{0, 0}, []float64{3, 4})
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(12.5), got, 1e-12)
}

func TestRMSENoData(t *testing.T) {
	got, err := RMSE([]float64{}, []float64{})
	require.ErrorIs(t, err, ErrNoData)
	assert.True(t, math.IsNaN(got))
}

func TestRMSELengthMismatch(t *testing.T) {
	_, err := RMSE([]float64{1, 2}, []float64{1})
	require.ErrorIs(t, err, ErrLengthMismatch)
}

package tensor

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func randomTensor(rng *rand.Rand, n1, n2, n3 int) *Dense {
	t := NewDense(n1, n2, n3, nil)
	data := t.Data()
	for i := range data {
		data[i] = rng.NormFloat64()
	}
	return t
}

func TestNewDense(t *testing.T) {
	d := NewDense(2, 3, 4, nil)
	n1, n2, n3 := d.Dims()
	require.Equal(t, 2, n1)
	require.Equal(t, 3, n2)
	require.Equal(t, 4, n3)
	require.Equal(t, 24, d.Len())

	require.Panics(t, func() { NewDense(2, 3, 4, make([]float64, 7)) })
	require.Panics(t, func() { NewDense(0, 3, 4, nil) })
}

func TestAtSet(t *testing.T) {
	d := NewDense(2, 3, 4, nil)
	d.Set(1, 2, 3, 7.5)
	require.Equal(t, 7.5, d.At(1, 2, 3))
	require.Panics(t, func() { d.At(2, 0, 0) })
	require.Panics(t, func() { d.Set(0, 3, 0, 1) })
}

func TestUnfoldKnownValues(t *testing.T) {
	// Entry (i, j, k) holds 100i + 10j + k, making the layout visible.
	d := NewDense(2, 2, 2, nil)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				d.Set(i, j, k, float64(100*i+10*j+k))
			}
		}
	}

	want := map[int][][]float64{
		0: {{0, 10, 1, 11}, {100, 110, 101, 111}},
		1: {{0, 100, 1, 101}, {10, 110, 11, 111}},
		2: {{0, 100, 10, 110}, {1, 101, 11, 111}},
	}
	for axis, rows := range want {
		m := d.Unfold(axis)
		for i, row := range rows {
			for j, v := range row {
				assert.Equalf(t, v, m.At(i, j), "axis %d entry (%d, %d)", axis, i, j)
			}
		}
	}
}

func TestFoldRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, dims := range [][3]int{{2, 3, 4}, {5, 1, 3}, {1, 1, 1}, {4, 4, 4}} {
		d := randomTensor(rng, dims[0], dims[1], dims[2])
		for axis := 0; axis < 3; axis++ {
			rt, err := Fold(d.Unfold(axis), dims[0], dims[1], dims[2], axis)
			require.NoErrorf(t, err, "axis %d dims %v", axis, dims)
			require.Equalf(t, d.Data(), rt.Data(), "round trip failed for axis %d dims %v", axis, dims)
		}
	}
}

func TestFoldErrors(t *testing.T) {
	m := mat.NewDense(2, 6, nil)
	_, err := Fold(m, 3, 2, 2, 0)
	require.Error(t, err)
	_, err = Fold(m, 2, 2, 2, 0)
	require.Error(t, err)
	_, err = Fold(m, 2, 3, 2, 3)
	require.Error(t, err)
}

func TestNormDist(t *testing.T) {
	d := NewDense(1, 2, 2, []float64{1, 2, 2, 4})
	assert.InDelta(t, 5, d.Norm(), 1e-12)

	u := NewDense(1, 2, 2, []float64{1, 2, 2, 1})
	assert.InDelta(t, 3, Dist(d, u), 1e-12)
	assert.Equal(t, 0.0, Dist(d, d))
}

func TestCloneCopy(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	d := randomTensor(rng, 3, 2, 4)
	c := d.Clone()
	require.Equal(t, d.Data(), c.Data())

	c.Set(0, 0, 0, math.Pi)
	require.NotEqual(t, d.At(0, 0, 0), c.At(0, 0, 0))

	e := NewDense(3, 2, 4, nil)
	e.Copy(d)
	require.Equal(t, d.Data(), e.Data())
	require.Panics(t, func() { e.Copy(NewDense(2, 2, 4, nil)) })
}

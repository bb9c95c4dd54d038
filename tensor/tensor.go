// Package tensor provides a dense third-order array and the mode-wise
// unfolding used by the completion solvers.
package tensor

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Dense is a dense third-order array of float64 values. The zero value is not
// usable; construct with NewDense.
type Dense struct {
	n1, n2, n3 int
	data       []float64
}

// NewDense creates a new n1 x n2 x n3 tensor. If data is nil, a new backing
// slice is allocated. If data is non-nil it is used as the backing store in
// row-major order (the last axis varies fastest) and must have length
// n1*n2*n3, otherwise NewDense panics.
func NewDense(n1, n2, n3 int, data []float64) *Dense {
	if n1 <= 0 || n2 <= 0 || n3 <= 0 {
		panic("tensor: non-positive dimension")
	}
	if data == nil {
		data = make([]float64, n1*n2*n3)
	} else if len(data) != n1*n2*n3 {
		panic("tensor: backing slice length mismatch")
	}
	return &Dense{n1: n1, n2: n2, n3: n3, data: data}
}

// Dims returns the sizes of the three axes.
func (t *Dense) Dims() (n1, n2, n3 int) {
	return t.n1, t.n2, t.n3
}

// Len returns the total number of entries.
func (t *Dense) Len() int {
	return len(t.data)
}

// At returns the entry at position (i, j, k).
func (t *Dense) At(i, j, k int) float64 {
	return t.data[t.index(i, j, k)]
}

// Set stores v at position (i, j, k).
func (t *Dense) Set(i, j, k int, v float64) {
	t.data[t.index(i, j, k)] = v
}

func (t *Dense) index(i, j, k int) int {
	if i < 0 || i >= t.n1 || j < 0 || j >= t.n2 || k < 0 || k >= t.n3 {
		panic(fmt.Sprintf("tensor: index (%d, %d, %d) out of range %dx%dx%d",
			i, j, k, t.n1, t.n2, t.n3))
	}
	return (i*t.n2+j)*t.n3 + k
}

// Data returns the backing slice. Mutating the returned slice mutates the
// tensor.
func (t *Dense) Data() []float64 {
	return t.data
}

// Clone returns a deep copy of t.
func (t *Dense) Clone() *Dense {
	data := make([]float64, len(t.data))
	copy(data, t.data)
	return &Dense{n1: t.n1, n2: t.n2, n3: t.n3, data: data}
}

// Copy copies the entries of src into t. The two tensors must have identical
// dimensions.
func (t *Dense) Copy(src *Dense) {
	if t.n1 != src.n1 || t.n2 != src.n2 || t.n3 != src.n3 {
		panic("tensor: dimension mismatch in Copy")
	}
	copy(t.data, src.data)
}

// Norm returns the Frobenius norm over all entries.
func (t *Dense) Norm() float64 {
	return floats.Norm(t.data, 2)
}

// Dist returns the Frobenius norm of the entrywise difference between t and u.
func Dist(t, u *Dense) float64 {
	if t.n1 != u.n1 || t.n2 != u.n2 || t.n3 != u.n3 {
		panic("tensor: dimension mismatch in Dist")
	}
	var sum float64
	for i, v := range t.data {
		d := v - u.data[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// Unfold returns the mode-axis unfolding of t: a matrix whose rows index the
// given axis and whose columns enumerate the remaining two axes with the
// earlier original axis varying fastest. Fold with the same axis and the
// original dimensions is its exact inverse.
func (t *Dense) Unfold(axis int) *mat.Dense {
	var m *mat.Dense
	switch axis {
	case 0:
		m = mat.NewDense(t.n1, t.n2*t.n3, nil)
		for i := 0; i < t.n1; i++ {
			for j := 0; j < t.n2; j++ {
				for k := 0; k < t.n3; k++ {
					m.Set(i, j+k*t.n2, t.At(i, j, k))
				}
			}
		}
	case 1:
		m = mat.NewDense(t.n2, t.n1*t.n3, nil)
		for i := 0; i < t.n1; i++ {
			for j := 0; j < t.n2; j++ {
				for k := 0; k < t.n3; k++ {
					m.Set(j, i+k*t.n1, t.At(i, j, k))
				}
			}
		}
	case 2:
		m = mat.NewDense(t.n3, t.n1*t.n2, nil)
		for i := 0; i < t.n1; i++ {
			for j := 0; j < t.n2; j++ {
				for k := 0; k < t.n3; k++ {
					m.Set(k, i+j*t.n1, t.At(i, j, k))
				}
			}
		}
	default:
		panic(fmt.Sprintf("tensor: invalid axis %d", axis))
	}
	return m
}

// Fold reassembles a tensor of dimensions n1 x n2 x n3 from its mode-axis
// unfolding m. It returns an error when the dimensions of m are not those
// produced by Unfold with the same axis and dimensions.
func Fold(m *mat.Dense, n1, n2, n3, axis int) (*Dense, error) {
	r, c := m.Dims()
	want := [3]int{n1, n2, n3}
	if axis < 0 || axis > 2 {
		return nil, fmt.Errorf("tensor: invalid axis %d", axis)
	}
	if r != want[axis] || r*c != n1*n2*n3 {
		return nil, fmt.Errorf("tensor: cannot fold %dx%d matrix into %dx%dx%d along axis %d",
			r, c, n1, n2, n3, axis)
	}
	t := NewDense(n1, n2, n3, nil)
	switch axis {
	case 0:
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				for k := 0; k < n3; k++ {
					t.Set(i, j, k, m.At(i, j+k*n2))
				}
			}
		}
	case 1:
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				for k := 0; k < n3; k++ {
					t.Set(i, j, k, m.At(j, i+k*n1))
				}
			}
		}
	case 2:
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				for k := 0; k < n3; k++ {
					t.Set(i, j, k, m.At(k, i+j*n1))
				}
			}
		}
	}
	return t, nil
}

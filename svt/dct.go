package svt

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// DCT returns the n x n orthonormal type-II discrete cosine transform matrix
// C, satisfying C * C^T = I, so the inverse transform is the transpose.
func DCT(n int) *mat.Dense {
	c := mat.NewDense(n, n, nil)
	s0 := math.Sqrt(1 / float64(n))
	sk := math.Sqrt(2 / float64(n))
	for k := 0; k < n; k++ {
		scale := sk
		if k == 0 {
			scale = s0
		}
		for j := 0; j < n; j++ {
			c.Set(k, j, scale*math.Cos(math.Pi*float64(2*j+1)*float64(k)/(2*float64(n))))
		}
	}
	return c
}

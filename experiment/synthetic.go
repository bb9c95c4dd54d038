package experiment

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/mouyi321/tensor-learning/tensor"
)

// LowRankMatrix returns an m x n matrix of the given rank with strictly
// positive entries, built as a sum of rank-1 outer products of uniform
// factors scaled by scale. Positive entries keep MAPE well defined at every
// position.
func LowRankMatrix(rng *rand.Rand, m, n, rank int, scale float64) *mat.Dense {
	out := mat.NewDense(m, n, nil)
	u := make([]float64, m)
	v := make([]float64, n)
	for r := 0; r < rank; r++ {
		for i := range u {
			u[i] = 0.5 + rng.Float64()
		}
		for j := range v {
			v[j] = 0.5 + rng.Float64()
		}
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				out.Set(i, j, out.At(i, j)+scale*u[i]*v[j]/float64(rank))
			}
		}
	}
	return out
}

// LowRankTensor returns an n1 x n2 x n3 tensor with strictly positive entries
// built as a sum of rank-1 triple products of uniform factors scaled by
// scale.
func LowRankTensor(rng *rand.Rand, n1, n2, n3, rank int, scale float64) *tensor.Dense {
	out := tensor.NewDense(n1, n2, n3, nil)
	a := make([]float64, n1)
	b := make([]float64, n2)
	c := make([]float64, n3)
	for r := 0; r < rank; r++ {
		for i := range a {
			a[i] = 0.5 + rng.Float64()
		}
		for j := range b {
			b[j] = 0.5 + rng.Float64()
		}
		for k := range c {
			c[k] = 0.5 + rng.Float64()
		}
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				for k := 0; k < n3; k++ {
					out.Set(i, j, k, out.At(i, j, k)+scale*a[i]*b[j]*c[k]/float64(rank))
				}
			}
		}
	}
	return out
}

// Package svt implements singular value thresholding, the proximal operator
// of the nuclear norm, for matrices and for third-order tensors in the
// cosine-transform domain.
package svt

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/mouyi321/tensor-learning/tensor"
)

// ErrSVD is returned when the singular value decomposition fails to converge.
// Callers must not substitute a fallback value for the result.
var ErrSVD = errors.New("svt: singular value decomposition failed to converge")

// Shrink returns the matrix obtained from a by subtracting tau from every
// singular value and clamping negative results to zero. The result is the
// unique minimizer of tau*||X||_* + 0.5*||X-a||_F^2.
func Shrink(a mat.Matrix, tau float64) (*mat.Dense, error) {
	if tau < 0 {
		return nil, errors.New("svt: negative threshold")
	}
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, ErrSVD
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	s := svd.Values(nil)
	for i := range s {
		s[i] = math.Max(s[i]-tau, 0)
	}

	var us, out mat.Dense
	us.Mul(&u, mat.NewDiagDense(len(s), s))
	out.Mul(&us, v.T())
	return &out, nil
}

// ShrinkTensor applies an orthonormal discrete cosine transform along the
// third axis of t, shrinks every frontal slice in the transform domain by tau
// via Shrink, and inverts the transform. It is the proximal operator of the
// tensor nuclear norm defined as the sum of nuclear norms of transform-domain
// slices. The result has the same dimensions as t.
func ShrinkTensor(t *tensor.Dense, tau float64) (*tensor.Dense, error) {
	if tau < 0 {
		return nil, errors.New("svt: negative threshold")
	}
	n1, n2, n3 := t.Dims()
	c := DCT(n3)

	// The columns of the mode-2 unfolding are the mode-3 fibres, so a single
	// multiplication by C transforms the whole tensor.
	var hat mat.Dense
	hat.Mul(c, t.Unfold(2))
	th, err := tensor.Fold(&hat, n1, n2, n3, 2)
	if err != nil {
		return nil, err
	}

	slice := mat.NewDense(n1, n2, nil)
	for k := 0; k < n3; k++ {
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				slice.Set(i, j, th.At(i, j, k))
			}
		}
		shrunk, err := Shrink(slice, tau)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				th.Set(i, j, k, shrunk.At(i, j))
			}
		}
	}

	var inv mat.Dense
	inv.Mul(c.T(), th.Unfold(2))
	return tensor.Fold(&inv, n1, n2, n3, 2)
}

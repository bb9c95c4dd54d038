// Package lrmc implements low-rank matrix completion by iterative singular
// value thresholding under an ADMM-style augmented Lagrangian. Entries equal
// to zero in the observed matrix are treated as missing.
package lrmc

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/mouyi321/tensor-learning/admm"
	"github.com/mouyi321/tensor-learning/metrics"
	"github.com/mouyi321/tensor-learning/svt"
)

type config struct {
	rho     float64
	epsilon float64
	maxIter int
}

// Option configures the solver.
type Option func(*config)

// WithRho sets the penalty coefficient of the augmented Lagrangian. It is
// held constant for the whole run. Default 1e-2.
func WithRho(rho float64) Option {
	return func(c *config) {
		c.rho = rho
	}
}

// WithEpsilon sets the relative-change tolerance of the stopping rule.
// Default 1e-4.
func WithEpsilon(epsilon float64) Option {
	return func(c *config) {
		c.epsilon = epsilon
	}
}

// WithMaxIter sets the iteration budget. Reaching it is a normal exit, not an
// error. Default 200.
func WithMaxIter(maxIter int) Option {
	return func(c *config) {
		c.maxIter = maxIter
	}
}

func newConfig(opts []Option) (config, error) {
	c := config{
		rho:     1e-2,
		epsilon: 1e-4,
		maxIter: 200,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.rho <= 0 {
		return c, errors.New("lrmc: penalty coefficient must be positive")
	}
	if c.epsilon < 0 {
		return c, errors.New("lrmc: tolerance must be non-negative")
	}
	if c.maxIter < 0 {
		return c, errors.New("lrmc: iteration budget must be non-negative")
	}
	return c, nil
}

// Result holds the completed matrix together with convergence and accuracy
// diagnostics.
type Result struct {
	// X is the completed matrix.
	X *mat.Dense

	// Iterations is the number of update cycles performed.
	Iterations int

	// Tolerance is the relative change achieved by the last iteration.
	Tolerance float64

	// Converged reports whether the tolerance threshold was reached before
	// the iteration budget ran out.
	Converged bool

	// MAPE and RMSE are computed over the test positions, where the sparse
	// input is missing but ground truth exists. They are NaN when the test
	// set is empty, and MAPE is NaN when a ground-truth value is zero.
	MAPE float64
	RMSE float64
}

// Solve imputes the missing entries of sparse. No ground truth is consulted;
// the MAPE and RMSE fields of the result are NaN.
func Solve(sparse mat.Matrix, opts ...Option) (*Result, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	x, mon, err := iterate(sparse, cfg)
	if err != nil {
		return nil, err
	}
	return &Result{
		X:          x,
		Iterations: mon.Iterations(),
		Tolerance:  mon.Tolerance(),
		Converged:  mon.Converged(),
		MAPE:       math.NaN(),
		RMSE:       math.NaN(),
	}, nil
}

// Complete imputes the missing entries of sparse and evaluates the result
// against dense at the test positions, the entries missing from sparse but
// present in dense. The dense matrix is used only for evaluation and never
// influences the imputation.
func Complete(dense, sparse mat.Matrix, opts ...Option) (*Result, error) {
	dr, dc := dense.Dims()
	sr, sc := sparse.Dims()
	if dr != sr || dc != sc {
		return nil, errors.New("lrmc: dense and sparse dimensions mismatch")
	}
	res, err := Solve(sparse, opts...)
	if err != nil {
		return nil, err
	}

	var actual, estimate []float64
	for i := 0; i < dr; i++ {
		for j := 0; j < dc; j++ {
			if sparse.At(i, j) == 0 && dense.At(i, j) != 0 {
				actual = append(actual, dense.At(i, j))
				estimate = append(estimate, res.X.At(i, j))
			}
		}
	}
	// Metric degeneracy (empty test set, zero ground truth) leaves the
	// fields NaN without failing the completed run.
	res.MAPE, _ = metrics.MAPE(actual, estimate)
	res.RMSE, _ = metrics.RMSE(actual, estimate)
	return res, nil
}

// iterate runs the alternating loop: a singular value thresholding step on
// the multiplier-corrected estimate, a hard reset of the observed entries,
// and a dual ascent on the multiplier.
func iterate(sparse mat.Matrix, cfg config) (*mat.Dense, *admm.Monitor, error) {
	r, c := sparse.Dims()
	s := mat.DenseCopyOf(sparse)
	x := mat.DenseCopyOf(sparse)
	t := mat.DenseCopyOf(sparse)
	prev := mat.DenseCopyOf(sparse)

	var work, diff mat.Dense
	sched := admm.Constant(cfg.rho)
	mon := admm.NewMonitor(cfg.epsilon, cfg.maxIter, mat.Norm(s, 2))

	for mon.Continue() {
		rho := sched.Rho()

		// Z = shrink(X + T/rho, 1/rho)
		work.Scale(1/rho, t)
		work.Add(x, &work)
		z, err := svt.Shrink(&work, 1/rho)
		if err != nil {
			return nil, mon, err
		}

		// X = Z - T/rho, observed entries pinned to their inputs.
		work.Scale(1/rho, t)
		x.Sub(z, &work)
		sRaw := s.RawMatrix()
		xRaw := x.RawMatrix()
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				if v := sRaw.Data[i*sRaw.Stride+j]; v != 0 {
					xRaw.Data[i*xRaw.Stride+j] = v
				}
			}
		}

		// T = T - rho*(Z - X)
		diff.Sub(z, x)
		diff.Scale(rho, &diff)
		t.Sub(t, &diff)

		diff.Sub(x, prev)
		mon.Observe(mat.Norm(&diff, 2))
		prev.Copy(x)
		sched.Advance()
	}
	return x, mon, nil
}

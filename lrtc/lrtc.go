// Package lrtc implements low-rank tensor completion for third-order arrays
// by cosine-transform-domain singular value thresholding under an ADMM-style
// augmented Lagrangian with a geometrically increasing penalty. Entries equal
// to zero in the observed tensor are treated as missing.
package lrtc

import (
	"errors"
	"math"

	"github.com/mouyi321/tensor-learning/admm"
	"github.com/mouyi321/tensor-learning/metrics"
	"github.com/mouyi321/tensor-learning/svt"
	"github.com/mouyi321/tensor-learning/tensor"
)

type config struct {
	rho     float64
	rhoMax  float64
	growth  float64
	epsilon float64
	maxIter int
}

// Option configures the solver.
type Option func(*config)

// WithRho sets the initial penalty coefficient. The first thresholding pass
// shrinks singular values by 1/rho, so rho should be chosen against the scale
// of the data: too small a value wipes out every singular value until the
// continuation schedule catches up. Default 1e-5.
func WithRho(rho float64) Option {
	return func(c *config) {
		c.rho = rho
	}
}

// WithRhoMax sets the upper bound of the penalty continuation schedule.
// Default 1e5.
func WithRhoMax(rhoMax float64) Option {
	return func(c *config) {
		c.rhoMax = rhoMax
	}
}

// WithGrowth sets the per-iteration multiplier of the penalty continuation
// schedule. Default 1.05.
func WithGrowth(growth float64) Option {
	return func(c *config) {
		c.growth = growth
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
		rho:     1e-5,
		rhoMax:  1e5,
		growth:  1.05,
		epsilon: 1e-4,
		maxIter: 200,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.rho <= 0 {
		return c, errors.New("lrtc: penalty coefficient must be positive")
	}
	if c.rhoMax < c.rho {
		return c, errors.New("lrtc: penalty bound below initial penalty")
	}
	if c.growth < 1 {
		return c, errors.New("lrtc: penalty growth must be at least one")
	}
	if c.epsilon < 0 {
		return c, errors.New("lrtc: tolerance must be non-negative")
	}
	if c.maxIter < 0 {
		return c, errors.New("lrtc: iteration budget must be non-negative")
	}
	return c, nil
}

// Result holds the completed tensor together with convergence and accuracy
// diagnostics.
type Result struct {
	// X is the completed tensor.
	X *tensor.Dense

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
func Solve(sparse *tensor.Dense, opts ...Option) (*Result, error) {
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
// present in dense. The dense tensor is used only for evaluation and never
// influences the imputation.
func Complete(dense, sparse *tensor.Dense, opts ...Option) (*Result, error) {
	d1, d2, d3 := dense.Dims()
	s1, s2, s3 := sparse.Dims()
	if d1 != s1 || d2 != s2 || d3 != s3 {
		return nil, errors.New("lrtc: dense and sparse dimensions mismatch")
	}
	res, err := Solve(sparse, opts...)
	if err != nil {
		return nil, err
	}

	var actual, estimate []float64
	dD := dense.Data()
	sD := sparse.Data()
	xD := res.X.Data()
	for i := range sD {
		if sD[i] == 0 && dD[i] != 0 {
			actual = append(actual, dD[i])
			estimate = append(estimate, xD[i])
		}
	}
	// Metric degeneracy (empty test set, zero ground truth) leaves the
	// fields NaN without failing the completed run.
	res.MAPE, _ = metrics.MAPE(actual, estimate)
	res.RMSE, _ = metrics.RMSE(actual, estimate)
	return res, nil
}

// iterate runs the alternating loop. Unlike the matrix solver, the
// observation constraint is enforced through the consistency variable Z:
// observed entries of Z are pinned to the inputs while missing entries are
// reset to the multiplier-corrected estimate X + T/rho every iteration.
func iterate(sparse *tensor.Dense, cfg config) (*tensor.Dense, *admm.Monitor, error) {
	n1, n2, n3 := sparse.Dims()
	sD := sparse.Data()

	// Missing entries start from the mean of the observed ones, so the
	// first thresholding pass sees informative values instead of holes.
	var sum float64
	var observed int
	for _, v := range sD {
		if v != 0 {
			sum += v
			observed++
		}
	}
	var mean float64
	if observed > 0 {
		mean = sum / float64(observed)
	}

	x := sparse.Clone()
	xD := x.Data()
	for i, v := range sD {
		if v == 0 {
			xD[i] = mean
		}
	}
	z := x.Clone()
	zD := z.Data()
	t := tensor.NewDense(n1, n2, n3, nil)
	tD := t.Data()
	prev := x.Clone()
	work := tensor.NewDense(n1, n2, n3, nil)
	wD := work.Data()

	sched := admm.Geometric(cfg.rho, cfg.growth, cfg.rhoMax)
	mon := admm.NewMonitor(cfg.epsilon, cfg.maxIter, sparse.Norm())

	for mon.Continue() {
		rho := sched.Rho()

		// X = shrink(Z - T/rho, 1/rho) in the transform domain.
		for i := range wD {
			wD[i] = zD[i] - tD[i]/rho
		}
		xNew, err := svt.ShrinkTensor(work, 1/rho)
		if err != nil {
			return nil, mon, err
		}
		x = xNew
		xD = x.Data()

		// Z: observed entries pinned, missing entries blended with the
		// multiplier.
		for i, v := range sD {
			if v != 0 {
				zD[i] = v
			} else {
				zD[i] = xD[i] + tD[i]/rho
			}
		}

		// T = T + rho*(X - Z)
		for i := range tD {
			tD[i] += rho * (xD[i] - zD[i])
		}

		mon.Observe(tensor.Dist(x, prev))
		prev.Copy(x)
		sched.Advance()
	}
	return x, mon, nil
}

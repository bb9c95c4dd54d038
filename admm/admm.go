// Package admm holds the pieces of the augmented Lagrangian loop shared by
// the matrix and tensor completion solvers: the penalty schedule and the
// convergence monitor enforcing the stopping rule.
package admm

import "math"

// Schedule supplies the penalty coefficient rho for each iteration of an
// ADMM-style loop.
type Schedule interface {
	// Rho returns the penalty for the current iteration.
	Rho() float64

	// Advance moves the schedule to the next iteration.
	Advance()
}

type constant struct {
	rho float64
}

// Constant returns a schedule holding rho fixed across iterations.
func Constant(rho float64) Schedule {
	return &constant{rho: rho}
}

func (s *constant) Rho() float64 { return s.rho }

func (s *constant) Advance() {}

type geometric struct {
	rho    float64
	growth float64
	max    float64
}

// Geometric returns a continuation schedule that multiplies rho by growth on
// every Advance, capped at max. Small early penalties keep the first
// iterations stable while the growing penalty accelerates convergence.
func Geometric(rho, growth, max float64) Schedule {
	return &geometric{rho: rho, growth: growth, max: max}
}

func (s *geometric) Rho() float64 { return s.rho }

func (s *geometric) Advance() {
	s.rho = math.Min(s.rho*s.growth, s.max)
}

// Monitor tracks the relative-change tolerance and the iteration budget of a
// solver loop. Exhausting the budget is a normal exit, not an error.
type Monitor struct {
	epsilon   float64
	maxIter   int
	scale     float64
	iter      int
	tol       float64
	converged bool
}

// NewMonitor returns a monitor stopping when the relative change drops below
// epsilon or after maxIter iterations. scale is the norm of the observed
// input used to normalize the change; a zero scale is replaced by one.
func NewMonitor(epsilon float64, maxIter int, scale float64) *Monitor {
	if scale == 0 {
		scale = 1
	}
	return &Monitor{
		epsilon: epsilon,
		maxIter: maxIter,
		scale:   scale,
		tol:     math.Inf(1),
	}
}

// Continue reports whether the loop should run another iteration.
func (m *Monitor) Continue() bool {
	return !m.converged && m.iter < m.maxIter
}

// Observe records the norm of the change produced by one iteration.
func (m *Monitor) Observe(diff float64) {
	m.iter++
	m.tol = diff / m.scale
	if m.tol < m.epsilon {
		m.converged = true
	}
}

// Iterations returns the number of iterations observed so far.
func (m *Monitor) Iterations() int { return m.iter }

// Tolerance returns the relative change recorded by the last iteration. It is
// +Inf before the first iteration completes.
func (m *Monitor) Tolerance() float64 { return m.tol }

// Converged reports whether the tolerance threshold was reached.
func (m *Monitor) Converged() bool { return m.converged }

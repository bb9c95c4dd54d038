// Package experiment provides the scaffolding around the completion solvers:
// synthetic low-rank data generators, missing-pattern synthesis, and run
// helpers that corrupt, solve and evaluate in one call. Randomness is always
// drawn from an injected generator, never from global state, so runs are
// reproducible and independent.
package experiment

import (
	"errors"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/mouyi321/tensor-learning/lrmc"
	"github.com/mouyi321/tensor-learning/lrtc"
	"github.com/mouyi321/tensor-learning/tensor"
)

// Pattern selects how observed entries are removed when synthesizing a
// partially observed array from ground truth.
type Pattern int

const (
	// RandomMissing removes entries independently with the configured
	// rate.
	RandomMissing Pattern = iota

	// NonRandomMissing removes correlated groups: whole columns of a
	// matrix, whole mode-3 fibres of a tensor. It models sensors going
	// dark for a full day rather than dropping single readings.
	NonRandomMissing
)

// Config describes one corruption scenario.
type Config struct {
	// MissingRate is the probability of removing an entry (or group), in
	// [0, 1).
	MissingRate float64

	// Pattern selects independent or correlated removal.
	Pattern Pattern
}

func (c Config) validate() error {
	if c.MissingRate < 0 || c.MissingRate >= 1 {
		return fmt.Errorf("experiment: missing rate %v outside [0, 1)", c.MissingRate)
	}
	if c.Pattern != RandomMissing && c.Pattern != NonRandomMissing {
		return fmt.Errorf("experiment: unknown missing pattern %d", c.Pattern)
	}
	return nil
}

// Corrupt returns a copy of dense with entries zeroed according to the
// configured pattern. Zero is the missing sentinel understood by the solvers.
func Corrupt(dense mat.Matrix, cfg Config, rng *rand.Rand) (*mat.Dense, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("experiment: nil random generator")
	}
	r, c := dense.Dims()
	out := mat.DenseCopyOf(dense)
	switch cfg.Pattern {
	case RandomMissing:
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				if rng.Float64() < cfg.MissingRate {
					out.Set(i, j, 0)
				}
			}
		}
	case NonRandomMissing:
		for j := 0; j < c; j++ {
			if rng.Float64() < cfg.MissingRate {
				for i := 0; i < r; i++ {
					out.Set(i, j, 0)
				}
			}
		}
	}
	return out, nil
}

// CorruptTensor returns a copy of dense with entries zeroed according to the
// configured pattern.
func CorruptTensor(dense *tensor.Dense, cfg Config, rng *rand.Rand) (*tensor.Dense, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("experiment: nil random generator")
	}
	n1, n2, n3 := dense.Dims()
	out := dense.Clone()
	switch cfg.Pattern {
	case RandomMissing:
		data := out.Data()
		for i := range data {
			if rng.Float64() < cfg.MissingRate {
				data[i] = 0
			}
		}
	case NonRandomMissing:
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if rng.Float64() < cfg.MissingRate {
					for k := 0; k < n3; k++ {
						out.Set(i, j, k, 0)
					}
				}
			}
		}
	}
	return out, nil
}

// RunMatrix corrupts dense according to cfg and completes the result with the
// matrix solver, returning the solver result evaluated against dense.
func RunMatrix(dense *mat.Dense, cfg Config, rng *rand.Rand, opts ...lrmc.Option) (*lrmc.Result, error) {
	sparse, err := Corrupt(dense, cfg, rng)
	if err != nil {
		return nil, err
	}
	return lrmc.Complete(dense, sparse, opts...)
}

// RunTensor corrupts dense according to cfg and completes the result with the
// tensor solver, returning the solver result evaluated against dense.
func RunTensor(dense *tensor.Dense, cfg Config, rng *rand.Rand, opts ...lrtc.Option) (*lrtc.Result, error) {
	sparse, err := CorruptTensor(dense, cfg, rng)
	if err != nil {
		return nil, err
	}
	return lrtc.Complete(dense, sparse, opts...)
}

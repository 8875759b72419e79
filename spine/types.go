// SPDX-License-Identifier: MIT
// Package: lvtopo/spine
//
// types.go - Reducer capability, options, step reports and sentinel errors.

package spine

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvtopo/simplex"
	"github.com/katalvlaran/lvtopo/simplicial"
)

var (
	// ErrNilComplex is returned when a nil complex is passed to a reducer.
	ErrNilComplex = errors.New("spine: complex is nil")

	// ErrUnknownSimplex indicates a coface query for a simplex that has no
	// entry in the CofaceMap. It signals a broken precondition, never a
	// recoverable runtime condition.
	ErrUnknownSimplex = errors.New("spine: simplex has no coface entry")

	// ErrDanglingCoface indicates that a removed simplex is still listed as a
	// coface, or that the working complex lost closure. Only reported when
	// WithIncidenceCheck is enabled.
	ErrDanglingCoface = errors.New("spine: dangling coface reference")

	// ErrUnknownAlgorithm is returned by ByName for unsupported names.
	ErrUnknownAlgorithm = errors.New("spine: unknown algorithm")
)

// Algorithm names accepted by ByName.
const (
	AlgorithmIncremental = "incremental"
	AlgorithmReference   = "reference"
)

// Reducer reduces a complex to its spine. Implementations never mutate
// their input.
type Reducer interface {
	Reduce(k *simplicial.Complex) (*simplicial.Complex, error)
}

// ReducerFunc adapts a plain function to Reducer.
type ReducerFunc func(k *simplicial.Complex) (*simplicial.Complex, error)

// Reduce calls f(k).
func (f ReducerFunc) Reduce(k *simplicial.Complex) (*simplicial.Complex, error) { return f(k) }

// ByName returns the reducer registered under name ("incremental" or
// "reference") configured with opts.
func ByName(name string, opts ...Option) (Reducer, error) {
	switch name {
	case AlgorithmIncremental:
		return NewIncremental(opts...), nil
	case AlgorithmReference:
		return NewReference(opts...), nil
	default:
		return nil, fmt.Errorf("ByName(%q): %w", name, ErrUnknownAlgorithm)
	}
}

// Pair is one admissible (principal simplex → free face) pairing, by ID.
type Pair struct {
	Principal simplicial.ID
	Free      simplicial.ID
}

// Step describes one elementary collapse, as reported to WithOnCollapse.
type Step struct {
	// Index is the zero-based collapse number within the run.
	Index int

	// Principal is the removed principal simplex; Free its removed free face.
	Principal simplex.Simplex
	Free      simplex.Simplex

	// LocalHits counts admissible pairs added by the local re-scan.
	LocalHits int

	// Rescanned reports whether the global backstop rescan ran after this step.
	Rescanned bool

	// Remaining is the size of the working complex after the collapse.
	Remaining int
}

// Stats summarizes a reducer run.
type Stats struct {
	Initial       int // size of the input complex
	Final         int // size of the returned complex
	Collapses     int // elementary collapses performed
	LocalHits     int // pairs discovered by local re-scans (Incremental only)
	GlobalRescans int // full admissibility recomputations after the initial one
}

// Option configures a reducer.
type Option func(*config)

type config struct {
	logger         *slog.Logger
	onCollapse     func(Step) error
	checkIncidence bool
}

func newConfig(opts ...Option) config {
	cfg := config{logger: slog.New(discardHandler{})}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger routes debug traces of every collapse and rescan to l.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("spine: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithOnCollapse installs fn as a post-collapse hook. Returning an error
// aborts the run with that error. Panics on nil.
func WithOnCollapse(fn func(Step) error) Option {
	if fn == nil {
		panic("spine: WithOnCollapse(nil)")
	}
	return func(c *config) { c.onCollapse = fn }
}

// WithIncidenceCheck verifies after every collapse that no coface set
// references a removed simplex (Incremental) and that the working complex
// is still closed (both reducers). Costs O(n) per step; meant for tests.
func WithIncidenceCheck() Option {
	return func(c *config) { c.checkIncidence = true }
}

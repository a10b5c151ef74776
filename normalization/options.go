// Package normalization: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical
//     values — programmer error, not input error),
//   - gatherOptions helper (internal) that resolves defaults.

package normalization

import "math"

// Numeric policy defaults — single source of truth for zero-value behavior.
const (
	// DefaultDegreeFloor is the minimum value a degree is clamped to before
	// inversion. Flooring at 1 means an isolated simplex (degree 0) gets an
	// identity scale factor; its operator entries are already zero, so the
	// corresponding output stays zero without a division error.
	DefaultDegreeFloor = 1.0

	// DefaultEpsilon is the non-negative tolerance used by the comparison
	// helpers (EqualWithin via options-resolved callers).
	DefaultEpsilon = 1e-9
)

// Internal panic messages (no magic strings).
const (
	panicDegreeFloorInvalid = "normalization: WithDegreeFloor: floor must be finite and > 0"
	panicEpsilonInvalid     = "normalization: WithEpsilon: eps must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option
// setters. Fields are unexported; public entry points accept ...Option and
// resolve them via gatherOptions.
type Options struct {
	degreeFloor float64 // > 0; DefaultDegreeFloor
	eps         float64 // >= 0; DefaultEpsilon
}

// WithDegreeFloor sets the minimum degree used before inversion, making
// the zero-degree policy an explicit parameter rather than an ambient
// numeric default. Panics on non-finite or non-positive values.
func WithDegreeFloor(floor float64) Option {
	if math.IsNaN(floor) || math.IsInf(floor, 0) || floor <= 0 {
		panic(panicDegreeFloorInvalid)
	}

	return func(o *Options) { o.degreeFloor = floor }
}

// WithEpsilon sets the tolerance used by comparison helpers.
// Panics on non-finite or negative values.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// gatherOptions applies user-provided setters on top of the documented
// defaults. Last-writer-wins; stable for a given sequence of setters.
func gatherOptions(user ...Option) Options {
	o := Options{
		degreeFloor: DefaultDegreeFloor,
		eps:         DefaultEpsilon,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

package normalization

import (
	"math"

	"github.com/toposphere/toponorm/matrix"
)

// SameSignPattern reports whether a and b agree entrywise in sign:
// sign(a[i,j]) == sign(b[i,j]) for every position, with zero treated as
// its own sign class. Shapes must match.
//
// This is the structural check a normalizer must satisfy: positive
// scaling can change magnitudes but never the sign pattern.
func SameSignPattern(a, b matrix.Matrix) (bool, error) {
	if a == nil || b == nil {
		return false, ErrNilOperator
	}
	if err := matrix.ValidateSameShape(a, b); err != nil {
		return false, err
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, err := a.At(i, j)
			if err != nil {
				return false, err
			}
			bv, err := b.At(i, j)
			if err != nil {
				return false, err
			}
			if sign(av) != sign(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}

// EqualWithin reports whether a and b agree entrywise within the
// configured absolute tolerance (DefaultEpsilon unless overridden via
// WithEpsilon). Shapes must match. Used to assert dense/sparse
// representation equivalence: the same operator normalized in either
// family must produce elementwise-equal values.
func EqualWithin(a, b matrix.Matrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)
	if a == nil || b == nil {
		return false, ErrNilOperator
	}
	if err := matrix.ValidateSameShape(a, b); err != nil {
		return false, err
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, err := a.At(i, j)
			if err != nil {
				return false, err
			}
			bv, err := b.At(i, j)
			if err != nil {
				return false, err
			}
			if math.Abs(av-bv) > o.eps {
				return false, nil
			}
		}
	}

	return true, nil
}

// sign maps a float to {-1, 0, +1}. Exact zero only; normalization never
// produces signed zeros from nonzero inputs.
func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

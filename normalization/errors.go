package normalization

import "errors"

var (
	// ErrNilOperator indicates a nil boundary operator argument.
	ErrNilOperator = errors.New("normalization: nil boundary operator")

	// ErrShapeMismatch indicates that B1 and B2 disagree on the shared
	// dimension (B1.Cols() != B2.Rows()), so the coupled normalization is
	// undefined.
	ErrShapeMismatch = errors.New("normalization: B1/B2 shared dimension mismatch")
)

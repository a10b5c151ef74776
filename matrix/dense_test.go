// SPDX-License-Identifier: MIT

// Package matrix_test provides unit tests for the Dense family, using
// stdlib only. All tests are deterministic and parallel where applicable.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/toposphere/toponorm/matrix"
)

// TestDense_Blueprint validates constructor guards and basic shape.
func TestDense_Blueprint(t *testing.T) {
	t.Parallel()

	// non-positive dimensions ⇒ ErrInvalidDimensions
	if _, err := matrix.NewDense(0, 3); !errors.Is(err, matrix.ErrInvalidDimensions) {
		t.Fatalf("NewDense(0,3): want ErrInvalidDimensions, got %v", err)
	}
	if _, err := matrix.NewDense(3, -1); !errors.Is(err, matrix.ErrInvalidDimensions) {
		t.Fatalf("NewDense(3,-1): want ErrInvalidDimensions, got %v", err)
	}

	d, err := matrix.NewDense(2, 3)
	if err != nil {
		t.Fatalf("NewDense(2,3): %v", err)
	}
	if d.Rows() != 2 || d.Cols() != 3 {
		t.Fatalf("shape: got (%d,%d), want (2,3)", d.Rows(), d.Cols())
	}
	// fresh matrix is all zeros
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			v, err := d.At(i, j)
			if err != nil || v != 0 {
				t.Fatalf("At(%d,%d): got (%v,%v), want (0,nil)", i, j, v, err)
			}
		}
	}
}

// TestDense_SetAtBounds validates indexer guards and round-trips.
func TestDense_SetAtBounds(t *testing.T) {
	t.Parallel()

	d, err := matrix.NewDense(2, 2)
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}

	if err = d.Set(0, 1, -1); err != nil {
		t.Fatalf("Set(0,1): %v", err)
	}
	if v, err := d.At(0, 1); err != nil || v != -1 {
		t.Fatalf("At(0,1): got (%v,%v), want (-1,nil)", v, err)
	}

	if err = d.Set(2, 0, 1); !errors.Is(err, matrix.ErrOutOfRange) {
		t.Fatalf("Set(2,0): want ErrOutOfRange, got %v", err)
	}
	if _, err = d.At(0, -1); !errors.Is(err, matrix.ErrOutOfRange) {
		t.Fatalf("At(0,-1): want ErrOutOfRange, got %v", err)
	}
	if err = d.Set(0, 0, math.NaN()); !errors.Is(err, matrix.ErrNaNInf) {
		t.Fatalf("Set(NaN): want ErrNaNInf, got %v", err)
	}
	if err = d.Set(0, 0, math.Inf(-1)); !errors.Is(err, matrix.ErrNaNInf) {
		t.Fatalf("Set(-Inf): want ErrNaNInf, got %v", err)
	}
}

// TestDense_FromRows validates the rectangular constructor.
func TestDense_FromRows(t *testing.T) {
	t.Parallel()

	if _, err := matrix.NewDenseFromRows(nil); !errors.Is(err, matrix.ErrInvalidDimensions) {
		t.Fatalf("empty input: want ErrInvalidDimensions, got %v", err)
	}
	if _, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3}}); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("ragged input: want ErrDimensionMismatch, got %v", err)
	}

	d, err := matrix.NewDenseFromRows([][]float64{{1, -1, 0}, {0, 1, -1}})
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}
	if v, _ := d.At(1, 2); v != -1 {
		t.Fatalf("At(1,2): got %v, want -1", v)
	}
}

// TestDense_CloneIndependence ensures Clone detaches storage.
func TestDense_CloneIndependence(t *testing.T) {
	t.Parallel()

	d, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	cp := d.Clone().(*matrix.Dense)
	if err := cp.Set(0, 0, 99); err != nil {
		t.Fatalf("Set on clone: %v", err)
	}
	if v, _ := d.At(0, 0); v != 1 {
		t.Fatalf("original mutated through clone: got %v, want 1", v)
	}
}

package core

import (
	"math"
	"testing"
)

func TestMatrix_Construction(t *testing.T) {
	m := NewMatrix(
		1, 2, 3, 4,
		5.5, 6.5, 7.5, 8.5,
		9, 10, 11, 12,
		13.5, 14.5, 15.5, 16.5,
	)

	checks := []struct {
		row, col int
		expected float64
	}{
		{0, 0, 1}, {0, 3, 4}, {1, 0, 5.5}, {1, 2, 7.5},
		{2, 2, 11}, {3, 0, 13.5}, {3, 2, 15.5},
	}
	for _, check := range checks {
		if got := m[check.row][check.col]; got != check.expected {
			t.Errorf("Expected m[%d][%d] = %f, got %f", check.row, check.col, check.expected, got)
		}
	}
}

func TestMatrix_SmallOrders(t *testing.T) {
	m2 := NewMatrix(
		-3, 5,
		1, -2,
	)
	if m2.Order() != 2 || m2[0][0] != -3 || m2[0][1] != 5 || m2[1][0] != 1 || m2[1][1] != -2 {
		t.Errorf("Unexpected 2x2 matrix: %v", m2)
	}

	m3 := NewMatrix(
		-3, 5, 0,
		1, -2, -7,
		0, 1, 1,
	)
	if m3.Order() != 3 || m3[0][0] != -3 || m3[1][1] != -2 || m3[2][2] != 1 {
		t.Errorf("Unexpected 3x3 matrix: %v", m3)
	}
}

func TestMatrix_NonSquareConstructionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected a panic for a non-square value count")
		}
	}()

	NewMatrix(1, 2, 3, 4, 5)
}

func TestMatrix_Equals(t *testing.T) {
	a := NewMatrix(
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 8, 7, 6,
		5, 4, 3, 2,
	)
	b := NewMatrix(
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 8, 7, 6,
		5, 4, 3, 2,
	)
	c := NewMatrix(
		2, 3, 4, 5,
		6, 7, 8, 9,
		8, 7, 6, 5,
		4, 3, 2, 1,
	)

	if !a.Equals(b) {
		t.Error("Expected identical matrices to be equal")
	}
	if a.Equals(c) {
		t.Error("Expected different matrices to be unequal")
	}
}

func TestMatrix_Multiply(t *testing.T) {
	a := NewMatrix(
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 8, 7, 6,
		5, 4, 3, 2,
	)
	b := NewMatrix(
		-2, 1, 2, 3,
		3, 2, 1, -1,
		4, 3, 6, 5,
		1, 2, 7, 8,
	)
	expected := NewMatrix(
		20, 22, 50, 48,
		44, 54, 114, 108,
		40, 58, 110, 102,
		16, 26, 46, 42,
	)

	if got := a.Multiply(b); !got.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestMatrix_MultiplyTuple(t *testing.T) {
	m := NewMatrix(
		1, 2, 3, 4,
		2, 4, 4, 2,
		8, 6, 4, 1,
		0, 0, 0, 1,
	)

	if got := m.MultiplyTuple(Tuple{1, 2, 3, 1}); !got.Equals(Tuple{18, 24, 33, 1}) {
		t.Errorf("Expected (18, 24, 33, 1), got %+v", got)
	}
}

func TestMatrix_MultiplyByIdentity(t *testing.T) {
	m := NewMatrix(
		0, 1, 2, 4,
		1, 2, 4, 8,
		2, 4, 8, 16,
		4, 8, 16, 32,
	)

	if got := m.Multiply(Identity(4)); !got.Equals(m) {
		t.Errorf("Expected identity multiplication to leave the matrix unchanged, got %v", got)
	}

	tuple := Tuple{1, 2, 3, 4}
	if got := Identity(4).MultiplyTuple(tuple); !got.Equals(tuple) {
		t.Errorf("Expected identity multiplication to leave the tuple unchanged, got %+v", got)
	}
}

func TestMatrix_Transpose(t *testing.T) {
	m := NewMatrix(
		0, 9, 3, 0,
		9, 8, 0, 8,
		1, 8, 5, 3,
		0, 0, 5, 8,
	)
	expected := NewMatrix(
		0, 9, 1, 0,
		9, 8, 8, 0,
		3, 0, 5, 5,
		0, 8, 3, 8,
	)

	if got := m.Transpose(); !got.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}

	if got := Identity(4).Transpose(); !got.Equals(Identity(4)) {
		t.Errorf("Expected the transposed identity to be the identity, got %v", got)
	}
}

func TestMatrix_Determinant2x2(t *testing.T) {
	m := NewMatrix(
		1, 5,
		-3, 2,
	)

	if got := m.Determinant(); got != 17 {
		t.Errorf("Expected 17, got %f", got)
	}
}

func TestMatrix_Submatrix(t *testing.T) {
	m3 := NewMatrix(
		1, 5, 0,
		-3, 2, 7,
		0, 6, -3,
	)
	expected2 := NewMatrix(
		-3, 2,
		0, 6,
	)
	if got := m3.Submatrix(0, 2); !got.Equals(expected2) {
		t.Errorf("Expected %v, got %v", expected2, got)
	}

	m4 := NewMatrix(
		-6, 1, 1, 6,
		-8, 5, 8, 6,
		-1, 0, 8, 2,
		-7, 1, -1, 1,
	)
	expected3 := NewMatrix(
		-6, 1, 6,
		-8, 8, 6,
		-7, -1, 1,
	)
	if got := m4.Submatrix(2, 1); !got.Equals(expected3) {
		t.Errorf("Expected %v, got %v", expected3, got)
	}
}

func TestMatrix_MinorAndCofactor(t *testing.T) {
	m := NewMatrix(
		3, 5, 0,
		2, -1, -7,
		6, -1, 5,
	)

	if got := m.Minor(1, 0); got != 25 {
		t.Errorf("Expected minor 25, got %f", got)
	}
	if got := m.Cofactor(0, 0); got != -12 {
		t.Errorf("Expected cofactor -12, got %f", got)
	}
	if got := m.Cofactor(1, 0); got != -25 {
		t.Errorf("Expected cofactor -25, got %f", got)
	}
}

func TestMatrix_LargerDeterminants(t *testing.T) {
	m3 := NewMatrix(
		1, 2, 6,
		-5, 8, -4,
		2, 6, 4,
	)
	if got := m3.Determinant(); got != -196 {
		t.Errorf("Expected -196, got %f", got)
	}

	m4 := NewMatrix(
		-2, -8, 3, 5,
		-3, 1, 7, 3,
		1, 2, -9, 6,
		-6, 7, 7, -9,
	)
	if got := m4.Determinant(); got != -4071 {
		t.Errorf("Expected -4071, got %f", got)
	}
}

func TestMatrix_Inverse(t *testing.T) {
	m := NewMatrix(
		-5, 2, 6, -8,
		1, -5, 1, 8,
		7, 7, -6, -7,
		1, -3, 7, 4,
	)
	expected := NewMatrix(
		0.21805, 0.45113, 0.24060, -0.04511,
		-0.80827, -1.45677, -0.44361, 0.52068,
		-0.07895, -0.22368, -0.05263, 0.19737,
		-0.52256, -0.81391, -0.30075, 0.30639,
	)

	inverse := m.Inverse()
	if !inverse.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, inverse)
	}

	// Spot check of the defining entries
	if got := m.Determinant(); got != 532 {
		t.Errorf("Expected determinant 532, got %f", got)
	}
	if got := inverse[3][2]; math.Abs(got-(-160.0/532)) >= Epsilon {
		t.Errorf("Expected inverse[3][2] = -160/532, got %f", got)
	}
}

func TestMatrix_InverseRoundTrips(t *testing.T) {
	matrices := []Matrix{
		NewMatrix(
			8, -5, 9, 2,
			7, 5, 6, 1,
			-6, 0, 9, 6,
			-3, 0, -9, -4,
		),
		NewMatrix(
			9, 3, 0, 9,
			-5, -2, -6, -3,
			-4, 9, 6, 4,
			-7, 6, 6, 2,
		),
	}

	for _, m := range matrices {
		if got := m.Inverse().Inverse(); !got.Equals(m) {
			t.Errorf("Expected inverse of inverse to restore %v, got %v", m, got)
		}
		if got := m.Multiply(m.Inverse()); !got.Equals(Identity(4)) {
			t.Errorf("Expected M * M^-1 to be the identity, got %v", got)
		}
	}
}

func TestMatrix_MultiplyProductByInverse(t *testing.T) {
	a := NewMatrix(
		3, -9, 7, 3,
		3, -8, 2, -9,
		-4, 4, 4, 1,
		-6, 5, -1, 1,
	)
	b := NewMatrix(
		8, 2, 2, 2,
		3, -1, 7, 0,
		7, 0, 5, 4,
		6, -2, 0, 5,
	)

	if got := a.Multiply(b).Multiply(b.Inverse()); !got.Equals(a) {
		t.Errorf("Expected multiplying the product by b's inverse to restore a, got %v", got)
	}
}

func TestMatrix_NonInvertiblePanics(t *testing.T) {
	m := NewMatrix(
		-4, 2, -2, -3,
		9, 6, 2, 6,
		0, -5, 1, -5,
		0, 0, 0, 0,
	)

	if got := m.Determinant(); got != 0 {
		t.Fatalf("Expected a zero determinant, got %f", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected a panic when inverting a zero-determinant matrix")
		}
	}()

	m.Inverse()
}

package core

import (
	"fmt"
	"math"
)

// Matrix is a square grid of floats in row-major order. Scene transforms
// are always order 4; orders 2 and 3 appear as submatrices during cofactor
// expansion.
type Matrix [][]float64

// NewMatrix builds a matrix from a flat row-major value list. The number of
// values must be a perfect square; anything else is a fatal construction
// error.
func NewMatrix(values ...float64) Matrix {
	order := int(math.Sqrt(float64(len(values))))
	if order*order != len(values) {
		panic(fmt.Sprintf("matrix construction requires a square value count, got %d", len(values)))
	}

	m := make(Matrix, order)
	for row := range m {
		m[row] = values[row*order : (row+1)*order]
	}
	return m
}

// Identity returns the identity matrix of the given order
func Identity(order int) Matrix {
	m := make(Matrix, order)
	for row := range m {
		m[row] = make([]float64, order)
		m[row][row] = 1
	}
	return m
}

// Order returns the number of rows (= columns)
func (m Matrix) Order() int {
	return len(m)
}

// Equals returns true if both matrices have the same order and all entries
// match within Epsilon
func (m Matrix) Equals(other Matrix) bool {
	if len(m) != len(other) {
		return false
	}
	for row := range m {
		for col := range m[row] {
			if math.Abs(m[row][col]-other[row][col]) >= Epsilon {
				return false
			}
		}
	}
	return true
}

// Multiply returns the matrix product m * other
func (m Matrix) Multiply(other Matrix) Matrix {
	order := len(m)
	result := make(Matrix, order)

	for row := 0; row < order; row++ {
		result[row] = make([]float64, order)
		for col := 0; col < order; col++ {
			sum := 0.0
			for k := 0; k < order; k++ {
				sum += m[row][k] * other[k][col]
			}
			result[row][col] = sum
		}
	}
	return result
}

// MultiplyTuple returns the product m * t. Only order-4 matrices may
// multiply a tuple.
func (m Matrix) MultiplyTuple(t Tuple) Tuple {
	if len(m) != 4 {
		panic("only matrices of order 4 may multiply a tuple")
	}

	in := [4]float64{t.X, t.Y, t.Z, t.W}
	var out [4]float64
	for row := 0; row < 4; row++ {
		for k := 0; k < 4; k++ {
			out[row] += m[row][k] * in[k]
		}
	}
	return Tuple{out[0], out[1], out[2], out[3]}
}

// Transpose returns the matrix with rows and columns swapped
func (m Matrix) Transpose() Matrix {
	order := len(m)
	result := make(Matrix, order)

	for row := 0; row < order; row++ {
		result[row] = make([]float64, order)
		for col := 0; col < order; col++ {
			result[row][col] = m[col][row]
		}
	}
	return result
}

// Submatrix returns the matrix with the given row and column removed
func (m Matrix) Submatrix(removedRow, removedCol int) Matrix {
	order := len(m)
	result := make(Matrix, 0, order-1)

	for row := 0; row < order; row++ {
		if row == removedRow {
			continue
		}
		resultRow := make([]float64, 0, order-1)
		for col := 0; col < order; col++ {
			if col == removedCol {
				continue
			}
			resultRow = append(resultRow, m[row][col])
		}
		result = append(result, resultRow)
	}
	return result
}

// Minor returns the determinant of the submatrix at (row, col)
func (m Matrix) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the signed minor at (row, col); the sign is negative
// when row+col is odd
func (m Matrix) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// Determinant computes the determinant: the closed form for order 2,
// cofactor expansion along the first row above that
func (m Matrix) Determinant() float64 {
	if len(m) == 2 {
		return m[0][0]*m[1][1] - m[0][1]*m[1][0]
	}

	determinant := 0.0
	for col := range m[0] {
		determinant += m[0][col] * m.Cofactor(0, col)
	}
	return determinant
}

// Inverse returns the inverse via the adjugate/determinant formula: entry
// (row, col) of the result is cofactor(col, row) / determinant — note the
// transposed index order. A zero determinant is a fatal error; a scene
// cannot be rendered with a non-invertible transform.
func (m Matrix) Inverse() Matrix {
	determinant := m.Determinant()
	if determinant == 0 {
		panic("matrix has zero determinant and cannot be inverted")
	}

	order := len(m)
	result := make(Matrix, order)
	for row := 0; row < order; row++ {
		result[row] = make([]float64, order)
		for col := 0; col < order; col++ {
			result[row][col] = m.Cofactor(col, row) / determinant
		}
	}
	return result
}
